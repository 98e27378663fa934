package service_test

import (
	"strings"
	"testing"

	"github.com/blogdrown/blogdrown/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := service.HashPassword("hunter2hunter2", service.DevelopmentScryptParams)
	require.NoError(t, err)

	assert.True(t, service.VerifyPassword("hunter2hunter2", hash))
	assert.False(t, service.VerifyPassword("hunter3hunter3", hash))
}

func TestHashPassword_SaltIsFresh(t *testing.T) {
	a, err := service.HashPassword("same-password", service.DevelopmentScryptParams)
	require.NoError(t, err)
	b, err := service.HashPassword("same-password", service.DevelopmentScryptParams)
	require.NoError(t, err)

	// Same secret, different salt, different hash; both still verify.
	assert.NotEqual(t, a, b)
	assert.True(t, service.VerifyPassword("same-password", a))
	assert.True(t, service.VerifyPassword("same-password", b))
}

func TestHashPassword_ParamsEmbedded(t *testing.T) {
	hash, err := service.HashPassword("some-password", service.DevelopmentScryptParams)
	require.NoError(t, err)

	// ln=5,r=5,p=1 are the development parameters.
	assert.True(t, strings.HasPrefix(hash, "$scrypt$ln=5,r=5,p=1$"))
}

func TestVerifyPassword_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"not a hash", "plaintext"},
		{"wrong scheme", "$bcrypt$ln=5,r=5,p=1$AAAA$BBBB"},
		{"bad params", "$scrypt$garbage$AAAA$BBBB"},
		{"bad base64", "$scrypt$ln=5,r=5,p=1$!!!$???"},
		{"absurd cost", "$scrypt$ln=99,r=5,p=1$AAAA$BBBB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, service.VerifyPassword("whatever", tt.encoded))
		})
	}
}
