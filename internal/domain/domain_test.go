package domain_test

import (
	"testing"

	"github.com/blogdrown/blogdrown/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello_world"},
		{"already_normal", "already_normal"},
		{"Multiple  Spaces", "multiple__spaces"},
		{"MiXeD CaSe", "mixed_case"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.NormalizeTitle(tt.title))
	}
}

func TestAuthorize(t *testing.T) {
	owner := domain.NewID()
	other := domain.NewID()

	assert.NoError(t, domain.Authorize(owner, owner, "edit", "blogpost"))

	err := domain.Authorize(other, owner, "edit", "blogpost")
	require.Error(t, err)

	var permissionErr *domain.PermissionError
	require.ErrorAs(t, err, &permissionErr)
	assert.Equal(t, "You do not have permission to edit this blogpost", err.Error())
}

func TestIDRoundTrip(t *testing.T) {
	id := domain.NewID()

	formatted := domain.FormatID(id)
	assert.Len(t, formatted, 26)

	parsed, err := domain.ParseID(formatted)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseID_Invalid(t *testing.T) {
	_, err := domain.ParseID("not-a-ulid")
	assert.Error(t, err)
}
