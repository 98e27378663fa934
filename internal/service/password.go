package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// ScryptParams are the cost parameters baked into every hash. They are
// selected once per process from configuration, never per request.
type ScryptParams struct {
	N      int
	R      int
	P      int
	KeyLen int
}

var (
	ProductionScryptParams  = ScryptParams{N: 1 << 14, R: 10, P: 2, KeyLen: 32}
	DevelopmentScryptParams = ScryptParams{N: 1 << 5, R: 5, P: 1, KeyLen: 32}
)

// scrypt is CPU-bound; the semaphore keeps concurrent signups/logins from
// starving I/O-bound handlers.
var hashSem = make(chan struct{}, runtime.GOMAXPROCS(0))

const saltLen = 16

// HashPassword derives a salted scrypt hash with a fresh random salt. The
// parameters and salt are embedded in the returned string so verification
// needs no external state.
func HashPassword(password string, params ScryptParams) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hashSem <- struct{}{}
	key, err := scrypt.Key([]byte(password), salt, params.N, params.R, params.P, params.KeyLen)
	<-hashSem
	if err != nil {
		return "", err
	}

	enc := base64.RawStdEncoding
	logN := 0
	for n := params.N; n > 1; n >>= 1 {
		logN++
	}
	return fmt.Sprintf("$scrypt$ln=%d,r=%d,p=%d$%s$%s",
		logN, params.R, params.P, enc.EncodeToString(salt), enc.EncodeToString(key)), nil
}

// VerifyPassword recomputes the hash with the parameters and salt embedded
// in encoded and compares in constant time. The derivation always runs to
// completion; there is no early return that would leak timing.
func VerifyPassword(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != "" || parts[1] != "scrypt" {
		return false
	}

	var logN, r, p int
	if _, err := fmt.Sscanf(parts[2], "ln=%d,r=%d,p=%d", &logN, &r, &p); err != nil {
		return false
	}
	if logN < 1 || logN > 30 {
		return false
	}

	enc := base64.RawStdEncoding
	salt, err := enc.DecodeString(parts[3])
	if err != nil {
		return false
	}
	want, err := enc.DecodeString(parts[4])
	if err != nil {
		return false
	}

	hashSem <- struct{}{}
	got, err := scrypt.Key([]byte(password), salt, 1<<logN, r, p, len(want))
	<-hashSem
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(got, want) == 1
}
