package service

import (
	"errors"
	"time"

	"github.com/blogdrown/blogdrown/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionLifetime bounds how long an issued token is honored. Expiry is
// enforced by the auth middleware, not baked into the token, so deleting the
// user remains the only other revocation path.
const SessionLifetime = 30 * 24 * time.Hour

var errInvalidToken = errors.New("invalid session token")

// SessionClaims is the signed payload carried by the session cookie. It
// proves who issued it, not that the subject still exists; the middleware
// checks existence separately.
type SessionClaims struct {
	UserID   uuid.UUID
	IssuedAt time.Time
}

// IssueSessionToken signs the claims with HMAC-SHA384.
func IssueSessionToken(claims SessionClaims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.MapClaims{
		"sub": domain.FormatID(claims.UserID),
		"iat": claims.IssuedAt.Unix(),
	})
	return token.SignedString([]byte(secret))
}

// VerifySessionToken recomputes the signature and rejects on any mismatch,
// malformed structure, or unexpected signing method. Callers get the same
// error regardless of which check failed.
func VerifySessionToken(tokenString, secret string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS384 {
			return nil, errInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidToken
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, errInvalidToken
	}
	userID, err := domain.ParseID(sub)
	if err != nil {
		return nil, errInvalidToken
	}

	iat, ok := mapClaims["iat"].(float64)
	if !ok {
		return nil, errInvalidToken
	}

	return &SessionClaims{
		UserID:   userID,
		IssuedAt: time.Unix(int64(iat), 0),
	}, nil
}
