package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/blogdrown/blogdrown/internal/service"
	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "session"

// Auth authenticates the session cookie: verify the signature, check the
// 30-day lifetime, confirm the subject still exists. All rejection branches
// are observably identical so a caller cannot tell which check failed.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				rejectUnauthorized(w)
				return
			}

			claims, err := authService.VerifySession(cookie.Value)
			if err != nil {
				rejectUnauthorized(w)
				return
			}

			if claims.IssuedAt.Add(service.SessionLifetime).Before(time.Now()) {
				rejectUnauthorized(w)
				return
			}

			if _, err := authService.GetUserByID(r.Context(), claims.UserID); err != nil {
				rejectUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

func rejectUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Logging in is required for this endpoint",
		"errors":  map[string]string{},
	})
}
