package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/blogdrown/blogdrown/internal/api/middleware"
	"github.com/blogdrown/blogdrown/internal/config"
	"github.com/blogdrown/blogdrown/internal/domain"
	"github.com/blogdrown/blogdrown/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	production  bool
}

func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, production: cfg.IsProduction()}
}

type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionCookie builds the session cookie; Secure is set only in production
// so local development over plain HTTP keeps working.
func sessionCookie(value string, production bool) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   production,
	}
}

func clearedSessionCookie(production bool) *http.Cookie {
	cookie := sessionCookie("", production)
	cookie.MaxAge = -1
	return cookie
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w, "")
		return
	}

	fieldErrors := map[string]string{}
	email, err := domain.EmailBounds.New("email", req.Email)
	if err != nil {
		fieldErrors["email"] = err.Error()
	}
	username, err := domain.UsernameBounds.New("username", req.Username)
	if err != nil {
		fieldErrors["username"] = err.Error()
	}
	if req.Password == "" {
		fieldErrors["password"] = "password is required"
	}
	if len(fieldErrors) > 0 {
		writeFieldErrors(w, fieldErrors)
		return
	}

	user, err := h.authService.Signup(r.Context(), service.SignupInput{
		Email:    email,
		Username: username,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, "auth.Signup", err)
		return
	}

	token, err := h.authService.IssueSession(user.ID)
	if err != nil {
		writeError(w, "auth.Signup", err)
		return
	}

	http.SetCookie(w, sessionCookie(token, h.production))
	writeJSON(w, http.StatusCreated, authUser(user))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w, "")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, "auth.Login", domain.ErrBadCredentials)
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, "auth.Login", err)
		return
	}

	token, err := h.authService.IssueSession(user.ID)
	if err != nil {
		writeError(w, "auth.Login", err)
		return
	}

	http.SetCookie(w, sessionCookie(token, h.production))
	writeJSON(w, http.StatusOK, authUser(user))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, clearedSessionCookie(h.production))
	w.WriteHeader(http.StatusNoContent)
}

// Info returns the caller's own profile.
func (h *AuthHandler) Info(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, newErrorResponse("Logging in is required for this endpoint"))
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeError(w, "auth.Info", err)
		return
	}

	writeJSON(w, http.StatusOK, authUser(user))
}
