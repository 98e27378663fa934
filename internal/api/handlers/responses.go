package handlers

import (
	"time"

	"github.com/blogdrown/blogdrown/internal/domain"
)

// Wire shapes shared across handlers. IDs are ULID strings; storage keys
// never leak.

type MinUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type AuthUserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdatedResponse struct {
	UpdatedAt time.Time `json:"updated_at"`
}

func minUser(u *domain.User) MinUser {
	return MinUser{
		ID:       domain.FormatID(u.ID),
		Username: u.Username,
	}
}

func authUser(u *domain.User) AuthUserResponse {
	return AuthUserResponse{
		ID:        domain.FormatID(u.ID),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
