package service

import (
	"context"
	"errors"
	"time"

	"github.com/blogdrown/blogdrown/internal/config"
	"github.com/blogdrown/blogdrown/internal/domain"
	"github.com/blogdrown/blogdrown/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService struct {
	repos *repository.Repositories
	cfg   *config.Config
}

func NewAuthService(repos *repository.Repositories, cfg *config.Config) *AuthService {
	return &AuthService{repos: repos, cfg: cfg}
}

type SignupInput struct {
	Email    domain.BoundedText
	Username domain.BoundedText
	Password string
}

func (s *AuthService) scryptParams() ScryptParams {
	if s.cfg.IsProduction() {
		return ProductionScryptParams
	}
	return DevelopmentScryptParams
}

// Signup checks both uniqueness constraints independently so a caller who
// picked a taken username AND a taken email learns about both at once.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	usernameTaken, err := s.repos.User.ExistsByUsername(ctx, input.Username.String())
	if err != nil {
		return nil, err
	}
	emailTaken, err := s.repos.User.ExistsByEmail(ctx, input.Email.String())
	if err != nil {
		return nil, err
	}

	if usernameTaken || emailTaken {
		conflict := &domain.ConflictError{Fields: map[string]string{}}
		if usernameTaken {
			conflict.Fields["username"] = "Username " + input.Username.String() + " already exists"
		}
		if emailTaken {
			conflict.Fields["email"] = "Email " + input.Email.String() + " already exists"
		}
		return nil, conflict
	}

	hash, err := HashPassword(input.Password, s.scryptParams())
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           domain.NewID(),
		Username:     input.Username.String(),
		Email:        input.Email.String(),
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.repos.User.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login never reveals whether the email or the password was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repos.User.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBadCredentials
		}
		return nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrBadCredentials
	}

	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.repos.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) IssueSession(userID uuid.UUID) (string, error) {
	return IssueSessionToken(SessionClaims{UserID: userID, IssuedAt: time.Now()}, s.cfg.SecretKey)
}

func (s *AuthService) VerifySession(tokenString string) (*SessionClaims, error) {
	return VerifySessionToken(tokenString, s.cfg.SecretKey)
}
