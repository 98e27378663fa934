package service

import (
	"errors"

	"github.com/blogdrown/blogdrown/internal/config"
	"github.com/blogdrown/blogdrown/internal/domain"
	"github.com/blogdrown/blogdrown/internal/repository"
	"gorm.io/gorm"
)

type Services struct {
	Auth    *AuthService
	Post    *PostService
	Comment *CommentService
	Follow  *FollowService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos, cfg),
		Post:    NewPostService(repos),
		Comment: NewCommentService(repos),
		Follow:  NewFollowService(repos),
	}
}

// notFound maps the store's missing-record error onto the domain taxonomy;
// everything else passes through untouched.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
