package service

import (
	"context"

	"github.com/blogdrown/blogdrown/internal/domain"
	"github.com/blogdrown/blogdrown/internal/repository"
	"github.com/google/uuid"
)

type FollowService struct {
	repos *repository.Repositories
}

func NewFollowService(repos *repository.Repositories) *FollowService {
	return &FollowService{repos: repos}
}

// Add is idempotent; following an already-followed user is a no-op.
func (s *FollowService) Add(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if _, err := s.repos.User.GetByID(ctx, followeeID); err != nil {
		return notFound(err)
	}
	return s.repos.Follow.Add(ctx, followerID, followeeID)
}

// Remove is idempotent; unfollowing an unfollowed user is a no-op.
func (s *FollowService) Remove(ctx context.Context, followerID, followeeID uuid.UUID) error {
	return s.repos.Follow.Remove(ctx, followerID, followeeID)
}

func (s *FollowService) List(ctx context.Context, followerID uuid.UUID) ([]*domain.User, error) {
	return s.repos.Follow.ListFollowing(ctx, followerID)
}
