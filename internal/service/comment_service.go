package service

import (
	"context"
	"time"

	"github.com/blogdrown/blogdrown/internal/domain"
	"github.com/blogdrown/blogdrown/internal/repository"
	"github.com/google/uuid"
)

type CommentService struct {
	repos *repository.Repositories
}

func NewCommentService(repos *repository.Repositories) *CommentService {
	return &CommentService{repos: repos}
}

// Create attaches a comment to an existing post. Any authenticated user may
// comment; only the author may later mutate it.
func (s *CommentService) Create(ctx context.Context, authorID, postID uuid.UUID, body domain.BoundedText) (*domain.Comment, error) {
	if _, err := s.repos.Post.GetByID(ctx, postID); err != nil {
		return nil, notFound(err)
	}

	comment := &domain.Comment{
		ID:        domain.NewID(),
		PostID:    postID,
		AuthorID:  authorID,
		Text:      body.String(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.repos.Comment.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Update runs the author check and the write in one transaction; the
// unauthorized path rolls back and leaves the row untouched.
func (s *CommentService) Update(ctx context.Context, authID, commentID uuid.UUID, body domain.BoundedText) (*domain.Comment, error) {
	var updated *domain.Comment

	err := s.repos.Tx.Do(ctx, func(repos *repository.Repositories) error {
		comment, err := repos.Comment.GetByID(ctx, commentID)
		if err != nil {
			return notFound(err)
		}
		if err := domain.Authorize(authID, comment.AuthorID, "edit", "comment"); err != nil {
			return err
		}

		updated, err = repos.Comment.UpdateText(ctx, commentID, body.String())
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *CommentService) Delete(ctx context.Context, authID, commentID uuid.UUID) error {
	return s.repos.Tx.Do(ctx, func(repos *repository.Repositories) error {
		comment, err := repos.Comment.GetByID(ctx, commentID)
		if err != nil {
			return notFound(err)
		}
		if err := domain.Authorize(authID, comment.AuthorID, "delete", "comment"); err != nil {
			return err
		}
		return repos.Comment.Delete(ctx, commentID)
	})
}
