package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/blogdrown/blogdrown/internal/domain"
	"github.com/blogdrown/blogdrown/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PreviewByteBudget bounds the partial_body shown in post listings.
const PreviewByteBudget = 512

type PostService struct {
	repos *repository.Repositories
}

func NewPostService(repos *repository.Repositories) *PostService {
	return &PostService{repos: repos}
}

// PostDetail is a post with its current content resolved.
type PostDetail struct {
	Post     *domain.BlogPost
	Current  *domain.PostVersion
	Comments []*domain.Comment
}

type PostListItem struct {
	Post        *domain.BlogPost
	PartialBody string
	UpdatedAt   time.Time
}

// Create inserts the post and its first version in one transaction, so a
// post without version history is never observable.
func (s *PostService) Create(ctx context.Context, ownerID uuid.UUID, title, body domain.BoundedText) (*domain.BlogPost, *domain.PostVersion, error) {
	post := &domain.BlogPost{
		ID:        domain.NewID(),
		OwnerID:   ownerID,
		Title:     title.String(),
		TitleNorm: domain.NormalizeTitle(title.String()),
		CreatedAt: time.Now(),
	}
	version := &domain.PostVersion{
		PostID:    post.ID,
		Text:      body.String(),
		CreatedAt: time.Now(),
	}

	err := s.repos.Tx.Do(ctx, func(repos *repository.Repositories) error {
		if err := repos.Post.Create(ctx, post); err != nil {
			return err
		}
		return repos.PostVersion.Append(ctx, version)
	})
	if err != nil {
		return nil, nil, err
	}

	return post, version, nil
}

func (s *PostService) Get(ctx context.Context, id uuid.UUID) (*PostDetail, error) {
	post, err := s.repos.Post.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	current, err := s.repos.PostVersion.Latest(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Should be impossible: creation writes post and first version
			// in one transaction. Surface as a soft anomaly, not a crash.
			log.Printf("WARN [post.Get] database integrity: blog post %s exists but has no version history", domain.FormatID(id))
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	comments, err := s.repos.Comment.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}

	return &PostDetail{Post: post, Current: current, Comments: comments}, nil
}

// List returns every post with a rune-safe preview of its current content.
func (s *PostService) List(ctx context.Context) ([]*PostListItem, error) {
	posts, err := s.repos.Post.List(ctx)
	if err != nil {
		return nil, err
	}

	latest, err := s.repos.PostVersion.LatestPerPost(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*PostListItem, 0, len(posts))
	for _, post := range posts {
		version, ok := latest[post.ID]
		if !ok {
			log.Printf("WARN [post.List] database integrity: blog post %s exists but has no version history", domain.FormatID(post.ID))
			continue
		}
		items = append(items, &PostListItem{
			Post:        post,
			PartialBody: Preview(version.Text, PreviewByteBudget),
			UpdatedAt:   version.CreatedAt,
		})
	}
	return items, nil
}

// Update appends a new version; the previous body is never overwritten. The
// owner check and the append share one transaction so a concurrent delete
// cannot slip between them.
func (s *PostService) Update(ctx context.Context, authID, postID uuid.UUID, body domain.BoundedText) (*domain.PostVersion, error) {
	version := &domain.PostVersion{
		PostID:    postID,
		Text:      body.String(),
		CreatedAt: time.Now(),
	}

	err := s.repos.Tx.Do(ctx, func(repos *repository.Repositories) error {
		post, err := repos.Post.GetByID(ctx, postID)
		if err != nil {
			return notFound(err)
		}
		if err := domain.Authorize(authID, post.OwnerID, "edit", "blogpost"); err != nil {
			return err
		}
		return repos.PostVersion.Append(ctx, version)
	})
	if err != nil {
		return nil, err
	}

	return version, nil
}

// Delete removes the post and, by cascade, its versions and comments.
func (s *PostService) Delete(ctx context.Context, authID, postID uuid.UUID) error {
	return s.repos.Tx.Do(ctx, func(repos *repository.Repositories) error {
		post, err := repos.Post.GetByID(ctx, postID)
		if err != nil {
			return notFound(err)
		}
		if err := domain.Authorize(authID, post.OwnerID, "delete", "blogpost"); err != nil {
			return err
		}
		return repos.Post.Delete(ctx, postID)
	})
}
