package repository

import (
	"context"

	"github.com/blogdrown/blogdrown/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error)
	List(ctx context.Context) ([]*domain.BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PostVersionRepository is the append-only version history. Versions are
// never updated or deleted individually; they go away only when their post
// cascades.
type PostVersionRepository interface {
	Append(ctx context.Context, version *domain.PostVersion) error
	Latest(ctx context.Context, postID uuid.UUID) (*domain.PostVersion, error)
	LatestPerPost(ctx context.Context) (map[uuid.UUID]*domain.PostVersion, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type FollowRepository interface {
	Add(ctx context.Context, followerID, followeeID uuid.UUID) error
	Remove(ctx context.Context, followerID, followeeID uuid.UUID) error
	ListFollowing(ctx context.Context, followerID uuid.UUID) ([]*domain.User, error)
}

// TxManager runs fn against a transaction-scoped repository set. Returning
// an error rolls the transaction back; nil commits. Ownership-gated
// mutations use this so the owner check and the write cannot interleave
// with a concurrent delete.
type TxManager interface {
	Do(ctx context.Context, fn func(repos *Repositories) error) error
}

type Repositories struct {
	User        UserRepository
	Post        PostRepository
	PostVersion PostVersionRepository
	Comment     CommentRepository
	Follow      FollowRepository
	Tx          TxManager
}
