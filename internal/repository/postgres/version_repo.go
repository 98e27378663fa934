package postgres

import (
	"context"

	"github.com/blogdrown/blogdrown/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type postVersionRepository struct {
	db *gorm.DB
}

func NewPostVersionRepository(db *gorm.DB) *postVersionRepository {
	return &postVersionRepository{db: db}
}

func (r *postVersionRepository) Append(ctx context.Context, version *domain.PostVersion) error {
	return r.db.WithContext(ctx).Create(version).Error
}

// Latest resolves the current content of a post: maximal created_at, ties
// broken by insertion order.
func (r *postVersionRepository) Latest(ctx context.Context, postID uuid.UUID) (*domain.PostVersion, error) {
	var version domain.PostVersion
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Order("id DESC").
		First(&version).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// LatestPerPost fetches the current version of every post in one query, for
// the listing endpoint.
func (r *postVersionRepository) LatestPerPost(ctx context.Context) (map[uuid.UUID]*domain.PostVersion, error) {
	var versions []*domain.PostVersion
	err := r.db.WithContext(ctx).
		Raw(`SELECT DISTINCT ON (post_id) * FROM post_versions ORDER BY post_id, created_at DESC, id DESC`).
		Scan(&versions).Error
	if err != nil {
		return nil, err
	}

	latest := make(map[uuid.UUID]*domain.PostVersion, len(versions))
	for _, v := range versions {
		latest[v.PostID] = v
	}
	return latest, nil
}
