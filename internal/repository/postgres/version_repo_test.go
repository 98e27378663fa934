package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/blogdrown/blogdrown/internal/domain"
	"github.com/blogdrown/blogdrown/internal/repository/postgres"
	"github.com/blogdrown/blogdrown/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostVersionRepository_Latest(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewPostVersionRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	post := testutil.NewPostBuilder(owner).Build(t, testDB.DB)

	base := time.Now().Add(-time.Hour)
	for i, text := range []string{"first revision", "second revision", "third revision"} {
		err := repo.Append(ctx, &domain.PostVersion{
			PostID:    post.ID,
			Text:      text,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	latest, err := repo.Latest(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "third revision", latest.Text)
}

func TestPostVersionRepository_LatestTieBreaksByInsertionOrder(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewPostVersionRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	post := testutil.NewPostBuilder(owner).Build(t, testDB.DB)

	// Identical created_at simulates clock coarseness.
	at := time.Now().Truncate(time.Second)
	for _, text := range []string{"earlier insert", "later insert"} {
		err := repo.Append(ctx, &domain.PostVersion{
			PostID:    post.ID,
			Text:      text,
			CreatedAt: at,
		})
		require.NoError(t, err)
	}

	latest, err := repo.Latest(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "later insert", latest.Text)
}

func TestPostVersionRepository_LatestPerPost(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewPostVersionRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	postA := testutil.NewPostBuilder(owner).WithBody("post A original body, long enough to pass.").Build(t, testDB.DB)
	postB := testutil.NewPostBuilder(owner).WithBody("post B original body, long enough to pass.").Build(t, testDB.DB)

	err := repo.Append(ctx, &domain.PostVersion{
		PostID:    postA.ID,
		Text:      "post A edited body, also long enough to pass.",
		CreatedAt: time.Now().Add(time.Minute),
	})
	require.NoError(t, err)

	latest, err := repo.LatestPerPost(ctx)
	require.NoError(t, err)

	require.Contains(t, latest, postA.ID)
	require.Contains(t, latest, postB.ID)
	assert.Equal(t, "post A edited body, also long enough to pass.", latest[postA.ID].Text)
	assert.Equal(t, "post B original body, long enough to pass.", latest[postB.ID].Text)
}
