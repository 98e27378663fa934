package postgres_test

import (
	"context"
	"testing"

	"github.com/blogdrown/blogdrown/internal/repository/postgres"
	"github.com/blogdrown/blogdrown/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_AddIsIdempotent(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewFollowRepository(testDB.DB)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().WithUsername("alice_follows").Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().WithUsername("bob_followed").Build(t, testDB.DB)

	require.NoError(t, repo.Add(ctx, alice.ID, bob.ID))
	require.NoError(t, repo.Add(ctx, alice.ID, bob.ID))

	following, err := repo.ListFollowing(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, bob.ID, following[0].ID)
}

func TestFollowRepository_RemoveIsIdempotent(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewFollowRepository(testDB.DB)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().WithUsername("alice_removes").Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().WithUsername("bob_removed").Build(t, testDB.DB)

	require.NoError(t, repo.Add(ctx, alice.ID, bob.ID))
	require.NoError(t, repo.Remove(ctx, alice.ID, bob.ID))
	require.NoError(t, repo.Remove(ctx, alice.ID, bob.ID))

	following, err := repo.ListFollowing(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, following)
}

func TestFollowRepository_ListFollowingIsDirected(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewFollowRepository(testDB.DB)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().WithUsername("alice_directed").Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().WithUsername("bob_directed").Build(t, testDB.DB)

	require.NoError(t, repo.Add(ctx, alice.ID, bob.ID))

	// The edge points one way only.
	bobFollowing, err := repo.ListFollowing(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobFollowing)
}
