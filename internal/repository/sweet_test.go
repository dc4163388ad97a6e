package repository

import (
	"context"
	"os"
	"testing"

	"github.com/deppfellow/sweets/internal/model/sweet"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDatabaseURLEnv points the integration tests at a migrated database.
const testDatabaseURLEnv = "SWEETS_TEST_DATABASE_URL"

func newTestRepository(t *testing.T) *SweetRepository {
	t.Helper()

	dsn := os.Getenv(testDatabaseURLEnv)
	if dsn == "" {
		t.Skipf("%s not set, skipping repository integration tests", testDatabaseURLEnv)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, "TRUNCATE sweets RESTART IDENTITY")
	require.NoError(t, err)

	return NewSweetRepositoryWithDB(pool)
}

func TestSweetRepositoryLifecycle(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreateSweet(ctx, "soda", 20)
	require.NoError(t, err)
	assert.Equal(t, sweet.Sweet{ID: created.ID, Title: "soda", Calories: 20}, *created)

	got, found, err := repo.GetSweetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, *created, *got)

	updated, found, err := repo.UpdateSweet(ctx, sweet.Sweet{ID: created.ID, Title: "cola", Calories: 140})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, sweet.Sweet{ID: created.ID, Title: "cola", Calories: 140}, *updated)

	deleted, err := repo.DeleteSweet(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, found, err = repo.GetSweetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSweetRepositoryListOrder(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	empty, err := repo.ListSweets(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, title := range []string{"fudge", "toffee", "nougat"} {
		_, err := repo.CreateSweet(ctx, title, 100)
		require.NoError(t, err)
	}

	sweets, err := repo.ListSweets(ctx)
	require.NoError(t, err)
	require.Len(t, sweets, 3)
	assert.Equal(t, "fudge", sweets[0].Title)
	assert.Equal(t, "toffee", sweets[1].Title)
	assert.Equal(t, "nougat", sweets[2].Title)
}

func TestSweetRepositoryMissingRows(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, found, err := repo.UpdateSweet(ctx, sweet.Sweet{ID: 999, Title: "ghost", Calories: 1})
	require.NoError(t, err)
	assert.False(t, found)

	deleted, err := repo.DeleteSweet(ctx, 999)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestSweetRepositoryCheckConstraint(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.CreateSweet(context.Background(), "soda", -1)
	assert.Error(t, err)
}
