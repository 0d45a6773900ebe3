package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javiermolinar/recetario/internal/recipe"
)

// newTestRepo creates a temporary SQLite repository for testing.
func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	repo, err := New(dbPath)
	require.NoError(t, err, "failed to create test repo")

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}

func TestRecordView(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	err := repo.RecordView(ctx, recipe.Summary{ID: 1, Title: "Pasta", Cuisine: "Italian"}, at)
	require.NoError(t, err)

	views, err := repo.RecentViews(ctx, 10)
	require.NoError(t, err)
	require.Len(t, views, 1)

	assert.Equal(t, int64(1), views[0].RecipeID)
	assert.Equal(t, "Pasta", views[0].Title)
	assert.Equal(t, "Italian", views[0].Cuisine)
	assert.True(t, views[0].ViewedAt.Equal(at))
}

func TestRecordView_EmptyTitle(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.RecordView(context.Background(), recipe.Summary{ID: 1, Title: "  "}, time.Now())
	assert.Error(t, err)
}

func TestRecentViews_NewestFirstAndDeduplicated(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.RecordView(ctx, recipe.Summary{ID: 1, Title: "Pasta"}, base))
	require.NoError(t, repo.RecordView(ctx, recipe.Summary{ID: 2, Title: "Tacos"}, base.Add(time.Minute)))
	require.NoError(t, repo.RecordView(ctx, recipe.Summary{ID: 1, Title: "Pasta al forno"}, base.Add(2*time.Minute)))
	require.NoError(t, repo.RecordView(ctx, recipe.Summary{ID: 3, Title: "Pho"}, base.Add(90*time.Second)))

	views, err := repo.RecentViews(ctx, 10)
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, int64(1), views[0].RecipeID)
	assert.Equal(t, "Pasta al forno", views[0].Title)
	assert.Equal(t, int64(3), views[1].RecipeID)
	assert.Equal(t, int64(2), views[2].RecipeID)
}

func TestRecentViews_Limit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Now()

	for i := 1; i <= 5; i++ {
		r := recipe.Summary{ID: int64(i), Title: "Recipe"}
		require.NoError(t, repo.RecordView(ctx, r, base.Add(time.Duration(i)*time.Second)))
	}

	views, err := repo.RecentViews(ctx, 2)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(5), views[0].RecipeID)
	assert.Equal(t, int64(4), views[1].RecipeID)

	views, err = repo.RecentViews(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, views, 5)
}

func TestRecentViews_Empty(t *testing.T) {
	repo := newTestRepo(t)
	views, err := repo.RecentViews(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestClearViews(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.RecordView(ctx, recipe.Summary{ID: 1, Title: "Pasta"}, time.Now()))
	require.NoError(t, repo.RecordView(ctx, recipe.Summary{ID: 1, Title: "Pasta"}, time.Now()))

	n, err := repo.ClearViews(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	views, err := repo.RecentViews(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestNew_ReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	repo, err := New(path)
	require.NoError(t, err)
	require.NoError(t, repo.RecordView(ctx, recipe.Summary{ID: 7, Title: "Soup"}, time.Now()))
	require.NoError(t, repo.Close())

	repo, err = New(path)
	require.NoError(t, err)
	defer func() { _ = repo.Close() }()

	views, err := repo.RecentViews(ctx, 10)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Soup", views[0].Title)
}
