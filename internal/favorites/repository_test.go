package favorites_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"roomlift-backend/internal/favorites"
	"roomlift-backend/internal/kvstore"
)

const userA = "user-a"

func newRepo(t *testing.T) (*favorites.Repository, *kvstore.Store) {
	t.Helper()
	dir := t.TempDir()
	kv, err := kvstore.NewStore(dir)
	require.NoError(t, err)
	repo := favorites.NewRepository(filepath.Join(dir, "favorites.db"), kv)
	t.Cleanup(func() { repo.Close() })
	return repo, kv
}

func TestAddThenList(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	f, err := repo.Add(ctx, userA, "https://img.example.com/a.jpg", "Bedroom", "Modern")
	require.NoError(t, err)
	assert.NotZero(t, f.ID)
	assert.NotEmpty(t, f.Date)

	list := repo.List(ctx, userA)
	require.Len(t, list, 1)
	assert.Equal(t, f.ID, list[0].ID)
	assert.Equal(t, "Bedroom", list[0].RoomType)
	assert.Equal(t, "Modern", list[0].Style)
}

func TestListNewestFirst(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	first, err := repo.Add(ctx, userA, "https://img.example.com/a.jpg", "Kitchen", "Modern")
	require.NoError(t, err)
	second, err := repo.Add(ctx, userA, "https://img.example.com/b.jpg", "Bedroom", "Bohemian")
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID, "ids must be monotonic")

	list := repo.List(ctx, userA)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestCollectionsAreScopedToUser(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	f, err := repo.Add(ctx, userA, "https://img.example.com/a.jpg", "Bedroom", "Modern")
	require.NoError(t, err)

	// Another user sees an empty collection and cannot match the pair.
	assert.Empty(t, repo.List(ctx, "user-b"))
	found, _ := repo.IsFavorite(ctx, "user-b", "Bedroom", "Modern")
	assert.False(t, found)

	// A delete by another user must not touch the record.
	require.NoError(t, repo.Remove(ctx, "user-b", f.ID))
	list := repo.List(ctx, userA)
	require.Len(t, list, 1)
	assert.Equal(t, f.ID, list[0].ID)

	// The owner can still delete it.
	require.NoError(t, repo.Remove(ctx, userA, f.ID))
	assert.Empty(t, repo.List(ctx, userA))
}

func TestRemoveDeletesFromBothStores(t *testing.T) {
	repo, kv := newRepo(t)
	ctx := context.Background()

	f, err := repo.Add(ctx, userA, "https://img.example.com/a.jpg", "Bathroom", "Industrial")
	require.NoError(t, err)
	require.NoError(t, repo.Remove(ctx, userA, f.ID))

	assert.Empty(t, repo.List(ctx, userA))

	// Mirror is rebuilt from the primary, so it is empty too.
	var projections []favorites.Projection
	found, err := kv.Get("favorites:"+userA, &projections)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, projections)
}

func TestIsFavoriteMatchesByLabelPair(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	first, err := repo.Add(ctx, userA, "https://img.example.com/a.jpg", "Bedroom", "Modern")
	require.NoError(t, err)
	require.NoError(t, repo.Remove(ctx, userA, first.ID))

	second, err := repo.Add(ctx, userA, "https://img.example.com/b.jpg", "Bedroom", "Modern")
	require.NoError(t, err)

	found, id := repo.IsFavorite(ctx, userA, "Bedroom", "Modern")
	assert.True(t, found)
	assert.Equal(t, second.ID, id, "membership refers to the newest matching id")

	found, _ = repo.IsFavorite(ctx, userA, "Kitchen", "Modern")
	assert.False(t, found)
}

func TestIsFavoriteCannotDistinguishDuplicates(t *testing.T) {
	// Two favorites with the same room/style pair are indistinguishable for
	// toggle purposes: only the first (newest) match is ever reported.
	repo, _ := newRepo(t)
	ctx := context.Background()

	older, err := repo.Add(ctx, userA, "https://img.example.com/a.jpg", "Bedroom", "Modern")
	require.NoError(t, err)
	newer, err := repo.Add(ctx, userA, "https://img.example.com/b.jpg", "Bedroom", "Modern")
	require.NoError(t, err)

	found, id := repo.IsFavorite(ctx, userA, "Bedroom", "Modern")
	assert.True(t, found)
	assert.Equal(t, newer.ID, id)
	assert.NotEqual(t, older.ID, id)
}

func TestMirrorProjectionOmitsThumbnail(t *testing.T) {
	repo, kv := newRepo(t)
	ctx := context.Background()

	f, err := repo.Add(ctx, userA, "https://images.unsplash.com/photo-1?raw=1", "Kitchen", "Modern")
	require.NoError(t, err)
	assert.NotEmpty(t, f.ThumbnailURL)

	var projections []favorites.Projection
	found, err := kv.Get("favorites:"+userA, &projections)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, projections, 1)
	assert.Equal(t, f.ID, projections[0].ID)
	assert.Equal(t, "Kitchen", projections[0].RoomType)
}

func TestListFallsBackToMirrorWhenPrimaryUnavailable(t *testing.T) {
	dir := t.TempDir()
	kv, err := kvstore.NewStore(dir)
	require.NoError(t, err)

	// Seed the mirror as a previous process would have left it.
	seed := []favorites.Projection{
		{ID: 42, RoomType: "Bedroom", Style: "Modern", Date: "2026-01-02T03:04:05Z"},
	}
	require.NoError(t, kv.Set("favorites:"+userA, seed))

	// Point the database at an unusable path: its parent is a regular file,
	// so the primary store cannot be created.
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	repo := favorites.NewRepository(filepath.Join(blocker, "favorites.db"), kv)
	defer repo.Close()

	list := repo.List(context.Background(), userA)
	require.Len(t, list, 1)
	assert.Equal(t, int64(42), list[0].ID)
	assert.Equal(t, "Bedroom", list[0].RoomType)
	assert.Empty(t, list[0].ThumbnailURL, "mirror-derived entries have no thumbnail")
}

func TestMirrorOnlyAddAndRemove(t *testing.T) {
	dir := t.TempDir()
	kv, err := kvstore.NewStore(dir)
	require.NoError(t, err)

	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	repo := favorites.NewRepository(filepath.Join(blocker, "favorites.db"), kv)
	defer repo.Close()

	ctx := context.Background()
	f, err := repo.Add(ctx, userA, "https://img.example.com/a.jpg", "Kitchen", "Modern")
	require.NoError(t, err)

	list := repo.List(ctx, userA)
	require.Len(t, list, 1)

	require.NoError(t, repo.Remove(ctx, userA, f.ID))
	assert.Empty(t, repo.List(ctx, userA))
}

func TestThumbnailURL(t *testing.T) {
	// Resizable host gets the small-variant query.
	thumb := favorites.ThumbnailURL("https://images.unsplash.com/photo-123?ixid=abc")
	assert.Contains(t, thumb, "w=400")
	assert.Contains(t, thumb, "q=80")
	assert.Contains(t, thumb, "ixid=abc")

	// Unknown hosts pass through untouched.
	original := "https://cdn.other.example/full.jpg"
	assert.Equal(t, original, favorites.ThumbnailURL(original))

	// Unparseable references pass through too.
	assert.Equal(t, "::not-a-url::", favorites.ThumbnailURL("::not-a-url::"))
}
