package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/shelf/internal/models"
	"github.com/thenoetrevino/shelf/internal/store"
)

// setupTestStore creates an in-memory database and returns a store over it
func setupTestStore(t *testing.T) *KVStore {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:")
	require.NoError(t, err)
	s := NewKVStore(db, ":memory:")
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestKVStore_GetMissing(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestKVStore_PutGetUpsert(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	require.NoError(t, s.Put(ctx, "k", []byte(`"one"`)))
	require.NoError(t, s.Put(ctx, "k", []byte(`"two"`)))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"two"`), got)

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, keys)
}

func TestKVStore_EmptyKey(t *testing.T) {
	s := setupTestStore(t)
	assert.ErrorIs(t, s.Put(context.Background(), "", []byte("1")), store.ErrInvalidKey)
}

func TestKVStore_InMemoryHasNoPath(t *testing.T) {
	assert.Empty(t, setupTestStore(t).Path())
}

func TestKVStore_BoardRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	columns := []*models.Column{
		{ID: "storytelling", Title: "Storytelling Masters", GameIDs: []string{"game-1", "game-2"}},
		{ID: "classics", Title: "Timeless Classics", GameIDs: []string{}},
	}
	require.NoError(t, store.Save(ctx, s, models.ColumnsKey, columns))

	got := store.Load(ctx, s, models.ColumnsKey, models.DefaultColumns())
	assert.Equal(t, columns, got)
}

func TestKVStore_MalformedValueLoadsDefault(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	require.NoError(t, s.Put(ctx, models.ColumnsKey, []byte("[{broken")))

	got := store.Load(ctx, s, models.ColumnsKey, models.DefaultColumns())
	assert.Equal(t, models.DefaultColumns(), got)
}

func TestInitDB_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "shelf.db")

	db, err := InitDB(ctx, path)
	require.NoError(t, err)
	s := NewKVStore(db, path)
	require.NoError(t, store.Save(ctx, s, models.GamesKey, map[string]*models.Game{
		"game-1": models.NewGame("game-1", models.GameFields{Title: "Xenogears"}),
	}))
	require.NoError(t, s.Close())

	db, err = InitDB(ctx, path)
	require.NoError(t, err)
	s = NewKVStore(db, path)
	defer func() { _ = s.Close() }()

	games := store.Load(ctx, s, models.GamesKey, map[string]*models.Game{})
	require.Contains(t, games, "game-1")
	assert.Equal(t, "Xenogears", games["game-1"].Title)
	assert.Equal(t, path, s.Path())
}

func TestMigrationIdempotency(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	require.NoError(t, s.Put(ctx, "k", []byte("1")))

	// Run migrations again
	require.NoError(t, runMigrations(ctx, s.db))
	require.NoError(t, runMigrations(ctx, s.db))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)
}
