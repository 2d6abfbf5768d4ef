package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, path string) *Watcher {
	t.Helper()
	w, err := New(path, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = w.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		_ = w.Close()
	})
	return w
}

func waitChange(w *Watcher, d time.Duration) bool {
	select {
	case <-w.Changes():
		return true
	case <-time.After(d):
		return false
	}
}

func TestNew_EmptyPath(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrNothingToWatch)
}

func TestWatcher_DirectoryStore(t *testing.T) {
	dir := t.TempDir()
	w := startWatcher(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shelf-tmp-123"), []byte("x"), 0o644))
	assert.False(t, waitChange(w, 200*time.Millisecond), "foreign and temp files are ignored")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "jrpg-games.json"), []byte("{}"), 0o644))
	assert.True(t, waitChange(w, 2*time.Second))
}

func TestWatcher_DatabaseFile(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "shelf.db")
	require.NoError(t, os.WriteFile(dbPath, nil, 0o644))
	w := startWatcher(t, dbPath)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.db"), []byte("x"), 0o644))
	assert.False(t, waitChange(w, 200*time.Millisecond))

	require.NoError(t, os.WriteFile(dbPath+"-wal", []byte("x"), 0o644))
	assert.True(t, waitChange(w, 2*time.Second))
}

func TestWatcher_BurstCoalesces(t *testing.T) {
	dir := t.TempDir()
	w := startWatcher(t, dir)

	for range 5 {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "jrpg-columns.json"), []byte("[]"), 0o644))
	}
	require.True(t, waitChange(w, 2*time.Second))
	assert.False(t, waitChange(w, 200*time.Millisecond))
}
