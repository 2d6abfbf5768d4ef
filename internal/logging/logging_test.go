package logging

import (
	"bytes"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefaults(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
	})
}

func TestSetupFiltersByLevel(t *testing.T) {
	restoreDefaults(t)
	var buf bytes.Buffer

	Setup(&buf, slog.LevelWarn)
	slog.Info("quiet")
	slog.Warn("loud", "game", "game-1")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "msg=loud")
	assert.Contains(t, out, "game=game-1")
}

func TestSetupRedirectsStandardLog(t *testing.T) {
	restoreDefaults(t)
	var buf bytes.Buffer

	Setup(&buf, slog.LevelInfo)
	log.Print("from the log package")

	assert.Contains(t, buf.String(), "from the log package")
}

func TestInitWritesUnderHome(t *testing.T) {
	restoreDefaults(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	closer, err := Init(slog.LevelDebug)
	require.NoError(t, err)
	slog.Debug("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(home, ".shelf", "logs", "shelf.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
}
