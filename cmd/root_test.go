package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/shelf/internal/cli"
	"github.com/thenoetrevino/shelf/internal/testutil"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	for _, path := range [][]string{
		{"game", "create"},
		{"game", "move"},
		{"column", "delete"},
		{"board"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	assert.NotNil(t, root.PersistentFlags().Lookup("memory"))
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestRootCmd_MemoryStore(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SHELF_THEME_FILE", "")

	root := NewRootCmd()
	root.SetArgs([]string{"--memory", "column", "list", "--quiet"})

	output, err := testutil.ExecuteCommand(t, root)
	require.NoError(t, err)
	assert.Equal(t, "storytelling\ngameplay\nclassics\n", output)
}

func TestRootCmd_ConfigFlagSelectsFileStore(t *testing.T) {
	t.Setenv("SHELF_THEME_FILE", "")
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("storage:\n  backend: file\n  path: "+dataDir+"\n"), 0o644))

	root := NewRootCmd()
	root.SetArgs([]string{"--config", configPath, "column", "create", "--title", "Backlog", "--quiet"})
	_, err := testutil.ExecuteCommand(t, root)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dataDir, "jrpg-columns.json"))

	root = NewRootCmd()
	root.SetArgs([]string{"--config", configPath, "column", "list", "--quiet"})
	output, err := testutil.ExecuteCommand(t, root)
	require.NoError(t, err)
	assert.Contains(t, output, "column-")
}

func TestRootCmd_BadConfigIsDataError(t *testing.T) {
	t.Setenv("SHELF_THEME_FILE", "")
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("storage: [\n"), 0o644))

	root := NewRootCmd()
	root.SetArgs([]string{"--config", configPath, "board"})
	_, err := testutil.ExecuteCommand(t, root)
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
}
