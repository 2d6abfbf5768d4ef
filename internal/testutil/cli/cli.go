// Package cli holds helpers for CLI command tests. It is separate from
// testutil so that testutil stays free of the app import.
package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shelf/internal/app"
	"github.com/thenoetrevino/shelf/internal/models"
	"github.com/thenoetrevino/shelf/internal/services/board"
	"github.com/thenoetrevino/shelf/internal/store"
	"github.com/thenoetrevino/shelf/internal/testutil"
)

// SetupCLITest returns an App over a fresh in-memory store with the default
// columns and sequential game IDs (game-1, game-2, ...)
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()

	n := 0
	return app.New(context.Background(), store.NewMemoryBackend(),
		app.WithGameIDs(func() string {
			n++
			return fmt.Sprintf("game-%d", n)
		}),
	)
}

// CreateTestGame creates a valid game, optionally placed in a column, and
// returns its ID
func CreateTestGame(t *testing.T, a *app.App, title, columnID string, tags ...string) string {
	t.Helper()

	if tags == nil {
		tags = []string{}
	}
	id, err := a.Board.SaveGame(context.Background(), board.SaveGameRequest{
		Fields: models.GameFields{
			Title:       title,
			Description: title + " description",
			Tags:        tags,
			Score:       8,
			Review:      "A review of " + title,
		},
		TargetColumnID: columnID,
	})
	if err != nil {
		t.Fatalf("Failed to create test game: %v", err)
	}
	return id
}

// ExecuteCLICommand executes a CLI command with a test app instance
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithInput(t, testApp, cmd, args, "")
}

// ExecuteCLICommandWithInput executes a CLI command with stdin set to input
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, input string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	ctx := context.WithValue(context.Background(), testutil.TestAppKey, testApp)

	testutil.SetupCobraCommand(cmd, args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetContext(ctx)

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})
	return output, executeErr
}
