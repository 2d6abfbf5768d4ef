package game

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shelf/internal/cli"
)

// MoveCmd returns the game move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a game to another column",
		Long: `Move a game to the end of another column. An unassigned game is
placed into the column.

Examples:
  shelf game move --id=game-... --to=gameplay
  shelf game move --id=game-... --to=gameplay --json
`,
		RunE: runMove,
	}

	cmd.Flags().String("id", "", "Game ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().String("to", "", "Target column ID (required)")
	if err := cmd.MarkFlagRequired("to"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd, "Minimal output")
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	gameID, _ := cmd.Flags().GetString("id")
	targetID, _ := cmd.Flags().GetString("to")
	formatter := cli.Formatter(cmd)

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	ctx := cmd.Context()
	b := cliInstance.App.Board

	g, ok := b.Game(gameID)
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "GAME_NOT_FOUND", fmt.Errorf("game %s not found", gameID))
	}
	target, ok := b.Column(targetID)
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND", fmt.Errorf("column %s not found", targetID))
	}

	source, owned := b.OwnerOf(gameID)
	if owned {
		// The same transfer a drag from source to target performs
		b.DragStart(gameID, source)
		err = b.Drop(ctx, targetID)
	} else {
		err = b.AssignGame(ctx, gameID, targetID)
	}
	if err != nil {
		return formatter.FailDomain(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]any{
			"game_id": gameID,
			"from":    source,
			"to":      targetID,
		})
	}

	if source == targetID {
		fmt.Printf("Game '%s' is already in '%s'\n", g.Title, target.Title)
		return nil
	}
	fmt.Printf("✓ Game '%s' moved to '%s'\n", g.Title, target.Title)
	return nil
}
