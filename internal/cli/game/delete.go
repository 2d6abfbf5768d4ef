package game

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shelf/internal/cli"
)

// DeleteCmd returns the game delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a game",
		Long: `Delete a game and remove it from its column (requires confirmation
unless --force or --quiet).

Examples:
  shelf game delete --id=game-...
  shelf game delete --id=game-... --force
`,
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Game ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd, "Minimal output")
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	gameID, _ := cmd.Flags().GetString("id")
	force, _ := cmd.Flags().GetBool("force")
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

	b := cliInstance.App.Board
	g, ok := b.Game(gameID)
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "GAME_NOT_FOUND", fmt.Errorf("game %s not found", gameID))
	}

	if !force && !formatter.Quiet && !formatter.JSON {
		if !cli.Confirm(cmd.InOrStdin(), fmt.Sprintf("Delete game '%s'?", g.Title)) {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := b.DeleteGame(cmd.Context(), gameID); err != nil {
		return formatter.FailDomain(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]any{"game_id": gameID})
	}

	fmt.Printf("✓ Game '%s' deleted successfully\n", g.Title)
	return nil
}
