package game

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shelf/internal/cli"
	"github.com/thenoetrevino/shelf/internal/services/board"
	gameservice "github.com/thenoetrevino/shelf/internal/services/game"
)

// UpdateCmd returns the game update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Edit a game",
		Long: `Edit a game's fields. Only the flags given are changed; the game
stays in its column.

Examples:
  shelf game update --id=game-... --score=10
  shelf game update --id=game-... --tags="classic,snes,time travel" --json
`,
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Game ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	addFieldFlags(cmd)

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	gameID, _ := cmd.Flags().GetString("id")
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
	existing, ok := b.Game(gameID)
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "GAME_NOT_FOUND", fmt.Errorf("game %s not found", gameID))
	}

	fields, err := gameservice.Validate(applyFieldFlags(cmd, existing.Fields()))
	if err != nil {
		return formatter.FailDomain(err)
	}

	if _, err := b.SaveGame(cmd.Context(), board.SaveGameRequest{ID: gameID, Fields: fields}); err != nil {
		return formatter.FailDomain(err)
	}
	g, _ := b.Game(gameID)

	if formatter.Quiet {
		fmt.Println(gameID)
		return nil
	}

	if formatter.JSON {
		owner, _ := b.OwnerOf(gameID)
		return formatter.JSONResult(map[string]any{"game": gameJSON(g, owner)})
	}

	fmt.Printf("✓ Game '%s' updated successfully\n", g.Title)
	return nil
}
