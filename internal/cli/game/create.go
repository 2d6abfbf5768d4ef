package game

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shelf/internal/cli"
	"github.com/thenoetrevino/shelf/internal/models"
	"github.com/thenoetrevino/shelf/internal/services/board"
	gameservice "github.com/thenoetrevino/shelf/internal/services/game"
)

// CreateCmd returns the game create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a game to the shelf",
		Long: `Add a game, optionally placing it at the end of a column.

Title, description and review are required. Score defaults to the
configured board.default_score (7.0 unless set).

Examples:
  # Human-readable output
  shelf game create --title="Chrono Trigger" --description="Time travel epic" \
    --review="Peak SNES" --score=9.5 --tags="classic,snes" --column=classics

  # JSON output for agents
  shelf game create --title="Chrono Trigger" ... --json

  # Quiet mode for bash capture
  GAME_ID=$(shelf game create --title="Chrono Trigger" ... --quiet)
`,
		RunE: runCreate,
	}

	addFieldFlags(cmd)
	cmd.Flags().String("column", "", "Column ID to place the game in (default: unassigned)")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	columnID, _ := cmd.Flags().GetString("column")
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

	if columnID != "" {
		if _, ok := b.Column(columnID); !ok {
			return formatter.FailWithSuggestion(cli.ExitNotFound, "COLUMN_NOT_FOUND",
				fmt.Errorf("column %s not found", columnID),
				"List columns with: shelf column list")
		}
	}

	fields := applyFieldFlags(cmd, models.GameFields{
		Tags:  []string{},
		Score: cliInstance.App.DefaultScore,
	})
	fields, err = gameservice.Validate(fields)
	if err != nil {
		return formatter.FailDomain(err)
	}

	id, err := b.SaveGame(cmd.Context(), board.SaveGameRequest{Fields: fields, TargetColumnID: columnID})
	if err != nil {
		return formatter.FailDomain(err)
	}
	g, _ := b.Game(id)

	if formatter.Quiet {
		fmt.Println(id)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]any{"game": gameJSON(g, columnID)})
	}

	fmt.Printf("✓ Game '%s' created successfully (ID: %s)\n", g.Title, id)
	if columnID != "" {
		col, _ := b.Column(columnID)
		fmt.Printf("  Column: %s\n", col.Title)
	} else {
		fmt.Println("  Column: (unassigned)")
	}
	return nil
}
