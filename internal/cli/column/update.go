package column

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shelf/internal/cli"
	"github.com/thenoetrevino/shelf/internal/services/board"
)

// UpdateCmd returns the column update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rename a column",
		Long: `Rename a column. Its position and games are unchanged.

Examples:
  shelf column update --id=gameplay --title="Mechanics"
  shelf column update --id=gameplay --title="Mechanics" --json
`,
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Column ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().String("title", "", "New column title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	columnID, _ := cmd.Flags().GetString("id")
	title, _ := cmd.Flags().GetString("title")
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

	if _, ok := cliInstance.App.Board.Column(columnID); !ok {
		return formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND", fmt.Errorf("column %s not found", columnID))
	}

	if _, err := cliInstance.App.Board.SaveColumn(cmd.Context(), board.SaveColumnRequest{ID: columnID, Title: title}); err != nil {
		return formatter.FailDomain(err)
	}
	col, _ := cliInstance.App.Board.Column(columnID)

	if formatter.Quiet {
		fmt.Println(columnID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]any{"column": col})
	}

	fmt.Printf("✓ Column %s renamed to '%s'\n", columnID, col.Title)
	return nil
}
