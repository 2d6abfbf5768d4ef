package column

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shelf/internal/cli"
	"github.com/thenoetrevino/shelf/internal/services/board"
)

// CreateCmd returns the column create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new column",
		Long: `Append a new empty column to the board.

Examples:
  # Human-readable output
  shelf column create --title="Backlog"

  # JSON output for agents
  shelf column create --title="Backlog" --json

  # Quiet mode for bash capture
  COLUMN_ID=$(shelf column create --title="Backlog" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Column title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
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

	id, err := cliInstance.App.Board.SaveColumn(cmd.Context(), board.SaveColumnRequest{Title: title})
	if err != nil {
		return formatter.FailDomain(err)
	}
	col, _ := cliInstance.App.Board.Column(id)

	if formatter.Quiet {
		fmt.Println(id)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]any{"column": col})
	}

	fmt.Printf("✓ Column '%s' created successfully (ID: %s)\n", col.Title, id)
	return nil
}
