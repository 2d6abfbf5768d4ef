package column

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shelf/internal/cli"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns",
		Long: `List all columns in display order with their game counts.

Examples:
  # Human-readable list
  shelf column list

  # JSON output for agents
  shelf column list --json

  # Quiet mode (one ID per line)
  shelf column list --quiet
`,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd, "Minimal output (IDs only)")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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

	columns := cliInstance.App.Board.Columns()

	if formatter.Quiet {
		for _, col := range columns {
			fmt.Println(col.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]any{"columns": columns})
	}

	if len(columns) == 0 {
		fmt.Println("No columns found")
		return nil
	}

	fmt.Println("Columns:")
	for i, col := range columns {
		fmt.Printf("  %d. %s (%d games, ID: %s)\n", i+1, col.Title, len(col.GameIDs), col.ID)
	}
	return nil
}
