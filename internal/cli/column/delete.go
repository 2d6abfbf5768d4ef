package column

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shelf/internal/cli"
	"github.com/thenoetrevino/shelf/internal/services/board"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a column",
		Long: `Delete a column by ID (requires confirmation unless --force or --quiet).

With the default orphan policy the column's games stay on the shelf as
unassigned games. With board.column_delete: cascade they are deleted too.

Examples:
  # Delete with confirmation
  shelf column delete --id=gameplay

  # Skip confirmation
  shelf column delete --id=gameplay --force
`,
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Column ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd, "Minimal output")
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	columnID, _ := cmd.Flags().GetString("id")
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
	col, ok := b.Column(columnID)
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND", fmt.Errorf("column %s not found", columnID))
	}

	if !force && !formatter.Quiet && !formatter.JSON {
		if len(col.GameIDs) > 0 {
			if b.Policy() == board.DeleteCascade {
				fmt.Printf("⚠ Warning: %d games in this column will be deleted\n", len(col.GameIDs))
			} else {
				fmt.Printf("⚠ Warning: %d games in this column will become unassigned\n", len(col.GameIDs))
			}
		}
		if !cli.Confirm(cmd.InOrStdin(), fmt.Sprintf("Delete column '%s'?", col.Title)) {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := b.DeleteColumn(cmd.Context(), columnID); err != nil {
		return formatter.FailDomain(err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]any{
			"column_id": columnID,
			"games":     col.GameIDs,
			"policy":    string(b.Policy()),
		})
	}

	fmt.Printf("✓ Column %s deleted successfully\n", columnID)
	return nil
}
