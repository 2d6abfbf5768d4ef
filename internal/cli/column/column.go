// Package column holds the commands that edit the board's columns.
package column

import (
	"github.com/spf13/cobra"
)

// ColumnCmd groups the column subcommands
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "column",
		Aliases: []string{"col"},
		Short:   "Create, list, rename and delete board columns",
		Long: `Columns are the lanes of the board, shown left to right in the order
they were created. Deleting a column follows board.column_delete in the
config: orphan leaves its games unassigned, cascade deletes them.`,
	}

	cmd.AddCommand(
		CreateCmd(),
		ListCmd(),
		UpdateCmd(),
		DeleteCmd(),
	)
	return cmd
}
