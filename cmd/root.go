package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shelf/internal/cli"
	boardcmd "github.com/thenoetrevino/shelf/internal/cli/board"
	"github.com/thenoetrevino/shelf/internal/cli/column"
	"github.com/thenoetrevino/shelf/internal/cli/game"
	"github.com/thenoetrevino/shelf/internal/launcher"
)

// NewRootCmd builds the shelf command tree. With no subcommand it opens
// the interactive board.
func NewRootCmd() *cobra.Command {
	var opts cli.Options

	rootCmd := &cobra.Command{
		Use:   "shelf",
		Short: "Shelf - a terminal board for game reviews",
		Long: `Shelf keeps game reviews on a kanban board: columns of games you can
drag between, each with a score, tags and a markdown review.

Run without arguments to open the board, or use the subcommands for
scripting.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(cli.WithOptions(cmd.Context(), opts))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd.Context())
			if err != nil {
				return cli.Exit(cli.ExitDataErr, err)
			}
			return launcher.Launch(cmd.Context(), cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Config file (default $XDG_CONFIG_HOME/shelf/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&opts.Memory, "memory", false, "Use a throwaway in-memory store")

	rootCmd.AddCommand(game.GameCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(boardcmd.BoardCmd())

	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	err := NewRootCmd().ExecuteContext(context.Background())
	if err == nil {
		return cli.ExitSuccess
	}

	var exitErr *cli.ExitCodeError
	if !errors.As(err, &exitErr) {
		// Flag and argument errors from cobra itself
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return cli.ExitUsage
	}
	return cli.ExitCode(err)
}
