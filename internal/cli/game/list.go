package game

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shelf/internal/cli"
	"github.com/thenoetrevino/shelf/internal/models"
)

// ListCmd returns the game list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games",
		Long: `List games on the shelf, sorted by title. With --column the games are
listed in column order.

Examples:
  # Every game
  shelf game list

  # One column, in board order
  shelf game list --column=classics

  # Games no column holds
  shelf game list --unassigned

  # Tag glob (case-insensitive): snes, ps{1,2}, time*
  shelf game list --tag='ps{1,2}' --json
`,
		RunE: runList,
	}

	cmd.Flags().String("column", "", "Only games in this column")
	cmd.Flags().Bool("unassigned", false, "Only games in no column")
	cmd.Flags().String("tag", "", "Only games with a tag matching this glob")
	cmd.MarkFlagsMutuallyExclusive("column", "unassigned")

	cli.AddOutputFlags(cmd, "Minimal output (IDs only)")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	columnID, _ := cmd.Flags().GetString("column")
	unassigned, _ := cmd.Flags().GetBool("unassigned")
	tagPattern, _ := cmd.Flags().GetString("tag")
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

	var games []*models.Game
	switch {
	case columnID != "":
		if _, ok := b.Column(columnID); !ok {
			return formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND", fmt.Errorf("column %s not found", columnID))
		}
		games = b.ColumnGames(columnID)
	case unassigned:
		games = b.Unassigned()
	default:
		games = b.Games()
	}

	if tagPattern != "" {
		filtered := make([]*models.Game, 0, len(games))
		for _, g := range games {
			ok, err := cli.MatchTag(tagPattern, g.Tags)
			if err != nil {
				return formatter.Fail(cli.ExitUsage, "INVALID_TAG_PATTERN", err)
			}
			if ok {
				filtered = append(filtered, g)
			}
		}
		games = filtered
	}

	if formatter.Quiet {
		for _, g := range games {
			fmt.Println(g.ID)
		}
		return nil
	}

	if formatter.JSON {
		list := make([]map[string]any, len(games))
		for i, g := range games {
			owner, _ := b.OwnerOf(g.ID)
			list[i] = gameJSON(g, owner)
		}
		return formatter.JSONResult(map[string]any{"games": list})
	}

	if len(games) == 0 {
		fmt.Println("No games found")
		return nil
	}

	for _, g := range games {
		fmt.Printf("  %-30s %4.1f  %s\n", g.Title, g.Score, g.ID)
	}
	return nil
}
