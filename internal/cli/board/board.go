package board

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shelf/internal/cli"
	"github.com/thenoetrevino/shelf/internal/cli/styles"
	"github.com/thenoetrevino/shelf/internal/models"
)

// BoardCmd returns the board subcommand
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the whole board",
		Long: `Print every column with its games in order, followed by the
unassigned games.

Examples:
  shelf board
  shelf board --json
`,
		RunE: runBoard,
	}

	cli.AddOutputFlags(cmd, "Minimal output (column:game ID pairs)")
	return cmd
}

type columnView struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Games []*models.Game `json:"games"`
}

func runBoard(cmd *cobra.Command, args []string) error {
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

	columns := b.Columns()
	views := make([]columnView, len(columns))
	for i, col := range columns {
		views[i] = columnView{ID: col.ID, Title: col.Title, Games: b.ColumnGames(col.ID)}
	}
	unassigned := b.Unassigned()

	if formatter.Quiet {
		for _, v := range views {
			for _, g := range v.Games {
				fmt.Printf("%s:%s\n", v.ID, g.ID)
			}
		}
		for _, g := range unassigned {
			fmt.Printf(":%s\n", g.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]any{
			"columns":    views,
			"unassigned": unassigned,
		})
	}

	for _, v := range views {
		fmt.Println(styles.TitleStyle.Render(v.Title) + styles.SubtitleStyle.Render(fmt.Sprintf(" (%s)", v.ID)))
		printGames(v.Games)
	}
	if len(unassigned) > 0 {
		fmt.Println(styles.TitleStyle.Render("Unassigned"))
		printGames(unassigned)
	}
	return nil
}

func printGames(games []*models.Game) {
	if len(games) == 0 {
		fmt.Println(styles.SubtitleStyle.Render("  (empty)"))
		return
	}
	for _, g := range games {
		line := fmt.Sprintf("  • %s %s", g.Title, styles.RenderScore(g.Score))
		if len(g.Tags) > 0 {
			line += " " + styles.RenderTags(g.Tags)
		}
		fmt.Println(line)
	}
}
