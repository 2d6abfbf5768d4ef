package game

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shelf/internal/cli"
	"github.com/thenoetrevino/shelf/internal/cli/styles"
	"github.com/thenoetrevino/shelf/internal/markdown"
)

// ShowCmd returns the game show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show game details",
		Long:  "Display all details of a game, with its review rendered as markdown.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().String("id", "", "Game ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd, "Minimal output (ID only)")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	gameID, _ := cmd.Flags().GetString("id")
	if len(args) > 0 {
		gameID = args[0]
	}
	formatter := cli.Formatter(cmd)

	if gameID == "" {
		return formatter.FailWithSuggestion(cli.ExitUsage, "INVALID_GAME_ID",
			fmt.Errorf("a game ID is required"),
			"Usage: shelf game show <id> or shelf game show --id=<id>")
	}

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
	g, ok := b.Game(gameID)
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "GAME_NOT_FOUND", fmt.Errorf("game %s not found", gameID))
	}
	owner, _ := b.OwnerOf(gameID)

	if formatter.Quiet {
		fmt.Println(g.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult(map[string]any{"game": gameJSON(g, owner)})
	}

	columnTitle := "(unassigned)"
	if col, ok := b.Column(owner); ok {
		columnTitle = col.Title
	}
	imageURL := g.ImageURL
	if imageURL == "" {
		imageURL = "(no image)"
	}

	var sb strings.Builder
	sb.WriteString(styles.TitleStyle.Render(g.Title) + "\n")
	sb.WriteString(styles.SubtitleStyle.Render(g.ID) + "\n\n")
	sb.WriteString(styles.RenderField("Score", styles.RenderScore(g.Score)) + "\n")
	sb.WriteString(styles.RenderField("Column", columnTitle) + "\n")
	if len(g.Tags) > 0 {
		sb.WriteString(styles.RenderField("Tags", styles.RenderTags(g.Tags)) + "\n")
	}
	sb.WriteString(styles.RenderField("Image", imageURL) + "\n")
	sb.WriteString(styles.SectionStyle.Render("Description") + "\n")
	sb.WriteString(g.Description + "\n")
	sb.WriteString(styles.SectionStyle.Render("Review") + "\n")
	sb.WriteString(markdown.Render(g.Review, styles.CardWidth-6))

	fmt.Println(styles.RenderCard(sb.String()))
	return nil
}
