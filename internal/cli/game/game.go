package game

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shelf/internal/cli"
	"github.com/thenoetrevino/shelf/internal/models"
)

// GameCmd returns the game parent command
func GameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Manage games",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}

// addFieldFlags registers one flag per editable game field
func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Game title")
	cmd.Flags().String("description", "", "Short description")
	cmd.Flags().String("review", "", "Review text (markdown)")
	cmd.Flags().Float64("score", 0, "Score from 0 to 10")
	cmd.Flags().String("tags", "", "Comma separated tags")
	cmd.Flags().String("image-url", "", "Cover image URL (http or https)")
}

// applyFieldFlags overlays every flag the user set onto base
func applyFieldFlags(cmd *cobra.Command, base models.GameFields) models.GameFields {
	flags := cmd.Flags()
	if flags.Changed("title") {
		base.Title, _ = flags.GetString("title")
	}
	if flags.Changed("description") {
		base.Description, _ = flags.GetString("description")
	}
	if flags.Changed("review") {
		base.Review, _ = flags.GetString("review")
	}
	if flags.Changed("score") {
		base.Score, _ = flags.GetFloat64("score")
	}
	if flags.Changed("tags") {
		raw, _ := flags.GetString("tags")
		base.Tags = cli.ParseTags(raw)
	}
	if flags.Changed("image-url") {
		base.ImageURL, _ = flags.GetString("image-url")
	}
	return base
}

// gameJSON is the JSON view of a game with its owning column
func gameJSON(g *models.Game, columnID string) map[string]any {
	return map[string]any{
		"id":          g.ID,
		"title":       g.Title,
		"description": g.Description,
		"tags":        g.Tags,
		"score":       g.Score,
		"imageUrl":    g.ImageURL,
		"review":      g.Review,
		"column":      columnID,
	}
}
