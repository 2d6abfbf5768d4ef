package components

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/shelf/internal/markdown"
	"github.com/thenoetrevino/shelf/internal/models"
)

// RenderGameDetail renders the scrollable body of the game detail modal.
// The review is markdown and goes through glamour at the given width.
func RenderGameDetail(g *models.Game, width int) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(g.Title))
	b.WriteString("  ")
	b.WriteString(ScoreStyle.Render(fmt.Sprintf("%.1f/10", g.Score)))
	b.WriteString("\n")

	if len(g.Tags) > 0 {
		tags := make([]string, len(g.Tags))
		for i, tag := range g.Tags {
			tags[i] = TagStyle.Render("#" + tag)
		}
		b.WriteString(strings.Join(tags, " "))
	} else {
		b.WriteString(SubtleStyle.Render("no tags"))
	}
	b.WriteString("\n")

	if g.ImageURL != "" {
		b.WriteString(SubtleStyle.Render("Cover: ") + g.ImageURL)
	} else {
		b.WriteString(SubtleStyle.Render("(no image)"))
	}
	b.WriteString("\n\n")

	b.WriteString(TitleStyle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(g.Description)
	b.WriteString("\n\n")

	b.WriteString(TitleStyle.Render("Review"))
	b.WriteString("\n")
	if review := markdown.Render(g.Review, width); review != "" {
		b.WriteString(strings.Trim(review, "\n"))
	} else {
		b.WriteString(SubtleStyle.Render("No review"))
	}

	return b.String()
}
