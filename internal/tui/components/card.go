package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/shelf/internal/models"
)

const (
	// CardWidth is the inner width of a game card
	CardWidth = 28
	// CardHeight is the fixed height of a game card, borders included
	CardHeight = 4
	// cardTags is how many tags a card shows before "+N"
	cardTags = 2

	cardTitleMaxLength = CardWidth - 8
	cardTagMaxLength   = 9
)

// RenderGameCard renders a single game as a fixed size card
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ 9.5 Chrono Trigger         ┃
//	┃ #JRPG #SNES +1             ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
//
// A held card (grabbed for a move) gets the accent border.
func RenderGameCard(g *models.Game, selected, held bool) string {
	bg := scheme.CardBackground
	if selected {
		bg = scheme.SelectedBg
	}
	bgColor := lipgloss.Color(bg)

	score := ScoreStyle.Background(bgColor).Render(fmt.Sprintf("%.1f", g.Score))
	title := lipgloss.NewStyle().Bold(true).Background(bgColor).Render(truncate(g.Title, cardTitleMaxLength))
	firstLine := " " + score + " " + title

	content := firstLine + "\n " + renderCardTags(g.Tags, bgColor)

	border := scheme.CardBorder
	switch {
	case held:
		border = scheme.Accent
	case selected:
		border = scheme.SelectedBorder
	}

	return CardStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(bgColor).
		Background(bgColor).
		Render(content)
}

// renderCardTags shows the first tags as chips and counts the rest
func renderCardTags(tags []string, bg color.Color) string {
	bgStyle := lipgloss.NewStyle().Background(bg)

	if len(tags) == 0 {
		return SubtleStyle.Inherit(bgStyle).Render("no tags")
	}

	shown := tags[:min(len(tags), cardTags)]
	chips := make([]string, 0, len(shown)+1)
	for _, tag := range shown {
		chips = append(chips, TagStyle.Inherit(bgStyle).Render("#"+truncate(tag, cardTagMaxLength)))
	}
	if extra := len(tags) - len(shown); extra > 0 {
		chips = append(chips, SubtleStyle.Inherit(bgStyle).Render(fmt.Sprintf("+%d", extra)))
	}
	return strings.Join(chips, bgStyle.Render(" "))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
