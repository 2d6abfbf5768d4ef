package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/shelf/internal/models"
)

// LaneWidth is the content width of a lane
const LaneWidth = 30

// laneOverhead is border + padding + header + top indicator + bottom indicator
const laneOverhead = 6

// Lane is everything needed to draw one lane of the board
type Lane struct {
	Title        string
	Games        []*models.Game
	Selected     bool
	SelectedGame int
	// DropTarget marks the focused lane while a game is held
	DropTarget   bool
	HeldGameID   string
	Height       int
	ScrollOffset int
}

// VisibleCards returns how many cards fit in a lane of the given height
func VisibleCards(height int) int {
	return max((height-laneOverhead)/CardHeight, 1)
}

// RenderLane renders a lane with its title, game count and cards
//
//	{Title} ({count})
//	▲ more above
//	{Card 1}
//	{Card 2}
//	▼ more below
func RenderLane(l Lane) string {
	header := fmt.Sprintf("%s (%d)", truncate(l.Title, LaneWidth-6), len(l.Games))
	content := TitleStyle.Render(header) + "\n"

	if len(l.Games) == 0 {
		content += SubtleStyle.Padding(1, 0).Render("No games yet")
	} else {
		visible := VisibleCards(l.Height)
		offset := min(l.ScrollOffset, max(0, len(l.Games)-1))
		end := min(offset+visible, len(l.Games))

		if offset > 0 {
			content += IndicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		var cards []string
		for i, g := range l.Games[offset:end] {
			selected := l.Selected && offset+i == l.SelectedGame
			cards = append(cards, RenderGameCard(g, selected, g.ID == l.HeldGameID))
		}
		content += strings.Join(cards, "\n")

		if end < len(l.Games) {
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	style := LaneStyle
	switch {
	case l.DropTarget:
		style = style.BorderForeground(lipgloss.Color(scheme.DropTarget))
	case l.Selected:
		style = style.BorderForeground(lipgloss.Color(scheme.SelectedBorder))
	}
	if l.Height > 0 {
		// Height sets the content area, the border takes the other 2 lines
		style = style.Height(l.Height - 2)
	}

	return style.Render(content)
}
