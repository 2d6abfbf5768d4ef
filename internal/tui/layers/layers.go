// Package layers positions modal content over the board.
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer with content centered on the screen.
// Returns nil for empty content.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// Compose stacks a modal over a base view. A nil modal returns the base as is.
func Compose(base string, modal *lipgloss.Layer) string {
	if modal == nil {
		return base
	}
	return lipgloss.NewCanvas(lipgloss.NewLayer(base), modal).Render()
}
