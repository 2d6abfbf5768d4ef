package components

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/shelf/internal/models"
)

func testGame(tags ...string) *models.Game {
	return &models.Game{
		ID:          "game-1",
		Title:       "Chrono Trigger",
		Description: "Time travel with friends",
		Review:      "A **classic**.",
		Score:       9.5,
		Tags:        tags,
	}
}

func TestRenderGameCard_Content(t *testing.T) {
	card := RenderGameCard(testGame("JRPG", "SNES", "Square"), false, false)

	assert.Contains(t, card, "9.5")
	assert.Contains(t, card, "Chrono Trigger")
	assert.Contains(t, card, "#JRPG")
	assert.Contains(t, card, "#SNES")
	assert.NotContains(t, card, "#Square")
	assert.Contains(t, card, "+1")
	assert.Equal(t, CardHeight, lipgloss.Height(card))
}

func TestRenderGameCard_NoTags(t *testing.T) {
	card := RenderGameCard(testGame(), true, true)
	assert.Contains(t, card, "no tags")
	assert.Equal(t, CardHeight, lipgloss.Height(card))
}

func TestRenderGameCard_TruncatesLongTitle(t *testing.T) {
	g := testGame()
	g.Title = "The Legend of Heroes: Trails in the Sky the 3rd"
	card := RenderGameCard(g, false, false)

	assert.Contains(t, card, "…")
	assert.Equal(t, CardHeight, lipgloss.Height(card))
}

func TestRenderLane_Empty(t *testing.T) {
	lane := RenderLane(Lane{Title: "Backlog", Height: 20})
	assert.Contains(t, lane, "Backlog (0)")
	assert.Contains(t, lane, "No games yet")
}

func TestRenderLane_ScrollIndicators(t *testing.T) {
	games := make([]*models.Game, 6)
	for i := range games {
		games[i] = testGame()
	}

	top := RenderLane(Lane{Title: "Playing", Games: games, Height: 6 + 2*CardHeight})
	assert.Contains(t, top, "Playing (6)")
	assert.NotContains(t, top, "more above")
	assert.Contains(t, top, "more below")

	bottom := RenderLane(Lane{Title: "Playing", Games: games, Height: 6 + 2*CardHeight, ScrollOffset: 4})
	assert.Contains(t, bottom, "more above")
	assert.NotContains(t, bottom, "more below")
}

func TestVisibleCards(t *testing.T) {
	assert.Equal(t, 1, VisibleCards(0))
	assert.Equal(t, 3, VisibleCards(6+3*CardHeight))
}

func TestRenderGameDetail(t *testing.T) {
	out := RenderGameDetail(testGame("JRPG"), 60)

	assert.Contains(t, out, "Chrono Trigger")
	assert.Contains(t, out, "9.5/10")
	assert.Contains(t, out, "#JRPG")
	assert.Contains(t, out, "(no image)")
	assert.Contains(t, out, "Description")
	assert.Contains(t, out, "Time travel with friends")
	assert.Contains(t, out, "Review")
	assert.Contains(t, out, "classic")
}

func TestRenderGameDetail_WithImage(t *testing.T) {
	g := testGame()
	g.ImageURL = "https://example.com/chrono.png"
	out := RenderGameDetail(g, 60)

	assert.Contains(t, out, "https://example.com/chrono.png")
	assert.NotContains(t, out, "(no image)")
	assert.Contains(t, out, "no tags")
}
