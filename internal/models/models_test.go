package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGame_NilTagsBecomeEmpty(t *testing.T) {
	g := NewGame("game-1", GameFields{Title: "Chrono Trigger"})

	assert.NotNil(t, g.Tags)
	assert.Empty(t, g.Tags)
	assert.Equal(t, "game-1", g.ID)
}

func TestGame_CloneIsDeep(t *testing.T) {
	g := NewGame("game-1", GameFields{Title: "FF6", Tags: []string{"classic"}})

	c := g.Clone()
	c.Tags[0] = "changed"
	c.Title = "changed"

	assert.Equal(t, "classic", g.Tags[0])
	assert.Equal(t, "FF6", g.Title)
}

func TestGame_FieldsRoundTrip(t *testing.T) {
	f := GameFields{
		Title:       "Suikoden II",
		Description: "Two friends, one war",
		Tags:        []string{"story", "108 stars"},
		Score:       9.5,
		ImageURL:    "https://example.com/s2.png",
		Review:      "**Masterpiece**",
	}

	assert.Equal(t, f, NewGame("game-9", f).Fields())
}

func TestColumn_CloneNeverNil(t *testing.T) {
	c := (&Column{ID: "a", Title: "A"}).Clone()
	assert.NotNil(t, c.GameIDs)
}

func TestDefaultColumns(t *testing.T) {
	cols := DefaultColumns()

	assert.Len(t, cols, 3)
	assert.Equal(t, "storytelling", cols[0].ID)
	assert.Equal(t, "gameplay", cols[1].ID)
	assert.Equal(t, "classics", cols[2].ID)
	for _, c := range cols {
		assert.Empty(t, c.GameIDs)
	}

	// Each call must hand out fresh slices
	cols[0].GameIDs = append(cols[0].GameIDs, "x")
	assert.Empty(t, DefaultColumns()[0].GameIDs)
}
