package models

import "slices"

// Game is a single reviewed entry on the board
type Game struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Score       float64  `json:"score"`
	ImageURL    string   `json:"imageUrl"`
	Review      string   `json:"review"`
}

// GameFields holds every mutable field of a game. The ID is assigned by the
// repository and never travels through this type.
type GameFields struct {
	Title       string
	Description string
	Tags        []string
	Score       float64
	ImageURL    string
	Review      string
}

// Fields returns the mutable part of the game
func (g *Game) Fields() GameFields {
	return GameFields{
		Title:       g.Title,
		Description: g.Description,
		Tags:        slices.Clone(g.Tags),
		Score:       g.Score,
		ImageURL:    g.ImageURL,
		Review:      g.Review,
	}
}

// Clone returns a deep copy so callers cannot mutate repository state
func (g *Game) Clone() *Game {
	c := *g
	c.Tags = slices.Clone(g.Tags)
	return &c
}

// NewGame builds a game record from its identifier and fields
func NewGame(id string, f GameFields) *Game {
	tags := slices.Clone(f.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &Game{
		ID:          id,
		Title:       f.Title,
		Description: f.Description,
		Tags:        tags,
		Score:       f.Score,
		ImageURL:    f.ImageURL,
		Review:      f.Review,
	}
}
