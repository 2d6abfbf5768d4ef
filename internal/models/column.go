package models

import "slices"

// Column represents a named, ordered bucket of games on the board.
// GameIDs is both the membership and the display order of the column.
type Column struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	GameIDs []string `json:"gameIds"`
}

// Clone returns a deep copy of the column
func (c *Column) Clone() *Column {
	ids := slices.Clone(c.GameIDs)
	if ids == nil {
		ids = []string{}
	}
	return &Column{ID: c.ID, Title: c.Title, GameIDs: ids}
}
