package models

// ============================================================================
// STORAGE KEYS
// ============================================================================

// Keys under which the two repositories are persisted. They are independent:
// the board itself is never stored as one record.
const (
	GamesKey   = "jrpg-games"
	ColumnsKey = "jrpg-columns"
)

// ============================================================================
// IDENTIFIER PREFIXES
// ============================================================================

const (
	GameIDPrefix   = "game-"
	ColumnIDPrefix = "column-"
)

// ============================================================================
// SCORE CONSTANTS
// ============================================================================

const (
	MinScore     = 0.0
	MaxScore     = 10.0
	DefaultScore = 7.0
)

// ============================================================================
// DEFAULT COLUMNS
// ============================================================================

// DefaultColumns returns the columns seeded on first run
func DefaultColumns() []*Column {
	return []*Column{
		{ID: "storytelling", Title: "Storytelling Masters", GameIDs: []string{}},
		{ID: "gameplay", Title: "Gameplay Innovation", GameIDs: []string{}},
		{ID: "classics", Title: "Timeless Classics", GameIDs: []string{}},
	}
}
