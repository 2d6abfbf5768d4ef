package board

import (
	"errors"

	"github.com/thenoetrevino/shelf/internal/services/column"
)

// Board-level errors
var (
	ErrGameNotFound   = errors.New("game not found")
	ErrColumnNotFound = errors.New("column not found")

	// ErrAlreadyAssigned is returned when assigning a game that already has a column
	ErrAlreadyAssigned = column.ErrAlreadyAssigned

	ErrInvalidDeletePolicy = errors.New("column delete policy must be 'orphan' or 'cascade'")
)
