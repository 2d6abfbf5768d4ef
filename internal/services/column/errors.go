package column

import "errors"

// Column-related errors
var (
	// Validation errors
	ErrEmptyTitle = errors.New("column title cannot be empty")

	// Business logic errors
	ErrAlreadyAssigned = errors.New("game already belongs to a column")
	ErrIDExhausted     = errors.New("could not generate a unique column ID")
)
