package game

import "errors"

// Game-related errors
var (
	// Validation errors
	ErrEmptyTitle       = errors.New("game title cannot be empty")
	ErrEmptyDescription = errors.New("game description cannot be empty")
	ErrEmptyReview      = errors.New("game review cannot be empty")
	ErrScoreOutOfRange  = errors.New("score must be between 0 and 10")
	ErrInvalidImageURL  = errors.New("image URL must be an absolute http(s) URL")

	// Business logic errors
	ErrIDExhausted = errors.New("could not generate a unique game ID")
)
