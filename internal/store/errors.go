package store

import "errors"

var (
	// ErrNotFound is returned by a Backend when nothing is saved under a key
	ErrNotFound = errors.New("key not found")

	// ErrInvalidKey is returned when a key is empty or unusable as a name
	ErrInvalidKey = errors.New("invalid key")
)
