package app

import (
	"io"
	"log/slog"

	"github.com/thenoetrevino/shelf/internal/services/board"
	"github.com/thenoetrevino/shelf/internal/services/column"
	"github.com/thenoetrevino/shelf/internal/services/game"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger       *slog.Logger
	policy       board.DeletePolicy
	defaultScore float64
	gameIDs      game.IDFunc
	columnIDs    column.IDFunc
	closer       io.Closer
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithDeletePolicy sets what deleting a column does to its games
func WithDeletePolicy(p board.DeletePolicy) Option {
	return func(cfg *appConfig) {
		cfg.policy = p
	}
}

// WithDefaultScore sets the score a new game starts with
func WithDefaultScore(score float64) Option {
	return func(cfg *appConfig) {
		cfg.defaultScore = score
	}
}

// WithGameIDs replaces the game ID generator
func WithGameIDs(fn game.IDFunc) Option {
	return func(cfg *appConfig) {
		cfg.gameIDs = fn
	}
}

// WithColumnIDs replaces the column ID generator
func WithColumnIDs(fn column.IDFunc) Option {
	return func(cfg *appConfig) {
		cfg.columnIDs = fn
	}
}

func withCloser(c io.Closer) Option {
	return func(cfg *appConfig) {
		cfg.closer = c
	}
}
