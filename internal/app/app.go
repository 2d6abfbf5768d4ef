// Package app wires the store, the repositories and the board manager into
// one container shared by the CLI and the TUI.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/thenoetrevino/shelf/internal/config"
	"github.com/thenoetrevino/shelf/internal/database"
	"github.com/thenoetrevino/shelf/internal/services/board"
	"github.com/thenoetrevino/shelf/internal/services/column"
	"github.com/thenoetrevino/shelf/internal/services/game"
	"github.com/thenoetrevino/shelf/internal/store"
)

// App holds all application services and provides dependency injection.
type App struct {
	// Backend is the key-value store both repositories persist to
	Backend store.Backend

	Games   *game.Repository
	Columns *column.Repository
	Board   *board.Manager

	// DefaultScore prefills the score of a new game
	DefaultScore float64

	closer io.Closer
	logger *slog.Logger
}

// New builds the repositories and the board over an open backend
func New(ctx context.Context, backend store.Backend, opts ...Option) *App {
	cfg := &appConfig{
		logger:       slog.Default(),
		policy:       board.DeleteOrphan,
		defaultScore: config.Default().Board.Score(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var gameOpts []game.Option
	if cfg.gameIDs != nil {
		gameOpts = append(gameOpts, game.WithIDFunc(cfg.gameIDs))
	}
	var columnOpts []column.Option
	if cfg.columnIDs != nil {
		columnOpts = append(columnOpts, column.WithIDFunc(cfg.columnIDs))
	}

	games := game.NewRepository(ctx, backend, gameOpts...)
	columns := column.NewRepository(ctx, backend, columnOpts...)

	cfg.logger.Debug("app initialized",
		"store", backend.Path(),
		"games", games.Len(),
		"columns", columns.Len(),
		"policy", cfg.policy,
	)

	return &App{
		Backend:      backend,
		Games:        games,
		Columns:      columns,
		Board:        board.NewManager(games, columns, board.WithDeletePolicy(cfg.policy)),
		DefaultScore: cfg.defaultScore,
		closer:       cfg.closer,
		logger:       cfg.logger,
	}
}

// Open builds the backend selected by cfg and an App over it
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	policy, err := board.ParseDeletePolicy(cfg.Board.ColumnDelete)
	if err != nil {
		return nil, err
	}

	backend, closer, err := OpenBackend(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithDeletePolicy(policy),
		WithDefaultScore(cfg.Board.Score()),
		withCloser(closer),
	}
	return New(ctx, backend, append(base, opts...)...), nil
}

// OpenBackend opens the configured store. The closer is nil when the
// backend holds no resources.
func OpenBackend(ctx context.Context, sc config.StorageConfig) (store.Backend, io.Closer, error) {
	switch sc.Backend {
	case config.BackendMemory:
		return store.NewMemoryBackend(), nil, nil

	case config.BackendFile:
		dir := sc.Path
		if dir == "" {
			dbPath, err := database.DefaultPath()
			if err != nil {
				return nil, nil, err
			}
			dir = filepath.Join(filepath.Dir(dbPath), "data")
		}
		backend, err := store.NewFileBackend(dir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open file store: %w", err)
		}
		return backend, nil, nil

	case config.BackendSQLite, "":
		path := sc.Path
		if path == "" {
			var err error
			if path, err = database.DefaultPath(); err != nil {
				return nil, nil, err
			}
		}
		db, err := database.InitDB(ctx, path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		kv := database.NewKVStore(db, path)
		return kv, kv, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", sc.Backend)
	}
}

// Close releases the backend
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	if err != nil {
		a.logger.Error("error closing store", "error", err)
		return err
	}
	return nil
}
