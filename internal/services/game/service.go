// Package game implements the item repository: a mapping from game ID to
// game record, persisted as one document on every change.
package game

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/thenoetrevino/shelf/internal/models"
	"github.com/thenoetrevino/shelf/internal/store"
)

// maxIDAttempts bounds retries when a generated ID is already taken
const maxIDAttempts = 8

// IDFunc produces candidate game IDs
type IDFunc func() string

// NewID is the default IDFunc: "game-" followed by a random UUID
func NewID() string {
	return models.GameIDPrefix + uuid.NewString()
}

// Option configures a Repository
type Option func(*Repository)

// WithIDFunc replaces the ID generator (tests use deterministic IDs)
func WithIDFunc(fn IDFunc) Option {
	return func(r *Repository) {
		r.newID = fn
	}
}

// Repository holds every game keyed by ID. It is not safe for concurrent use;
// callers serialize mutations (the TUI event loop, one CLI command).
type Repository struct {
	backend store.Backend
	games   map[string]*models.Game
	newID   IDFunc
}

// NewRepository loads the games saved in backend
func NewRepository(ctx context.Context, backend store.Backend, opts ...Option) *Repository {
	r := &Repository{
		backend: backend,
		newID:   NewID,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.load(ctx)
	return r
}

func (r *Repository) load(ctx context.Context) {
	games := store.Load(ctx, r.backend, models.GamesKey, map[string]*models.Game{})
	clean := make(map[string]*models.Game, len(games))
	for id, g := range games {
		if g == nil {
			slog.Warn("dropping empty game record", "id", id)
			continue
		}
		// The map key is authoritative for identity
		g.ID = id
		if g.Tags == nil {
			g.Tags = []string{}
		}
		clean[id] = g
	}
	r.games = clean
}

// Reload replaces in-memory state with what is currently saved
func (r *Repository) Reload(ctx context.Context) {
	r.load(ctx)
}

// Create inserts a new game and returns its fresh ID
func (r *Repository) Create(ctx context.Context, fields models.GameFields) (string, error) {
	id, err := r.uniqueID()
	if err != nil {
		return "", err
	}

	r.games[id] = models.NewGame(id, fields)
	if err := r.persist(ctx); err != nil {
		delete(r.games, id)
		return "", err
	}

	slog.Debug("game created", "id", id, "title", fields.Title)
	return id, nil
}

func (r *Repository) uniqueID() (string, error) {
	for range maxIDAttempts {
		id := r.newID()
		if _, taken := r.games[id]; id != "" && !taken {
			return id, nil
		}
	}
	return "", ErrIDExhausted
}

// Update replaces every field except the ID. Absent IDs are ignored.
func (r *Repository) Update(ctx context.Context, id string, fields models.GameFields) error {
	prev, ok := r.games[id]
	if !ok {
		return nil
	}

	r.games[id] = models.NewGame(id, fields)
	if err := r.persist(ctx); err != nil {
		r.games[id] = prev
		return err
	}

	slog.Debug("game updated", "id", id)
	return nil
}

// Delete removes a game. Deleting an absent ID is a no-op.
func (r *Repository) Delete(ctx context.Context, id string) error {
	prev, ok := r.games[id]
	if !ok {
		return nil
	}

	delete(r.games, id)
	if err := r.persist(ctx); err != nil {
		r.games[id] = prev
		return err
	}

	slog.Debug("game deleted", "id", id)
	return nil
}

// Get returns a copy of the game with the given ID
func (r *Repository) Get(id string) (*models.Game, bool) {
	g, ok := r.games[id]
	if !ok {
		return nil, false
	}
	return g.Clone(), true
}

// Exists reports whether id names a stored game
func (r *Repository) Exists(id string) bool {
	_, ok := r.games[id]
	return ok
}

// All returns copies of every game ordered by title, then ID
func (r *Repository) All() []*models.Game {
	out := make([]*models.Game, 0, len(r.games))
	for _, g := range r.games {
		out = append(out, g.Clone())
	}
	slices.SortFunc(out, func(a, b *models.Game) int {
		return cmp.Or(cmp.Compare(a.Title, b.Title), cmp.Compare(a.ID, b.ID))
	})
	return out
}

// Len returns the number of stored games
func (r *Repository) Len() int {
	return len(r.games)
}

func (r *Repository) persist(ctx context.Context) error {
	return store.Save(ctx, r.backend, models.GamesKey, r.games)
}
