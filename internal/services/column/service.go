// Package column implements the column repository: the ordered sequence of
// columns and the membership of games within them.
//
// Every game ID appears in at most one column. The repository keeps a reverse
// index (game ID -> owning column ID) and refuses any mutation that would
// break that invariant, so callers do not have to police it.
package column

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/thenoetrevino/shelf/internal/models"
	"github.com/thenoetrevino/shelf/internal/store"
)

const maxIDAttempts = 8

// IDFunc produces candidate column IDs
type IDFunc func() string

// NewID is the default IDFunc: "column-" followed by a random UUID
func NewID() string {
	return models.ColumnIDPrefix + uuid.NewString()
}

// Option configures a Repository
type Option func(*Repository)

// WithIDFunc replaces the ID generator
func WithIDFunc(fn IDFunc) Option {
	return func(r *Repository) {
		r.newID = fn
	}
}

// WithSeed replaces the columns used when nothing is saved yet
func WithSeed(seed func() []*models.Column) Option {
	return func(r *Repository) {
		r.seed = seed
	}
}

// Repository holds the ordered columns. Not safe for concurrent use.
type Repository struct {
	backend store.Backend
	columns []*models.Column
	owner   map[string]string
	newID   IDFunc
	seed    func() []*models.Column
}

// NewRepository loads the saved columns, seeding the defaults on first run
func NewRepository(ctx context.Context, backend store.Backend, opts ...Option) *Repository {
	r := &Repository{
		backend: backend,
		newID:   NewID,
		seed:    models.DefaultColumns,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.load(ctx)
	return r
}

// load reads the saved columns and repairs membership corruption: a game ID
// listed more than once keeps only its first occurrence.
func (r *Repository) load(ctx context.Context) {
	saved := store.Load(ctx, r.backend, models.ColumnsKey, r.seed())

	columns := make([]*models.Column, 0, len(saved))
	seenColumns := make(map[string]bool, len(saved))
	for _, c := range saved {
		if c == nil {
			continue
		}
		if seenColumns[c.ID] {
			slog.Warn("dropping duplicate column", "column", c.ID)
			continue
		}
		seenColumns[c.ID] = true
		columns = append(columns, c.Clone())
	}

	owner := make(map[string]string)
	for _, c := range columns {
		kept := c.GameIDs[:0]
		for _, gameID := range c.GameIDs {
			if prev, ok := owner[gameID]; ok {
				slog.Warn("dropping duplicate membership", "game", gameID, "column", c.ID, "owner", prev)
				continue
			}
			owner[gameID] = c.ID
			kept = append(kept, gameID)
		}
		c.GameIDs = kept
	}

	r.columns = columns
	r.owner = owner
}

// Reload replaces in-memory state with what is currently saved
func (r *Repository) Reload(ctx context.Context) {
	r.load(ctx)
}

// ValidateTitle trims the title and rejects blank ones
func ValidateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	return title, nil
}

// Create appends a new empty column and returns its ID
func (r *Repository) Create(ctx context.Context, title string) (string, error) {
	title, err := ValidateTitle(title)
	if err != nil {
		return "", err
	}
	id, err := r.uniqueID()
	if err != nil {
		return "", err
	}

	err = r.mutate(ctx, func() bool {
		r.columns = append(r.columns, &models.Column{ID: id, Title: title, GameIDs: []string{}})
		return true
	})
	if err != nil {
		return "", err
	}

	slog.Debug("column created", "id", id, "title", title)
	return id, nil
}

func (r *Repository) uniqueID() (string, error) {
	for range maxIDAttempts {
		id := r.newID()
		if id != "" && r.index(id) < 0 {
			return id, nil
		}
	}
	return "", ErrIDExhausted
}

// Update renames a column in place. Absent IDs are ignored.
func (r *Repository) Update(ctx context.Context, id, title string) error {
	title, err := ValidateTitle(title)
	if err != nil {
		return err
	}
	return r.mutate(ctx, func() bool {
		i := r.index(id)
		if i < 0 {
			return false
		}
		r.columns[i].Title = title
		return true
	})
}

// Delete removes a column and returns the membership it held. The games
// themselves are untouched. Absent IDs return nil.
func (r *Repository) Delete(ctx context.Context, id string) ([]string, error) {
	var removed []string
	err := r.mutate(ctx, func() bool {
		i := r.index(id)
		if i < 0 {
			return false
		}
		removed = slices.Clone(r.columns[i].GameIDs)
		for _, gameID := range removed {
			delete(r.owner, gameID)
		}
		r.columns = slices.Delete(r.columns, i, i+1)
		return true
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// AppendMember adds gameID to the end of a column. A game already owned by
// any column is rejected with ErrAlreadyAssigned. Absent columns are ignored.
func (r *Repository) AppendMember(ctx context.Context, columnID, gameID string) error {
	if owner, ok := r.owner[gameID]; ok {
		slog.Debug("refusing duplicate membership", "game", gameID, "column", columnID, "owner", owner)
		return ErrAlreadyAssigned
	}
	return r.mutate(ctx, func() bool {
		i := r.index(columnID)
		if i < 0 {
			return false
		}
		r.columns[i].GameIDs = append(r.columns[i].GameIDs, gameID)
		r.owner[gameID] = columnID
		return true
	})
}

// RemoveMember removes the first occurrence of gameID from a column.
// It is a no-op if the game is not there.
func (r *Repository) RemoveMember(ctx context.Context, columnID, gameID string) error {
	return r.mutate(ctx, func() bool {
		i := r.index(columnID)
		if i < 0 {
			return false
		}
		if !r.removeFrom(r.columns[i], gameID) {
			return false
		}
		if r.owner[gameID] == columnID {
			delete(r.owner, gameID)
		}
		return true
	})
}

// TransferMember moves gameID from source to the end of target as one write.
// It is a no-op when source equals target, when either column is absent, or
// when the game is not a member of source.
func (r *Repository) TransferMember(ctx context.Context, sourceID, targetID, gameID string) error {
	if sourceID == targetID {
		return nil
	}
	return r.mutate(ctx, func() bool {
		src, dst := r.index(sourceID), r.index(targetID)
		if src < 0 || dst < 0 || r.owner[gameID] != sourceID {
			return false
		}
		if !r.removeFrom(r.columns[src], gameID) {
			return false
		}
		r.columns[dst].GameIDs = append(r.columns[dst].GameIDs, gameID)
		r.owner[gameID] = targetID
		return true
	})
}

// PurgeMember removes gameID from every column's membership
func (r *Repository) PurgeMember(ctx context.Context, gameID string) error {
	return r.mutate(ctx, func() bool {
		changed := false
		for _, c := range r.columns {
			for r.removeFrom(c, gameID) {
				changed = true
			}
		}
		delete(r.owner, gameID)
		return changed
	})
}

// All returns copies of every column in display order
func (r *Repository) All() []*models.Column {
	out := make([]*models.Column, len(r.columns))
	for i, c := range r.columns {
		out[i] = c.Clone()
	}
	return out
}

// Get returns a copy of one column
func (r *Repository) Get(id string) (*models.Column, bool) {
	i := r.index(id)
	if i < 0 {
		return nil, false
	}
	return r.columns[i].Clone(), true
}

// OwnerOf returns the ID of the column holding gameID
func (r *Repository) OwnerOf(gameID string) (string, bool) {
	id, ok := r.owner[gameID]
	return id, ok
}

// Len returns the number of columns
func (r *Repository) Len() int {
	return len(r.columns)
}

func (r *Repository) index(id string) int {
	return slices.IndexFunc(r.columns, func(c *models.Column) bool { return c.ID == id })
}

func (r *Repository) removeFrom(c *models.Column, gameID string) bool {
	i := slices.Index(c.GameIDs, gameID)
	if i < 0 {
		return false
	}
	c.GameIDs = slices.Delete(c.GameIDs, i, i+1)
	return true
}

// mutate applies fn and persists the result. If fn reports no change nothing
// is written; if the write fails the previous state is restored.
func (r *Repository) mutate(ctx context.Context, fn func() bool) error {
	prevColumns := r.All()
	prevOwner := maps.Clone(r.owner)

	if !fn() {
		return nil
	}

	if err := store.Save(ctx, r.backend, models.ColumnsKey, r.columns); err != nil {
		r.columns = prevColumns
		r.owner = prevOwner
		return err
	}
	return nil
}
