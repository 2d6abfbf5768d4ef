// Package board is the board state manager. It composes the game and column
// repositories, keeps them referentially consistent, and implements the
// drag-and-drop transfer protocol.
package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/thenoetrevino/shelf/internal/models"
)

// DeletePolicy decides what happens to the games of a deleted column
type DeletePolicy string

const (
	// DeleteOrphan keeps member games; they become unassigned
	DeleteOrphan DeletePolicy = "orphan"
	// DeleteCascade deletes member games along with the column
	DeleteCascade DeletePolicy = "cascade"
)

// ParseDeletePolicy maps a config string to a DeletePolicy ("" means orphan)
func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch DeletePolicy(s) {
	case "", DeleteOrphan:
		return DeleteOrphan, nil
	case DeleteCascade:
		return DeleteCascade, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDeletePolicy, s)
	}
}

// SaveGameRequest is the game form submission. An empty ID creates a game;
// TargetColumnID is only used on create.
type SaveGameRequest struct {
	ID             string
	Fields         models.GameFields
	TargetColumnID string
}

// SaveColumnRequest is the column form submission. An empty ID creates a column.
type SaveColumnRequest struct {
	ID    string
	Title string
}

// Option configures a Manager
type Option func(*Manager)

// WithDeletePolicy sets the column delete policy
func WithDeletePolicy(p DeletePolicy) Option {
	return func(m *Manager) {
		m.policy = p
	}
}

// Manager owns the board state. It is not safe for concurrent use: every
// call is expected to come from one event loop or one command.
type Manager struct {
	games    GameRepository
	columns  ColumnRepository
	policy   DeletePolicy
	drag     DragState
	selected string
}

// NewManager composes the two repositories into a board
func NewManager(games GameRepository, columns ColumnRepository, opts ...Option) *Manager {
	m := &Manager{
		games:   games,
		columns: columns,
		policy:  DeleteOrphan,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Policy returns the configured column delete policy
func (m *Manager) Policy() DeletePolicy {
	return m.policy
}

// ============================================================================
// GAMES
// ============================================================================

// SaveGame creates or edits a game and returns its ID. Editing never touches
// column membership. Creating binds the game into TargetColumnID when one
// is given, otherwise the game starts unassigned.
func (m *Manager) SaveGame(ctx context.Context, req SaveGameRequest) (string, error) {
	if req.ID != "" {
		if err := m.games.Update(ctx, req.ID, req.Fields); err != nil {
			return "", fmt.Errorf("failed to update game: %w", err)
		}
		slog.Debug("game saved", "id", req.ID)
		return req.ID, nil
	}

	id, err := m.games.Create(ctx, req.Fields)
	if err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	if req.TargetColumnID != "" {
		if err := m.columns.AppendMember(ctx, req.TargetColumnID, id); err != nil {
			// A failed create must not leave the game behind in the pool
			if rbErr := m.games.Delete(ctx, id); rbErr != nil {
				slog.Error("failed to roll back game create", "id", id, "error", rbErr)
				err = errors.Join(err, rbErr)
			}
			return "", fmt.Errorf("failed to add game to column: %w", err)
		}
	}

	slog.Debug("game saved", "id", id, "column", req.TargetColumnID)
	return id, nil
}

// DeleteGame removes a game, purges it from every column and clears the
// selection if it pointed at it. Deleting an absent game is a no-op.
func (m *Manager) DeleteGame(ctx context.Context, id string) error {
	if err := m.games.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	if err := m.columns.PurgeMember(ctx, id); err != nil {
		return fmt.Errorf("failed to remove game from columns: %w", err)
	}
	if m.selected == id {
		m.selected = ""
	}
	if m.drag.GameID == id {
		m.drag = DragState{}
	}
	slog.Debug("game deleted", "id", id)
	return nil
}

// AssignGame places an unassigned game at the end of a column
func (m *Manager) AssignGame(ctx context.Context, gameID, columnID string) error {
	if !m.games.Exists(gameID) {
		return ErrGameNotFound
	}
	if _, ok := m.columns.Get(columnID); !ok {
		return ErrColumnNotFound
	}
	if err := m.columns.AppendMember(ctx, columnID, gameID); err != nil {
		return err
	}
	slog.Debug("game assigned", "game", gameID, "column", columnID)
	return nil
}

// ============================================================================
// COLUMNS
// ============================================================================

// SaveColumn renames an existing column or appends a new empty one
func (m *Manager) SaveColumn(ctx context.Context, req SaveColumnRequest) (string, error) {
	if req.ID != "" {
		if err := m.columns.Update(ctx, req.ID, req.Title); err != nil {
			return "", fmt.Errorf("failed to rename column: %w", err)
		}
		slog.Debug("column saved", "id", req.ID)
		return req.ID, nil
	}

	id, err := m.columns.Create(ctx, req.Title)
	if err != nil {
		return "", fmt.Errorf("failed to create column: %w", err)
	}
	slog.Debug("column saved", "id", id)
	return id, nil
}

// DeleteColumn removes a column. Under the orphan policy its games stay in
// the repository unassigned; under cascade they are deleted too. Cascaded
// games go first: a failed write leaves the column in place with at most
// some stale references, and retrying finishes the delete.
func (m *Manager) DeleteColumn(ctx context.Context, id string) error {
	c, ok := m.columns.Get(id)
	if !ok {
		return nil
	}

	if m.policy == DeleteCascade {
		for _, gameID := range c.GameIDs {
			if err := m.games.Delete(ctx, gameID); err != nil {
				return fmt.Errorf("failed to delete game %s: %w", gameID, err)
			}
			if m.selected == gameID {
				m.selected = ""
			}
		}
	}

	removed, err := m.columns.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete column: %w", err)
	}

	if m.drag.SourceColumnID == id && m.drag.Active {
		m.drag = DragState{}
	}

	slog.Debug("column deleted", "id", id, "games", len(removed), "policy", m.policy)
	return nil
}

// ============================================================================
// SELECTION
// ============================================================================

// Select marks a game as currently viewed
func (m *Manager) Select(gameID string) {
	m.selected = gameID
}

// Selected returns the currently viewed game
func (m *Manager) Selected() (*models.Game, bool) {
	if m.selected == "" {
		return nil, false
	}
	return m.games.Get(m.selected)
}

// ClearSelection closes the currently viewed game
func (m *Manager) ClearSelection() {
	m.selected = ""
}

// ============================================================================
// READ ACCESSORS
// ============================================================================

// Games returns every game
func (m *Manager) Games() []*models.Game {
	return m.games.All()
}

// Game returns one game
func (m *Manager) Game(id string) (*models.Game, bool) {
	return m.games.Get(id)
}

// Columns returns every column in display order
func (m *Manager) Columns() []*models.Column {
	return m.columns.All()
}

// Column returns one column
func (m *Manager) Column(id string) (*models.Column, bool) {
	return m.columns.Get(id)
}

// OwnerOf returns the column holding a game
func (m *Manager) OwnerOf(gameID string) (string, bool) {
	return m.columns.OwnerOf(gameID)
}

// ColumnGames resolves a column's membership against the game repository in
// column order. References to deleted games are skipped.
func (m *Manager) ColumnGames(columnID string) []*models.Game {
	c, ok := m.columns.Get(columnID)
	if !ok {
		return []*models.Game{}
	}
	out := make([]*models.Game, 0, len(c.GameIDs))
	for _, id := range c.GameIDs {
		if g, ok := m.games.Get(id); ok {
			out = append(out, g)
		}
	}
	return out
}

// Unassigned returns the games that no column holds
func (m *Manager) Unassigned() []*models.Game {
	all := m.games.All()
	return slices.DeleteFunc(all, func(g *models.Game) bool {
		_, owned := m.columns.OwnerOf(g.ID)
		return owned
	})
}

// Reload re-reads both repositories from the store. A selection or drag
// pointing at a game that no longer exists is dropped.
func (m *Manager) Reload(ctx context.Context) {
	m.games.Reload(ctx)
	m.columns.Reload(ctx)

	if m.selected != "" && !m.games.Exists(m.selected) {
		m.selected = ""
	}
	if m.drag.Active && !m.games.Exists(m.drag.GameID) {
		m.drag = DragState{}
	}
	slog.Debug("board reloaded")
}
