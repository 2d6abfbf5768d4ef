package board

import (
	"context"
	"log/slog"
)

// UnassignedSource is the source column of a drag that starts in the
// unassigned pool rather than in a real column.
const UnassignedSource = ""

// DragState is the transfer protocol state: Idle, or Dragging a game out of
// a source column.
type DragState struct {
	Active         bool
	GameID         string
	SourceColumnID string
}

// Dragging returns the current drag state
func (m *Manager) Dragging() DragState {
	return m.drag
}

// DragStart captures the dragged game and its source column, replacing any
// drag already in progress.
func (m *Manager) DragStart(gameID, sourceColumnID string) {
	m.drag = DragState{Active: true, GameID: gameID, SourceColumnID: sourceColumnID}
	slog.Debug("drag started", "game", gameID, "source", sourceColumnID)
}

// DragOver reports whether targetColumnID accepts a drop. Every column does.
func (m *Manager) DragOver(targetColumnID string) bool {
	return true
}

// Drop completes the drag on targetColumnID and returns to Idle.
// A drop with no active drag, or onto the source column, changes nothing.
// A drag out of the unassigned pool assigns the game to the target.
func (m *Manager) Drop(ctx context.Context, targetColumnID string) error {
	d := m.drag
	m.drag = DragState{}

	if !d.Active {
		slog.Debug("drop ignored, no active drag", "target", targetColumnID)
		return nil
	}
	if d.SourceColumnID == targetColumnID {
		slog.Debug("drop ignored, same column", "game", d.GameID, "column", targetColumnID)
		return nil
	}

	if d.SourceColumnID == UnassignedSource {
		if _, owned := m.columns.OwnerOf(d.GameID); owned || !m.games.Exists(d.GameID) {
			return nil
		}
		if err := m.columns.AppendMember(ctx, targetColumnID, d.GameID); err != nil {
			return err
		}
		slog.Debug("game assigned by drop", "game", d.GameID, "target", targetColumnID)
		return nil
	}

	if err := m.columns.TransferMember(ctx, d.SourceColumnID, targetColumnID, d.GameID); err != nil {
		return err
	}
	slog.Debug("game moved", "game", d.GameID, "source", d.SourceColumnID, "target", targetColumnID)
	return nil
}

// DragEnd cancels any drag in progress without mutating the board
func (m *Manager) DragEnd() {
	if m.drag.Active {
		slog.Debug("drag cancelled", "game", m.drag.GameID)
	}
	m.drag = DragState{}
}
