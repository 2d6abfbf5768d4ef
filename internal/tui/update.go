package tui

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/shelf/internal/tui/state"
)

// Update is the main update dispatcher.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case RefreshMsg:
		return m.handleRefresh()
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		m.resizeDetail()
	}

	// Forms need every message, not only keys
	switch m.UiState.Mode() {
	case state.GameFormMode:
		return m.updateGameForm(msg)
	case state.ColumnFormMode:
		return m.updateColumnForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if m.UiState.Mode() == state.DetailMode {
			var cmd tea.Cmd
			m.Detail, cmd = m.Detail.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.UiState.Mode() {
	case state.DeleteGameConfirmMode:
		return m.handleDeleteGameConfirm(keyMsg)
	case state.DeleteColumnConfirmMode:
		return m.handleDeleteColumnConfirm(keyMsg)
	case state.DetailMode:
		return m.handleDetailMode(keyMsg)
	case state.HelpMode:
		return m.handleHelpMode(keyMsg)
	default:
		return m.handleNormalMode(keyMsg)
	}
}

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode dispatches key events in NormalMode to specific handlers.
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	km := m.Config.KeyMappings

	switch msg.String() {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
	case km.PrevColumn, "left":
		m.navigateLane(-1)
	case km.NextColumn, "right":
		m.navigateLane(1)
	case km.PrevGame, "up":
		m.navigateGame(-1)
	case km.NextGame, "down":
		m.navigateGame(1)
	case km.AddGame:
		return m.handleAddGame()
	case km.EditGame:
		return m.handleEditGame()
	case km.DeleteGame:
		m.handleDeleteGame()
	case km.ViewGame:
		m.handleViewGame()
	case km.Grab:
		m.handleGrab()
	case km.Drop:
		m.handleDrop()
	case km.Cancel:
		m.handleCancelDrag()
	case km.CreateColumn:
		return m.handleCreateColumn()
	case km.RenameColumn:
		return m.handleRenameColumn()
	case km.DeleteColumn:
		m.handleDeleteColumn()
	case km.ToggleUnassigned:
		m.UiState.ToggleUnassigned()
		m.clampSelection()
	}

	return m, nil
}

// navigateLane moves the cursor between lanes. While a game is held the
// focused lane is the drop target.
func (m *Model) navigateLane(delta int) {
	lanes := m.lanes()
	next := m.UiState.SelectedLane() + delta
	if next < 0 || next >= len(lanes) {
		return
	}

	m.UiState.SetSelectedLane(next)
	m.UiState.SetSelectedGame(min(m.UiState.SelectedGame(), max(0, len(lanes[next].Games)-1)))
	m.UiState.EnsureSelectionVisible(next)
	m.ensureGameVisible()

	if drag := m.App.Board.Dragging(); drag.Active && !lanes[next].Unassigned {
		m.App.Board.DragOver(lanes[next].ID)
	}
}

// navigateGame moves the cursor within the focused lane
func (m *Model) navigateGame(delta int) {
	l, ok := m.currentLane()
	if !ok {
		return
	}
	next := m.UiState.SelectedGame() + delta
	if next < 0 || next >= len(l.Games) {
		return
	}
	m.UiState.SetSelectedGame(next)
	m.ensureGameVisible()
}

// handleDeleteGame asks before deleting the focused game
func (m *Model) handleDeleteGame() {
	g, ok := m.currentGame()
	if !ok {
		return
	}
	m.pendingDeleteGameID = g.ID
	m.UiState.SetMode(state.DeleteGameConfirmMode)
}

// handleViewGame opens the detail modal for the focused game
func (m *Model) handleViewGame() {
	g, ok := m.currentGame()
	if !ok {
		return
	}
	m.App.Board.Select(g.ID)
	m.resizeDetail()
	m.setDetailContent(g)
	m.Detail.GotoTop()
	m.UiState.SetMode(state.DetailMode)
}

// handleGrab picks up the focused game. Grabbing again replaces the held game.
func (m *Model) handleGrab() {
	g, ok := m.currentGame()
	if !ok {
		return
	}
	l, _ := m.currentLane()
	m.App.Board.DragStart(g.ID, l.ID)
	m.NotificationState.Add(state.LevelInfo,
		fmt.Sprintf("Holding %s: pick a column and press %s", g.Title, m.Config.KeyMappings.Drop))
}

// handleDrop puts the held game down on the focused column. The cursor
// follows the game.
func (m *Model) handleDrop() {
	drag := m.App.Board.Dragging()
	if !drag.Active {
		return
	}

	l, ok := m.currentLane()
	if !ok {
		return
	}
	if l.Unassigned {
		m.NotificationState.Add(state.LevelWarning, "Drop the game onto a column")
		return
	}

	if err := m.App.Board.Drop(m.Ctx, l.ID); err != nil {
		slog.Error("error moving game", "game", drag.GameID, "target", l.ID, "error", err)
		m.NotificationState.Add(state.LevelError, "Error moving game")
		return
	}
	m.focusGame(drag.GameID)
}

// handleCancelDrag puts the held game back without moving it
func (m *Model) handleCancelDrag() {
	if !m.App.Board.Dragging().Active {
		return
	}
	m.App.Board.DragEnd()
	m.NotificationState.Add(state.LevelInfo, "Move cancelled")
}

// handleDeleteColumn asks before deleting the focused column
func (m *Model) handleDeleteColumn() {
	c, ok := m.currentColumn()
	if !ok {
		return
	}
	m.pendingDeleteColumnID = c.ID
	m.UiState.SetMode(state.DeleteColumnConfirmMode)
}

// ============================================================================
// MODAL HANDLERS
// ============================================================================

// handleDeleteGameConfirm deletes the pending game on y, cancels on n or esc
func (m Model) handleDeleteGameConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.pendingDeleteGameID
		if err := m.App.Board.DeleteGame(m.Ctx, id); err != nil {
			slog.Error("error deleting game", "id", id, "error", err)
			m.NotificationState.Add(state.LevelError, "Error deleting game")
		} else {
			m.NotificationState.Add(state.LevelInfo, "Game deleted")
		}
		m.pendingDeleteGameID = ""
		m.clampSelection()
		m.UiState.SetMode(state.NormalMode)
	case "n", "N", "esc":
		m.pendingDeleteGameID = ""
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleDeleteColumnConfirm deletes the pending column on y, cancels on n or esc
func (m Model) handleDeleteColumnConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.pendingDeleteColumnID
		if err := m.App.Board.DeleteColumn(m.Ctx, id); err != nil {
			slog.Error("error deleting column", "id", id, "error", err)
			m.NotificationState.Add(state.LevelError, "Error deleting column")
		} else {
			m.NotificationState.Add(state.LevelInfo, "Column deleted")
		}
		m.pendingDeleteColumnID = ""
		m.clampSelection()
		m.UiState.SetMode(state.NormalMode)
	case "n", "N", "esc":
		m.pendingDeleteColumnID = ""
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleDetailMode closes the detail modal, opens the edit form or asks to
// delete the game. Other keys scroll the review.
func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case km.Cancel, km.Quit, km.ViewGame:
		m.App.Board.ClearSelection()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case km.EditGame:
		g, ok := m.App.Board.Selected()
		m.App.Board.ClearSelection()
		if !ok {
			m.UiState.SetMode(state.NormalMode)
			return m, nil
		}
		return m.openGameForm(g, "")
	case km.DeleteGame:
		g, ok := m.App.Board.Selected()
		m.App.Board.ClearSelection()
		if !ok {
			m.UiState.SetMode(state.NormalMode)
			return m, nil
		}
		m.pendingDeleteGameID = g.ID
		m.UiState.SetMode(state.DeleteGameConfirmMode)
		return m, nil
	}

	var cmd tea.Cmd
	m.Detail, cmd = m.Detail.Update(msg)
	return m, cmd
}

// handleHelpMode closes the help screen on any key
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.UiState.SetMode(state.NormalMode)
	return m, nil
}
