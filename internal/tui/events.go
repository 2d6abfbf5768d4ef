package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/shelf/internal/tui/state"
)

// RefreshMsg is sent when another process changed the store
type RefreshMsg struct{}

// subscribeToChanges returns a command that waits for the next store change
// and turns it into a RefreshMsg. Returns nil without a change channel.
func (m Model) subscribeToChanges() tea.Cmd {
	if m.Changes == nil {
		return nil
	}

	changes := m.Changes
	ctx := m.Ctx
	return func() tea.Msg {
		select {
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			return RefreshMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

// handleRefresh reloads the board from the store and keeps listening.
// Open modals whose game or column disappeared are closed.
func (m Model) handleRefresh() (tea.Model, tea.Cmd) {
	m.App.Board.Reload(m.Ctx)
	m.clampSelection()

	switch m.UiState.Mode() {
	case state.DetailMode:
		if g, ok := m.App.Board.Selected(); ok {
			m.setDetailContent(g)
		} else {
			m.UiState.SetMode(state.NormalMode)
		}
	case state.DeleteGameConfirmMode:
		if _, ok := m.App.Board.Game(m.pendingDeleteGameID); !ok {
			m.pendingDeleteGameID = ""
			m.UiState.SetMode(state.NormalMode)
		}
	case state.DeleteColumnConfirmMode:
		if _, ok := m.App.Board.Column(m.pendingDeleteColumnID); !ok {
			m.pendingDeleteColumnID = ""
			m.UiState.SetMode(state.NormalMode)
		}
	}

	return m, m.subscribeToChanges()
}
