package tui

import (
	"context"
	"slices"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/shelf/internal/app"
	"github.com/thenoetrevino/shelf/internal/config"
	"github.com/thenoetrevino/shelf/internal/models"
	"github.com/thenoetrevino/shelf/internal/services/board"
	"github.com/thenoetrevino/shelf/internal/tui/components"
	"github.com/thenoetrevino/shelf/internal/tui/state"
)

// UnassignedTitle is the title of the lane holding games no column owns
const UnassignedTitle = "Unassigned"

// Model is the board TUI. All board mutations go through App.Board from
// inside Update, so the model never needs a lock.
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState           *state.UIState
	FormState         *state.FormState
	NotificationState *state.NotificationState

	// Detail is the scrollable body of the game detail modal
	Detail viewport.Model

	// Changes signals that another process wrote the store
	Changes <-chan struct{}

	// pendingDeleteGameID is the game awaiting delete confirmation
	pendingDeleteGameID string
	// pendingDeleteColumnID is the column awaiting delete confirmation
	pendingDeleteColumnID string
}

// Option configures a Model
type Option func(*Model)

// WithChanges subscribes the model to external store changes
func WithChanges(ch <-chan struct{}) Option {
	return func(m *Model) {
		m.Changes = ch
	}
}

// InitialModel creates the TUI model over an opened application
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	m := Model{
		Ctx:               ctx,
		App:               a,
		Config:            cfg,
		UiState:           state.NewUIState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
		Detail:            viewport.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts listening for store changes
func (m Model) Init() tea.Cmd {
	return m.subscribeToChanges()
}

// lane is one column of the board as displayed. The unassigned pool is a
// lane too, with an empty ID.
type lane struct {
	ID         string
	Title      string
	Games      []*models.Game
	Unassigned bool
}

// lanes returns the board's columns in display order, followed by the
// unassigned lane when it is toggled on.
func (m Model) lanes() []lane {
	columns := m.App.Board.Columns()
	out := make([]lane, 0, len(columns)+1)
	for _, c := range columns {
		out = append(out, lane{ID: c.ID, Title: c.Title, Games: m.App.Board.ColumnGames(c.ID)})
	}
	if m.UiState.ShowUnassigned() {
		out = append(out, lane{
			ID:         board.UnassignedSource,
			Title:      UnassignedTitle,
			Games:      m.App.Board.Unassigned(),
			Unassigned: true,
		})
	}
	return out
}

// currentLane returns the focused lane
func (m Model) currentLane() (lane, bool) {
	lanes := m.lanes()
	idx := m.UiState.SelectedLane()
	if idx >= len(lanes) {
		return lane{}, false
	}
	return lanes[idx], true
}

// currentColumn returns the focused lane when it is a real column
func (m Model) currentColumn() (*models.Column, bool) {
	l, ok := m.currentLane()
	if !ok || l.Unassigned {
		return nil, false
	}
	return m.App.Board.Column(l.ID)
}

// currentGame returns the focused game
func (m Model) currentGame() (*models.Game, bool) {
	l, ok := m.currentLane()
	if !ok {
		return nil, false
	}
	idx := m.UiState.SelectedGame()
	if idx >= len(l.Games) {
		return nil, false
	}
	return l.Games[idx], true
}

// clampSelection keeps the cursor on the board after it shrank
func (m *Model) clampSelection() {
	lanes := m.lanes()
	m.UiState.ClampSelection(len(lanes), func(i int) int {
		return len(lanes[i].Games)
	})
}

// focusGame moves the cursor onto a game, wherever it is on the board
func (m *Model) focusGame(gameID string) {
	for i, l := range m.lanes() {
		idx := slices.IndexFunc(l.Games, func(g *models.Game) bool { return g.ID == gameID })
		if idx < 0 {
			continue
		}
		m.UiState.SetSelectedLane(i)
		m.UiState.SetSelectedGame(idx)
		m.UiState.EnsureSelectionVisible(i)
		m.ensureGameVisible()
		return
	}
}

// focusLane moves the cursor onto a lane by ID
func (m *Model) focusLane(laneID string) {
	for i, l := range m.lanes() {
		if l.ID == laneID && !l.Unassigned {
			m.UiState.SetSelectedLane(i)
			m.UiState.SetSelectedGame(0)
			m.UiState.EnsureSelectionVisible(i)
			return
		}
	}
}

func (m *Model) ensureGameVisible() {
	if l, ok := m.currentLane(); ok {
		visible := components.VisibleCards(m.UiState.ContentHeight())
		m.UiState.EnsureGameVisible(l.ID, m.UiState.SelectedGame(), visible)
	}
}
