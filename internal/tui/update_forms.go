package tui

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/shelf/internal/models"
	"github.com/thenoetrevino/shelf/internal/services/board"
	"github.com/thenoetrevino/shelf/internal/services/column"
	"github.com/thenoetrevino/shelf/internal/services/game"
	"github.com/thenoetrevino/shelf/internal/tui/huhforms"
	"github.com/thenoetrevino/shelf/internal/tui/state"
)

// handleAddGame opens an empty game form. The new game lands in the focused
// column, or stays unassigned when the unassigned lane is focused.
func (m Model) handleAddGame() (tea.Model, tea.Cmd) {
	target := board.UnassignedSource
	if c, ok := m.currentColumn(); ok {
		target = c.ID
	}
	return m.openGameForm(nil, target)
}

// handleEditGame opens the game form on the focused game
func (m Model) handleEditGame() (tea.Model, tea.Cmd) {
	g, ok := m.currentGame()
	if !ok {
		return m, nil
	}
	return m.openGameForm(g, "")
}

// openGameForm builds the game form. A nil game means create.
func (m Model) openGameForm(g *models.Game, targetColumnID string) (tea.Model, tea.Cmd) {
	fs := m.FormState
	fs.LoadGame(g, m.App.DefaultScore)
	fs.TargetColumnID = targetColumnID

	reviewLines := max(m.UiState.Height()/4, 4)
	fs.GameForm = huhforms.CreateGameForm(huhforms.GameFormValues{
		Title:       &fs.FormTitle,
		Description: &fs.FormDescription,
		Review:      &fs.FormReview,
		Score:       &fs.FormScore,
		Tags:        &fs.FormTags,
		ImageURL:    &fs.FormImageURL,
	}, g != nil, reviewLines).WithTheme(huhforms.CreateShelfTheme(m.Config.ColorScheme))

	m.UiState.SetMode(state.GameFormMode)
	return m, fs.GameForm.Init()
}

// handleCreateColumn opens an empty column form
func (m Model) handleCreateColumn() (tea.Model, tea.Cmd) {
	return m.openColumnForm(nil)
}

// handleRenameColumn opens the column form on the focused column
func (m Model) handleRenameColumn() (tea.Model, tea.Cmd) {
	c, ok := m.currentColumn()
	if !ok {
		return m, nil
	}
	return m.openColumnForm(c)
}

func (m Model) openColumnForm(c *models.Column) (tea.Model, tea.Cmd) {
	fs := m.FormState
	fs.FormColumnTitle = ""
	fs.EditingColumnID = ""
	if c != nil {
		fs.FormColumnTitle = c.Title
		fs.EditingColumnID = c.ID
	}

	fs.ColumnForm = huhforms.CreateColumnForm(&fs.FormColumnTitle, c != nil).
		WithTheme(huhforms.CreateShelfTheme(m.Config.ColorScheme))

	m.UiState.SetMode(state.ColumnFormMode)
	return m, fs.ColumnForm.Init()
}

// formConfig holds configuration for generic form handling
type formConfig struct {
	form       *huh.Form
	setForm    func(*huh.Form)
	clearForm  func()
	onComplete func() // Called when form completes successfully
}

// handleFormUpdate forwards a message to the active form and saves once the
// form completes. esc or an aborted form discards it.
func (m Model) handleFormUpdate(msg tea.Msg, cfg formConfig) (tea.Model, tea.Cmd) {
	if cfg.form == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "esc" {
		cfg.clearForm()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	model, cmd := cfg.form.Update(msg)
	form := model.(*huh.Form)
	cfg.setForm(form)

	switch form.State {
	case huh.StateCompleted:
		cfg.onComplete()
		cfg.clearForm()
		m.UiState.SetMode(state.NormalMode)
		return m, tea.ClearScreen
	case huh.StateAborted:
		cfg.clearForm()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	return m, cmd
}

func (m Model) updateGameForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleFormUpdate(msg, formConfig{
		form:       m.FormState.GameForm,
		setForm:    func(f *huh.Form) { m.FormState.GameForm = f },
		clearForm:  m.FormState.ClearGameForm,
		onComplete: m.saveGameForm,
	})
}

func (m Model) updateColumnForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleFormUpdate(msg, formConfig{
		form:       m.FormState.ColumnForm,
		setForm:    func(f *huh.Form) { m.FormState.ColumnForm = f },
		clearForm:  m.FormState.ClearColumnForm,
		onComplete: m.saveColumnForm,
	})
}

// saveGameForm validates the form values and saves the game through the board
func (m Model) saveGameForm() {
	fs := m.FormState

	fields, err := fs.GameFields()
	if err == nil {
		fields, err = game.Validate(fields)
	}
	if err != nil {
		m.NotificationState.Add(state.LevelError, err.Error())
		return
	}

	id, err := m.App.Board.SaveGame(m.Ctx, board.SaveGameRequest{
		ID:             fs.EditingGameID,
		Fields:         fields,
		TargetColumnID: fs.TargetColumnID,
	})
	if err != nil {
		slog.Error("error saving game", "id", fs.EditingGameID, "error", err)
		m.NotificationState.Add(state.LevelError, "Error saving game")
		return
	}

	if fs.EditingGameID == "" && fs.TargetColumnID == board.UnassignedSource {
		m.NotificationState.Add(state.LevelInfo, "Game added to "+UnassignedTitle)
	} else {
		m.NotificationState.Add(state.LevelInfo, "Game saved")
	}
	m.focusGame(id)
}

// saveColumnForm creates or renames a column through the board
func (m Model) saveColumnForm() {
	fs := m.FormState

	id, err := m.App.Board.SaveColumn(m.Ctx, board.SaveColumnRequest{
		ID:    fs.EditingColumnID,
		Title: fs.FormColumnTitle,
	})
	if err != nil {
		slog.Error("error saving column", "id", fs.EditingColumnID, "error", err)
		m.NotificationState.Add(state.LevelError, columnErrorMessage(err))
		return
	}

	m.NotificationState.Add(state.LevelInfo, "Column saved")
	if fs.EditingColumnID == "" {
		m.focusLane(id)
	}
}

func columnErrorMessage(err error) string {
	if errors.Is(err, column.ErrEmptyTitle) {
		return column.ErrEmptyTitle.Error()
	}
	return "Error saving column"
}
