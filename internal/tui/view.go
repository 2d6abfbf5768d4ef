package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/shelf/internal/models"
	"github.com/thenoetrevino/shelf/internal/services/board"
	"github.com/thenoetrevino/shelf/internal/tui/components"
	"github.com/thenoetrevino/shelf/internal/tui/layers"
	"github.com/thenoetrevino/shelf/internal/tui/state"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(m.Config.ColorScheme.Background)

	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	base := m.viewBoard()

	var modal string
	switch m.UiState.Mode() {
	case state.GameFormMode:
		modal = m.viewGameForm()
	case state.ColumnFormMode:
		modal = m.viewColumnForm()
	case state.DeleteGameConfirmMode:
		modal = m.viewDeleteGameConfirm()
	case state.DeleteColumnConfirmMode:
		modal = m.viewDeleteColumnConfirm()
	case state.DetailMode:
		modal = m.viewDetail()
	case state.HelpMode:
		modal = m.viewHelp()
	}

	view.Content = layers.Compose(base,
		layers.CreateCenteredLayer(modal, m.UiState.Width(), m.UiState.Height()))
	return view
}

// viewBoard renders the header, the visible lanes and the status bar
func (m Model) viewBoard() string {
	header := components.TitleStyle.Render("shelf") + "\n"

	lanes := m.lanes()
	if len(lanes) == 0 {
		empty := components.SubtleStyle.Render(fmt.Sprintf(
			"No columns yet. Press %s to create one, %s to show unassigned games.",
			m.Config.KeyMappings.CreateColumn, m.Config.KeyMappings.ToggleUnassigned))
		body := lipgloss.Place(m.UiState.Width(), m.UiState.ContentHeight(), lipgloss.Center, lipgloss.Center, empty)
		return header + "\n" + body + "\n" + m.viewStatusBar()
	}

	drag := m.App.Board.Dragging()
	height := m.UiState.ContentHeight()
	start := m.UiState.ViewportOffset()
	end := min(start+m.UiState.ViewportSize(), len(lanes))

	rendered := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		l := lanes[i]
		selected := i == m.UiState.SelectedLane()
		selectedGame := -1
		if selected {
			selectedGame = m.UiState.SelectedGame()
		}
		rendered = append(rendered, components.RenderLane(components.Lane{
			Title:        l.Title,
			Games:        l.Games,
			Selected:     selected,
			SelectedGame: selectedGame,
			DropTarget:   selected && drag.Active && !l.Unassigned && l.ID != drag.SourceColumnID,
			HeldGameID:   drag.GameID,
			Height:       height,
			ScrollOffset: m.UiState.GameScrollOffset(l.ID),
		}))
	}

	left, right := " ", " "
	if start > 0 {
		left = components.IndicatorStyle.Render("◀")
	}
	if end < len(lanes) {
		right = components.IndicatorStyle.Render("▶")
	}

	columns := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	row := lipgloss.JoinHorizontal(lipgloss.Center, left, " ", columns, " ", right)

	return header + "\n" + row + "\n" + m.viewStatusBar()
}

// viewStatusBar shows the latest notification, or the drag state and a help hint
func (m Model) viewStatusBar() string {
	width := m.UiState.Width()

	if n, ok := m.NotificationState.Latest(); ok {
		style := components.InfoBannerStyle
		switch n.Level {
		case state.LevelWarning:
			style = components.WarningBannerStyle
		case state.LevelError:
			style = components.ErrorBannerStyle
		}
		msg := n.Message
		if more := m.NotificationState.Len() - 1; more > 0 {
			msg += fmt.Sprintf(" (+%d)", more)
		}
		return style.Width(width).Render(msg)
	}

	text := fmt.Sprintf("%s help  %s quit", m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit)
	if drag := m.App.Board.Dragging(); drag.Active {
		if g, ok := m.App.Board.Game(drag.GameID); ok {
			text = fmt.Sprintf("Holding %s  %s drop  %s cancel", g.Title,
				m.Config.KeyMappings.Drop, m.Config.KeyMappings.Cancel)
		}
	}
	return components.StatusBarStyle.Width(width).Render(" " + text)
}

func (m Model) viewGameForm() string {
	if m.FormState.GameForm == nil {
		return ""
	}
	width := max(m.UiState.Width()/2, 50)
	return components.FormBoxStyle.Width(width).Render(m.FormState.GameForm.View())
}

func (m Model) viewColumnForm() string {
	if m.FormState.ColumnForm == nil {
		return ""
	}
	style := components.CreateInputBoxStyle
	if m.FormState.EditingColumnID != "" {
		style = components.EditInputBoxStyle
	}
	return style.Width(50).Render(m.FormState.ColumnForm.View())
}

func (m Model) viewDeleteGameConfirm() string {
	g, ok := m.App.Board.Game(m.pendingDeleteGameID)
	if !ok {
		return ""
	}
	return components.DeleteConfirmBoxStyle.Width(50).
		Render(fmt.Sprintf("Delete '%s'?\n\n[y]es  [n]o", g.Title))
}

func (m Model) viewDeleteColumnConfirm() string {
	c, ok := m.App.Board.Column(m.pendingDeleteColumnID)
	if !ok {
		return ""
	}

	content := fmt.Sprintf("Delete column '%s'?", c.Title)
	if n := len(m.App.Board.ColumnGames(c.ID)); n > 0 {
		fate := "become unassigned"
		if m.App.Board.Policy() == board.DeleteCascade {
			fate = "be deleted"
		}
		content += components.SubtleStyle.Render(fmt.Sprintf("\n%d game(s) will %s.", n, fate))
	}
	content += "\n\n[y]es  [n]o"

	return components.DeleteConfirmBoxStyle.Width(50).Render(content)
}

// detailSize is the outer size of the detail modal
func (m Model) detailSize() (int, int) {
	return max(m.UiState.Width()*2/3, 40), max(m.UiState.Height()*3/4, 10)
}

// resizeDetail fits the detail viewport inside the modal border and footer
func (m *Model) resizeDetail() {
	w, h := m.detailSize()
	m.Detail.SetWidth(w - 4)
	m.Detail.SetHeight(h - 4)
}

// setDetailContent renders a game into the detail viewport
func (m *Model) setDetailContent(g *models.Game) {
	m.Detail.SetContent(components.RenderGameDetail(g, m.Detail.Width()))
}

func (m Model) viewDetail() string {
	km := m.Config.KeyMappings
	footer := components.SubtleStyle.Render(fmt.Sprintf(
		"%s edit  %s delete  %s close  j/k scroll", km.EditGame, km.DeleteGame, km.Cancel))

	w, _ := m.detailSize()
	return components.DetailBoxStyle.Width(w - 2).Render(m.Detail.View() + "\n\n" + footer)
}

func (m Model) viewHelp() string {
	km := m.Config.KeyMappings
	rows := [][2]string{
		{km.PrevColumn + "/" + km.NextColumn, "previous/next column"},
		{km.PrevGame + "/" + km.NextGame, "previous/next game"},
		{km.AddGame, "add game"},
		{km.EditGame, "edit game"},
		{km.DeleteGame, "delete game"},
		{km.ViewGame, "view game"},
		{km.Grab, "grab game"},
		{km.Drop, "drop on focused column"},
		{km.Cancel, "cancel move"},
		{km.CreateColumn, "create column"},
		{km.RenameColumn, "rename column"},
		{km.DeleteColumn, "delete column"},
		{km.ToggleUnassigned, "toggle unassigned games"},
		{km.ShowHelp, "help"},
		{km.Quit, "quit"},
	}

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Keys"))
	b.WriteString("\n\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%-8s %s\n", r[0], r[1])
	}
	b.WriteString("\n")
	b.WriteString(components.SubtleStyle.Render("Press any key to close"))

	return components.HelpBoxStyle.Render(b.String())
}
