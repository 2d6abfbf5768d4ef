// Package core is the tea.Model handed to the bubbletea program. It keeps
// the board model behind a pointer so tests and the launcher can inspect
// the state the program ended with.
package core

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/shelf/internal/app"
	"github.com/thenoetrevino/shelf/internal/config"
	"github.com/thenoetrevino/shelf/internal/tui"
)

type App struct {
	model *tui.Model
	// updates counts handled messages, logged when the board closes
	updates int
}

// New builds the board model for application
func New(ctx context.Context, application *app.App, cfg *config.Config, opts ...tui.Option) *App {
	m := tui.InitialModel(ctx, application, cfg, opts...)
	return &App{model: &m}
}

func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update runs the board model and keeps the result
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	a.updates++
	if _, ok := msg.(tea.QuitMsg); ok {
		slog.Debug("board closed", "messages", a.updates)
	}

	next, cmd := a.model.Update(msg)
	if m, ok := next.(tui.Model); ok {
		*a.model = m
	}
	return a, cmd
}

func (a *App) View() tea.View {
	return a.model.View()
}

// GetModel returns the current board model
func (a *App) GetModel() *tui.Model {
	return a.model
}
