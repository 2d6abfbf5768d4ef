// Package launcher wires the application together and runs the board TUI.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/shelf/internal/app"
	"github.com/thenoetrevino/shelf/internal/config"
	"github.com/thenoetrevino/shelf/internal/logging"
	"github.com/thenoetrevino/shelf/internal/tui"
	"github.com/thenoetrevino/shelf/internal/tui/core"
	"github.com/thenoetrevino/shelf/internal/watch"
)

// Launch starts the TUI application
func Launch(parent context.Context, cfg *config.Config) error {
	// Initialize logging to file before anything else
	logFile, err := logging.Init(cfg.SlogLevel())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		_ = logFile.Close()
	}()

	// Root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open board: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing store", "error", err)
		}
	}()

	var opts []tui.Option
	if watcher := startWatcher(ctx, application); watcher != nil {
		defer func() {
			_ = watcher.Close()
		}()
		opts = append(opts, tui.WithChanges(watcher.Changes()))
	}

	p := tea.NewProgram(core.New(ctx, application, cfg, opts...), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}

	if ctx.Err() != nil {
		slog.Info("shutdown signal received, cleaning up")
	}
	return nil
}

// startWatcher follows the store for writes by other processes. The board
// still works without it, so failures are only logged.
func startWatcher(ctx context.Context, application *app.App) *watch.Watcher {
	watcher, err := watch.New(application.Backend.Path())
	if errors.Is(err, watch.ErrNothingToWatch) {
		return nil
	}
	if err != nil {
		slog.Warn("failed to watch store", "error", err)
		slog.Info("continuing without live updates")
		return nil
	}

	go func() {
		if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("store watcher stopped", "error", err)
		}
	}()
	return watcher
}
