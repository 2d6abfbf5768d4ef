// Package watch reports changes another process makes to the board's store
// so an open board can reload.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// ErrNothingToWatch is returned for stores with no filesystem location
var ErrNothingToWatch = errors.New("store has no path to watch")

const defaultDebounce = 150 * time.Millisecond

// Option configures a Watcher
type Option func(*Watcher)

// WithDebounce sets how long events are coalesced before a change is reported
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// Watcher turns filesystem events on a store into coalesced change signals
type Watcher struct {
	fsw      *fsnotify.Watcher
	dir      string
	glob     string
	names    []string
	debounce time.Duration
	changes  chan struct{}
}

// New watches storePath. A directory (file store) reports changes to any
// *.json file in it. A file (sqlite store) reports changes to the file and
// its -wal and -journal companions.
func New(storePath string, opts ...Option) (*Watcher, error) {
	if storePath == "" {
		return nil, ErrNothingToWatch
	}

	w := &Watcher{
		debounce: defaultDebounce,
		changes:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(w)
	}

	info, err := os.Stat(storePath)
	switch {
	case err == nil && info.IsDir():
		w.dir = storePath
		w.glob = "*.json"
	case err == nil || os.IsNotExist(err):
		base := filepath.Base(storePath)
		w.dir = filepath.Dir(storePath)
		w.names = []string{base, base + "-wal", base + "-journal"}
	default:
		return nil, fmt.Errorf("failed to stat %s: %w", storePath, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(w.dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.fsw = fsw
	return w, nil
}

// Changes delivers one signal per burst of store writes. Signals that are
// not consumed collapse into one.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Run processes events until ctx is cancelled or the watcher is closed
func (w *Watcher) Run(ctx context.Context) error {
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("store changed on disk", "path", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			slog.Error("fsnotify error", "error", err)

		case <-timer.C:
			select {
			case w.changes <- struct{}{}:
			default:
			}
		}
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, "shelf-tmp-") {
		return false
	}
	if w.glob != "" {
		ok, _ := doublestar.Match(w.glob, name)
		return ok
	}
	return slices.Contains(w.names, name)
}
