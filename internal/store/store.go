// Package store is the key-value persistence layer behind the board.
// Values are JSON encoded; a backend only moves bytes.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// Backend persists raw values under string keys.
type Backend interface {
	// Get returns the bytes saved under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put replaces the value saved under key.
	Put(ctx context.Context, key string, data []byte) error
	// Keys lists every saved key.
	Keys(ctx context.Context) ([]string, error)
	// Path is the on-disk location watched for external changes ("" if none).
	Path() string
}

// Load returns the value saved under key, or def if it is absent, unreadable
// or malformed. Malformed data is logged and otherwise treated as absent.
func Load[T any](ctx context.Context, b Backend, key string, def T) T {
	data, err := b.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Warn("failed to read stored value, using default", "key", key, "error", err)
		}
		return def
	}

	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		slog.Warn("malformed stored value, using default", "key", key, "error", err)
		return def
	}
	return v
}

// Save serializes v and writes it under key, replacing any prior value.
func Save[T any](ctx context.Context, b Backend, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := b.Put(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
