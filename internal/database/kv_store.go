package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/shelf/internal/store"
)

// KVStore implements store.Backend on top of the kv table
type KVStore struct {
	db   *sql.DB
	path string
}

var _ store.Backend = (*KVStore)(nil)

// NewKVStore wraps an initialized database. path is reported to watchers.
func NewKVStore(db *sql.DB, path string) *KVStore {
	if path == ":memory:" {
		path = ""
	}
	return &KVStore{db: db, path: path}
}

// Get returns the value stored under key, or store.ErrNotFound
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, nil
}

// Put upserts the value stored under key
func (s *KVStore) Put(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return store.ErrInvalidKey
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, data)
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Keys lists all stored keys in lexical order
func (s *KVStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key FROM kv ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Path returns the database file location ("" for in-memory databases)
func (s *KVStore) Path() string { return s.path }

// Close closes the underlying database
func (s *KVStore) Close() error { return s.db.Close() }
