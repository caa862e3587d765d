// Package prefs persists small per-visitor preferences in SQLite.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ziadkadry99/switchubuntu/internal/db"
)

// ErrNotFound is returned when a visitor has no value for a key.
var ErrNotFound = errors.New("preference not found")

// Store reads and writes preference rows.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Get returns the stored value for (visitorID, key).
func (s *Store) Get(ctx context.Context, visitorID, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM preferences WHERE visitor_id = ? AND key = ?",
		visitorID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading preference %s: %w", key, err)
	}
	return value, nil
}

// Set inserts or replaces the value for (visitorID, key).
func (s *Store) Set(ctx context.Context, visitorID, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (visitor_id, key, value, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(visitor_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		visitorID, key, value,
	)
	if err != nil {
		return fmt.Errorf("writing preference %s: %w", key, err)
	}
	return nil
}

// Delete removes a single preference. Missing rows are not an error.
func (s *Store) Delete(ctx context.Context, visitorID, key string) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM preferences WHERE visitor_id = ? AND key = ?",
		visitorID, key,
	); err != nil {
		return fmt.Errorf("deleting preference %s: %w", key, err)
	}
	return nil
}

// All returns every preference stored for a visitor.
func (s *Store) All(ctx context.Context, visitorID string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT key, value FROM preferences WHERE visitor_id = ? ORDER BY key",
		visitorID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing preferences: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}

// Scoped is a Store view bound to one visitor. It satisfies theme.Storage.
type Scoped struct {
	store     *Store
	visitorID string
}

// For returns a view of the store scoped to visitorID.
func (s *Store) For(visitorID string) *Scoped {
	return &Scoped{store: s, visitorID: visitorID}
}

// Get reports the value for key; found is false when no row exists.
func (p *Scoped) Get(ctx context.Context, key string) (value string, found bool, err error) {
	value, err = p.store.Get(ctx, p.visitorID, key)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set writes key for the scoped visitor.
func (p *Scoped) Set(ctx context.Context, key, value string) error {
	return p.store.Set(ctx, p.visitorID, key, value)
}
