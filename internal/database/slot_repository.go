package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/persistence"
)

// SlotRepo stores named snapshots in the slots table
type SlotRepo struct {
	db *sql.DB
}

// Compile-time verification that *SlotRepo implements persistence.SlotStore
var _ persistence.SlotStore = (*SlotRepo)(nil)

// NewSlotRepo creates a new SlotRepo wrapping the given database connection.
func NewSlotRepo(db *sql.DB) *SlotRepo {
	return &SlotRepo{db: db}
}

// GetSlot returns the value stored under key, or persistence.ErrSlotNotFound.
func (r *SlotRepo) GetSlot(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, "SELECT value FROM slots WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, persistence.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %q: %w", key, err)
	}
	return value, nil
}

// PutSlot replaces the value stored under key in a single transaction
func (r *SlotRepo) PutSlot(ctx context.Context, key string, value []byte) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
		`, key, value)
		if err != nil {
			return fmt.Errorf("failed to write slot %q: %w", key, err)
		}
		return nil
	})
}

// DeleteSlot removes key. Deleting a missing key is not an error.
func (r *SlotRepo) DeleteSlot(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM slots WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete slot %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database
func (r *SlotRepo) Close() error {
	return r.db.Close()
}
