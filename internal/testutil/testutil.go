// Package testutil provides helpers shared by tests that need a real slot store.
package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/redisstore"
)

// QuietLogger returns a logger whose output is discarded
func QuietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

// SQLitePath returns a fresh database path inside the test's temp dir
func SQLitePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "board.db")
}

// SetupSQLiteSlots opens a migrated sqlite slot store at path. It is closed
// when the test ends.
func SetupSQLiteSlots(t *testing.T, path string) *database.SlotRepo {
	t.Helper()
	db, err := database.InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	repo := database.NewSlotRepo(db)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// SetupRedisSlots starts a miniredis server and returns a slot store
// connected to it, plus the server for inspection.
func SetupRedisSlots(t *testing.T) (*redisstore.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := redisstore.Dial(context.Background(), redisstore.Options{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("Failed to connect to miniredis: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

// TaskIDs returns the ids of the tasks in a column, in order. A missing
// column yields an empty slice.
func TaskIDs(b models.Board, columnID string) []string {
	c, _ := b.Column(columnID)
	ids := make([]string, 0, len(c.Tasks))
	for _, t := range c.Tasks {
		ids = append(ids, t.ID)
	}
	return ids
}
