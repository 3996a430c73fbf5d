package launcher

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/logging"
	"github.com/thenoetrevino/kanban/internal/models"
)

func restoreDefaultLogger(t *testing.T) {
	t.Helper()
	previous := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(previous)
		log.SetOutput(os.Stderr)
	})
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.SQLitePath = filepath.Join(dir, "board.db")
	cfg.Log.Dir = filepath.Join(dir, "logs")
	cfg.Log.Level = "debug"
	return cfg
}

func TestLaunchWithConfig(t *testing.T) {
	restoreDefaultLogger(t)
	cfg := testConfig(t)

	err := LaunchWithConfig(cfg, func(ctx context.Context, a *app.App) error {
		a.Board.CreateTask(ctx, models.ColumnTodo, "from launcher")
		return nil
	})
	require.NoError(t, err)

	// The board was persisted and closed; a second launch sees the task
	var count int
	err = LaunchWithConfig(cfg, func(ctx context.Context, a *app.App) error {
		count = a.Board.CurrentBoard().TaskCount()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultBoard().TaskCount()+1, count)

	data, err := os.ReadFile(filepath.Join(cfg.Log.Dir, logging.FileName))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "board loaded"))
}

func TestLaunchWithConfig_RunError(t *testing.T) {
	restoreDefaultLogger(t)

	boom := errors.New("render failed")
	err := LaunchWithConfig(testConfig(t), func(ctx context.Context, a *app.App) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestLaunchWithConfig_CancelledRunIsClean(t *testing.T) {
	restoreDefaultLogger(t)

	err := LaunchWithConfig(testConfig(t), func(ctx context.Context, a *app.App) error {
		return context.Canceled
	})
	assert.NoError(t, err)
}

func TestLaunch_UsesConfigFile(t *testing.T) {
	restoreDefaultLogger(t)

	cfg := testConfig(t)
	cfg.Storage.Slot = "launchedBoard"
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(config.EnvConfigPath, path)
	require.NoError(t, cfg.Save())

	err := Launch(func(ctx context.Context, a *app.App) error {
		assert.Equal(t, int64(1), a.Metrics().LoadFallbacks)
		return nil
	})
	assert.NoError(t, err)
}
