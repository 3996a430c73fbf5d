package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

// brokenSlots fails every write and reports nothing stored
type brokenSlots struct {
	closed bool
}

func (b *brokenSlots) GetSlot(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("connection reset")
}

func (b *brokenSlots) PutSlot(ctx context.Context, key string, value []byte) error {
	return errors.New("connection reset")
}

func (b *brokenSlots) Close() error {
	b.closed = true
	return nil
}

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.SQLitePath = testutil.SQLitePath(t)
	return cfg
}

func TestNew(t *testing.T) {
	t.Parallel()

	app, err := New(context.Background(), sqliteConfig(t), WithLogger(testutil.QuietLogger()))
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	require.NotNil(t, app.Board, "Expected board service to be initialized")
	assert.True(t, app.Board.CurrentBoard().Equal(models.DefaultBoard()))
}

func TestNew_PartialConfigGetsDefaults(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Storage: config.StorageConfig{SQLitePath: testutil.SQLitePath(t)}}
	app, err := New(context.Background(), cfg, WithLogger(testutil.QuietLogger()))
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	assert.Empty(t, cfg.Storage.Backend, "caller config must not be modified")
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Storage.Backend = "etcd"

	_, err := New(context.Background(), cfg, WithLogger(testutil.QuietLogger()))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownBackend)
}

func TestNew_RedisUnreachable(t *testing.T) {
	t.Parallel()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	cfg := config.Default()
	cfg.Storage.Backend = config.BackendRedis
	cfg.Storage.RedisAddr = addr

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = New(ctx, cfg, WithLogger(testutil.QuietLogger()))
	assert.Error(t, err)
}

func TestBoardSurvivesRestart_SQLite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := sqliteConfig(t)

	first, err := New(ctx, cfg, WithLogger(testutil.QuietLogger()))
	require.NoError(t, err)

	moved := first.Board.ApplyMove(ctx, models.MoveRequest{
		SourceColumnID:      models.ColumnTodo,
		SourceIndex:         0,
		DestinationColumnID: models.ColumnDone,
		DestinationIndex:    0,
	})
	created, want := first.Board.CreateTask(ctx, models.ColumnInProgress, "Ship it")
	require.NotEmpty(t, created.ID)
	assert.False(t, moved.Equal(models.DefaultBoard()))
	require.NoError(t, first.Close())

	second, err := New(ctx, cfg, WithLogger(testutil.QuietLogger()))
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	assert.True(t, second.Board.CurrentBoard().Equal(want))
}

func TestBoardSurvivesRestart_Redis(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mr := miniredis.RunT(t)

	cfg := config.Default()
	cfg.Storage.Backend = config.BackendRedis
	cfg.Storage.RedisAddr = mr.Addr()
	cfg.Storage.Slot = "teamBoard"

	first, err := New(ctx, cfg, WithLogger(testutil.QuietLogger()), WithIDGenerator(func() string { return "fixed-id" }))
	require.NoError(t, err)
	created, want := first.Board.CreateTask(ctx, models.ColumnTodo, "")
	assert.Equal(t, "fixed-id", created.ID)
	require.NoError(t, first.Close())

	assert.True(t, mr.Exists("teamBoard"), "board should be stored under the configured slot")

	second, err := New(ctx, cfg, WithLogger(testutil.QuietLogger()))
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	assert.True(t, second.Board.CurrentBoard().Equal(want))
}

func TestConfiguredDefaultBoard(t *testing.T) {
	t.Parallel()

	cfg := sqliteConfig(t)
	cfg.DefaultBoard = models.Board{
		{ID: "backlog", Title: "Backlog", Tasks: []models.Task{{ID: "b-1", Content: "Groom"}}},
		{ID: "shipped", Title: "Shipped"},
	}

	app, err := New(context.Background(), cfg, WithLogger(testutil.QuietLogger()))
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	got := app.Board.CurrentBoard()
	require.Len(t, got, 2)
	assert.Equal(t, "backlog", got[0].ID)
	assert.Equal(t, 1, got.TaskCount())
}

func TestEventsAndMetrics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	app, err := New(ctx, sqliteConfig(t), WithLogger(testutil.QuietLogger()))
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	ch, err := app.Events(ctx)
	require.NoError(t, err)

	app.Board.ApplyMove(ctx, models.MoveRequest{SourceColumnID: models.ColumnTodo})
	app.Board.ApplyMove(ctx, models.MoveRequest{
		SourceColumnID:      models.ColumnInProgress,
		DestinationColumnID: models.ColumnDone,
	})

	select {
	case ev := <-ch:
		assert.Equal(t, events.EventTaskMoved, ev.Type)
		assert.Equal(t, "task-3", ev.TaskID)
		assert.Equal(t, models.ColumnDone, ev.ColumnID)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for move event")
	}

	snap := app.Metrics()
	assert.Equal(t, int64(1), snap.MovesApplied)
	assert.Equal(t, int64(1), snap.MovesIgnored)
	assert.Equal(t, int64(2), snap.Saves, "default board on open plus one move")
	assert.Equal(t, int64(1), snap.LoadFallbacks, "first start has nothing persisted")
}

func TestUntouchedSessionPersistsDefaultBoard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := sqliteConfig(t)

	first, err := New(ctx, cfg, WithLogger(testutil.QuietLogger()))
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(ctx, cfg, WithLogger(testutil.QuietLogger()))
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	assert.Equal(t, int64(0), second.Metrics().LoadFallbacks, "slot should hold the default board")
	assert.True(t, second.Board.CurrentBoard().Equal(models.DefaultBoard()))
}

func TestClose(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	app, err := New(ctx, sqliteConfig(t), WithLogger(testutil.QuietLogger()))
	require.NoError(t, err)

	ch, err := app.Events(ctx)
	require.NoError(t, err)

	require.NoError(t, app.Close())

	_, open := <-ch
	assert.False(t, open, "listener channel should be closed")

	_, err = app.Events(ctx)
	assert.ErrorIs(t, err, events.ErrPublisherClosed)
}

func TestWithSlotStore_FailuresAreSwallowed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	slots := &brokenSlots{}

	app, err := New(ctx, nil, WithLogger(testutil.QuietLogger()), WithSlotStore(slots))
	require.NoError(t, err)

	got := app.Board.ApplyMove(ctx, models.MoveRequest{
		SourceColumnID:      models.ColumnTodo,
		DestinationColumnID: models.ColumnInProgress,
	})
	assert.True(t, app.Board.CurrentBoard().Equal(got), "in-memory board stays current")

	snap := app.Metrics()
	assert.Equal(t, int64(1), snap.SaveFailures)
	assert.Equal(t, int64(1), snap.LoadFallbacks)

	require.NoError(t, app.Close())
	assert.True(t, slots.closed, "app owns the injected store")
}
