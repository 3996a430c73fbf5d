package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/metrics"
	"github.com/thenoetrevino/kanban/internal/persistence"
	"github.com/thenoetrevino/kanban/internal/redisstore"
	"github.com/thenoetrevino/kanban/internal/services/board"
)

// SlotStore is a persistence.SlotStore owned by the App
type SlotStore interface {
	persistence.SlotStore
	io.Closer
}

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Service layer
	Board board.Service

	// Storage backend holding the board slot
	slots SlotStore

	// Event system for change notifications
	eventClient events.EventPublisher

	metrics *metrics.Metrics
	logger  *slog.Logger
}

// New opens the configured storage backend and creates the board service on
// top of it. This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	} else {
		c := *cfg
		c.ApplyDefaults()
		cfg = &c
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	ac := &appConfig{}
	for _, opt := range opts {
		opt(ac)
	}
	if ac.logger == nil {
		ac.logger = slog.Default()
	}
	if ac.eventClient == nil {
		ac.eventClient = events.NewBus(events.WithLogger(ac.logger))
	}

	slots := ac.slots
	if slots == nil {
		var err error
		slots, err = openSlots(ctx, cfg.Storage)
		if err != nil {
			return nil, err
		}
	}

	m := metrics.NewMetrics()
	adapter := persistence.NewAdapter(slots,
		persistence.WithSlot(cfg.Storage.Slot),
		persistence.WithLogger(ac.logger),
		persistence.WithMetrics(m),
	)

	svc := board.NewService(ctx, adapter, ac.factory(),
		board.WithLogger(ac.logger),
		board.WithEventPublisher(ac.eventClient),
		board.WithMetrics(m),
		board.WithDefaultBoard(cfg.Board()),
	)

	ac.logger.Info("board loaded",
		"backend", cfg.Storage.Backend,
		"slot", adapter.Slot(),
		"tasks", svc.CurrentBoard().TaskCount())

	return &App{
		Board:       svc,
		slots:       slots,
		eventClient: ac.eventClient,
		metrics:     m,
		logger:      ac.logger,
	}, nil
}

// openSlots connects to the configured storage backend
func openSlots(ctx context.Context, cfg config.StorageConfig) (SlotStore, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		store, err := redisstore.Dial(ctx, redisstore.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendSQLite:
		path, err := config.ExpandHome(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve sqlite path: %w", err)
		}
		db, err := database.InitDB(ctx, path)
		if err != nil {
			return nil, err
		}
		return database.NewSlotRepo(db), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
	}
}

// Events subscribes to board changes until ctx is done or the App is closed
func (a *App) Events(ctx context.Context) (<-chan events.Event, error) {
	return a.eventClient.Listen(ctx)
}

// Metrics returns a point-in-time copy of the board counters
func (a *App) Metrics() metrics.Snapshot {
	return a.metrics.GetSnapshot()
}

// Close shuts down the event publisher and the storage backend
func (a *App) Close() error {
	var errs []error
	if err := a.eventClient.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close event publisher: %w", err))
	}
	if err := a.slots.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close storage: %w", err))
	}
	if len(errs) == 0 {
		a.logger.Debug("app closed")
	}
	return errors.Join(errs...)
}
