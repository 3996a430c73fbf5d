package app

import (
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/services/task"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	slots       SlotStore
	idGenerator func() string
}

// WithEventPublisher replaces the in-process event bus
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithSlotStore uses an already opened slot store instead of the configured
// backend. The App takes ownership and closes it.
func WithSlotStore(s SlotStore) Option {
	return func(cfg *appConfig) {
		cfg.slots = s
	}
}

// WithIDGenerator sets the task id generator
func WithIDGenerator(fn func() string) Option {
	return func(cfg *appConfig) {
		cfg.idGenerator = fn
	}
}

func (c *appConfig) factory() *task.Factory {
	return task.NewFactory(task.WithIDGenerator(c.idGenerator))
}
