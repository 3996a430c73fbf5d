package persistence

import (
	"context"
	"errors"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/metrics"
	"github.com/thenoetrevino/kanban/internal/models"
)

// Adapter reads and writes the board snapshot. Persistence is best effort:
// failures are logged and counted, never returned.
type Adapter struct {
	slots   SlotStore
	key     string
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option is a functional option for configuring an Adapter
type Option func(*Adapter)

// WithSlot sets the key holding the snapshot
func WithSlot(key string) Option {
	return func(a *Adapter) {
		if key != "" {
			a.key = key
		}
	}
}

// WithLogger sets the logger for the adapter
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithMetrics sets the metrics the adapter reports to
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Adapter) {
		if m != nil {
			a.metrics = m
		}
	}
}

// NewAdapter creates an adapter over the given slot store
func NewAdapter(slots SlotStore, opts ...Option) *Adapter {
	a := &Adapter{
		slots:   slots,
		key:     DefaultSlot,
		logger:  slog.Default(),
		metrics: metrics.NewMetrics(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Slot returns the key the adapter reads and writes
func (a *Adapter) Slot() string {
	return a.key
}

// Load returns the stored board, or a copy of fallback when the slot is
// empty, unreadable or holds a malformed snapshot. An empty or malformed slot
// is overwritten with the fallback; a slot that could not be read is left alone.
func (a *Adapter) Load(ctx context.Context, fallback models.Board) models.Board {
	data, err := a.slots.GetSlot(ctx, a.key)
	if err != nil {
		a.metrics.IncLoadFallbacks()
		if !errors.Is(err, ErrSlotNotFound) {
			a.logger.Warn("failed to read saved board, using default", "slot", a.key, "error", err)
			return fallback.Clone()
		}
		a.logger.Info("no saved board, using default", "slot", a.key)
		return a.seed(ctx, fallback)
	}

	b, err := Decode(data)
	if err != nil {
		a.logger.Warn("saved board is corrupted, replacing with default", "slot", a.key, "error", err)
		a.metrics.IncLoadFallbacks()
		return a.seed(ctx, fallback)
	}

	a.logger.Debug("loaded board", "slot", a.key, "columns", len(b), "tasks", b.TaskCount())
	return b
}

// seed writes fallback to the slot and returns a copy of it
func (a *Adapter) seed(ctx context.Context, fallback models.Board) models.Board {
	b := fallback.Clone()
	b.Normalize()
	a.Save(ctx, b)
	return b
}

// Save writes the full board to the slot in a single write.
func (a *Adapter) Save(ctx context.Context, b models.Board) {
	data, err := Encode(b)
	if err != nil {
		a.logger.Error("failed to encode board", "slot", a.key, "error", err)
		a.metrics.IncSaveFailures()
		return
	}

	if err := a.slots.PutSlot(ctx, a.key, data); err != nil {
		a.logger.Error("failed to save board", "slot", a.key, "error", err)
		a.metrics.IncSaveFailures()
		return
	}

	a.metrics.IncSaves()
}
