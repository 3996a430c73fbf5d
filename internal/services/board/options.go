package board

import (
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/metrics"
	"github.com/thenoetrevino/kanban/internal/models"
)

// Option is a functional option for configuring the board service
type Option func(*service)

// WithLogger sets the logger for the service
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithEventPublisher sets the publisher notified after every committed change
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(s *service) {
		s.eventClient = ec
	}
}

// WithMetrics sets the metrics the service reports to
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithDefaultBoard sets the board used when nothing usable is persisted
func WithDefaultBoard(b models.Board) Option {
	return func(s *service) {
		if b != nil {
			s.defaultBoard = b.Clone()
		}
	}
}
