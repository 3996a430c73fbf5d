// Package board owns the canonical board and funnels every mutation through
// compute, commit, persist and notify as one unit.
package board

import (
	"context"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/kanban/internal/engine"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/metrics"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/services/task"
)

// Service defines all board operations available to the presentation layer.
// Boards returned by the service are copies; mutating them has no effect.
type Service interface {
	// Read operations
	CurrentBoard() models.Board

	// Write operations
	ApplyMove(ctx context.Context, req models.MoveRequest) models.Board
	AddTask(ctx context.Context, columnID string, t models.Task) models.Board
	CreateTask(ctx context.Context, columnID, content string) (models.Task, models.Board)
}

// Persister loads and saves board snapshots. Implementations handle their
// own failures; the service never sees a persistence error.
type Persister interface {
	Load(ctx context.Context, fallback models.Board) models.Board
	Save(ctx context.Context, b models.Board)
}

// service implements Service interface
type service struct {
	mu    sync.Mutex
	board models.Board

	store        Persister
	factory      *task.Factory
	eventClient  events.EventPublisher
	logger       *slog.Logger
	metrics      *metrics.Metrics
	defaultBoard models.Board
}

// NewService loads the persisted board (or the default board) and returns a
// service owning it.
func NewService(ctx context.Context, store Persister, factory *task.Factory, opts ...Option) Service {
	s := &service{
		store:        store,
		factory:      factory,
		logger:       slog.Default(),
		metrics:      metrics.NewMetrics(),
		defaultBoard: models.DefaultBoard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.factory == nil {
		s.factory = task.NewFactory()
	}

	s.board = store.Load(ctx, s.defaultBoard)
	s.board.Normalize()
	return s
}

// CurrentBoard returns a copy of the latest committed board
func (s *service) CurrentBoard() models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

// ApplyMove moves one task. Requests the engine cannot apply leave the board
// untouched and are neither saved nor published.
func (s *service) ApplyMove(ctx context.Context, req models.MoveRequest) models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, applied := engine.Apply(s.board, req)
	if !applied {
		s.metrics.IncMovesIgnored()
		s.logger.Debug("move ignored",
			"source_column_id", req.SourceColumnID,
			"source_index", req.SourceIndex,
			"destination_column_id", req.DestinationColumnID,
			"destination_index", req.DestinationIndex)
		return s.board.Clone()
	}

	// applied guarantees the source column and index exist
	source, _ := s.board.Column(req.SourceColumnID)
	taskID := source.Tasks[req.SourceIndex].ID

	s.commit(ctx, next)
	s.metrics.IncMovesApplied()
	s.publish(events.Event{
		Type:         events.EventTaskMoved,
		TaskID:       taskID,
		FromColumnID: req.SourceColumnID,
		ColumnID:     req.DestinationColumnID,
	})

	return next.Clone()
}

// AddTask appends t to the column. Unknown columns, empty ids and ids already
// on the board are no-ops.
func (s *service) AddTask(ctx context.Context, columnID string, t models.Task) models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addLocked(ctx, columnID, t)
	return s.board.Clone()
}

// CreateTask generates a task and appends it to the column. When the column
// does not exist the zero Task is returned with the unchanged board.
func (s *service) CreateTask(ctx context.Context, columnID, content string) (models.Task, models.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.board.ColumnIndex(columnID) < 0 {
		s.metrics.IncTasksRejected()
		s.logger.Debug("create ignored, unknown column", "column_id", columnID)
		return models.Task{}, s.board.Clone()
	}

	t := s.factory.Create(content)
	if !s.addLocked(ctx, columnID, t) {
		return models.Task{}, s.board.Clone()
	}
	s.logger.Debug("task created",
		"task_id", t.ID,
		"column_id", columnID,
		"issued", s.factory.Issued())
	return t, s.board.Clone()
}

// addLocked appends t and reports whether the board changed. Caller holds s.mu.
func (s *service) addLocked(ctx context.Context, columnID string, t models.Task) bool {
	if t.ID == "" || s.board.HasTask(t.ID) {
		s.metrics.IncTasksRejected()
		s.logger.Warn("task rejected, id empty or already on the board",
			"task_id", t.ID,
			"column_id", columnID)
		return false
	}

	next, ok := task.AppendTo(s.board, columnID, t)
	if !ok {
		s.metrics.IncTasksRejected()
		s.logger.Debug("task rejected, unknown column", "task_id", t.ID, "column_id", columnID)
		return false
	}

	s.commit(ctx, next)
	s.metrics.IncTasksCreated()
	s.publish(events.Event{
		Type:     events.EventTaskCreated,
		TaskID:   t.ID,
		ColumnID: columnID,
	})
	return true
}

// commit replaces the canonical board and persists it before returning.
// Caller holds s.mu, so no other mutation can observe the board mid-save.
func (s *service) commit(ctx context.Context, next models.Board) {
	s.board = next
	s.store.Save(ctx, next)
}

// publish sends an event if an event client exists. Errors are logged, not returned.
func (s *service) publish(ev events.Event) {
	if s.eventClient == nil {
		return
	}
	if err := s.eventClient.SendEvent(ev); err != nil {
		s.logger.Warn("failed to publish board event",
			"event_type", ev.Type,
			"task_id", ev.TaskID,
			"error", err)
	}
}
