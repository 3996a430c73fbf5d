// Package kanban is a persisted kanban board: columns of tasks that can be
// reordered and moved between columns, with every change saved to a
// sqlite or redis slot and announced to subscribers.
//
// Typical use:
//
//	cfg, err := kanban.LoadConfig()
//	if err != nil {
//		return err
//	}
//	board, err := kanban.Open(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer board.Close()
//
//	board.Board.ApplyMove(ctx, kanban.MoveRequest{
//		SourceColumnID:      "todo",
//		SourceIndex:         0,
//		DestinationColumnID: "done",
//		DestinationIndex:    0,
//	})
package kanban

import (
	"context"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/launcher"
	"github.com/thenoetrevino/kanban/internal/models"
)

type (
	Board       = models.Board
	Column      = models.Column
	Task        = models.Task
	MoveRequest = models.MoveRequest
	Event       = events.Event
	Config      = config.Config
	App         = app.App
	Option      = app.Option
	RunFunc     = launcher.RunFunc
)

// Options for Open
var (
	WithLogger         = app.WithLogger
	WithEventPublisher = app.WithEventPublisher
	WithIDGenerator    = app.WithIDGenerator
)

// Open loads the board from the configured storage backend. A nil cfg uses
// the defaults (sqlite under ~/.kanban).
func Open(ctx context.Context, cfg *Config, opts ...Option) (*App, error) {
	return app.New(ctx, cfg, opts...)
}

// Run loads the user's config, starts file logging and hands the opened board
// to run, closing it afterwards. Interrupts cancel the context passed to run.
func Run(run RunFunc) error {
	return launcher.Launch(run)
}

// LoadConfig reads the user's config file, falling back to defaults
func LoadConfig() (*Config, error) {
	return config.Load()
}

// DefaultBoard returns the board used when nothing has been persisted yet
func DefaultBoard() Board {
	return models.DefaultBoard()
}
