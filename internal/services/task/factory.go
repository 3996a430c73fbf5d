// Package task creates tasks and places them on a board.
package task

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/thenoetrevino/kanban/internal/models"
)

// IDPrefix is prepended to every generated task id
const IDPrefix = "task-"

// Factory issues new tasks. Ids are unique for the lifetime of the process;
// the exact format is not part of the contract.
type Factory struct {
	newID func() string
	seq   atomic.Int64
}

// FactoryOption is a functional option for configuring a Factory
type FactoryOption func(*Factory)

// WithIDGenerator replaces the uuid based id generator.
// The generator must never return the same id twice.
func WithIDGenerator(fn func() string) FactoryOption {
	return func(f *Factory) {
		if fn != nil {
			f.newID = fn
		}
	}
}

// NewFactory creates a new task factory
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		newID: func() string { return IDPrefix + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create returns a new task with a fresh id. An empty content gets a
// numbered placeholder.
func (f *Factory) Create(content string) models.Task {
	n := f.seq.Add(1)
	if content == "" {
		content = fmt.Sprintf("New Task %d", n)
	}
	return models.Task{
		ID:      f.newID(),
		Content: content,
	}
}

// Issued returns how many tasks the factory has created
func (f *Factory) Issued() int64 {
	return f.seq.Load()
}
