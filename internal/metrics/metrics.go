// Package metrics counts board activity using atomic operations
package metrics

import (
	"sync/atomic"
	"time"
)

// Metrics tracks board statistics using atomic operations for thread-safety
type Metrics struct {
	MovesApplied  atomic.Int64
	MovesIgnored  atomic.Int64
	TasksCreated  atomic.Int64
	TasksRejected atomic.Int64
	Saves         atomic.Int64
	SaveFailures  atomic.Int64
	LoadFallbacks atomic.Int64
	StartTime     time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncMovesApplied increments the applied moves counter
func (m *Metrics) IncMovesApplied() {
	m.MovesApplied.Add(1)
}

// IncMovesIgnored increments the counter of moves that resolved to a no-op
func (m *Metrics) IncMovesIgnored() {
	m.MovesIgnored.Add(1)
}

// IncTasksCreated increments the created tasks counter
func (m *Metrics) IncTasksCreated() {
	m.TasksCreated.Add(1)
}

// IncTasksRejected increments the counter of task additions that were no-ops
func (m *Metrics) IncTasksRejected() {
	m.TasksRejected.Add(1)
}

// IncSaves increments the successful saves counter
func (m *Metrics) IncSaves() {
	m.Saves.Add(1)
}

// IncSaveFailures increments the failed saves counter
func (m *Metrics) IncSaveFailures() {
	m.SaveFailures.Add(1)
}

// IncLoadFallbacks increments the counter of loads that used the default board
func (m *Metrics) IncLoadFallbacks() {
	m.LoadFallbacks.Add(1)
}

// Snapshot represents a point-in-time snapshot of metrics
type Snapshot struct {
	MovesApplied  int64     `json:"moves_applied"`
	MovesIgnored  int64     `json:"moves_ignored"`
	TasksCreated  int64     `json:"tasks_created"`
	TasksRejected int64     `json:"tasks_rejected"`
	Saves         int64     `json:"saves"`
	SaveFailures  int64     `json:"save_failures"`
	LoadFallbacks int64     `json:"load_fallbacks"`
	StartTime     time.Time `json:"start_time"`
	Uptime        string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() Snapshot {
	return Snapshot{
		MovesApplied:  m.MovesApplied.Load(),
		MovesIgnored:  m.MovesIgnored.Load(),
		TasksCreated:  m.TasksCreated.Load(),
		TasksRejected: m.TasksRejected.Load(),
		Saves:         m.Saves.Load(),
		SaveFailures:  m.SaveFailures.Load(),
		LoadFallbacks: m.LoadFallbacks.Load(),
		StartTime:     m.StartTime,
		Uptime:        time.Since(m.StartTime).String(),
	}
}
