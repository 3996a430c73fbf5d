package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventTaskMoved   EventType = "task_moved"
	EventTaskCreated EventType = "task_created"
)

// Event describes a committed board change
type Event struct {
	Type         EventType `json:"type"`
	TaskID       string    `json:"task_id"`
	FromColumnID string    `json:"from_column_id,omitempty"` // Only set for moves
	ColumnID     string    `json:"column_id"`                // Column the task ended up in
	Timestamp    time.Time `json:"timestamp"`
	SequenceID   int64     `json:"sequence_id"` // Monotonically increasing sequence number for ordering
}
