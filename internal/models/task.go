package models

// Task represents a single work item on the board.
// ID is globally unique and never changes once the task is created.
type Task struct {
	ID      string `json:"id" yaml:"id"`
	Content string `json:"content" yaml:"content"`
}
