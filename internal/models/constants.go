package models

// ============================================================================
// DEFAULT BOARD
// ============================================================================

// Default column ids
const (
	ColumnTodo       = "todo"
	ColumnInProgress = "in-progress"
	ColumnDone       = "done"
)

// DefaultBoard returns the board used when nothing has been persisted yet.
// Every call returns a fresh copy.
func DefaultBoard() Board {
	return Board{
		{
			ID:    ColumnTodo,
			Title: "To Do",
			Tasks: []Task{
				{ID: "task-1", Content: "Task 1"},
				{ID: "task-2", Content: "Task 2"},
			},
		},
		{
			ID:    ColumnInProgress,
			Title: "In Progress",
			Tasks: []Task{{ID: "task-3", Content: "Task 3"}},
		},
		{
			ID:    ColumnDone,
			Title: "Done",
			Tasks: []Task{{ID: "task-4", Content: "Task 4"}},
		},
	}
}
