package models

// Column represents a kanban board column (e.g., "To Do", "In Progress", "Done")
// The order of Tasks is the rank of each task within the column.
type Column struct {
	ID    string `json:"id" yaml:"id"`       // Unique among the columns of a board
	Title string `json:"title" yaml:"title"` // Display only
	Tasks []Task `json:"tasks" yaml:"tasks"`
}

// TaskIndex returns the position of the task with the given id, or -1.
func (c Column) TaskIndex(taskID string) int {
	for i, t := range c.Tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}

// clone copies the column with its own task slice
func (c Column) clone() Column {
	tasks := make([]Task, len(c.Tasks))
	copy(tasks, c.Tasks)
	c.Tasks = tasks
	return c
}
