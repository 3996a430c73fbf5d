package models

import "fmt"

// Board is the ordered collection of columns. Column order is fixed for the
// lifetime of a board; only task membership and order change.
//
// A Board handed out by the board service is a snapshot and must not be
// mutated in place.
type Board []Column

// ColumnIndex returns the position of the column with the given id, or -1.
func (b Board) ColumnIndex(columnID string) int {
	for i, c := range b {
		if c.ID == columnID {
			return i
		}
	}
	return -1
}

// Column returns the column with the given id.
func (b Board) Column(columnID string) (Column, bool) {
	i := b.ColumnIndex(columnID)
	if i < 0 {
		return Column{}, false
	}
	return b[i], true
}

// TaskIDs returns every task id in board order (column by column, top to bottom)
func (b Board) TaskIDs() []string {
	ids := make([]string, 0, b.TaskCount())
	for _, c := range b {
		for _, t := range c.Tasks {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// TaskCount returns the number of tasks across all columns
func (b Board) TaskCount() int {
	n := 0
	for _, c := range b {
		n += len(c.Tasks)
	}
	return n
}

// HasTask reports whether any column holds a task with the given id.
func (b Board) HasTask(taskID string) bool {
	for _, c := range b {
		if c.TaskIndex(taskID) >= 0 {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	if b == nil {
		return nil
	}
	out := make(Board, len(b))
	for i, c := range b {
		out[i] = c.clone()
	}
	return out
}

// Normalize replaces nil task slices with empty ones so that empty columns
// serialize as [] rather than null.
func (b Board) Normalize() {
	for i := range b {
		if b[i].Tasks == nil {
			b[i].Tasks = []Task{}
		}
	}
}

// Equal compares two boards by value. Nil and empty task slices are equal.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if b[i].ID != other[i].ID || b[i].Title != other[i].Title {
			return false
		}
		if len(b[i].Tasks) != len(other[i].Tasks) {
			return false
		}
		for j := range b[i].Tasks {
			if b[i].Tasks[j] != other[i].Tasks[j] {
				return false
			}
		}
	}
	return true
}

// Validate checks the structural invariants of a board: non-empty ids,
// unique column ids, and every task id appearing exactly once.
func (b Board) Validate() error {
	columns := make(map[string]struct{}, len(b))
	tasks := make(map[string]string, b.TaskCount())

	for _, c := range b {
		if c.ID == "" {
			return ErrEmptyID
		}
		if _, ok := columns[c.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateColumn, c.ID)
		}
		columns[c.ID] = struct{}{}

		for _, t := range c.Tasks {
			if t.ID == "" {
				return fmt.Errorf("%w: task in column %q", ErrEmptyID, c.ID)
			}
			if prev, ok := tasks[t.ID]; ok {
				return fmt.Errorf("%w: %q in columns %q and %q", ErrDuplicateTask, t.ID, prev, c.ID)
			}
			tasks[t.ID] = c.ID
		}
	}
	return nil
}
