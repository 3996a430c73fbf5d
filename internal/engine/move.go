package engine

import "github.com/thenoetrevino/kanban/internal/models"

// Move returns the board that results from applying req to b.
// Requests that cannot be applied return b unchanged.
func Move(b models.Board, req models.MoveRequest) models.Board {
	next, _ := Apply(b, req)
	return next
}

// Apply moves one task and reports whether the request was applied.
//
// A request is a no-op when either column id is unknown (this covers a
// cancelled drag, which carries no destination) or when SourceIndex does not
// address a task. DestinationIndex is clamped into range. For moves within a
// column it is measured against the sequence with the task already removed.
func Apply(b models.Board, req models.MoveRequest) (models.Board, bool) {
	if !req.HasDestination() {
		return b, false
	}

	srcCol := b.ColumnIndex(req.SourceColumnID)
	dstCol := b.ColumnIndex(req.DestinationColumnID)
	if srcCol < 0 || dstCol < 0 {
		return b, false
	}

	source := b[srcCol]
	if req.SourceIndex < 0 || req.SourceIndex >= len(source.Tasks) {
		return b, false
	}

	task := source.Tasks[req.SourceIndex]
	sourceTasks := remove(source.Tasks, req.SourceIndex)

	next := make(models.Board, len(b))
	copy(next, b)

	if req.SameColumn() {
		source.Tasks = insert(sourceTasks, req.DestinationIndex, task)
		next[srcCol] = source
		return next, true
	}

	dest := b[dstCol]
	dest.Tasks = insert(dest.Tasks, req.DestinationIndex, task)
	source.Tasks = sourceTasks

	next[srcCol] = source
	next[dstCol] = dest
	return next, true
}

// remove returns a new slice without the element at i
func remove(tasks []models.Task, i int) []models.Task {
	out := make([]models.Task, 0, len(tasks)-1)
	out = append(out, tasks[:i]...)
	return append(out, tasks[i+1:]...)
}

// insert returns a new slice with t at position i, clamped to [0, len(tasks)]
func insert(tasks []models.Task, i int, t models.Task) []models.Task {
	i = clamp(i, 0, len(tasks))

	out := make([]models.Task, 0, len(tasks)+1)
	out = append(out, tasks[:i]...)
	out = append(out, t)
	return append(out, tasks[i:]...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
