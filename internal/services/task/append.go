package task

import "github.com/thenoetrevino/kanban/internal/models"

// AppendTo returns a board with t added at the end of the given column.
// An unknown column leaves the board unchanged and reports false.
// The input board is not modified.
func AppendTo(b models.Board, columnID string, t models.Task) (models.Board, bool) {
	i := b.ColumnIndex(columnID)
	if i < 0 {
		return b, false
	}

	col := b[i]
	tasks := make([]models.Task, 0, len(col.Tasks)+1)
	tasks = append(tasks, col.Tasks...)
	col.Tasks = append(tasks, t)

	next := make(models.Board, len(b))
	copy(next, b)
	next[i] = col
	return next, true
}
