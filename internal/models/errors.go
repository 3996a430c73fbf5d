package models

import "errors"

// Board validation errors, used to reject corrupted snapshots and configs
var (
	// ErrEmptyID indicates a column or task without an identifier
	ErrEmptyID = errors.New("column and task ids cannot be empty")

	// ErrDuplicateColumn indicates two columns sharing an id
	ErrDuplicateColumn = errors.New("duplicate column id")

	// ErrDuplicateTask indicates a task id present more than once on the board
	ErrDuplicateTask = errors.New("duplicate task id")
)
