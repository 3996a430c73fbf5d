package models

// MoveRequest describes a completed drag gesture: take the task at SourceIndex
// in the source column and place it at DestinationIndex in the destination
// column. An empty DestinationColumnID means the drag was cancelled or dropped
// outside any column.
type MoveRequest struct {
	SourceColumnID      string
	SourceIndex         int
	DestinationColumnID string
	DestinationIndex    int
}

// HasDestination reports whether the gesture ended over a column.
func (r MoveRequest) HasDestination() bool {
	return r.DestinationColumnID != ""
}

// SameColumn reports whether the move reorders within a single column.
func (r MoveRequest) SameColumn() bool {
	return r.SourceColumnID == r.DestinationColumnID
}
