package persistence

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/thenoetrevino/kanban/internal/models"
)

// ErrMalformedSnapshot wraps every reason a stored snapshot is rejected
var ErrMalformedSnapshot = errors.New("malformed board snapshot")

// Encode serializes the board as a JSON array of columns.
func Encode(b models.Board) ([]byte, error) {
	out := b.Clone()
	if out == nil {
		out = models.Board{}
	}
	out.Normalize()

	data, err := sonic.ConfigStd.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode board: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot produced by Encode. The document is checked
// against the board schema and the board invariants before it is accepted.
func Decode(data []byte) (models.Board, error) {
	var doc interface{}
	if err := sonic.ConfigStd.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if err := compiledBoardSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	var b models.Board
	if err := sonic.ConfigStd.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}

	b.Normalize()
	return b, nil
}
