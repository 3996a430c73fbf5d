// Package persistence loads and saves the board snapshot in a single slot of
// a durable key-value store.
package persistence

import (
	"context"
	"errors"
)

// DefaultSlot is the key holding the board snapshot
const DefaultSlot = "kanbanData"

// ErrSlotNotFound is returned by a SlotStore when the key has never been written
var ErrSlotNotFound = errors.New("slot not found")

// SlotStore is a durable key-value store. PutSlot must replace the value
// atomically: a concurrent GetSlot sees either the old or the new value.
type SlotStore interface {
	GetSlot(ctx context.Context, key string) ([]byte, error)
	PutSlot(ctx context.Context, key string, value []byte) error
}
