// Package redisstore keeps the board snapshot in redis.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/thenoetrevino/kanban/internal/persistence"
)

// Options configures the redis connection
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Store is a persistence.SlotStore backed by plain redis string keys
type Store struct {
	client *redis.Client
}

// Compile-time verification that *Store implements persistence.SlotStore
var _ persistence.SlotStore = (*Store)(nil)

// New wraps an existing client
func New(client *redis.Client) *Store {
	if client == nil {
		panic("redisstore.New: client is nil")
	}
	return &Store{client: client}
}

// Dial connects to redis and verifies the connection with a PING.
func Dial(ctx context.Context, opts Options) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}
	return New(client), nil
}

// GetSlot returns the value stored under key, or persistence.ErrSlotNotFound.
func (s *Store) GetSlot(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, persistence.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %q: %w", key, err)
	}
	return data, nil
}

// PutSlot replaces the value under key with a single SET; the key never expires.
func (s *Store) PutSlot(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write slot %q: %w", key, err)
	}
	return nil
}

// Close closes the redis client
func (s *Store) Close() error {
	return s.client.Close()
}
