package events

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultBuffer is the per-listener channel capacity
const DefaultBuffer = 16

// Bus is an in-process EventPublisher. Delivery never blocks the sender:
// a listener whose buffer is full misses the event.
type Bus struct {
	mu        sync.Mutex
	listeners map[int]chan Event
	nextID    int
	sequence  int64
	buffer    int
	closed    bool
	done      chan struct{}
	logger    *slog.Logger
}

// BusOption is a functional option for configuring a Bus
type BusOption func(*Bus)

// WithBuffer sets the per-listener channel capacity
func WithBuffer(n int) BusOption {
	return func(b *Bus) {
		if n >= 0 {
			b.buffer = n
		}
	}
}

// WithLogger sets the logger for the bus
func WithLogger(logger *slog.Logger) BusOption {
	return func(b *Bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBus creates an empty bus
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{
		listeners: make(map[int]chan Event),
		done:      make(chan struct{}),
		buffer:    DefaultBuffer,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SendEvent stamps the event with the next sequence id (and a timestamp if
// missing) and fans it out to every listener.
func (b *Bus) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrPublisherClosed
	}

	b.sequence++
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for id, ch := range b.listeners {
		select {
		case ch <- event:
		default:
			b.logger.Debug("listener buffer full, dropping event",
				"listener", id,
				"event_type", event.Type,
				"sequence_id", event.SequenceID)
		}
	}
	return nil
}

// Listen registers a listener. The returned channel is closed when ctx is
// done or the bus is closed, whichever comes first.
func (b *Bus) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrPublisherClosed
	}
	id := b.nextID
	b.nextID++
	ch := make(chan Event, b.buffer)
	b.listeners[id] = ch
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			b.remove(id)
		case <-b.done:
		}
	}()

	return ch, nil
}

// Listeners returns the number of registered listeners
func (b *Bus) Listeners() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

// Close closes every listener channel. Calling Close twice is a no-op.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	close(b.done)

	for id, ch := range b.listeners {
		close(ch)
		delete(b.listeners, id)
	}
	return nil
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.listeners[id]; ok {
		close(ch)
		delete(b.listeners, id)
	}
}
