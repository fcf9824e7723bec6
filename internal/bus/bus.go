package bus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

var (
	mu   sync.RWMutex
	_ctx = context.Background()
	subs = make(map[string][]func(ctx context.Context, event any))
)

func SetContext(ctx context.Context) {
	mu.Lock()
	_ctx = ctx
	mu.Unlock()
}

func topic[T any]() string {
	return fmt.Sprintf("%T", *new(T))
}

func Subscribe[T any](name string, fn func(ctx context.Context, event T) error) {
	mu.Lock()
	defer mu.Unlock()

	t := topic[T]()
	subs[t] = append(subs[t], func(ctx context.Context, event any) {
		if err := fn(ctx, event.(T)); err != nil {
			slog.Error("Failed to handle event", "package", "bus", "name", name, "topic", t, "error", err)
		}
	})
}

func Publish[T any](event T) {
	mu.RLock()
	ctx := _ctx
	fns := subs[topic[T]()]
	mu.RUnlock()

	for _, fn := range fns {
		fn(ctx, event)
	}
}

func NewHub[T any]() *Hub[T] {
	return &Hub[T]{
		subs: make(map[*chan T]struct{}),
	}
}

// Hub fans out events to every subscriber. Slow subscribers miss events
// instead of blocking the publisher.
type Hub[T any] struct {
	mu   sync.Mutex
	subs map[*chan T]struct{}
}

func (h *Hub[T]) Broadcast(ctx context.Context, event T) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case *sub <- event:
		default:
		}
	}

	return nil
}

// Register subscribes the hub to events published on the bus.
func (h *Hub[T]) Register() *Hub[T] {
	Subscribe("bus.Hub", h.Broadcast)
	return h
}

func (h *Hub[T]) Subscribe(ctx context.Context) (<-chan T, func()) {
	h.mu.Lock()
	c := make(chan T, 16)

	key := &c
	h.subs[key] = struct{}{}
	h.mu.Unlock()

	return c, func() {
		h.mu.Lock()
		delete(h.subs, key)
		h.mu.Unlock()
	}
}
