// Package events carries an in-process event bus used to decouple payment
// confirmation from booking bookkeeping. Handlers run asynchronously by
// default; PublishSync exists for callers that need the side effects before
// responding.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

type Event interface {
	EventType() string
	EventID() string
	OccurredAt() time.Time
}

type BaseEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) EventID() string {
	return e.ID
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

type Handler func(ctx context.Context, event Event) error

type Bus struct {
	handlers map[string][]Handler
	logger   *slog.Logger
	mu       sync.RWMutex
}

func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

func (b *Bus) Subscribe(eventType string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.logger.Info("event handler registered",
		slog.String("event_type", eventType),
		slog.Int("total_handlers", len(b.handlers[eventType])))
}

// Publish dispatches the event to every subscribed handler in its own
// goroutine. Handler errors are logged, never returned to the publisher.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := b.handlers[event.EventType()]
	b.mu.RUnlock()

	if len(handlers) == 0 {
		b.logger.Debug("no handlers for event type", slog.String("event_type", event.EventType()))
		return
	}

	for _, handler := range handlers {
		go func(h Handler) {
			if err := h(ctx, event); err != nil {
				b.logger.Error("event handler failed",
					slog.String("event_type", event.EventType()),
					slog.String("event_id", event.EventID()),
					slog.String("error", err.Error()))
			}
		}(handler)
	}
}

// PublishSync runs handlers inline and stops at the first failure.
func (b *Bus) PublishSync(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.EventType()]
	b.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			b.logger.Error("event handler failed",
				slog.String("event_type", event.EventType()),
				slog.String("event_id", event.EventID()),
				slog.String("error", err.Error()))
			return fmt.Errorf("handler failed for event %s: %w", event.EventType(), err)
		}
	}
	return nil
}
