package event

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Event represents a notification broadcast to subscribers
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus.
// Handlers run synchronously in subscription order. A handler that fails or
// panics is logged and skipped; the remaining handlers still run.
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	var errs []error
	for i, handler := range handlers {
		if err := invoke(ctx, handler, event); err != nil {
			logger.FromContext(ctx).Warn(LogMsgHandlerFailed, "type", event.Type, "handler", i, "error", err)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errors.Join(errs...))
	}

	return nil
}

// invoke runs one handler, converting a panic into an error.
func invoke(ctx context.Context, handler Handler, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", LogMsgHandlerPanicked, r)
		}
	}()
	return handler(ctx, event)
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// On subscribes a handler that receives the payload already decoded as T.
// A payload that cannot be decoded into T is reported as domain.ErrPayloadType.
func On[T any](bus Bus, eventType Type, fn func(ctx context.Context, payload T) error) {
	bus.Subscribe(eventType, func(ctx context.Context, evt Event) error {
		payload, err := DecodePayload[T](evt.Payload)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrPayloadType, evt.Type, err)
		}
		return fn(ctx, payload)
	})
}

// Emit publishes and only logs handler failures. Mutations that already
// happened are never rolled back because a listener failed.
func Emit(ctx context.Context, bus Bus, evt Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Debug(LogMsgEmitHadErrors, "type", evt.Type, "error", err)
	}
}
