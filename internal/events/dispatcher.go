package events

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Handler processes the raw payload of an inbound event.
type Handler func(ctx context.Context, data json.RawMessage) error

// Dispatcher routes inbound envelopes to registered handlers by event
// name. A failing or panicking handler is isolated: it is logged and the
// remaining handlers still run. No retry, ordering, or dead-lettering.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[EventName][]Handler
	logger   *zap.Logger
}

// NewDispatcher creates a dispatcher instance.
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[EventName][]Handler),
		logger:   logger,
	}
}

// Subscribe registers a handler for the given event name.
func (d *Dispatcher) Subscribe(name EventName, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = append(d.handlers[name], handler)
}

// Dispatch invokes the handlers registered for the envelope's event name.
// Unknown event names are dropped silently.
func (d *Dispatcher) Dispatch(ctx context.Context, envelope Envelope) {
	d.mu.RLock()
	handlers := append([]Handler{}, d.handlers[envelope.Pattern]...)
	d.mu.RUnlock()

	for _, handler := range handlers {
		d.invoke(ctx, envelope, handler)
	}
}

func (d *Dispatcher) invoke(ctx context.Context, envelope Envelope, handler Handler) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("event handler panicked",
				zap.String("event", string(envelope.Pattern)),
				zap.Any("panic", r))
		}
	}()
	if err := handler(ctx, envelope.Data); err != nil {
		d.logger.Warn("event handler failed",
			zap.String("event", string(envelope.Pattern)),
			zap.Error(err))
	}
}
