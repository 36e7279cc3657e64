package ws

import (
	"context"
	"log/slog"
	"sync"

	"chat-direct/domain/event"
	apperrors "chat-direct/errors"
)

// Sink buffers outbound events for one connection. Consume never blocks
// on the socket: the write pump drains the channel and owns all writes.
type Sink struct {
	events    chan event.DomainEvent
	done      chan struct{}
	closeOnce sync.Once
	log       *slog.Logger
}

func NewSink(log *slog.Logger, bufferSize int) *Sink {
	return &Sink{
		events: make(chan event.DomainEvent, bufferSize),
		done:   make(chan struct{}),
		log:    log,
	}
}

// Consume hands the event to the connection's write pump. When the buffer
// is full the event is dropped with ErrSinkFull: live pushes are
// best-effort and the durable state is reconciled through history fetches.
func (s *Sink) Consume(ctx context.Context, e event.DomainEvent) error {
	// A dead sink must reject even when the buffer has room; a combined
	// select would pick the buffered send half the time.
	select {
	case <-s.done:
		return context.Canceled
	default:
	}

	select {
	case <-s.done:
		return context.Canceled
	case <-ctx.Done():
		return ctx.Err()
	case s.events <- e:
		return nil
	default:
		s.log.Debug("Connection buffer full, dropping event", "event", e.EventName())
		return apperrors.ErrSinkFull
	}
}

// Close marks the sink dead. The events channel is never closed so late
// producers cannot panic; their events are simply never drained.
func (s *Sink) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Events is drained exclusively by the session's write pump.
func (s *Sink) Events() <-chan event.DomainEvent {
	return s.events
}

// Done is closed when the sink has been superseded or shut down.
func (s *Sink) Done() <-chan struct{} {
	return s.done
}
