//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"chat-direct/domain/event"
)

// EventSink is the write side of one live connection.
// Consume must never block on I/O: implementations buffer and let a
// dedicated pump goroutine own the actual socket writes.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IRegistry maps an identity to its single live connection handle.
type IRegistry interface {
	// Register replaces any existing mapping and returns the superseded
	// sink, if any, so the caller can close it.
	Register(userID string, sink EventSink) EventSink
	// Unregister removes the mapping only if sink is the currently stored
	// handle. It reports whether a removal happened; a stale unregister
	// from a superseded connection is a no-op.
	Unregister(userID string, sink EventSink) bool
	// Lookup resolves a live connection. Constant time, never blocks on I/O.
	Lookup(userID string) (EventSink, bool)
	// Others snapshots every registered sink except the one of userID.
	Others(userID string) []EventSink
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
