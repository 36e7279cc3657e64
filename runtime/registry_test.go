package runtime

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"chat-direct/domain/event"
)

type stubSink struct {
	name string
}

func (s *stubSink) Consume(ctx context.Context, e event.DomainEvent) error {
	return nil
}

func TestRegistry_Register_And_Lookup(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	userID := uuid.NewString()
	sink := &stubSink{name: "first"}

	// Given no user is connected
	req.Zero(registry.Size())
	_, ok := registry.Lookup(userID)
	req.False(ok)

	// When a user connects
	prev := registry.Register(userID, sink)

	// Then there was nothing to supersede
	req.Nil(prev)

	// And the user is reachable
	found, ok := registry.Lookup(userID)
	req.True(ok)
	req.Same(sink, found)
	req.Equal(1, registry.Size())
}

func TestRegistry_Register_Supersedes_Previous_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	userID := uuid.NewString()
	first := &stubSink{name: "first"}
	second := &stubSink{name: "second"}

	// Given a connected user
	registry.Register(userID, first)

	// When the same user connects again
	prev := registry.Register(userID, second)

	// Then the old handle is handed back for closing
	req.Same(first, prev)

	// And only the new handle is reachable
	found, ok := registry.Lookup(userID)
	req.True(ok)
	req.Same(second, found)
	req.Equal(1, registry.Size())
}

func TestRegistry_Unregister_Stale_Handle_Is_NoOp(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	userID := uuid.NewString()
	old := &stubSink{name: "old"}
	fresh := &stubSink{name: "fresh"}

	// Given a user who reconnected before the old connection cleaned up
	registry.Register(userID, old)
	registry.Register(userID, fresh)

	// When the old connection unregisters late
	removed := registry.Unregister(userID, old)

	// Then nothing happened
	req.False(removed)

	// And the fresh connection is still reachable
	found, ok := registry.Lookup(userID)
	req.True(ok)
	req.Same(fresh, found)
}

func TestRegistry_Unregister_Current_Handle(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	userID := uuid.NewString()
	sink := &stubSink{}

	// Given a connected user
	registry.Register(userID, sink)

	// When it disconnects
	removed := registry.Unregister(userID, sink)

	// Then the mapping is gone
	req.True(removed)
	_, ok := registry.Lookup(userID)
	req.False(ok)
	req.Zero(registry.Size())
}

func TestRegistry_Others_Excludes_Self(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	alice := uuid.NewString()
	bob := uuid.NewString()
	carol := uuid.NewString()
	aliceSink := &stubSink{name: "alice"}
	bobSink := &stubSink{name: "bob"}
	carolSink := &stubSink{name: "carol"}

	// Given three connected users
	registry.Register(alice, aliceSink)
	registry.Register(bob, bobSink)
	registry.Register(carol, carolSink)

	// When alice asks for the others
	others := registry.Others(alice)

	// Then she is not in the snapshot
	req.Len(others, 2)
	req.NotContains(others, aliceSink)
	req.Contains(others, bobSink)
	req.Contains(others, carolSink)
}
