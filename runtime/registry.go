// Package runtime holds the process-local connection state: the registry
// of live connections and the typing watchdog. No business logic or
// persistence lives here.
package runtime

import (
	"sync"

	"chat-direct/contract"
)

// Registry is the single source of truth for "is this user reachable now".
// At most one sink per identity: registering again silently supersedes the
// previous handle.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]contract.EventSink
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]contract.EventSink)}
}

// Register stores the sink for userID, replacing any existing mapping.
// The superseded sink is returned so the caller can close it.
func (r *Registry) Register(userID string, sink contract.EventSink) contract.EventSink {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.sessions[userID]
	r.sessions[userID] = sink
	return prev
}

// Unregister removes the mapping only when sink is the handle currently
// stored for userID. A disconnect racing a fast reconnect would otherwise
// erase the newer mapping, so the identity check is mandatory.
func (r *Registry) Unregister(userID string, sink contract.EventSink) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.sessions[userID]
	if !ok || current != sink {
		return false
	}
	delete(r.sessions, userID)
	return true
}

// Lookup resolves the live connection of userID, if any.
func (r *Registry) Lookup(userID string) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sink, ok := r.sessions[userID]
	return sink, ok
}

// Others snapshots every registered sink except the one of userID.
// Presence broadcasts iterate the snapshot outside the lock.
func (r *Registry) Others(userID string) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sinks := make([]contract.EventSink, 0, len(r.sessions))
	for id, sink := range r.sessions {
		if id == userID {
			continue
		}
		sinks = append(sinks, sink)
	}
	return sinks
}

// Size returns the number of live connections.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
