//go:generate go run go.uber.org/mock/mockgen -source=presence_service.go -destination=../mocks/mock_presence_service.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"time"

	"chat-direct/contract"
	"chat-direct/domain"
	"chat-direct/domain/event"
	"chat-direct/observability"
)

type IPresenceService interface {
	// Connect registers the sink as the live connection of userID and
	// announces the transition. The superseded sink, if any, is returned
	// so the transport can close the underlying socket.
	Connect(ctx context.Context, userID string, sink contract.EventSink) contract.EventSink
	// Disconnect tears the mapping down only if sink is still the current
	// handle; a stale disconnect from a superseded connection is a no-op.
	Disconnect(ctx context.Context, userID string, sink contract.EventSink)
}

// PresenceService broadcasts online/offline transitions and queues the
// durable presence writes. Broadcasts are fire-and-forget: clients
// reconcile true state through the roster endpoint, presence events are
// only a latency optimization.
type PresenceService struct {
	log      *slog.Logger
	registry contract.IRegistry
	updates  chan<- domain.PresenceUpdate
	stats    *observability.DeliveryStats
	timeout  time.Duration
}

func NewPresenceService(log *slog.Logger, registry contract.IRegistry,
	updates chan<- domain.PresenceUpdate, stats *observability.DeliveryStats,
	timeout time.Duration) *PresenceService {
	return &PresenceService{
		log:      log,
		registry: registry,
		updates:  updates,
		stats:    stats,
		timeout:  timeout,
	}
}

func (s *PresenceService) Connect(ctx context.Context, userID string, sink contract.EventSink) contract.EventSink {
	prev := s.registry.Register(userID, sink)
	if prev == nil {
		s.stats.ConnectionOpened()
	}

	s.broadcast(ctx, userID, event.UserOnline{UserID: userID})
	s.enqueue(domain.PresenceUpdate{UserID: userID, Online: true, LastSeen: time.Now().UTC()})
	return prev
}

func (s *PresenceService) Disconnect(ctx context.Context, userID string, sink contract.EventSink) {
	if !s.registry.Unregister(userID, sink) {
		// Superseded by a faster reconnect; the newer session owns presence now.
		s.log.Debug("Ignoring stale disconnect", "user_id", userID)
		return
	}
	s.stats.ConnectionClosed()

	lastSeen := time.Now().UTC()
	s.broadcast(ctx, userID, event.UserOffline{UserID: userID, LastSeen: lastSeen})
	s.enqueue(domain.PresenceUpdate{UserID: userID, Online: false, LastSeen: lastSeen})
}

// broadcast pushes the event to every live connection except the origin.
// No acknowledgment, no retry, no cross-identity ordering guarantee.
func (s *PresenceService) broadcast(ctx context.Context, originID string, e event.DomainEvent) {
	pushCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	for _, sink := range s.registry.Others(originID) {
		if err := sink.Consume(pushCtx, e); err != nil {
			s.log.Debug("Presence broadcast dropped", "event", e.EventName(), "error", err)
		}
	}
}

func (s *PresenceService) enqueue(update domain.PresenceUpdate) {
	select {
	case s.updates <- update:
	default:
		s.log.Warn("Presence update queue full, dropping durable write",
			"user_id", update.UserID, "online", update.Online)
	}
}
