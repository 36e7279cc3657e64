//go:generate go run go.uber.org/mock/mockgen -source=typing_service.go -destination=../mocks/mock_typing_service.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"time"

	"chat-direct/contract"
	"chat-direct/domain/event"
	"chat-direct/runtime"
)

type ITypingService interface {
	// Signal forwards a typing indicator to one specific receiver.
	// No persistence, no acknowledgment; an offline receiver is a no-op.
	Signal(ctx context.Context, senderID, receiverID string, isTyping bool)
	// Shutdown disarms every pending expiry timer.
	Shutdown()
}

// TypingService routes ephemeral typing indicators through the registry.
// A watchdog synthesizes the stop signal when a client's own stop is lost,
// so a receiver's indicator can always clear itself.
type TypingService struct {
	log      *slog.Logger
	registry contract.IRegistry
	watchdog *runtime.TypingWatchdog
	timeout  time.Duration
}

func NewTypingService(log *slog.Logger, registry contract.IRegistry,
	ttl, timeout time.Duration) *TypingService {
	s := &TypingService{log: log, registry: registry, timeout: timeout}
	s.watchdog = runtime.NewTypingWatchdog(ttl, s.expire)
	return s
}

func (s *TypingService) Signal(ctx context.Context, senderID, receiverID string, isTyping bool) {
	if isTyping {
		s.watchdog.Touch(senderID, receiverID)
	} else {
		s.watchdog.Clear(senderID, receiverID)
	}
	s.forward(ctx, senderID, receiverID, isTyping)
}

func (s *TypingService) Shutdown() {
	s.watchdog.Stop()
}

// expire runs on the watchdog timer goroutine when a stop never arrived.
func (s *TypingService) expire(senderID, receiverID string) {
	s.log.Debug("Typing indicator expired", "sender_id", senderID, "receiver_id", receiverID)
	s.forward(context.Background(), senderID, receiverID, false)
}

func (s *TypingService) forward(ctx context.Context, senderID, receiverID string, isTyping bool) {
	sink, ok := s.registry.Lookup(receiverID)
	if !ok {
		return
	}

	pushCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := sink.Consume(pushCtx, event.UserTyping{UserID: senderID, IsTyping: isTyping}); err != nil {
		s.log.Debug("Typing forward dropped", "receiver_id", receiverID, "error", err)
	}
}
