//go:generate go run go.uber.org/mock/mockgen -source=receipt_service.go -destination=../mocks/mock_receipt_service.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"time"

	"chat-direct/contract"
	"chat-direct/domain/event"
	"chat-direct/observability"
	"chat-direct/repositories"
)

type IReceiptService interface {
	// MarkRead bulk-promotes every unread message from senderID to
	// readerID and returns the number of records affected.
	MarkRead(ctx context.Context, readerID, senderID string) (int, error)
}

// ReceiptService owns the read side of the message lifecycle. The bulk
// transition is one set operation: there is no granularity below "entire
// unread backlog from this sender".
type ReceiptService struct {
	log      *slog.Logger
	messages repositories.IMessageRepository
	registry contract.IRegistry
	stats    *observability.DeliveryStats
	timeout  time.Duration
}

func NewReceiptService(log *slog.Logger, messages repositories.IMessageRepository,
	registry contract.IRegistry, stats *observability.DeliveryStats,
	timeout time.Duration) *ReceiptService {
	return &ReceiptService{
		log:      log,
		messages: messages,
		registry: registry,
		stats:    stats,
		timeout:  timeout,
	}
}

func (s *ReceiptService) MarkRead(ctx context.Context, readerID, senderID string) (int, error) {
	affected, err := s.messages.MarkConversationRead(senderID, readerID)
	if err != nil {
		return 0, err
	}
	s.stats.MessagesRead(affected)

	// An offline sender is expected, not exceptional: the transition is
	// durable either way and observed lazily on the next fetch.
	sink, ok := s.registry.Lookup(senderID)
	if !ok {
		return affected, nil
	}

	pushCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := sink.Consume(pushCtx, event.MessagesRead{ReaderID: readerID, SenderID: senderID}); err != nil {
		s.log.Debug("Read receipt notification dropped",
			"sender_id", senderID, "reader_id", readerID, "error", err)
	}
	return affected, nil
}
