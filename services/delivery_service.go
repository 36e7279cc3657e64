//go:generate go run go.uber.org/mock/mockgen -source=delivery_service.go -destination=../mocks/mock_delivery_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"

	"chat-direct/contract"
	"chat-direct/domain"
	"chat-direct/domain/event"
	"chat-direct/errors"
	"chat-direct/moderation"
	"chat-direct/observability"
	"chat-direct/repositories"
)

type IDeliveryService interface {
	// Send runs the delivery state machine for one message and returns it
	// with the status the pipeline reached. An error means nothing was
	// persisted; the caller reports it to the sender and nothing else.
	Send(ctx context.Context, cmd domain.SendCommand) (domain.Message, error)
}

// DeliveryService persists a message, then attempts the live push.
// Persistence happens-before any push: no message reaches a receiver
// without being durably stored first.
type DeliveryService struct {
	log           *slog.Logger
	messages      repositories.IMessageRepository
	users         repositories.IUserRepository
	search        repositories.ISearchIndex
	registry      contract.IRegistry
	moderator     *moderation.Moderator
	stats         *observability.DeliveryStats
	pushTimeout   time.Duration
	maxTextLength int
}

func NewDeliveryService(log *slog.Logger,
	messages repositories.IMessageRepository,
	users repositories.IUserRepository,
	search repositories.ISearchIndex,
	registry contract.IRegistry,
	moderator *moderation.Moderator,
	stats *observability.DeliveryStats,
	pushTimeout time.Duration,
	maxTextLength int) *DeliveryService {
	return &DeliveryService{
		log:           log,
		messages:      messages,
		users:         users,
		search:        search,
		registry:      registry,
		moderator:     moderator,
		stats:         stats,
		pushTimeout:   pushTimeout,
		maxTextLength: maxTextLength,
	}
}

func (s *DeliveryService) Send(ctx context.Context, cmd domain.SendCommand) (domain.Message, error) {
	if err := s.validate(cmd); err != nil {
		return domain.Message{}, err
	}

	text := s.moderator.Censor(cmd.Text)
	info := whatlanggo.Detect(text)

	message := domain.Message{
		ID:         uuid.New(),
		SenderID:   cmd.SenderID,
		ReceiverID: cmd.ReceiverID,
		Text:       text,
		Language:   info.Lang.Iso6391(),
		Status:     domain.StatusSent,
		CreatedAt:  time.Now().UTC(),
	}

	stored, err := s.messages.Store(message)
	if err != nil {
		return domain.Message{}, fmt.Errorf("storing message: %w", err)
	}
	s.stats.MessageSent()

	if err := s.search.Index(stored); err != nil {
		// The index is a projection; a lagging entry is tolerated.
		s.log.Warn("Failed to index message", "message_id", stored.ID, "error", err)
	}

	sink, ok := s.registry.Lookup(cmd.ReceiverID)
	if !ok {
		// Receiver offline: status stays at sent, the message is picked up
		// through the next history fetch.
		return stored, nil
	}

	pushCtx, cancel := context.WithTimeout(ctx, s.pushTimeout)
	defer cancel()
	if err := sink.Consume(pushCtx, event.MessageReceived{Message: stored}); err != nil {
		s.stats.PushDropped()
		s.log.Debug("Live push failed, leaving status at sent",
			"message_id", stored.ID, "receiver_id", cmd.ReceiverID, "error", err)
		return stored, nil
	}

	updated, err := s.messages.UpdateStatus(stored.ID, domain.StatusDelivered)
	if err != nil {
		// The receiver already has the message; the stale stored status is
		// reconciled by the next read-receipt cycle.
		s.log.Warn("Status update failed after successful push",
			"message_id", stored.ID, "error", err)
		return stored, nil
	}
	s.stats.MessageDelivered()
	return updated, nil
}

// validate rejects a send before anything is persisted. The receiver must
// resolve against the identity store; an empty body must never be stored.
func (s *DeliveryService) validate(cmd domain.SendCommand) error {
	if cmd.ReceiverID == "" {
		return errors.ErrUnknownReceiver
	}
	if strings.TrimSpace(cmd.Text) == "" {
		return errors.ErrEmptyText
	}
	if s.maxTextLength > 0 && len(cmd.Text) > s.maxTextLength {
		return errors.ErrTextTooLong
	}
	if _, err := s.users.GetByID(cmd.ReceiverID); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrUnknownReceiver, cmd.ReceiverID)
	}
	return nil
}
