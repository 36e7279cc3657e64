//go:generate go run go.uber.org/mock/mockgen -source=history_service.go -destination=../mocks/mock_history_service.go -package=mocks
package services

import (
	"context"
	"log/slog"

	"chat-direct/domain"
	"chat-direct/repositories"
)

type IHistoryService interface {
	// Conversation returns one page of the exchange between userID and
	// otherID, ascending by creation time, plus the cursor of the next
	// (older) page.
	Conversation(userID, otherID string, cursor *string, limit int) ([]domain.Message, *string, error)
	// Search finds messages matching terms across every conversation
	// userID participates in. A non-empty withID narrows the hits to the
	// conversation with that user.
	Search(ctx context.Context, userID, terms, withID string, limit int) ([]domain.Message, error)
}

// HistoryService reads past the durability boundary: Badger for pages,
// Bluge for full-text lookups hydrated from Badger.
type HistoryService struct {
	log      *slog.Logger
	messages repositories.IMessageRepository
	search   repositories.ISearchIndex
}

func NewHistoryService(log *slog.Logger, messages repositories.IMessageRepository,
	search repositories.ISearchIndex) *HistoryService {
	return &HistoryService{log: log, messages: messages, search: search}
}

func (s *HistoryService) Conversation(userID, otherID string, cursor *string, limit int) ([]domain.Message, *string, error) {
	return s.messages.History(userID, otherID, cursor, limit)
}

func (s *HistoryService) Search(ctx context.Context, userID, terms, withID string, limit int) ([]domain.Message, error) {
	ids, err := s.search.Search(ctx, userID, terms, limit)
	if err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(ids))
	for _, id := range ids {
		message, err := s.messages.GetByID(id)
		if err != nil {
			// The index can briefly reference a message Badger no longer
			// returns; skip it rather than failing the whole search.
			s.log.Debug("Skipping unresolvable search hit", "message_id", id, "error", err)
			continue
		}
		if withID != "" && message.SenderID != withID && message.ReceiverID != withID {
			continue
		}
		messages = append(messages, message)
	}
	return messages, nil
}
