//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=../mocks/mock_search_index.go -package=mocks
package repositories

import (
	"context"
	"log/slog"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"

	"chat-direct/domain"
)

type ISearchIndex interface {
	Index(message domain.Message) error
	Search(ctx context.Context, userID, terms string, limit int) ([]uuid.UUID, error)
}

// SearchIndex maintains a Bluge full-text index over message bodies.
// The index is a projection: Badger stays the source of truth and search
// results are hydrated from it by the caller.
type SearchIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewSearchIndex(writer *bluge.Writer, log *slog.Logger) *SearchIndex {
	return &SearchIndex{writer: writer, log: log}
}

// Index adds or replaces one message document.
func (s *SearchIndex) Index(message domain.Message) error {
	doc := bluge.NewDocument(message.ID.String()).
		AddField(bluge.NewTextField("text", message.Text)).
		AddField(bluge.NewKeywordField("sender", message.SenderID)).
		AddField(bluge.NewKeywordField("receiver", message.ReceiverID))
	return s.writer.Update(doc.ID(), doc)
}

// Search returns the ids of messages matching terms in any conversation
// userID participates in. Results are capped at limit, best match first.
func (s *SearchIndex) Search(ctx context.Context, userID, terms string, limit int) ([]uuid.UUID, error) {
	reader, err := s.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			s.log.Warn("Failed to close index reader", "error", err)
		}
	}()

	match := bluge.NewMatchQuery(terms)
	match.SetField("text")

	// The caller must be a participant: sender or receiver.
	participant := bluge.NewBooleanQuery()
	participant.AddShould(bluge.NewTermQuery(userID).SetField("sender"))
	participant.AddShould(bluge.NewTermQuery(userID).SetField("receiver"))
	participant.SetMinShould(1)

	query := bluge.NewBooleanQuery()
	query.AddMust(match)
	query.AddMust(participant)

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	for {
		next, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if next == nil {
			break
		}
		var rawID string
		if err := next.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				rawID = string(value)
			}
			return true
		}); err != nil {
			return nil, err
		}
		parsed, err := uuid.Parse(rawID)
		if err != nil {
			s.log.Warn("Skipping document with malformed id", "id", rawID)
			continue
		}
		ids = append(ids, parsed)
	}
	return ids, nil
}
