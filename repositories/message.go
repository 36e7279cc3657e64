//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"chat-direct/domain"
	apperrors "chat-direct/errors"
)

type IMessageRepository interface {
	Store(message domain.Message) (domain.Message, error)
	GetByID(id uuid.UUID) (domain.Message, error)
	History(userA, userB string, cursor *string, limit int) ([]domain.Message, *string, error)
	UpdateStatus(id uuid.UUID, status domain.Status) (domain.Message, error)
	MarkConversationRead(senderID, receiverID string) (int, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// diskMessage is the stored representation of a message.
type diskMessage struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Text       string `json:"text"`
	Language   string `json:"language,omitempty"`
	Status     string `json:"status"`
	Seq        uint64 `json:"seq"`
	CreatedAt  int64  `json:"createdAt"` // unix nanoseconds
}

// Key layout:
//
//	msg:{pair}:{timestamp_padded}:{seq_padded}  -> message record
//	msgid:{uuid}                                -> primary key (status updates)
//	seq:{pair}                                  -> last sequence number
//
// The 19-digit zero-padded timestamp makes lexicographical order equal
// chronological order; the per-conversation sequence is the tie-break for
// messages created in the same nanosecond.
func primaryKey(pair string, at time.Time, seq uint64) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%012d", pair, at.UnixNano(), seq))
}

func idKey(id uuid.UUID) []byte {
	return []byte("msgid:" + id.String())
}

func seqKey(pair string) []byte {
	return []byte("seq:" + pair)
}

func messagePrefix(pair string) []byte {
	return []byte("msg:" + pair + ":")
}

// Store persists a message and assigns its per-conversation sequence
// number inside the same transaction, so two writers racing on the same
// conversation can never observe the same sequence.
func (m MessageRepository) Store(message domain.Message) (domain.Message, error) {
	pair := domain.PairKey(message.SenderID, message.ReceiverID)

	err := m.db.Update(func(txn *badger.Txn) error {
		seq, err := nextSeq(txn, pair)
		if err != nil {
			return err
		}
		message.Seq = seq

		bytes, err := json.Marshal(fromMessage(message))
		if err != nil {
			return err
		}

		key := primaryKey(pair, message.CreatedAt, message.Seq)
		if err := txn.Set(key, bytes); err != nil {
			return err
		}
		return txn.Set(idKey(message.ID), key)
	})
	if err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

func nextSeq(txn *badger.Txn, pair string) (uint64, error) {
	var seq uint64
	item, err := txn.Get(seqKey(pair))
	switch err {
	case nil:
		if err := item.Value(func(val []byte) error {
			_, scanErr := fmt.Sscanf(string(val), "%d", &seq)
			return scanErr
		}); err != nil {
			return 0, err
		}
	case badger.ErrKeyNotFound:
		// First message of the conversation.
	default:
		return 0, err
	}
	seq++
	return seq, txn.Set(seqKey(pair), []byte(fmt.Sprintf("%d", seq)))
}

// GetByID resolves a message through the id index.
func (m MessageRepository) GetByID(id uuid.UUID) (domain.Message, error) {
	var record diskMessage
	err := m.db.View(func(txn *badger.Txn) error {
		key, err := resolveID(txn, id)
		if err != nil {
			return err
		}
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.Message{}, apperrors.ErrNotFound
	}
	if err != nil {
		return domain.Message{}, err
	}
	return toMessage(record)
}

func resolveID(txn *badger.Txn, id uuid.UUID) ([]byte, error) {
	item, err := txn.Get(idKey(id))
	if err != nil {
		return nil, err
	}
	var key []byte
	err = item.Value(func(val []byte) error {
		key = append([]byte(nil), val...)
		return nil
	})
	return key, err
}

// History returns one page of the conversation between userA and userB,
// ascending by creation time. Pages are scanned backwards from the cursor
// (newest page first) and reversed, so the client loads recent messages
// immediately and pages towards the past.
func (m MessageRepository) History(userA, userB string, cursor *string, limit int) ([]domain.Message, *string, error) {
	pair := domain.PairKey(userA, userB)
	prefix := messagePrefix(pair)

	var records []diskMessage
	var lastKey string
	err := m.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Seek past the newest possible key, then walk backwards.
			seekKey = append(append([]byte(nil), prefix...), []byte("9999999999999999999")...)
		default:
			seekKey = append(append([]byte(nil), prefix...), []byte(*cursor)...)
		}

		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(records) == limit {
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefix):])
			err := item.Value(func(val []byte) error {
				var record diskMessage
				if err := json.Unmarshal(val, &record); err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	messages := make([]domain.Message, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		message, err := toMessage(records[i])
		if err != nil {
			return nil, nil, err
		}
		messages = append(messages, message)
	}
	if lastKey == "" {
		return messages, nil, nil
	}
	return messages, &lastKey, nil
}

// UpdateStatus advances the delivery status of one message. The transition
// is forward-only: an update that would move the status backwards (or
// repeat it) leaves the record untouched and returns the stored message.
func (m MessageRepository) UpdateStatus(id uuid.UUID, status domain.Status) (domain.Message, error) {
	var record diskMessage
	err := m.db.Update(func(txn *badger.Txn) error {
		key, err := resolveID(txn, id)
		if err != nil {
			return err
		}
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		}); err != nil {
			return err
		}

		if !domain.Status(record.Status).CanAdvanceTo(status) {
			return nil
		}
		record.Status = string(status)

		bytes, err := json.Marshal(record)
		if err != nil {
			return err
		}
		return txn.Set(key, bytes)
	})
	if err == badger.ErrKeyNotFound {
		return domain.Message{}, apperrors.ErrNotFound
	}
	if err != nil {
		return domain.Message{}, err
	}
	return toMessage(record)
}

// MarkConversationRead bulk-promotes every message sent by senderID to
// receiverID that is not yet read. It returns the number of records
// affected; a second call with no new messages affects zero records.
func (m MessageRepository) MarkConversationRead(senderID, receiverID string) (int, error) {
	pair := domain.PairKey(senderID, receiverID)
	prefix := messagePrefix(pair)

	affected := 0
	err := m.db.Update(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		type pending struct {
			key   []byte
			value []byte
		}
		var updates []pending

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var record diskMessage
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			}); err != nil {
				return err
			}

			// Only one direction of the conversation is promoted.
			if record.SenderID != senderID || record.ReceiverID != receiverID {
				continue
			}
			if !domain.Status(record.Status).CanAdvanceTo(domain.StatusRead) {
				continue
			}
			record.Status = string(domain.StatusRead)

			bytes, err := json.Marshal(record)
			if err != nil {
				return err
			}
			updates = append(updates, pending{
				key:   item.KeyCopy(nil),
				value: bytes,
			})
		}

		// Writes are deferred until iteration is over: mutating keys
		// under an open iterator is undefined in Badger.
		for _, u := range updates {
			if err := txn.Set(u.key, u.value); err != nil {
				return err
			}
		}
		affected = len(updates)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func fromMessage(message domain.Message) diskMessage {
	return diskMessage{
		ID:         message.ID.String(),
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Text:       message.Text,
		Language:   message.Language,
		Status:     string(message.Status),
		Seq:        message.Seq,
		CreatedAt:  message.CreatedAt.UnixNano(),
	}
}

func toMessage(record diskMessage) (domain.Message, error) {
	parsedID, err := uuid.Parse(record.ID)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:         parsedID,
		SenderID:   record.SenderID,
		ReceiverID: record.ReceiverID,
		Text:       record.Text,
		Language:   record.Language,
		Status:     domain.Status(record.Status),
		Seq:        record.Seq,
		CreatedAt:  time.Unix(0, record.CreatedAt).UTC(),
	}, nil
}
