package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"chat-direct/domain"
	apperrors "chat-direct/errors"
)

// SetupTestDB initializes a temporary Badger instance for testing
func SetupTestDB(t *testing.T) (*badger.DB, func()) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)

	return db, func() {
		db.Close()
	}
}

func newTestMessage(senderID, receiverID, text string, at time.Time) domain.Message {
	return domain.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
		Status:     domain.StatusSent,
		CreatedAt:  at,
	}
}

func TestMessageRepository_Store_Assigns_Monotonic_Sequence(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewMessageRepository(db, slog.Default())

	base := time.Now().UTC()

	// Given three messages in the same conversation, both directions
	first, err := repo.Store(newTestMessage("alice", "bob", "hi", base))
	req.NoError(err)
	second, err := repo.Store(newTestMessage("bob", "alice", "hey", base.Add(time.Millisecond)))
	req.NoError(err)
	third, err := repo.Store(newTestMessage("alice", "bob", "how are you", base.Add(2*time.Millisecond)))
	req.NoError(err)

	// Then the sequence is strictly increasing across the conversation
	req.Equal(uint64(1), first.Seq)
	req.Equal(uint64(2), second.Seq)
	req.Equal(uint64(3), third.Seq)

	// And an unrelated conversation starts its own sequence
	other, err := repo.Store(newTestMessage("alice", "carol", "hello", base))
	req.NoError(err)
	req.Equal(uint64(1), other.Seq)
}

func TestMessageRepository_GetByID(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewMessageRepository(db, slog.Default())

	// Given a stored message
	stored, err := repo.Store(newTestMessage("alice", "bob", "hi", time.Now().UTC()))
	req.NoError(err)

	// When it is resolved through the id index
	found, err := repo.GetByID(stored.ID)

	// Then the record round-trips
	req.NoError(err)
	req.Equal(stored.ID, found.ID)
	req.Equal("hi", found.Text)
	req.Equal(domain.StatusSent, found.Status)
	req.Equal(stored.Seq, found.Seq)

	// And an unknown id maps to the domain error
	_, err = repo.GetByID(uuid.New())
	req.ErrorIs(err, apperrors.ErrNotFound)
}

func TestMessageRepository_History_Is_Ascending_And_Paginates(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewMessageRepository(db, slog.Default())

	base := time.Now().UTC()

	// Given five messages in chronological order
	texts := []string{"one", "two", "three", "four", "five"}
	for i, text := range texts {
		_, err := repo.Store(newTestMessage("alice", "bob", text, base.Add(time.Duration(i)*time.Millisecond)))
		req.NoError(err)
	}

	// When the newest page of three is fetched
	page, cursor, err := repo.History("bob", "alice", nil, 3)
	req.NoError(err)

	// Then it holds the three newest messages, ascending
	req.Len(page, 3)
	req.Equal("three", page[0].Text)
	req.Equal("four", page[1].Text)
	req.Equal("five", page[2].Text)
	req.NotNil(cursor)

	// When the next page is fetched with the cursor
	older, _, err := repo.History("bob", "alice", cursor, 3)
	req.NoError(err)

	// Then it holds the remaining older messages, still ascending
	req.Len(older, 2)
	req.Equal("one", older[0].Text)
	req.Equal("two", older[1].Text)
}

func TestMessageRepository_History_Empty_Conversation(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewMessageRepository(db, slog.Default())

	page, cursor, err := repo.History("alice", "bob", nil, 10)

	req.NoError(err)
	req.Empty(page)
	req.Nil(cursor)
}

func TestMessageRepository_UpdateStatus_Is_Forward_Only(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewMessageRepository(db, slog.Default())

	stored, err := repo.Store(newTestMessage("alice", "bob", "hi", time.Now().UTC()))
	req.NoError(err)

	// When the message is delivered
	updated, err := repo.UpdateStatus(stored.ID, domain.StatusDelivered)
	req.NoError(err)
	req.Equal(domain.StatusDelivered, updated.Status)

	// And then read
	updated, err = repo.UpdateStatus(stored.ID, domain.StatusRead)
	req.NoError(err)
	req.Equal(domain.StatusRead, updated.Status)

	// Then a late delivered update cannot regress it
	updated, err = repo.UpdateStatus(stored.ID, domain.StatusDelivered)
	req.NoError(err)
	req.Equal(domain.StatusRead, updated.Status)

	found, err := repo.GetByID(stored.ID)
	req.NoError(err)
	req.Equal(domain.StatusRead, found.Status)
}

func TestMessageRepository_UpdateStatus_Unknown_Message(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewMessageRepository(db, slog.Default())

	_, err := repo.UpdateStatus(uuid.New(), domain.StatusDelivered)

	req.ErrorIs(err, apperrors.ErrNotFound)
}

func TestMessageRepository_MarkConversationRead(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewMessageRepository(db, slog.Default())

	base := time.Now().UTC()

	// Given two unread messages from alice, one already read, and one from bob
	first, err := repo.Store(newTestMessage("alice", "bob", "one", base))
	req.NoError(err)
	second, err := repo.Store(newTestMessage("alice", "bob", "two", base.Add(time.Millisecond)))
	req.NoError(err)
	alreadyRead, err := repo.Store(newTestMessage("alice", "bob", "three", base.Add(2*time.Millisecond)))
	req.NoError(err)
	_, err = repo.UpdateStatus(alreadyRead.ID, domain.StatusRead)
	req.NoError(err)
	fromBob, err := repo.Store(newTestMessage("bob", "alice", "four", base.Add(3*time.Millisecond)))
	req.NoError(err)

	// When bob marks alice's messages as read
	affected, err := repo.MarkConversationRead("alice", "bob")
	req.NoError(err)

	// Then only the two unread messages from alice were promoted
	req.Equal(2, affected)
	for _, id := range []uuid.UUID{first.ID, second.ID} {
		found, err := repo.GetByID(id)
		req.NoError(err)
		req.Equal(domain.StatusRead, found.Status)
	}

	// And bob's own message stayed untouched
	found, err := repo.GetByID(fromBob.ID)
	req.NoError(err)
	req.Equal(domain.StatusSent, found.Status)

	// And a second pass affects nothing
	affected, err = repo.MarkConversationRead("alice", "bob")
	req.NoError(err)
	req.Zero(affected)
}
