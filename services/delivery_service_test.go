package services

import (
	"context"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-direct/domain"
	"chat-direct/domain/event"
	"chat-direct/errors"
	"chat-direct/mocks"
	"chat-direct/moderation"
	"chat-direct/observability"
	"chat-direct/repositories"
)

type deliveryFixture struct {
	messages *mocks.MockIMessageRepository
	users    *mocks.MockIUserRepository
	search   *mocks.MockISearchIndex
	registry *mocks.MockIRegistry
	stats    *observability.DeliveryStats
	service  *DeliveryService
}

func newDeliveryFixture(t *testing.T) deliveryFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	moderator, err := moderation.NewModerator([]string{"badger"}, '*')
	require.NoError(t, err)

	f := deliveryFixture{
		messages: mocks.NewMockIMessageRepository(ctrl),
		users:    mocks.NewMockIUserRepository(ctrl),
		search:   mocks.NewMockISearchIndex(ctrl),
		registry: mocks.NewMockIRegistry(ctrl),
		stats:    observability.NewDeliveryStats(),
	}
	f.service = NewDeliveryService(slog.Default(), f.messages, f.users, f.search,
		f.registry, &moderator, f.stats, 100*time.Millisecond, 2000)
	return f
}

func TestDeliveryService_Send_Offline_Receiver_Stays_Sent(t *testing.T) {
	req := require.New(t)
	f := newDeliveryFixture(t)

	// Given a known but offline receiver
	f.users.EXPECT().GetByID("bob").Return(repositories.Account{ID: "bob"}, nil)
	f.messages.EXPECT().
		Store(gomock.Any()).
		DoAndReturn(func(m domain.Message) (domain.Message, error) {
			m.Seq = 1
			return m, nil
		})
	f.search.EXPECT().Index(gomock.Any()).Return(nil)
	f.registry.EXPECT().Lookup("bob").Return(nil, false)

	// When alice sends a message
	stored, err := f.service.Send(context.Background(), domain.SendCommand{
		SenderID:   "alice",
		ReceiverID: "bob",
		Text:       "hello there",
	})

	// Then it is persisted at sent and nothing was pushed
	req.NoError(err)
	req.Equal(domain.StatusSent, stored.Status)
	req.Equal("hello there", stored.Text)
	req.NotEmpty(stored.ID)

	snapshot := f.stats.Snapshot()
	req.Equal(uint64(1), snapshot.Sent)
	req.Zero(snapshot.Delivered)
}

func TestDeliveryService_Send_Online_Receiver_Advances_To_Delivered(t *testing.T) {
	req := require.New(t)
	f := newDeliveryFixture(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sink := mocks.NewMockEventSink(ctrl)

	f.users.EXPECT().GetByID("bob").Return(repositories.Account{ID: "bob"}, nil)
	f.messages.EXPECT().
		Store(gomock.Any()).
		DoAndReturn(func(m domain.Message) (domain.Message, error) { return m, nil })
	f.search.EXPECT().Index(gomock.Any()).Return(nil)
	f.registry.EXPECT().Lookup("bob").Return(sink, true)

	// Given the receiver's connection accepts the push
	var pushed event.DomainEvent
	sink.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e event.DomainEvent) error {
			pushed = e
			return nil
		})
	f.messages.EXPECT().
		UpdateStatus(gomock.Any(), domain.StatusDelivered).
		DoAndReturn(func(id uuid.UUID, status domain.Status) (domain.Message, error) {
			return domain.Message{ID: id, Status: status}, nil
		})

	// When alice sends a message
	result, err := f.service.Send(context.Background(), domain.SendCommand{
		SenderID:   "alice",
		ReceiverID: "bob",
		Text:       "hello there",
	})

	// Then the receiver got a new_message push and the status advanced
	req.NoError(err)
	req.Equal(domain.StatusDelivered, result.Status)
	received, ok := pushed.(event.MessageReceived)
	req.True(ok)
	req.Equal("hello there", received.Message.Text)

	snapshot := f.stats.Snapshot()
	req.Equal(uint64(1), snapshot.Sent)
	req.Equal(uint64(1), snapshot.Delivered)
}

func TestDeliveryService_Send_Push_Failure_Keeps_Status_Sent(t *testing.T) {
	req := require.New(t)
	f := newDeliveryFixture(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sink := mocks.NewMockEventSink(ctrl)

	f.users.EXPECT().GetByID("bob").Return(repositories.Account{ID: "bob"}, nil)
	f.messages.EXPECT().
		Store(gomock.Any()).
		DoAndReturn(func(m domain.Message) (domain.Message, error) { return m, nil })
	f.search.EXPECT().Index(gomock.Any()).Return(nil)
	f.registry.EXPECT().Lookup("bob").Return(sink, true)

	// Given a connection that cannot take the push
	sink.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		Return(context.DeadlineExceeded)

	// When alice sends a message
	result, err := f.service.Send(context.Background(), domain.SendCommand{
		SenderID:   "alice",
		ReceiverID: "bob",
		Text:       "hello there",
	})

	// Then the send still succeeds at sent and the drop is counted
	req.NoError(err)
	req.Equal(domain.StatusSent, result.Status)
	req.Equal(uint64(1), f.stats.Snapshot().DroppedPushes)
}

func TestDeliveryService_Send_Full_Receiver_Buffer_Stays_Sent(t *testing.T) {
	req := require.New(t)
	f := newDeliveryFixture(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sink := mocks.NewMockEventSink(ctrl)

	f.users.EXPECT().GetByID("bob").Return(repositories.Account{ID: "bob"}, nil)
	f.messages.EXPECT().
		Store(gomock.Any()).
		DoAndReturn(func(m domain.Message) (domain.Message, error) { return m, nil })
	f.search.EXPECT().Index(gomock.Any()).Return(nil)
	f.registry.EXPECT().Lookup("bob").Return(sink, true)

	// Given a connection whose outbound buffer is full
	sink.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		Return(errors.ErrSinkFull)

	// When alice sends a message
	result, err := f.service.Send(context.Background(), domain.SendCommand{
		SenderID:   "alice",
		ReceiverID: "bob",
		Text:       "hello there",
	})

	// Then no delivered promotion happens and the stats record the drop
	req.NoError(err)
	req.Equal(domain.StatusSent, result.Status)
	snapshot := f.stats.Snapshot()
	req.Equal(uint64(1), snapshot.DroppedPushes)
	req.Equal(uint64(0), snapshot.Delivered)
}

func TestDeliveryService_Send_Status_Update_Failure_Is_Tolerated(t *testing.T) {
	req := require.New(t)
	f := newDeliveryFixture(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sink := mocks.NewMockEventSink(ctrl)

	f.users.EXPECT().GetByID("bob").Return(repositories.Account{ID: "bob"}, nil)
	f.messages.EXPECT().
		Store(gomock.Any()).
		DoAndReturn(func(m domain.Message) (domain.Message, error) { return m, nil })
	f.search.EXPECT().Index(gomock.Any()).Return(nil)
	f.registry.EXPECT().Lookup("bob").Return(sink, true)
	sink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil)

	// Given the status write fails after a successful push
	f.messages.EXPECT().
		UpdateStatus(gomock.Any(), domain.StatusDelivered).
		Return(domain.Message{}, stderrors.New("txn conflict"))

	// When alice sends a message
	result, err := f.service.Send(context.Background(), domain.SendCommand{
		SenderID:   "alice",
		ReceiverID: "bob",
		Text:       "hello there",
	})

	// Then the caller still gets the stored message at sent
	req.NoError(err)
	req.Equal(domain.StatusSent, result.Status)
	req.Zero(f.stats.Snapshot().Delivered)
}

func TestDeliveryService_Send_Censors_And_Detects_Language(t *testing.T) {
	req := require.New(t)
	f := newDeliveryFixture(t)

	f.users.EXPECT().GetByID("bob").Return(repositories.Account{ID: "bob"}, nil)
	var persisted domain.Message
	f.messages.EXPECT().
		Store(gomock.Any()).
		DoAndReturn(func(m domain.Message) (domain.Message, error) {
			persisted = m
			return m, nil
		})
	f.search.EXPECT().Index(gomock.Any()).Return(nil)
	f.registry.EXPECT().Lookup("bob").Return(nil, false)

	// When the text contains a censored word
	_, err := f.service.Send(context.Background(), domain.SendCommand{
		SenderID:   "alice",
		ReceiverID: "bob",
		Text:       "you absolute badger, this is still an english sentence",
	})

	// Then the stored text is censored and the language detected
	req.NoError(err)
	req.Contains(persisted.Text, "******")
	req.NotContains(persisted.Text, "badger")
	req.Equal("en", persisted.Language)
}

func TestDeliveryService_Send_Validation(t *testing.T) {
	tests := []struct {
		name     string
		cmd      domain.SendCommand
		expected error
	}{
		{
			name:     "should reject empty receiver",
			cmd:      domain.SendCommand{SenderID: "alice", Text: "hi"},
			expected: errors.ErrUnknownReceiver,
		},
		{
			name:     "should reject blank text",
			cmd:      domain.SendCommand{SenderID: "alice", ReceiverID: "bob", Text: "   \n\t "},
			expected: errors.ErrEmptyText,
		},
		{
			name:     "should reject oversized text",
			cmd:      domain.SendCommand{SenderID: "alice", ReceiverID: "bob", Text: strings.Repeat("a", 2001)},
			expected: errors.ErrTextTooLong,
		},
		{
			name:     "should reject unknown receiver",
			cmd:      domain.SendCommand{SenderID: "alice", ReceiverID: "ghost", Text: "hi"},
			expected: errors.ErrUnknownReceiver,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			f := newDeliveryFixture(t)

			if tt.cmd.ReceiverID == "ghost" {
				f.users.EXPECT().GetByID("ghost").Return(repositories.Account{}, errors.ErrNotFound)
			}

			_, err := f.service.Send(context.Background(), tt.cmd)

			req.ErrorIs(err, tt.expected)
			// Nothing persisted, nothing counted
			req.Zero(f.stats.Snapshot().Sent)
		})
	}
}
