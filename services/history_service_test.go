package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-direct/domain"
	"chat-direct/errors"
	"chat-direct/mocks"
)

func TestHistoryService_Search_Hydrates_And_Skips_Stale_Hits(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	messages := mocks.NewMockIMessageRepository(ctrl)
	search := mocks.NewMockISearchIndex(ctrl)
	service := NewHistoryService(slog.Default(), messages, search)

	liveID := uuid.New()
	staleID := uuid.New()

	// Given the index returns one resolvable and one stale hit
	search.EXPECT().
		Search(gomock.Any(), "alice", "harbor", 10).
		Return([]uuid.UUID{liveID, staleID}, nil)
	messages.EXPECT().
		GetByID(liveID).
		Return(domain.Message{ID: liveID, SenderID: "alice", ReceiverID: "bob", Text: "the harbor"}, nil)
	messages.EXPECT().
		GetByID(staleID).
		Return(domain.Message{}, errors.ErrNotFound)

	// When alice searches
	results, err := service.Search(context.Background(), "alice", "harbor", "", 10)

	// Then only the resolvable message is returned
	req.NoError(err)
	req.Len(results, 1)
	req.Equal(liveID, results[0].ID)
}

func TestHistoryService_Search_With_Filter_Narrows_To_One_Conversation(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	messages := mocks.NewMockIMessageRepository(ctrl)
	search := mocks.NewMockISearchIndex(ctrl)
	service := NewHistoryService(slog.Default(), messages, search)

	withBob := uuid.New()
	withCarol := uuid.New()

	search.EXPECT().
		Search(gomock.Any(), "alice", "harbor", 10).
		Return([]uuid.UUID{withBob, withCarol}, nil)
	messages.EXPECT().
		GetByID(withBob).
		Return(domain.Message{ID: withBob, SenderID: "alice", ReceiverID: "bob"}, nil)
	messages.EXPECT().
		GetByID(withCarol).
		Return(domain.Message{ID: withCarol, SenderID: "carol", ReceiverID: "alice"}, nil)

	// When alice narrows the search to her conversation with bob
	results, err := service.Search(context.Background(), "alice", "harbor", "bob", 10)

	req.NoError(err)
	req.Len(results, 1)
	req.Equal(withBob, results[0].ID)
}

func TestHistoryService_Conversation_Delegates_To_Repository(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	messages := mocks.NewMockIMessageRepository(ctrl)
	search := mocks.NewMockISearchIndex(ctrl)
	service := NewHistoryService(slog.Default(), messages, search)

	next := "cursor-1"
	messages.EXPECT().
		History("alice", "bob", nil, 50).
		Return([]domain.Message{{Text: "hi"}}, &next, nil)

	page, cursor, err := service.Conversation("alice", "bob", nil, 50)

	req.NoError(err)
	req.Len(page, 1)
	req.Equal(&next, cursor)
}
