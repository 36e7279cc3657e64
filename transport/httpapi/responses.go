package httpapi

import (
	"time"

	"github.com/samber/lo"

	"chat-direct/domain"
)

// REST responses mirror the websocket payloads: one camelCase shape per
// record, whichever channel delivers it.

type messageResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Text       string    `json:"text"`
	Language   string    `json:"language,omitempty"`
	Status     string    `json:"status"`
	Seq        uint64    `json:"seq"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toMessageResponse(m domain.Message) messageResponse {
	return messageResponse{
		ID:         m.ID.String(),
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Text:       m.Text,
		Language:   m.Language,
		Status:     string(m.Status),
		Seq:        m.Seq,
		CreatedAt:  m.CreatedAt,
	}
}

func toMessageResponses(messages []domain.Message) []messageResponse {
	return lo.Map(messages, func(m domain.Message, _ int) messageResponse {
		return toMessageResponse(m)
	})
}

type userResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Avatar     string    `json:"avatar"`
	StatusText string    `json:"statusText"`
	IsOnline   bool      `json:"isOnline"`
	LastSeen   time.Time `json:"lastSeen"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Username:   u.Username,
		Avatar:     u.Avatar,
		StatusText: u.StatusText,
		IsOnline:   u.IsOnline,
		LastSeen:   u.LastSeen,
	}
}

func toUserResponses(users []domain.User) []userResponse {
	return lo.Map(users, func(u domain.User, _ int) userResponse {
		return toUserResponse(u)
	})
}
