// Package ws is the live transport: a websocket gateway speaking the
// bidirectional event contract of the chat client.
package ws

import (
	"encoding/json"
	"fmt"
	"time"

	"chat-direct/domain"
	"chat-direct/domain/event"
)

// Envelope frames every wire message in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Inbound payloads.
type sendMessagePayload struct {
	ReceiverID string `json:"receiverId"`
	Text       string `json:"text"`
}

type typingPayload struct {
	ReceiverID string `json:"receiverId"`
}

type markReadPayload struct {
	SenderID string `json:"senderId"`
}

// messageRecord is the full message representation pushed to clients.
type messageRecord struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Text       string    `json:"text"`
	Language   string    `json:"language,omitempty"`
	Status     string    `json:"status"`
	Seq        uint64    `json:"seq"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toMessageRecord(m domain.Message) messageRecord {
	return messageRecord{
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

// EncodeEvent maps a domain event onto its wire envelope. Payload field
// names are part of the client contract and must not drift.
func EncodeEvent(e event.DomainEvent) (Envelope, error) {
	var payload any
	switch evt := e.(type) {
	case event.MessageReceived:
		payload = toMessageRecord(evt.Message)
	case event.MessageAcked:
		payload = toMessageRecord(evt.Message)
	case event.MessageFailed:
		payload = struct {
			Error string `json:"error"`
		}{Error: evt.Reason}
	case event.UserTyping:
		payload = struct {
			UserID   string `json:"userId"`
			IsTyping bool   `json:"isTyping"`
		}{UserID: evt.UserID, IsTyping: evt.IsTyping}
	case event.MessagesRead:
		payload = struct {
			ReaderID string `json:"readerId"`
			SenderID string `json:"senderId"`
		}{ReaderID: evt.ReaderID, SenderID: evt.SenderID}
	case event.UserOnline:
		payload = struct {
			UserID   string `json:"userId"`
			IsOnline bool   `json:"isOnline"`
		}{UserID: evt.UserID, IsOnline: true}
	case event.UserOffline:
		payload = struct {
			UserID   string    `json:"userId"`
			IsOnline bool      `json:"isOnline"`
			LastSeen time.Time `json:"lastSeen"`
		}{UserID: evt.UserID, IsOnline: false, LastSeen: evt.LastSeen}
	default:
		return Envelope{}, fmt.Errorf("unmapped domain event %q", e.EventName())
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Event: e.EventName(), Data: data}, nil
}
