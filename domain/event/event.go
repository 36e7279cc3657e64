// Package event defines the domain events pushed to live connections.
// Each event maps to one wire event of the socket contract.
package event

import (
	"time"

	"chat-direct/domain"
)

// DomainEvent is anything that can be consumed by a connection sink.
type DomainEvent interface {
	// EventName is the wire name of the event ("new_message", "user_typing"...).
	EventName() string
}

// MessageReceived is pushed to the receiver of a freshly persisted message.
type MessageReceived struct {
	Message domain.Message
}

func (MessageReceived) EventName() string { return "new_message" }

// MessageAcked confirms a send to its initiating connection.
// The embedded message carries the delivery outcome in its status.
type MessageAcked struct {
	Message domain.Message
}

func (MessageAcked) EventName() string { return "message_sent" }

// MessageFailed reports a send failure to its initiating connection.
type MessageFailed struct {
	Reason string
}

func (MessageFailed) EventName() string { return "message_error" }

// UserTyping is forwarded to one specific receiver. Never persisted.
type UserTyping struct {
	UserID   string
	IsTyping bool
}

func (UserTyping) EventName() string { return "user_typing" }

// MessagesRead notifies a sender that its backlog towards ReaderID
// was bulk-promoted to read.
type MessagesRead struct {
	ReaderID string
	SenderID string
}

func (MessagesRead) EventName() string { return "messages_read" }

// UserOnline is broadcast to every connection except the one coming online.
type UserOnline struct {
	UserID string
}

func (UserOnline) EventName() string { return "user_online" }

// UserOffline is broadcast to every connection except the one leaving.
type UserOffline struct {
	UserID   string
	LastSeen time.Time
}

func (UserOffline) EventName() string { return "user_offline" }
