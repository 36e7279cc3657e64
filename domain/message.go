// Package domain contains core concepts of the messaging system.
// This file defines Message records and their delivery lifecycle.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the position of a message in its delivery lifecycle.
// Transitions only move forward: sent -> delivered -> read.
type Status string

const (
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusRead      Status = "read"
)

// rank orders statuses along the lifecycle. Unknown statuses rank lowest
// so they can never overwrite a valid one.
func (s Status) rank() int {
	switch s {
	case StatusSent:
		return 1
	case StatusDelivered:
		return 2
	case StatusRead:
		return 3
	default:
		return 0
	}
}

// CanAdvanceTo reports whether moving to next is a strictly forward
// transition. A repeated or backward transition returns false.
func (s Status) CanAdvanceTo(next Status) bool {
	return next.rank() > s.rank()
}

// Message represents a one-to-one chat message.
// Seq is a per-conversation monotonic sequence assigned at persistence time;
// it disambiguates messages created in the same instant.
type Message struct {
	ID         uuid.UUID
	SenderID   string
	ReceiverID string
	Text       string
	Language   string
	Status     Status
	Seq        uint64
	CreatedAt  time.Time
}
