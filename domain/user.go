package domain

import "time"

// User is the identity referenced by the live-delivery subsystem.
// Only IsOnline and LastSeen are mutated by the presence path;
// the remaining fields belong to profile management.
type User struct {
	ID         string
	Username   string
	Avatar     string
	StatusText string
	IsOnline   bool
	LastSeen   time.Time
}

// PresenceUpdate is a durable presence write queued by the presence
// broadcaster and applied asynchronously by the presence writer worker.
type PresenceUpdate struct {
	UserID   string
	Online   bool
	LastSeen time.Time
}
