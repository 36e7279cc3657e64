package workers

import (
	"context"
	"log/slog"

	"chat-direct/domain"
	"chat-direct/repositories"
)

// PresenceWriter applies durable presence updates off the connection
// handling path. The broadcaster enqueues and keeps going; a failed write
// only costs a stale lastSeen, which the next connect/disconnect repairs.
type PresenceWriter struct {
	log     *slog.Logger
	users   repositories.IUserRepository
	updates chan domain.PresenceUpdate
}

func NewPresenceWriter(log *slog.Logger, users repositories.IUserRepository, bufferSize int) *PresenceWriter {
	return &PresenceWriter{
		log:     log,
		users:   users,
		updates: make(chan domain.PresenceUpdate, bufferSize),
	}
}

// Updates is the enqueue side handed to the presence broadcaster.
func (w *PresenceWriter) Updates() chan<- domain.PresenceUpdate {
	return w.updates
}

func (w *PresenceWriter) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return nil
		case update := <-w.updates:
			if err := w.users.SetPresence(update.UserID, update.Online, update.LastSeen); err != nil {
				// Stale presence is tolerated, never surfaced to clients.
				w.log.Error("Failed to persist presence",
					"user_id", update.UserID,
					"online", update.Online,
					"error", err)
			}
		}
	}
}
