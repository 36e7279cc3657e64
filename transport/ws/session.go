package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"chat-direct/domain"
	"chat-direct/domain/event"
	apperrors "chat-direct/errors"
	"chat-direct/services"
)

// conn is the subset of *websocket.Conn the session uses, narrowed for
// testability.
type conn interface {
	ReadJSON(v any) error
	WriteJSON(v any) error
	Close() error
}

// Session owns one authenticated connection end to end: it registers the
// user with the presence layer, pumps outbound events onto the socket and
// dispatches inbound envelopes onto the services.
type Session struct {
	log      *slog.Logger
	userID   string
	conn     conn
	sink     *Sink
	presence services.IPresenceService
	delivery services.IDeliveryService
	receipts services.IReceiptService
	typing   services.ITypingService
}

func NewSession(log *slog.Logger, userID string, c conn, sink *Sink,
	presence services.IPresenceService,
	delivery services.IDeliveryService,
	receipts services.IReceiptService,
	typing services.ITypingService) *Session {
	return &Session{
		log:      log.With("user_id", userID),
		userID:   userID,
		conn:     c,
		sink:     sink,
		presence: presence,
		delivery: delivery,
		receipts: receipts,
		typing:   typing,
	}
}

// Run blocks until the socket closes or ctx is cancelled. Presence is
// connected on entry and disconnected on every exit path.
func (s *Session) Run(ctx context.Context) {
	// A previous connection for the same user is superseded: close it so
	// its pumps unwind and its (stale) unregister becomes a no-op.
	if prev, ok := s.presence.Connect(ctx, s.userID, s.sink).(*Sink); ok && prev != nil {
		prev.Close()
	}
	defer s.sink.Close()
	defer s.presence.Disconnect(ctx, s.userID, s.sink)
	defer s.conn.Close()

	writeCtx, cancelWrites := context.WithCancel(ctx)
	defer cancelWrites()
	go s.writePump(writeCtx)

	for {
		var envelope Envelope
		if err := s.conn.ReadJSON(&envelope); err != nil {
			s.log.Debug("Socket read ended", "error", err)
			return
		}
		s.dispatch(ctx, envelope)
	}
}

// writePump is the only writer on the socket; gorilla connections do not
// tolerate concurrent writes.
func (s *Session) writePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.sink.Done():
			// Superseded by a newer connection.
			s.conn.Close()
			return
		case e := <-s.sink.Events():
			envelope, err := EncodeEvent(e)
			if err != nil {
				s.log.Error("Dropping unencodable event", "error", err)
				continue
			}
			if err := s.conn.WriteJSON(envelope); err != nil {
				s.log.Debug("Socket write failed", "error", err)
				s.conn.Close()
				return
			}
		}
	}
}

func (s *Session) dispatch(ctx context.Context, envelope Envelope) {
	switch envelope.Event {
	case "send_message":
		s.handleSend(ctx, envelope.Data)
	case "typing_start":
		s.handleTyping(ctx, envelope.Data, true)
	case "typing_stop":
		s.handleTyping(ctx, envelope.Data, false)
	case "mark_messages_read":
		s.handleMarkRead(ctx, envelope.Data)
	default:
		s.log.Debug("Ignoring unknown inbound event", "event", envelope.Event)
	}
}

func (s *Session) handleSend(ctx context.Context, data json.RawMessage) {
	var payload sendMessagePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		s.fail(ctx, "malformed send_message payload")
		return
	}

	message, err := s.delivery.Send(ctx, domain.SendCommand{
		SenderID:   s.userID,
		ReceiverID: payload.ReceiverID,
		Text:       payload.Text,
	})
	if err != nil {
		s.log.Warn("Message rejected", "error", err)
		s.fail(ctx, userFacingReason(err))
		return
	}

	s.emit(ctx, event.MessageAcked{Message: message})
}

func (s *Session) handleTyping(ctx context.Context, data json.RawMessage, isTyping bool) {
	var payload typingPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.ReceiverID == "" {
		return
	}
	s.typing.Signal(ctx, s.userID, payload.ReceiverID, isTyping)
}

func (s *Session) handleMarkRead(ctx context.Context, data json.RawMessage) {
	var payload markReadPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.SenderID == "" {
		return
	}
	if _, err := s.receipts.MarkRead(ctx, s.userID, payload.SenderID); err != nil {
		s.log.Warn("Read receipt failed", "sender_id", payload.SenderID, "error", err)
	}
}

func (s *Session) fail(ctx context.Context, reason string) {
	s.emit(ctx, event.MessageFailed{Reason: reason})
}

// emit routes through the session's own sink so ordering with pushed
// events is preserved.
func (s *Session) emit(ctx context.Context, e event.DomainEvent) {
	if err := s.sink.Consume(ctx, e); err != nil {
		s.log.Debug("Could not queue event for own connection", "event", e.EventName(), "error", err)
	}
}

// userFacingReason keeps internal wrapping out of the client contract.
func userFacingReason(err error) string {
	for _, sentinel := range []error{
		apperrors.ErrEmptyText,
		apperrors.ErrTextTooLong,
		apperrors.ErrUnknownReceiver,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "message could not be delivered"
}
