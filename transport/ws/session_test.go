package ws

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-direct/domain"
	"chat-direct/errors"
	"chat-direct/mocks"
)

// fakeConn scripts the inbound side and records everything written.
type fakeConn struct {
	mu       sync.Mutex
	inbound  chan Envelope
	written  []Envelope
	closed   bool
	closeTwo sync.Once
}

func newFakeConn() *fakeConn {
	return &fakeConn{inbound: make(chan Envelope, 8)}
}

func (c *fakeConn) ReadJSON(v any) error {
	envelope, ok := <-c.inbound
	if !ok {
		return io.EOF
	}
	*(v.(*Envelope)) = envelope
	return nil
}

func (c *fakeConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.written = append(c.written, v.(Envelope))
	return nil
}

func (c *fakeConn) Close() error {
	c.closeTwo.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()
	})
	return nil
}

func (c *fakeConn) send(event string, payload any) {
	data, _ := json.Marshal(payload)
	c.inbound <- Envelope{Event: event, Data: data}
}

func (c *fakeConn) writtenEvents() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	names := make([]string, 0, len(c.written))
	for _, envelope := range c.written {
		names = append(names, envelope.Event)
	}
	return names
}

type sessionFixture struct {
	conn     *fakeConn
	sink     *Sink
	presence *mocks.MockIPresenceService
	delivery *mocks.MockIDeliveryService
	receipts *mocks.MockIReceiptService
	typing   *mocks.MockITypingService
	session  *Session
}

func newSessionFixture(t *testing.T, userID string) sessionFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := sessionFixture{
		conn:     newFakeConn(),
		sink:     NewSink(slog.Default(), 8),
		presence: mocks.NewMockIPresenceService(ctrl),
		delivery: mocks.NewMockIDeliveryService(ctrl),
		receipts: mocks.NewMockIReceiptService(ctrl),
		typing:   mocks.NewMockITypingService(ctrl),
	}
	f.session = NewSession(slog.Default(), userID, f.conn, f.sink,
		f.presence, f.delivery, f.receipts, f.typing)
	return f
}

func (f sessionFixture) run(t *testing.T) chan struct{} {
	done := make(chan struct{})
	go func() {
		f.session.Run(context.Background())
		close(done)
	}()
	return done
}

func waitFor(t *testing.T, done chan struct{}) {
	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "Session should have terminated")
	}
}

func TestSession_Send_Message_Acks_On_Own_Connection(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t, "alice")

	f.presence.EXPECT().Connect(gomock.Any(), "alice", f.sink).Return(nil)
	f.presence.EXPECT().Disconnect(gomock.Any(), "alice", f.sink)

	stored := domain.Message{
		ID:         uuid.New(),
		SenderID:   "alice",
		ReceiverID: "bob",
		Text:       "hello",
		Status:     domain.StatusDelivered,
		CreatedAt:  time.Now().UTC(),
	}
	f.delivery.EXPECT().
		Send(gomock.Any(), domain.SendCommand{SenderID: "alice", ReceiverID: "bob", Text: "hello"}).
		Return(stored, nil)

	done := f.run(t)
	f.conn.send("send_message", map[string]string{"receiverId": "bob", "text": "hello"})

	// The write pump needs a beat to flush the ack
	time.Sleep(100 * time.Millisecond)
	close(f.conn.inbound)
	waitFor(t, done)

	req.Contains(f.conn.writtenEvents(), "message_sent")
}

func TestSession_Send_Failure_Reports_Error_Event(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t, "alice")

	f.presence.EXPECT().Connect(gomock.Any(), "alice", f.sink).Return(nil)
	f.presence.EXPECT().Disconnect(gomock.Any(), "alice", f.sink)

	f.delivery.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(domain.Message{}, errors.ErrEmptyText)

	done := f.run(t)
	f.conn.send("send_message", map[string]string{"receiverId": "bob", "text": "   "})

	time.Sleep(100 * time.Millisecond)
	close(f.conn.inbound)
	waitFor(t, done)

	events := f.conn.writtenEvents()
	req.Contains(events, "message_error")
	req.NotContains(events, "message_sent")
}

func TestSession_Typing_And_Read_Receipts_Are_Dispatched(t *testing.T) {
	f := newSessionFixture(t, "alice")

	f.presence.EXPECT().Connect(gomock.Any(), "alice", f.sink).Return(nil)
	f.presence.EXPECT().Disconnect(gomock.Any(), "alice", f.sink)

	f.typing.EXPECT().Signal(gomock.Any(), "alice", "bob", true)
	f.typing.EXPECT().Signal(gomock.Any(), "alice", "bob", false)
	f.receipts.EXPECT().MarkRead(gomock.Any(), "alice", "bob").Return(2, nil)

	done := f.run(t)
	f.conn.send("typing_start", map[string]string{"receiverId": "bob"})
	f.conn.send("typing_stop", map[string]string{"receiverId": "bob"})
	f.conn.send("mark_messages_read", map[string]string{"senderId": "bob"})

	time.Sleep(100 * time.Millisecond)
	close(f.conn.inbound)
	waitFor(t, done)
}

func TestSession_Unknown_Event_Is_Ignored(t *testing.T) {
	f := newSessionFixture(t, "alice")

	f.presence.EXPECT().Connect(gomock.Any(), "alice", f.sink).Return(nil)
	f.presence.EXPECT().Disconnect(gomock.Any(), "alice", f.sink)

	done := f.run(t)
	f.conn.send("subscribe_everything", map[string]string{})

	time.Sleep(50 * time.Millisecond)
	close(f.conn.inbound)
	waitFor(t, done)
}

func TestSession_Superseded_Previous_Sink_Is_Closed(t *testing.T) {
	req := require.New(t)
	f := newSessionFixture(t, "alice")

	// Given a still-open sink from a previous connection
	prev := NewSink(slog.Default(), 1)
	f.presence.EXPECT().Connect(gomock.Any(), "alice", f.sink).Return(prev)
	f.presence.EXPECT().Disconnect(gomock.Any(), "alice", f.sink)

	done := f.run(t)
	time.Sleep(50 * time.Millisecond)
	close(f.conn.inbound)
	waitFor(t, done)

	// Then the superseded sink was shut down
	select {
	case <-prev.Done():
	default:
		req.Fail("Previous sink should have been closed")
	}
}
