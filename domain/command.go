package domain

// SendCommand is the intent carried by a send_message event.
type SendCommand struct {
	SenderID   string
	ReceiverID string
	Text       string
}
