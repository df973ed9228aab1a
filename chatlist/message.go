package chatlist

import "time"

// Status represents the delivery state of a message.
type Status string

const (
	// StatusSending indicates an outgoing message not yet acknowledged.
	StatusSending Status = "sending"

	// StatusSent indicates the message was delivered.
	StatusSent Status = "sent"

	// StatusFailed indicates the send failed and may be retried.
	StatusFailed Status = "failed"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Mark returns the single-character delivery mark shown next to outgoing
// messages.
func (s Status) Mark() string {
	switch s {
	case StatusSending:
		return "…"
	case StatusSent:
		return "✓"
	case StatusFailed:
		return "✗"
	default:
		return ""
	}
}

// Message is a single chat message displayed in the list.
type Message struct {
	// ID uniquely identifies the message within the list.
	ID string

	// Author is the display name of the sender.
	Author string

	// Body is the message text. May contain newlines.
	Body string

	// Time is when the message was sent or received.
	Time time.Time

	// Outgoing is true for messages sent by the local user.
	Outgoing bool

	// Status is the delivery state. Only meaningful for outgoing messages.
	Status Status
}
