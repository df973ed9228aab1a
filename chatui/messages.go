package chatui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebenfield/chatkit/chatlist"
)

// ReceivedMsg delivers an inbound message into the widget. Transports
// running outside the bubbletea goroutine should send it through
// Program.Send rather than touching the model directly.
type ReceivedMsg struct {
	Message chatlist.Message
}

// SendResultMsg reports the outcome of an asynchronous send attempt.
type SendResultMsg struct {
	ID  string
	Err error
}

// ThemeReloadedMsg announces that a custom theme file was re-registered.
// The widget rebuilds its styles when the active theme is the one named.
type ThemeReloadedMsg struct {
	Name string
}

// SendFunc delivers an outgoing message to the transport. It runs on a
// command goroutine and may block; the returned error marks the message
// as failed.
type SendFunc func(msg chatlist.Message) error

func sendCmd(send SendFunc, msg chatlist.Message) tea.Cmd {
	return func() tea.Msg {
		if send == nil {
			return SendResultMsg{ID: msg.ID}
		}
		return SendResultMsg{ID: msg.ID, Err: send(msg)}
	}
}
