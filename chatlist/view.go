package chatlist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ebenfield/chatkit/internal/util"
)

// View renders the visible window of the message list.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}
	return m.vp.View()
}

// refresh rebuilds the filtered view, the rendered content and the
// line-to-message map used for hit-testing.
func (m *Model) refresh() {
	m.visible = m.visible[:0]
	for i := range m.messages {
		if m.filter.Matches(m.messages[i]) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}

	if !m.ready {
		return
	}

	var lines []string
	m.rowToVisible = m.rowToVisible[:0]
	for vi, mi := range m.visible {
		block := m.renderMessage(m.messages[mi], vi == m.selected)
		for _, line := range strings.Split(block, "\n") {
			lines = append(lines, line)
			m.rowToVisible = append(m.rowToVisible, vi)
		}
		// Blank separator between messages.
		lines = append(lines, "")
		m.rowToVisible = append(m.rowToVisible, -1)
	}

	m.vp.SetContent(strings.Join(lines, "\n"))
	if m.follow {
		m.vp.GotoBottom()
	}
}

// renderMessage renders one message as a header line plus a wrapped body
// bubble. Outgoing messages are aligned to the right edge.
func (m *Model) renderMessage(msg Message, selected bool) string {
	header := m.renderHeader(msg, selected)

	bubble := m.ss.IncomingBubble
	if msg.Outgoing {
		bubble = m.ss.OutgoingBubble
	}

	maxBubble := m.width * 3 / 4
	if maxBubble < 10 {
		maxBubble = m.width
	}
	body := msg.Body
	if lipgloss.Width(body) > maxBubble {
		bubble = bubble.Width(maxBubble)
	}
	block := header + "\n" + bubble.Render(body)

	if msg.Outgoing {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, block)
	}
	return block
}

func (m *Model) renderHeader(msg Message, selected bool) string {
	var parts []string

	if selected {
		parts = append(parts, m.ss.Selection.Render(msg.Author))
	} else {
		parts = append(parts, m.ss.Author.Render(msg.Author))
	}

	if m.showTimestamps && !msg.Time.IsZero() {
		parts = append(parts, m.ss.Timestamp.Render(msg.Time.Format(m.timeFormat)))
	}

	if msg.Outgoing && msg.Status != "" {
		mark := msg.Status.Mark()
		switch msg.Status {
		case StatusSending:
			mark = m.ss.StatusSending.Render(mark)
		case StatusSent:
			mark = m.ss.StatusSent.Render(mark)
		case StatusFailed:
			mark = m.ss.StatusFailed.Render(mark)
		}
		parts = append(parts, mark)
	}

	return util.TruncateANSI(strings.Join(parts, " "), m.width)
}
