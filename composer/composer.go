// Package composer implements the chat input bar: a bordered textarea
// with a character limit, a height that grows with the draft up to a cap,
// and recall of previously sent messages.
package composer

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/textarea"

	"github.com/ebenfield/chatkit/styles"
)

// Defaults, overridable via setters.
const (
	defaultPlaceholder = "Type a message…"
	defaultCharLimit   = 2000
	defaultMaxHeight   = 5
	defaultHistorySize = 100
)

// Model is the input bar component. Create it with New; it is not usable
// as a zero value.
type Model struct {
	ta textarea.Model
	ss *styles.StyleSet

	width     int
	maxHeight int

	// Sent-message history. histIdx == len(history) means not browsing;
	// draft holds the in-progress text while browsing.
	history     []string
	histIdx     int
	draft       string
	historySize int
}

// New creates an input bar with default settings. It starts focused.
func New(ss *styles.StyleSet) *Model {
	ta := textarea.New()
	ta.Placeholder = defaultPlaceholder
	ta.CharLimit = defaultCharLimit
	ta.ShowLineNumbers = false
	ta.SetHeight(1)
	ta.Focus()

	return &Model{
		ta:          ta,
		ss:          ss,
		maxHeight:   defaultMaxHeight,
		historySize: defaultHistorySize,
	}
}

// SetStyles swaps the style set (theme change).
func (m *Model) SetStyles(ss *styles.StyleSet) {
	m.ss = ss
}

// SetPlaceholder sets the text shown while the draft is empty.
func (m *Model) SetPlaceholder(s string) {
	m.ta.Placeholder = s
}

// SetCharLimit caps the draft length in characters. Zero means unlimited.
func (m *Model) SetCharLimit(n int) {
	m.ta.CharLimit = n
}

// SetMaxHeight caps how many lines the input bar grows to.
func (m *Model) SetMaxHeight(n int) {
	if n > 0 {
		m.maxHeight = n
	}
}

// SetHistorySize caps how many sent messages are kept for recall.
func (m *Model) SetHistorySize(n int) {
	if n >= 0 {
		m.historySize = n
	}
}

// SetWidth resizes the input bar. The textarea sits inside a one-cell
// border on each side.
func (m *Model) SetWidth(width int) {
	m.width = width
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	m.ta.SetWidth(inner)
}

// Height returns the current rendered height including the border, so
// the owner can size the message list around the input bar.
func (m *Model) Height() int {
	return m.ta.Height() + 2
}

// Focus gives the input bar keyboard focus.
func (m *Model) Focus() tea.Cmd {
	return m.ta.Focus()
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.ta.Blur()
}

// Focused reports whether the input bar has keyboard focus.
func (m *Model) Focused() bool {
	return m.ta.Focused()
}

// Value returns the current draft.
func (m *Model) Value() string {
	return m.ta.Value()
}

// SetValue replaces the current draft.
func (m *Model) SetValue(s string) {
	m.ta.SetValue(s)
	m.grow()
}

// Reset clears the draft and any history browsing state.
func (m *Model) Reset() {
	m.ta.Reset()
	m.ta.SetHeight(1)
	m.histIdx = len(m.history)
	m.draft = ""
}

// InsertNewline inserts a line break at the cursor.
func (m *Model) InsertNewline() {
	m.ta.InsertString("\n")
	m.grow()
}

// Submit returns the trimmed draft and clears it, recording it in the
// history. Blank drafts submit nothing.
func (m *Model) Submit() (string, bool) {
	text := strings.TrimSpace(m.ta.Value())
	if text == "" {
		return "", false
	}

	if n := len(m.history); n == 0 || m.history[n-1] != text {
		m.history = append(m.history, text)
		if len(m.history) > m.historySize {
			m.history = m.history[len(m.history)-m.historySize:]
		}
	}
	m.Reset()
	return text, true
}

// HistoryPrev replaces the draft with the previous sent message. The
// in-progress draft is stashed and restored when browsing moves past the
// newest entry again.
func (m *Model) HistoryPrev() bool {
	if m.histIdx == 0 || len(m.history) == 0 {
		return false
	}
	if m.histIdx == len(m.history) {
		m.draft = m.ta.Value()
	}
	m.histIdx--
	m.ta.SetValue(m.history[m.histIdx])
	m.grow()
	return true
}

// HistoryNext moves one entry forward, restoring the stashed draft at
// the end.
func (m *Model) HistoryNext() bool {
	if m.histIdx >= len(m.history) {
		return false
	}
	m.histIdx++
	if m.histIdx == len(m.history) {
		m.ta.SetValue(m.draft)
	} else {
		m.ta.SetValue(m.history[m.histIdx])
	}
	m.grow()
	return true
}

// History returns a copy of the sent-message history, oldest first.
func (m *Model) History() []string {
	out := make([]string, len(m.history))
	copy(out, m.history)
	return out
}

// Update forwards input events to the textarea and grows the bar with
// the draft.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	m.grow()
	return cmd
}

// View renders the input bar with a focus-dependent border.
func (m *Model) View() string {
	frame := m.ss.ComposerBlurred
	if m.ta.Focused() {
		frame = m.ss.ComposerFocused
	}
	return frame.Render(m.ta.View())
}

// grow adjusts the textarea height to fit the draft, up to the cap.
func (m *Model) grow() {
	h := m.ta.LineCount()
	if h < 1 {
		h = 1
	}
	if h > m.maxHeight {
		h = m.maxHeight
	}
	m.ta.SetHeight(h)
}
