// Package chatlist implements the scrollable message list component. The
// list is a bubbletea sub-model backed by a bubbles viewport; every
// mutation of the message collection (append, prepend, update, remove)
// goes through a serialqueue so that asynchronous batch updates apply one
// at a time, in order, and never interleave mid-render.
package chatlist

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/ebenfield/chatkit/serialqueue"
	"github.com/ebenfield/chatkit/styles"
)

// Default limits, overridable via setters.
const (
	defaultMaxMessages = 500
	defaultTimeFormat  = "15:04"
)

// Model is the message list component. Create it with New; it is not
// usable as a zero value. All methods must be called from the owning
// bubbletea Update goroutine.
type Model struct {
	ss      *styles.StyleSet
	updates *serialqueue.Queue
	vp      viewport.Model

	messages []Message
	filter   *Filter

	// visible holds indexes into messages after filtering; rowToVisible
	// maps each rendered line to an index into visible (or -1 for
	// separator lines).
	visible      []int
	rowToVisible []int

	selected int // index into visible, -1 when nothing is selected
	follow   bool
	unread   int

	width  int
	height int
	ready  bool

	maxMessages    int
	showTimestamps bool
	timeFormat     string
}

// New creates an empty message list. The underlying update queue starts
// stopped; it is started by the first SetSize call, when the UI is ready
// to present content.
func New(ss *styles.StyleSet) *Model {
	return &Model{
		ss:             ss,
		updates:        serialqueue.New(),
		selected:       -1,
		follow:         true,
		maxMessages:    defaultMaxMessages,
		showTimestamps: true,
		timeFormat:     defaultTimeFormat,
	}
}

// SetMaxMessages caps how many messages the list retains. Older messages
// are dropped from the front on append. Zero or negative means unlimited.
func (m *Model) SetMaxMessages(n int) {
	m.maxMessages = n
}

// SetShowTimestamps toggles timestamp rendering in message headers.
func (m *Model) SetShowTimestamps(show bool) {
	m.showTimestamps = show
}

// SetTimeFormat sets the time.Format layout used for timestamps.
func (m *Model) SetTimeFormat(layout string) {
	if layout != "" {
		m.timeFormat = layout
	}
}

// SetStyles swaps the style set (theme change) and re-renders.
func (m *Model) SetStyles(ss *styles.StyleSet) {
	m.ss = ss
	m.refresh()
}

// Updates exposes the serial update queue, for callers that need to
// sequence their own asynchronous work against list mutations and for
// diagnostics.
func (m *Model) Updates() *serialqueue.Queue {
	return m.updates
}

// SetSize resizes the list. The first call marks the component ready and
// starts the update queue, draining any mutations enqueued before the UI
// appeared.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	if !m.ready {
		m.vp = viewport.New(width, height)
		m.ready = true
		m.refresh()
		m.updates.Start()
		return
	}

	m.vp.Width = width
	m.vp.Height = height
	m.refresh()
}

// Ready reports whether the component has received its initial size.
func (m *Model) Ready() bool {
	return m.ready
}

// Close stops the update queue and detaches any in-flight task.
func (m *Model) Close() {
	m.updates.Close()
}

// Enqueue adds an arbitrary task to the update queue. The task runs after
// every previously enqueued mutation and blocks later ones until it calls
// complete; use it to order external async work (like a send
// acknowledgment) against list updates.
func (m *Model) Enqueue(task serialqueue.Task) {
	m.updates.Enqueue(task)
}

// apply enqueues a synchronous mutation as a queue task.
func (m *Model) apply(mutate func()) {
	m.updates.Enqueue(func(complete func()) {
		mutate()
		m.refresh()
		complete()
	})
}

// Append adds messages to the end of the list. If the viewer is at the
// bottom the list follows; otherwise the unread counter grows.
func (m *Model) Append(msgs ...Message) {
	m.apply(func() {
		m.messages = append(m.messages, msgs...)
		if m.maxMessages > 0 && len(m.messages) > m.maxMessages {
			m.messages = m.messages[len(m.messages)-m.maxMessages:]
		}
		if !m.follow {
			m.unread += len(msgs)
		}
	})
}

// Prepend inserts messages at the front of the list (history backfill).
// The scroll position is preserved so the viewer does not jump.
func (m *Model) Prepend(msgs ...Message) {
	m.updates.Enqueue(func(complete func()) {
		before := len(m.rowToVisible)
		m.messages = append(append([]Message{}, msgs...), m.messages...)
		// Same retention direction as Append: overflow drops the oldest,
		// never the newest rows a bottom-following viewer is reading.
		if m.maxMessages > 0 && len(m.messages) > m.maxMessages {
			m.messages = m.messages[len(m.messages)-m.maxMessages:]
		}
		m.refresh()
		if m.ready && !m.follow {
			if added := len(m.rowToVisible) - before; added > 0 {
				m.vp.SetYOffset(m.vp.YOffset + added)
			}
		}
		complete()
	})
}

// UpdateMessage mutates the message with the given ID in place. Unknown
// IDs are ignored.
func (m *Model) UpdateMessage(id string, fn func(*Message)) {
	m.apply(func() {
		for i := range m.messages {
			if m.messages[i].ID == id {
				fn(&m.messages[i])
				return
			}
		}
	})
}

// SetStatus updates the delivery status of the message with the given ID.
func (m *Model) SetStatus(id string, status Status) {
	m.UpdateMessage(id, func(msg *Message) {
		msg.Status = status
	})
}

// Remove deletes the message with the given ID. Unknown IDs are ignored.
func (m *Model) Remove(id string) {
	m.apply(func() {
		for i := range m.messages {
			if m.messages[i].ID == id {
				m.messages = append(m.messages[:i], m.messages[i+1:]...)
				return
			}
		}
	})
}

// Messages returns a copy of the full (unfiltered) message slice.
func (m *Model) Messages() []Message {
	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// Len returns the number of retained messages.
func (m *Model) Len() int {
	return len(m.messages)
}

// VisibleLen returns the number of messages passing the current filter.
func (m *Model) VisibleLen() int {
	return len(m.visible)
}

// Unread returns how many messages arrived while scrolled away from the
// bottom.
func (m *Model) Unread() int {
	return m.unread
}

// AtBottom reports whether the viewport is scrolled to the newest message.
func (m *Model) AtBottom() bool {
	return !m.ready || m.vp.AtBottom()
}

// SetFilter compiles and applies a glob filter over author and body.
// An empty pattern clears the filter.
func (m *Model) SetFilter(pattern string) error {
	f, err := NewFilter(pattern)
	if err != nil {
		return err
	}
	m.filter = f
	m.selected = -1
	m.refresh()
	return nil
}

// ClearFilter removes any active filter.
func (m *Model) ClearFilter() {
	m.filter = nil
	m.selected = -1
	m.refresh()
}

// FilterPattern returns the active filter pattern, or "".
func (m *Model) FilterPattern() string {
	return m.filter.Pattern()
}

// Select marks the visible message at index i as selected.
func (m *Model) Select(i int) bool {
	if i < 0 || i >= len(m.visible) {
		return false
	}
	m.selected = i
	m.refresh()
	m.scrollToSelected()
	return true
}

// SelectLast selects the newest visible message.
func (m *Model) SelectLast() bool {
	return m.Select(len(m.visible) - 1)
}

// SelectPrev moves the selection one message up.
func (m *Model) SelectPrev() bool {
	if m.selected <= 0 {
		return false
	}
	return m.Select(m.selected - 1)
}

// SelectNext moves the selection one message down.
func (m *Model) SelectNext() bool {
	if m.selected < 0 || m.selected >= len(m.visible)-1 {
		return false
	}
	return m.Select(m.selected + 1)
}

// Selected returns the currently selected message.
func (m *Model) Selected() (Message, bool) {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return Message{}, false
	}
	return m.messages[m.visible[m.selected]], true
}

// ClearSelection removes the selection highlight.
func (m *Model) ClearSelection() {
	m.selected = -1
	m.refresh()
}

// HitTest maps a y coordinate (row within the viewport, 0 = top visible
// line) to a visible message index.
func (m *Model) HitTest(y int) (int, bool) {
	if !m.ready || y < 0 {
		return 0, false
	}
	line := m.vp.YOffset + y
	if line >= len(m.rowToVisible) {
		return 0, false
	}
	idx := m.rowToVisible[line]
	if idx < 0 {
		return 0, false
	}
	return idx, true
}

// ClickAt selects the message under the given viewport-relative position.
func (m *Model) ClickAt(_, y int) bool {
	idx, ok := m.HitTest(y)
	if !ok {
		return false
	}
	return m.Select(idx)
}

// ScrollUp scrolls up by n lines.
func (m *Model) ScrollUp(n int) {
	if !m.ready {
		return
	}
	m.vp.LineUp(n)
	m.syncFollow()
}

// ScrollDown scrolls down by n lines.
func (m *Model) ScrollDown(n int) {
	if !m.ready {
		return
	}
	m.vp.LineDown(n)
	m.syncFollow()
}

// PageUp scrolls up by one viewport height.
func (m *Model) PageUp() {
	if !m.ready {
		return
	}
	m.vp.ViewUp()
	m.syncFollow()
}

// PageDown scrolls down by one viewport height.
func (m *Model) PageDown() {
	if !m.ready {
		return
	}
	m.vp.ViewDown()
	m.syncFollow()
}

// GotoTop jumps to the oldest retained message.
func (m *Model) GotoTop() {
	if !m.ready {
		return
	}
	m.vp.GotoTop()
	m.syncFollow()
}

// GotoBottom jumps to the newest message and resumes following.
func (m *Model) GotoBottom() {
	if !m.ready {
		return
	}
	m.vp.GotoBottom()
	m.syncFollow()
}

// Update handles bubbletea messages the component cares about (mouse
// wheel scrolling). Key handling lives with the owner, which routes
// commands through a keymap.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.ready {
		return nil
	}
	switch msg := msg.(type) {
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		m.syncFollow()
		return cmd
	}
	return nil
}

// syncFollow records whether the viewer is at the bottom and clears the
// unread counter once they are.
func (m *Model) syncFollow() {
	m.follow = m.vp.AtBottom()
	if m.follow {
		m.unread = 0
	}
}

// scrollToSelected ensures the selected message is on screen.
func (m *Model) scrollToSelected() {
	if !m.ready || m.selected < 0 {
		return
	}
	for line, idx := range m.rowToVisible {
		if idx == m.selected {
			if line < m.vp.YOffset {
				m.vp.SetYOffset(line)
			} else if line >= m.vp.YOffset+m.vp.Height {
				m.vp.SetYOffset(line - m.vp.Height + 1)
			}
			m.follow = m.vp.AtBottom()
			return
		}
	}
}
