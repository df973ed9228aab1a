package chatui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebenfield/chatkit/chatlist"
	"github.com/ebenfield/chatkit/keymap"
	"github.com/ebenfield/chatkit/styles"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.list.Update(msg)

	case ReceivedMsg:
		m.list.Append(msg.Message)
		return m, nil

	case SendResultMsg:
		status := chatlist.StatusSent
		if msg.Err != nil {
			status = chatlist.StatusFailed
			m.log.Warn("send failed", "message_id", msg.ID, "error", msg.Err)
		}
		m.list.SetStatus(msg.ID, status)
		return m, nil

	case ThemeReloadedMsg:
		if msg.Name == m.cfg.UI.Theme {
			m.SetTheme(styles.ThemeName(msg.Name))
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if cmd, ok := m.km.GetBinding(msg, m.mode); ok {
		return m.dispatch(cmd)
	}

	// Unbound keys go to whichever component is accepting text.
	switch m.mode {
	case keymap.ModeCompose:
		return m.comp.Update(msg)
	case keymap.ModeFilter:
		m.editFilter(msg)
	}
	return nil
}

func (m *Model) editFilter(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		if msg.Type == tea.KeySpace {
			m.filterText += " "
		} else {
			m.filterText += string(msg.Runes)
		}
	case tea.KeyBackspace:
		if len(m.filterText) > 0 {
			runes := []rune(m.filterText)
			m.filterText = string(runes[:len(runes)-1])
		}
	}
}

func (m *Model) dispatch(cmd keymap.Command) tea.Cmd {
	switch cmd {
	case keymap.CmdSend:
		return m.submitDraft()
	case keymap.CmdInsertNewline:
		m.comp.InsertNewline()
		m.layout()
	case keymap.CmdHistoryPrev:
		if m.comp.HistoryPrev() {
			m.layout()
		}
	case keymap.CmdHistoryNext:
		if m.comp.HistoryNext() {
			m.layout()
		}
	case keymap.CmdQuit:
		return tea.Quit

	case keymap.CmdEnterScroll:
		m.mode = keymap.ModeScroll
		m.comp.Blur()
	case keymap.CmdExitScroll:
		m.mode = keymap.ModeCompose
		m.showHelp = false
		return m.comp.Focus()
	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp

	case keymap.CmdScrollUp:
		m.list.ScrollUp(1)
	case keymap.CmdScrollDown:
		m.list.ScrollDown(1)
	case keymap.CmdScrollPageUp:
		m.list.PageUp()
	case keymap.CmdScrollPageDown:
		m.list.PageDown()
	case keymap.CmdScrollToTop:
		m.list.GotoTop()
	case keymap.CmdScrollToBottom:
		m.list.GotoBottom()

	case keymap.CmdEnterSelect:
		m.mode = keymap.ModeSelect
		m.list.SelectLast()
	case keymap.CmdExitSelect:
		m.list.ClearSelection()
		m.mode = keymap.ModeScroll
	case keymap.CmdSelectPrev:
		m.list.SelectPrev()
	case keymap.CmdSelectNext:
		m.list.SelectNext()
	case keymap.CmdRetryMessage:
		return m.retrySelected()
	case keymap.CmdDeleteMessage:
		if sel, ok := m.list.Selected(); ok {
			m.list.Remove(sel.ID)
		}

	case keymap.CmdEnterFilter:
		m.mode = keymap.ModeFilter
		m.filterText = m.list.FilterPattern()
	case keymap.CmdApplyFilter:
		if err := m.list.SetFilter(m.filterText); err != nil {
			m.log.Warn("invalid filter pattern", "pattern", m.filterText, "error", err)
		}
		m.mode = keymap.ModeScroll
	case keymap.CmdCancelFilter:
		m.filterText = ""
		m.list.ClearFilter()
		m.mode = keymap.ModeScroll
	}
	return nil
}

// submitDraft performs the optimistic send: the message lands in the list
// as "sending" immediately, and the transport result follows as a
// SendResultMsg.
func (m *Model) submitDraft() tea.Cmd {
	text, ok := m.comp.Submit()
	if !ok {
		return nil
	}
	m.layout()

	out := chatlist.Message{
		ID:       m.nextID(),
		Author:   m.self,
		Body:     text,
		Time:     timeNow(),
		Outgoing: true,
		Status:   chatlist.StatusSending,
	}
	m.list.Append(out)
	m.log.Debug("message queued for send", "message_id", out.ID)
	return sendCmd(m.send, out)
}

func (m *Model) retrySelected() tea.Cmd {
	sel, ok := m.list.Selected()
	if !ok || sel.Status != chatlist.StatusFailed {
		return nil
	}
	m.list.SetStatus(sel.ID, chatlist.StatusSending)
	m.log.Debug("retrying message", "message_id", sel.ID)
	return sendCmd(m.send, sel)
}
