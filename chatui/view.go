package chatui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ebenfield/chatkit/keymap"
)

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}

	body := m.list.View()
	if m.showHelp {
		body = m.helpView()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.statusBar(),
		m.comp.View(),
	)
}

// statusBar renders the one-line strip between the list and the input
// bar. In filter mode it becomes the filter prompt.
func (m *Model) statusBar() string {
	if m.mode == keymap.ModeFilter {
		return m.ss.FilterPrompt.Render("/" + m.filterText)
	}

	parts := []string{string(m.mode)}
	if pattern := m.list.FilterPattern(); pattern != "" {
		parts = append(parts, fmt.Sprintf("filter:%s", pattern))
	}
	if n := m.list.Unread(); n > 0 {
		parts = append(parts, m.ss.UnreadBanner.Render(fmt.Sprintf(" %d new ", n)))
	}
	if m.mode == keymap.ModeScroll && !m.showHelp {
		parts = append(parts, m.ss.HelpKey.Render("?")+" help")
	}
	return m.ss.HelpBar.Width(m.width).Render(strings.Join(parts, "  "))
}

// helpView lists the current mode's bindings grouped by category.
func (m *Model) helpView() string {
	byCategory := m.km.GetBindingsByCategory(m.mode)

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s mode\n", m.mode))
	for _, cat := range categories {
		sb.WriteString("\n" + cat + "\n")
		for _, binding := range byCategory[cat] {
			sb.WriteString(fmt.Sprintf("  %s  %s\n",
				m.ss.HelpKey.Render(fmt.Sprintf("%-10s", binding.String())),
				binding.Description,
			))
		}
	}
	return sb.String()
}
