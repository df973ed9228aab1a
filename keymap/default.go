package keymap

import tea "github.com/charmbracelet/bubbletea"

// Default returns the default chatkit key binding configuration.
func Default() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default chatkit key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeCompose: defaultComposeBindings(),
			ModeScroll:  defaultScrollBindings(),
			ModeSelect:  defaultSelectBindings(),
			ModeFilter:  defaultFilterBindings(),
		},
	}
}

func defaultComposeBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeCompose,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdSend, Description: "Send message", Category: "Composing"},
			{KeyType: tea.KeyEnter, Modifiers: ModAlt, Command: CmdInsertNewline, Description: "Insert newline", Category: "Composing"},
			{KeyType: tea.KeyCtrlP, Command: CmdHistoryPrev, Description: "Previous sent message", Category: "History"},
			{KeyType: tea.KeyCtrlN, Command: CmdHistoryNext, Description: "Next sent message", Category: "History"},
			{KeyType: tea.KeyEsc, Command: CmdEnterScroll, Description: "Browse messages", Category: "Navigation"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Exit"},
		},
	}
}

func defaultScrollBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeScroll,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdScrollUp, Description: "Scroll up", Category: "Scrolling"},
			{KeyType: tea.KeyUp, Command: CmdScrollUp, Description: "Scroll up", Category: "Scrolling"},
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdScrollDown, Description: "Scroll down", Category: "Scrolling"},
			{KeyType: tea.KeyDown, Command: CmdScrollDown, Description: "Scroll down", Category: "Scrolling"},
			{KeyType: tea.KeyCtrlB, Command: CmdScrollPageUp, Description: "Page up", Category: "Scrolling"},
			{KeyType: tea.KeyPgUp, Command: CmdScrollPageUp, Description: "Page up", Category: "Scrolling"},
			{KeyType: tea.KeyCtrlF, Command: CmdScrollPageDown, Description: "Page down", Category: "Scrolling"},
			{KeyType: tea.KeyPgDown, Command: CmdScrollPageDown, Description: "Page down", Category: "Scrolling"},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdScrollToTop, Description: "Go to top", Category: "Scrolling"},
			{KeyType: tea.KeyRunes, Rune: 'G', Command: CmdScrollToBottom, Description: "Go to bottom", Category: "Scrolling"},
			{KeyType: tea.KeyRunes, Rune: 'v', Command: CmdEnterSelect, Description: "Select message", Category: "Modes"},
			{KeyType: tea.KeyRunes, Rune: '/', Command: CmdEnterFilter, Description: "Filter messages", Category: "Modes"},
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Toggle help", Category: "Modes"},
			{KeyType: tea.KeyRunes, Rune: 'i', Command: CmdExitScroll, Description: "Back to composing", Category: "Navigation"},
			{KeyType: tea.KeyEsc, Command: CmdExitScroll, Description: "Back to composing", Category: "Navigation"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Exit"},
		},
	}
}

func defaultSelectBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeSelect,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdSelectPrev, Description: "Previous message", Category: "Selection"},
			{KeyType: tea.KeyUp, Command: CmdSelectPrev, Description: "Previous message", Category: "Selection"},
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdSelectNext, Description: "Next message", Category: "Selection"},
			{KeyType: tea.KeyDown, Command: CmdSelectNext, Description: "Next message", Category: "Selection"},
			{KeyType: tea.KeyRunes, Rune: 'r', Command: CmdRetryMessage, Description: "Retry failed send", Category: "Actions"},
			{KeyType: tea.KeyRunes, Rune: 'd', Command: CmdDeleteMessage, Description: "Delete message", Category: "Actions"},
			{KeyType: tea.KeyEsc, Command: CmdExitSelect, Description: "Back to browsing", Category: "Navigation"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Exit"},
		},
	}
}

func defaultFilterBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeFilter,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdApplyFilter, Description: "Apply filter", Category: "Filtering"},
			{KeyType: tea.KeyEsc, Command: CmdCancelFilter, Description: "Cancel filter", Category: "Filtering"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Exit"},
		},
	}
}
