// Package keymap provides declarative, mode-aware key bindings for chatkit.
// Each input mode has its own binding table; the composed widget looks up
// the command for an incoming key in the active mode's table and dispatches
// on the command, keeping key handling out of Update switch statements.
package keymap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the chat UI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeCompose Mode = "compose" // Typing in the input bar (default)
	ModeScroll  Mode = "scroll"  // Navigating the message list
	ModeSelect  Mode = "select"  // A message row is selected
	ModeFilter  Mode = "filter"  // Typing a message filter pattern
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Compose mode commands
const (
	CmdSend          Command = "send"
	CmdInsertNewline Command = "insert_newline"
	CmdHistoryPrev   Command = "history_prev"
	CmdHistoryNext   Command = "history_next"
	CmdEnterScroll   Command = "enter_scroll"
	CmdQuit          Command = "quit"
)

// Scroll mode commands
const (
	CmdScrollUp       Command = "scroll_up"
	CmdScrollDown     Command = "scroll_down"
	CmdScrollPageUp   Command = "scroll_page_up"
	CmdScrollPageDown Command = "scroll_page_down"
	CmdScrollToTop    Command = "scroll_to_top"
	CmdScrollToBottom Command = "scroll_to_bottom"
	CmdEnterSelect    Command = "enter_select"
	CmdEnterFilter    Command = "enter_filter"
	CmdExitScroll     Command = "exit_scroll"
	CmdToggleHelp     Command = "toggle_help"
)

// Select mode commands
const (
	CmdSelectPrev    Command = "select_prev"
	CmdSelectNext    Command = "select_next"
	CmdRetryMessage  Command = "retry_message"
	CmdDeleteMessage Command = "delete_message"
	CmdExitSelect    Command = "exit_select"
)

// Filter mode commands
const (
	CmdApplyFilter  Command = "apply_filter"
	CmdCancelFilter Command = "cancel_filter"
)

// Modifier represents keyboard modifiers (Ctrl, Alt, Shift).
type Modifier uint8

const (
	ModNone Modifier = 0
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
)

// String returns a human-readable representation of modifiers.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var s string
	if m&ModCtrl != 0 {
		s += "ctrl+"
	}
	if m&ModAlt != 0 {
		s += "alt+"
	}
	if m&ModShift != 0 {
		s += "shift+"
	}
	return s
}

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the key for this binding. For special keys, use
	// tea.KeyType constants (e.g., tea.KeyEnter). For rune keys, use
	// tea.KeyRunes and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys (when KeyType is tea.KeyRunes).
	Rune rune

	// Modifiers contains the modifier keys that must be pressed.
	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string

	// Category groups related bindings together in help display.
	Category string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	wantAlt := kb.Modifiers&ModAlt != 0
	if msg.Alt != wantAlt {
		return false
	}

	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}

	// A zero Rune is a catch-all binding for any rune.
	if kb.Rune == 0 {
		return true
	}
	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	prefix := kb.Modifiers.String()

	if kb.KeyType != tea.KeyRunes {
		return prefix + kb.KeyType.String()
	}

	switch kb.Rune {
	case ' ':
		return prefix + "space"
	default:
		return prefix + string(kb.Rune)
	}
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	// Name identifies this keymap (e.g., "default").
	Name string

	// Description provides a human-readable description.
	Description string

	// Modes maps each mode to its bindings.
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// GetBindingsForCommand returns all bindings that trigger a specific
// command in a mode. Useful for "press X or Y to do Z" help lines.
func (km *Keymap) GetBindingsForCommand(cmd Command, mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	var result []KeyBinding
	for _, binding := range mb.Bindings {
		if binding.Command == cmd {
			result = append(result, binding)
		}
	}
	return result
}

// GetBindingsByCategory returns bindings grouped by category for a mode.
func (km *Keymap) GetBindingsByCategory(mode Mode) map[string][]KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	result := make(map[string][]KeyBinding)
	for _, binding := range mb.Bindings {
		cat := binding.Category
		if cat == "" {
			cat = "Other"
		}
		result[cat] = append(result[cat], binding)
	}
	return result
}

// ParseKeySpec parses a key specification string into KeyType, Rune, and
// Modifiers. Examples: "ctrl+r", "shift+tab", "j", "enter", "alt+left".
func ParseKeySpec(spec string) (keyType tea.KeyType, r rune, mods Modifier, err error) {
	remaining := spec
	for {
		switch {
		case len(remaining) > 5 && remaining[:5] == "ctrl+":
			mods |= ModCtrl
			remaining = remaining[5:]
		case len(remaining) > 4 && remaining[:4] == "alt+":
			mods |= ModAlt
			remaining = remaining[4:]
		case len(remaining) > 6 && remaining[:6] == "shift+":
			mods |= ModShift
			remaining = remaining[6:]
		default:
			goto parseKey
		}
	}

parseKey:
	switch remaining {
	case "enter":
		return tea.KeyEnter, 0, mods, nil
	case "tab":
		if mods&ModShift != 0 {
			return tea.KeyShiftTab, 0, mods &^ ModShift, nil
		}
		return tea.KeyTab, 0, mods, nil
	case "esc", "escape":
		return tea.KeyEsc, 0, mods, nil
	case "space":
		return tea.KeySpace, 0, mods, nil
	case "backspace":
		return tea.KeyBackspace, 0, mods, nil
	case "delete":
		return tea.KeyDelete, 0, mods, nil
	case "up":
		return tea.KeyUp, 0, mods, nil
	case "down":
		return tea.KeyDown, 0, mods, nil
	case "left":
		return tea.KeyLeft, 0, mods, nil
	case "right":
		return tea.KeyRight, 0, mods, nil
	case "home":
		return tea.KeyHome, 0, mods, nil
	case "end":
		return tea.KeyEnd, 0, mods, nil
	case "pgup", "pageup":
		return tea.KeyPgUp, 0, mods, nil
	case "pgdown", "pagedown":
		return tea.KeyPgDown, 0, mods, nil
	}

	// ctrl+letter combinations map to dedicated key types.
	if mods&ModCtrl != 0 && len(remaining) == 1 {
		ch := remaining[0]
		if ch >= 'a' && ch <= 'z' {
			ctrlKey := tea.KeyCtrlA + tea.KeyType(ch-'a')
			return ctrlKey, 0, mods &^ ModCtrl, nil
		}
	}

	if len(remaining) == 1 {
		return tea.KeyRunes, rune(remaining[0]), mods, nil
	}

	return 0, 0, 0, fmt.Errorf("unrecognized key spec: %s", spec)
}
