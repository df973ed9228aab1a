package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Purple/green dark theme
	ThemeDracula ThemeName = "dracula" // Dracula theme colors
	ThemeNord    ThemeName = "nord"    // Nord theme - cool blue-gray
	ThemeGruvbox ThemeName = "gruvbox" // Gruvbox retro groove
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeDracula),
		string(ThemeNord),
		string(ThemeGruvbox),
	}
}

// ValidThemes returns all valid theme names (built-in + custom).
func ValidThemes() []string {
	themes := BuiltinThemes()
	themes = append(themes, CustomThemeNames()...)
	return themes
}

// IsValidTheme checks if a theme name is valid (built-in or custom).
func IsValidTheme(name string) bool {
	if slices.Contains(BuiltinThemes(), name) {
		return true
	}
	return IsCustomTheme(name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent color (active elements, focused borders)
	Primary lipgloss.Color
	// Secondary accent color (success states, the send hint)
	Secondary lipgloss.Color
	// Warning color (pending/retrying states)
	Warning lipgloss.Color
	// Error color (failed sends)
	Error lipgloss.Color
	// Muted color (timestamps, de-emphasized text)
	Muted lipgloss.Color
	// Surface color (bubble and banner backgrounds)
	Surface lipgloss.Color
	// Text color (primary text)
	Text lipgloss.Color
	// Border color (frames, separators)
	Border lipgloss.Color

	// Bubble colors
	IncomingBubble lipgloss.Color
	OutgoingBubble lipgloss.Color
	IncomingText   lipgloss.Color
	OutgoingText   lipgloss.Color

	// Message metadata
	Author    lipgloss.Color
	Timestamp lipgloss.Color

	// Delivery status marks
	StatusSending lipgloss.Color
	StatusSent    lipgloss.Color
	StatusFailed  lipgloss.Color

	// Selection highlight
	SelectionBg lipgloss.Color
	SelectionFg lipgloss.Color

	// Unread banner
	UnreadBg lipgloss.Color
	UnreadFg lipgloss.Color
}

// DefaultPalette returns the default purple/green dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"),
		Secondary: lipgloss.Color("#10B981"),
		Warning:   lipgloss.Color("#F59E0B"),
		Error:     lipgloss.Color("#F87171"),
		Muted:     lipgloss.Color("#9CA3AF"),
		Surface:   lipgloss.Color("#1F2937"),
		Text:      lipgloss.Color("#F9FAFB"),
		Border:    lipgloss.Color("#6B7280"),

		IncomingBubble: lipgloss.Color("#1F2937"),
		OutgoingBubble: lipgloss.Color("#4C1D95"),
		IncomingText:   lipgloss.Color("#F9FAFB"),
		OutgoingText:   lipgloss.Color("#F9FAFB"),

		Author:    lipgloss.Color("#A78BFA"),
		Timestamp: lipgloss.Color("#9CA3AF"),

		StatusSending: lipgloss.Color("#F59E0B"),
		StatusSent:    lipgloss.Color("#10B981"),
		StatusFailed:  lipgloss.Color("#F87171"),

		SelectionBg: lipgloss.Color("#374151"),
		SelectionFg: lipgloss.Color("#F9FAFB"),

		UnreadBg: lipgloss.Color("#4C1D95"),
		UnreadFg: lipgloss.Color("#F9FAFB"),
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"),
		Secondary: lipgloss.Color("#50FA7B"),
		Warning:   lipgloss.Color("#F1FA8C"),
		Error:     lipgloss.Color("#FF5555"),
		Muted:     lipgloss.Color("#6272A4"),
		Surface:   lipgloss.Color("#282A36"),
		Text:      lipgloss.Color("#F8F8F2"),
		Border:    lipgloss.Color("#6272A4"),

		IncomingBubble: lipgloss.Color("#282A36"),
		OutgoingBubble: lipgloss.Color("#44475A"),
		IncomingText:   lipgloss.Color("#F8F8F2"),
		OutgoingText:   lipgloss.Color("#F8F8F2"),

		Author:    lipgloss.Color("#FF79C6"),
		Timestamp: lipgloss.Color("#6272A4"),

		StatusSending: lipgloss.Color("#F1FA8C"),
		StatusSent:    lipgloss.Color("#50FA7B"),
		StatusFailed:  lipgloss.Color("#FF5555"),

		SelectionBg: lipgloss.Color("#44475A"),
		SelectionFg: lipgloss.Color("#F8F8F2"),

		UnreadBg: lipgloss.Color("#44475A"),
		UnreadFg: lipgloss.Color("#BD93F9"),
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"),
		Secondary: lipgloss.Color("#A3BE8C"),
		Warning:   lipgloss.Color("#EBCB8B"),
		Error:     lipgloss.Color("#BF616A"),
		Muted:     lipgloss.Color("#616E88"),
		Surface:   lipgloss.Color("#2E3440"),
		Text:      lipgloss.Color("#ECEFF4"),
		Border:    lipgloss.Color("#4C566A"),

		IncomingBubble: lipgloss.Color("#3B4252"),
		OutgoingBubble: lipgloss.Color("#434C5E"),
		IncomingText:   lipgloss.Color("#ECEFF4"),
		OutgoingText:   lipgloss.Color("#ECEFF4"),

		Author:    lipgloss.Color("#81A1C1"),
		Timestamp: lipgloss.Color("#616E88"),

		StatusSending: lipgloss.Color("#EBCB8B"),
		StatusSent:    lipgloss.Color("#A3BE8C"),
		StatusFailed:  lipgloss.Color("#BF616A"),

		SelectionBg: lipgloss.Color("#434C5E"),
		SelectionFg: lipgloss.Color("#ECEFF4"),

		UnreadBg: lipgloss.Color("#5E81AC"),
		UnreadFg: lipgloss.Color("#ECEFF4"),
	}
}

// GruvboxPalette returns the Gruvbox retro groove palette.
func GruvboxPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#D3869B"),
		Secondary: lipgloss.Color("#B8BB26"),
		Warning:   lipgloss.Color("#FABD2F"),
		Error:     lipgloss.Color("#FB4934"),
		Muted:     lipgloss.Color("#928374"),
		Surface:   lipgloss.Color("#282828"),
		Text:      lipgloss.Color("#EBDBB2"),
		Border:    lipgloss.Color("#665C54"),

		IncomingBubble: lipgloss.Color("#3C3836"),
		OutgoingBubble: lipgloss.Color("#504945"),
		IncomingText:   lipgloss.Color("#EBDBB2"),
		OutgoingText:   lipgloss.Color("#EBDBB2"),

		Author:    lipgloss.Color("#83A598"),
		Timestamp: lipgloss.Color("#928374"),

		StatusSending: lipgloss.Color("#FABD2F"),
		StatusSent:    lipgloss.Color("#B8BB26"),
		StatusFailed:  lipgloss.Color("#FB4934"),

		SelectionBg: lipgloss.Color("#504945"),
		SelectionFg: lipgloss.Color("#EBDBB2"),

		UnreadBg: lipgloss.Color("#458588"),
		UnreadFg: lipgloss.Color("#EBDBB2"),
	}
}

// PaletteFor returns the palette for the given theme name. Custom themes
// take precedence over built-ins; unknown names fall back to the default
// palette.
func PaletteFor(name ThemeName) *ColorPalette {
	if theme := GetCustomTheme(name); theme != nil {
		return theme.ToPalette()
	}
	switch name {
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	case ThemeGruvbox:
		return GruvboxPalette()
	default:
		return DefaultPalette()
	}
}
