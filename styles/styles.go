// Package styles provides the lipgloss styles used by chatkit components.
// Styles are generated from a ColorPalette so that switching themes (or
// live-reloading a custom theme file) regenerates every style in one place.
package styles

import "github.com/charmbracelet/lipgloss"

// StyleSet contains all lipgloss styles built from a color palette.
type StyleSet struct {
	// Colors from the palette, for callers that compose their own styles
	PrimaryColor lipgloss.Color
	MutedColor   lipgloss.Color
	ErrorColor   lipgloss.Color
	BorderColor  lipgloss.Color

	// Convenience styles for colors
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style

	// Message bubbles
	IncomingBubble lipgloss.Style
	OutgoingBubble lipgloss.Style

	// Message metadata
	Author    lipgloss.Style
	Timestamp lipgloss.Style

	// Delivery status marks
	StatusSending lipgloss.Style
	StatusSent    lipgloss.Style
	StatusFailed  lipgloss.Style

	// Selection highlight for the focused message row
	Selection lipgloss.Style

	// Unread banner shown when new messages arrive while scrolled up
	UnreadBanner lipgloss.Style

	// Composer frame, focused and blurred
	ComposerFocused lipgloss.Style
	ComposerBlurred lipgloss.Style

	// List frame
	ListFrame lipgloss.Style

	// Help bar
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	// Filter prompt line
	FilterPrompt lipgloss.Style
}

// New builds a StyleSet from the named theme.
func New(theme ThemeName) *StyleSet {
	return FromPalette(PaletteFor(theme))
}

// FromPalette builds a StyleSet from the given palette.
func FromPalette(p *ColorPalette) *StyleSet {
	return &StyleSet{
		PrimaryColor: p.Primary,
		MutedColor:   p.Muted,
		ErrorColor:   p.Error,
		BorderColor:  p.Border,

		Primary:   lipgloss.NewStyle().Foreground(p.Primary),
		Secondary: lipgloss.NewStyle().Foreground(p.Secondary),
		Warning:   lipgloss.NewStyle().Foreground(p.Warning),
		Error:     lipgloss.NewStyle().Foreground(p.Error),
		Muted:     lipgloss.NewStyle().Foreground(p.Muted),
		Text:      lipgloss.NewStyle().Foreground(p.Text),

		IncomingBubble: lipgloss.NewStyle().
			Foreground(p.IncomingText).
			Background(p.IncomingBubble).
			Padding(0, 1),

		OutgoingBubble: lipgloss.NewStyle().
			Foreground(p.OutgoingText).
			Background(p.OutgoingBubble).
			Padding(0, 1),

		Author: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Author),

		Timestamp: lipgloss.NewStyle().
			Foreground(p.Timestamp),

		StatusSending: lipgloss.NewStyle().Foreground(p.StatusSending),
		StatusSent:    lipgloss.NewStyle().Foreground(p.StatusSent),
		StatusFailed:  lipgloss.NewStyle().Foreground(p.StatusFailed),

		Selection: lipgloss.NewStyle().
			Foreground(p.SelectionFg).
			Background(p.SelectionBg),

		UnreadBanner: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.UnreadFg).
			Background(p.UnreadBg).
			Padding(0, 1),

		ComposerFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary),

		ComposerBlurred: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border),

		ListFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border),

		HelpBar: lipgloss.NewStyle().
			Foreground(p.Muted),

		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),

		FilterPrompt: lipgloss.NewStyle().
			Foreground(p.Warning),
	}
}
