// Package util provides small shared helpers for chatkit components.
package util

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Truncate shortens s to maxLen runes, appending "…" when it was cut. It
// does not account for ANSI escape codes; use TruncateANSI for styled text.
func Truncate(s string, maxLen int) string {
	if maxLen <= 1 {
		return "…"
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}

// TruncateANSI shortens s to maxWidth visual columns, appending "…" when it
// was cut. Escape sequences and wide characters are handled correctly, so
// it is safe for styled terminal output.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 1 {
		return "…"
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "…")
}
