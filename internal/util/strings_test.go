package util

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "short string unchanged",
			input:    "hello",
			maxLen:   10,
			expected: "hello",
		},
		{
			name:     "exact length unchanged",
			input:    "hello",
			maxLen:   5,
			expected: "hello",
		},
		{
			name:     "long string truncated",
			input:    "hello world",
			maxLen:   8,
			expected: "hello w…",
		},
		{
			name:     "tiny maxLen returns ellipsis",
			input:    "hello",
			maxLen:   1,
			expected: "…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
			}
		})
	}
}

func TestTruncateANSI(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello world")

	got := TruncateANSI(styled, 8)
	if w := lipgloss.Width(got); w > 8 {
		t.Errorf("TruncateANSI width = %d, want <= 8", w)
	}

	short := TruncateANSI("hi", 10)
	if short != "hi" {
		t.Errorf("TruncateANSI of short string = %q, want unchanged", short)
	}
}
