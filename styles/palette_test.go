package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBuiltinThemesAreValid(t *testing.T) {
	for _, name := range BuiltinThemes() {
		if !IsValidTheme(name) {
			t.Errorf("built-in theme %q should be valid", name)
		}
		if !IsBuiltinTheme(name) {
			t.Errorf("IsBuiltinTheme(%q) = false", name)
		}
	}
}

func TestPaletteForUnknownFallsBack(t *testing.T) {
	got := PaletteFor("no-such-theme")
	want := DefaultPalette()
	if got.Primary != want.Primary {
		t.Errorf("unknown theme should fall back to default palette, got primary %q", got.Primary)
	}
}

func TestPaletteForCustomWinsOverBuiltin(t *testing.T) {
	defer ClearCustomThemes()

	theme := validThemeFile()
	theme.Colors.Primary = "#123456"
	RegisterCustomTheme("dracula", theme)

	p := PaletteFor(ThemeDracula)
	if p.Primary != lipgloss.Color("#123456") {
		t.Errorf("custom theme should shadow built-in, got primary %q", p.Primary)
	}
}

func TestPalettesAreComplete(t *testing.T) {
	palettes := map[string]*ColorPalette{
		"default": DefaultPalette(),
		"dracula": DraculaPalette(),
		"nord":    NordPalette(),
		"gruvbox": GruvboxPalette(),
	}
	for name, p := range palettes {
		if p.Primary == "" || p.Text == "" || p.IncomingBubble == "" ||
			p.OutgoingBubble == "" || p.StatusFailed == "" || p.SelectionBg == "" {
			t.Errorf("palette %q has unset colors", name)
		}
	}
}

func TestNewStyleSet(t *testing.T) {
	s := New(ThemeNord)
	if s == nil {
		t.Fatal("New returned nil")
	}
	if s.PrimaryColor != NordPalette().Primary {
		t.Errorf("PrimaryColor = %q, want nord primary", s.PrimaryColor)
	}
	if got := s.Author.GetBold(); !got {
		t.Error("Author style should be bold")
	}
}
