package styles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Solarized Dark")
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors are hex format (#RRGGBB or #RGB).
type ThemeColors struct {
	// Base colors (required)
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`

	// Bubble colors (optional - defaults derived from base colors)
	Bubbles ThemeBubbleColors `yaml:"bubbles,omitempty"`

	// Delivery status colors (optional)
	Status ThemeStatusColors `yaml:"status,omitempty"`

	// Selection and unread banner colors (optional)
	Selection ThemeSelectionColors `yaml:"selection,omitempty"`
	Unread    ThemeUnreadColors    `yaml:"unread,omitempty"`
}

// ThemeBubbleColors defines colors for message bubbles.
type ThemeBubbleColors struct {
	Incoming     string `yaml:"incoming,omitempty"`
	Outgoing     string `yaml:"outgoing,omitempty"`
	IncomingText string `yaml:"incoming_text,omitempty"`
	OutgoingText string `yaml:"outgoing_text,omitempty"`
	Author       string `yaml:"author,omitempty"`
	Timestamp    string `yaml:"timestamp,omitempty"`
}

// ThemeStatusColors defines colors for delivery status marks.
type ThemeStatusColors struct {
	Sending string `yaml:"sending,omitempty"`
	Sent    string `yaml:"sent,omitempty"`
	Failed  string `yaml:"failed,omitempty"`
}

// ThemeSelectionColors defines the selected-row highlight.
type ThemeSelectionColors struct {
	Bg string `yaml:"bg,omitempty"`
	Fg string `yaml:"fg,omitempty"`
}

// ThemeUnreadColors defines the unread banner colors.
type ThemeUnreadColors struct {
	Bg string `yaml:"bg,omitempty"`
	Fg string `yaml:"fg,omitempty"`
}

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile loads a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}

	if t.Version == "" {
		return errors.New("theme version is required")
	}

	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %s (supported: 1)", t.Version)
	}

	requiredColors := map[string]string{
		"primary":   t.Colors.Primary,
		"secondary": t.Colors.Secondary,
		"warning":   t.Colors.Warning,
		"error":     t.Colors.Error,
		"muted":     t.Colors.Muted,
		"surface":   t.Colors.Surface,
		"text":      t.Colors.Text,
		"border":    t.Colors.Border,
	}

	for name, color := range requiredColors {
		if color == "" {
			return fmt.Errorf("color '%s' is required", name)
		}
		if !isValidHexColor(color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", name, color)
		}
	}

	optionalColors := map[string]string{
		"bubbles.incoming":      t.Colors.Bubbles.Incoming,
		"bubbles.outgoing":      t.Colors.Bubbles.Outgoing,
		"bubbles.incoming_text": t.Colors.Bubbles.IncomingText,
		"bubbles.outgoing_text": t.Colors.Bubbles.OutgoingText,
		"bubbles.author":        t.Colors.Bubbles.Author,
		"bubbles.timestamp":     t.Colors.Bubbles.Timestamp,
		"status.sending":        t.Colors.Status.Sending,
		"status.sent":           t.Colors.Status.Sent,
		"status.failed":         t.Colors.Status.Failed,
		"selection.bg":          t.Colors.Selection.Bg,
		"selection.fg":          t.Colors.Selection.Fg,
		"unread.bg":             t.Colors.Unread.Bg,
		"unread.fg":             t.Colors.Unread.Fg,
	}

	for name, color := range optionalColors {
		if color != "" && !isValidHexColor(color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", name, color)
		}
	}

	return nil
}

// isValidHexColor checks if a string is a valid hex color.
func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// ToPalette converts the theme file to a ColorPalette. Optional colors fall
// back to sensible base-color defaults.
func (t *ThemeFile) ToPalette() *ColorPalette {
	p := &ColorPalette{
		Primary:   lipgloss.Color(t.Colors.Primary),
		Secondary: lipgloss.Color(t.Colors.Secondary),
		Warning:   lipgloss.Color(t.Colors.Warning),
		Error:     lipgloss.Color(t.Colors.Error),
		Muted:     lipgloss.Color(t.Colors.Muted),
		Surface:   lipgloss.Color(t.Colors.Surface),
		Text:      lipgloss.Color(t.Colors.Text),
		Border:    lipgloss.Color(t.Colors.Border),
	}

	p.IncomingBubble = colorOrDefault(t.Colors.Bubbles.Incoming, t.Colors.Surface)
	p.OutgoingBubble = colorOrDefault(t.Colors.Bubbles.Outgoing, t.Colors.Surface)
	p.IncomingText = colorOrDefault(t.Colors.Bubbles.IncomingText, t.Colors.Text)
	p.OutgoingText = colorOrDefault(t.Colors.Bubbles.OutgoingText, t.Colors.Text)
	p.Author = colorOrDefault(t.Colors.Bubbles.Author, t.Colors.Primary)
	p.Timestamp = colorOrDefault(t.Colors.Bubbles.Timestamp, t.Colors.Muted)

	p.StatusSending = colorOrDefault(t.Colors.Status.Sending, t.Colors.Warning)
	p.StatusSent = colorOrDefault(t.Colors.Status.Sent, t.Colors.Secondary)
	p.StatusFailed = colorOrDefault(t.Colors.Status.Failed, t.Colors.Error)

	p.SelectionBg = colorOrDefault(t.Colors.Selection.Bg, t.Colors.Surface)
	p.SelectionFg = colorOrDefault(t.Colors.Selection.Fg, t.Colors.Text)

	p.UnreadBg = colorOrDefault(t.Colors.Unread.Bg, t.Colors.Surface)
	p.UnreadFg = colorOrDefault(t.Colors.Unread.Fg, t.Colors.Primary)

	return p
}

// colorOrDefault returns the color if non-empty, otherwise the default.
func colorOrDefault(color, defaultColor string) lipgloss.Color {
	if color != "" {
		return lipgloss.Color(color)
	}
	return lipgloss.Color(defaultColor)
}

// customThemes stores loaded custom themes. The watcher registers themes
// from its debounce goroutine while the UI goroutine resolves palettes, so
// access is guarded.
var (
	customThemesMu sync.RWMutex
	customThemes   = make(map[ThemeName]*ThemeFile)
)

// RegisterCustomTheme registers a custom theme by name.
func RegisterCustomTheme(name ThemeName, theme *ThemeFile) {
	customThemesMu.Lock()
	defer customThemesMu.Unlock()
	customThemes[name] = theme
}

// GetCustomTheme returns the custom theme with the given name, or nil.
func GetCustomTheme(name ThemeName) *ThemeFile {
	customThemesMu.RLock()
	defer customThemesMu.RUnlock()
	return customThemes[name]
}

// CustomThemeNames returns the names of all registered custom themes.
func CustomThemeNames() []string {
	customThemesMu.RLock()
	defer customThemesMu.RUnlock()
	names := make([]string, 0, len(customThemes))
	for name := range customThemes {
		names = append(names, string(name))
	}
	return names
}

// ClearCustomThemes removes all registered custom themes. Used in tests.
func ClearCustomThemes() {
	customThemesMu.Lock()
	defer customThemesMu.Unlock()
	customThemes = make(map[ThemeName]*ThemeFile)
}

// IsBuiltinTheme checks if a name refers to a built-in theme.
func IsBuiltinTheme(name string) bool {
	for _, builtin := range BuiltinThemes() {
		if name == builtin {
			return true
		}
	}
	return false
}

// IsCustomTheme checks if a name refers to a registered custom theme.
func IsCustomTheme(name string) bool {
	customThemesMu.RLock()
	defer customThemesMu.RUnlock()
	_, ok := customThemes[ThemeName(name)]
	return ok
}

// themesDirFunc returns the directory scanned for custom theme files.
// Overridable for tests via SetThemesDirFunc.
var themesDirFunc = defaultThemesDir

func defaultThemesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "chatkit", "themes")
}

// ThemesDir returns the directory scanned for custom theme files.
func ThemesDir() string {
	return themesDirFunc()
}

// SetThemesDirFunc overrides the themes directory lookup and returns the
// previous function so tests can restore it.
func SetThemesDirFunc(fn func() string) func() string {
	prev := themesDirFunc
	themesDirFunc = fn
	return prev
}

// DiscoverCustomThemes scans the themes directory for *.yaml/*.yml files,
// registering each valid theme under its filename (minus extension).
// Returns the registered names and any per-file errors; a missing themes
// directory is not an error.
func DiscoverCustomThemes() ([]string, []error) {
	dir := ThemesDir()
	if dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []error{fmt.Errorf("reading themes directory: %w", err)}
	}

	var names []string
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		theme, err := LoadThemeFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", entry.Name(), err))
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ext)
		RegisterCustomTheme(ThemeName(name), theme)
		names = append(names, name)
	}
	return names, errs
}
