// Package chatui composes the chatkit components into a ready-to-run
// bubbletea widget: a message list over an input bar, with mode-aware
// key handling, glob filtering, and an asynchronous send pipeline that
// routes every list mutation through the list's serial update queue.
package chatui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebenfield/chatkit/chatlist"
	"github.com/ebenfield/chatkit/composer"
	"github.com/ebenfield/chatkit/config"
	"github.com/ebenfield/chatkit/internal/logging"
	"github.com/ebenfield/chatkit/keymap"
	"github.com/ebenfield/chatkit/styles"
)

// timeNow is swapped in tests for deterministic timestamps.
var timeNow = time.Now

// Options configures the widget. Zero-value fields fall back to defaults.
type Options struct {
	// Config supplies list, composer, and theme settings. Nil means
	// config.Default().
	Config *config.Config

	// Keymap overrides the default key bindings.
	Keymap *keymap.Keymap

	// Logger receives structured diagnostics. Nil means no logging.
	Logger *logging.Logger

	// Send delivers outgoing messages. Nil sends always succeed, which
	// is useful for previews and tests.
	Send SendFunc

	// SelfAuthor is the author name stamped on outgoing messages.
	// Defaults to "you".
	SelfAuthor string
}

// Model is the composed chat widget. It implements tea.Model.
type Model struct {
	cfg  *config.Config
	km   *keymap.Keymap
	log  *logging.Logger
	send SendFunc
	self string

	ss   *styles.StyleSet
	list *chatlist.Model
	comp *composer.Model

	mode   keymap.Mode
	width  int
	height int
	ready  bool

	showHelp   bool
	filterText string

	seq int
}

// New builds the widget from the given options.
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	km := opts.Keymap
	if km == nil {
		km = keymap.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logging.NopLogger()
	}
	self := opts.SelfAuthor
	if self == "" {
		self = "you"
	}

	ss := styles.New(styles.ThemeName(cfg.UI.Theme))

	list := chatlist.New(ss)
	list.SetMaxMessages(cfg.List.MaxMessages)
	list.SetShowTimestamps(cfg.List.ShowTimestamps)
	list.SetTimeFormat(cfg.List.TimeFormat)

	comp := composer.New(ss)
	comp.SetPlaceholder(cfg.Composer.Placeholder)
	comp.SetCharLimit(cfg.Composer.CharLimit)
	comp.SetMaxHeight(cfg.Composer.MaxHeight)
	comp.SetHistorySize(cfg.Composer.HistorySize)

	return &Model{
		cfg:  cfg,
		km:   km,
		log:  log.WithComponent("chatui"),
		send: opts.Send,
		self: self,
		ss:   ss,
		list: list,
		comp: comp,
		mode: keymap.ModeCompose,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.comp.Focus()
}

// List exposes the message list for direct programmatic mutation.
func (m *Model) List() *chatlist.Model {
	return m.list
}

// Composer exposes the input bar.
func (m *Model) Composer() *composer.Model {
	return m.comp
}

// Mode reports the current interaction mode.
func (m *Model) Mode() keymap.Mode {
	return m.mode
}

// Ready reports whether the widget has received its first window size.
func (m *Model) Ready() bool {
	return m.ready
}

// SetTheme rebuilds the style set from the named theme and pushes it to
// every component.
func (m *Model) SetTheme(name styles.ThemeName) {
	m.ss = styles.New(name)
	m.cfg.UI.Theme = string(name)
	m.list.SetStyles(m.ss)
	m.comp.SetStyles(m.ss)
}

// Close releases the widget. Any in-flight update task that completes
// afterwards is dropped.
func (m *Model) Close() {
	m.list.Close()
}

// layout distributes the window between the list, a one-line status bar,
// and the input bar.
func (m *Model) layout() {
	listHeight := m.height - m.comp.Height() - 1
	if listHeight < 1 {
		listHeight = 1
	}
	m.comp.SetWidth(m.width)
	m.list.SetSize(m.width, listHeight)
}

func (m *Model) nextID() string {
	m.seq++
	return fmt.Sprintf("out-%d-%d", time.Now().UnixNano(), m.seq)
}
