package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ebenfield/chatkit/chatlist"
	"github.com/ebenfield/chatkit/chatui"
	"github.com/ebenfield/chatkit/config"
	"github.com/ebenfield/chatkit/internal/logging"
	"github.com/ebenfield/chatkit/styles"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the chat widget against a scripted echo peer",
	Long: `Demo launches the composed chat widget in the terminal. Messages you
send are echoed back by a scripted peer after a short delay, so every
part of the widget can be exercised without a real transport.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("demo requires a terminal")
	}

	// Custom themes must be registered before the config validates the
	// theme name against the known set.
	_, _ = styles.DiscoverCustomThemes()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var logger *logging.Logger
	if cfg.Logging.Enabled {
		logger, err = logging.NewLogger(cfg.Logging.File, cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("opening log: %w", err)
		}
		defer logger.Close()
	} else {
		logger = logging.NopLogger()
	}

	// The send closure needs the program to deliver the echo, and the
	// program needs the model. Declare first, assign after.
	var program *tea.Program

	ui := chatui.New(chatui.Options{
		Config: cfg,
		Logger: logger,
		Send: func(msg chatlist.Message) error {
			body := msg.Body
			go func() {
				time.Sleep(600 * time.Millisecond)
				program.Send(chatui.ReceivedMsg{Message: chatlist.Message{
					ID:     "echo-" + msg.ID,
					Author: "echo",
					Body:   body,
					Time:   time.Now(),
					Status: chatlist.StatusSent,
				}})
			}()
			return nil
		},
	})

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	program = tea.NewProgram(newDemoModel(ui), opts...)

	// Live theme reload: file changes in the themes directory arrive as
	// messages so the widget restyles itself mid-session.
	watcher, err := styles.NewWatcher(func(name string) {
		program.Send(chatui.ThemeReloadedMsg{Name: name})
	})
	if err == nil {
		defer watcher.Close()
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running demo: %w", err)
	}
	ui.Close()
	return nil
}

// demoModel wraps the chat widget with demo-only chrome: a seeded
// conversation and a spinner shown while the echo peer is "typing".
type demoModel struct {
	ui     *chatui.Model
	spin   spinner.Model
	typing bool
	seeded bool
}

func newDemoModel(ui *chatui.Model) *demoModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &demoModel{ui: ui, spin: sp}
}

func (m *demoModel) Init() tea.Cmd {
	return m.ui.Init()
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		uiModel, cmd := m.ui.Update(msg)
		m.ui = uiModel.(*chatui.Model)
		cmds = append(cmds, cmd)
		if !m.seeded {
			m.seeded = true
			m.ui.List().Append(seedConversation()...)
		}
		return m, tea.Batch(cmds...)

	case chatui.SendResultMsg:
		m.typing = true
		cmds = append(cmds, m.spin.Tick)

	case chatui.ReceivedMsg:
		m.typing = false

	case spinner.TickMsg:
		if m.typing {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	uiModel, cmd := m.ui.Update(msg)
	m.ui = uiModel.(*chatui.Model)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *demoModel) View() string {
	view := m.ui.View()
	if m.typing {
		view += "\n" + m.spin.View() + " echo is typing"
	}
	return view
}

func seedConversation() []chatlist.Message {
	now := time.Now()
	lines := []struct {
		author string
		body   string
	}{
		{"echo", "Welcome to the chatkit demo."},
		{"echo", "Anything you send gets echoed back."},
		{"echo", "Press esc to scroll, / to filter, ? for help."},
	}

	msgs := make([]chatlist.Message, len(lines))
	for i, line := range lines {
		msgs[i] = chatlist.Message{
			ID:     fmt.Sprintf("seed-%d", i),
			Author: line.author,
			Body:   line.body,
			Time:   now.Add(time.Duration(i-len(lines)) * time.Minute),
			Status: chatlist.StatusSent,
		}
	}
	return msgs
}
