package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkotenko/snaketui/internal/config"
	"github.com/dkotenko/snaketui/internal/engine"
	"github.com/dkotenko/snaketui/internal/screen"
)

// Model is the Bubble Tea model driving one game. It owns the engine, maps
// key presses to engine intents, and runs the variable-interval tick loop
// the engine requests through its scheduler.
type Model struct {
	eng      *engine.Engine
	sched    *tickScheduler
	screen   *screen.Screen
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel constructs the engine from the configuration and wires it to the
// Bubble Tea tick scheduler. The last terminal row is reserved for the help
// line.
func NewModel(cfg config.Config, termW, termH int) (Model, error) {
	sched := &tickScheduler{}

	eng, err := engine.New(engine.Config{
		BoardWidthPx:  cfg.BoardWidthPx,
		BoardHeightPx: cfg.BoardHeightPx,
		CellSizePx:    cfg.CellSizePx,
		BaseInterval:  cfg.BaseInterval(),
		MinInterval:   cfg.MinInterval(),
		Seed:          cfg.Seed,
	}, sched)
	if err != nil {
		return Model{}, err
	}

	if termW <= 0 {
		termW = 80
	}
	if termH <= 1 {
		termH = 24
	}

	return Model{
		eng:    eng,
		sched:  sched,
		screen: screen.New(termW, termH-1),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}, nil
}

// Init starts the tick loop. The engine scheduled its first tick during
// construction; this turns that request into a command.
func (m Model) Init() tea.Cmd {
	return m.sched.takeCmd()
}

// Update handles input, resize and tick messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		// A stale tick from before a restart; its chain was cancelled.
		if !m.sched.current(msg) {
			return m, nil
		}
		m.eng.Tick()
		return m, m.sched.takeCmd()
	}

	return m, nil
}

// handleKey maps key presses to engine intents. Input arrives at arbitrary
// times relative to ticks; the engine serializes access itself.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		m.eng.RequestRestart()
		// A restart cancels the old tick chain and schedules a fresh one.
		return m, m.sched.takeCmd()
	}

	if dir, ok := m.keys.Direction(msg); ok {
		m.eng.RequestDirectionChange(dir)
	}

	return m, nil
}

// View renders the current snapshot plus the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawSnapshot(m.screen, m.eng.Snapshot())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts a local game in the terminal and blocks until the player quits.
func Run(cfg config.Config, termW, termH int) error {
	model, err := NewModel(cfg, termW, termH)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
