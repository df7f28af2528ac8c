package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// footerHeight is the row reserved for the key help.
const footerHeight = 1

// roundIdentifier is implemented by games that tag rounds for logging.
type roundIdentifier interface {
	RoundID() string
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	ticking  bool // A tick is scheduled
	quitting bool
}

// NewModel creates a model for game. A zero seed is replaced with the clock.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) *Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := &Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-footerHeight)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
	}
	m.game.Reset(m.config)
	m.game.Layout(cfg.ScreenW, m.screen.Height())
	m.logRoundStart()
	return m
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	m.ticking = true
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey forwards actions to the game as they arrive.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "round", m.roundID(), "score", m.game.State().Score)
		return m, tea.Quit
	}

	wasOver := m.game.State().GameOver
	m.game.HandleAction(action)

	// Ticks stop with the round; restarting schedules them again.
	if wasOver && !m.game.State().GameOver {
		m.logRoundStart()
		if !m.ticking {
			m.ticking = true
			return m, tickCmd(m.config.TickInterval)
		}
	}
	return m, nil
}

// handleResize lays the board out again without resetting the round.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	gameH := max(0, msg.Height-footerHeight)

	m.screen.Resize(msg.Width, gameH)
	m.help.Width = msg.Width
	m.game.Layout(msg.Width, gameH)
	return m, nil
}

// handleTick advances the game and schedules the next tick while the
// round is live.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Step()

	if res.Scored > 0 {
		m.logger.Debug("food eaten",
			"round", m.roundID(),
			"score", res.State.Score,
			"length", res.State.Length)
	}
	if res.Ended {
		m.logger.Info("round over",
			"round", m.roundID(),
			"cause", res.State.Cause,
			"score", res.State.Score,
			"length", res.State.Length,
			"ticks", res.State.Ticks)
	}

	if res.State.GameOver {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.config.TickInterval)
}

// View renders the game and the help footer.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

func (m *Model) roundID() string {
	if r, ok := m.game.(roundIdentifier); ok {
		return r.RoundID()
	}
	return ""
}

func (m *Model) logRoundStart() {
	m.logger.Info("round started",
		"game", m.game.ID(),
		"round", m.roundID(),
		"seed", m.config.Seed)
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
