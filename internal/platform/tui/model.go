package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt2048/internal/core"
	"github.com/vovakirdan/tilt2048/internal/registry"
)

// helpHeight is the number of terminal rows reserved for the help footer.
const helpHeight = 1

// resizable is implemented by games that can adapt to a new screen size
// without restarting.
type resizable interface {
	Resize(width, height int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	config      core.RuntimeConfig
	logger      *log.Logger
	keyMapper   *KeyMapper
	help        help.Model
	inputFrame  core.InputFrame
	gameState   core.GameState
	unsubscribe func()
	quitting    bool
}

// NewModel creates a new Bubble Tea model for the given game. A nil logger
// discards all output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		config:     cfg,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW

	if obs, ok := game.(observable); ok {
		m.unsubscribe = obs.Subscribe(LogObserver(logger))
	}
	return m
}

// gameConfig returns the runtime config seen by the game: the terminal
// minus the help footer.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if quit := m.keyMapper.MapKeyToFrame(msg, &m.inputFrame); quit {
		m.quitting = true
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
		m.logger.Info("quit", "game", m.game.ID(), "score", m.gameState.Score, "max_score", m.gameState.MaxScore)
		return m, tea.Quit
	}

	return m, nil
}

// handleResize adapts the screen buffer and the game to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width

	gc := m.gameConfig()
	if r, ok := m.game.(resizable); ok {
		r.Resize(gc.ScreenW, gc.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(gc)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		m.logger.Info("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".tilt2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keyMapper.Keys())))
	return b.String()
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
