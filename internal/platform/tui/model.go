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

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Rows reserved under the court for the short and full help views.
const (
	shortHelpHeight = 1
	fullHelpHeight  = 3
)

// Model is the Bubble Tea model for a running match.
type Model struct {
	game          *pong.Game
	keys          *core.KeyState
	screen        *core.Screen
	keyMap        GameKeyMap
	help          help.Model
	logger        *log.Logger
	config        core.RuntimeConfig
	holdTicks     int    // Ticks a keypress keeps a direction held
	screenshotDir string // Where ctrl+s writes the current frame
	quitting      bool
}

// NewModel creates a Bubble Tea model and starts a fresh match.
// A nil logger discards output.
func NewModel(game *pong.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	cfg = cfg.WithDefaults()
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	return Model{
		game:          game,
		keys:          core.NewKeyState(),
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH-shortHelpHeight),
		keyMap:        DefaultGameKeyMap(),
		help:          help.New(),
		logger:        logger,
		config:        cfg,
		holdTicks:     HoldTicks(cfg.TickRate),
		screenshotDir: defaultScreenshotDir(),
	}
}

// HoldTicks returns how long a single keypress holds a direction. Terminals
// report presses and auto-repeat but never releases, so a press stands
// for a quarter second of movement.
func HoldTicks(tickRate int) int {
	return max(tickRate/4, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("match started", "match", m.game.Match().ID, "seed", m.config.Seed)
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
	switch {
	case key.Matches(msg, m.keyMap.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keyMap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	switch m.keyMap.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		st := m.game.State()
		m.logger.Info("match ended", "match", m.game.Match().ID, "player", st.PlayerScore, "ai", st.AIScore)
		return m, tea.Quit

	case core.ActionUp:
		m.keys.Release(core.ActionDown)
		m.keys.Latch(core.ActionUp, m.holdTicks)

	case core.ActionDown:
		m.keys.Release(core.ActionUp)
		m.keys.Latch(core.ActionDown, m.holdTicks)

	case core.ActionPause:
		paused := m.game.TogglePause()
		m.keys.Clear()
		m.logger.Debug("pause toggled", "match", m.game.Match().ID, "paused", paused)

	case core.ActionRestart:
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.keys.Clear()
		m.logger.Info("match restarted", "match", m.game.Match().ID, "seed", m.config.Seed)
	}

	return m, nil
}

// handleResize processes window resize events. The court is drawn in
// field units, so the match keeps running at any size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout sizes the court to the terminal minus the help bar.
func (m Model) layout() {
	rows := shortHelpHeight
	if m.help.ShowAll {
		rows = fullHelpHeight
	}
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH-rows)
}

// handleTick advances the match and expires latched keys.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	result := m.game.Step(m.keys)
	m.keys.Advance()
	m.logEvents(result)

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents(result pong.StepResult) {
	id := m.game.Match().ID
	for _, ev := range result.Events {
		switch ev.Kind {
		case pong.EventPoint:
			st := m.game.State()
			m.logger.Info("point", "match", id, "tick", result.Tick, "scorer", ev.Side,
				"player", st.PlayerScore, "ai", st.AIScore)
		case pong.EventPaddleHit:
			if ev.Spike {
				m.logger.Debug("spike", "match", id, "tick", result.Tick, "side", ev.Side, "angle", ev.Angle)
			}
		}
	}
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	id := m.game.Match().ID
	if len(id) > 8 {
		id = id[:8]
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s_%s.txt", m.game.ID(), id, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".arcade", "screenshots")
}

// View renders the court followed by the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keyMap)))
	return b.String()
}

// Run starts the Bubble Tea program for the given game.
func Run(game *pong.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
