package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
	m := NewModel(pong.New(config.DefaultPongConfig()), cfg, nil)
	m.screenshotDir = t.TempDir()
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		var cmd tea.Cmd
		m, cmd = send(t, m, TickMsg(time.Now()))
		require.NotNil(t, cmd, "tick loop must continue")
	}
	return m
}

func TestNewModelStartsMatch(t *testing.T) {
	m := newTestModel(t)

	require.NotNil(t, m.game.Match())
	assert.Equal(t, 80, m.screen.Width())
	assert.Equal(t, 23, m.screen.Height())
	assert.Equal(t, 15, m.holdTicks)
	assert.NotNil(t, m.Init())
}

func TestHoldTicks(t *testing.T) {
	assert.Equal(t, 15, HoldTicks(60))
	assert.Equal(t, 7, HoldTicks(30))
	assert.Equal(t, 1, HoldTicks(2))
	assert.Equal(t, 1, HoldTicks(0))
}

func TestKeyPressMovesPaddle(t *testing.T) {
	m := newTestModel(t)
	start := m.game.Match().Player.Y

	m, _ = send(t, m, runes("w"))
	m = tick(t, m, 1)
	assert.Equal(t, start-7, m.game.Match().Player.Y)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.False(t, m.keys.IsHeld(core.ActionUp), "down releases up")
	m = tick(t, m, 1)
	assert.Equal(t, start, m.game.Match().Player.Y)
}

func TestKeyPressLatchExpires(t *testing.T) {
	m := newTestModel(t)
	start := m.game.Match().Player.Y

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = tick(t, m, m.holdTicks+5)

	assert.Equal(t, start-7*float64(m.holdTicks), m.game.Match().Player.Y)
	assert.Zero(t, m.keys.Len())
}

func TestPauseKey(t *testing.T) {
	m := newTestModel(t)
	m = tick(t, m, 3)

	m, _ = send(t, m, runes("p"))
	assert.True(t, m.game.Paused())
	m = tick(t, m, 10)
	assert.Equal(t, uint64(3), m.game.State().Tick)
	assert.Contains(t, m.View(), "PAUSED")

	m, _ = send(t, m, runes("p"))
	m = tick(t, m, 1)
	assert.Equal(t, uint64(4), m.game.State().Tick)
}

func TestRestartKey(t *testing.T) {
	m := newTestModel(t)
	firstID := m.game.Match().ID
	m = tick(t, m, 20)

	m, _ = send(t, m, runes("r"))

	assert.Zero(t, m.game.State().Tick)
	assert.NotEqual(t, firstID, m.game.Match().ID)
	assert.NotEqual(t, int64(42), m.config.Seed)
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())

	// Ticks after quitting do not reschedule
	m, cmd = send(t, m, TickMsg(time.Now()))
	assert.Nil(t, cmd)
}

func TestResizeKeepsMatch(t *testing.T) {
	m := newTestModel(t)
	m = tick(t, m, 5)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 39, m.screen.Height())
	assert.Equal(t, uint64(5), m.game.State().Tick)
}

func TestHelpToggleResizesCourt(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Equal(t, 21, m.screen.Height())
	assert.Contains(t, m.View(), "screenshot")

	m, _ = send(t, m, runes("?"))
	assert.False(t, m.help.ShowAll)
	assert.Equal(t, 23, m.screen.Height())
}

func TestScreenshot(t *testing.T) {
	m := newTestModel(t)

	path, err := m.saveScreenshot()
	require.NoError(t, err)
	assert.Equal(t, m.screenshotDir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "pong_"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), string(pong.PaddleChar))
	assert.Len(t, strings.Split(string(data), "\n"), m.screen.Height())
}

func TestScreenshotKey(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.screenshotDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestViewShowsCourtAndHelp(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	assert.Contains(t, view, string(pong.BallChar))
	assert.Contains(t, view, "quit")
}
