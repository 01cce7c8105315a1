// Package tui runs Pong in the terminal with Bubble Tea. It owns the tick
// loop, maps keys to held actions and draws the court with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// TickMsg advances the match by one tick.
type TickMsg time.Time

// tickCmd schedules the next TickMsg at the given rate.
func tickCmd(rate int) tea.Cmd {
	if rate <= 0 {
		rate = core.DefaultTickRate
	}
	return tea.Tick(time.Second/time.Duration(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
