package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
)

var (
	colorStyles = map[core.Color]lipgloss.Style{
		core.ColorDefault:      lipgloss.NewStyle(),
		core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	}

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := colorStyles[c]; ok {
		return s
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen turns the screen into styled terminal output. Each run of
// same-colored cells in a row is rendered with a single style.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		var line, run strings.Builder
		runColor := s.GetCell(0, y).Color

		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				line.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			line.WriteString(styleFor(runColor).Render(run.String()))
		}
		rows[y] = line.String()
	}
	return strings.Join(rows, "\n")
}
