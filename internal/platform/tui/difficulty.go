package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// DifficultyModel is the Bubble Tea model for picking a difficulty
// before a match.
type DifficultyModel struct {
	presets  []config.Difficulty
	table    table.Model
	help     help.Model
	keys     SelectorKeyMap
	width    int
	selected *config.Difficulty
	quitting bool
}

// NewDifficultyModel creates a selector with the cursor on medium.
func NewDifficultyModel(width int) DifficultyModel {
	presets := config.Difficulties()

	columns := []table.Column{
		{Title: "Difficulty", Width: 12},
		{Title: "Ball", Width: 6},
		{Title: "AI skill", Width: 9},
		{Title: "", Width: 32},
	}
	rows := make([]table.Row, len(presets))
	for i, d := range presets {
		rows[i] = table.Row{
			strings.ToUpper(string(d.Preset[:1])) + string(d.Preset[1:]),
			fmt.Sprintf("%g", d.BallSpeed),
			fmt.Sprintf("%.3f", d.AISkill),
			d.Description,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	for i, d := range presets {
		if d.Preset == config.DifficultyMedium {
			t.SetCursor(i)
		}
	}

	return DifficultyModel{
		presets: presets,
		table:   t,
		help:    help.New(),
		keys:    DefaultSelectorKeyMap(),
		width:   width,
	}
}

// Init initializes the selector.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the selector.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)

		case key.Matches(msg, m.keys.Select):
			if c := m.table.Cursor(); c >= 0 && c < len(m.presets) {
				selected := m.presets[c]
				m.selected = &selected
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the selector.
func (m DifficultyModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("P O N G", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a difficulty", m.width))
	b.WriteString("\n\n")
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the chosen difficulty, or nil if none was chosen.
func (m DifficultyModel) Selected() *config.Difficulty {
	return m.selected
}

// IsQuitting returns true if the user backed out.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunDifficultySelector shows the selector and returns the chosen preset.
// ok is false when the user quit without choosing.
func RunDifficultySelector(width int) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(NewDifficultyModel(width), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isSelector := finalModel.(DifficultyModel)
	if !isSelector || m.Selected() == nil {
		return "", false, nil
	}
	return m.Selected().Preset, true, nil
}
