package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Browser styles
var (
	browserTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	browserSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	browserDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// browserModel - Interactive tree browsing
// =============================================================================

// browserModel is the bubbletea model for scrolling through an inspect tree.
type browserModel struct {
	lines  []treeLine
	cursor int
	height int
	offset int
}

func newBrowserModel(lines []treeLine) browserModel {
	return browserModel{
		lines:  lines,
		cursor: 0,
		height: 20,
		offset: 0,
	}
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.lines)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "g", "home":
			m.cursor = 0
			m.offset = 0
		case "G", "end":
			m.cursor = len(m.lines) - 1
			if m.cursor >= m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 4
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m browserModel) View() string {
	var b strings.Builder

	b.WriteString(browserTitleStyle.Render("GraphSON Inspector"))
	b.WriteString("\n")
	b.WriteString(browserDimStyle.Render("↑/↓ navigate  g/G top/bottom  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.lines) {
		end = len(m.lines)
	}

	for i := m.offset; i < end; i++ {
		line := m.lines[i]
		if i == m.cursor {
			b.WriteString(browserSelectedStyle.Render("▸ " + line.plain()))
		} else {
			b.WriteString("  ")
			b.WriteString(line.styled())
		}
		b.WriteString("\n")
	}

	return b.String()
}
