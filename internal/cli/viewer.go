package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/maandree/hungarian-algorithm-n3/pkg/munkres"
)

// tableModel is the bubbletea model for browsing a solved table that is
// taller than the terminal. It scrolls vertically over the pre-rendered
// table lines.
type tableModel struct {
	lines  []string
	offset int
	height int
	sum    int64
}

// browseTable opens the interactive viewer on the solved table.
func browseTable(matrix [][]int64, assignment []munkres.Position, sum int64) error {
	content := strings.TrimRight(renderTable(matrix, assignment), "\n")
	model := tableModel{
		lines:  strings.Split(content, "\n"),
		height: 20,
		sum:    sum,
	}
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func (m tableModel) Init() tea.Cmd {
	return nil
}

func (m tableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Reserve three lines for the header and footer.
		m.height = msg.Height - 3
		if m.height < 1 {
			m.height = 1
		}
		m.clampOffset()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.offset--
		case "down", "j":
			m.offset++
		case "pgup":
			m.offset -= m.height
		case "pgdown", " ":
			m.offset += m.height
		case "home", "g":
			m.offset = 0
		case "end", "G":
			m.offset = len(m.lines)
		}
		m.clampOffset()
	}
	return m, nil
}

func (m *tableModel) clampOffset() {
	max := len(m.lines) - m.height
	if max < 0 {
		max = 0
	}
	if m.offset > max {
		m.offset = max
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m tableModel) View() string {
	end := m.offset + m.height
	if end > len(m.lines) {
		end = len(m.lines)
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Assignment (%d rows, sum %d)", len(m.lines), m.sum)))
	b.WriteByte('\n')
	b.WriteString(strings.Join(m.lines[m.offset:end], "\n"))
	b.WriteByte('\n')
	b.WriteString(StyleDim.Render(fmt.Sprintf("rows %d-%d of %d · ↑/↓ scroll · q quit", m.offset+1, end, len(m.lines))))
	return b.String()
}
