// Interactive conflict browser built on bubbletea.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"drone-deconflict/internal/airspace"
	"drone-deconflict/internal/report"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	detailStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	severityStyles = map[airspace.Severity]lipgloss.Style{
		airspace.SeverityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		airspace.SeverityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		airspace.SeverityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	}
)

// minSeverityCycle is the order the "s" key steps through.
var minSeverityCycle = []airspace.Severity{
	airspace.SeverityLow,
	airspace.SeverityMedium,
	airspace.SeverityHigh,
}

// Browse opens the conflict browser over a saved report document.
func Browse(doc report.Document) error {
	m := newBrowserModel(doc)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

type browserModel struct {
	doc      report.Document
	filtered []airspace.Conflict
	minIdx   int // index into minSeverityCycle
	table    table.Model
	detail   viewport.Model
	width    int
	height   int
}

func newBrowserModel(doc report.Document) browserModel {
	cols := []table.Column{
		{Title: "t (s)", Width: 8},
		{Title: "Drone 1", Width: 14},
		{Title: "Drone 2", Width: 14},
		{Title: "Dist (m)", Width: 9},
		{Title: "Severity", Width: 8},
		{Title: "Type", Width: 9},
	}
	t := table.New(table.WithColumns(cols), table.WithFocused(true))
	m := browserModel{
		doc:    doc,
		table:  t,
		detail: viewport.New(0, 0),
	}
	m.applyFilter()
	return m
}

// applyFilter rebuilds the table rows for the current minimum severity.
func (m *browserModel) applyFilter() {
	min := minSeverityCycle[m.minIdx]
	filtered, err := airspace.FilterBySeverity(m.doc.Conflicts, min)
	if err != nil {
		// The cycle only holds valid levels.
		filtered = m.doc.Conflicts
	}
	m.filtered = filtered

	rows := make([]table.Row, 0, len(filtered))
	for _, c := range filtered {
		rows = append(rows, table.Row{
			fmt.Sprintf("%.1f", c.Timestamp),
			c.Drone1ID,
			c.Drone2ID,
			fmt.Sprintf("%.1f", c.Distance),
			c.Severity.String(),
			string(c.Type),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m browserModel) Init() tea.Cmd { return nil }

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		tableHeight := m.height - 12
		if tableHeight < 3 {
			tableHeight = 3
		}
		m.table.SetHeight(tableHeight)
		m.detail.Width = m.width - 4
		m.detail.Height = 5
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "s":
			m.minIdx = (m.minIdx + 1) % len(minSeverityCycle)
			m.applyFilter()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m browserModel) View() string {
	header := headerStyle.Render(fmt.Sprintf("Deconfliction run %s — %d conflicts (showing %d, min severity %s)",
		m.doc.RunID, m.doc.Summary.TotalConflicts, len(m.filtered), minSeverityCycle[m.minIdx]))

	detail := "no conflict selected"
	if idx := m.table.Cursor(); idx >= 0 && idx < len(m.filtered) {
		c := m.filtered[idx]
		sev := severityStyles[c.Severity].Render(c.Severity.String())
		detail = fmt.Sprintf("%s conflict between %s and %s at t=%.2fs\nseparation %.2f m\npos1 (%.1f, %.1f, %.1f) @ t=%.2f\npos2 (%.1f, %.1f, %.1f) @ t=%.2f",
			sev, c.Drone1ID, c.Drone2ID, c.Timestamp, c.Distance,
			c.Position1.X, c.Position1.Y, c.Position1.Z, c.Position1.Timestamp,
			c.Position2.X, c.Position2.Y, c.Position2.Z, c.Position2.Timestamp)
	}
	width := m.width
	if width <= 0 {
		width = 100
	}
	detailBox := detailStyle.Width(width - 4).Render(wordwrap.String(detail, width-6))

	help := helpStyle.Render("↑/↓ select · s cycle min severity · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.table.View(), detailBox, help)
}
