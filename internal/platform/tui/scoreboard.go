package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/redlight/internal/games/redlight"
)

// newRunsTable creates the leaderboard table of this session's runs.
func newRunsTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 7},
		{Title: "Distance", Width: 10},
		{Title: "Result", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
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

	return t
}

// runRows converts run summaries, newest first, to table rows.
func runRows(runs []redlight.RunSummary) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		result := "caught"
		if r.Reason == redlight.EndTimeout {
			result = "time up"
		}
		if r.NewRecord {
			result += " ★"
		}
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Level),
			fmt.Sprintf("%dm", r.Distance),
			result,
		}
	}
	return rows
}

// leaderboardView renders the best score and the session's runs.
func (m Model) leaderboardView() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  L E A D E R B O A R D  ", m.width)))
	b.WriteString("\n\n")

	best := fmt.Sprintf("High Score: %d", m.engine.Best())
	b.WriteString(accentStyle.Render(centerText(best, m.width)))
	b.WriteString("\n\n")

	if len(m.runs.Rows()) == 0 {
		b.WriteString(dimStyle.Render(centerText("No runs yet this session", m.width)))
		b.WriteString("\n")
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.runs.View())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpView(redlight.PhaseLeaderboard))
	return b.String()
}
