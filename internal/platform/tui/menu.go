package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/redlight/internal/games/redlight"
	"github.com/vovakirdan/redlight/internal/share"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	goStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	stopStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.engine.Phase() {
	case redlight.PhasePlaying:
		return m.playingView()
	case redlight.PhaseGameOver:
		return m.gameOverView()
	case redlight.PhaseLeaderboard:
		return m.leaderboardView()
	default:
		return m.menuView()
	}
}

// menuView renders the title screen.
func (m Model) menuView() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(stopStyle.Render(centerText("R E D   L I G H T", m.width)))
	b.WriteString("\n")
	b.WriteString(goStyle.Render(centerText("G R E E N   L I G H T", m.width)))
	b.WriteString("\n\n")

	for _, line := range []string{
		"Move toward the finish line while the light is green.",
		"Freeze when it turns red: moving on red ends your run.",
		"Reach the finish before the timer runs out to level up.",
	} {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if best := m.engine.Best(); best > 0 {
		b.WriteString(accentStyle.Render(centerText(fmt.Sprintf("High Score: %d", best), m.width)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.helpView(redlight.PhaseMenu))
	return b.String()
}

// gameOverView renders the result of the last run.
func (m Model) gameOverView() string {
	snap := m.engine.Snapshot()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(stopStyle.Render(centerText("E L I M I N A T E D", m.width)))
	b.WriteString("\n")
	reason := "You moved during Red Light!"
	if snap.EndReason == redlight.EndTimeout {
		reason = "Time ran out before the finish line."
	}
	b.WriteString(dimStyle.Render(centerText(reason, m.width)))
	b.WriteString("\n\n")

	if snap.NewRecord {
		b.WriteString(accentStyle.Render(centerText("★ NEW HIGH SCORE! ★", m.width)))
		b.WriteString("\n\n")
	}

	for _, line := range []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Level Reached: %d", snap.Level),
		fmt.Sprintf("Distance: %dm", snap.Distance),
	} {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	if snap.Best > 0 {
		b.WriteString(accentStyle.Render(centerText(fmt.Sprintf("High Score: %d", snap.Best), m.width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if status := shareStatus(m.shared); status != "" {
		b.WriteString(centerText(status, m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(m.helpView(redlight.PhaseGameOver))
	return b.String()
}

// shareStatus describes how a share attempt went.
func shareStatus(res *share.Result) string {
	if res == nil {
		return ""
	}
	switch res.Method {
	case share.MethodOSC52, share.MethodClipboard:
		return "Score copied to clipboard!"
	default:
		return "Copy this: " + res.Text
	}
}

func (m Model) helpView(phase redlight.Phase) string {
	h := m.help.View(phaseHelp{keys: m.keys, phase: phase})
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, dimStyle.Render(h))
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
