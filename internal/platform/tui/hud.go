package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/redlight/internal/games/redlight"
)

// playingView renders the HUD above the playing field.
func (m Model) playingView() string {
	snap := m.engine.Snapshot()
	var b strings.Builder

	stats := fmt.Sprintf("Level %d   Score %d   Distance %dm", snap.Level, snap.Score, snap.Distance)
	if m.clock.Now() < m.bannerUntil {
		stats += "   " + accentStyle.Render("LEVEL UP!")
	}
	b.WriteString(centerText(stats, m.width))
	b.WriteString("\n")

	timeLine := fmt.Sprintf("Time %s %2ds", m.timeBar.ViewAs(snap.TimeFraction()), snap.TimeRemaining)
	b.WriteString(centerText(timeLine, m.width))
	b.WriteString("\n")

	distLine := fmt.Sprintf("Distance to finish: %3d%% %s", snap.ProgressPercent(), m.distBar.ViewAs(snap.Progress))
	b.WriteString(centerText(distLine, m.width))
	b.WriteString("\n\n")

	m.engine.Render(m.screen)
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")

	if snap.CaughtPending {
		// The act key does nothing until the run ends.
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, stopStyle.Render("frozen")))
		b.WriteString("\n")
	} else {
		b.WriteString(m.helpView(redlight.PhasePlaying))
	}
	return b.String()
}
