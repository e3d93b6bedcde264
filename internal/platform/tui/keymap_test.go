package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/redlight/internal/core"
	"github.com/vovakirdan/redlight/internal/games/redlight"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		key      tea.KeyMsg
		phase    redlight.Phase
		expected core.Action
	}{
		{"enter starts from menu", keyEnter, redlight.PhaseMenu, core.ActionStart},
		{"space does not start from menu", keySpace, redlight.PhaseMenu, core.ActionNone},
		{"l opens leaderboard", runes("l"), redlight.PhaseMenu, core.ActionLeaderboard},
		{"esc does nothing in menu", keyEsc, redlight.PhaseMenu, core.ActionNone},

		{"space moves", keySpace, redlight.PhasePlaying, core.ActionAct},
		{"up moves", keyUp, redlight.PhasePlaying, core.ActionAct},
		{"w moves", runes("w"), redlight.PhasePlaying, core.ActionAct},
		{"enter does not restart mid-run", keyEnter, redlight.PhasePlaying, core.ActionNone},
		{"esc does not leave a run", keyEsc, redlight.PhasePlaying, core.ActionNone},
		{"share is ignored mid-run", runes("s"), redlight.PhasePlaying, core.ActionNone},

		{"enter tries again", keyEnter, redlight.PhaseGameOver, core.ActionStart},
		{"r tries again", runes("r"), redlight.PhaseGameOver, core.ActionStart},
		{"space does not try again", keySpace, redlight.PhaseGameOver, core.ActionNone},
		{"up does not try again", keyUp, redlight.PhaseGameOver, core.ActionNone},
		{"esc returns to menu", keyEsc, redlight.PhaseGameOver, core.ActionMenu},
		{"s shares", runes("s"), redlight.PhaseGameOver, core.ActionShare},

		{"esc leaves leaderboard", keyEsc, redlight.PhaseLeaderboard, core.ActionMenu},
		{"up scrolls leaderboard", keyUp, redlight.PhaseLeaderboard, core.ActionNone},

		{"q quits everywhere", runes("q"), redlight.PhasePlaying, core.ActionQuit},
		{"ctrl+c quits", keyCtrlC, redlight.PhaseLeaderboard, core.ActionQuit},
		{"? toggles help", runes("?"), redlight.PhaseMenu, core.ActionHelp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.key, tc.phase); got != tc.expected {
				t.Errorf("Action(%q, %v) = %v, expected %v", tc.key.String(), tc.phase, got, tc.expected)
			}
		})
	}
}

func TestPhaseHelpListsLiveKeys(t *testing.T) {
	km := DefaultKeyMap()

	playing := phaseHelp{keys: km, phase: redlight.PhasePlaying}.ShortHelp()
	if len(playing) != 2 || playing[0].Help().Desc != "move" {
		t.Errorf("playing help = %v", playing)
	}

	over := phaseHelp{keys: km, phase: redlight.PhaseGameOver}.ShortHelp()
	found := false
	for _, b := range over {
		if b.Help().Desc == "share" {
			found = true
		}
	}
	if !found {
		t.Error("game over help should offer sharing")
	}
}
