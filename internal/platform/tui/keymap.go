package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/redlight/internal/core"
	"github.com/vovakirdan/redlight/internal/games/redlight"
)

// KeyMap defines the key bindings of every screen.
// Which bindings are live depends on the current phase.
type KeyMap struct {
	Act         key.Binding
	Start       key.Binding
	Leaderboard key.Binding
	Menu        key.Binding
	Share       key.Binding
	Up          key.Binding
	Down        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns default key bindings.
// Start never shares a key with Act, so a player still moving when a run
// ends lands on the game over screen instead of restarting.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Act: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "move"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter", "play"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("l", "tab"),
			key.WithHelp("l", "leaderboard"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc", "b", "m"),
			key.WithHelp("esc", "menu"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key press to the action it means in phase.
// Keys that mean nothing in phase map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg, phase redlight.Phase) core.Action {
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit
	}
	if key.Matches(msg, k.Help) {
		return core.ActionHelp
	}

	switch phase {
	case redlight.PhaseMenu:
		switch {
		case key.Matches(msg, k.Start):
			return core.ActionStart
		case key.Matches(msg, k.Leaderboard):
			return core.ActionLeaderboard
		}

	case redlight.PhasePlaying:
		if key.Matches(msg, k.Act) {
			return core.ActionAct
		}

	case redlight.PhaseGameOver:
		switch {
		case key.Matches(msg, k.Start):
			return core.ActionStart
		case key.Matches(msg, k.Menu):
			return core.ActionMenu
		case key.Matches(msg, k.Share):
			return core.ActionShare
		}

	case redlight.PhaseLeaderboard:
		if key.Matches(msg, k.Menu) {
			return core.ActionMenu
		}
	}
	return core.ActionNone
}

// phaseHelp adapts the key map to bubbles/help for one phase.
type phaseHelp struct {
	keys  KeyMap
	phase redlight.Phase
}

// ShortHelp returns key bindings for the short help view.
func (h phaseHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.phase {
	case redlight.PhaseMenu:
		return []key.Binding{k.Start, k.Leaderboard, k.Quit}
	case redlight.PhasePlaying:
		return []key.Binding{k.Act, k.Quit}
	case redlight.PhaseGameOver:
		return []key.Binding{k.Start, k.Share, k.Menu, k.Quit}
	case redlight.PhaseLeaderboard:
		return []key.Binding{k.Up, k.Down, k.Menu}
	}
	return []key.Binding{k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (h phaseHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		h.ShortHelp(),
		{h.keys.Help, h.keys.Quit},
	}
}
