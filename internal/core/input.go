package core

// Action represents a semantic game action, abstracted from physical key presses.
// Each action maps to one engine command or a presentation-only request.
type Action int

const (
	ActionNone        Action = iota
	ActionAct                // Space, Up - move while the light is green
	ActionStart              // Enter - start a run or try again
	ActionLeaderboard        // L - open the leaderboard from the menu
	ActionMenu               // M, Escape - return to the menu
	ActionShare              // S - share the score after game over
	ActionHelp               // ? - toggle the full key help
	ActionQuit               // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAct:
		return "Act"
	case ActionStart:
		return "Start"
	case ActionLeaderboard:
		return "Leaderboard"
	case ActionMenu:
		return "Menu"
	case ActionShare:
		return "Share"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
