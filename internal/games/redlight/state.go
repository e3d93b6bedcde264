package redlight

// Phase is the top-level state of the engine.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseLeaderboard
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseLeaderboard:
		return "leaderboard"
	default:
		return "unknown"
	}
}

// Signal is the state of the light the player watches.
type Signal int

const (
	SignalGo Signal = iota
	SignalStop
)

// String returns a human-readable name for the signal.
func (s Signal) String() string {
	if s == SignalStop {
		return "stop"
	}
	return "go"
}

// EndReason tells how a run reached game over.
type EndReason string

const (
	EndNone    EndReason = ""
	EndCaught  EndReason = "caught"
	EndTimeout EndReason = "timeout"
)

// RunState is the mutable state of the current run.
// It is reset by StartGame and kept for display after game over.
type RunState struct {
	Phase         Phase
	Signal        Signal
	Position      float64 // [0, finish threshold)
	TimeRemaining int     // Seconds
	Score         int
	Level         int
	ActsThisLevel int
	Distance      int
	CaughtPending bool
}

// RunSummary is the result of a finished run. Summaries live in memory only.
type RunSummary struct {
	Score     int
	Level     int
	Distance  int
	Reason    EndReason
	NewRecord bool
}

// maxRuns bounds the in-memory run history.
const maxRuns = 10

// EventKind identifies an observable engine event.
type EventKind int

const (
	EventPhaseChanged EventKind = iota
	EventSignalFlipped
	EventLevelUp
	EventCaught
	EventNewRecord
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPhaseChanged:
		return "phase_changed"
	case EventSignalFlipped:
		return "signal_flipped"
	case EventLevelUp:
		return "level_up"
	case EventCaught:
		return "caught"
	case EventNewRecord:
		return "new_record"
	default:
		return "unknown"
	}
}

// Event is delivered to the observer after the state it describes is applied.
type Event struct {
	Kind   EventKind
	Phase  Phase
	Signal Signal
	Level  int
	Score  int
}
