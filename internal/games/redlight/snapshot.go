package redlight

// Snapshot is a read-only view of the engine for presentation and tests.
type Snapshot struct {
	RunState

	Best          int
	NewRecord     bool // The last finished run set the best score
	TapsRequired  int
	LevelDuration int // Seconds the current level started with
	Difficulty    DifficultyParams
	EndReason     EndReason
	Progress      float64 // Position / finish threshold, in [0, 1]
	Finish        float64
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	finish := e.cfg.Progression.FinishThreshold
	progress := 0.0
	if finish > 0 {
		progress = min(max(e.state.Position/finish, 0), 1)
	}

	return Snapshot{
		RunState:      e.state,
		Best:          e.best,
		NewRecord:     e.newRecord,
		TapsRequired:  TapsRequired(e.state.Level),
		LevelDuration: e.levelDuration,
		Difficulty:    e.diff,
		EndReason:     e.endReason,
		Progress:      progress,
		Finish:        finish,
	}
}

// TimeFraction returns the share of the level countdown still left, in [0, 1].
func (s Snapshot) TimeFraction() float64 {
	if s.LevelDuration <= 0 {
		return 0
	}
	return min(max(float64(s.TimeRemaining)/float64(s.LevelDuration), 0), 1)
}

// ProgressPercent is the rounded distance to finish shown on the HUD.
func (s Snapshot) ProgressPercent() int {
	return int(s.Progress*100 + 0.5)
}
