package redlight

import (
	"time"

	"github.com/vovakirdan/redlight/internal/config"
)

// TapsRequired returns how many go-acts cross the track at the given level.
func TapsRequired(level int) int {
	if level <= 4 {
		return level * 5
	}
	return 20 + (level-4)*10
}

// LevelTimer returns the countdown, in seconds, a level starts with.
func LevelTimer(level int) int {
	if level <= 4 {
		return 10 + (level-1)*5
	}
	return 30 + (level-4)*10
}

// ScoreIncrement returns the points one go-act is worth: floor(1 + (level-1)*0.1).
func ScoreIncrement(level int) int {
	if level < 1 {
		return 1
	}
	return 1 + (level-1)/10
}

// DifficultyParams is the signal timing of a run. It starts from the
// configured base and is tightened once per level-up.
type DifficultyParams struct {
	SignalBaseCadence time.Duration
	GoDuration        time.Duration
	StopDurationMin   time.Duration
	StopDurationMax   time.Duration // Exclusive
}

// curve derives the per-level signal delays from the config.
type curve struct {
	timing config.TimingConfig
	prog   config.ProgressionConfig
}

func newCurve(cfg config.Config) curve {
	return curve{timing: cfg.Timing, prog: cfg.Progression}
}

// base returns the level-1 difficulty.
func (c curve) base() DifficultyParams {
	lo, hi := c.timing.StopRange()
	return DifficultyParams{
		SignalBaseCadence: c.timing.SignalBaseCadence(),
		GoDuration:        c.timing.GoDuration(),
		StopDurationMin:   lo,
		StopDurationMax:   hi,
	}
}

// tighten applies one level-up step to d.
func (c curve) tighten(d DifficultyParams) DifficultyParams {
	d.SignalBaseCadence = max(d.SignalBaseCadence-msDur(c.prog.CadenceStepMs), msDur(c.prog.CadenceMinMs))
	d.GoDuration = max(d.GoDuration-msDur(c.prog.GoStepMs), msDur(c.prog.GoMinMs))
	return d
}

// firstFlip is the delay before the first flip of a level.
func (c curve) firstFlip(d DifficultyParams, level int) time.Duration {
	delay := d.SignalBaseCadence - time.Duration(level-1)*msDur(c.prog.FirstFlipLevelOffsetMs)
	return max(delay, 0)
}

// goHold is how long a "go" lasts before the next flip.
func (c curve) goHold(d DifficultyParams, level int) time.Duration {
	delay := d.GoDuration - time.Duration(level-1)*msDur(c.prog.GoLevelOffsetMs)
	return max(delay, msDur(c.prog.GoFloorMs))
}

func msDur(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
