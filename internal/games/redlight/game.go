// Package redlight implements the Red Light, Green Light engine: the phase
// state machine, the signal generator, scoring and level progression.
//
// The engine is driven by a clock.Scheduler and is not safe for concurrent
// use. Its owner calls commands and advances the scheduler from one goroutine.
package redlight

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/redlight/internal/audio"
	"github.com/vovakirdan/redlight/internal/clock"
	"github.com/vovakirdan/redlight/internal/config"
)

// ScoreStore persists the best score.
type ScoreStore interface {
	BestScore() (int, error)
	SaveBestScore(score int) error
}

// ToneEmitter plays a cue tone. Implementations must not block.
type ToneEmitter interface {
	EmitTone(freqHz float64, d time.Duration, w audio.Waveform)
}

// Option configures an Engine.
type Option func(*Engine)

// WithToneEmitter sets the cue tone output. The default is silent.
func WithToneEmitter(t ToneEmitter) Option {
	return func(e *Engine) {
		if t != nil {
			e.tones = t
		}
	}
}

// WithLogger sets the engine logger. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSeed makes signal choices reproducible. Zero keeps the time-based seed.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed != 0 {
			e.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithObserver registers a callback for engine events.
func WithObserver(f func(Event)) Option {
	return func(e *Engine) {
		e.observer = f
	}
}

// Engine owns the game state and the timers of the current run.
type Engine struct {
	cfg      config.Config
	curve    curve
	sched    clock.Scheduler
	store    ScoreStore
	tones    ToneEmitter
	logger   *log.Logger
	rng      *rand.Rand
	observer func(Event)

	state         RunState
	diff          DifficultyParams
	levelDuration int
	best          int
	newRecord     bool
	endReason     EndReason
	runs          []RunSummary

	// generation changes on every run start and teardown; callbacks of an
	// older generation are ignored.
	generation uint64
	countdown  *clock.Timer
	grace      *clock.Timer
	signals    *signalGenerator
	closed     bool
}

// New creates an engine in the menu phase and reads the best score once.
// A nil store keeps the best score in memory for the engine's lifetime.
// An invalid cfg is replaced by config.DefaultConfig.
func New(cfg config.Config, sched clock.Scheduler, store ScoreStore, opts ...Option) *Engine {
	e := &Engine{
		sched:  sched,
		store:  store,
		tones:  audio.Nop{},
		logger: log.New(io.Discard),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := cfg.Validate(); err != nil {
		e.logger.Warn("using default game config", "err", err)
		cfg = config.DefaultConfig()
	}
	e.cfg = cfg
	e.curve = newCurve(cfg)

	e.signals = &signalGenerator{
		sched:  sched,
		rng:    e.rng,
		tones:  e.tones,
		hold:   e.signalHold,
		onFlip: e.onSignalFlip,
	}

	e.state = RunState{Phase: PhaseMenu, Level: 1}
	e.diff = e.curve.base()
	e.levelDuration = LevelTimer(1)
	e.best = e.loadBest()
	return e
}

func (e *Engine) loadBest() int {
	if e.store == nil {
		return 0
	}
	best, err := e.store.BestScore()
	if err != nil {
		e.logger.Warn("cannot read best score", "err", err)
		return 0
	}
	return max(best, 0)
}

// StartGame begins a new run from the menu or the game over screen.
func (e *Engine) StartGame() {
	if e.closed {
		return
	}
	if e.state.Phase != PhaseMenu && e.state.Phase != PhaseGameOver {
		return
	}

	e.stopRunTimers()
	e.generation++
	e.state = RunState{
		Phase:         PhasePlaying,
		Signal:        SignalGo,
		Level:         1,
		TimeRemaining: LevelTimer(1),
	}
	e.diff = e.curve.base()
	e.levelDuration = e.state.TimeRemaining
	e.newRecord = false
	e.endReason = EndNone

	e.startCountdown()
	e.signals.start(e.curve.firstFlip(e.diff, e.state.Level))

	e.logger.Debug("run started", "seconds", e.state.TimeRemaining)
	e.emit(EventPhaseChanged)
}

// GoToMenu returns to the menu from the game over or leaderboard screen.
func (e *Engine) GoToMenu() {
	if e.closed {
		return
	}
	if e.state.Phase != PhaseGameOver && e.state.Phase != PhaseLeaderboard {
		return
	}
	e.state.Phase = PhaseMenu
	e.emit(EventPhaseChanged)
}

// ShowLeaderboard opens the leaderboard from the menu.
func (e *Engine) ShowLeaderboard() {
	if e.closed || e.state.Phase != PhaseMenu {
		return
	}
	e.state.Phase = PhaseLeaderboard
	e.emit(EventPhaseChanged)
}

// Act handles one move attempt. It is ignored outside a run and while a
// caught animation is pending.
func (e *Engine) Act() {
	if e.closed || e.state.Phase != PhasePlaying || e.state.CaughtPending {
		return
	}

	if e.state.Signal == SignalStop {
		e.caught()
		return
	}

	required := TapsRequired(e.state.Level)
	finish := e.cfg.Progression.FinishThreshold

	e.state.Position += finish / float64(required)
	e.state.Distance++
	e.state.ActsThisLevel++
	e.state.Score += ScoreIncrement(e.state.Level)

	// The act count guards against the float sum landing just under finish.
	if e.state.Position >= finish || e.state.ActsThisLevel >= required {
		e.levelUp()
	}
}

func (e *Engine) caught() {
	e.state.CaughtPending = true
	gen := e.generation
	e.grace = e.sched.AfterFunc(e.cfg.Timing.CaughtGrace(), func() {
		if gen != e.generation {
			return
		}
		e.commitGameOver(EndCaught)
	})
	e.logger.Debug("caught", "level", e.state.Level, "score", e.state.Score)
	e.emit(EventCaught)
}

func (e *Engine) levelUp() {
	e.state.Level++
	e.state.ActsThisLevel = 0
	e.state.Position = 0
	e.state.TimeRemaining = LevelTimer(e.state.Level)
	e.levelDuration = e.state.TimeRemaining
	e.diff = e.curve.tighten(e.diff)

	// The new level gets a full first second and a fresh signal cadence.
	e.startCountdown()
	e.signals.start(e.curve.firstFlip(e.diff, e.state.Level))

	e.logger.Debug("level up", "level", e.state.Level, "seconds", e.state.TimeRemaining)
	e.emit(EventLevelUp)
}

func (e *Engine) startCountdown() {
	e.countdown.Stop()
	gen := e.generation
	e.countdown = e.sched.Every(e.cfg.Timing.CountdownTick(), func() {
		if gen != e.generation || e.state.Phase != PhasePlaying {
			return
		}
		if e.state.TimeRemaining <= 1 {
			e.state.TimeRemaining = 0
			e.commitGameOver(EndTimeout)
			return
		}
		e.state.TimeRemaining--
	})
}

func (e *Engine) signalHold(s Signal) time.Duration {
	if s == SignalStop {
		return stopHold(e.rng, e.diff.StopDurationMin, e.diff.StopDurationMax)
	}
	return e.curve.goHold(e.diff, e.state.Level)
}

func (e *Engine) onSignalFlip(s Signal) {
	if e.state.Phase != PhasePlaying {
		e.signals.stop()
		return
	}
	e.state.Signal = s
	e.emit(EventSignalFlipped)
}

// commitGameOver ends the run. It is the only path into PhaseGameOver and
// does nothing unless a run is in progress, so the best score is written
// at most once per run.
func (e *Engine) commitGameOver(reason EndReason) {
	if e.state.Phase != PhasePlaying {
		return
	}

	e.stopRunTimers()
	e.state.Phase = PhaseGameOver
	e.state.CaughtPending = false
	e.endReason = reason

	if e.state.Score > e.best {
		e.best = e.state.Score
		e.newRecord = true
		if e.store != nil {
			if err := e.store.SaveBestScore(e.best); err != nil {
				e.logger.Warn("cannot save best score", "score", e.best, "err", err)
			}
		}
		e.logger.Info("new best score", "score", e.best)
	}

	e.recordRun()
	e.logger.Debug("run ended", "reason", reason, "score", e.state.Score, "level", e.state.Level)
	e.emit(EventPhaseChanged)
	if e.newRecord {
		e.emit(EventNewRecord)
	}
}

func (e *Engine) recordRun() {
	run := RunSummary{
		Score:     e.state.Score,
		Level:     e.state.Level,
		Distance:  e.state.Distance,
		Reason:    e.endReason,
		NewRecord: e.newRecord,
	}
	e.runs = append([]RunSummary{run}, e.runs...)
	if len(e.runs) > maxRuns {
		e.runs = e.runs[:maxRuns]
	}
}

// stopRunTimers cancels every callback owned by the current run.
func (e *Engine) stopRunTimers() {
	e.countdown.Stop()
	e.countdown = nil
	e.grace.Stop()
	e.grace = nil
	e.signals.stop()
}

// Close cancels every pending callback. A closed engine ignores all commands.
// A run in progress is abandoned without a game over.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.stopRunTimers()
	e.generation++
	e.closed = true
}

func (e *Engine) emit(kind EventKind) {
	if e.observer == nil {
		return
	}
	e.observer(Event{
		Kind:   kind,
		Phase:  e.state.Phase,
		Signal: e.state.Signal,
		Level:  e.state.Level,
		Score:  e.state.Score,
	})
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.state.Phase }

// Score returns the score of the current or last run.
func (e *Engine) Score() int { return e.state.Score }

// Best returns the best score known to the engine.
func (e *Engine) Best() int { return e.best }

// Runs returns the finished runs of this engine, newest first.
func (e *Engine) Runs() []RunSummary {
	out := make([]RunSummary, len(e.runs))
	copy(out, e.runs)
	return out
}
