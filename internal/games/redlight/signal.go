package redlight

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/redlight/internal/audio"
	"github.com/vovakirdan/redlight/internal/clock"
)

// tone is one note of a cue, played offset after the flip.
type tone struct {
	offset time.Duration
	freq   float64
	dur    time.Duration
	wave   audio.Waveform
}

// goCue is an ascending major chord: C5, E5, G5.
var goCue = []tone{
	{0, 523.25, 300 * time.Millisecond, audio.Sine},
	{100 * time.Millisecond, 659.25, 300 * time.Millisecond, audio.Sine},
	{200 * time.Millisecond, 783.99, 400 * time.Millisecond, audio.Sine},
}

// stopCue is a descending alarm: A3, G3.
var stopCue = []tone{
	{0, 220, 200 * time.Millisecond, audio.Square},
	{150 * time.Millisecond, 196, 300 * time.Millisecond, audio.Square},
}

// signalGenerator flips the signal on a variable cadence while running.
// Every pending flip and delayed cue tone is a timer it owns; stop cancels them all.
type signalGenerator struct {
	sched clock.Scheduler
	rng   *rand.Rand
	tones ToneEmitter

	// hold returns how long the new signal lasts before the next flip.
	hold   func(Signal) time.Duration
	onFlip func(Signal)

	running bool
	flip    *clock.Timer
	cues    []*clock.Timer
}

// start schedules the first flip after delay.
func (g *signalGenerator) start(delay time.Duration) {
	g.stop()
	g.running = true
	g.flip = g.sched.AfterFunc(delay, g.cycle)
}

// stop cancels the pending flip and every queued cue tone.
func (g *signalGenerator) stop() {
	g.running = false
	g.flip.Stop()
	g.flip = nil
	for _, t := range g.cues {
		t.Stop()
	}
	g.cues = g.cues[:0]
}

// cycle picks the next signal with equal odds, independent of the current one.
func (g *signalGenerator) cycle() {
	if !g.running {
		return
	}

	next := SignalGo
	if g.rng.Intn(2) == 1 {
		next = SignalStop
	}

	g.onFlip(next)
	if !g.running {
		return
	}
	g.playCue(next)
	g.flip = g.sched.AfterFunc(g.hold(next), g.cycle)
}

func (g *signalGenerator) playCue(s Signal) {
	cue := goCue
	if s == SignalStop {
		cue = stopCue
	}

	// Drop handles of tones that already played.
	live := g.cues[:0]
	for _, t := range g.cues {
		if t.Pending() {
			live = append(live, t)
		}
	}
	g.cues = live

	for _, n := range cue {
		if n.offset == 0 {
			g.tones.EmitTone(n.freq, n.dur, n.wave)
			continue
		}
		g.cues = append(g.cues, g.sched.AfterFunc(n.offset, func() {
			g.tones.EmitTone(n.freq, n.dur, n.wave)
		}))
	}
}

// stopHold draws a "stop" length uniformly from [lo, hi).
func stopHold(rng *rand.Rand, lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(rng.Int63n(int64(hi-lo)))
}
