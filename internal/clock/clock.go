// Package clock provides the scheduling facilities game engines run on.
//
// Time is virtual: it only moves when the owner calls Advance, and due
// callbacks fire synchronously on the caller's goroutine. The platform layer
// advances the clock from its frame tick, which keeps every callback inside
// the single UI update loop; tests advance it by exact durations.
package clock

import "time"

// Scheduler delivers delayed and repeating callbacks.
type Scheduler interface {
	// Now returns the time elapsed since the scheduler was created.
	Now() time.Duration

	// AfterFunc calls f once, d after now.
	AfterFunc(d time.Duration, f func()) *Timer

	// Every calls f repeatedly with period d. The first call happens d after now.
	Every(d time.Duration, f func()) *Timer
}

// Timer is a handle to a scheduled callback.
type Timer struct {
	due     time.Duration
	period  time.Duration // 0 for one-shot timers
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
	index   int // position in the heap, -1 when not queued
}

// Stop cancels the timer. It returns true if the call stopped a pending
// callback, false if the timer had already fired (one-shot) or was stopped.
// A stopped timer never fires again, even when it is already due inside the
// Advance call that is currently running. Stop is safe on a nil Timer.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	return !t.fired || t.period > 0
}

// Pending reports whether the timer will still fire.
func (t *Timer) Pending() bool {
	if t == nil || t.stopped {
		return false
	}
	return !t.fired || t.period > 0
}

// Due returns the virtual time of the next fire.
func (t *Timer) Due() time.Duration {
	if t == nil {
		return 0
	}
	return t.due
}
