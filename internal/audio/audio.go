// Package audio plays the short cue tones of the game.
// Output is best-effort: when no sound device is available the game runs silent.
package audio

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/redlight/internal/config"
)

// ErrUnavailable is returned (wrapped) when the sound device cannot be used.
var ErrUnavailable = errors.New("audio unavailable")

// Waveform is the oscillator shape of a tone.
type Waveform int

const (
	Sine Waveform = iota
	Square
)

// String returns a human-readable name for the waveform.
func (w Waveform) String() string {
	if w == Square {
		return "square"
	}
	return "sine"
}

// Emitter plays tones.
type Emitter interface {
	// EmitTone starts a tone and returns immediately.
	EmitTone(freqHz float64, d time.Duration, w Waveform)
	Close() error
}

// Nop discards every tone.
type Nop struct{}

// EmitTone does nothing.
func (Nop) EmitTone(float64, time.Duration, Waveform) {}

// Close does nothing.
func (Nop) Close() error { return nil }

// NewEmitter returns a speaker-backed emitter, or Nop when audio is disabled
// or the device cannot be opened.
func NewEmitter(cfg config.AudioConfig, logger *log.Logger) Emitter {
	if !cfg.Enabled {
		return Nop{}
	}
	sp, err := NewSpeaker(cfg.SampleRate, cfg.Volume)
	if err != nil {
		if logger != nil {
			logger.Debug("audio disabled", "err", err)
		}
		return Nop{}
	}
	return sp
}
