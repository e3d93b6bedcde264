// Package config provides YAML-based tuning for the Red Light, Green Light
// game: signal timing, difficulty progression, audio and sharing settings.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned (wrapped) when a configuration value is out of range.
var ErrInvalid = errors.New("invalid config")

// Config contains all configuration for the game.
type Config struct {
	Timing      TimingConfig      `yaml:"timing"`
	Progression ProgressionConfig `yaml:"progression"`
	Audio       AudioConfig       `yaml:"audio"`
	Share       ShareConfig       `yaml:"share"`
}

// TimingConfig defines the base cadence of the signal and the run timers.
// All values are in milliseconds.
type TimingConfig struct {
	SignalBaseCadenceMs int `yaml:"signal_base_cadence_ms"` // Delay before the first flip at level 1
	GoDurationMs        int `yaml:"go_duration_ms"`         // How long "go" lasts at level 1
	StopMinMs           int `yaml:"stop_min_ms"`            // Shortest "stop" (inclusive)
	StopMaxMs           int `yaml:"stop_max_ms"`            // Longest "stop" (exclusive)
	CaughtGraceMs       int `yaml:"caught_grace_ms"`        // Caught animation before game over
	CountdownTickMs     int `yaml:"countdown_tick_ms"`      // One countdown second
}

// ProgressionConfig defines how the signal tightens as levels go up.
type ProgressionConfig struct {
	FinishThreshold float64 `yaml:"finish_threshold"` // Position units to the finish line

	// Applied once per level-up to the run's difficulty.
	CadenceStepMs int `yaml:"cadence_step_ms"`
	CadenceMinMs  int `yaml:"cadence_min_ms"`
	GoStepMs      int `yaml:"go_step_ms"`
	GoMinMs       int `yaml:"go_min_ms"`

	// Applied per level on top of the run's difficulty when scheduling.
	FirstFlipLevelOffsetMs int `yaml:"first_flip_level_offset_ms"`
	GoLevelOffsetMs        int `yaml:"go_level_offset_ms"`
	GoFloorMs              int `yaml:"go_floor_ms"`
}

// AudioConfig controls the tone output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 (silent) to 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// ShareConfig controls the score sharing payload.
type ShareConfig struct {
	URL string `yaml:"url"` // Appended to the share text when set
}

// Validate checks that every value can drive the game.
func (c Config) Validate() error {
	positive := []struct {
		name string
		val  int
	}{
		{"timing.signal_base_cadence_ms", c.Timing.SignalBaseCadenceMs},
		{"timing.go_duration_ms", c.Timing.GoDurationMs},
		{"timing.stop_max_ms", c.Timing.StopMaxMs},
		{"timing.countdown_tick_ms", c.Timing.CountdownTickMs},
		{"progression.cadence_min_ms", c.Progression.CadenceMinMs},
		{"progression.go_min_ms", c.Progression.GoMinMs},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("config: %s must be positive, got %d: %w", p.name, p.val, ErrInvalid)
		}
	}

	nonNegative := []struct {
		name string
		val  int
	}{
		{"timing.stop_min_ms", c.Timing.StopMinMs},
		{"timing.caught_grace_ms", c.Timing.CaughtGraceMs},
		{"progression.cadence_step_ms", c.Progression.CadenceStepMs},
		{"progression.go_step_ms", c.Progression.GoStepMs},
		{"progression.first_flip_level_offset_ms", c.Progression.FirstFlipLevelOffsetMs},
		{"progression.go_level_offset_ms", c.Progression.GoLevelOffsetMs},
		{"progression.go_floor_ms", c.Progression.GoFloorMs},
	}
	for _, p := range nonNegative {
		if p.val < 0 {
			return fmt.Errorf("config: %s must not be negative, got %d: %w", p.name, p.val, ErrInvalid)
		}
	}

	if c.Timing.StopMinMs >= c.Timing.StopMaxMs {
		return fmt.Errorf("config: stop range [%d, %d) is empty: %w",
			c.Timing.StopMinMs, c.Timing.StopMaxMs, ErrInvalid)
	}
	if c.Progression.FinishThreshold <= 0 {
		return fmt.Errorf("config: progression.finish_threshold must be positive: %w", ErrInvalid)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio.volume must be within [0, 1], got %g: %w", c.Audio.Volume, ErrInvalid)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("config: audio.sample_rate must be positive: %w", ErrInvalid)
	}
	return nil
}

// SignalBaseCadence returns the level-1 delay before the first flip.
func (t TimingConfig) SignalBaseCadence() time.Duration { return ms(t.SignalBaseCadenceMs) }

// GoDuration returns the level-1 length of a "go" phase.
func (t TimingConfig) GoDuration() time.Duration { return ms(t.GoDurationMs) }

// StopRange returns the [min, max) range a "stop" length is drawn from.
func (t TimingConfig) StopRange() (time.Duration, time.Duration) {
	return ms(t.StopMinMs), ms(t.StopMaxMs)
}

// CaughtGrace returns how long the caught animation runs before game over.
func (t TimingConfig) CaughtGrace() time.Duration { return ms(t.CaughtGraceMs) }

// CountdownTick returns the length of one countdown second.
func (t TimingConfig) CountdownTick() time.Duration { return ms(t.CountdownTickMs) }

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
