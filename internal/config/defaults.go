package config

import (
	_ "embed"
)

//go:embed defaults/redlight.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded default configuration.
// It must stay in sync with defaults/redlight.yaml.
func DefaultConfig() Config {
	return Config{
		Timing: TimingConfig{
			SignalBaseCadenceMs: 2000,
			GoDurationMs:        1500,
			StopMinMs:           500,
			StopMaxMs:           1500,
			CaughtGraceMs:       1500,
			CountdownTickMs:     1000,
		},
		Progression: ProgressionConfig{
			FinishThreshold:        85,
			CadenceStepMs:          200,
			CadenceMinMs:           500,
			GoStepMs:               100,
			GoMinMs:                300,
			FirstFlipLevelOffsetMs: 200,
			GoLevelOffsetMs:        100,
			GoFloorMs:              300,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.1,
			SampleRate: 44100,
		},
	}
}
