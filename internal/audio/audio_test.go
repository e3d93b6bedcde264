package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/redlight/internal/config"
)

func TestToneLengthAndRange(t *testing.T) {
	sr := beep.SampleRate(44100)
	tests := []struct {
		name string
		freq float64
		dur  time.Duration
		wave Waveform
	}{
		{"C5 sine", 523.25, 300 * time.Millisecond, Sine},
		{"A3 square", 220, 200 * time.Millisecond, Square},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tone, err := newTone(sr, tc.freq, tc.dur, tc.wave, 0.1)
			if err != nil {
				t.Fatalf("newTone() failed: %v", err)
			}

			total := 0
			buf := make([][2]float64, 512)
			for {
				n, ok := tone.Stream(buf)
				for i := 0; i < n; i++ {
					if math.Abs(buf[i][0]) > 0.1+1e-9 {
						t.Fatalf("sample %d = %f exceeds volume", total+i, buf[i][0])
					}
				}
				total += n
				if !ok {
					break
				}
			}

			if total != sr.N(tc.dur) {
				t.Errorf("streamed %d samples, expected %d", total, sr.N(tc.dur))
			}
		})
	}
}

func TestDecayEnvelope(t *testing.T) {
	sr := beep.SampleRate(1000)
	constant := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
	n := sr.N(time.Second)
	env := &decay{streamer: beep.Take(n, constant), total: n}

	buf := make([][2]float64, n)
	got, _ := env.Stream(buf)
	if got != n {
		t.Fatalf("Stream() = %d samples, expected %d", got, n)
	}
	if buf[0][0] != 1 {
		t.Errorf("first sample = %f, expected 1", buf[0][0])
	}
	last := buf[n-1][0]
	if last < 0.1 || last > 0.11 {
		t.Errorf("last sample = %f, expected just above 0.1", last)
	}
	for i := 1; i < n; i++ {
		if buf[i][0] > buf[i-1][0] {
			t.Fatalf("envelope rose at sample %d", i)
		}
	}
}

func TestNewEmitterDisabledIsNop(t *testing.T) {
	em := NewEmitter(config.AudioConfig{Enabled: false, Volume: 0.1, SampleRate: 44100}, nil)
	if _, ok := em.(Nop); !ok {
		t.Fatalf("NewEmitter() = %T, expected Nop", em)
	}
	em.EmitTone(440, time.Second, Sine)
	if err := em.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
