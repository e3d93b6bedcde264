package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

var (
	speakerOnce sync.Once
	speakerRate beep.SampleRate
	speakerErr  error
)

// initSpeaker opens the output device once per process.
func initSpeaker(sr beep.SampleRate) (beep.SampleRate, error) {
	speakerOnce.Do(func() {
		speakerRate = sr
		speakerErr = speaker.Init(sr, sr.N(time.Second/10))
	})
	return speakerRate, speakerErr
}

// Speaker plays tones on the default sound device through a shared mixer.
type Speaker struct {
	mu     sync.Mutex
	sr     beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	closed bool
}

// NewSpeaker opens the sound device and starts the mixer.
func NewSpeaker(sampleRate int, volume float64) (*Speaker, error) {
	sr, err := initSpeaker(beep.SampleRate(sampleRate))
	if err != nil {
		return nil, fmt.Errorf("audio: cannot init speaker: %w: %w", ErrUnavailable, err)
	}

	s := &Speaker{
		sr:     sr,
		volume: volume,
		mixer:  &beep.Mixer{},
	}
	speaker.Play(s.mixer)
	return s, nil
}

// EmitTone mixes a decaying tone into the output. Errors are swallowed.
func (s *Speaker) EmitTone(freqHz float64, d time.Duration, w Waveform) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	tone, err := newTone(s.sr, freqHz, d, w, s.volume)
	if err != nil {
		return
	}

	speaker.Lock()
	s.mixer.Add(tone)
	speaker.Unlock()
}

// Close silences the mixer. The device itself stays open for the process.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	return nil
}

// newTone builds a finite streamer: oscillator, decay envelope, volume.
func newTone(sr beep.SampleRate, freqHz float64, d time.Duration, w Waveform, volume float64) (beep.Streamer, error) {
	var (
		osc beep.Streamer
		err error
	)
	switch w {
	case Square:
		osc, err = generators.SquareTone(sr, freqHz)
	default:
		osc, err = generators.SineTone(sr, freqHz)
	}
	if err != nil {
		return nil, fmt.Errorf("audio: cannot build %s tone at %g Hz: %w", w, freqHz, err)
	}

	n := sr.N(d)
	shaped := &decay{streamer: beep.Take(n, osc), total: n}
	return newVolume(shaped, volume), nil
}

// decay fades a stream exponentially to a tenth of its level over total samples.
type decay struct {
	streamer beep.Streamer
	pos      int
	total    int
}

func (e *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.total > 0 {
			gain = math.Pow(0.1, float64(e.pos)/float64(e.total))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *decay) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero volume is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
