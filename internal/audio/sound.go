// Package audio plays short sound cues for game events.
//
// Audio is optional: every method is a no-op until Initialize succeeds, so
// a machine without a sound device plays silently.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/lemon-snake/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Cue lengths.
const (
	eatDuration      = 60 * time.Millisecond
	gameOverDuration = 600 * time.Millisecond
)

// SoundManager mixes event cues onto the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager. volume is linear, 0.0 - 1.0.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: core.ClampFloat(volume, 0, 1),
	}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close silences all cues and releases the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Enabled reports whether cues reach the speaker.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayEvents plays the cue for each event of a tick.
func (sm *SoundManager) PlayEvents(events []core.Event) {
	for _, e := range events {
		switch e {
		case core.EventAte:
			sm.PlayEat()
		case core.EventGameOver:
			sm.PlayGameOver()
		}
	}
}

// PlayEat plays a short high chirp.
func (sm *SoundManager) PlayEat() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	tone, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return
	}
	sm.add(beep.Take(sampleRate.N(eatDuration), tone))
}

// PlayGameOver plays a falling tone.
func (sm *SoundManager) PlayGameOver() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.add(NewSweep(sampleRate, 440, 110, gameOverDuration))
}

// add queues s on the mixer. Must hold sm.mu.
func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(withVolume(s, sm.volume))
	speaker.Unlock()
}

// withVolume scales s by a linear volume.
func withVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sweep is a sine tone gliding between two frequencies with a linear fade out.
type Sweep struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

// NewSweep creates a sweep from one frequency to another over d.
func NewSweep(sr beep.SampleRate, from, to float64, d time.Duration) *Sweep {
	return &Sweep{
		sr:    sr,
		from:  from,
		to:    to,
		total: sr.N(d),
	}
}

// Stream fills samples until the sweep has run its length.
func (s *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			return i, true
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		s.phase += 2 * math.Pi * freq / float64(s.sr)

		sample := 0.4 * (1 - progress) * math.Sin(s.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		s.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (s *Sweep) Err() error {
	return nil
}
