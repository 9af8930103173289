// Package audio plays short feedback tones for editor actions.
package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the sample rate used for generated cues.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned when playing before Init.
var ErrNotInitialized = errors.New("audio not initialized")

// Cue identifies a feedback sound.
type Cue int

// Feedback cues.
const (
	CueLoaded Cue = iota
	CueApplied
	CueError
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueLoaded:
		return "loaded"
	case CueApplied:
		return "applied"
	case CueError:
		return "error"
	default:
		return fmt.Sprintf("Cue(%d)", int(c))
	}
}

// note is one tone (or a rest when freq is 0) of a cue.
type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueLoaded:  {{660, 60 * time.Millisecond}},
	CueApplied: {{523.25, 70 * time.Millisecond}, {0, 20 * time.Millisecond}, {783.99, 110 * time.Millisecond}},
	CueError:   {{220, 90 * time.Millisecond}, {0, 30 * time.Millisecond}, {196, 140 * time.Millisecond}},
}

// Player mixes cues onto the speaker. beep pulls samples on its own
// goroutine, so the player guards its state with a mutex.
type Player struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate
	volume      float64 // 0.0 to 1.0
	mixer       *beep.Mixer
}

// New creates a player at the given volume.
func New(volume float64) *Player {
	return &Player{
		sampleRate: DefaultSampleRate,
		volume:     clamp(volume, 0, 1),
		mixer:      &beep.Mixer{},
	}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)

	p.initialized = true
	return nil
}

// Close stops playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

// SetVolume sets the cue volume (0.0 to 1.0).
func (p *Player) SetVolume(vol float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = clamp(vol, 0, 1)
}

// Volume returns the cue volume.
func (p *Player) Volume() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.volume
}

// Play queues a cue. It returns immediately.
func (p *Player) Play(c Cue) error {
	p.mu.RLock()
	initialized := p.initialized
	vol := p.volume
	p.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}

	s, err := buildCue(p.sampleRate, c, vol)
	if err != nil {
		return err
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// buildCue renders a cue's notes into a single finite streamer.
func buildCue(sr beep.SampleRate, c Cue, vol float64) (beep.Streamer, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %s", c)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := sr.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("cue %s: %w", c, err)
		}
		parts = append(parts, beep.Take(samples, tone))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   gainExponent(vol),
		Silent:   vol <= 0,
	}, nil
}

// gainExponent converts a linear 0-1 volume to a base-2 exponent, so that
// 2^exponent == vol.
func gainExponent(vol float64) float64 {
	if vol <= 0 {
		return -10
	}
	return math.Log2(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
