// Package audio synthesizes the thruster rumble played while keys are held.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"orbit-lod/pkg/core"
)

// SampleRate is the output rate of every streamer in this package.
const SampleRate = beep.SampleRate(44100)

const (
	// cutoff is the low-pass corner of the rumble, in Hz.
	cutoff = 180.0
	// glide is the time the gain takes to move most of the way to a new level.
	glide = 60 * time.Millisecond
	// perKey is the gain contributed by each held key.
	perKey = 0.25
)

// Thruster is an endless streamer of low-passed noise whose loudness follows
// the number of held thrust keys. Noise comes from the xorshift generator, so
// a given seed always produces the same waveform.
type Thruster struct {
	mu     sync.Mutex
	noise  core.State
	target float64
	gain   float64
	lp     float64

	alpha float64
	decay float64
}

// NewThruster returns a silent thruster seeded with seed.
func NewThruster(seed core.Seed) *Thruster {
	t := &Thruster{
		alpha: 1 - math.Exp(-core.Tau*cutoff/float64(SampleRate)),
		decay: math.Exp(-1 / (float64(SampleRate) * glide.Seconds())),
	}
	t.noise.Reset(seed)
	return t
}

// SetLevel sets the loudness from the number of held keys. It is safe to call
// while the speaker is streaming.
func (t *Thruster) SetLevel(held int) {
	level := math.Min(float64(max(held, 0))*perKey, 1)
	t.mu.Lock()
	t.target = level
	t.mu.Unlock()
}

// Level reports the current smoothed gain.
func (t *Thruster) Level() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gain
}

// Stream implements beep.Streamer. It never ends.
func (t *Thruster) Stream(samples [][2]float64) (n int, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range samples {
		white := t.noise.Random()*2 - 1
		t.lp += t.alpha * (white - t.lp)
		t.gain = t.target + (t.gain-t.target)*t.decay
		v := t.lp * t.gain
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (t *Thruster) Err() error { return nil }

// NewRumble wraps the thruster in a master volume and a pause control for
// playback. vol is a linear factor; zero or less is silent.
func NewRumble(t *Thruster, vol float64) *beep.Ctrl {
	return &beep.Ctrl{Streamer: newVolume(t, vol)}
}

// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
