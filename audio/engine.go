// Package audio plays short synthesized cues through the speaker
// It is a downstream collaborator: game systems request cues, nothing
// here reaches back into the simulation
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Cue identifies one game sound
type Cue uint8

const (
	CueFire Cue = iota
	CueExplosion
	CuePickup
	CuePlayerHit
)

type tone struct {
	freq     float64
	duration time.Duration
}

var cueTones = map[Cue]tone{
	CueFire:      {freq: 880, duration: 40 * time.Millisecond},
	CueExplosion: {freq: 110, duration: 120 * time.Millisecond},
	CuePickup:    {freq: 1320, duration: 60 * time.Millisecond},
	CuePlayerHit: {freq: 220, duration: 250 * time.Millisecond},
}

// Engine owns the speaker. A nil *Engine is a valid silent engine, so
// the game runs unchanged when audio init fails (e.g. no output device)
type Engine struct {
	rate beep.SampleRate
}

// NewEngine initializes the speaker; returns an error when no output
// device is available
func NewEngine() (*Engine, error) {
	rate := beep.SampleRate(44100)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Engine{rate: rate}, nil
}

// Play fires a cue without blocking the tick
func (e *Engine) Play(cue Cue) {
	if e == nil {
		return
	}
	t, ok := cueTones[cue]
	if !ok {
		return
	}
	sine, err := generators.SineTone(e.rate, t.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(e.rate.N(t.duration), sine))
}

// Close releases the speaker
func (e *Engine) Close() {
	if e == nil {
		return
	}
	speaker.Close()
}
