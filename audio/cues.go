package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/fetch/engine"
)

// Cue identifies a generated sound effect
type Cue uint8

const (
	CueThrow Cue = iota
	CuePickup
	CueDeliver
	CueLand
)

// cue frequencies, rough pentatonic spread so overlapping cues stay pleasant
var cueFreq = map[Cue]float64{
	CueThrow:   880,
	CuePickup:  660,
	CueDeliver: 523,
	CueLand:    330,
}

const cueDuration = 60 * time.Millisecond

// Engine plays short generated tones for simulation events.
// Initialization failure is non-fatal; the game runs silent.
type Engine struct {
	enabled    bool
	sampleRate beep.SampleRate
}

// NewEngine initializes the speaker. The returned engine is usable even
// on error; Play becomes a no-op.
func NewEngine() (*Engine, error) {
	e := &Engine{sampleRate: beep.SampleRate(44100)}
	err := speaker.Init(e.sampleRate, e.sampleRate.N(time.Second/10))
	if err != nil {
		return e, err
	}
	e.enabled = true
	return e, nil
}

// Play queues a cue tone
func (e *Engine) Play(cue Cue) {
	if !e.enabled {
		return
	}
	freq, ok := cueFreq[cue]
	if !ok {
		return
	}
	sine, err := generators.SineTone(e.sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(e.sampleRate.N(cueDuration), sine))
}

// PlayEvent maps a simulation event to its cue, ignoring unmapped events
func (e *Engine) PlayEvent(eventType engine.EventType) {
	switch eventType {
	case engine.EventThrowRelease:
		e.Play(CueThrow)
	case engine.EventDogPickup:
		e.Play(CuePickup)
	case engine.EventDogDeliver:
		e.Play(CueDeliver)
	case engine.EventBallLanded:
		e.Play(CueLand)
	}
}

// Close shuts the speaker down
func (e *Engine) Close() {
	if e.enabled {
		speaker.Close()
	}
}
