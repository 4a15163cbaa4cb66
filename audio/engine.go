package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	tickFreq      = 1320.0
	chimeFreq     = 880.0
	tickDuration  = 30 * time.Millisecond
	chimeDuration = 180 * time.Millisecond
)

// Engine produces the per-display-second tick and the hourly chime
// through the system speaker. Initialization failure leaves the engine
// in silent mode rather than erroring; every play call on a silent or
// muted engine is a no-op.
type Engine struct {
	ready atomic.Bool
	muted atomic.Bool
}

// NewEngine creates an audio engine in silent mode; call Start to
// claim the speaker
func NewEngine() *Engine {
	return &Engine{}
}

// Start initializes the speaker. The returned error is informational:
// the engine stays usable (silently) either way.
func (ae *Engine) Start() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	ae.ready.Store(true)
	return nil
}

// Stop drops any queued sound
func (ae *Engine) Stop() {
	if ae.ready.Load() {
		speaker.Clear()
	}
}

// PlayTick emits the short per-second tick
func (ae *Engine) PlayTick() {
	ae.play(tickFreq, tickDuration)
}

// PlayChime emits the longer top-of-hour tone
func (ae *Engine) PlayChime() {
	ae.play(chimeFreq, chimeDuration)
}

// ToggleMute flips the mute state and returns the new value
func (ae *Engine) ToggleMute() bool {
	for {
		old := ae.muted.Load()
		if ae.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether playback is suppressed
func (ae *Engine) Muted() bool {
	return ae.muted.Load()
}

func (ae *Engine) play(freq float64, d time.Duration) {
	if !ae.ready.Load() || ae.muted.Load() {
		return
	}
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), tone))
}
