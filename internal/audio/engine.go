// Package audio synthesizes retro sound effects for simulation events using
// the beep toolkit. Playback is fire-and-forget: the simulation emits event
// tags, the engine turns them into short generated streamers, and nothing
// ever flows back. If the speaker cannot be initialized the engine stays
// silent and every call becomes a no-op, the game is fully playable without
// a sound device.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tuisteroids/tuisteroids/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Engine owns the speaker and a mixer that all effect streamers feed into.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	thrustCtrl  *beep.Ctrl
	initialized bool
}

// NewEngine creates an engine. It makes no sound until Start succeeds.
func NewEngine() *Engine {
	return &Engine{mixer: &beep.Mixer{}}
}

// Start initializes the speaker and begins streaming the mixer. Returns the
// speaker error on failure, in which case the engine remains silent.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Close silences everything. The speaker itself stays open since beep
// provides no teardown, but an empty mixer streams silence.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	if e.thrustCtrl != nil {
		e.thrustCtrl.Paused = true
		e.thrustCtrl = nil
	}
	e.mixer.Clear()
	speaker.Unlock()
	e.initialized = false
}

// Process consumes one tick's events. Thrust is level-triggered, so its loop
// runs while thrust events keep arriving and pauses the moment they stop;
// everything else is a one-shot.
func (e *Engine) Process(events []game.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	// The speaker goroutine streams from the mixer concurrently, so all
	// mutations happen under its lock.
	speaker.Lock()
	defer speaker.Unlock()

	thrustActive := false
	for _, ev := range events {
		switch ev {
		case game.EventThrust:
			thrustActive = true
		case game.EventFire:
			e.mixer.Add(fireSound(sampleRate))
		case game.EventExplosionLarge:
			e.mixer.Add(explosionSound(500*time.Millisecond, sampleRate))
		case game.EventExplosionMedium:
			e.mixer.Add(explosionSound(350*time.Millisecond, sampleRate))
		case game.EventExplosionSmall:
			e.mixer.Add(explosionSound(200*time.Millisecond, sampleRate))
		case game.EventShipDestroyed:
			e.mixer.Add(shipDestroyedSound(sampleRate))
		case game.EventExtraLife:
			e.mixer.Add(extraLifeSound(sampleRate))
		case game.EventNewWave:
			e.mixer.Add(newWaveSound(sampleRate))
		}
	}
	e.setThrust(thrustActive)
}

// setThrust starts, resumes, or pauses the looping thrust rumble.
// Caller holds e.mu and the speaker lock.
func (e *Engine) setThrust(active bool) {
	if active {
		if e.thrustCtrl == nil {
			e.thrustCtrl = &beep.Ctrl{Streamer: thrustLoopSound(sampleRate)}
			e.mixer.Add(e.thrustCtrl)
		}
		e.thrustCtrl.Paused = false
		return
	}
	if e.thrustCtrl != nil {
		e.thrustCtrl.Paused = true
	}
}
