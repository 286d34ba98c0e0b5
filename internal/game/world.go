// Package game implements the asteroids simulation core: a deterministic
// fixed-timestep world advanced one tick at a time by Step, plus the
// surrounding state machine and demo pilot. The package has no rendering or
// platform dependencies; the TUI layer consumes it through Step results and
// read accessors.
package game

import (
	"math/rand"

	"github.com/tuisteroids/tuisteroids/internal/config"
	"github.com/tuisteroids/tuisteroids/internal/core"
	"github.com/tuisteroids/tuisteroids/internal/geom"
)

// Transition signals a state change requested by a tick.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionGameOver
	TransitionQuit
)

// StepResult is what one tick hands back to the caller: an optional
// transition plus the events that occurred, in order of occurrence.
type StepResult struct {
	Transition Transition
	Events     []Event
}

// World is one run of the game: ship, asteroids, bullets, score, and wave
// progression. All randomness flows through a single seeded source, so two
// worlds with the same seed and input sequence evolve identically.
type World struct {
	cfg config.GameConfig
	dt  float64
	rng *rand.Rand

	ship      *Ship
	asteroids []*Asteroid
	bullets   []*Bullet

	score int
	wave  int

	wavePending    bool
	waveDelayTicks int
	waveDelayTotal int

	tick uint64
}

// NewWorld builds a fresh run with wave 1 already on the field. The world
// dimensions and tick rate must be positive.
func NewWorld(cfg config.GameConfig, tickRate int, seed int64) *World {
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		panic("game: world dimensions must be positive")
	}
	if tickRate <= 0 {
		panic("game: tick rate must be positive")
	}
	w := &World{
		cfg:            cfg,
		dt:             1.0 / float64(tickRate),
		rng:            rand.New(rand.NewSource(seed)),
		wave:           1,
		waveDelayTotal: int(cfg.Waves.Delay*float64(tickRate) + 0.5),
	}
	w.ship = NewShip(cfg)
	w.asteroids = spawnWave(w.rng, w.wave, w.ship.Position, cfg)
	return w
}

// Step advances the simulation by exactly one tick. The fixed order is:
// input, ship physics, bullets, asteroids, collisions, scoring, wave
// progression. Callers own the pacing; Step never looks at wall time.
func (w *World) Step(in core.InputFrame) StepResult {
	var res StepResult

	if in.Has(core.ActionQuit) {
		res.Transition = TransitionQuit
		return res
	}

	// Ship physics.
	worldW, worldH := w.cfg.World.Width, w.cfg.World.Height
	w.ship.Rotate(in.Has(core.ActionRotateLeft), in.Has(core.ActionRotateRight), w.cfg.Ship.RotationSpeed, w.dt)
	w.ship.Thrusting = in.Has(core.ActionThrust)
	if w.ship.Thrusting {
		w.ship.Thrust(w.cfg.Ship.ThrustAccel, w.cfg.Ship.MaxSpeed, w.dt)
		res.Events = append(res.Events, EventThrust)
	}
	w.ship.ApplyDrag(w.cfg.Ship.DragFactor)
	w.ship.Update(w.dt, worldW, worldH)

	// Bullets: advance, expire, then fire.
	maxRange := w.cfg.Bullets.RangeFactor * worldW
	for _, b := range w.bullets {
		b.Update(w.dt, worldW, worldH, maxRange)
	}
	w.compactBullets()
	if in.Has(core.ActionFire) && len(w.bullets) < w.cfg.Bullets.MaxLive {
		w.fire()
		res.Events = append(res.Events, EventFire)
	}

	// Asteroids drift and spin.
	for _, a := range w.asteroids {
		a.Update(w.dt, worldW, worldH)
	}

	// Collisions: bullets against asteroids first, then the ship. All
	// collisions resolve before any scoring side effects.
	points, explosions := w.resolveBulletHits()
	w.compactBullets()
	res.Events = append(res.Events, explosions...)

	destroyed, gameOver := w.checkShipHit()
	if destroyed {
		res.Events = append(res.Events, EventShipDestroyed)
	}

	// The tick's kills still count on a fatal tick, but a dead ship cannot
	// collect the bonus life.
	w.score += points
	if !gameOver && !w.ship.ExtraLifeAwarded && w.score >= w.cfg.Scoring.ExtraLifeScore {
		w.ship.ExtraLifeAwarded = true
		w.ship.Lives++
		res.Events = append(res.Events, EventExtraLife)
	}

	if gameOver {
		res.Transition = TransitionGameOver
		w.tick++
		return res
	}

	// Wave progression: once the field is clear, wait out the delay and
	// spawn the next, larger wave.
	if len(w.asteroids) == 0 {
		if !w.wavePending {
			w.wavePending = true
			w.waveDelayTicks = w.waveDelayTotal
		} else if w.waveDelayTicks > 0 {
			w.waveDelayTicks--
		}
		if w.wavePending && w.waveDelayTicks == 0 {
			w.wavePending = false
			w.wave++
			w.asteroids = spawnWave(w.rng, w.wave, w.ship.Position, w.cfg)
			res.Events = append(res.Events, EventNewWave)
		}
	}

	w.tick++
	return res
}

// fire spawns a bullet at the ship's nose, traveling along its facing.
func (w *World) fire() {
	w.bullets = append(w.bullets, &Bullet{
		Position: geom.Wrap(w.ship.NosePosition(), w.cfg.World.Width, w.cfg.World.Height),
		Velocity: geom.FromAngle(w.ship.Rotation).Scale(w.cfg.Bullets.Speed),
		Alive:    true,
	})
}

// compactBullets drops expired bullets while preserving firing order.
func (w *World) compactBullets() {
	live := w.bullets[:0]
	for _, b := range w.bullets {
		if b.Alive {
			live = append(live, b)
		}
	}
	w.bullets = live
}

// Read accessors for the renderer and tests.

func (w *World) Ship() *Ship             { return w.ship }
func (w *World) Asteroids() []*Asteroid  { return w.asteroids }
func (w *World) Bullets() []*Bullet      { return w.bullets }
func (w *World) Score() int              { return w.score }
func (w *World) Lives() int              { return w.ship.Lives }
func (w *World) Wave() int               { return w.wave }
func (w *World) Tick() uint64            { return w.tick }
func (w *World) Config() config.GameConfig { return w.cfg }

// WaveCleared reports whether the field is empty and the next wave is
// counting down, which the HUD uses for the interstitial banner.
func (w *World) WaveCleared() bool { return w.wavePending }
