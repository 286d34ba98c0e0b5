package game

import (
	"math"

	"github.com/tuisteroids/tuisteroids/internal/core"
	"github.com/tuisteroids/tuisteroids/internal/geom"
)

// Aiming tolerances for the demo pilot, in radians.
const (
	aiDeadzone     = 0.1 // stop turning inside this error
	aiThrustWindow = 0.5 // thrust only while roughly facing the target
	aiFireWindow   = 0.2 // fire only when nearly on target
)

// DemoInput pilots the attract-mode demo with the same input vocabulary a
// player has: pick the nearest asteroid by wrap-aware distance, turn toward
// it the short way, thrust while roughly aligned, and fire when lined up.
// It reads world state and fabricates an InputFrame; it never mutates the
// world directly.
func DemoInput(w *World) core.InputFrame {
	in := core.NewInputFrame()
	target := nearestAsteroid(w)
	if target == nil {
		return in
	}

	worldW, worldH := w.cfg.World.Width, w.cfg.World.Height
	dir := geom.ToroidalDirection(w.ship.Position, target.Position, worldW, worldH)
	diff := angleDiff(dir.Angle(), w.ship.Rotation)

	if math.Abs(diff) > aiDeadzone {
		if diff > 0 {
			in.Set(core.ActionRotateRight)
		} else {
			in.Set(core.ActionRotateLeft)
		}
	}
	if math.Abs(diff) < aiThrustWindow {
		in.Set(core.ActionThrust)
	}
	if math.Abs(diff) < aiFireWindow {
		in.Set(core.ActionFire)
	}
	return in
}

// nearestAsteroid returns the asteroid closest to the ship on the torus,
// or nil when the field is clear. Ties break toward the earliest asteroid
// in update order, keeping the demo deterministic.
func nearestAsteroid(w *World) *Asteroid {
	var best *Asteroid
	bestDist := math.MaxFloat64
	for _, a := range w.asteroids {
		d := geom.ToroidalDistance(w.ship.Position, a.Position, w.cfg.World.Width, w.cfg.World.Height)
		if d < bestDist {
			bestDist = d
			best = a
		}
	}
	return best
}

// angleDiff returns the signed shortest rotation from `from` to `to`,
// in (-pi, pi].
func angleDiff(to, from float64) float64 {
	diff := geom.NormalizeAngle(to - from)
	if diff > math.Pi {
		diff -= 2 * math.Pi
	}
	return diff
}
