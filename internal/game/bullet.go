package game

import "github.com/tuisteroids/tuisteroids/internal/geom"

// Bullet is a short-lived projectile. It expires after covering a fixed
// distance rather than after a fixed time, so its reach does not depend on
// wrap-arounds or tick rate.
type Bullet struct {
	Position geom.Vec2
	Velocity geom.Vec2
	Traveled float64 // world units covered since firing
	Alive    bool
}

// Update integrates the bullet, wraps it, and accumulates traveled distance.
// Once the bullet has covered maxRange it expires.
func (b *Bullet) Update(dt, worldW, worldH, maxRange float64) {
	if !b.Alive {
		return
	}
	b.Position = geom.Integrate(b.Position, b.Velocity, dt)
	b.Position = geom.Wrap(b.Position, worldW, worldH)
	b.Traveled += b.Velocity.Magnitude() * dt
	if b.Traveled >= maxRange {
		b.Alive = false
	}
}
