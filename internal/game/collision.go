package game

import "github.com/tuisteroids/tuisteroids/internal/geom"

// circlesCollide tests two circles on the torus: the distance is the
// shortest wrap-aware separation, so entities straddling an edge still
// collide with entities on the far side.
func circlesCollide(a, b geom.Vec2, ra, rb, worldW, worldH float64) bool {
	return geom.ToroidalDistance(a, b, worldW, worldH) < ra+rb
}

// resolveBulletHits pairs every live bullet against every asteroid. A hit
// kills the bullet, replaces the asteroid with its split children, and
// banks the asteroid's points. Each bullet hits at most one asteroid; a
// bullet that already hit this tick is skipped for later asteroids.
// Returns the points earned and the explosion events in asteroid order.
func (w *World) resolveBulletHits() (points int, events []Event) {
	worldW, worldH := w.cfg.World.Width, w.cfg.World.Height
	bulletR := w.cfg.Bullets.Radius

	survivors := w.asteroids[:0]
	var spawned []*Asteroid
	for _, a := range w.asteroids {
		hit := false
		for _, b := range w.bullets {
			if !b.Alive {
				continue
			}
			if circlesCollide(b.Position, a.Position, bulletR, a.Size.Radius(), worldW, worldH) {
				b.Alive = false
				hit = true
				break
			}
		}
		if hit {
			points += a.Size.Points()
			events = append(events, explosionEvent(a.Size))
			spawned = append(spawned, a.SplitInto(w.rng, w.cfg.Asteroids)...)
		} else {
			survivors = append(survivors, a)
		}
	}
	w.asteroids = append(survivors, spawned...)
	return points, events
}

// checkShipHit tests the ship against every asteroid, skipping the check
// entirely while invulnerable. A hit costs a life and respawns the ship at
// the center; if that was the last life the run is over. Respawn
// invulnerability makes further hits in the same tick moot.
func (w *World) checkShipHit() (destroyed, gameOver bool) {
	if w.ship.Invulnerable() {
		return false, false
	}
	worldW, worldH := w.cfg.World.Width, w.cfg.World.Height
	for _, a := range w.asteroids {
		if !circlesCollide(w.ship.Position, a.Position, w.cfg.Ship.Radius, a.Size.Radius(), worldW, worldH) {
			continue
		}
		w.ship.Lives--
		if w.ship.Lives <= 0 {
			return true, true
		}
		w.ship.Respawn(worldW, worldH, w.cfg.Ship.InvulnDuration)
		return true, false
	}
	return false, false
}
