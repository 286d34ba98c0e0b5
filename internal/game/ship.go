package game

import (
	"github.com/tuisteroids/tuisteroids/internal/config"
	"github.com/tuisteroids/tuisteroids/internal/geom"
)

// Hull geometry in ship-local space, before rotation. The nose points along
// positive X at rotation zero.
const (
	shipNoseLength = 15.0
	shipWingLength = 10.0
	shipWingSpread = 8.0
)

// Ship is the player entity. A single instance lives for the whole run; death
// respawns it in place rather than replacing it.
type Ship struct {
	Position geom.Vec2
	Velocity geom.Vec2
	Rotation float64 // radians, normalized to [0, 2pi)

	Lives            int
	InvulnTimer      float64 // seconds remaining; > 0 means untouchable
	ExtraLifeAwarded bool    // latched once the bonus life threshold is crossed

	Thrusting bool // set during the current tick, used by the renderer for the flame
}

// NewShip places a ship at the center of the world with the configured
// starting lives and initial spawn invulnerability.
func NewShip(cfg config.GameConfig) *Ship {
	return &Ship{
		Position:    geom.V(cfg.World.Width/2, cfg.World.Height/2),
		Rotation:    0,
		Lives:       cfg.Ship.InitialLives,
		InvulnTimer: cfg.Ship.InvulnDuration,
	}
}

// Rotate applies rotation input for one tick.
func (s *Ship) Rotate(left, right bool, rotSpeed, dt float64) {
	if left {
		s.Rotation -= rotSpeed * dt
	}
	if right {
		s.Rotation += rotSpeed * dt
	}
	s.Rotation = geom.NormalizeAngle(s.Rotation)
}

// Thrust accelerates the ship along its facing and clamps speed to max.
func (s *Ship) Thrust(accel, maxSpeed, dt float64) {
	s.Velocity = s.Velocity.Add(geom.FromAngle(s.Rotation).Scale(accel * dt))
	if s.Velocity.Magnitude() > maxSpeed {
		s.Velocity = s.Velocity.Normalize().Scale(maxSpeed)
	}
}

// ApplyDrag decays velocity by the per-tick drag factor.
func (s *Ship) ApplyDrag(factor float64) {
	s.Velocity = s.Velocity.Scale(factor)
}

// Update integrates position, wraps it into the playfield, and counts down
// the invulnerability timer.
func (s *Ship) Update(dt, worldW, worldH float64) {
	s.Position = geom.Integrate(s.Position, s.Velocity, dt)
	s.Position = geom.Wrap(s.Position, worldW, worldH)
	if s.InvulnTimer > 0 {
		s.InvulnTimer -= dt
		if s.InvulnTimer < 0 {
			s.InvulnTimer = 0
		}
	}
}

// Respawn resets the ship to the center at rest with fresh invulnerability.
// Lives are not touched; the caller decides those.
func (s *Ship) Respawn(worldW, worldH, invulnDuration float64) {
	s.Position = geom.V(worldW/2, worldH/2)
	s.Velocity = geom.Vec2{}
	s.Rotation = 0
	s.InvulnTimer = invulnDuration
}

// Invulnerable reports whether the ship currently ignores asteroid contact.
func (s *Ship) Invulnerable() bool {
	return s.InvulnTimer > 0
}

// NosePosition returns the world-space tip of the ship, where bullets spawn.
func (s *Ship) NosePosition() geom.Vec2 {
	return s.Position.Add(geom.FromAngle(s.Rotation).Scale(shipNoseLength))
}

// Vertices returns the ship's triangular hull in world space: nose first,
// then the two wing tips.
func (s *Ship) Vertices() [3]geom.Vec2 {
	forward := geom.FromAngle(s.Rotation)
	side := geom.V(-forward.Y, forward.X)
	return [3]geom.Vec2{
		s.Position.Add(forward.Scale(shipNoseLength)),
		s.Position.Sub(forward.Scale(shipWingLength)).Add(side.Scale(shipWingSpread)),
		s.Position.Sub(forward.Scale(shipWingLength)).Sub(side.Scale(shipWingSpread)),
	}
}
