package game

import (
	"math"
	"math/rand"

	"github.com/tuisteroids/tuisteroids/internal/config"
	"github.com/tuisteroids/tuisteroids/internal/geom"
)

// Size classifies an asteroid. Larges split into mediums, mediums into
// smalls, smalls vanish.
type Size int

const (
	SizeLarge Size = iota
	SizeMedium
	SizeSmall
)

// Radius returns the collision radius for the size class.
func (s Size) Radius() float64 {
	switch s {
	case SizeLarge:
		return 40
	case SizeMedium:
		return 20
	default:
		return 10
	}
}

// Points returns the score awarded for destroying an asteroid of this size.
// Smaller rocks are worth more.
func (s Size) Points() int {
	switch s {
	case SizeLarge:
		return 20
	case SizeMedium:
		return 50
	default:
		return 100
	}
}

// Split returns the size class of the children and whether this size splits
// at all.
func (s Size) Split() (Size, bool) {
	switch s {
	case SizeLarge:
		return SizeMedium, true
	case SizeMedium:
		return SizeSmall, true
	default:
		return SizeSmall, false
	}
}

func (s Size) String() string {
	switch s {
	case SizeLarge:
		return "large"
	case SizeMedium:
		return "medium"
	default:
		return "small"
	}
}

// Asteroid is a drifting rock with a fixed jagged outline generated at
// creation and a constant spin.
type Asteroid struct {
	Position   geom.Vec2
	Velocity   geom.Vec2
	Rotation   float64
	AngularVel float64 // radians per second
	Size       Size
	Shape      []geom.Vec2 // local-space outline, closed implicitly
}

// NewAsteroid creates an asteroid at pos with the given velocity and a
// random outline, spin, and initial rotation drawn from rng.
func NewAsteroid(rng *rand.Rand, pos, vel geom.Vec2, size Size) *Asteroid {
	return &Asteroid{
		Position:   pos,
		Velocity:   vel,
		Rotation:   rng.Float64() * 2 * math.Pi,
		AngularVel: rng.Float64()*2 - 1,
		Size:       size,
		Shape:      randomShape(rng, size.Radius()),
	}
}

// randomShape builds a jagged polygon of 8 to 12 vertices spread evenly
// around the circle, each at a distance between 0.5 and 1.2 radii.
func randomShape(rng *rand.Rand, radius float64) []geom.Vec2 {
	n := 8 + rng.Intn(5)
	shape := make([]geom.Vec2, n)
	for i := range shape {
		angle := float64(i) / float64(n) * 2 * math.Pi
		dist := radius * randRange(rng, 0.5, 1.2)
		shape[i] = geom.FromAngle(angle).Scale(dist)
	}
	return shape
}

// Update spins the asteroid and integrates its drift, wrapping the position.
func (a *Asteroid) Update(dt, worldW, worldH float64) {
	a.Rotation = geom.NormalizeAngle(a.Rotation + a.AngularVel*dt)
	a.Position = geom.Integrate(a.Position, a.Velocity, dt)
	a.Position = geom.Wrap(a.Position, worldW, worldH)
}

// SplitInto produces the two children spawned when this asteroid is
// destroyed, or nil for smalls. Children start at the parent's position,
// faster than the parent and deflected to either side of its heading.
func (a *Asteroid) SplitInto(rng *rand.Rand, cfg config.AsteroidConfig) []*Asteroid {
	childSize, ok := a.Size.Split()
	if !ok {
		return nil
	}
	speed := a.Velocity.Magnitude() * cfg.SplitSpeedBoost
	if speed < cfg.SplitMinSpeed {
		speed = cfg.SplitMinSpeed
	}
	base := a.Velocity.Angle()
	left := base + randRange(rng, cfg.SplitMinAngle, cfg.SplitMaxAngle)
	right := base - randRange(rng, cfg.SplitMinAngle, cfg.SplitMaxAngle)
	return []*Asteroid{
		NewAsteroid(rng, a.Position, geom.FromAngle(left).Scale(speed), childSize),
		NewAsteroid(rng, a.Position, geom.FromAngle(right).Scale(speed), childSize),
	}
}

// WorldVertices returns the outline rotated and translated into world space.
func (a *Asteroid) WorldVertices() []geom.Vec2 {
	sin, cos := math.Sincos(a.Rotation)
	out := make([]geom.Vec2, len(a.Shape))
	for i, v := range a.Shape {
		out[i] = geom.V(
			a.Position.X+v.X*cos-v.Y*sin,
			a.Position.Y+v.X*sin+v.Y*cos,
		)
	}
	return out
}

// randRange draws a uniform float in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
