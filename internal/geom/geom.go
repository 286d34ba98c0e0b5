// Package geom provides 2D vector math and toroidal-space helpers for the
// simulation. It contains no external dependencies to keep game logic pure
// and testable.
package geom

import "math"

// Vec2 is an immutable 2D vector with float64 components.
// Operations return new values; there is no identity.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Magnitude returns the Euclidean length of v.
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to the zero vector.
func (v Vec2) Normalize() Vec2 {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec2{}
	}
	return v.Scale(1 / mag)
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Angle returns the angle of v in radians, as given by atan2.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle returns the unit vector pointing at the given angle.
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// NormalizeAngle reduces an angle to [0, 2π) regardless of sign.
func NormalizeAngle(angle float64) float64 {
	twoPi := 2 * math.Pi
	return math.Mod(math.Mod(angle, twoPi)+twoPi, twoPi)
}

// Integrate advances a position by velocity over dt using Euler integration.
func Integrate(position, velocity Vec2, dt float64) Vec2 {
	return position.Add(velocity.Scale(dt))
}

// Wrap shifts a position into the toroidal domain [0, width) × [0, height).
func Wrap(position Vec2, width, height float64) Vec2 {
	x := math.Mod(math.Mod(position.X, width)+width, width)
	y := math.Mod(math.Mod(position.Y, height)+height, height)
	return Vec2{X: x, Y: y}
}

// ToroidalDistance returns the shortest distance between two points on a
// torus of the given dimensions. Each axis independently takes the minimum
// of the direct and wrapped separations.
func ToroidalDistance(a, b Vec2, width, height float64) float64 {
	dx := math.Abs(a.X - b.X)
	dy := math.Abs(a.Y - b.Y)
	dx = math.Min(dx, width-dx)
	dy = math.Min(dy, height-dy)
	return math.Sqrt(dx*dx + dy*dy)
}

// ToroidalDirection returns the signed shortest-path vector from one point
// to another on a torus. Its magnitude equals the toroidal distance.
func ToroidalDirection(from, to Vec2, width, height float64) Vec2 {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx > width/2 {
		dx -= width
	} else if dx < -width/2 {
		dx += width
	}
	if dy > height/2 {
		dy -= height
	} else if dy < -height/2 {
		dy += height
	}
	return Vec2{X: dx, Y: dy}
}
