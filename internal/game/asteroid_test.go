package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tuisteroids/tuisteroids/internal/config"
	"github.com/tuisteroids/tuisteroids/internal/geom"
)

func TestSizeClasses(t *testing.T) {
	tests := []struct {
		size   Size
		radius float64
		points int
	}{
		{SizeLarge, 40, 20},
		{SizeMedium, 20, 50},
		{SizeSmall, 10, 100},
	}
	for _, tt := range tests {
		if got := tt.size.Radius(); got != tt.radius {
			t.Errorf("%s radius = %.0f, want %.0f", tt.size, got, tt.radius)
		}
		if got := tt.size.Points(); got != tt.points {
			t.Errorf("%s points = %d, want %d", tt.size, got, tt.points)
		}
	}

	if child, ok := SizeLarge.Split(); !ok || child != SizeMedium {
		t.Error("Large should split into medium")
	}
	if child, ok := SizeMedium.Split(); !ok || child != SizeSmall {
		t.Error("Medium should split into small")
	}
	if _, ok := SizeSmall.Split(); ok {
		t.Error("Small should not split")
	}
}

func TestRandomShapeBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		a := NewAsteroid(rng, geom.V(100, 100), geom.Vec2{}, SizeLarge)
		if len(a.Shape) < 8 || len(a.Shape) > 12 {
			t.Fatalf("Shape should have 8-12 vertices, got %d", len(a.Shape))
		}
		r := a.Size.Radius()
		for j, v := range a.Shape {
			d := v.Magnitude()
			if d < 0.5*r-1e-9 || d > 1.2*r+1e-9 {
				t.Fatalf("Vertex %d at distance %.2f, want within [%.1f, %.1f]", j, d, 0.5*r, 1.2*r)
			}
		}
	}
}

func TestSplitChildrenSpeedBoost(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cfg := config.DefaultGameConfig().Asteroids

	parent := NewAsteroid(rng, geom.V(100, 100), geom.V(100, 0), SizeLarge)
	children := parent.SplitInto(rng, cfg)
	if len(children) != 2 {
		t.Fatalf("Split should produce 2 children, got %d", len(children))
	}
	wantSpeed := 100 * cfg.SplitSpeedBoost
	for i, c := range children {
		if speed := c.Velocity.Magnitude(); math.Abs(speed-wantSpeed) > 1e-9 {
			t.Errorf("Child %d speed %.2f, want %.2f", i, speed, wantSpeed)
		}
		if c.Size != SizeMedium {
			t.Errorf("Child %d should be medium, got %s", i, c.Size)
		}
	}

	// Children deflect to opposite sides of the parent heading.
	base := parent.Velocity.Angle()
	d0 := angleDiff(children[0].Velocity.Angle(), base)
	d1 := angleDiff(children[1].Velocity.Angle(), base)
	if d0 <= 0 || d1 >= 0 {
		t.Errorf("Children should deflect to opposite sides, got %.3f and %.3f", d0, d1)
	}
	for i, d := range []float64{d0, -d1} {
		if d < cfg.SplitMinAngle-1e-9 || d > cfg.SplitMaxAngle+1e-9 {
			t.Errorf("Child %d deflection %.3f outside [%.1f, %.1f]", i, d, cfg.SplitMinAngle, cfg.SplitMaxAngle)
		}
	}
}

func TestSplitSpeedFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cfg := config.DefaultGameConfig().Asteroids

	// A near-stationary parent still throws children at the minimum speed.
	parent := NewAsteroid(rng, geom.V(100, 100), geom.V(1, 0), SizeMedium)
	for i, c := range parent.SplitInto(rng, cfg) {
		if speed := c.Velocity.Magnitude(); math.Abs(speed-cfg.SplitMinSpeed) > 1e-9 {
			t.Errorf("Child %d speed %.2f, want floor %.2f", i, speed, cfg.SplitMinSpeed)
		}
	}
}

func TestAsteroidUpdateWrapsAndSpins(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := NewAsteroid(rng, geom.V(799, 300), geom.V(120, 0), SizeLarge)
	a.AngularVel = 1

	before := a.Rotation
	a.Update(1.0/60, 800, 600)

	if a.Position.X >= 800 || a.Position.X < 0 {
		t.Errorf("Position X %.2f should wrap into [0, 800)", a.Position.X)
	}
	if a.Rotation == before {
		t.Error("Rotation should advance by the angular velocity")
	}
}

func TestWorldVerticesFollowRotation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := NewAsteroid(rng, geom.V(400, 300), geom.Vec2{}, SizeMedium)
	a.Rotation = 0

	v0 := a.WorldVertices()
	a.Rotation = math.Pi / 2
	v90 := a.WorldVertices()

	if len(v0) != len(a.Shape) {
		t.Fatalf("World vertices should match shape length %d, got %d", len(a.Shape), len(v0))
	}
	// A quarter turn maps local (x, y) to world (-y, x) about the center.
	for i := range v0 {
		lx, ly := v0[i].X-400, v0[i].Y-300
		wantX, wantY := -ly, lx
		if math.Abs(v90[i].X-400-wantX) > 1e-9 || math.Abs(v90[i].Y-300-wantY) > 1e-9 {
			t.Fatalf("Vertex %d after quarter turn: got (%.3f, %.3f), want (%.3f, %.3f)",
				i, v90[i].X-400, v90[i].Y-300, wantX, wantY)
		}
	}
}
