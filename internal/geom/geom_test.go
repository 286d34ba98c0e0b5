package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func vecApproxEq(a, b Vec2) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y)
}

func TestVectorAddition(t *testing.T) {
	result := V(3, 4).Add(V(1, 2))
	if result != (Vec2{X: 4, Y: 6}) {
		t.Errorf("Add: got %v, want {4 6}", result)
	}
}

func TestVectorSubtraction(t *testing.T) {
	result := V(3, 4).Sub(V(1, 2))
	if result != (Vec2{X: 2, Y: 2}) {
		t.Errorf("Sub: got %v, want {2 2}", result)
	}
}

func TestScalarMultiplication(t *testing.T) {
	result := V(3, 4).Scale(2)
	if result != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale: got %v, want {6 8}", result)
	}
}

func TestMagnitude(t *testing.T) {
	if mag := V(3, 4).Magnitude(); mag != 5 {
		t.Errorf("Magnitude: got %v, want 5", mag)
	}
}

func TestNormalize(t *testing.T) {
	result := V(3, 4).Normalize()
	if !vecApproxEq(result, V(0.6, 0.8)) {
		t.Errorf("Normalize: got %v, want {0.6 0.8}", result)
	}
	if !approxEq(result.Magnitude(), 1) {
		t.Errorf("Normalize: magnitude %v, want 1", result.Magnitude())
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	if result := V(0, 0).Normalize(); result != (Vec2{}) {
		t.Errorf("Normalize zero: got %v, want zero vector", result)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	vectors := []Vec2{V(3, 4), V(-7, 2), V(0.001, -0.002), V(0, 0)}
	for _, v := range vectors {
		once := v.Normalize()
		twice := once.Normalize()
		if !vecApproxEq(once, twice) {
			t.Errorf("Normalize not idempotent for %v: %v vs %v", v, once, twice)
		}
	}
}

func TestDotProduct(t *testing.T) {
	if d := V(1, 0).Dot(V(0, 1)); d != 0 {
		t.Errorf("Dot of perpendicular vectors: got %v, want 0", d)
	}
	if d := V(2, 3).Dot(V(4, 5)); d != 23 {
		t.Errorf("Dot: got %v, want 23", d)
	}
}

func TestFromAngle(t *testing.T) {
	if result := FromAngle(0); !vecApproxEq(result, V(1, 0)) {
		t.Errorf("FromAngle(0): got %v, want {1 0}", result)
	}
	if result := FromAngle(math.Pi / 2); !vecApproxEq(result, V(0, 1)) {
		t.Errorf("FromAngle(π/2): got %v, want {0 1}", result)
	}
}

func TestNormalizeAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{7, 7 - 2*math.Pi},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{-7, 4*math.Pi - 7},
	}
	for _, c := range cases {
		got := NormalizeAngle(c.in)
		if !approxEq(got, c.want) {
			t.Errorf("NormalizeAngle(%v): got %v, want %v", c.in, got, c.want)
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("NormalizeAngle(%v) = %v outside [0, 2π)", c.in, got)
		}
	}
}

func TestIntegrate(t *testing.T) {
	result := Integrate(V(100, 100), V(60, 0), 1.0/60.0)
	if !vecApproxEq(result, V(101, 100)) {
		t.Errorf("Integrate: got %v, want {101 100}", result)
	}
}

func TestWrap(t *testing.T) {
	cases := []struct {
		in, want Vec2
	}{
		{V(801, 300), V(1, 300)},
		{V(-1, 300), V(799, 300)},
		{V(400, 601), V(400, 1)},
		{V(400, -1), V(400, 599)},
		{V(400, 300), V(400, 300)},
		{V(-1601, -1201), V(799, 599)},
	}
	for _, c := range cases {
		got := Wrap(c.in, 800, 600)
		if !vecApproxEq(got, c.want) {
			t.Errorf("Wrap(%v): got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestWrapIdempotent(t *testing.T) {
	positions := []Vec2{V(801, 300), V(-50, -50), V(1234.5, -678.9)}
	for _, p := range positions {
		once := Wrap(p, 800, 600)
		twice := Wrap(once, 800, 600)
		if !vecApproxEq(once, twice) {
			t.Errorf("Wrap not idempotent for %v: %v vs %v", p, once, twice)
		}
		if once.X < 0 || once.X >= 800 || once.Y < 0 || once.Y >= 600 {
			t.Errorf("Wrap(%v) = %v outside bounds", p, once)
		}
	}
}

func TestToroidalDistanceDirect(t *testing.T) {
	dist := ToroidalDistance(V(100, 100), V(150, 100), 800, 600)
	if !approxEq(dist, 50) {
		t.Errorf("direct distance: got %v, want 50", dist)
	}
}

func TestToroidalDistanceWrapped(t *testing.T) {
	if dist := ToroidalDistance(V(10, 300), V(790, 300), 800, 600); !approxEq(dist, 20) {
		t.Errorf("horizontal wrap: got %v, want 20", dist)
	}
	if dist := ToroidalDistance(V(400, 10), V(400, 590), 800, 600); !approxEq(dist, 20) {
		t.Errorf("vertical wrap: got %v, want 20", dist)
	}
	expected := math.Sqrt(800)
	if dist := ToroidalDistance(V(10, 10), V(790, 590), 800, 600); !approxEq(dist, expected) {
		t.Errorf("both axes wrap: got %v, want %v", dist, expected)
	}
}

func TestToroidalDistanceNeverExceedsEuclidean(t *testing.T) {
	pairs := [][2]Vec2{
		{V(100, 100), V(150, 100)},
		{V(10, 300), V(790, 300)},
		{V(0, 0), V(400, 300)},
		{V(799, 599), V(1, 1)},
	}
	for _, p := range pairs {
		toroidal := ToroidalDistance(p[0], p[1], 800, 600)
		euclidean := p[0].Sub(p[1]).Magnitude()
		if toroidal > euclidean+epsilon {
			t.Errorf("toroidal %v > euclidean %v for %v", toroidal, euclidean, p)
		}
	}
}

func TestToroidalDirection(t *testing.T) {
	cases := []struct {
		from, to, want Vec2
	}{
		{V(100, 100), V(150, 100), V(50, 0)},
		{V(10, 300), V(790, 300), V(-20, 0)},
		{V(400, 10), V(400, 590), V(0, -20)},
		{V(10, 10), V(790, 590), V(-20, -20)},
		{V(790, 590), V(10, 10), V(20, 20)},
	}
	for _, c := range cases {
		got := ToroidalDirection(c.from, c.to, 800, 600)
		if !vecApproxEq(got, c.want) {
			t.Errorf("ToroidalDirection(%v → %v): got %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestToroidalDirectionMagnitudeMatchesDistance(t *testing.T) {
	from, to := V(30, 580), V(770, 20)
	dir := ToroidalDirection(from, to, 800, 600)
	dist := ToroidalDistance(from, to, 800, 600)
	if !approxEq(dir.Magnitude(), dist) {
		t.Errorf("direction magnitude %v != distance %v", dir.Magnitude(), dist)
	}
}
