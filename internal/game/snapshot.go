package game

import (
	"hash/fnv"
	"math"
)

// Snapshot captures the full observable simulation state of a world at one
// tick. Two worlds stepped identically must produce equal snapshots; the
// determinism tests compare their hashes across whole runs.
type Snapshot struct {
	Tick  uint64
	Score int
	Lives int
	Wave  int

	ShipX, ShipY   float64
	ShipVX, ShipVY float64
	ShipRotation   float64
	ShipInvuln     float64
	ExtraLife      bool

	WavePending    bool
	WaveDelayTicks int

	Asteroids []AsteroidSnapshot
	Bullets   []BulletSnapshot
}

// AsteroidSnapshot is one asteroid's state, shape included since the outline
// is drawn from the shared random stream.
type AsteroidSnapshot struct {
	X, Y       float64
	VX, VY     float64
	Rotation   float64
	AngularVel float64
	Size       Size
	Shape      []float64 // x,y pairs
}

// BulletSnapshot is one live bullet's state.
type BulletSnapshot struct {
	X, Y     float64
	VX, VY   float64
	Traveled float64
}

// Snapshot copies the world's current state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:           w.tick,
		Score:          w.score,
		Lives:          w.ship.Lives,
		Wave:           w.wave,
		ShipX:          w.ship.Position.X,
		ShipY:          w.ship.Position.Y,
		ShipVX:         w.ship.Velocity.X,
		ShipVY:         w.ship.Velocity.Y,
		ShipRotation:   w.ship.Rotation,
		ShipInvuln:     w.ship.InvulnTimer,
		ExtraLife:      w.ship.ExtraLifeAwarded,
		WavePending:    w.wavePending,
		WaveDelayTicks: w.waveDelayTicks,
	}
	for _, a := range w.asteroids {
		as := AsteroidSnapshot{
			X: a.Position.X, Y: a.Position.Y,
			VX: a.Velocity.X, VY: a.Velocity.Y,
			Rotation:   a.Rotation,
			AngularVel: a.AngularVel,
			Size:       a.Size,
			Shape:      make([]float64, 0, len(a.Shape)*2),
		}
		for _, v := range a.Shape {
			as.Shape = append(as.Shape, v.X, v.Y)
		}
		s.Asteroids = append(s.Asteroids, as)
	}
	for _, b := range w.bullets {
		s.Bullets = append(s.Bullets, BulletSnapshot{
			X: b.Position.X, Y: b.Position.Y,
			VX: b.Velocity.X, VY: b.Velocity.Y,
			Traveled: b.Traveled,
		})
	}
	return s
}

// Hash folds the snapshot into a single value via FNV-1a over the exact bit
// patterns of every field. Equal states hash equal on any platform.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)

	writeUint := func(v uint64) {
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf)
	}
	writeFloat := func(v float64) { writeUint(math.Float64bits(v)) }
	writeBool := func(v bool) {
		if v {
			writeUint(1)
		} else {
			writeUint(0)
		}
	}

	writeUint(s.Tick)
	writeUint(uint64(s.Score))
	writeUint(uint64(s.Lives))
	writeUint(uint64(s.Wave))
	writeFloat(s.ShipX)
	writeFloat(s.ShipY)
	writeFloat(s.ShipVX)
	writeFloat(s.ShipVY)
	writeFloat(s.ShipRotation)
	writeFloat(s.ShipInvuln)
	writeBool(s.ExtraLife)
	writeBool(s.WavePending)
	writeUint(uint64(s.WaveDelayTicks))

	writeUint(uint64(len(s.Asteroids)))
	for _, a := range s.Asteroids {
		writeFloat(a.X)
		writeFloat(a.Y)
		writeFloat(a.VX)
		writeFloat(a.VY)
		writeFloat(a.Rotation)
		writeFloat(a.AngularVel)
		writeUint(uint64(a.Size))
		for _, f := range a.Shape {
			writeFloat(f)
		}
	}
	writeUint(uint64(len(s.Bullets)))
	for _, b := range s.Bullets {
		writeFloat(b.X)
		writeFloat(b.Y)
		writeFloat(b.VX)
		writeFloat(b.VY)
		writeFloat(b.Traveled)
	}
	return h.Sum64()
}
