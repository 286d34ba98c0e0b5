package game

import (
	"math"
	"math/rand"

	"github.com/tuisteroids/tuisteroids/internal/config"
	"github.com/tuisteroids/tuisteroids/internal/geom"
)

// spawnWave creates the large asteroids for the given wave number: wave N
// brings baseCount+N rocks. Every spawn position keeps at least the
// configured safe distance from the ship (wrap-aware), so a fresh wave never
// materializes on top of the player. Velocities are random headings at a
// random speed within the configured band.
func spawnWave(rng *rand.Rand, wave int, shipPos geom.Vec2, cfg config.GameConfig) []*Asteroid {
	count := cfg.Waves.BaseCount + wave
	out := make([]*Asteroid, 0, count)
	for i := 0; i < count; i++ {
		pos := safeSpawnPosition(rng, shipPos, cfg)
		heading := rng.Float64() * 2 * math.Pi
		speed := randRange(rng, cfg.Asteroids.MinSpeed, cfg.Asteroids.MaxSpeed)
		out = append(out, NewAsteroid(rng, pos, geom.FromAngle(heading).Scale(speed), SizeLarge))
	}
	return out
}

// safeSpawnPosition draws uniform positions until one clears the safe
// distance from the ship. The safe zone covers a small fraction of the
// playfield, so rejection sampling terminates quickly in practice.
func safeSpawnPosition(rng *rand.Rand, shipPos geom.Vec2, cfg config.GameConfig) geom.Vec2 {
	for {
		pos := geom.V(
			rng.Float64()*cfg.World.Width,
			rng.Float64()*cfg.World.Height,
		)
		if geom.ToroidalDistance(pos, shipPos, cfg.World.Width, cfg.World.Height) >= cfg.Waves.SafeDistance {
			return pos
		}
	}
}
