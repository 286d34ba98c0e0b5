package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in simulation tuning. Kept in sync with
// defaults/game.yaml; used as the last-resort fallback if the embedded YAML
// fails to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Ship: ShipConfig{
			RotationSpeed:  5.0,
			ThrustAccel:    200.0,
			MaxSpeed:       400.0,
			DragFactor:     0.99,
			Radius:         12.0,
			InitialLives:   3,
			InvulnDuration: 3.0,
		},
		Bullets: BulletConfig{
			Speed:       500.0,
			MaxLive:     4,
			Radius:      2.0,
			RangeFactor: 0.8,
		},
		Asteroids: AsteroidConfig{
			MinSpeed:        20.0,
			MaxSpeed:        80.0,
			SplitSpeedBoost: 1.2,
			SplitMinSpeed:   20.0,
			SplitMinAngle:   0.3,
			SplitMaxAngle:   0.8,
		},
		Waves: WaveConfig{
			BaseCount:    3,
			Delay:        2.0,
			SafeDistance: 150.0,
		},
		Scoring: ScoringConfig{
			ExtraLifeScore: 10000,
		},
	}
}
