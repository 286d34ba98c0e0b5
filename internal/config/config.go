// Package config provides YAML-based game configuration loading for the
// arcade. Tunables cover world size, ship handling, bullets, asteroids, and
// wave pacing; the simulation reads them once at reset so a run stays
// deterministic regardless of config files changing on disk.
package config

// GameConfig contains all tunable parameters of the simulation.
type GameConfig struct {
	World     WorldConfig    `yaml:"world"`
	Ship      ShipConfig     `yaml:"ship"`
	Bullets   BulletConfig   `yaml:"bullets"`
	Asteroids AsteroidConfig `yaml:"asteroids"`
	Waves     WaveConfig     `yaml:"waves"`
	Scoring   ScoringConfig  `yaml:"scoring"`
}

// WorldConfig defines the toroidal playfield dimensions in world units.
// All wrap and distance math is parameterized by these, never hard-coded.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines ship handling parameters.
type ShipConfig struct {
	RotationSpeed   float64 `yaml:"rotation_speed"`   // radians per second
	ThrustAccel     float64 `yaml:"thrust_accel"`     // units per second^2
	MaxSpeed        float64 `yaml:"max_speed"`        // units per second
	DragFactor      float64 `yaml:"drag_factor"`      // velocity multiplier per tick
	Radius          float64 `yaml:"radius"`           // collision radius
	InitialLives    int     `yaml:"initial_lives"`
	InvulnDuration  float64 `yaml:"invuln_duration"`  // seconds after respawn
}

// BulletConfig defines projectile parameters.
type BulletConfig struct {
	Speed       float64 `yaml:"speed"`        // units per second, fixed magnitude
	MaxLive     int     `yaml:"max_live"`     // concurrent bullet cap
	Radius      float64 `yaml:"radius"`       // collision radius
	RangeFactor float64 `yaml:"range_factor"` // expiry distance as a fraction of world width
}

// AsteroidConfig defines asteroid spawn and split parameters.
type AsteroidConfig struct {
	MinSpeed        float64 `yaml:"min_speed"`         // wave spawn speed range
	MaxSpeed        float64 `yaml:"max_speed"`
	SplitSpeedBoost float64 `yaml:"split_speed_boost"` // child speed multiplier
	SplitMinSpeed   float64 `yaml:"split_min_speed"`   // floor for child speed
	SplitMinAngle   float64 `yaml:"split_min_angle"`   // radians off parent heading
	SplitMaxAngle   float64 `yaml:"split_max_angle"`
}

// WaveConfig defines wave progression parameters.
type WaveConfig struct {
	BaseCount    int     `yaml:"base_count"`    // wave N spawns N + base_count large asteroids
	Delay        float64 `yaml:"delay"`         // seconds of simulated time between waves
	SafeDistance float64 `yaml:"safe_distance"` // minimum toroidal spawn distance from the ship
}

// ScoringConfig defines score thresholds.
type ScoringConfig struct {
	ExtraLifeScore int `yaml:"extra_life_score"` // one bonus life when score reaches this
}
