package config

import (
	_ "embed"
	"math"
	"time"
)

//go:embed defaults/survival.yaml
var defaultSurvivalYAML []byte

// DefaultConfig returns the hard-coded default configuration.
// It matches defaults/survival.yaml and is used when the embedded file
// cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Map: MapConfig{
			Cols:     20,
			Rows:     20,
			TileSize: 60,
			Preset:   "arena",
		},
		Player: PlayerConfig{
			Speed: 4,
		},
		Enemy: EnemyConfig{
			Speed:        2,
			SlowDown:     0.8,
			CircleRadius: 70,
			AngleJitter:  math.Pi / 16,
		},
		Boss: BossConfig{
			Speed:    2,
			SlowDown: 0.8,
		},
		Spawn: SpawnConfig{
			SafeDistance: 5,
			Interval:     10 * time.Second,
			MaxAttempts:  1000,
		},
		Waves: WavesConfig{
			StartLevel:         1,
			LevelUpEvery:       120 * time.Second,
			LevelBanner:        2 * time.Second,
			EnemiesPerLevel:    2,
			BossEvery:          5,
			BossBanner:         time.Second,
			BossBattle:         10 * time.Second,
			BossWaveMultiplier: 3,
		},
		Clock: ClockConfig{
			TickRate:   60,
			MaxCatchUp: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSurvivalYAML
}
