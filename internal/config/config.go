// Package config provides YAML-based configuration loading and difficulty
// presets for the survival simulation.
package config

import (
	"fmt"
	"time"
)

// Config contains every tunable of a survival session.
type Config struct {
	Map    MapConfig    `yaml:"map"`
	Player PlayerConfig `yaml:"player"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Boss   BossConfig   `yaml:"boss"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Waves  WavesConfig  `yaml:"waves"`
	Clock  ClockConfig  `yaml:"clock"`
}

// MapConfig defines the obstacle grid.
type MapConfig struct {
	Cols     int      `yaml:"cols"`
	Rows     int      `yaml:"rows"`
	TileSize float64  `yaml:"tile_size"` // pixels per tile, also the entity size
	Preset   string   `yaml:"preset"`    // registered layout name, used when Layout is empty
	Layout   []string `yaml:"layout"`    // explicit rows, '#' blocked and '.' open
}

// PlayerConfig defines player movement.
type PlayerConfig struct {
	Speed float64 `yaml:"speed"` // pixels per tick
}

// EnemyConfig defines circling pursuers.
type EnemyConfig struct {
	Speed        float64 `yaml:"speed"`
	SlowDown     float64 `yaml:"slow_down"`
	CircleRadius float64 `yaml:"circle_radius"`
	AngleJitter  float64 `yaml:"angle_jitter"` // max per-tick angle change in radians
}

// BossConfig defines direct pursuers.
type BossConfig struct {
	Speed       float64       `yaml:"speed"`
	SlowDown    float64       `yaml:"slow_down"`
	SummonEvery time.Duration `yaml:"summon_every"` // 0 disables summoning
}

// SpawnConfig defines spawn placement and the ordinary spawn timer.
type SpawnConfig struct {
	SafeDistance int           `yaml:"safe_distance"` // tiles, per axis
	Interval     time.Duration `yaml:"interval"`
	MaxAttempts  int           `yaml:"max_attempts"`
}

// WavesConfig defines level progression and boss battles.
type WavesConfig struct {
	StartLevel         int           `yaml:"start_level"`
	LevelUpEvery       time.Duration `yaml:"level_up_every"`
	LevelBanner        time.Duration `yaml:"level_banner"`
	EnemiesPerLevel    int           `yaml:"enemies_per_level"`
	BossEvery          int           `yaml:"boss_every"`
	BossBanner         time.Duration `yaml:"boss_banner"`
	BossBattle         time.Duration `yaml:"boss_battle"`
	BossWaveMultiplier int           `yaml:"boss_wave_multiplier"`
}

// ClockConfig defines the fixed timestep.
type ClockConfig struct {
	TickRate   int `yaml:"tick_rate"`
	MaxCatchUp int `yaml:"max_catch_up"`
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case len(c.Map.Layout) == 0 && (c.Map.Cols < 5 || c.Map.Rows < 5):
		return fmt.Errorf("config: map must be at least 5x5, got %dx%d", c.Map.Cols, c.Map.Rows)
	case c.Map.TileSize < 2:
		return fmt.Errorf("config: tile_size must be at least 2, got %v", c.Map.TileSize)
	case c.Player.Speed <= 0:
		return fmt.Errorf("config: player speed must be positive, got %v", c.Player.Speed)
	case c.Enemy.Speed < 0 || c.Boss.Speed < 0:
		return fmt.Errorf("config: enemy and boss speed must not be negative")
	case c.Spawn.SafeDistance < 0:
		return fmt.Errorf("config: safe_distance must not be negative, got %d", c.Spawn.SafeDistance)
	case c.Spawn.MaxAttempts < 1:
		return fmt.Errorf("config: max_attempts must be at least 1, got %d", c.Spawn.MaxAttempts)
	case c.Spawn.Interval <= 0:
		return fmt.Errorf("config: spawn interval must be positive, got %s", c.Spawn.Interval)
	case c.Waves.LevelUpEvery < time.Second:
		return fmt.Errorf("config: level_up_every must be at least 1s, got %s", c.Waves.LevelUpEvery)
	case c.Waves.BossEvery < 1:
		return fmt.Errorf("config: boss_every must be at least 1, got %d", c.Waves.BossEvery)
	case c.Waves.StartLevel < 0:
		return fmt.Errorf("config: start_level must not be negative, got %d", c.Waves.StartLevel)
	case c.Clock.TickRate < 1:
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Clock.TickRate)
	case c.Clock.MaxCatchUp < 1:
		return fmt.Errorf("config: max_catch_up must be at least 1, got %d", c.Clock.MaxCatchUp)
	}
	return nil
}
