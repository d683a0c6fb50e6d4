package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset resolves a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemy.Speed *= 0.75
		cfg.Boss.Speed *= 0.75
		cfg.Spawn.Interval = cfg.Spawn.Interval * 3 / 2
		cfg.Spawn.SafeDistance++
	case DifficultyHard:
		cfg.Enemy.Speed *= 1.25
		cfg.Boss.Speed *= 1.5
		cfg.Spawn.Interval = max(cfg.Spawn.Interval*3/5, time.Second)
		if cfg.Boss.SummonEvery == 0 {
			cfg.Boss.SummonEvery = 3 * time.Second
		}
	}
}
