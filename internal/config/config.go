// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import "time"

// DodgeConfig contains all configuration for Dodge the Creeps.
type DodgeConfig struct {
	Version    string           `yaml:"version"`
	Timers     TimerConfig      `yaml:"timers"`
	Mobs       MobConfig        `yaml:"mobs"`
	Player     PlayerConfig     `yaml:"player"`
	World      WorldConfig      `yaml:"world"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TimerConfig defines the durations of the round timers.
type TimerConfig struct {
	StartDelay      time.Duration `yaml:"start_delay"`
	SpawnInterval   time.Duration `yaml:"spawn_interval"`
	ScoreInterval   time.Duration `yaml:"score_interval"`
	MessageDuration time.Duration `yaml:"message_duration"`
	TitleDelay      time.Duration `yaml:"title_delay"`
}

// MobConfig defines enemy kinematics.
type MobConfig struct {
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	Jitter   float64 `yaml:"jitter"` // Radians either side of the path normal
}

// PlayerConfig defines the player avatar.
type PlayerConfig struct {
	Speed  float64 `yaml:"speed"`
	StartX float64 `yaml:"start_x"` // Ratio of play-area width
	StartY float64 `yaml:"start_y"` // Ratio of play-area height
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
}

// WorldConfig maps simulation units onto terminal cells.
// Terminal cells are roughly twice as tall as they are wide.
type WorldConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to mob speed at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // Fraction of the spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
