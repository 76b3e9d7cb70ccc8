package config

import (
	_ "embed"
	"math"
	"time"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the hardcoded default configuration.
// It matches defaults/dodge.yaml and is used when the embedded file cannot be parsed.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Version: "1.0.0",
		Timers: TimerConfig{
			StartDelay:      2 * time.Second,
			SpawnInterval:   500 * time.Millisecond,
			ScoreInterval:   time.Second,
			MessageDuration: 2 * time.Second,
			TitleDelay:      time.Second,
		},
		Mobs: MobConfig{
			MinSpeed: 150,
			MaxSpeed: 250,
			Jitter:   math.Pi / 4,
		},
		Player: PlayerConfig{
			Speed:  400,
			StartX: 0.5,
			StartY: 0.75,
			Width:  2,
			Height: 1,
		},
		World: WorldConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnReduction:  0.4,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
