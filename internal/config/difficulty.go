package config

import "time"

// minSpawnInterval keeps the mob stream finite on extreme configs.
const minSpawnInterval = 100 * time.Millisecond

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: ClampLevel(cfg.InitialLevel),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = ClampLevel(progress)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpeedFactor returns the multiplier applied to mob speeds.
// It grows from 1 to 1+SpeedMultiplier as the level goes from 0 to 1.
func (d *DifficultyManager) SpeedFactor(score int, ticks int) float64 {
	return 1.0 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier
}

// SpawnInterval returns the spawn timer period for the current level.
func (d *DifficultyManager) SpawnInterval(base time.Duration, score int, ticks int) time.Duration {
	reduction := d.Level(score, ticks) * ClampLevel(d.cfg.Scaling.SpawnReduction)
	interval := time.Duration(float64(base) * (1.0 - reduction))
	if interval < minSpawnInterval {
		interval = minSpawnInterval
	}
	return interval
}

// ClampLevel restricts a level or ratio to [0, 1].
func ClampLevel(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
