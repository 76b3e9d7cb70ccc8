package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFile = "dodge.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.dodge/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default
func Load(customPath string) (DodgeConfig, error) {
	// Start from defaults so partial files only override what they name
	cfg := DefaultDodgeConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultDodgeConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
			return candidate, nil
		}
	}

	if err := yaml.Unmarshal(defaultDodgeYAML, &cfg); err != nil {
		return DefaultDodgeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodge", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *DodgeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// Validate rejects configurations the game cannot run with.
func (c DodgeConfig) Validate() error {
	var errs []error

	timers := []struct {
		name string
		d    time.Duration
	}{
		{"timers.start_delay", c.Timers.StartDelay},
		{"timers.spawn_interval", c.Timers.SpawnInterval},
		{"timers.score_interval", c.Timers.ScoreInterval},
		{"timers.message_duration", c.Timers.MessageDuration},
		{"timers.title_delay", c.Timers.TitleDelay},
	}
	for _, tm := range timers {
		if tm.d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", tm.name))
		}
	}

	if c.Mobs.MinSpeed < 0 || c.Mobs.MaxSpeed < c.Mobs.MinSpeed {
		errs = append(errs, fmt.Errorf("mobs: invalid speed range [%g, %g]", c.Mobs.MinSpeed, c.Mobs.MaxSpeed))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, errors.New("player.speed must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player: hitbox must be at least 1x1"))
	}
	if c.World.CellWidth <= 0 || c.World.CellHeight <= 0 {
		errs = append(errs, errors.New("world: cell size must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg DodgeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
