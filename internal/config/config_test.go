package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := DefaultDodgeConfig()
	if cfg.Timers != want.Timers {
		t.Errorf("timers = %+v, expected %+v", cfg.Timers, want.Timers)
	}
	if cfg.Mobs.MinSpeed != 150 || cfg.Mobs.MaxSpeed != 250 {
		t.Errorf("mob speed range = [%g, %g], expected [150, 250]", cfg.Mobs.MinSpeed, cfg.Mobs.MaxSpeed)
	}
	if math.Abs(cfg.Mobs.Jitter-math.Pi/4) > 1e-5 {
		t.Errorf("jitter = %f, expected π/4", cfg.Mobs.Jitter)
	}
	if cfg.Version != "1.0.0" {
		t.Errorf("version = %q, expected 1.0.0", cfg.Version)
	}
	if cfg.Difficulty.Enabled || want.Difficulty.Enabled {
		t.Error("difficulty progression should be off unless a preset enables it")
	}
}

func TestLoadCustomPathOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "version: \"2.1.0\"\ntimers:\n  spawn_interval: 250ms\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}
	if cfg.Version != "2.1.0" {
		t.Errorf("version = %q, expected 2.1.0", cfg.Version)
	}
	if cfg.Timers.SpawnInterval != 250*time.Millisecond {
		t.Errorf("spawn_interval = %v, expected 250ms", cfg.Timers.SpawnInterval)
	}
	// Untouched keys keep their defaults
	if cfg.Timers.ScoreInterval != time.Second {
		t.Errorf("score_interval = %v, expected default 1s", cfg.Timers.ScoreInterval)
	}
}

func TestLoadUserConfigDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".dodge", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "dodge.yaml"), []byte("player:\n  speed: 123\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.Speed != 123 {
		t.Errorf("player.speed = %g, expected 123 from user config", cfg.Player.Speed)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("timers: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed YAML")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("mobs:\n  min_speed: 300\n  max_speed: 100\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "speed range") {
		t.Errorf("expected speed range validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultDodgeConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	cfg.Timers.TitleDelay = 0
	cfg.World.CellWidth = -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"timers.title_delay", "world: cell size"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultDodgeConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.wantEnabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.wantEnabled)
			}
			if cfg.Difficulty.InitialLevel != tc.wantLevel {
				t.Errorf("initial level = %f, expected %f", cfg.Difficulty.InitialLevel, tc.wantLevel)
			}
		})
	}

	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should not parse")
	}
}

func TestMarshalRoundTripsDurations(t *testing.T) {
	data, err := Marshal(DefaultDodgeConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "spawn_interval: 500ms") {
		t.Errorf("durations should be written as strings, got:\n%s", data)
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, SpawnReduction: 0.5},
	})

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Level(%d) = %f, expected %f", tc.score, got, tc.want)
		}
	}

	if got := d.SpeedFactor(100, 0); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("SpeedFactor at max = %f, expected 2.0", got)
	}
	if got := d.SpawnInterval(time.Second, 100, 0); got != 500*time.Millisecond {
		t.Errorf("SpawnInterval at max = %v, expected 500ms", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     false,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, SpawnReduction: 0.9},
	})

	if d.IsEnabled() {
		t.Error("manager should report disabled")
	}
	if got := d.SpeedFactor(1000, 0); got != 1.0 {
		t.Errorf("SpeedFactor = %f, expected 1.0 when disabled", got)
	}
	if got := d.SpawnInterval(500*time.Millisecond, 1000, 0); got != 500*time.Millisecond {
		t.Errorf("SpawnInterval = %v, expected base when disabled", got)
	}
}

func TestSpawnIntervalFloor(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Progression:  ProgressionConfig{Type: "none"},
		Scaling:      ScalingConfig{SpawnReduction: 1.0},
	})
	if got := d.SpawnInterval(time.Second, 0, 0); got != minSpawnInterval {
		t.Errorf("SpawnInterval = %v, expected floor %v", got, minSpawnInterval)
	}
}
