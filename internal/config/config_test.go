package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg := embeddedDefault()
	def := Default()

	if cfg.Game.MaxDistance != def.Game.MaxDistance {
		t.Errorf("MaxDistance = %v, expected %v", cfg.Game.MaxDistance, def.Game.MaxDistance)
	}
	if len(cfg.Game.LanePan) != 3 || cfg.Game.LanePan[0] != -0.8 || cfg.Game.LanePan[2] != 0.8 {
		t.Errorf("LanePan = %v, expected [-0.8 0 0.8]", cfg.Game.LanePan)
	}
	for _, name := range PowerUpNames {
		if cfg.Economy.PowerUpBaseDuration[name] != def.Economy.PowerUpBaseDuration[name] {
			t.Errorf("duration[%s] = %v, expected %v", name,
				cfg.Economy.PowerUpBaseDuration[name], def.Economy.PowerUpBaseDuration[name])
		}
		if cfg.Economy.UpgradeCosts[name] != def.Economy.UpgradeCosts[name] {
			t.Errorf("cost[%s] = %v, expected %v", name,
				cfg.Economy.UpgradeCosts[name], def.Economy.UpgradeCosts[name])
		}
	}
	if cfg.Spawn != def.Spawn {
		t.Errorf("Spawn = %+v, expected %+v", cfg.Spawn, def.Spawn)
	}
	if strings.Join(cfg.Gameplay.WordHuntLetters, "") != "HUNT" {
		t.Errorf("WordHuntLetters = %v, expected HUNT", cfg.Gameplay.WordHuntLetters)
	}
	if len(cfg.Achievements) != 3 || cfg.Achievements[0].Name != "High Jumper" {
		t.Errorf("Achievements = %+v, expected High Jumper first", cfg.Achievements)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default is invalid: %v", err)
	}
	if err := def.Validate(); err != nil {
		t.Errorf("Default() is invalid: %v", err)
	}
}

func TestLoadCustomOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "gameplay:\n  base_speed: 40\neconomy:\n  upgrade_costs:\n    magnet: 10\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Gameplay.BaseSpeed != 40 {
		t.Errorf("BaseSpeed = %v, expected 40", cfg.Gameplay.BaseSpeed)
	}
	if cfg.Gameplay.JumpDuration != 0.7 {
		t.Errorf("JumpDuration = %v, expected default 0.7", cfg.Gameplay.JumpDuration)
	}
	if cfg.Economy.UpgradeCosts["magnet"] != 10 {
		t.Errorf("cost[magnet] = %d, expected 10", cfg.Economy.UpgradeCosts["magnet"])
	}
	if cfg.Economy.UpgradeCosts["jetpack"] != 500 {
		t.Errorf("cost[jetpack] = %d, expected default 500", cfg.Economy.UpgradeCosts["jetpack"])
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown power-up", "economy:\n  upgrade_costs:\n    rocket: 10\n", "unknown power-up"},
		{"pan out of range", "game:\n  lane_pan: [-2, 0, 1]\n", "outside [-1, 1]"},
		{"bad spawn mode", "spawn:\n  mode: sometimes\n", "spawn.mode"},
		{"no channels", "audio:\n  channels: 0\n", "audio.channels"},
		{"unknown stat", "achievements:\n  - name: X\n    stat: laps\n    threshold: 1\n", "unknown stat"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o644); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() error = nil, expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Load() error = %v, expected it to mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with missing file should fail")
	}
}

func TestSpawnChance(t *testing.T) {
	perFrame := SpawnConfig{Mode: SpawnPerFrame}
	if got := perFrame.Chance(0.02, 1.0/30); got != 0.02 {
		t.Errorf("per_frame Chance() = %v, expected 0.02", got)
	}

	perSecond := SpawnConfig{Mode: SpawnPerSecond}
	if got := perSecond.Chance(0.5, 1); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("per_second Chance(0.5, 1) = %v, expected 0.5", got)
	}
	// Two half-second frames give the same total chance as one full second.
	half := perSecond.Chance(0.5, 0.5)
	combined := 1 - (1-half)*(1-half)
	if math.Abs(combined-0.5) > 1e-9 {
		t.Errorf("two half frames combine to %v, expected 0.5", combined)
	}
	if got := perSecond.Chance(0, 1); got != 0 {
		t.Errorf("Chance(0) = %v, expected 0", got)
	}
}

func TestSpawnPerSecondConversion(t *testing.T) {
	s := Default().Spawn.PerSecond(60)
	if s.Mode != SpawnPerSecond {
		t.Fatalf("Mode = %q, expected per_second", s.Mode)
	}
	// At the reference frame rate the per-frame chance is unchanged.
	if got := s.Chance(s.Obstacle, 1.0/60); math.Abs(got-0.02) > 1e-9 {
		t.Errorf("Chance at 60fps = %v, expected 0.02", got)
	}
}

func TestDifficultySpeed(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 25},
		{500, 37.5},
		{1000, 50},
		{5000, 50}, // capped at max difficulty
	}
	for _, tc := range tests {
		if got := dm.Speed(25, tc.score, 0); got != tc.expected {
			t.Errorf("Speed(25, %d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	cfg.Enabled = false
	if got := NewDifficultyManager(cfg).Speed(25, 1000, 0); got != 25 {
		t.Errorf("Speed() with progression disabled = %v, expected 25", got)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v, expected enabled at 0.7", cfg.Difficulty)
	}
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) should fail")
	}
}
