package config

import (
	_ "embed"
)

//go:embed defaults/surfers.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration, used when the embedded YAML
// cannot be parsed.
func Default() Config {
	return Config{
		Game: GameConfig{
			FPS:         60,
			MaxDistance: 100,
			LanePan:     []float64{-0.8, 0.0, 0.8},
		},
		Economy: EconomyConfig{
			PowerUpBaseDuration: map[string]float64{
				"jetpack":        10,
				"super_sneakers": 10,
				"magnet":         10,
				"multiplier":     10,
				"hoverboard":     30,
			},
			UpgradeCosts: map[string]int{
				"jetpack":        500,
				"super_sneakers": 400,
				"magnet":         450,
				"multiplier":     600,
				"hoverboard":     700,
			},
			UpgradeIncrement:     5,
			FallbackDuration:     10,
			MysteryBoxCost:       300,
			MysteryBoxCoinReward: 500,
		},
		Spawn: SpawnConfig{
			Mode:        SpawnPerFrame,
			Obstacle:    0.02,
			PowerUp:     0.01,
			Letter:      0.008,
			SeasonToken: 0.005,
			Coin:        0.05,
		},
		Audio: AudioConfig{
			SoundDir:    "sounds",
			Extensions:  []string{".ogg", ".wav", ".mp3"},
			MusicVolume: 0.8,
			SFXVolume:   0.9,
			Channels:    32,
			SampleRate:  44100,
			BufferMS:    100,
			CacheSize:   64,
			VolumeStep:  0.05,
		},
		Gameplay: GameplayConfig{
			BaseSpeed:          25,
			JumpDuration:       0.7,
			SuperJumpDuration:  1.0,
			RollDuration:       0.7,
			ScoreRate:          10,
			ScoreMultiplier:    2,
			AchievementPause:   0.5,
			WordHuntLetters:    []string{"H", "U", "N", "T"},
			WordHuntReward:     500,
			ContinueHoverboard: 3,
			TrainChance:        0.5,
			HighObstacleChance: 0.5,
			TrainHonkDistance:  20,
		},
		Achievements: []AchievementConfig{
			{Name: "High Jumper", Stat: "jumps", Threshold: 100},
			{Name: "Gold Digger", Stat: "total_coins", Threshold: 5000},
			{Name: "Marathon", Stat: "score", Threshold: 100000},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}
