// Package config provides YAML-based configuration loading and difficulty
// management for the audio runner.
package config

import (
	"errors"
	"fmt"
	"math"
)

// PowerUpNames lists the upgradeable power-up keys accepted in the economy
// tables, in shop order.
var PowerUpNames = []string{"jetpack", "super_sneakers", "magnet", "multiplier", "hoverboard"}

// StatNames lists the cumulative stats an achievement threshold may refer to.
var StatNames = []string{"jumps", "total_coins", "score"}

// Config contains all tunable constants of the game.
type Config struct {
	Game         GameConfig          `yaml:"game"`
	Economy      EconomyConfig       `yaml:"economy"`
	Spawn        SpawnConfig         `yaml:"spawn"`
	Audio        AudioConfig         `yaml:"audio"`
	Gameplay     GameplayConfig      `yaml:"gameplay"`
	Achievements []AchievementConfig `yaml:"achievements"`
	Difficulty   DifficultyConfig    `yaml:"difficulty"`
}

// GameConfig defines frame pacing and the spatial layout of the track.
type GameConfig struct {
	FPS         int       `yaml:"fps"`
	MaxDistance float64   `yaml:"max_distance"` // Spawn distance; volume falls to zero here
	LanePan     []float64 `yaml:"lane_pan"`     // One stereo pan value per lane, left to right
}

// EconomyConfig defines power-up durations and shop prices.
type EconomyConfig struct {
	PowerUpBaseDuration  map[string]float64 `yaml:"powerup_base_duration"`
	UpgradeCosts         map[string]int     `yaml:"upgrade_costs"`
	UpgradeIncrement     float64            `yaml:"upgrade_increment"`
	FallbackDuration     float64            `yaml:"fallback_duration"`
	MysteryBoxCost       int                `yaml:"mystery_box_cost"`
	MysteryBoxCoinReward int                `yaml:"mystery_box_coin_reward"`
}

// SpawnMode selects how spawn probabilities are interpreted.
type SpawnMode string

const (
	// SpawnPerFrame treats each rate as the chance of a spawn on every frame.
	// Spawn density therefore depends on the frame rate.
	SpawnPerFrame SpawnMode = "per_frame"
	// SpawnPerSecond treats each rate as the chance of a spawn within one
	// second and scales it by the measured frame delta.
	SpawnPerSecond SpawnMode = "per_second"
)

// SpawnConfig defines the independent spawn probability of each entity type.
type SpawnConfig struct {
	Mode        SpawnMode `yaml:"mode"`
	Obstacle    float64   `yaml:"obstacle"`
	PowerUp     float64   `yaml:"powerup"`
	Letter      float64   `yaml:"letter"`
	SeasonToken float64   `yaml:"season_token"`
	Coin        float64   `yaml:"coin"`
}

// Chance converts a configured rate into the probability of a spawn during
// a frame lasting dt seconds.
func (s SpawnConfig) Chance(rate, dt float64) float64 {
	if rate <= 0 {
		return 0
	}
	if rate >= 1 {
		return 1
	}
	if s.Mode == SpawnPerSecond {
		return 1 - math.Pow(1-rate, dt)
	}
	return rate
}

// PerSecond returns a copy of the per-frame rates converted to per-second
// rates giving the same spawn density at the given frame rate.
func (s SpawnConfig) PerSecond(fps int) SpawnConfig {
	if s.Mode == SpawnPerSecond || fps <= 0 {
		return s
	}
	convert := func(p float64) float64 {
		if p <= 0 || p >= 1 {
			return p
		}
		return 1 - math.Pow(1-p, float64(fps))
	}
	return SpawnConfig{
		Mode:        SpawnPerSecond,
		Obstacle:    convert(s.Obstacle),
		PowerUp:     convert(s.PowerUp),
		Letter:      convert(s.Letter),
		SeasonToken: convert(s.SeasonToken),
		Coin:        convert(s.Coin),
	}
}

// AudioConfig defines the sound asset lookup and mixer limits.
type AudioConfig struct {
	SoundDir    string   `yaml:"sound_dir"`
	Extensions  []string `yaml:"extensions"` // Tried in order for extension-less names
	MusicVolume float64  `yaml:"music_volume"`
	SFXVolume   float64  `yaml:"sfx_volume"`
	Channels    int      `yaml:"channels"`
	SampleRate  int      `yaml:"sample_rate"`
	BufferMS    int      `yaml:"buffer_ms"`
	CacheSize   int      `yaml:"cache_size"`
	VolumeStep  float64  `yaml:"volume_step"`
}

// GameplayConfig defines run pacing, scoring and player ability timings.
type GameplayConfig struct {
	BaseSpeed          float64  `yaml:"base_speed"`
	JumpDuration       float64  `yaml:"jump_duration"`
	SuperJumpDuration  float64  `yaml:"super_jump_duration"`
	RollDuration       float64  `yaml:"roll_duration"`
	ScoreRate          float64  `yaml:"score_rate"`
	ScoreMultiplier    int      `yaml:"score_multiplier"`
	AchievementPause   float64  `yaml:"achievement_pause"` // Seconds during which further unlocks wait
	WordHuntLetters    []string `yaml:"word_hunt_letters"`
	WordHuntReward     int      `yaml:"word_hunt_reward"`
	ContinueHoverboard float64  `yaml:"continue_hoverboard"` // Hoverboard seconds granted by a key continue
	TrainChance        float64  `yaml:"train_chance"`
	HighObstacleChance float64  `yaml:"high_obstacle_chance"`
	TrainHonkDistance  float64  `yaml:"train_honk_distance"`
}

// AchievementConfig defines one threshold achievement. The order of the
// list is the evaluation priority.
type AchievementConfig struct {
	Name      string `yaml:"name"`
	Stat      string `yaml:"stat"`
	Threshold int    `yaml:"threshold"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
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
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name from the command line.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == "" {
		cfg.Difficulty.Progression.Type = "score"
	}
}

// Validate reports every constant that would make the simulation
// meaningless. All problems are joined into one error.
func (c Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Game.FPS <= 0 {
		add("game.fps must be positive, got %d", c.Game.FPS)
	}
	if c.Game.MaxDistance <= 0 {
		add("game.max_distance must be positive, got %v", c.Game.MaxDistance)
	}
	if len(c.Game.LanePan) != 3 {
		add("game.lane_pan must have 3 entries, got %d", len(c.Game.LanePan))
	}
	for i, p := range c.Game.LanePan {
		if p < -1 || p > 1 {
			add("game.lane_pan[%d] = %v is outside [-1, 1]", i, p)
		}
	}

	for name, d := range c.Economy.PowerUpBaseDuration {
		if !knownPowerUp(name) {
			add("economy.powerup_base_duration: unknown power-up %q", name)
		}
		if d <= 0 {
			add("economy.powerup_base_duration.%s must be positive, got %v", name, d)
		}
	}
	for name, cost := range c.Economy.UpgradeCosts {
		if !knownPowerUp(name) {
			add("economy.upgrade_costs: unknown power-up %q", name)
		}
		if cost < 0 {
			add("economy.upgrade_costs.%s must not be negative, got %d", name, cost)
		}
	}
	if c.Economy.UpgradeIncrement < 0 {
		add("economy.upgrade_increment must not be negative")
	}
	if c.Economy.FallbackDuration <= 0 {
		add("economy.fallback_duration must be positive")
	}
	if c.Economy.MysteryBoxCost < 0 || c.Economy.MysteryBoxCoinReward < 0 {
		add("economy: mystery box cost and reward must not be negative")
	}

	switch c.Spawn.Mode {
	case SpawnPerFrame, SpawnPerSecond:
	default:
		add("spawn.mode must be %q or %q, got %q", SpawnPerFrame, SpawnPerSecond, c.Spawn.Mode)
	}
	for name, r := range map[string]float64{
		"obstacle":     c.Spawn.Obstacle,
		"powerup":      c.Spawn.PowerUp,
		"letter":       c.Spawn.Letter,
		"season_token": c.Spawn.SeasonToken,
		"coin":         c.Spawn.Coin,
	} {
		if r < 0 || r > 1 {
			add("spawn.%s = %v is outside [0, 1]", name, r)
		}
	}

	if len(c.Audio.Extensions) == 0 {
		add("audio.extensions must not be empty")
	}
	if c.Audio.Channels <= 0 {
		add("audio.channels must be positive, got %d", c.Audio.Channels)
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 || c.Audio.SFXVolume < 0 || c.Audio.SFXVolume > 1 {
		add("audio volumes must be within [0, 1]")
	}

	g := c.Gameplay
	if g.BaseSpeed <= 0 {
		add("gameplay.base_speed must be positive")
	}
	if g.JumpDuration < 0 || g.SuperJumpDuration < 0 || g.RollDuration < 0 {
		add("gameplay: jump and roll durations must not be negative")
	}
	if g.ScoreRate < 0 || g.AchievementPause < 0 || g.ContinueHoverboard < 0 {
		add("gameplay: score_rate, achievement_pause and continue_hoverboard must not be negative")
	}
	if g.ScoreMultiplier < 1 {
		add("gameplay.score_multiplier must be at least 1")
	}
	if len(g.WordHuntLetters) == 0 {
		add("gameplay.word_hunt_letters must not be empty")
	}
	for i, l := range g.WordHuntLetters {
		if l == "" {
			add("gameplay.word_hunt_letters[%d] is empty", i)
		}
	}

	for i, a := range c.Achievements {
		if a.Name == "" {
			add("achievements[%d]: name is required", i)
		}
		if !knownStat(a.Stat) {
			add("achievements[%d]: unknown stat %q", i, a.Stat)
		}
	}

	return errors.Join(errs...)
}

func knownPowerUp(name string) bool {
	for _, n := range PowerUpNames {
		if n == name {
			return true
		}
	}
	return false
}

func knownStat(name string) bool {
	for _, n := range StatNames {
		if n == name {
			return true
		}
	}
	return false
}
