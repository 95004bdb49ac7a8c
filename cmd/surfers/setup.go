package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blind-surfers/internal/audio"
	"github.com/vovakirdan/blind-surfers/internal/config"
	"github.com/vovakirdan/blind-surfers/internal/game"
	"github.com/vovakirdan/blind-surfers/internal/storage"
)

// loadConfig loads the configuration and applies the global flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagFPS > 0 {
		cfg.Game.FPS = flagFPS
	}
	return cfg, nil
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "surfers",
		Level:           level,
	})
	return logger, nil
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// newMixer wires a backend to the sound directory. A missing directory
// still yields a working mixer; every cue is then a logged no-op.
func newMixer(cfg config.Config, backend audio.Backend, announcer audio.Announcer, logger *log.Logger) (*audio.Mixer, error) {
	var sounds fs.FS = os.DirFS(cfg.Audio.SoundDir)
	if _, err := os.Stat(cfg.Audio.SoundDir); err != nil {
		logger.Warn("sound directory not found, playing silently", "dir", cfg.Audio.SoundDir)
	}
	assets, err := audio.NewAssets(sounds, cfg.Audio.Extensions, backend, cfg.Audio.CacheSize)
	if err != nil {
		return nil, err
	}
	return audio.NewMixer(backend, assets, audio.SettingsFromConfig(cfg), announcer, logger), nil
}

// recordRuns returns a run end hook that appends to the run log.
func recordRuns(store *storage.Store, logger *log.Logger) func(game.RunSummary) {
	return func(sum game.RunSummary) {
		logger.Info("run finished", "score", sum.Score, "coins", sum.Coins, "jumps", sum.Jumps,
			"duration", sum.Duration.Round(time.Second), "crashed", sum.Crashed)
		if store == nil {
			return
		}
		best, err := store.HighScore()
		if err != nil {
			logger.Warn("cannot read high score", "error", err)
		}
		id, err := store.SaveRun(runRecord(sum))
		if err != nil {
			logger.Warn("cannot record run", "error", err)
			return
		}
		logger.Debug("run recorded", "run_id", id)
		if sum.Score > best {
			logger.Info("new best score", "score", sum.Score, "previous", best)
		}
	}
}

func runRecord(sum game.RunSummary) storage.RunRecord {
	return storage.RunRecord{
		Score:     sum.Score,
		Coins:     sum.Coins,
		Jumps:     sum.Jumps,
		Duration:  sum.Duration,
		Continues: sum.Continues,
		Crashed:   sum.Crashed,
	}
}
