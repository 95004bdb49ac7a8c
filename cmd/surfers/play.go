package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blind-surfers/internal/audio"
	"github.com/vovakirdan/blind-surfers/internal/core"
	"github.com/vovakirdan/blind-surfers/internal/game"
	"github.com/vovakirdan/blind-surfers/internal/platform/tui"
	"github.com/vovakirdan/blind-surfers/internal/speech"
	"github.com/vovakirdan/blind-surfers/internal/storage"
)

var (
	flagSounds  string
	flagLogFile string
	flagMute    bool
	flagNoSpeak bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play with sound and speech",
	Long: `Start the game in this terminal.

Controls:
  Left/Right   - Change lane
  Up           - Jump (menus: previous item)
  Down         - Roll (menus: next item)
  Home/End     - First/last menu item
  Enter        - Select
  Esc          - Back; after a crash, return to the main menu
  A-Z          - Jump to the menu item starting with that letter
  K            - After a crash, spend a key to continue
  PgUp/PgDn    - Music volume
  Ctrl+C       - Quit

Speech uses the first of espeak-ng, espeak, spd-say or say found on PATH.
Without one, announcements are only shown on screen.

Examples:
  surfers play
  surfers play --sounds ./sounds --difficulty easy
  surfers play --mute --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSounds, "sounds", "", "Sound asset directory (default: from config)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.surfers/surfers.log", "Log file while the game owns the terminal")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Do not open the sound device")
	playCmd.Flags().BoolVar(&flagNoSpeak, "no-speech", false, "Do not use a speech synthesizer")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal")
		fmt.Fprintln(os.Stderr, "Run 'surfers simulate' for a headless game.")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSounds != "" {
		cfg.Audio.SoundDir = flagSounds
	}

	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger, err := newLogger(logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Speech
	transcript := speech.NewTranscript(64)
	var synth speech.Synthesizer
	if !flagNoSpeak {
		command, err := speech.FindCommand(logger)
		if err != nil {
			logger.Warn("no speech synthesizer, announcements are shown on screen only", "error", err)
		} else {
			logger.Info("speech synthesizer", "command", command.Name())
			defer command.Close()
			synth = command
		}
	}
	announcer := speech.NewAnnouncer(synth, transcript, logger)

	// Audio
	var backend audio.Backend = audio.NewNullBackend()
	if !flagMute {
		buffer := time.Duration(cfg.Audio.BufferMS) * time.Millisecond
		beepBackend, err := audio.NewBeepBackend(cfg.Audio.SampleRate, buffer)
		if err != nil {
			logger.Warn("no sound device, playing silently", "error", err)
		} else {
			backend = beepBackend
		}
	}
	mixer, err := newMixer(cfg, backend, announcer, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer mixer.Close()

	// Run log
	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open run log", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = cfg.Game.FPS
	runtime.Seed = flagSeed
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	session := game.NewSession(cfg, mixer, announcer,
		game.WithLogger(logger),
		game.WithSeed(runtime.Seed),
		game.WithRunEndHook(recordRuns(store, logger)),
	)
	logger.Info("starting", "fps", runtime.TickRate, "seed", runtime.Seed, "spawn_mode", cfg.Spawn.Mode)

	if err := tui.Run(session, transcript, runtime); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
