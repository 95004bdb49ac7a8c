package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blind-surfers/internal/audio"
	"github.com/vovakirdan/blind-surfers/internal/config"
	"github.com/vovakirdan/blind-surfers/internal/core"
	"github.com/vovakirdan/blind-surfers/internal/game"
	"github.com/vovakirdan/blind-surfers/internal/speech"
	"github.com/vovakirdan/blind-surfers/internal/storage"
)

var (
	flagSeconds  float64
	flagStrategy string
	flagRecord   bool
	flagVerbose  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless and print the result",
	Long: `Run one game without a terminal, sound device or speech, at a fixed
frame delta, and print what happened.

Strategies:
  idle   - Stand in the center lane and never react
  dodge  - Jump low and roll under high obstacles in the current lane,
           and spend keys to continue after a crash

Examples:
  surfers simulate
  surfers simulate --seconds 300 --seed 7 --strategy dodge
  surfers simulate --strategy dodge --record --verbose`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagSeconds, "seconds", 60, "Simulated seconds before stopping")
	simulateCmd.Flags().StringVar(&flagStrategy, "strategy", "idle", "Player strategy: idle, dodge")
	simulateCmd.Flags().BoolVar(&flagRecord, "record", false, "Append the run to the run log")
	simulateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print every announcement")
}

// strategy decides the input for the next frame.
type strategy func(s *game.Session, cfg config.Config) []core.KeyEvent

func idleStrategy(*game.Session, config.Config) []core.KeyEvent {
	return nil
}

// dodgeStrategy reacts once the nearest obstacle in the player's lane is
// about half a second away.
func dodgeStrategy(s *game.Session, cfg config.Config) []core.KeyEvent {
	p := s.Player()
	if p.Jumping() || p.Rolling() {
		return nil
	}
	o, ok := s.NearestObstacle(p.Lane)
	if !ok || o.Distance > s.Snapshot().Speed*0.5 {
		return nil
	}
	if o.Height == game.HeightHigh {
		return []core.KeyEvent{core.Key(core.ActionDown)}
	}
	return []core.KeyEvent{core.Key(core.ActionUp)}
}

func runSimulate(cmd *cobra.Command, args []string) {
	var play strategy
	switch flagStrategy {
	case "idle":
		play = idleStrategy
	case "dodge":
		play = dodgeStrategy
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown strategy %q (want idle or dodge)\n", flagStrategy)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var store *storage.Store
	if flagRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening run log: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	result, transcript, err := simulate(cfg, seed, flagSeconds, play, flagStrategy == "dodge", logger, recordRuns(store, logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagVerbose {
		for _, line := range transcript {
			fmt.Println("  " + line)
		}
		fmt.Println()
	}
	printSummary(os.Stdout, result, seed)
}

// simulation is the outcome of a headless game.
type simulation struct {
	Runs     []game.RunSummary
	Frames   int
	Played   int // Cues the mixer started
	Dropped  int // Cues lost to a full channel pool
	Snapshot game.Snapshot
}

// simulate drives a session at a fixed delta with a silent backend until
// the time runs out or the run ends for good. With useKeys a crash is
// continued while keys last.
func simulate(cfg config.Config, seed int64, seconds float64, play strategy, useKeys bool,
	logger *log.Logger, onRunEnd func(game.RunSummary)) (simulation, []string, error) {
	var result simulation
	transcript := speech.NewTranscript(1024)
	announcer := speech.NewAnnouncer(nil, transcript, nil)

	mixer, err := newMixer(cfg, audio.NewNullBackend(), announcer, logger)
	if err != nil {
		return result, nil, err
	}
	defer mixer.Close()

	session := game.NewSession(cfg, mixer, announcer,
		game.WithSeed(seed),
		game.WithLogger(logger),
		game.WithRunEndHook(func(sum game.RunSummary) {
			result.Runs = append(result.Runs, sum)
			if onRunEnd != nil {
				onRunEnd(sum)
			}
		}),
	)
	session.Start()
	session.HandleInput(core.Key(core.ActionConfirm))

	fps := cfg.Game.FPS
	if fps <= 0 {
		fps = 60
	}
	dt := 1.0 / float64(fps)
	frame := core.NewInputFrame()

	for elapsed := 0.0; elapsed < seconds; elapsed += dt {
		switch session.State() {
		case game.StateGameOver:
			if useKeys && session.Economy().Keys > 0 {
				frame.Push(core.LetterKey('k'))
			} else {
				frame.Push(core.Key(core.ActionBack))
			}
		case game.StateRunning:
			for _, ev := range play(session, cfg) {
				frame.Push(ev)
			}
		}

		session.Frame(frame, dt)
		frame.Clear()
		result.Frames++

		if session.State() == game.StateMenu {
			break
		}
	}

	result.Snapshot = session.Snapshot()
	session.Shutdown()
	result.Played, result.Dropped = mixer.Stats()
	return result, transcript.Lines(), nil
}

func printSummary(w io.Writer, result simulation, seed int64) {
	fmt.Fprintf(w, "Seed:    %d\n", seed)
	fmt.Fprintf(w, "Frames:  %d\n", result.Frames)
	for i, run := range result.Runs {
		end := "crashed"
		if !run.Crashed {
			end = "time up"
		}
		fmt.Fprintf(w, "Run %d:   score %d, %d coins, %d jumps, %d continues, %s after %s\n",
			i+1, run.Score, run.Coins, run.Jumps, run.Continues, end, run.Duration.Round(time.Millisecond))
	}
	snap := result.Snapshot
	fmt.Fprintf(w, "Wallet:  %d coins, %d keys, %d season tokens\n", snap.Coins, snap.Keys, snap.SeasonTokens)
	fmt.Fprintf(w, "Cues:    %d played, %d dropped\n", result.Played, result.Dropped)
}
