// surfers is an audio-only endless runner for the terminal. Everything
// happens through stereo sound cues and speech; the screen only mirrors
// what is spoken.
//
// Usage:
//
//	surfers play             - Play with sound and speech
//	surfers simulate         - Run the game headless and print the result
//	surfers scores           - Show the best logged runs
//	surfers config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: from config)
//	--seed <value>      - Set RNG seed for reproducible spawning
//	--db <path>         - Set run log path (default: ~/.surfers/runs.db)
//	--config <path>     - Use a custom config YAML
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "surfers",
	Short: "Blind Surfers - an audio-only endless runner",
	Long: `Blind Surfers is an endless runner played entirely by ear.

Obstacles, coins and power-ups approach in three lanes. Their sounds are
panned to their lane and grow louder as they get closer. Dodge by changing
lanes, jumping over low barriers and rolling under high ones.

Available commands:
  play      - Play with sound and speech
  simulate  - Run the game headless and print the result
  scores    - View the best logged runs
  config    - Print the effective configuration

Examples:
  surfers play
  surfers play --difficulty hard
  surfers simulate --seconds 120 --seed 42 --strategy dodge
  surfers scores`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.surfers/runs.db", "Path to run log database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
