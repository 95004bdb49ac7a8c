package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blind-surfers/internal/config"
)

var (
	flagDefault   bool
	flagPerSecond bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the search order
and the global flags are applied. Redirect it to a file to start a custom
config.

Search order:
  --config <path>
  ~/.surfers/config.yaml
  ./configs/surfers.yaml
  built-in defaults

Examples:
  surfers config
  surfers config --default > ~/.surfers/config.yaml
  surfers config --difficulty hard
  surfers config --per-second --fps 30`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in defaults with comments")
	configCmd.Flags().BoolVar(&flagPerSecond, "per-second", false, "Convert per-frame spawn rates to per-second rates at the configured fps")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagPerSecond {
		cfg.Spawn = cfg.Spawn.PerSecond(cfg.Game.FPS)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
