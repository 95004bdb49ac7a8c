package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blind-surfers/internal/platform/tui"
	"github.com/vovakirdan/blind-surfers/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagBrowse bool
	flagRunID  string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best logged runs",
	Long: `Display the top runs from the run log.

Examples:
  surfers scores
  surfers scores --limit 25
  surfers scores --recent
  surfers scores --browse
  surfers scores --run 4f0c2a8e-...
  surfers scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVarP(&flagBrowse, "browse", "b", false, "Browse the run log in a full-screen table")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show one run by its run ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every logged run")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run log cleared.")
		return
	case flagRunID != "":
		if err := printRun(os.Stdout, store, flagRunID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagBrowse && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	title := "High Scores"
	fetch := store.TopRuns
	if flagRecent {
		title = "Recent Runs"
		fetch = store.RecentRuns
	}

	runs, err := fetch(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - Blind Surfers\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'surfers play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-8s  %-16s  %s\n", "Rank", "Score", "Coins", "Jumps", "Time", "Date", "Run ID")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-8s  %-16s  %s\n", "----", "-----", "-----", "-----", "----", "----", "------")

	for i, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-6d  %-8s  %-16s  %s\n",
			i+1, run.Score, run.Coins, run.Jumps, run.Duration.Round(time.Second), dateStr, run.RunID)
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Runs: %d   Average: %.0f   Time played: %s\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.TotalTime.Round(time.Second))
	}
}

// printRun writes the details of one logged run.
func printRun(w io.Writer, store *storage.Store, runID string) error {
	run, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no run with ID %q", runID)
	}
	end := "crashed"
	if !run.Crashed {
		end = "quit"
	}
	fmt.Fprintf(w, "Run %s\n", run.RunID)
	fmt.Fprintf(w, "  Date:       %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "  Score:      %d\n", run.Score)
	fmt.Fprintf(w, "  Coins:      %d\n", run.Coins)
	fmt.Fprintf(w, "  Jumps:      %d\n", run.Jumps)
	fmt.Fprintf(w, "  Time:       %s\n", run.Duration.Round(time.Second))
	fmt.Fprintf(w, "  Continues:  %d\n", run.Continues)
	fmt.Fprintf(w, "  Ended:      %s\n", end)
	return nil
}
