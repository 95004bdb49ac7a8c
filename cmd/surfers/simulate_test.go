package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blind-surfers/internal/config"
	"github.com/vovakirdan/blind-surfers/internal/game"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestSimulateIdleCrashes(t *testing.T) {
	cfg := config.Default()
	var hooked []game.RunSummary
	result, transcript, err := simulate(cfg, 42, 600, idleStrategy, false, quietLogger(),
		func(sum game.RunSummary) { hooked = append(hooked, sum) })
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	if len(result.Runs) != 1 || len(hooked) != 1 {
		t.Fatalf("runs = %d hooked = %d, expected 1", len(result.Runs), len(hooked))
	}
	if !result.Runs[0].Crashed {
		t.Error("idle run did not crash in ten minutes")
	}
	if result.Runs[0].Jumps != 0 {
		t.Errorf("idle run jumped %d times", result.Runs[0].Jumps)
	}
	if len(transcript) == 0 || transcript[0] != "Blind Surfers" {
		t.Errorf("transcript = %v", transcript)
	}
	if result.Snapshot.State != game.StateMenu {
		t.Errorf("final state = %v, expected menu", result.Snapshot.State)
	}
}

func TestSimulateTimeUp(t *testing.T) {
	cfg := config.Default()
	cfg.Spawn = config.SpawnConfig{Mode: config.SpawnPerFrame}
	result, _, err := simulate(cfg, 1, 2, dodgeStrategy, true, quietLogger(), nil)
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	if len(result.Runs) != 1 || result.Runs[0].Crashed {
		t.Fatalf("runs = %+v, expected one uncrashed run", result.Runs)
	}
	if result.Frames != 120 && result.Frames != 121 {
		t.Errorf("Frames = %d, expected about 120", result.Frames)
	}
	if result.Runs[0].Score == 0 {
		t.Error("score did not advance")
	}
}

func TestSimulateDeterministic(t *testing.T) {
	cfg := config.Default()
	a, _, _ := simulate(cfg, 9, 30, dodgeStrategy, true, quietLogger(), nil)
	b, _, _ := simulate(cfg, 9, 30, dodgeStrategy, true, quietLogger(), nil)
	if a.Frames != b.Frames || len(a.Runs) != len(b.Runs) || a.Runs[0].Score != b.Runs[0].Score {
		t.Errorf("same seed gave different games: %+v vs %+v", a.Runs, b.Runs)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, simulation{
		Frames: 60,
		Runs:   []game.RunSummary{{Score: 120, Coins: 3, Crashed: true}},
	}, 5)
	out := buf.String()
	for _, want := range []string{"Seed:    5", "score 120", "crashed"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRunRecord(t *testing.T) {
	rec := runRecord(game.RunSummary{Score: 10, Coins: 2, Jumps: 1, Continues: 1, Crashed: true})
	if rec.Score != 10 || rec.Coins != 2 || rec.Jumps != 1 || rec.Continues != 1 || !rec.Crashed || rec.RunID != "" {
		t.Errorf("runRecord() = %+v", rec)
	}
}
