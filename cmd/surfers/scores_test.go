package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/blind-surfers/internal/game"
	"github.com/vovakirdan/blind-surfers/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordRuns(t *testing.T) {
	store := openTestStore(t)
	hook := recordRuns(store, quietLogger())
	hook(game.RunSummary{Score: 300, Coins: 4, Duration: 2 * time.Second, Crashed: true})
	hook(game.RunSummary{Score: 900, Jumps: 3})

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("TopRuns() returned %d runs, expected 2", len(runs))
	}
	if runs[0].Score != 900 || runs[0].Crashed {
		t.Errorf("best run = %+v, expected score 900 not crashed", runs[0])
	}
	if runs[1].Coins != 4 || !runs[1].Crashed || runs[1].Duration != 2*time.Second {
		t.Errorf("second run = %+v", runs[1])
	}
}

func TestRecordRunsWithoutStore(t *testing.T) {
	hook := recordRuns(nil, quietLogger())
	hook(game.RunSummary{Score: 1})
}

func TestPrintRun(t *testing.T) {
	store := openTestStore(t)
	id, err := store.SaveRun(storage.RunRecord{Score: 420, Coins: 7, Continues: 1, Crashed: true})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	var buf bytes.Buffer
	if err := printRun(&buf, store, id); err != nil {
		t.Fatalf("printRun() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{id, "Score:      420", "Continues:  1", "Ended:      crashed"} {
		if !strings.Contains(out, want) {
			t.Errorf("printRun() output missing %q:\n%s", want, out)
		}
	}

	if err := printRun(&buf, store, "missing"); err == nil {
		t.Error("printRun() with unknown ID should fail")
	}
}
