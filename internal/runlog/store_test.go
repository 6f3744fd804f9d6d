package runlog_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"lisztnup/internal/config"
	"lisztnup/internal/curate"
	"lisztnup/internal/runlog"
)

func openStore(t *testing.T) *runlog.Store {
	t.Helper()
	cfg := config.Default()
	dir := t.TempDir()
	cfg.Paths.DataDir = dir
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	store, err := runlog.Open(&cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return store
}

func TestRecordAndList(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	run := runlog.NewRun("/data/musicbrainz.json", "/data/lisztnup.json")
	run.FinishedAt = run.StartedAt.Add(2 * time.Second)
	run.Composers = 61
	run.Works = 540
	run.Parts = 2100
	run.Stats = curate.Stats{InitialComposers: 200, FinalComposers: 61}

	if err := store.Record(ctx, run); err != nil {
		t.Fatalf("Record: %v", err)
	}

	runs, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs: %d", len(runs))
	}
	got := runs[0]
	if got.ID != run.ID || got.InputPath != run.InputPath || got.OutputPath != run.OutputPath {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !got.StartedAt.Equal(run.StartedAt) || !got.FinishedAt.Equal(run.FinishedAt) {
		t.Fatalf("timestamps: %v / %v", got.StartedAt, got.FinishedAt)
	}
	if got.Stats.InitialComposers != 200 || got.Stats.FinalComposers != 61 {
		t.Fatalf("stats: %+v", got.Stats)
	}
}

func TestListNewestFirstWithLimit(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		run := runlog.NewRun("/data/in.json", "/data/out.json")
		run.StartedAt = base.Add(time.Duration(i) * time.Hour)
		run.FinishedAt = run.StartedAt.Add(time.Minute)
		if err := store.Record(ctx, run); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	runs, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs: %d", len(runs))
	}
	if !runs[0].StartedAt.After(runs[1].StartedAt) {
		t.Fatalf("not newest first: %v, %v", runs[0].StartedAt, runs[1].StartedAt)
	}
}

func TestOpenTwiceReusesSchema(t *testing.T) {
	cfg := config.Default()
	dir := t.TempDir()
	cfg.Paths.DataDir = dir
	cfg.Paths.LogDir = filepath.Join(dir, "logs")

	first, err := runlog.Open(&cfg)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := first.Record(context.Background(), runlog.NewRun("in", "out")); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := runlog.Open(&cfg)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer second.Close()

	runs, err := second.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs after reopen: %d", len(runs))
	}
}
