package history_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"downsort/internal/history"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndListRuns(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	started := time.Now().Add(-time.Minute)
	run := history.Run{
		ID:       uuid.NewString(),
		Target:   "/tmp/downloads",
		Started:  started,
		Finished: started.Add(2 * time.Second),
		Moved:    2,
		Failed:   1,
		Skipped:  1,
	}
	moves := []history.Move{
		{SourceName: "a.pdf", Category: "Documents", FinalPath: "/tmp/downloads/Documents/a.pdf", Status: history.StatusMoved},
		{SourceName: "b.jpg", Category: "Old Files", FinalPath: "/tmp/downloads/Old Files/b.jpg", Status: history.StatusMoved},
		{SourceName: "c.txt", Category: "Documents", Status: history.StatusFailed, Reason: "permission denied"},
	}
	if err := store.RecordRun(ctx, run, moves); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	runs, err := store.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.ID != run.ID || got.Moved != 2 || got.Failed != 1 || got.Skipped != 1 {
		t.Fatalf("unexpected run %+v", got)
	}
	if got.Started.IsZero() || got.Finished.IsZero() {
		t.Fatalf("timestamps not round-tripped: %+v", got)
	}

	stored, err := store.MovesForRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("MovesForRun: %v", err)
	}
	if len(stored) != 3 {
		t.Fatalf("expected 3 moves, got %d", len(stored))
	}
	if stored[2].Status != history.StatusFailed || stored[2].Reason != "permission denied" {
		t.Fatalf("failed move not preserved: %+v", stored[2])
	}
	if stored[0].FinalPath == "" {
		t.Fatalf("final path lost: %+v", stored[0])
	}
}

func TestRecentRunsOrderAndLimit(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	var newest string
	for i := 0; i < 3; i++ {
		run := history.Run{
			ID:       uuid.NewString(),
			Target:   "/tmp/downloads",
			Started:  base.Add(time.Duration(i) * time.Minute),
			Finished: base.Add(time.Duration(i)*time.Minute + time.Second),
		}
		newest = run.ID
		if err := store.RecordRun(ctx, run, nil); err != nil {
			t.Fatalf("RecordRun: %v", err)
		}
	}

	runs, err := store.RecentRuns(ctx, 2)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("limit ignored: %d runs", len(runs))
	}
	if runs[0].ID != newest {
		t.Fatalf("expected newest run first, got %s", runs[0].ID)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := history.Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := history.Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer reopened.Close()

	if _, err := reopened.RecentRuns(context.Background(), 1); err != nil {
		t.Fatalf("RecentRuns after reopen: %v", err)
	}
}
