package history

import (
	"path/filepath"
	"testing"
	"time"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
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

func TestStore_RecordAndListRuns(t *testing.T) {
	store := openStore(t)

	started := time.Now().Add(-time.Minute).Truncate(time.Millisecond)
	results := []Result{
		{Name: "login_valid_credentials", Status: StatusPassed, Duration: 3 * time.Second},
		{Name: "login_invalid_credentials", Status: StatusFailed, Duration: 5 * time.Second, Error: "alert not displayed"},
	}

	id, err := store.RecordRun("dev", started, 8*time.Second, results)
	if err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if id == "" {
		t.Fatal("RecordRun returned empty id")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs=%d, want 1", len(runs))
	}
	run := runs[0]
	if run.ID != id || run.Environment != "dev" {
		t.Errorf("run=%+v", run)
	}
	if run.Passed != 1 || run.Failed != 1 {
		t.Errorf("passed=%d failed=%d, want 1/1", run.Passed, run.Failed)
	}
	if !run.StartedAt.Equal(started) {
		t.Errorf("StartedAt=%v, want %v", run.StartedAt, started)
	}
	if run.Duration != 8*time.Second {
		t.Errorf("Duration=%v, want 8s", run.Duration)
	}
}

func TestStore_RunResults(t *testing.T) {
	store := openStore(t)

	id, err := store.RecordRun("staging", time.Now(), time.Second, []Result{
		{Name: "login_empty_username", Status: StatusFailed, Duration: 21 * time.Second, Error: "element xpath=//span not visible after 20s (timeout 20s)"},
	})
	if err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	results, err := store.RunResults(id)
	if err != nil {
		t.Fatalf("RunResults: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results=%d, want 1", len(results))
	}
	got := results[0]
	if got.Name != "login_empty_username" || got.Status != StatusFailed {
		t.Errorf("result=%+v", got)
	}
	if got.Error == "" {
		t.Error("error text not persisted")
	}
}

func TestStore_RecentRuns_Ordering(t *testing.T) {
	store := openStore(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		if _, err := store.RecordRun("dev", base.Add(time.Duration(i)*time.Minute), time.Second, nil); err != nil {
			t.Fatalf("RecordRun #%d: %v", i, err)
		}
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs=%d, want 2", len(runs))
	}
	if !runs[0].StartedAt.After(runs[1].StartedAt) {
		t.Errorf("runs not newest-first: %v then %v", runs[0].StartedAt, runs[1].StartedAt)
	}
}
