package persistence

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jmoreau/eurodraw/internal/draw"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testRun() Run {
	return Run{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().Unix(),
		City:        "Paris",
		Postal:      "75001",
		Temp:        20.4,
		Humidity:    50,
		Precip:      0,
		Description: "clearsky",
		TokenHash:   1451835277496366386,
		Chaotic:     -25.377345,
		BaseTime:    25140305123456,
	}
}

// TestSaveRunRoundTrip persists a run with picks and reads both back.
func TestSaveRunRoundTrip(t *testing.T) {
	db := openTestDB(t)

	run := testRun()
	gen := draw.Generator{Chaotic: run.Chaotic, Token: []byte("20,50,0,clearsky"), BaseTime: run.BaseTime}
	picks := gen.Run(3)

	if err := db.SaveRun(run, picks); err != nil {
		t.Fatalf("SaveRun returned error: %v", err)
	}

	got, err := db.GetRun(run.ID)
	if err != nil {
		t.Fatalf("GetRun returned error: %v", err)
	}
	if got == nil {
		t.Fatalf("GetRun returned nil for saved run %s", run.ID)
	}
	if got.City != run.City || got.TokenHash != run.TokenHash || got.Chaotic != run.Chaotic {
		t.Fatalf("run fields mismatch: got %+v, want %+v", got, run)
	}
	if got.CreatedAt != run.CreatedAt {
		t.Fatalf("created_at mismatch: got %v, want %v", got.CreatedAt, run.CreatedAt)
	}

	gotPicks, err := db.RunDraws(run.ID)
	if err != nil {
		t.Fatalf("RunDraws returned error: %v", err)
	}
	if len(gotPicks) != len(picks) {
		t.Fatalf("expected %d picks, got %d", len(picks), len(gotPicks))
	}
	for i, p := range gotPicks {
		if p != picks[i] {
			t.Fatalf("pick %d mismatch: got %+v, want %+v", i, p, picks[i])
		}
	}
}

// TestGetRunMissing ensures a lookup for an unknown ID returns nil, not an
// error.
func TestGetRunMissing(t *testing.T) {
	db := openTestDB(t)
	got, err := db.GetRun("no-such-run")
	if err != nil {
		t.Fatalf("GetRun returned error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for unknown run, got %+v", got)
	}
}

// TestRecentRunsOrder ensures runs come back newest first and respect the
// limit.
func TestRecentRunsOrder(t *testing.T) {
	db := openTestDB(t)

	base := time.Now().Unix()
	var ids []string
	for i := 0; i < 3; i++ {
		run := testRun()
		run.CreatedAt = base + int64(i)*60
		ids = append(ids, run.ID)
		if err := db.SaveRun(run, nil); err != nil {
			t.Fatalf("SaveRun returned error: %v", err)
		}
	}

	runs, err := db.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns returned error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != ids[2] || runs[1].ID != ids[1] {
		t.Fatalf("runs out of order: got %s, %s", runs[0].ID, runs[1].ID)
	}
}
