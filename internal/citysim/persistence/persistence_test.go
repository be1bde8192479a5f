package persistence

import (
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "city.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndLoadLatestSnapshot(t *testing.T) {
	db := newTestDB(t)
	tiles := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	if err := db.SaveSnapshot(10, tiles); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}
	if err := db.SaveSnapshot(20, tiles); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	cityTime, got, ok, err := db.LoadLatestSnapshot()
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if !ok {
		t.Fatalf("expected a snapshot to be found")
	}
	if cityTime != 20 {
		t.Fatalf("expected the most recent snapshot (city_time=20), got %d", cityTime)
	}
	if string(got) != string(tiles) {
		t.Fatalf("expected round-tripped tiles to match, got %v", got)
	}
}

func TestLoadLatestSnapshotEmpty(t *testing.T) {
	db := newTestDB(t)

	_, _, ok, err := db.LoadLatestSnapshot()
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if ok {
		t.Fatalf("expected no snapshot to be found in an empty database")
	}
}

func TestSaveAndGetMeta(t *testing.T) {
	db := newTestDB(t)

	if err := db.SaveMeta("seed", "1234"); err != nil {
		t.Fatalf("save meta: %v", err)
	}
	if err := db.SaveMeta("seed", "5678"); err != nil {
		t.Fatalf("overwrite meta: %v", err)
	}

	got, err := db.GetMeta("seed")
	if err != nil {
		t.Fatalf("get meta: %v", err)
	}
	if got != "5678" {
		t.Fatalf("expected overwritten value 5678, got %q", got)
	}
}

func TestGetMetaMissingKey(t *testing.T) {
	db := newTestDB(t)

	if _, err := db.GetMeta("does-not-exist"); err == nil {
		t.Fatalf("expected an error for a missing key")
	}
}

func TestSaveStatsSnapshotAndLoadHistory(t *testing.T) {
	db := newTestDB(t)

	for i, ct := range []int{4, 8, 12} {
		row := StatsRow{
			CityTime: ct, ResPop: 100 * (i + 1), ComPop: 10, IndPop: 5,
			Crime: 20, Pollution: 15, TotalFunds: 10000, CityScore: 600, CityTax: 7,
		}
		if err := db.SaveStatsSnapshot(row); err != nil {
			t.Fatalf("save stats snapshot: %v", err)
		}
	}

	history, err := db.LoadStatsHistory(0, 0, 2)
	if err != nil {
		t.Fatalf("load stats history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected limit to cap results at 2, got %d", len(history))
	}
	if history[0].CityTime != 12 {
		t.Fatalf("expected most recent city_time first, got %d", history[0].CityTime)
	}

	ranged, err := db.LoadStatsHistory(5, 12, 10)
	if err != nil {
		t.Fatalf("load ranged stats history: %v", err)
	}
	if len(ranged) != 2 {
		t.Fatalf("expected from/to range [5,12] to match city_time 8 and 12, got %d rows", len(ranged))
	}
}

func TestSaveStatsSnapshotOverwritesSameCityTime(t *testing.T) {
	db := newTestDB(t)

	if err := db.SaveStatsSnapshot(StatsRow{CityTime: 4, ResPop: 10}); err != nil {
		t.Fatalf("save stats snapshot: %v", err)
	}
	if err := db.SaveStatsSnapshot(StatsRow{CityTime: 4, ResPop: 99}); err != nil {
		t.Fatalf("overwrite stats snapshot: %v", err)
	}

	history, err := db.LoadStatsHistory(0, 0, 10)
	if err != nil {
		t.Fatalf("load stats history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected the overwrite to replace rather than duplicate, got %d rows", len(history))
	}
	if history[0].ResPop != 99 {
		t.Fatalf("expected the overwritten value, got %d", history[0].ResPop)
	}
}
