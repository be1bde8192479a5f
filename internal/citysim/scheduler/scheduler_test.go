package scheduler

import "testing"

func TestPausedNeverSteps(t *testing.T) {
	e := New()
	calls := 0
	e.OnPhase0 = func(int) { calls++ }

	for i := 0; i < 20; i++ {
		e.Step()
	}
	if calls != 0 {
		t.Fatalf("expected no phase0 calls while paused, got %d", calls)
	}
}

func TestFastRunsMapScanAcrossEighths(t *testing.T) {
	e := New()
	e.Speed = Fast
	var ranges [][2]int
	e.MapScan = func(x1, x2 int) { ranges = append(ranges, [2]int{x1, x2}) }

	for i := 0; i < 9; i++ {
		e.Step()
	}
	if len(ranges) != 8 {
		t.Fatalf("expected 8 map scan calls across phases 1..8, got %d", len(ranges))
	}
	if ranges[0][0] != 0 || ranges[7][1] != 120 {
		t.Fatalf("expected scan ranges to cover the full width, got %v", ranges)
	}
}

func TestCityTimeIncrementsOncePerCycle(t *testing.T) {
	e := New()
	e.Speed = Fast
	for i := 0; i < 16; i++ {
		e.Step()
	}
	if e.CityTime != 1 {
		t.Fatalf("expected city_time to increment exactly once per 16-phase cycle, got %d", e.CityTime)
	}
}

func TestDateConversion(t *testing.T) {
	month, year := Date(4*13+2, 1900)
	if month != 1 {
		t.Fatalf("expected month 1, got %d", month)
	}
	if year != 1901 {
		t.Fatalf("expected year 1901, got %d", year)
	}
}
