package rng

import "testing"

func TestDeterministicSequence(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		va := a.Rand16()
		vb := b.Rand16()
		if va != vb {
			t.Fatalf("sequence diverged at step %d: %d != %d", i, va, vb)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)

	same := true
	for i := 0; i < 20; i++ {
		if a.Rand16() != b.Rand16() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected distinct seeds to diverge within 20 draws")
	}
}

func TestRangeBounds(t *testing.T) {
	r := New(7)
	for i := 0; i < 10000; i++ {
		v := r.Range(9)
		if v < 0 || v > 9 {
			t.Fatalf("Range(9) out of bounds: %d", v)
		}
	}
}

func TestRangeZero(t *testing.T) {
	r := New(7)
	for i := 0; i < 100; i++ {
		if v := r.Range(0); v != 0 {
			t.Fatalf("Range(0) = %d, want 0", v)
		}
	}
}

func TestERandBiasLow(t *testing.T) {
	r := New(99)
	var sum int
	const trials = 5000
	for i := 0; i < trials; i++ {
		sum += r.ERand(10)
	}
	avg := float64(sum) / float64(trials)
	// min of two uniform draws over [0,10] should average below 10/2.
	if avg >= 5.0 {
		t.Fatalf("ERand(10) average %.2f, expected biased below 5.0", avg)
	}
}

func TestChance(t *testing.T) {
	r := New(5)
	hits := 0
	const trials = 20000
	for i := 0; i < trials; i++ {
		if r.Chance(10000) {
			hits++
		}
	}
	// Roughly 1/10000 over 20000 trials — allow generous slack, this is
	// a sanity check, not a statistical test.
	if hits > 50 {
		t.Fatalf("Chance(10000) fired %d times in %d trials, too frequent", hits, trials)
	}
}
