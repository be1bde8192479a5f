// Package census tracks population, crime, pollution, and money ring
// histories at two sampling scales, plus their running maxima.
package census

// Ring buffer lengths: six fields at 480 samples (10- and
// 120-period scales share the same backing buffer), one misc field at
// 240.
const (
	HistoryLength     = 480
	MiscHistoryLength = 240

	// Scale10 is the number of most-recent entries considered for the
	// 10-period ("short") maximum.
	Scale10 = 120
)

// Ring is a fixed-length history buffer where index 0 is most recent.
type Ring struct {
	buf [HistoryLength]int32
}

// Push shifts the buffer and inserts v at index 0.
func (r *Ring) Push(v int32) {
	copy(r.buf[1:], r.buf[:len(r.buf)-1])
	r.buf[0] = v
}

// At returns the value i samples back (0 = most recent).
func (r *Ring) At(i int) int32 {
	if i < 0 || i >= len(r.buf) {
		return 0
	}
	return r.buf[i]
}

// Max10 returns the maximum over the most recent Scale10 entries.
func (r *Ring) Max10() int32 {
	return maxOf(r.buf[:Scale10])
}

// Max120 returns the maximum over the entire buffer.
func (r *Ring) Max120() int32 {
	return maxOf(r.buf[:])
}

func maxOf(s []int32) int32 {
	var m int32
	for _, v := range s {
		if v > m {
			m = v
		}
	}
	return m
}

// Census holds every ring history the scheduler's census phases update.
type Census struct {
	ResPop, ComPop, IndPop Ring
	Crime, Pollution, Money Ring
	Misc                   [MiscHistoryLength]int32

	// Per-tick accumulators, reset every phase 0 and folded into the
	// rings by Take10/Take120.
	ResPopAccum, ComPopAccum, IndPopAccum int32
	CrimeAccum, PollutionAccum            int32
}

// ResetTick clears the per-tick accumulators (phase 0 of the scheduler).
func (c *Census) ResetTick() {
	c.ResPopAccum, c.ComPopAccum, c.IndPopAccum = 0, 0, 0
	c.CrimeAccum, c.PollutionAccum = 0, 0
}

// Take10 folds the current accumulators into the 10-scale rings (every
// 4 city-time ticks, at phase 9).
func (c *Census) Take10(money int32) {
	c.ResPop.Push(c.ResPopAccum)
	c.ComPop.Push(c.ComPopAccum)
	c.IndPop.Push(c.IndPopAccum)
	c.Crime.Push(c.CrimeAccum)
	c.Pollution.Push(c.PollutionAccum)
	c.Money.Push(money)
}

// Take120 records a coarser sample into the misc history (every 48
// city-time ticks).
func (c *Census) Take120(population int32) {
	copy(c.Misc[1:], c.Misc[:len(c.Misc)-1])
	c.Misc[0] = population
}
