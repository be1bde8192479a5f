package overlay

// rateOfGrowthClamp bounds how far a single 8x8 block's growth pressure
// can drift before it saturates.
const rateOfGrowthClamp = 200

// IncRateOfGrowth nudges the rate-of-growth field at world coordinates
// (x, y) by delta (±4 per zone evaluation).
func (ov *Overlays) IncRateOfGrowth(x, y, delta int) {
	current := int(ov.RateOfGrowth.WorldGet(x, y))
	ov.RateOfGrowth.WorldSet(x, y, clampSigned(current+delta, -rateOfGrowthClamp, rateOfGrowthClamp))
}

// DecayRateOfGrowth relaxes every cell one step toward zero. Called once
// every five simulation cycles, so a sustained growth or decline trend
// survives between evaluations but a one-off doesn't accumulate
// forever.
func (ov *Overlays) DecayRateOfGrowth() {
	w, h := ov.RateOfGrowth.Dims()
	for oy := 0; oy < h; oy++ {
		for ox := 0; ox < w; ox++ {
			v := int(ov.RateOfGrowth.Get(ox, oy))
			switch {
			case v > 0:
				v -= 1
			case v < 0:
				v += 1
			}
			ov.RateOfGrowth.Set(ox, oy, int16(v))
		}
	}
}
