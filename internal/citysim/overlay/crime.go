package overlay

import "github.com/tobyjaguar/microcity/internal/citysim/tilemap"

// ScanCrime derives a crime pressure field from population density and
// land value, dampened by police station reach, then smooths it into
// CrimeRate.
func (ov *Overlays) ScanCrime() {
	w, h := ov.tmp1.Dims()
	maxVal := 0

	for oy := 0; oy < h; oy++ {
		for ox := 0; ox < w; ox++ {
			pop := int(ov.PopulationDensity.Get(ox, oy))
			landValue := int(ov.LandValue.Get(ox, oy))
			wx, wy := ox*2, oy*2

			police := int(ov.PoliceStationEffect.WorldGet(wx, wy))
			if police > 127 {
				police = 127
			}
			factor := float64(128-police) / 128.0

			base := pop - landValue/4
			value := int(float64(base) * factor)
			clamped := clamp255(value)
			ov.tmp1.Set(ox, oy, clamped)
			if int(clamped) > maxVal {
				maxVal = int(clamped)
			}
		}
	}
	ov.CrimeMax = maxVal

	tilemap.Smooth(ov.CrimeRate, ov.tmp1)
}

// AverageCrime returns the mean crime rate across the overlay.
func (ov *Overlays) AverageCrime() float64 {
	return ov.CrimeRate.Average()
}
