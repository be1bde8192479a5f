package overlay

import "github.com/tobyjaguar/microcity/internal/citysim/tilemap"

// landValueBase is the baseline land value before pollution, crime, and
// terrain adjustments. "Center" is the map's fixed geometric midpoint
// rather than a population-weighted center of mass, which keeps the
// scan a pure function of the grid rather than of zone placement
// history (see DESIGN.md open question: land-value center).
const landValueBase = 150

// ScanLandValue reads pollution, crime, and terrain density (all
// previously-computed overlays) and republishes LandValue.
func (ov *Overlays) ScanLandValue() {
	cx, cy := tilemap.Width/2, tilemap.Height/2
	w, h := ov.LandValue.Dims()

	for oy := 0; oy < h; oy++ {
		for ox := 0; ox < w; ox++ {
			wx, wy := ox*2+1, oy*2+1
			dist := abs(wx-cx) + abs(wy-cy)

			pollution := int(ov.PollutionDensity.Get(ox, oy))
			crime := int(ov.CrimeRate.Get(ox, oy))
			terrainDensity := int(ov.TerrainDensity.WorldGet(wx, wy))

			value := landValueBase - dist/2 - pollution - crime/2 + terrainDensity*2
			ov.LandValue.Set(ox, oy, clamp255(value))
		}
	}
}

// AverageLandValue returns the mean land value across the overlay.
func (ov *Overlays) AverageLandValue() float64 {
	return ov.LandValue.Average()
}
