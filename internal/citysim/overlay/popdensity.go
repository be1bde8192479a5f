package overlay

import "github.com/tobyjaguar/microcity/internal/citysim/tilemap"

// ResetPopulationAccum clears the population scratch overlay before the
// map scan phases re-populate it from each zone center.
func (ov *Overlays) ResetPopulationAccum() {
	ov.tmp1.Clear()
}

// AccumulatePopulation records one zone's population (already scaled by
// the caller — commercial/industrial are stored x8) at world
// coordinates (x, y), clamped to 255.
func (ov *Overlays) AccumulatePopulation(x, y, pop int) {
	current := int(ov.tmp1.WorldGet(x, y))
	ov.tmp1.WorldSet(x, y, clamp255(current+pop))
}

// ScanPopulationDensity smooths the accumulated population scratch
// three times into PopulationDensity.
func (ov *Overlays) ScanPopulationDensity() {
	tilemap.Smooth(ov.tmp2, ov.tmp1)
	tilemap.Smooth(ov.tmp1, ov.tmp2)
	tilemap.Smooth(ov.PopulationDensity, ov.tmp1)
}
