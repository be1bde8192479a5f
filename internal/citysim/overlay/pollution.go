package overlay

import "github.com/tobyjaguar/microcity/internal/citysim/tilemap"

// Pollution contribution weights.
const (
	pollutionIndustrial = 50
	pollutionCoal       = 100
	pollutionAirport    = 50
	pollutionPort       = 30
	pollutionFire       = 100
)

// ScanPollution accumulates per-cell pollution sources into a scratch
// overlay, smooths twice, and publishes PollutionDensity.
func (ov *Overlays) ScanPollution(m *tilemap.TileMap) {
	w, h := ov.tmp1.Dims()
	accum := make([]int, w*h)

	for x := 0; x < tilemap.Width; x++ {
		for y := 0; y < tilemap.Height; y++ {
			ch := m.Get(x, y).Character()

			contribution := int(ov.TrafficDensity.WorldGet(x, y))
			switch {
			case tilemap.IsIndustrial(ch):
				contribution += pollutionIndustrial
			case tilemap.IsFire(ch):
				contribution += pollutionFire
			case ch == tilemap.CoalPlantBase:
				contribution += pollutionCoal
			case ch == tilemap.AirportBase:
				contribution += pollutionAirport
			case ch >= tilemap.PortBase && ch <= tilemap.PortLast:
				contribution += pollutionPort
			}

			if contribution > 0 {
				accum[(y/2)*w+(x/2)] += contribution
			}
		}
	}

	maxVal := 0
	ov.tmp1.Clear()
	for oy := 0; oy < h; oy++ {
		for ox := 0; ox < w; ox++ {
			v := accum[oy*w+ox]
			if v > maxVal {
				maxVal = v
			}
			ov.tmp1.Set(ox, oy, clamp255(v))
		}
	}
	ov.PollutionMax = maxVal

	tilemap.Smooth(ov.tmp2, ov.tmp1)
	tilemap.Smooth(ov.PollutionDensity, ov.tmp2)
}

// AveragePollution returns the mean pollution level across the overlay.
func (ov *Overlays) AveragePollution() float64 {
	return ov.PollutionDensity.Average()
}
