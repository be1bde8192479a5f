package overlay

import "github.com/tobyjaguar/microcity/internal/citysim/tilemap"

// ComputeComRateMap publishes, for every 8x8 block, a desirability score
// that falls off with distance from the map center: max(0, 64 -
// manhattan(center)/4), sampled at the block's own center point (8x+4,
// 8y+4).
func (ov *Overlays) ComputeComRateMap() {
	cx, cy := tilemap.Width/2, tilemap.Height/2
	w, h := ov.ComRateMap.Dims()

	for oy := 0; oy < h; oy++ {
		for ox := 0; ox < w; ox++ {
			wx, wy := ox*8+4, oy*8+4
			dist := abs(wx-cx) + abs(wy-cy)
			value := 64 - dist/4
			if value < 0 {
				value = 0
			}
			ov.ComRateMap.Set(ox, oy, uint8(value))
		}
	}
}
