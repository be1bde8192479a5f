package overlay

// AccumulateTraffic records one zone evaluation's traffic sample at
// world coordinates (x, y), saturating rather than overwriting so
// repeated passes over a busy block build up density (traffic_density
// feeds pollution's accumulation pass).
func (ov *Overlays) AccumulateTraffic(x, y, amount int) {
	current := int(ov.TrafficDensity.WorldGet(x, y))
	ov.TrafficDensity.WorldSet(x, y, clamp255(current+amount*4))
}

// DecayTraffic relaxes every traffic_density cell one step toward zero,
// called once per cycle at phase 10 so traffic readings don't
// accumulate forever once a road goes quiet.
func (ov *Overlays) DecayTraffic() {
	w, h := ov.TrafficDensity.Dims()
	for oy := 0; oy < h; oy++ {
		for ox := 0; ox < w; ox++ {
			v := int(ov.TrafficDensity.Get(ox, oy))
			if v > 0 {
				ov.TrafficDensity.Set(ox, oy, uint8(v-1))
			}
		}
	}
}
