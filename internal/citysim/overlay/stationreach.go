package overlay

import "github.com/tobyjaguar/microcity/internal/citysim/tilemap"

// ResetStationMaps clears the station presence maps before the map scan
// phase re-marks every fire and police station zone center.
func (ov *Overlays) ResetStationMaps() {
	ov.FireStationMap.Clear()
	ov.PoliceStationMap.Clear()
}

// MarkFireStation records a fire station's presence at world coordinates
// (x, y) with the given strength (undamaged stations contribute more
// than ones sitting on high crime/low funding).
func (ov *Overlays) MarkFireStation(x, y, strength int) {
	ov.FireStationMap.WorldSet(x, y, clamp255(strength))
}

// MarkPoliceStation records a police station's presence at world
// coordinates (x, y) with the given strength.
func (ov *Overlays) MarkPoliceStation(x, y, strength int) {
	ov.PoliceStationMap.WorldSet(x, y, clamp255(strength))
}

// FireAnalysis spreads FireStationMap three smooth8 passes into
// FireStationEffect.
func (ov *Overlays) FireAnalysis() {
	spread(ov.FireStationEffect, ov.FireStationMap)
}

// PoliceAnalysis spreads PoliceStationMap three smooth8 passes into
// PoliceStationEffect.
func (ov *Overlays) PoliceAnalysis() {
	spread(ov.PoliceStationEffect, ov.PoliceStationMap)
}

// spread runs three alternating smooth8 passes so a station's reach
// extends several blocks beyond its own cell rather than just one.
func spread(dst, src *tilemap.OverlayMap[uint8]) {
	w, h := src.Dims()
	a := tilemap.NewOverlayMap[uint8](src.Block())
	b := tilemap.NewOverlayMap[uint8](src.Block())
	for oy := 0; oy < h; oy++ {
		for ox := 0; ox < w; ox++ {
			a.Set(ox, oy, src.Get(ox, oy))
		}
	}
	tilemap.Smooth(b, a)
	tilemap.Smooth(a, b)
	tilemap.Smooth(dst, a)
}
