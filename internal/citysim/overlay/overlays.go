// Package overlay implements the coarse derived-field scans: pollution,
// land value, crime, population density, rate-of-growth, and
// fire/police station reach, plus the smoothing kernels that settle
// them, all built on tilemap.Smooth and reused here at whichever block
// size each field needs.
package overlay

import (
	"github.com/tobyjaguar/microcity/internal/citysim/tilemap"
)

// Overlays bundles every derived field the simulation maintains.
type Overlays struct {
	TrafficDensity     *tilemap.OverlayMap[uint8] // block 2
	PollutionDensity   *tilemap.OverlayMap[uint8] // block 2
	LandValue          *tilemap.OverlayMap[uint8] // block 2
	CrimeRate          *tilemap.OverlayMap[uint8] // block 2
	PopulationDensity  *tilemap.OverlayMap[uint8] // block 2
	TerrainDensity     *tilemap.OverlayMap[uint8] // block 4
	RateOfGrowth       *tilemap.OverlayMap[int16] // block 8
	FireStationMap     *tilemap.OverlayMap[uint8] // block 8
	FireStationEffect  *tilemap.OverlayMap[uint8] // block 8
	PoliceStationMap   *tilemap.OverlayMap[uint8] // block 8
	PoliceStationEffect *tilemap.OverlayMap[uint8] // block 8
	ComRateMap         *tilemap.OverlayMap[uint8] // block 8

	PollutionMax int
	CrimeMax     int

	tmp1 *tilemap.OverlayMap[uint8] // block 2 scratch
	tmp2 *tilemap.OverlayMap[uint8] // block 2 scratch
}

// New allocates every overlay at its designated block size.
func New() *Overlays {
	return &Overlays{
		TrafficDensity:      tilemap.NewOverlayMap[uint8](2),
		PollutionDensity:    tilemap.NewOverlayMap[uint8](2),
		LandValue:           tilemap.NewOverlayMap[uint8](2),
		CrimeRate:           tilemap.NewOverlayMap[uint8](2),
		PopulationDensity:   tilemap.NewOverlayMap[uint8](2),
		TerrainDensity:      tilemap.NewOverlayMap[uint8](4),
		RateOfGrowth:        tilemap.NewOverlayMap[int16](8),
		FireStationMap:      tilemap.NewOverlayMap[uint8](8),
		FireStationEffect:   tilemap.NewOverlayMap[uint8](8),
		PoliceStationMap:    tilemap.NewOverlayMap[uint8](8),
		PoliceStationEffect: tilemap.NewOverlayMap[uint8](8),
		ComRateMap:          tilemap.NewOverlayMap[uint8](8),
		tmp1:                tilemap.NewOverlayMap[uint8](2),
		tmp2:                tilemap.NewOverlayMap[uint8](2),
	}
}

func clamp255(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clampSigned(v, lo, hi int) int16 {
	if v < lo {
		return int16(lo)
	}
	if v > hi {
		return int16(hi)
	}
	return int16(v)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
