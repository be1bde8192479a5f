package zones

import (
	"github.com/tobyjaguar/microcity/internal/citysim/census"
	"github.com/tobyjaguar/microcity/internal/citysim/overlay"
	"github.com/tobyjaguar/microcity/internal/citysim/rng"
	"github.com/tobyjaguar/microcity/internal/citysim/tilemap"
)

const indPopCap = 4

func industrialPopulation(tile int) int {
	if tile == tilemap.INDCLR {
		return 0
	}
	d := (tile-tilemap.IZB)/9 + 1
	if d > indPopCap {
		d = indPopCap
	}
	if d < 0 {
		d = 0
	}
	return d
}

func plopIndustrial(m *tilemap.TileMap, x, y, pop int) {
	if pop <= 0 {
		plop(m, x, y, tilemap.INDCLR)
		return
	}
	d := pop
	if d > indPopCap {
		d = indPopCap
	}
	plop(m, x, y, tilemap.IZB-1+9*d)
}

// evaluateIndustrial runs one zone center's industrial growth/decline
// evaluation — unlike residential/commercial, value depends only on
// the valve and traffic, with no land-value/pollution term.
func evaluateIndustrial(m *tilemap.TileMap, ov *overlay.Overlays, r *rng.Rng, v *Valves, cens *census.Census, x, y int) {
	c := m.Get(x, y)
	pop := industrialPopulation(c.Character())
	cens.IndPopAccum += int32(pop)
	ov.AccumulatePopulation(x, y, pop*8)

	traffic := makeTraffic(m, r, x, y)
	if traffic >= 0 {
		ov.AccumulateTraffic(x, y, traffic)
	}
	if traffic < 0 {
		doIndOut(m, ov, x, y, pop)
		return
	}

	value := v.Ind/16 - traffic
	if !c.Flag(tilemap.FlagPowered) {
		value = -500
	}

	switch {
	case value > 0:
		doIndIn(m, ov, x, y, pop)
	case value < 0:
		doIndOut(m, ov, x, y, pop)
	}
}

func doIndIn(m *tilemap.TileMap, ov *overlay.Overlays, x, y, pop int) {
	if pop < indPopCap {
		plopIndustrial(m, x, y, pop+1)
	}
	ov.IncRateOfGrowth(x, y, 4)
}

func doIndOut(m *tilemap.TileMap, ov *overlay.Overlays, x, y, pop int) {
	plopIndustrial(m, x, y, pop-1)
	ov.IncRateOfGrowth(x, y, -4)
}
