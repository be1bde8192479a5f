package zones

import (
	"github.com/tobyjaguar/microcity/internal/citysim/census"
	"github.com/tobyjaguar/microcity/internal/citysim/overlay"
	"github.com/tobyjaguar/microcity/internal/citysim/rng"
	"github.com/tobyjaguar/microcity/internal/citysim/tilemap"
)

const comPopCap = 5

func commercialPopulation(tile int) int {
	if tile == tilemap.COMCLR {
		return 0
	}
	d := (tile-tilemap.CZB)/9 + 1
	if d > comPopCap {
		d = comPopCap
	}
	if d < 0 {
		d = 0
	}
	return d
}

func plopCommercial(m *tilemap.TileMap, x, y, pop int) {
	if pop <= 0 {
		plop(m, x, y, tilemap.COMCLR)
		return
	}
	d := pop
	if d > comPopCap {
		d = comPopCap
	}
	plop(m, x, y, tilemap.CZB-1+9*d)
}

// evaluateCommercial runs one zone center's commercial growth/decline
// evaluation.
func evaluateCommercial(m *tilemap.TileMap, ov *overlay.Overlays, r *rng.Rng, v *Valves, cens *census.Census, x, y int) {
	c := m.Get(x, y)
	pop := commercialPopulation(c.Character())
	cens.ComPopAccum += int32(pop)
	ov.AccumulatePopulation(x, y, pop*8)

	traffic := makeTraffic(m, r, x, y)
	if traffic >= 0 {
		ov.AccumulateTraffic(x, y, traffic)
	}
	if traffic < 0 {
		doComOut(m, ov, x, y, pop)
		return
	}

	comRate := int(ov.ComRateMap.WorldGet(x, y))
	landValue := int(ov.LandValue.WorldGet(x, y))
	pollution := int(ov.PollutionDensity.WorldGet(x, y))

	value := comRate + landValue - pollution + v.Com/16 - traffic
	if !c.Flag(tilemap.FlagPowered) {
		value = -500
	}

	switch {
	case value > 0:
		doComIn(m, ov, x, y, pop)
	case value < 0:
		doComOut(m, ov, x, y, pop)
	}
}

func doComIn(m *tilemap.TileMap, ov *overlay.Overlays, x, y, pop int) {
	if pop < comPopCap {
		plopCommercial(m, x, y, pop+1)
	}
	ov.IncRateOfGrowth(x, y, 4)
}

func doComOut(m *tilemap.TileMap, ov *overlay.Overlays, x, y, pop int) {
	plopCommercial(m, x, y, pop-1)
	ov.IncRateOfGrowth(x, y, -4)
}
