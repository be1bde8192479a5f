package zones

import (
	"github.com/tobyjaguar/microcity/internal/citysim/census"
	"github.com/tobyjaguar/microcity/internal/citysim/overlay"
	"github.com/tobyjaguar/microcity/internal/citysim/rng"
	"github.com/tobyjaguar/microcity/internal/citysim/tilemap"
)

const resPopCap = 40

// residentialPopulation derives a zone's current population from its
// tile character.
func residentialPopulation(tile int, r *rng.Rng) int {
	switch {
	case tile == tilemap.FREEZ:
		return 0
	case tile < tilemap.HOUSE:
		return r.Range(8)
	case tile < tilemap.RZB:
		return (tile - tilemap.HOUSE) * 2
	default:
		return (tile-tilemap.RZB)/9*8 + 16
	}
}

// plopResidential writes the zone footprint whose base tile encodes pop.
func plopResidential(m *tilemap.TileMap, x, y, pop int, r *rng.Rng) {
	switch {
	case pop <= 0:
		plop(m, x, y, tilemap.FREEZ)
	case pop <= 3:
		plop(m, x, y, tilemap.HOUSE+r.Range(3))
	default:
		d := pop
		if d > 16 {
			d = 16
		}
		plop(m, x, y, tilemap.RZB-1+d)
	}
}

// evaluateResidential runs one zone center's residential growth/decline
// evaluation.
func evaluateResidential(m *tilemap.TileMap, ov *overlay.Overlays, r *rng.Rng, v *Valves, cens *census.Census, x, y int) {
	c := m.Get(x, y)
	pop := residentialPopulation(c.Character(), r)
	cens.ResPopAccum += int32(pop)
	ov.AccumulatePopulation(x, y, pop)

	traffic := makeTraffic(m, r, x, y)
	if traffic >= 0 {
		ov.AccumulateTraffic(x, y, traffic)
	}
	if traffic < 0 {
		doResOut(m, ov, r, x, y, pop)
		return
	}

	landValue := int(ov.LandValue.WorldGet(x, y))
	pollution := int(ov.PollutionDensity.WorldGet(x, y))
	crime := int(ov.CrimeRate.WorldGet(x, y))

	value := landValue - pollution
	if crime > 190 {
		value -= 50
	}
	value += v.Res / 16
	value -= traffic

	if !c.Flag(tilemap.FlagPowered) {
		value = -500
	}

	switch {
	case value > 0:
		doResIn(m, ov, r, x, y, pop)
	case value < 0:
		doResOut(m, ov, r, x, y, pop)
	}
}

func doResIn(m *tilemap.TileMap, ov *overlay.Overlays, r *rng.Rng, x, y, pop int) {
	if pop < resPopCap {
		grown := pop + 1
		rolled := r.Range(8) + 1
		if rolled < grown {
			grown = rolled
		}
		plopResidential(m, x, y, grown, r)
	}
	ov.IncRateOfGrowth(x, y, 4)
}

func doResOut(m *tilemap.TileMap, ov *overlay.Overlays, r *rng.Rng, x, y, pop int) {
	plopResidential(m, x, y, pop-1, r)
	ov.IncRateOfGrowth(x, y, -4)
}
