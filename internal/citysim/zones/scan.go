package zones

import (
	"github.com/tobyjaguar/microcity/internal/citysim/census"
	"github.com/tobyjaguar/microcity/internal/citysim/overlay"
	"github.com/tobyjaguar/microcity/internal/citysim/power"
	"github.com/tobyjaguar/microcity/internal/citysim/rng"
	"github.com/tobyjaguar/microcity/internal/citysim/sprite"
	"github.com/tobyjaguar/microcity/internal/citysim/tilemap"
)

// Scanner bundles the shared state the map scan dispatch needs: the
// tile grid, derived overlays, the simulation's rng, zone-type demand
// valves, census accumulators, and per-tick zone counts.
type Scanner struct {
	Map     *tilemap.TileMap
	Overlay *overlay.Overlays
	Power   *power.Grid
	Rng     *rng.Rng
	Valves  *Valves
	Census  *census.Census
	Counts  *Counts
	Sprites *sprite.Registry

	CityTime         int
	DisastersEnabled bool
	OnMeltdown       func(x, y int)
	RoadEffect       int // from budget, drives do_road decay
}

// MapScan dispatches every cell in columns [x1, x2) across all rows,
// one vertical eighth of the map per call.
func (s *Scanner) MapScan(x1, x2 int) {
	for x := x1; x < x2; x++ {
		for y := 0; y < tilemap.Height; y++ {
			s.dispatch(x, y)
		}
	}
}

func (s *Scanner) dispatch(x, y int) {
	c := s.Map.Get(x, y)
	ch := c.Character()

	switch {
	case tilemap.IsFire(ch):
		s.doFire(x, y)
	case tilemap.IsRoad(ch):
		s.doRoad(x, y)
	case tilemap.IsRail(ch):
		s.doRail(x, y)
	case c.Flag(tilemap.FlagZoneCenter):
		s.Map.Set(x, y, power.ApplyZoneCenter(s.Power, c, x, y))
		s.dispatchZoneCenter(x, y, ch)
	}
}

func (s *Scanner) dispatchZoneCenter(x, y, ch int) {
	switch {
	case tilemap.IsResidential(ch):
		s.Counts.ResZones++
		evaluateResidential(s.Map, s.Overlay, s.Rng, s.Valves, s.Census, x, y)
	case tilemap.IsCommercial(ch):
		s.Counts.ComZones++
		evaluateCommercial(s.Map, s.Overlay, s.Rng, s.Valves, s.Census, x, y)
	case tilemap.IsIndustrial(ch):
		s.Counts.IndZones++
		evaluateIndustrial(s.Map, s.Overlay, s.Rng, s.Valves, s.Census, x, y)
	default:
		evaluateSpecial(s.Map, s.Rng, s.Sprites, s.Counts, s.DisastersEnabled, s.OnMeltdown, s.CityTime, x, y)
	}
}

// doFire advances one burning tile: spreads to a random BURNABLE
// neighbor unless the local fire station effect suppresses it, and has
// a 1/3 chance per tick to burn itself out to rubble.
func (s *Scanner) doFire(x, y int) {
	s.Counts.FirePop++

	if s.Rng.Chance(4) {
		neighbors := [4][2]int{{x, y - 1}, {x + 1, y}, {x, y + 1}, {x - 1, y}}
		n := neighbors[s.Rng.Range(3)]
		nc := s.Map.Get(n[0], n[1])
		if nc.Flag(tilemap.FlagBurnable) {
			effect := int(s.Overlay.FireStationEffect.WorldGet(n[0], n[1]))
			if effect < 50 || s.Rng.Range(99) > effect {
				s.Map.Set(n[0], n[1], tilemap.NewCell(tilemap.FireFirst+s.Rng.Range(7), tilemap.FlagAnimated))
			}
		}
	}

	if s.Rng.Chance(3) {
		s.Map.Set(x, y, tilemap.NewCell(tilemap.RubbleFirst+s.Rng.Range(3), tilemap.FlagBulldozable))
	}
}

// highTrafficThreshold is the traffic_density reading above which a
// plain road tile upgrades to its high-traffic variant.
const highTrafficThreshold = 200

// doRoad advances one road tile: counts it toward RoadTotal (a bridge
// counts for 4, a high-traffic variant for 2, a plain segment for 1 —
// RoadTotal feeds the road-funding formula, so heavier-duty road
// segments pull more of the road budget), upgrades or downgrades the
// tile's high-traffic variant to track local traffic_density, and when
// road funding is poor, has a small chance to decay.
func (s *Scanner) doRoad(x, y int) {
	c := s.Map.Get(x, y)
	ch := c.Character()

	switch {
	case tilemap.IsRoadBridge(ch):
		s.Counts.RoadTotal += 4
	case tilemap.IsRoadHiTraffic(ch):
		s.Counts.RoadTotal += 2
	default:
		s.Counts.RoadTotal++
	}

	s.updateRoadVariant(x, y, c, ch)

	if s.RoadEffect < 30 && s.Rng.Chance(511) {
		c = s.Map.Get(x, y)
		if s.Rng.Chance(15) {
			s.Map.Set(x, y, tilemap.NewCell(tilemap.RubbleFirst, tilemap.FlagBulldozable))
		} else if ch := c.Character(); ch > tilemap.RoadFirst {
			s.Map.Set(x, y, c.WithCharacter(ch-1))
		}
	}
}

// updateRoadVariant swaps a plain road tile for its high-traffic
// counterpart (or back) as traffic_density crosses highTrafficThreshold,
// preserving the tile's connectivity pattern. Bridges never carry the
// high-traffic look.
func (s *Scanner) updateRoadVariant(x, y int, c tilemap.Cell, ch int) {
	if tilemap.IsRoadBridge(ch) {
		return
	}

	var bit int
	switch {
	case tilemap.IsRoadHiTraffic(ch):
		bit = ch - tilemap.RoadHiTrafficFirst
	default:
		bit = ch - tilemap.RoadFirst
	}

	busy := int(s.Overlay.TrafficDensity.WorldGet(x, y)) > highTrafficThreshold
	switch {
	case busy && !tilemap.IsRoadHiTraffic(ch):
		s.Map.Set(x, y, c.WithCharacter(tilemap.RoadHiTrafficFirst+bit))
	case !busy && tilemap.IsRoadHiTraffic(ch):
		s.Map.Set(x, y, c.WithCharacter(tilemap.RoadFirst+bit))
	}
}

// doRail advances one rail tile: counts it and has a small chance to
// spawn a train sprite.
func (s *Scanner) doRail(x, y int) {
	s.Counts.RailTotal++
	if s.Rng.Chance(511) {
		s.Sprites.Spawn(sprite.Train, x, y, 200)
	}
}
