package zones

import (
	"github.com/tobyjaguar/microcity/internal/citysim/rng"
	"github.com/tobyjaguar/microcity/internal/citysim/tilemap"
)

// makeTraffic returns -1 if (x, y) has no road-bearing neighbor,
// otherwise a random value in [0,10]. This stands in for full traffic
// routing and distance-bounded pathfinding; the stochastic neighbor
// probe is retained as a deliberate simplification.
func makeTraffic(m *tilemap.TileMap, r *rng.Rng, x, y int) int {
	neighbors := [4][2]int{{x, y - 1}, {x + 1, y}, {x, y + 1}, {x - 1, y}}
	for _, n := range neighbors {
		if tilemap.IsRoad(m.Get(n[0], n[1]).Character()) {
			return r.Range(10)
		}
	}
	return -1
}
