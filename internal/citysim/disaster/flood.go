package disaster

import "github.com/tobyjaguar/microcity/internal/citysim/tilemap"

// floodLifetime is the number of ticks a flooded cell persists before
// receding and reverting to rubble, so a flood is a temporary disaster
// rather than a permanent terrain change.
const floodLifetime = 30

// FloodState tracks the remaining lifetime of the most recent flood.
type FloodState struct {
	Count int
}

// MakeFlood searches up to 300 random cells for a water tile and, when
// found, replaces the BULLDOZABLE cells in its 3x3 neighborhood with
// flood tiles.
func (e *Effects) MakeFlood(state *FloodState) {
	for attempt := 0; attempt < 300; attempt++ {
		x, y := e.Rng.Range(tilemap.Width-1), e.Rng.Range(tilemap.Height-1)
		if !tilemap.IsWater(e.Map.Get(x, y).Character()) {
			continue
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				cx, cy := x+dx, y+dy
				c := e.Map.Get(cx, cy)
				if c.Flag(tilemap.FlagBulldozable) {
					e.Map.Set(cx, cy, tilemap.NewCell(tilemap.FloodFirst+e.Rng.Range(3), 0))
				}
			}
		}
		state.Count = floodLifetime
		e.message("Flooding reported!", x, y, true)
		return
	}
}

// DecayFlood counts down the active flood and, once expired, reverts
// every flood tile on the map back to rubble.
func (e *Effects) DecayFlood(state *FloodState) {
	if state.Count <= 0 {
		return
	}
	state.Count--
	if state.Count > 0 {
		return
	}
	for x := 0; x < tilemap.Width; x++ {
		for y := 0; y < tilemap.Height; y++ {
			c := e.Map.Get(x, y)
			if tilemap.IsFlood(c.Character()) {
				e.Map.Set(x, y, tilemap.NewCell(tilemap.RubbleFirst, tilemap.FlagBulldozable))
			}
		}
	}
}
