// Package disaster implements fire, flood, earthquake, meltdown,
// tornado, monster, and explosion effects on the tile grid.
package disaster

import (
	"log/slog"

	"github.com/tobyjaguar/microcity/internal/citysim/rng"
	"github.com/tobyjaguar/microcity/internal/citysim/sprite"
	"github.com/tobyjaguar/microcity/internal/citysim/tilemap"
)

// Effects bundles the state a disaster trigger mutates: the tile grid,
// the rng, the sprite registry, and the message sink.
type Effects struct {
	Map      *tilemap.TileMap
	Rng      *rng.Rng
	Sprites  *sprite.Registry
	OnMessage func(text string, x, y int, important bool)
}

func (e *Effects) message(text string, x, y int, important bool) {
	if e.OnMessage != nil {
		e.OnMessage(text, x, y, important)
	}
	if important {
		slog.Warn(text, "x", x, "y", y)
	}
}

// SetFire picks a random cell and, if it's burnable, ignites it.
func (e *Effects) SetFire() {
	x, y := e.Rng.Range(tilemap.Width-1), e.Rng.Range(tilemap.Height-1)
	c := e.Map.Get(x, y)
	if !c.Flag(tilemap.FlagBurnable) {
		return
	}
	e.Map.Set(x, y, tilemap.NewCell(tilemap.FireFirst+e.Rng.Range(7), tilemap.FlagAnimated))
	e.message("Fire reported!", x, y, true)
}

// MakeEarthquake perturbs 300..1000 random cells: 2/3 of the time a
// BULLDOZABLE cell becomes rubble, otherwise a BURNABLE cell catches
// fire.
func (e *Effects) MakeEarthquake() {
	count := 300 + e.Rng.Range(700)
	for i := 0; i < count; i++ {
		x, y := e.Rng.Range(tilemap.Width-1), e.Rng.Range(tilemap.Height-1)
		c := e.Map.Get(x, y)
		switch {
		case c.Flag(tilemap.FlagBulldozable) && !e.Rng.Chance(3):
			e.Map.Set(x, y, tilemap.NewCell(tilemap.RubbleFirst+e.Rng.Range(3), tilemap.FlagBulldozable))
		case c.Flag(tilemap.FlagBurnable):
			e.Map.Set(x, y, tilemap.NewCell(tilemap.FireFirst+e.Rng.Range(7), tilemap.FlagAnimated))
		}
	}
	e.message("Earthquake!", -1, -1, true)
}

// MakeExplosion appends an explosion sprite at (x, y) and turns every
// BULLDOZABLE cell in the surrounding 3x3 to rubble.
func (e *Effects) MakeExplosion(x, y int) {
	e.Sprites.Spawn(sprite.Explosion, x, y, 30)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			cx, cy := x+dx, y+dy
			c := e.Map.Get(cx, cy)
			if c.Flag(tilemap.FlagBulldozable) {
				e.Map.Set(cx, cy, tilemap.NewCell(tilemap.RubbleFirst+e.Rng.Range(3), tilemap.FlagBulldozable))
			}
		}
	}
	e.message("Explosion!", x, y, true)
}

// MakeMeltdown runs the nuclear disaster sequence centered on (x, y):
// fire across a 5x5 of burnable/dirt cells, a 1-in-5 chance of
// radiation across a 7x7, and an explosion sprite at center.
func (e *Effects) MakeMeltdown(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			cx, cy := x+dx, y+dy
			c := e.Map.Get(cx, cy)
			if c.Flag(tilemap.FlagBurnable) || c.Character() == tilemap.Dirt {
				e.Map.Set(cx, cy, tilemap.NewCell(tilemap.FireFirst+e.Rng.Range(7), tilemap.FlagAnimated))
			}
		}
	}
	for dy := -3; dy <= 3; dy++ {
		for dx := -3; dx <= 3; dx++ {
			if e.Rng.Chance(5) {
				e.Map.Set(x+dx, y+dy, tilemap.NewCell(tilemap.RadTile, 0))
			}
		}
	}
	e.Sprites.Spawn(sprite.Explosion, x, y, 30)
	e.message("Nuclear meltdown!", x, y, true)
}
