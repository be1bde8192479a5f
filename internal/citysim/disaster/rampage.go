package disaster

import (
	"github.com/tobyjaguar/microcity/internal/citysim/sprite"
	"github.com/tobyjaguar/microcity/internal/citysim/tilemap"
)

// Tornado and monster sprites move by a simple deterministic walk: each
// tick the sprite takes one step toward its destination (tornado: a
// random point rolled at spawn; monster: the current pollution
// hotspot) and rubbleizes any BULLDOZABLE cell it steps onto.

// MakeTornado appends a tornado sprite with a random destination.
func (e *Effects) MakeTornado() *sprite.Sprite {
	x, y := e.Rng.Range(39), e.Rng.Range(39)
	s := e.Sprites.Spawn(sprite.Tornado, x, y, 50)
	s.DestX, s.DestY = e.Rng.Range(119)*16, e.Rng.Range(99)*16
	e.message("Tornado!", x, y, true)
	return s
}

// MakeMonster appends a monster sprite whose destination is the given
// pollution hotspot (caller supplies ov.PollutionMax's world location).
func (e *Effects) MakeMonster(hotX, hotY int) *sprite.Sprite {
	x, y := e.Rng.Range(119), e.Rng.Range(99)
	s := e.Sprites.Spawn(sprite.Monster, x, y, 100)
	s.DestX, s.DestY = hotX*16, hotY*16
	e.message("Monster sighted!", x, y, true)
	return s
}

// AdvanceRampaging steps every tornado/monster sprite one tile toward
// its destination and rubbleizes the cell it lands on if bulldozable.
func (e *Effects) AdvanceRampaging() {
	for _, s := range e.Sprites.All() {
		if s.Kind != sprite.Tornado && s.Kind != sprite.Monster {
			continue
		}
		e.stepToward(s)
	}
}

func (e *Effects) stepToward(s *sprite.Sprite) {
	stepX, stepY := sign(s.DestX-s.X), sign(s.DestY-s.Y)
	s.X += stepX * 16
	s.Y += stepY * 16

	x, y := s.Tile()
	c := e.Map.Get(x, y)
	if c.Flag(tilemap.FlagBulldozable) {
		e.Map.Set(x, y, tilemap.NewCell(tilemap.RubbleFirst+e.Rng.Range(3), tilemap.FlagBulldozable))
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
