package disaster

import (
	"testing"

	"github.com/tobyjaguar/microcity/internal/citysim/rng"
	"github.com/tobyjaguar/microcity/internal/citysim/sprite"
	"github.com/tobyjaguar/microcity/internal/citysim/tilemap"
)

func newEffects(seed uint64) (*Effects, *tilemap.TileMap) {
	m := &tilemap.TileMap{}
	return &Effects{
		Map:     m,
		Rng:     rng.New(seed),
		Sprites: sprite.NewRegistry(),
	}, m
}

func TestMakeExplosionRubblesBulldozable(t *testing.T) {
	e, m := newEffects(1)
	m.Set(10, 10, tilemap.NewCell(tilemap.HOUSE, tilemap.FlagBulldozable))

	e.MakeExplosion(10, 10)

	if !tilemap.IsRubble(m.Get(10, 10).Character()) {
		t.Fatalf("expected the center cell to become rubble")
	}
	if len(e.Sprites.All()) != 1 {
		t.Fatalf("expected an explosion sprite to be spawned")
	}
}

func TestMakeFloodSpreadsFromWater(t *testing.T) {
	e, m := newEffects(3)
	for x := 0; x < tilemap.Width; x++ {
		for y := 0; y < tilemap.Height; y++ {
			m.Set(x, y, tilemap.NewCell(tilemap.RiverFirst, 0))
		}
	}
	m.Set(20, 20, tilemap.NewCell(tilemap.HOUSE, tilemap.FlagBulldozable))

	state := &FloodState{}
	e.MakeFlood(state)

	if state.Count != floodLifetime {
		t.Fatalf("expected flood state to be armed, got count=%d", state.Count)
	}
}

func TestDecayFloodRevertsAfterLifetime(t *testing.T) {
	e, m := newEffects(5)
	m.Set(15, 15, tilemap.NewCell(tilemap.FloodFirst, 0))
	state := &FloodState{Count: 1}

	e.DecayFlood(state)

	if tilemap.IsFlood(m.Get(15, 15).Character()) {
		t.Fatalf("expected flood tile to revert to rubble once the lifetime expires")
	}
	if state.Count != 0 {
		t.Fatalf("expected flood state count to reach 0")
	}
}

func TestMakeMeltdownSpawnsExplosionAndFire(t *testing.T) {
	e, m := newEffects(9)
	for x := 8; x <= 12; x++ {
		for y := 8; y <= 12; y++ {
			m.Set(x, y, tilemap.NewCell(tilemap.HOUSE, tilemap.FlagBulldozable|tilemap.FlagBurnable))
		}
	}

	e.MakeMeltdown(10, 10)

	if e.Sprites.FindKind(sprite.Explosion) == nil {
		t.Fatalf("expected an explosion sprite at the meltdown center")
	}

	foundFire := false
	for x := 8; x <= 12; x++ {
		for y := 8; y <= 12; y++ {
			if tilemap.IsFire(m.Get(x, y).Character()) {
				foundFire = true
			}
		}
	}
	if !foundFire {
		t.Fatalf("expected at least one burning cell in the 5x5 meltdown radius")
	}
}

func TestAdvanceRampagingStepsTowardDestination(t *testing.T) {
	e, _ := newEffects(11)
	s := e.Sprites.Spawn(sprite.Tornado, 10, 10, 50)
	s.DestX, s.DestY = 20*16, 10*16

	e.AdvanceRampaging()

	x, _ := s.Tile()
	if x != 11 {
		t.Fatalf("expected the tornado to step one tile toward its destination, got x=%d", x)
	}
}
