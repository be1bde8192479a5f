package tools

import (
	"testing"

	"github.com/tobyjaguar/microcity/internal/citysim/rng"
	"github.com/tobyjaguar/microcity/internal/citysim/tilemap"
)

func newEngine(funds int) (*Engine, *tilemap.TileMap) {
	m := &tilemap.TileMap{}
	f := funds
	var serial uint64
	r := rng.New(7)
	return &Engine{
		Map:       m,
		Funds:     &f,
		MapSerial: &serial,
		Rand:      r.Range,
	}, m
}

func TestApplyOutOfBoundsFails(t *testing.T) {
	e, _ := newEngine(100000)
	if res := e.Apply(Road, -1, 5); res != Failed {
		t.Fatalf("expected FAILED at x=-1, got %v", res)
	}
	if res := e.Apply(Road, tilemap.Width, 5); res != Failed {
		t.Fatalf("expected FAILED at x=Width, got %v", res)
	}
}

func TestApplyStadiumNearEdgeFails(t *testing.T) {
	e, _ := newEngine(100000)
	if res := e.Apply(Stadium, 1, 1); res != Failed {
		t.Fatalf("expected FAILED for stadium at (1,1), got %v", res)
	}
}

func TestApplyNoMoney(t *testing.T) {
	e, _ := newEngine(5)
	if res := e.Apply(Road, 10, 10); res != NoMoney {
		t.Fatalf("expected NO_MONEY, got %v", res)
	}
}

func TestBulldozeWaterFails(t *testing.T) {
	e, m := newEngine(100000)
	m.Set(10, 10, tilemap.NewCell(tilemap.RiverFirst, 0))
	serialBefore := *e.MapSerial

	if res := e.Apply(Bulldozer, 10, 10); res != Failed {
		t.Fatalf("expected FAILED bulldozing water, got %v", res)
	}
	if *e.MapSerial != serialBefore {
		t.Fatalf("expected map_serial unchanged on failed bulldoze")
	}
}

func TestResidentialOnWaterNeedsBulldoze(t *testing.T) {
	e, m := newEngine(100000)
	m.Set(20, 20, tilemap.NewCell(tilemap.RiverFirst, 0))
	if res := e.Apply(Residential, 20, 20); res != NeedBulldoze {
		t.Fatalf("expected NEED_BULLDOZE placing residential on water, got %v", res)
	}
}

func TestRoadWireLoopScenario(t *testing.T) {
	e, _ := newEngine(20000)

	if res := e.Apply(CoalPlant, 10, 10); res != OK {
		t.Fatalf("expected OK placing coal plant, got %v", res)
	}
	if res := e.Apply(Wire, 14, 10); res != OK {
		t.Fatalf("expected OK placing wire, got %v", res)
	}
	if res := e.Apply(Road, 14, 12); res != OK {
		t.Fatalf("expected OK placing road, got %v", res)
	}

	want := 20000 - Cost(CoalPlant) - Cost(Wire) - Cost(Road)
	if *e.Funds != want {
		t.Fatalf("expected funds %d, got %d", want, *e.Funds)
	}
}

func TestPlopZoneSetsCenterFlag(t *testing.T) {
	e, m := newEngine(100000)
	if res := e.Apply(Residential, 50, 50); res != OK {
		t.Fatalf("expected OK, got %v", res)
	}
	if !m.Get(50, 50).Flag(tilemap.FlagZoneCenter) {
		t.Fatalf("expected center cell to carry ZONE_CENTER")
	}
	if m.Get(49, 49).Flag(tilemap.FlagZoneCenter) {
		t.Fatalf("expected edge cells not to carry ZONE_CENTER")
	}
}

func TestFixSingleMatchesNeighbors(t *testing.T) {
	e, m := newEngine(100000)
	e.Apply(Road, 30, 30)
	e.Apply(Road, 31, 30)

	bit := e.neighborBit(30, 30, tilemap.RoadFirst, tilemap.RoadLast)
	if bit&2 == 0 {
		t.Fatalf("expected east bit set after placing a road to the east")
	}
	_ = m
}
