package tools

import (
	"log/slog"

	"github.com/tobyjaguar/microcity/internal/citysim/tilemap"
)

// Engine owns the tile grid and funds the tool engine mutates, plus the
// map_serial counter external observers poll for map changes.
type Engine struct {
	Map          *tilemap.TileMap
	Funds        *int
	MapSerial    *uint64
	AutoBulldoze bool
	Rand         func(n int) int
}

// Apply validates and executes one tool placement at (x, y).
func (e *Engine) Apply(t Tool, x, y int) Result {
	if !tilemap.InBounds(x, y) {
		return Failed
	}

	c := Cost(t)
	if c > *e.Funds {
		return NoMoney
	}

	var res Result
	switch t {
	case Query:
		return OK
	case Bulldozer:
		res = e.bulldoze(x, y)
	case Road:
		res = e.layRoad(x, y)
	case Rail:
		res = e.layLine(x, y, tilemap.RailFirst, tilemap.FlagBulldozable|tilemap.FlagBurnable)
	case Wire:
		res = e.layLine(x, y, tilemap.WireFirst, tilemap.FlagBulldozable|tilemap.FlagBurnable|tilemap.FlagConductive)
	case Park:
		res = e.placePark(x, y)
	case Residential:
		res = e.plopZone(x, y, tilemap.FREEZ)
	case Commercial:
		res = e.plopZone(x, y, tilemap.COMCLR)
	case Industrial:
		res = e.plopZone(x, y, tilemap.INDCLR)
	case PoliceStation:
		res = e.plopZone(x, y, tilemap.PoliceStBase)
	case FireStation:
		res = e.plopZone(x, y, tilemap.FireStBase)
	case Stadium:
		res = e.plopNxN(x, y, tilemap.StadiumBase1, footprint[Stadium])
	case Seaport:
		res = e.plopNxN(x, y, tilemap.PortBase, footprint[Seaport])
	case CoalPlant:
		res = e.plopBuilding(x, y, tilemap.CoalPlantBase, footprint[CoalPlant])
	case NuclearPlant:
		res = e.plopNxN(x, y, tilemap.NuclearBase, footprint[NuclearPlant])
	case Airport:
		res = e.plopBuilding(x, y, tilemap.AirportBase, footprint[Airport])
	default:
		return Failed
	}

	if res != OK {
		return res
	}

	*e.Funds -= c
	*e.MapSerial++
	slog.Info("tool applied", "tool", t, "x", x, "y", y, "cost", c)
	return OK
}
