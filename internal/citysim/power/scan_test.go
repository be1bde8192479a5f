package power

import (
	"testing"

	"github.com/tobyjaguar/microcity/internal/citysim/tilemap"
)

func conductiveWire() tilemap.Cell {
	return tilemap.NewCell(tilemap.WireFirst, tilemap.FlagConductive|tilemap.FlagBulldozable)
}

func TestScanPropagatesFromPlant(t *testing.T) {
	m := tilemap.NewTileMap()
	m.Set(10, 10, tilemap.NewCell(tilemap.CoalPlantBase, tilemap.FlagConductive|tilemap.FlagZoneCenter))
	m.Set(11, 10, conductiveWire())
	m.Set(12, 10, conductiveWire())

	g := NewGrid()
	Scan(m, g)

	if !g.IsPowered(10, 10) {
		t.Fatal("plant cell should be powered")
	}
	if !g.IsPowered(11, 10) {
		t.Fatal("adjacent conductive cell should be powered")
	}
	if !g.IsPowered(12, 10) {
		t.Fatal("transitively connected conductive cell should be powered")
	}
}

func TestScanDoesNotCrossUnpoweredGap(t *testing.T) {
	m := tilemap.NewTileMap()
	m.Set(10, 10, tilemap.NewCell(tilemap.CoalPlantBase, tilemap.FlagConductive))
	m.Set(12, 10, conductiveWire()) // not adjacent, no bridge at (11,10)

	g := NewGrid()
	Scan(m, g)

	if g.IsPowered(12, 10) {
		t.Fatal("disconnected conductive cell should not be powered")
	}
}

func TestScanIdempotentWithoutMutation(t *testing.T) {
	m := tilemap.NewTileMap()
	m.Set(5, 5, tilemap.NewCell(tilemap.NuclearBase, tilemap.FlagConductive))
	m.Set(6, 5, conductiveWire())

	g := NewGrid()
	Scan(m, g)
	first := snapshot(g)

	Scan(m, g)
	second := snapshot(g)

	if first != second {
		t.Fatal("repeated scans without map mutation should agree")
	}
}

func TestNonGeneratorDoesNotSource(t *testing.T) {
	m := tilemap.NewTileMap()
	m.Set(1, 1, conductiveWire()) // conductive, but not a plant

	g := NewGrid()
	Scan(m, g)

	if g.IsPowered(1, 1) {
		t.Fatal("a conductive cell with no connected plant must not be powered")
	}
}

func snapshot(g *Grid) string {
	s := make([]byte, 0, tilemap.Width*tilemap.Height)
	for x := 0; x < tilemap.Width; x++ {
		for y := 0; y < tilemap.Height; y++ {
			if g.IsPowered(x, y) {
				s = append(s, 1)
			} else {
				s = append(s, 0)
			}
		}
	}
	return string(s)
}
