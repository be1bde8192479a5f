// Package power implements the power-grid flood fill: each scan (run
// by the scheduler every 9th cycle) rebuilds the grid wholly from the
// current set of power plants,
// stamping a boolean overlay that zone processors then copy into each
// zone-center's POWERED flag.
package power

import (
	"log/slog"

	"github.com/tobyjaguar/microcity/internal/citysim/tilemap"
)

// Grid is the 1-block overlay recording, per world cell, whether that
// cell is energized this tick.
type Grid struct {
	overlay *tilemap.OverlayMap[uint8]
}

// NewGrid allocates an empty power grid.
func NewGrid() *Grid {
	return &Grid{overlay: tilemap.NewOverlayMap[uint8](1)}
}

// IsPowered reports whether (x, y) is energized.
func (g *Grid) IsPowered(x, y int) bool {
	return g.overlay.WorldGet(x, y) != 0
}

// capacity bounds the flood-fill stack: an isolated sub-grid may be
// underserved if the stack overflows, but the scan never panics.
func capacity() int {
	return (tilemap.Width * tilemap.Height) / 4
}

// Scan clears the grid and floods outward from every power plant
// through CONDUCTIVE-flagged cells, 4-connected.
func Scan(m *tilemap.TileMap, g *Grid) {
	g.overlay.Clear()

	type point struct{ x, y int }
	stack := make([]point, 0, capacity())
	dropped := 0

	push := func(p point) {
		if len(stack) >= capacity() {
			dropped++
			return
		}
		stack = append(stack, p)
	}

	for x := 0; x < tilemap.Width; x++ {
		for y := 0; y < tilemap.Height; y++ {
			if tilemap.IsPowerPlant(m.Get(x, y).Character()) {
				push(point{x, y})
			}
		}
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if g.overlay.WorldGet(p.x, p.y) != 0 {
			continue
		}
		g.overlay.WorldSet(p.x, p.y, 1)

		neighbors := [4]point{
			{p.x, p.y - 1}, {p.x + 1, p.y}, {p.x, p.y + 1}, {p.x - 1, p.y},
		}
		for _, n := range neighbors {
			if !tilemap.InBounds(n.x, n.y) {
				continue
			}
			if g.overlay.WorldGet(n.x, n.y) != 0 {
				continue
			}
			if !m.Get(n.x, n.y).Flag(tilemap.FlagConductive) {
				continue
			}
			push(n)
		}
	}

	if dropped > 0 {
		slog.Warn("power scan stack overflow, coverage degraded", "dropped", dropped)
	}
}

// ApplyZoneCenter copies the grid's state at (x, y) into the cell's
// POWERED flag and returns the updated cell.
func ApplyZoneCenter(g *Grid, c tilemap.Cell, x, y int) tilemap.Cell {
	return c.WithFlag(tilemap.FlagPowered, g.IsPowered(x, y))
}
