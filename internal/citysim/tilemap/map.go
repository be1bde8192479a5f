package tilemap

import "fmt"

// World dimensions, fixed by the simulation.
const (
	Width  = 120
	Height = 100
)

// TileMap holds the complete 120x100 cell grid, stored column-major.
type TileMap struct {
	cells [Width * Height]Cell
}

// NewTileMap returns an all-dirt map.
func NewTileMap() *TileMap {
	return &TileMap{}
}

func idx(x, y int) (int, bool) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0, false
	}
	return x*Height + y, true
}

// InBounds reports whether (x, y) lies within the map.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Get returns the cell at (x, y), or the zero cell (dirt, no flags) if
// out of bounds. Out-of-bounds reads are load-bearing for the smoothing
// kernels, which read neighbors including off-grid positions.
func (m *TileMap) Get(x, y int) Cell {
	i, ok := idx(x, y)
	if !ok {
		return 0
	}
	return m.cells[i]
}

// Set writes the cell at (x, y). Out-of-bounds writes are silent no-ops.
func (m *TileMap) Set(x, y int, c Cell) {
	i, ok := idx(x, y)
	if !ok {
		return
	}
	m.cells[i] = c
}

// Fill overwrites every cell with c.
func (m *TileMap) Fill(c Cell) {
	for i := range m.cells {
		m.cells[i] = c
	}
}

// Region returns a copy of the w x h block of cells starting at (x, y),
// row-major (x varies fastest within each row). Cells outside the map
// come back as zero cells, so the slice always holds w*h entries.
func (m *TileMap) Region(x, y, w, h int) []Cell {
	out := make([]Cell, 0, w*h)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			out = append(out, m.Get(x+dx, y+dy))
		}
	}
	return out
}

func (m *TileMap) String() string {
	return fmt.Sprintf("TileMap(%dx%d)", Width, Height)
}
