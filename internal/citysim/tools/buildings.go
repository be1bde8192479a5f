package tools

import "github.com/tobyjaguar/microcity/internal/citysim/tilemap"

// parkFountain and the four tree variants are the only park tiles.
const parkFountain = tilemap.TreeFirst

// placePark writes either the fountain tile or a random tree tile,
// 1-in-5 chance of fountain (Rand(4) draws from [0,4]).
func (e *Engine) placePark(x, y int) Result {
	if !e.clearable(x, y) {
		return NeedBulldoze
	}
	ch := parkFountain
	if e.Rand(4) != 0 {
		ch = tilemap.TreeFirst + 1 + e.Rand(3)
	}
	e.Map.Set(x, y, tilemap.NewCell(ch, tilemap.FlagBulldozable))
	return OK
}

// plopZone writes a fresh, empty 3x3 zone footprint (residential,
// commercial, industrial, police, or fire station).
func (e *Engine) plopZone(x, y, base int) Result {
	if !e.area3x3Clear(x, y) {
		return NeedBulldoze
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			var flags tilemap.Cell
			if dx == 0 && dy == 0 {
				flags = tilemap.FlagZoneCenter | tilemap.FlagBulldozable
			} else {
				flags = tilemap.FlagBulldozable
			}
			e.Map.Set(x+dx, y+dy, tilemap.NewCell(base, flags))
		}
	}
	return OK
}

func (e *Engine) area3x3Clear(x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if !e.clearable(x+dx, y+dy) {
				return false
			}
		}
	}
	return true
}

// plopBuilding writes an NxN special building (coal or airport): the
// center cell (offset floor(N/2)) carries
// ZONE_CENTER|CONDUCTIVE|POWERED|BULLDOZABLE; every other cell carries
// CONDUCTIVE|BURNABLE. Every cell shares the same character rather than
// the row-major base+i numbering plopNxN uses, per the simplification
// recorded in DESIGN.md: coal's and airport's tile banks are too narrow
// to fit distinct per-cell characters without colliding with the
// neighboring bank.
func (e *Engine) plopBuilding(x, y, base, n int) Result {
	half := n / 2
	lo, hi := -half, n-half-1

	for dy := lo; dy <= hi; dy++ {
		for dx := lo; dx <= hi; dx++ {
			if !tilemap.InBounds(x+dx, y+dy) {
				return Failed
			}
		}
	}
	if !e.areaNxNClear(x, y, lo, hi) {
		return NeedBulldoze
	}

	for dy := lo; dy <= hi; dy++ {
		for dx := lo; dx <= hi; dx++ {
			var flags tilemap.Cell
			if dx == 0 && dy == 0 {
				flags = tilemap.FlagZoneCenter | tilemap.FlagConductive | tilemap.FlagPowered | tilemap.FlagBulldozable
			} else {
				flags = tilemap.FlagConductive | tilemap.FlagBurnable
			}
			e.Map.Set(x+dx, y+dy, tilemap.NewCell(base, flags))
		}
	}
	return OK
}

// plopNxN writes an NxN special building (stadium, seaport, or nuclear
// plant) with each cell carrying its own row-major character, tile =
// base + i where i is the cell's row-major offset within the footprint:
// the bank reserved for these three building types has enough headroom
// before the next bank starts that every cell can carry a distinct
// character. The center cell additionally carries
// ZONE_CENTER|CONDUCTIVE|POWERED|BULLDOZABLE; every other cell carries
// CONDUCTIVE|BURNABLE.
func (e *Engine) plopNxN(x, y, base, n int) Result {
	half := n / 2
	lo, hi := -half, n-half-1

	for dy := lo; dy <= hi; dy++ {
		for dx := lo; dx <= hi; dx++ {
			if !tilemap.InBounds(x+dx, y+dy) {
				return Failed
			}
		}
	}
	if !e.areaNxNClear(x, y, lo, hi) {
		return NeedBulldoze
	}

	for dy := lo; dy <= hi; dy++ {
		for dx := lo; dx <= hi; dx++ {
			var flags tilemap.Cell
			if dx == 0 && dy == 0 {
				flags = tilemap.FlagZoneCenter | tilemap.FlagConductive | tilemap.FlagPowered | tilemap.FlagBulldozable
			} else {
				flags = tilemap.FlagConductive | tilemap.FlagBurnable
			}
			i := (dy-lo)*n + (dx - lo)
			e.Map.Set(x+dx, y+dy, tilemap.NewCell(base+i, flags))
		}
	}
	return OK
}

func (e *Engine) areaNxNClear(x, y, lo, hi int) bool {
	for dy := lo; dy <= hi; dy++ {
		for dx := lo; dx <= hi; dx++ {
			if !e.clearable(x+dx, y+dy) {
				return false
			}
		}
	}
	return true
}
