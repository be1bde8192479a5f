package tools

import "github.com/tobyjaguar/microcity/internal/citysim/tilemap"

// bulldoze clears one cell: fails on water, dirt, or a cell without
// BULLDOZABLE set. A bridge reverts to open water rather than dirt,
// since it was laid over water in the first place.
func (e *Engine) bulldoze(x, y int) Result {
	c := e.Map.Get(x, y)
	ch := c.Character()

	if tilemap.IsRoadBridge(ch) {
		e.Map.Set(x, y, tilemap.NewCell(tilemap.RiverFirst, 0))
		return OK
	}
	if tilemap.IsWater(ch) {
		return Failed
	}
	if ch == tilemap.Dirt {
		return Failed
	}
	if !c.Flag(tilemap.FlagBulldozable) {
		return NeedBulldoze
	}

	e.Map.Set(x, y, tilemap.NewCell(tilemap.Dirt, 0))
	return OK
}

// clearable reports whether a cell may be overwritten by a new
// placement: it must be bare dirt or carry BULLDOZABLE.
// The actual overwrite (the "auto_bulldoze, first clear" step) is a
// no-op in practice here since every placement immediately writes its
// own tile over whatever was there.
func (e *Engine) clearable(x, y int) bool {
	c := e.Map.Get(x, y)
	return c.Character() == tilemap.Dirt || c.Flag(tilemap.FlagBulldozable)
}
