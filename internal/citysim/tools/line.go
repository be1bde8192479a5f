package tools

import "github.com/tobyjaguar/microcity/internal/citysim/tilemap"

// layLine places one road/rail/wire skeleton tile, then restitches it
// and its four neighbors.
func (e *Engine) layLine(x, y, base int, flags tilemap.Cell) Result {
	if !e.clearable(x, y) {
		return NeedBulldoze
	}

	e.Map.Set(x, y, tilemap.NewCell(base, flags))
	e.fixCross(x, y, base, flags)
	return OK
}

// layRoad places a road tile, laying a bridge instead when the target
// cell is open water.
func (e *Engine) layRoad(x, y int) Result {
	if tilemap.IsWater(e.Map.Get(x, y).Character()) {
		e.Map.Set(x, y, tilemap.NewCell(tilemap.RoadBridgeFirst, tilemap.FlagBulldozable))
		e.fixCross(x, y, tilemap.RoadBridgeFirst, tilemap.FlagBulldozable)
		return OK
	}
	return e.layLine(x, y, tilemap.RoadFirst, tilemap.FlagBulldozable|tilemap.FlagBurnable)
}

// fixCross re-stitches (x,y) and its N/E/S/W neighbors.
func (e *Engine) fixCross(x, y, base int, flags tilemap.Cell) {
	e.fixSingle(x, y, base, flags)
	e.fixSingle(x, y-1, base, flags)
	e.fixSingle(x+1, y, base, flags)
	e.fixSingle(x, y+1, base, flags)
	e.fixSingle(x-1, y, base, flags)
}

// neighborBit returns the 4-bit N/E/S/W connectivity pattern for the
// same bank as base at (x, y): N=1, E=2, S=4, W=8.
func (e *Engine) neighborBit(x, y, lo, hi int) int {
	bit := 0
	if inBank(e.Map.Get(x, y-1).Character(), lo, hi) {
		bit |= 1
	}
	if inBank(e.Map.Get(x+1, y).Character(), lo, hi) {
		bit |= 2
	}
	if inBank(e.Map.Get(x, y+1).Character(), lo, hi) {
		bit |= 4
	}
	if inBank(e.Map.Get(x-1, y).Character(), lo, hi) {
		bit |= 8
	}
	return bit
}

func inBank(ch, lo, hi int) bool { return ch >= lo && ch <= hi }

// bankRange returns the writable character range for the skeleton base
// tile's own sub-bank, so a restitch only ever cycles a cell among its
// own connectivity variants (16 for road and bridge; 15 for rail and
// wire, where pattern 15 wraps to the first). Road and its bridge variant each get a
// narrow 16-character sub-bank carved out of the wider road bank, since
// the map scan independently promotes plain road tiles into the
// high-traffic sub-bank and restitching must never clobber that.
func bankRange(base int) (int, int) {
	switch {
	case base == tilemap.RoadFirst:
		return tilemap.RoadFirst, tilemap.RoadFirst + 15
	case base == tilemap.RoadBridgeFirst:
		return tilemap.RoadBridgeFirst, tilemap.RoadBridgeLast
	case base == tilemap.RailFirst:
		return tilemap.RailFirst, tilemap.RailLast
	case base == tilemap.WireFirst:
		return tilemap.WireFirst, tilemap.WireLast
	default:
		return base, base
	}
}

// connectRange returns the character range a neighbor probe treats as
// "connected" for the given base — wider than bankRange for road, so a
// plain or bridge segment still recognizes a high-traffic neighbor as
// the same road rather than a dead end.
func connectRange(base int) (int, int) {
	if base == tilemap.RoadFirst || base == tilemap.RoadBridgeFirst {
		return tilemap.RoadFirst, tilemap.RoadLast
	}
	return bankRange(base)
}

// fixSingle re-stitches one cell to the canonical variant for its
// current neighbor connectivity pattern. Cells outside
// the relevant bank, or not present at all, are left untouched.
func (e *Engine) fixSingle(x, y, base int, flags tilemap.Cell) {
	lo, hi := bankRange(base)
	c := e.Map.Get(x, y)
	if !inBank(c.Character(), lo, hi) {
		return
	}
	clo, chi := connectRange(base)
	bit := e.neighborBit(x, y, clo, chi)
	span := hi - lo + 1
	variant := lo + bit%span
	e.Map.Set(x, y, tilemap.NewCell(variant, flags))
}
