package zones

import "github.com/tobyjaguar/microcity/internal/citysim/tilemap"

// plop writes a 3x3 zone footprint centered at (x, y): offset =
// (dy+1)*3 + (dx+1) above base. The center cell gets ZONE_CENTER |
// BULLDOZABLE; the other eight get BULLDOZABLE.
func plop(m *tilemap.TileMap, x, y, base int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			offset := (dy+1)*3 + (dx + 1)
			ch := base + offset
			var flags tilemap.Cell
			if dx == 0 && dy == 0 {
				flags = tilemap.FlagZoneCenter | tilemap.FlagBulldozable
			} else {
				flags = tilemap.FlagBulldozable
			}
			m.Set(x+dx, y+dy, tilemap.NewCell(ch, flags))
		}
	}
}

// repairZone replaces rubble cells inside a size x size footprint
// centered at (x, y) with the default skeleton tile plus CONDUCTIVE |
// BURNABLE.
func repairZone(m *tilemap.TileMap, x, y, size, skeleton int) {
	half := size / 2
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			cx, cy := x+dx, y+dy
			c := m.Get(cx, cy)
			if !tilemap.IsRubble(c.Character()) {
				continue
			}
			m.Set(cx, cy, tilemap.NewCell(skeleton, tilemap.FlagConductive|tilemap.FlagBurnable))
		}
	}
}
