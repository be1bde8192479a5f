package tilemap

import "testing"

func TestCellFlags(t *testing.T) {
	c := NewCell(HOUSE, FlagBulldozable|FlagBurnable)
	if c.Character() != HOUSE {
		t.Fatalf("Character() = %d, want %d", c.Character(), HOUSE)
	}
	if !c.Flag(FlagBulldozable) || !c.Flag(FlagBurnable) {
		t.Fatal("expected bulldozable+burnable flags set")
	}
	if c.Flag(FlagPowered) {
		t.Fatal("did not expect powered flag set")
	}

	c = c.WithFlag(FlagPowered, true)
	if !c.Flag(FlagPowered) {
		t.Fatal("WithFlag(true) did not set flag")
	}
	c = c.WithFlag(FlagPowered, false)
	if c.Flag(FlagPowered) {
		t.Fatal("WithFlag(false) did not clear flag")
	}
}

func TestWithCharacterPreservesFlags(t *testing.T) {
	c := NewCell(HOUSE, FlagBulldozable|FlagZoneCenter)
	c2 := c.WithCharacter(FREEZ)
	if c2.Character() != FREEZ {
		t.Fatalf("Character() = %d, want %d", c2.Character(), FREEZ)
	}
	if !c2.Flag(FlagBulldozable) || !c2.Flag(FlagZoneCenter) {
		t.Fatal("WithCharacter dropped flags")
	}
}

func TestTileMapOutOfBounds(t *testing.T) {
	m := NewTileMap()
	if got := m.Get(-1, 0); got != 0 {
		t.Fatalf("OOB read = %v, want 0", got)
	}
	if got := m.Get(Width, 0); got != 0 {
		t.Fatalf("OOB read = %v, want 0", got)
	}

	// OOB writes are silent no-ops: writing then reading in-bounds
	// neighbors must be unaffected.
	m.Set(-1, 0, NewCell(HOUSE, 0))
	m.Set(Width, 0, NewCell(HOUSE, 0))
	if got := m.Get(0, 0); got != 0 {
		t.Fatalf("in-bounds cell corrupted by OOB write: %v", got)
	}
}

func TestTileMapGetSet(t *testing.T) {
	m := NewTileMap()
	m.Set(10, 20, NewCell(HOUSE, FlagZoneCenter))
	got := m.Get(10, 20)
	if got.Character() != HOUSE || !got.Flag(FlagZoneCenter) {
		t.Fatalf("Get(10,20) = %v, want HOUSE+ZoneCenter", got)
	}
	if m.Get(11, 20) != 0 {
		t.Fatal("adjacent cell should remain dirt")
	}
}

func TestRegion(t *testing.T) {
	m := NewTileMap()
	m.Set(5, 5, NewCell(HOUSE, 0))
	region := m.Region(4, 4, 3, 3)
	if len(region) != 9 {
		t.Fatalf("Region returned %d cells, want 9", len(region))
	}
	// (5,5) is offset dx=1,dy=1 -> index 1*3+1=4
	if region[4].Character() != HOUSE {
		t.Fatalf("Region center = %v, want HOUSE", region[4])
	}
}

func TestOverlayWorldMapping(t *testing.T) {
	o := NewOverlayMap[uint8](2)
	w, h := o.Dims()
	if w != ceilDiv(Width, 2) || h != ceilDiv(Height, 2) {
		t.Fatalf("Dims() = (%d,%d), want (%d,%d)", w, h, ceilDiv(Width, 2), ceilDiv(Height, 2))
	}
	o.WorldSet(15, 21, 200)
	if got := o.WorldGet(14, 20); got != 200 {
		t.Fatalf("WorldGet(14,20) = %d, want 200 (same block as 15,21)", got)
	}
	if got := o.WorldGet(16, 20); got == 200 {
		t.Fatal("WorldGet(16,20) should fall in a different block")
	}
}

func TestOverlayOutOfBounds(t *testing.T) {
	o := NewOverlayMap[int16](8)
	if got := o.Get(-1, -1); got != 0 {
		t.Fatalf("OOB overlay read = %d, want 0", got)
	}
	o.Set(-1, -1, 99) // silent no-op
	if got := o.Get(0, 0); got != 0 {
		t.Fatal("OOB overlay write corrupted in-bounds cell")
	}
}

func TestSmoothIsContraction(t *testing.T) {
	src := NewOverlayMap[uint8](2)
	w, h := src.Dims()
	src.Set(w/2, h/2, 255)
	dst := NewOverlayMap[uint8](2)
	Smooth(dst, src)

	minIn, maxIn := uint8(255), uint8(0)
	src.Each(func(_, _ int, v uint8) {
		if v < minIn {
			minIn = v
		}
		if v > maxIn {
			maxIn = v
		}
	})
	minOut, maxOut := uint8(255), uint8(0)
	dst.Each(func(_, _ int, v uint8) {
		if v < minOut {
			minOut = v
		}
		if v > maxOut {
			maxOut = v
		}
	})
	if int(maxOut)-int(minOut) > int(maxIn)-int(minIn) {
		t.Fatalf("smoothing expanded range: in=[%d,%d] out=[%d,%d]", minIn, maxIn, minOut, maxOut)
	}
}

func TestTilePredicates(t *testing.T) {
	cases := []struct {
		name string
		ch   int
		want bool
		fn   func(int) bool
	}{
		{"water", 10, true, IsWater},
		{"not water", 100, false, IsWater},
		{"road", 100, true, IsRoad},
		{"wire", 210, true, IsWire},
		{"rail", 230, true, IsRail},
		{"residential", 300, true, IsResidential},
		{"commercial", 500, true, IsCommercial},
		{"industrial", 650, true, IsIndustrial},
		{"coal plant", CoalPlantBase, true, IsCoalPlant},
		{"nuclear", NuclearBase, true, IsNuclear},
		{"power plant via nuclear", NuclearBase, true, IsPowerPlant},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fn(tc.ch); got != tc.want {
				t.Errorf("%s(%d) = %v, want %v", tc.name, tc.ch, got, tc.want)
			}
		})
	}
}
