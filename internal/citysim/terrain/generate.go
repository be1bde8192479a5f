// Package terrain generates the initial tile grid: rivers, lakes, and
// forests, smoothed into edge-aware tile variants. Grounded on the
// teacher's multi-octave opensimplex elevation/rainfall generation
// (internal/world/generation.go), adapted from a hex grid of terrain
// enums to a rectangular grid of tile characters.
package terrain

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/tobyjaguar/microcity/internal/citysim/tilemap"
)

// Config controls terrain generation.
type Config struct {
	Seed        int64
	WaterLevel  float64 // elevation below this becomes river/lake
	ForestLevel float64 // rainfall above this becomes forest
}

// DefaultConfig returns reasonable generation parameters.
func DefaultConfig() Config {
	return Config{
		Seed:        1,
		WaterLevel:  0.35,
		ForestLevel: 0.6,
	}
}

// Generate fills m with dirt, water, and forest following layered
// opensimplex noise, then smooths water edges into river-edge variants.
func Generate(m *tilemap.TileMap, cfg Config) {
	elevNoise := opensimplex.NewNormalized(cfg.Seed)
	rainNoise := opensimplex.NewNormalized(cfg.Seed + 1)

	isWater := make([][]bool, tilemap.Width)
	isForest := make([][]bool, tilemap.Width)
	for x := 0; x < tilemap.Width; x++ {
		isWater[x] = make([]bool, tilemap.Height)
		isForest[x] = make([]bool, tilemap.Height)
		for y := 0; y < tilemap.Height; y++ {
			elev := octaveNoise(elevNoise, float64(x), float64(y), 4, 0.04, 0.5)
			rain := octaveNoise(rainNoise, float64(x), float64(y), 3, 0.05, 0.5)

			// Edge falloff biases water toward a central river/lake system
			// rather than flooding the map border.
			cx, cy := float64(tilemap.Width)/2, float64(tilemap.Height)/2
			dist := math.Hypot(float64(x)-cx, float64(y)-cy) / math.Hypot(cx, cy)
			elev += dist * 0.25

			if elev < cfg.WaterLevel {
				isWater[x][y] = true
			} else if rain > cfg.ForestLevel {
				isForest[x][y] = true
			}
		}
	}

	for x := 0; x < tilemap.Width; x++ {
		for y := 0; y < tilemap.Height; y++ {
			switch {
			case isWater[x][y]:
				m.Set(x, y, riverVariant(isWater, x, y))
			case isForest[x][y]:
				m.Set(x, y, tilemap.NewCell(tilemap.TreeFirst+(x+y)%(tilemap.TreeLast-tilemap.TreeFirst+1), tilemap.FlagBulldozable|tilemap.FlagBurnable))
			default:
				m.Set(x, y, tilemap.NewCell(tilemap.Dirt, tilemap.FlagBulldozable))
			}
		}
	}
}

// riverVariant picks a tile character within the river bank based on
// the 4-neighbor water pattern, so shorelines render with an edge
// variant rather than a single flat water tile, using the same
// neighbor-bitmask idea the tool engine uses for road/rail/wire
// restitching (tools.fixSingle).
func riverVariant(isWater [][]bool, x, y int) tilemap.Cell {
	n := neighborIsWater(isWater, x, y-1)
	e := neighborIsWater(isWater, x+1, y)
	s := neighborIsWater(isWater, x, y+1)
	w := neighborIsWater(isWater, x-1, y)

	pattern := 0
	if n {
		pattern |= 1
	}
	if e {
		pattern |= 2
	}
	if s {
		pattern |= 4
	}
	if w {
		pattern |= 8
	}

	ch := tilemap.RiverFirst + pattern%(tilemap.RiverLast-tilemap.RiverFirst+1)
	return tilemap.NewCell(ch, 0)
}

func neighborIsWater(isWater [][]bool, x, y int) bool {
	if x < 0 || x >= tilemap.Width || y < 0 || y >= tilemap.Height {
		return true // off-map edges read as water, keeping shorelines closed
	}
	return isWater[x][y]
}

func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}
