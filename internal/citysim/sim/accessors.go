package sim

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/tobyjaguar/microcity/internal/citysim/budget"
	"github.com/tobyjaguar/microcity/internal/citysim/scheduler"
	"github.com/tobyjaguar/microcity/internal/citysim/sprite"
	"github.com/tobyjaguar/microcity/internal/citysim/tilemap"
)

// GetTile returns the raw cell at (x, y).
func (s *Simulation) GetTile(x, y int) tilemap.Cell {
	return s.Map.Get(x, y)
}

// GetRegion returns a copy of the w x h block of cells at (x, y).
func (s *Simulation) GetRegion(x, y, w, h int) []tilemap.Cell {
	return s.Map.Region(x, y, w, h)
}

// GetPopulation returns the most recent sampled total population.
func (s *Simulation) GetPopulation() int {
	return s.lastEvaluation.Population
}

// GetDemands returns the three zone-type demand signals, each in
// [-1, 1].
func (s *Simulation) GetDemands() (res, com, ind float64) {
	return float64(s.Valves.Res) / 2000, float64(s.Valves.Com) / 1500, float64(s.Valves.Ind) / 1500
}

// CityTime returns the current simulation tick count.
func (s *Simulation) CityTime() int { return s.scheduler.CityTime }

// CityClass returns the most recent population classification.
func (s *Simulation) CityClass() budget.CityClass { return s.lastEvaluation.Class }

// CityScore returns the most recent evaluation score, [0, 1000].
func (s *Simulation) CityScore() int { return s.lastEvaluation.Score }

// GetDateString formats the current in-game month/year.
func (s *Simulation) GetDateString() string {
	month, year := scheduler.Date(s.scheduler.CityTime, s.StartingYear)
	return fmt.Sprintf("%s %d", monthName(month), year)
}

func monthName(m int) string {
	names := [12]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	if m < 0 || m > 11 {
		return "Unknown"
	}
	return names[m]
}

// Stats is the read-only snapshot get_stats returns.
type Stats struct {
	CityTime         int
	DateString       string
	Population       int
	CityClass        string
	CityScore        int
	ResPop           int32
	ComPop           int32
	IndPop           int32
	AveragePollution float64
	AverageCrime     float64
	AverageLandValue float64
}

// GetStats returns the current scalar summary.
func (s *Simulation) GetStats() Stats {
	return Stats{
		CityTime:         s.scheduler.CityTime,
		DateString:       s.GetDateString(),
		Population:       s.GetPopulation(),
		CityClass:        s.lastEvaluation.Class.String(),
		CityScore:        s.lastEvaluation.Score,
		ResPop:           s.Census.ResPop.At(0),
		ComPop:           s.Census.ComPop.At(0),
		IndPop:           s.Census.IndPop.At(0),
		AveragePollution: s.Overlay.AveragePollution(),
		AverageCrime:     s.Overlay.AverageCrime(),
		AverageLandValue: s.Overlay.AverageLandValue(),
	}
}

// BudgetView is the read-only snapshot get_budget returns.
// TotalFundsFormatted carries a humanized (thousands-separated) string
// for log lines and API responses via go-humanize.
type BudgetView struct {
	TotalFunds          int
	TotalFundsFormatted string
	CityTax             int
	GameLevel           int
	RoadEffect          int
	PoliceEffect        int
	FireEffect          int
}

// GetBudget returns the current budget snapshot.
func (s *Simulation) GetBudget() BudgetView {
	return BudgetView{
		TotalFunds:          s.Budget.TotalFunds,
		TotalFundsFormatted: humanize.Comma(int64(s.Budget.TotalFunds)),
		CityTax:             s.Budget.CityTax,
		GameLevel:           s.Budget.GameLevel,
		RoadEffect:          s.Budget.RoadEffect,
		PoliceEffect:        s.Budget.PoliceEffect,
		FireEffect:          s.Budget.FireEffect,
	}
}

// SpriteList returns every live sprite, read-only, for rendering.
func (s *Simulation) SpriteList() []*sprite.Sprite {
	return s.Sprites.All()
}

// DumpTiles serializes the whole map to a little-endian byte slice, for
// snapshot persistence.
func (s *Simulation) DumpTiles() []byte {
	tiles := make([]byte, 0, tilemap.Width*tilemap.Height*2)
	for x := 0; x < tilemap.Width; x++ {
		for y := 0; y < tilemap.Height; y++ {
			c := s.Map.Get(x, y)
			tiles = append(tiles, byte(c), byte(c>>8))
		}
	}
	return tiles
}

// LoadTiles restores the map from bytes written by DumpTiles. Any
// length mismatch (smaller than a full map) is silently tolerated the
// way out-of-bounds map access is; remaining cells keep their zero
// value.
func (s *Simulation) LoadTiles(tiles []byte) {
	i := 0
	for x := 0; x < tilemap.Width; x++ {
		for y := 0; y < tilemap.Height; y++ {
			if i+1 >= len(tiles) {
				return
			}
			c := tilemap.Cell(tiles[i]) | tilemap.Cell(tiles[i+1])<<8
			s.Map.Set(x, y, c)
			i += 2
		}
	}
}

// pollutionHotspot scans the pollution overlay for its highest-valued
// block and returns its world coordinates, for make_monster's target.
func (s *Simulation) pollutionHotspot() (x, y int) {
	w, h := s.Overlay.PollutionDensity.Dims()
	block := s.Overlay.PollutionDensity.Block()
	best := -1
	for oy := 0; oy < h; oy++ {
		for ox := 0; ox < w; ox++ {
			v := int(s.Overlay.PollutionDensity.Get(ox, oy))
			if v > best {
				best = v
				x, y = ox*block, oy*block
			}
		}
	}
	return x, y
}
