package sim

import (
	"github.com/tobyjaguar/microcity/internal/citysim/budget"
	"github.com/tobyjaguar/microcity/internal/citysim/disaster"
	"github.com/tobyjaguar/microcity/internal/citysim/scheduler"
	"github.com/tobyjaguar/microcity/internal/citysim/tools"
)

// SetSpeed changes how often Step actually advances a phase.
func (s *Simulation) SetSpeed(sp scheduler.Speed) {
	s.scheduler.Speed = sp
}

// GetSpeed returns the current throttle setting.
func (s *Simulation) GetSpeed() scheduler.Speed {
	return s.scheduler.Speed
}

// SetCityTime restores the tick counter after loading a snapshot.
func (s *Simulation) SetCityTime(t int) {
	s.scheduler.CityTime = t
}

// SetCityTax sets the tax rate percentage.
func (s *Simulation) SetCityTax(t int) {
	s.Budget.CityTax = t
}

// SetGameLevel changes the road/rail fund multiplier and resets the
// treasury to that level's starting funds (easy=0, medium=1, hard=2).
func (s *Simulation) SetGameLevel(level int) {
	s.Budget.GameLevel = level
	s.Budget.TotalFunds = budget.StartingFundsForLevel(level)
}

// SetAutoBulldoze records the auto-bulldoze setting on the simulation
// and the tool engine. Placement results do not depend on it: the tool
// engine overwrites any bulldozable cell whether it is on or off, and
// returns NEED_BULLDOZE only for cells that are not bulldozable.
func (s *Simulation) SetAutoBulldoze(on bool) {
	s.AutoBulldoze = on
	s.toolEng.AutoBulldoze = on
}

// DoTool applies one tool placement at (x, y).
func (s *Simulation) DoTool(t tools.Tool, x, y int) tools.Result {
	return s.toolEng.Apply(t, x, y)
}

// SetFire triggers the random-cell fire disaster.
func (s *Simulation) SetFire() { s.disasters.SetFire() }

// MakeEarthquake triggers the earthquake disaster.
func (s *Simulation) MakeEarthquake() { s.disasters.MakeEarthquake() }

// MakeExplosion triggers an explosion at (x, y).
func (s *Simulation) MakeExplosion(x, y int) { s.disasters.MakeExplosion(x, y) }

// MakeFlood triggers the flood disaster. The simulation
// owns the flood's lifetime state so DecayFlood can expire it later.
func (s *Simulation) MakeFlood() {
	s.disasters.MakeFlood(s.floodState)
}

// MakeTornado triggers the tornado disaster.
func (s *Simulation) MakeTornado() { s.disasters.MakeTornado() }

// MakeMonster triggers the monster disaster, targeting the current
// pollution hotspot.
func (s *Simulation) MakeMonster() {
	hotX, hotY := s.pollutionHotspot()
	s.disasters.MakeMonster(hotX, hotY)
}
