// Package scheduler drives the 16-phase simulation rotor.
// It owns no simulation state itself — every phase's work is a
// callback the composing Simulation wires in, the same shape as the
// teacher's Engine.OnTick/OnHour/... callback fields.
package scheduler

import (
	"log/slog"

	"github.com/tobyjaguar/microcity/internal/citysim/tilemap"
)

// Speed throttles how often Step actually advances a phase.
type Speed int

const (
	Paused Speed = iota
	Slow
	Medium
	Fast
)

// Engine rotates phase_cycle 0..15 once per Step call, running whichever
// callback the current phase (and, for the gated phases, cadence)
// calls for.
type Engine struct {
	Speed      Speed
	CityTime   int
	PhaseCycle int

	frameCounter int

	OnPhase0                        func(cityTime int)
	MapScan                         func(x1, x2 int)
	OnCensus10                      func()
	OnCensus120                     func()
	OnTax                           func()
	OnDecayRateOfGrowth             func()
	OnDecayTraffic                  func()
	OnSendMessages                  func()
	OnPowerScan                     func()
	OnPollutionTerrainLandValueScan func()
	OnCrimeScan                     func()
	OnPopulationDensityScan         func()
	OnStationReachAndComRate        func()
	OnDisasterRoll                  func()
}

// New returns an idle engine at phase 0, paused.
func New() *Engine {
	return &Engine{Speed: Paused}
}

func (e *Engine) shouldRun() bool {
	switch e.Speed {
	case Paused:
		return false
	case Slow:
		e.frameCounter++
		return e.frameCounter%5 == 0
	case Medium:
		e.frameCounter++
		return e.frameCounter%3 == 0
	default:
		return true
	}
}

// Step advances the rotor by one phase if the current speed allows it
// this frame. Phases 1..8 each scan one vertical eighth of the map;
// phases 9..15 run periodic census/tax/overlay/disaster work at their
// own cadences.
func (e *Engine) Step() {
	if !e.shouldRun() {
		return
	}

	switch phase := e.PhaseCycle; {
	case phase == 0:
		e.CityTime++
		if e.OnPhase0 != nil {
			e.OnPhase0(e.CityTime)
		}
	case phase >= 1 && phase <= 8:
		if e.MapScan != nil {
			x1 := (phase - 1) * tilemap.Width / 8
			x2 := phase * tilemap.Width / 8
			e.MapScan(x1, x2)
		}
	case phase == 9:
		if e.CityTime%4 == 0 && e.OnCensus10 != nil {
			e.OnCensus10()
		}
		if e.CityTime%48 == 0 {
			if e.OnCensus120 != nil {
				e.OnCensus120()
			}
			if e.OnTax != nil {
				e.OnTax()
			}
		}
	case phase == 10:
		if e.CityTime%5 == 0 && e.OnDecayRateOfGrowth != nil {
			e.OnDecayRateOfGrowth()
		}
		if e.OnDecayTraffic != nil {
			e.OnDecayTraffic()
		}
		if e.OnSendMessages != nil {
			e.OnSendMessages()
		}
	case phase == 11:
		if e.CityTime%9 == 0 && e.OnPowerScan != nil {
			e.OnPowerScan()
		}
	case phase == 12:
		if e.CityTime%17 == 0 && e.OnPollutionTerrainLandValueScan != nil {
			e.OnPollutionTerrainLandValueScan()
		}
	case phase == 13:
		if e.CityTime%19 == 0 && e.OnCrimeScan != nil {
			e.OnCrimeScan()
		}
	case phase == 14:
		if e.CityTime%19 == 0 && e.OnPopulationDensityScan != nil {
			e.OnPopulationDensityScan()
		}
	case phase == 15:
		if e.CityTime%21 == 0 && e.OnStationReachAndComRate != nil {
			e.OnStationReachAndComRate()
		}
		if e.OnDisasterRoll != nil {
			e.OnDisasterRoll()
		}
	default:
		slog.Warn("scheduler: phase out of range", "phase", phase)
	}

	e.PhaseCycle = (e.PhaseCycle + 1) % 16
}

// Date returns the month (0..11) and year for the given city time and
// starting year.
func Date(cityTime, startingYear int) (month, year int) {
	month = (cityTime / 4) % 12
	year = startingYear + cityTime/48
	return month, year
}
