// Package sim composes every citysim subsystem into one Simulation, a
// single owned-state type driven by an external tick loop.
package sim

import (
	"log/slog"

	"github.com/tobyjaguar/microcity/internal/citysim/budget"
	"github.com/tobyjaguar/microcity/internal/citysim/census"
	"github.com/tobyjaguar/microcity/internal/citysim/disaster"
	"github.com/tobyjaguar/microcity/internal/citysim/overlay"
	"github.com/tobyjaguar/microcity/internal/citysim/power"
	"github.com/tobyjaguar/microcity/internal/citysim/rng"
	"github.com/tobyjaguar/microcity/internal/citysim/scheduler"
	"github.com/tobyjaguar/microcity/internal/citysim/sprite"
	"github.com/tobyjaguar/microcity/internal/citysim/terrain"
	"github.com/tobyjaguar/microcity/internal/citysim/tilemap"
	"github.com/tobyjaguar/microcity/internal/citysim/tools"
	"github.com/tobyjaguar/microcity/internal/citysim/zones"
)

// Defaults.
const (
	DefaultCityTax      = 7
	DefaultStartingYear = 1900
	DefaultGameLevel    = 1 // medium
)

// Simulation owns every piece of city state and the scheduler that
// advances it. External code drives Step in a fixed-timestep loop and
// calls the control surface between steps; nothing here spawns
// goroutines or owns a clock of its own.
type Simulation struct {
	Map     *tilemap.TileMap
	Overlay *overlay.Overlays
	Power   *power.Grid
	Rng     *rng.Rng
	Census  *census.Census
	Counts  *zones.Counts
	Valves  *zones.Valves
	Sprites *sprite.Registry
	Budget  *budget.Budget

	scanner    *zones.Scanner
	scheduler  *scheduler.Engine
	toolEng    *tools.Engine
	disasters  *disaster.Effects
	floodState *disaster.FloodState

	MapSerial        uint64
	StartingYear     int
	DisastersEnabled bool
	AutoBulldoze     bool

	lastEvaluation budget.Evaluation
	lastPopulation int

	OnMessage func(Message)
}

// NewGame allocates a fresh city seeded deterministically from seed:
// terrain generation, an empty power grid, and default budget/tax/game
// level.
func NewGame(seed uint64) *Simulation {
	s := &Simulation{
		Map:              tilemap.NewTileMap(),
		Overlay:          overlay.New(),
		Power:            power.NewGrid(),
		Rng:              rng.New(seed),
		Census:           &census.Census{},
		Counts:           &zones.Counts{},
		Valves:           &zones.Valves{},
		Sprites:          sprite.NewRegistry(),
		Budget:           budget.New(budget.StartingFundsForLevel(DefaultGameLevel), DefaultGameLevel, DefaultCityTax),
		StartingYear:     DefaultStartingYear,
		DisastersEnabled: true,
		floodState:       &disaster.FloodState{},
	}

	terrain.Generate(s.Map, terrain.Config{Seed: int64(seed), WaterLevel: 0.35, ForestLevel: 0.6})

	s.disasters = &disaster.Effects{
		Map:     s.Map,
		Rng:     s.Rng,
		Sprites: s.Sprites,
		OnMessage: func(text string, x, y int, important bool) {
			s.emit(text, x, y, x >= 0 && y >= 0, important)
		},
	}

	s.toolEng = &tools.Engine{
		Map:          s.Map,
		Funds:        &s.Budget.TotalFunds,
		MapSerial:    &s.MapSerial,
		AutoBulldoze: s.AutoBulldoze,
		Rand:         s.Rng.Range,
	}

	s.scanner = &zones.Scanner{
		Map:     s.Map,
		Overlay: s.Overlay,
		Power:   s.Power,
		Rng:     s.Rng,
		Valves:  s.Valves,
		Census:  s.Census,
		Counts:  s.Counts,
		Sprites: s.Sprites,
		OnMeltdown: func(x, y int) {
			s.disasters.MakeMeltdown(x, y)
		},
	}

	s.scheduler = scheduler.New()
	s.wireScheduler()

	slog.Info("new city started", "seed", seed, "starting_funds", s.Budget.TotalFunds)
	return s
}

func (s *Simulation) wireScheduler() {
	e := s.scheduler

	e.OnPhase0 = func(cityTime int) {
		s.Census.ResetTick()
		s.Counts.Reset()
		s.Overlay.ResetPopulationAccum()
		s.Overlay.ResetStationMaps()
		s.Budget.AccumulateTax()
		if cityTime%2 == 0 {
			s.Valves.Update(s.Census.ResPop.At(0), s.Census.ComPop.At(0), s.Census.IndPop.At(0))
		}
	}

	e.MapScan = func(x1, x2 int) {
		s.scanner.DisastersEnabled = s.DisastersEnabled
		s.scanner.RoadEffect = s.Budget.RoadEffect
		s.scanner.CityTime = s.scheduler.CityTime
		s.scanner.MapScan(x1, x2)
	}

	e.OnCensus10 = func() {
		s.Census.Take10(int32(s.Budget.TotalFunds))
	}
	e.OnCensus120 = func() {
		s.Census.Take120(int32(s.population()))
	}
	e.OnTax = func() {
		s.collectTaxAndEvaluate()
	}

	e.OnDecayRateOfGrowth = s.Overlay.DecayRateOfGrowth
	e.OnDecayTraffic = func() {
		s.Overlay.DecayTraffic()
		s.disasters.DecayFlood(s.floodState)
	}
	e.OnSendMessages = s.sendMessages

	e.OnPowerScan = func() {
		power.Scan(s.Map, s.Power)
	}

	e.OnPollutionTerrainLandValueScan = func() {
		s.Overlay.ScanPollution(s.Map)
		s.Overlay.ScanLandValue()
	}
	e.OnCrimeScan = s.Overlay.ScanCrime
	e.OnPopulationDensityScan = s.Overlay.ScanPopulationDensity

	e.OnStationReachAndComRate = func() {
		s.Overlay.FireAnalysis()
		s.Overlay.PoliceAnalysis()
		s.Overlay.ComputeComRateMap()
	}
	e.OnDisasterRoll = func() {
		s.Sprites.Tick()
		s.disasters.AdvanceRampaging()
	}
}

func (s *Simulation) population() int {
	return int(s.Census.ResPopAccum)/8 + int(s.Census.ComPopAccum) + int(s.Census.IndPopAccum)
}

func (s *Simulation) collectTaxAndEvaluate() {
	result := s.Budget.CollectTax(
		s.Census.ResPop.At(0), s.Census.ComPop.At(0), s.Census.IndPop.At(0),
		s.Overlay.AverageLandValue(),
		s.Counts.RoadTotal, s.Counts.RailTotal,
		s.Counts.PoliceStations, s.Counts.FireStations,
	)

	totalZones := s.Counts.ResZones + s.Counts.ComZones + s.Counts.IndZones
	unpoweredRatio := 0.0
	if totalZones > 0 {
		unpoweredRatio = 1 - float64(s.poweredZoneCount())/float64(totalZones)
	}

	eval := budget.Evaluate(budget.EvaluationInputs{
		Population:     result.Population,
		PreviousPop:    s.lastPopulation,
		CrimeAverage:   s.Overlay.AverageCrime(),
		PollutionAvg:   s.Overlay.AveragePollution(),
		Unemployment:   unemploymentRatio(s.Valves),
		CityTax:        s.Budget.CityTax,
		UnpoweredRatio: unpoweredRatio,
		TrafficAverage: s.Overlay.TrafficDensity.Average(),
	})

	s.lastEvaluation = eval
	s.lastPopulation = result.Population
}

// poweredZoneCount re-walks the map counting zone centers with POWERED
// set; the map scan already visits every cell, but counting powered
// zones specifically isn't one of Counts' fields, so city_evaluation
// samples it directly rather than growing Counts for a once-per-48-
// ticks reading.
func (s *Simulation) poweredZoneCount() int {
	n := 0
	for x := 0; x < tilemap.Width; x++ {
		for y := 0; y < tilemap.Height; y++ {
			c := s.Map.Get(x, y)
			if c.Flag(tilemap.FlagZoneCenter) && c.Flag(tilemap.FlagPowered) {
				n++
			}
		}
	}
	return n
}

func unemploymentRatio(v *zones.Valves) float64 {
	if v.Ind >= 0 {
		return 0
	}
	return float64(-v.Ind) / float64(-zones.IndValveMin)
}

func (s *Simulation) sendMessages() {
	if s.Budget.RoadEffect < 15 {
		s.emit("Roads need funding!", 0, 0, false, true)
	}
	if s.Budget.PoliceEffect < 15 {
		s.emit("Police need funding!", 0, 0, false, true)
	}
	if s.Budget.FireEffect < 15 {
		s.emit("Fire departments need funding!", 0, 0, false, true)
	}
}

func (s *Simulation) emit(text string, x, y int, hasLocation, important bool) {
	if s.OnMessage != nil {
		s.OnMessage(Message{Text: text, X: x, Y: y, HasLocation: hasLocation, Important: important})
	}
	if important {
		slog.Warn(text, "x", x, "y", y)
	}
}

// Step advances the scheduler by one phase, respecting the current
// speed's cadence.
func (s *Simulation) Step() {
	s.scheduler.Step()
}
