// Package budget implements the tax collection, fund effect, and city
// evaluation formulas.
package budget

import "log/slog"

// Game level starting funds.
const (
	EasyStartingFunds   = 20000
	MediumStartingFunds = 10000
	HardStartingFunds   = 5000
)

// Fund effect caps.
const (
	MaxRoadEffect   = 32
	MaxPoliceEffect = 1000
	MaxFireEffect   = 1000
)

// Budget tracks the city's treasury, tax rate, game level, and the
// spend/fund ratios that feed back into the zone and map scans.
type Budget struct {
	TotalFunds  int
	CityTax     int // percent, [0,20]
	GameLevel   int // road/rail fund multiplier

	RoadEffect   int
	PoliceEffect int
	FireEffect   int

	CityTaxAverageAccum int
}

// New returns a Budget seeded with starting funds for the given game
// level multiplier and default tax rate.
func New(startingFunds, gameLevel, defaultTax int) *Budget {
	return &Budget{
		TotalFunds: startingFunds,
		CityTax:    defaultTax,
		GameLevel:  gameLevel,
	}
}

// StartingFundsForLevel maps a game level (0=easy, 1=medium, 2=hard) to
// its starting treasury. Levels outside [0,2] fall back to
// medium.
func StartingFundsForLevel(level int) int {
	switch level {
	case 0:
		return EasyStartingFunds
	case 2:
		return HardStartingFunds
	default:
		return MediumStartingFunds
	}
}

// AccumulateTax folds one tick's tax rate into the running average that
// CollectTax divides down every 48 ticks.
func (b *Budget) AccumulateTax() {
	b.CityTaxAverageAccum += b.CityTax
}

// CollectTaxResult reports what one tax collection did, for logging and
// the stats history surface.
type CollectTaxResult struct {
	Population  int
	TaxFund     int
	RoadFund    int
	PoliceFund  int
	FireFund    int
	RoadSpend   int
	PoliceSpend int
	FireSpend   int
	CashFlow    int
}

// CollectTax runs the tax-collection formula: population-
// and land-value-driven tax income, weighed against road/police/fire
// funding demand, spending in full when affordable and proportionally
// otherwise.
func (b *Budget) CollectTax(resPop, comPop, indPop int32, landValueAverage float64, roadTotal, railTotal, policeStations, fireStations int) CollectTaxResult {
	population := int(resPop)/8 + int(comPop) + int(indPop)
	cityTaxAverage := b.CityTaxAverageAccum / 48
	b.CityTaxAverageAccum = 0

	taxFund := int(float64(population) * landValueAverage / 120 * float64(cityTaxAverage) / 100)
	roadFund := (roadTotal + railTotal*2) * b.GameLevel
	policeFund := policeStations * 100
	fireFund := fireStations * 100

	demand := roadFund + policeFund + fireFund
	var roadSpend, policeSpend, fireSpend int
	if b.TotalFunds+taxFund >= demand {
		roadSpend, policeSpend, fireSpend = roadFund, policeFund, fireFund
	} else if demand > 0 {
		available := b.TotalFunds + taxFund
		ratio := float64(available) / float64(demand)
		roadSpend = int(float64(roadFund) * ratio)
		policeSpend = int(float64(policeFund) * ratio)
		fireSpend = int(float64(fireFund) * ratio)
	}

	cashFlow := taxFund - roadSpend - policeSpend - fireSpend
	b.TotalFunds += cashFlow

	b.updateFundEffects(roadSpend, roadFund, policeSpend, policeFund, fireSpend, fireFund)

	slog.Info("tax collected", "population", population, "tax_fund", taxFund, "cash_flow", cashFlow, "total_funds", b.TotalFunds)

	return CollectTaxResult{
		Population: population, TaxFund: taxFund, RoadFund: roadFund,
		PoliceFund: policeFund, FireFund: fireFund,
		RoadSpend: roadSpend, PoliceSpend: policeSpend, FireSpend: fireSpend,
		CashFlow: cashFlow,
	}
}

// updateFundEffects recomputes the spend/fund ratios. When a fund total
// is zero the ratio falls back to the max effect rather than dividing
// by zero or defaulting to 0.
func (b *Budget) updateFundEffects(roadSpend, roadFund, policeSpend, policeFund, fireSpend, fireFund int) {
	b.RoadEffect = effectRatio(roadSpend, roadFund, MaxRoadEffect)
	b.PoliceEffect = effectRatio(policeSpend, policeFund, MaxPoliceEffect)
	b.FireEffect = effectRatio(fireSpend, fireFund, MaxFireEffect)
}

func effectRatio(spend, fund, max int) int {
	if fund == 0 {
		return max
	}
	v := int(float64(spend) / float64(fund) * float64(max))
	if v > max {
		return max
	}
	if v < 0 {
		return 0
	}
	return v
}
