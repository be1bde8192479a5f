package budget

// CityClass buckets population into the named tiers.
type CityClass int

const (
	Village CityClass = iota
	Town
	City
	Capital
	Metropolis
	Megalopolis
)

func (c CityClass) String() string {
	switch c {
	case Village:
		return "village"
	case Town:
		return "town"
	case City:
		return "city"
	case Capital:
		return "capital"
	case Metropolis:
		return "metropolis"
	default:
		return "megalopolis"
	}
}

// ClassifyPopulation buckets a population count.
func ClassifyPopulation(pop int) CityClass {
	switch {
	case pop < 2000:
		return Village
	case pop < 10000:
		return Town
	case pop < 50000:
		return City
	case pop < 100000:
		return Capital
	case pop < 500000:
		return Metropolis
	default:
		return Megalopolis
	}
}

// Evaluation is the result of one city_evaluation pass.
type Evaluation struct {
	Population int
	Class      CityClass
	Score      int
}

// EvaluationInputs bundles the overlay/census/budget readings
// city_evaluation needs.
type EvaluationInputs struct {
	Population     int
	PreviousPop    int
	CrimeAverage   float64
	PollutionAvg   float64
	Unemployment   float64 // [0,1]
	CityTax        int
	UnpoweredRatio float64 // [0,1]
	TrafficAverage float64
}

// Evaluate computes the city score: a base of 500, nudged
// by recent growth (clamped to +/-100), then penalized for crime,
// pollution, unemployment, tax above 10%, unpowered zones, and traffic
// congestion. Clamped to [0,1000].
func Evaluate(in EvaluationInputs) Evaluation {
	growth := in.Population - in.PreviousPop
	if growth > 100 {
		growth = 100
	}
	if growth < -100 {
		growth = -100
	}

	score := 500 + growth
	score -= int(in.CrimeAverage / 5)
	score -= int(in.PollutionAvg / 5)
	score -= int(in.Unemployment * 100)
	if in.CityTax > 10 {
		score -= (in.CityTax - 10) * 5
	}
	score -= int(in.UnpoweredRatio * 100)
	score -= int(in.TrafficAverage / 4)

	if score < 0 {
		score = 0
	}
	if score > 1000 {
		score = 1000
	}

	return Evaluation{
		Population: in.Population,
		Class:      ClassifyPopulation(in.Population),
		Score:      score,
	}
}
