package budget

import "testing"

func TestCollectTaxScenarioOne(t *testing.T) {
	b := New(EasyStartingFunds, 1, 7)
	for i := 0; i < 48; i++ {
		b.CityTax = 7
		b.AccumulateTax()
	}

	result := b.CollectTax(800, 0, 0, 100, 0, 0, 0, 0)
	if result.RoadFund != 0 || result.PoliceFund != 0 || result.FireFund != 0 {
		t.Fatalf("expected zero funding demand with no infrastructure built")
	}
	if b.TotalFunds != EasyStartingFunds+result.TaxFund {
		t.Fatalf("expected total funds to grow by tax fund exactly, got %d want %d", b.TotalFunds, EasyStartingFunds+result.TaxFund)
	}
}

func TestCollectTaxProportionalWhenShort(t *testing.T) {
	b := &Budget{TotalFunds: 0, GameLevel: 1}
	result := b.CollectTax(0, 0, 0, 0, 1000, 0, 100, 100)
	if result.RoadSpend+result.PoliceSpend+result.FireSpend > b.TotalFunds-result.CashFlow+result.TaxFund {
		t.Fatalf("spend must not exceed available funds")
	}
	if result.RoadSpend == result.RoadFund {
		t.Fatalf("expected road spend to be rationed when funds are short")
	}
}

func TestUpdateFundEffectsZeroFundUsesMax(t *testing.T) {
	b := &Budget{TotalFunds: 100000, GameLevel: 1}
	b.CollectTax(0, 0, 0, 0, 0, 0, 0, 0)
	if b.RoadEffect != MaxRoadEffect {
		t.Fatalf("expected zero road fund to yield max road effect, got %d", b.RoadEffect)
	}
}

func TestClassifyPopulation(t *testing.T) {
	cases := []struct {
		pop  int
		want CityClass
	}{
		{0, Village}, {5000, Town}, {20000, City}, {75000, Capital}, {200000, Metropolis}, {600000, Megalopolis},
	}
	for _, tc := range cases {
		if got := ClassifyPopulation(tc.pop); got != tc.want {
			t.Errorf("ClassifyPopulation(%d) = %v, want %v", tc.pop, got, tc.want)
		}
	}
}

func TestEvaluateClampsToRange(t *testing.T) {
	in := EvaluationInputs{
		Population: 1000, PreviousPop: 0,
		CrimeAverage: 5000, PollutionAvg: 5000,
		Unemployment: 1, CityTax: 20, UnpoweredRatio: 1, TrafficAverage: 4000,
	}
	eval := Evaluate(in)
	if eval.Score != 0 {
		t.Fatalf("expected score clamped to 0, got %d", eval.Score)
	}

	in2 := EvaluationInputs{Population: 10000, PreviousPop: 0}
	eval2 := Evaluate(in2)
	if eval2.Score > 1000 || eval2.Score < 0 {
		t.Fatalf("expected score within [0,1000], got %d", eval2.Score)
	}
}
