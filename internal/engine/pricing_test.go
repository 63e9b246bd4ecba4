package engine

import "testing"

func TestCostPlusMarginIsOfPriceNotCost(t *testing.T) {
	// 30% margin of the final price, so 70 -> 100, not 70 * 1.3 = 91.
	result := ComputePrice(PricingInput{Strategy: StrategyCostPlus, UnitCost: 70, MarginPct: 30})
	if result.FinalPrice != 100.00 {
		t.Fatalf("cost_plus 70 @ 30%%: got %v want 100.00", result.FinalPrice)
	}
}

func TestCostPlusMarginClamp(t *testing.T) {
	over := ComputePrice(PricingInput{Strategy: StrategyCostPlus, UnitCost: 10, MarginPct: 150})
	capped := ComputePrice(PricingInput{Strategy: StrategyCostPlus, UnitCost: 10, MarginPct: 99.99})
	if over.FinalPrice != capped.FinalPrice {
		t.Fatalf("margin above the cap should clamp: got %v want %v", over.FinalPrice, capped.FinalPrice)
	}
	zero := ComputePrice(PricingInput{Strategy: StrategyCostPlus, UnitCost: 10, MarginPct: -5})
	if zero.FinalPrice != 10 {
		t.Fatalf("negative margin should yield bare cost, got %v", zero.FinalPrice)
	}
}

func TestCompetitorRelativeStrategies(t *testing.T) {
	cases := []struct {
		name          string
		strategy      Strategy
		avgCompetitor float64
		want          float64
	}{
		{"competitive undercuts by 5%", StrategyCompetitive, 200, 190},
		{"competitive falls back to cost x 1.25", StrategyCompetitive, 0, 125},
		{"penetration undercuts by 20%", StrategyPenetration, 200, 160},
		{"penetration falls back to cost x 1.15", StrategyPenetration, 0, 115},
		{"value_based marks up the competitor baseline", StrategyValueBased, 200, 240},
		{"value_based falls back to cost x 1.4 x 1.2", StrategyValueBased, 0, 168},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ComputePrice(PricingInput{Strategy: c.strategy, UnitCost: 100, AvgCompetitorPrice: c.avgCompetitor})
			if got.FinalPrice != c.want {
				t.Fatalf("got %v want %v", got.FinalPrice, c.want)
			}
		})
	}
}

func TestManualPriceAndFallback(t *testing.T) {
	manual := ComputePrice(PricingInput{Strategy: StrategyManual, UnitCost: 50, ManualPrice: 80})
	if manual.FinalPrice != 80 {
		t.Fatalf("manual price should pass through, got %v", manual.FinalPrice)
	}
	fallback := ComputePrice(PricingInput{Strategy: StrategyManual, UnitCost: 50})
	if fallback.FinalPrice != 65 {
		t.Fatalf("missing manual price should fall back to cost x 1.3, got %v", fallback.FinalPrice)
	}
	unknown := ComputePrice(PricingInput{Strategy: "bespoke", UnitCost: 50})
	if unknown.FinalPrice != 65 {
		t.Fatalf("unknown strategy should behave like manual, got %v", unknown.FinalPrice)
	}
	if unknown.Strategy != StrategyManual {
		t.Fatalf("unknown strategy tag should normalize to manual, got %q", unknown.Strategy)
	}
}

func TestPsychologicalAnchorsToNinetyNineBelow(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{100, 99},
		{250, 199},
		{1000, 999},
		{99, 0},
		{50, 0},
	}
	for _, c := range cases {
		if got := ApplySecondaryStrategies(c.in, []SecondaryStrategy{SecondaryPsychological}); got != c.want {
			t.Fatalf("psychological(%v): got %v want %v", c.in, got, c.want)
		}
	}
}

func TestSecondaryChainAppliesInOrder(t *testing.T) {
	// 100 -> psychological 99 -> bundle 94.05
	got := Round2(ApplySecondaryStrategies(100, []SecondaryStrategy{SecondaryPsychological, SecondaryBundle}))
	if got != 94.05 {
		t.Fatalf("chain result: got %v want 94.05", got)
	}
	// reversed order: 100 -> bundle 95 -> psychological 0, so order matters
	reversed := ApplySecondaryStrategies(100, []SecondaryStrategy{SecondaryBundle, SecondaryPsychological})
	if reversed != 0 {
		t.Fatalf("reversed chain: got %v want 0", reversed)
	}
}

func TestDynamicAndSkimmingRaisePrice(t *testing.T) {
	if got := Round2(ApplySecondaryStrategies(100, []SecondaryStrategy{SecondaryDynamic})); got != 110 {
		t.Fatalf("dynamic: got %v want 110", got)
	}
	if got := Round2(ApplySecondaryStrategies(100, []SecondaryStrategy{SecondarySkimming})); got != 120 {
		t.Fatalf("skimming: got %v want 120", got)
	}
	if got := ApplySecondaryStrategies(100, []SecondaryStrategy{"loyalty"}); got != 100 {
		t.Fatalf("unknown secondary tag should be a no-op, got %v", got)
	}
}

func TestCostPlusNeverLandsBelowTarget(t *testing.T) {
	// psychological drags 100 down to 99; the cost-plus target pulls it back up.
	result := ComputePrice(PricingInput{
		Strategy:  StrategyCostPlus,
		UnitCost:  70,
		MarginPct: 30,
		Secondary: []SecondaryStrategy{SecondaryPsychological},
	})
	if result.FinalPrice < 100 {
		t.Fatalf("final price %v dropped below the cost-plus target of 100", result.FinalPrice)
	}
}

func TestNonCostPlusNeverSellsBelowCost(t *testing.T) {
	// penetration against a cheap competitor would price at 8, below cost 50.
	result := ComputePrice(PricingInput{Strategy: StrategyPenetration, UnitCost: 50, AvgCompetitorPrice: 10})
	if result.FinalPrice != 50 {
		t.Fatalf("price should floor at unit cost 50, got %v", result.FinalPrice)
	}
}

func TestAverageCompetitorPrice(t *testing.T) {
	competitors := []Competitor{
		{ProductID: "a", Name: "x", Price: 100},
		{ProductID: "a", Name: "y", Price: 200},
		{ProductID: "a", Name: "free tier", Price: 0},
		{ProductID: "b", Name: "z", Price: 999},
	}
	if got := AverageCompetitorPrice("a", competitors); got != 150 {
		t.Fatalf("expected 150 (zero prices excluded), got %v", got)
	}
	if got := AverageCompetitorPrice("c", competitors); got != 0 {
		t.Fatalf("no competitors should yield 0, got %v", got)
	}
}
