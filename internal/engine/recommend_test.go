package engine

import "testing"

func TestShortRunwayOverridesEverything(t *testing.T) {
	rec := RecommendStrategy(RecommendationContext{
		Sector:       SectorSaaS,
		Goal:         GoalPremiumPosition,
		RunwayMonths: 4,
	})
	if rec.Strategy != StrategyCostPlus {
		t.Fatalf("short runway before break-even must force cost_plus, got %q", rec.Strategy)
	}
}

func TestShortRunwayAfterBreakEvenDoesNotOverride(t *testing.T) {
	rec := RecommendStrategy(RecommendationContext{
		Sector:           SectorSaaS,
		Goal:             GoalPremiumPosition,
		RunwayMonths:     4,
		BreakEvenReached: true,
	})
	if rec.Strategy != StrategyValueBased {
		t.Fatalf("once break-even is reached the goal rule applies, got %q", rec.Strategy)
	}
}

func TestGoalRules(t *testing.T) {
	cases := []struct {
		name string
		ctx  RecommendationContext
		want Strategy
	}{
		{"quick revenue, price sensitive", RecommendationContext{Goal: GoalQuickRevenue, PriceSensitivity: LevelHigh}, StrategyPenetration},
		{"quick revenue, insensitive", RecommendationContext{Goal: GoalQuickRevenue, PriceSensitivity: LevelLow}, StrategyCostPlus},
		{"market entry, differentiated", RecommendationContext{Goal: GoalMarketEntry, Differentiation: LevelHigh}, StrategyCompetitive},
		{"market entry, undifferentiated", RecommendationContext{Goal: GoalMarketEntry, Differentiation: LevelMedium}, StrategyPenetration},
		{"premium position", RecommendationContext{Goal: GoalPremiumPosition}, StrategyValueBased},
		{"sustainable growth, low differentiation", RecommendationContext{Goal: GoalSustainableGrowth, Differentiation: LevelLow}, StrategyCompetitive},
		{"sustainable growth, differentiated", RecommendationContext{Goal: GoalSustainableGrowth, Differentiation: LevelHigh}, StrategyValueBased},
		{"test market", RecommendationContext{Goal: GoalTestMarket}, StrategyPenetration},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := RecommendStrategy(c.ctx)
			if rec.Strategy != c.want {
				t.Fatalf("got %q want %q", rec.Strategy, c.want)
			}
			if rec.Rationale == "" {
				t.Fatal("every recommendation carries a rationale")
			}
		})
	}
}

func TestEarlyStageDefaultsToPenetration(t *testing.T) {
	for _, stage := range []CompanyStage{StageIdea, StageEarly} {
		rec := RecommendStrategy(RecommendationContext{Sector: SectorSaaS, Stage: stage})
		if rec.Strategy != StrategyPenetration {
			t.Fatalf("stage %q without a goal should recommend penetration, got %q", stage, rec.Strategy)
		}
	}
}

func TestSectorDefaultWhenNoGoal(t *testing.T) {
	cases := []struct {
		sector Sector
		want   Strategy
	}{
		{SectorSaaS, StrategyValueBased},
		{SectorFintech, StrategyValueBased},
		{SectorServices, StrategyCostPlus},
		{SectorFoodBeverage, StrategyCostPlus},
		{SectorManufacturing, StrategyCostPlus},
		{SectorEcommerce, StrategyCompetitive},
		{"", StrategyCompetitive},
		{"space_mining", StrategyCompetitive},
	}
	for _, c := range cases {
		rec := RecommendStrategy(RecommendationContext{Sector: c.sector, Stage: StageGrowth})
		if rec.Strategy != c.want {
			t.Fatalf("sector %q: got %q want %q", c.sector, rec.Strategy, c.want)
		}
	}
}

func TestRecommendedMarginAdjustments(t *testing.T) {
	base := RecommendStrategy(RecommendationContext{Sector: SectorServices, Stage: StageGrowth})
	if base.MarginPct != 45 {
		t.Fatalf("services baseline margin: got %v want 45", base.MarginPct)
	}

	healthy := RecommendStrategy(RecommendationContext{Sector: SectorServices, Stage: StageGrowth, LTVCACRatio: 3.5})
	if healthy.MarginPct != 55 {
		t.Fatalf("healthy LTV:CAC should add 10 points, got %v", healthy.MarginPct)
	}

	squeezed := RecommendStrategy(RecommendationContext{Sector: SectorServices, Stage: StageGrowth, RunwayMonths: 3, BreakEvenReached: true})
	if squeezed.MarginPct != 35 {
		t.Fatalf("short runway should pull 10 points, got %v", squeezed.MarginPct)
	}
}

func TestRecommendedMarginClamped(t *testing.T) {
	high := RecommendStrategy(RecommendationContext{Sector: SectorSaaS, Stage: StageGrowth, LTVCACRatio: 5, BreakEvenReached: true})
	if high.MarginPct > maxRecommendedMarginPct {
		t.Fatalf("margin above the cap: %v", high.MarginPct)
	}
	low := RecommendStrategy(RecommendationContext{Sector: SectorEcommerce, RunwayMonths: 2})
	if low.MarginPct < minRecommendedMarginPct {
		t.Fatalf("margin below the floor: %v", low.MarginPct)
	}
}
