package engine

// Margin recommendation bounds and adjustments.
const (
	minRecommendedMarginPct = 10
	maxRecommendedMarginPct = 90
	marginAdjustmentPct     = 10
	shortRunwayMonths       = 6
	healthyLTVCACRatio      = 3
)

// RecommendStrategy maps the business context to an advisory pricing strategy
// and margin. The rules are an explicit precedence-ordered list, highest first:
//
//  1. Short runway before break-even overrides everything: survival pricing.
//  2. The stated strategic goal, refined by price sensitivity and
//     differentiation where the goal admits two strategies.
//  3. The sector default when no goal is set, nudged toward penetration for
//     pre-launch companies that still need market proof.
//
// The output is advisory only; callers may override it with a manually selected
// strategy and margin, which ComputePrice accepts as already-resolved input.
func RecommendStrategy(ctx RecommendationContext) Recommendation {
	profile := ProfileForSector(ctx.Sector)
	strategy, rationale := recommendedStrategy(ctx, profile)
	return Recommendation{
		Strategy:  strategy,
		MarginPct: recommendedMargin(ctx, profile),
		Rationale: rationale,
	}
}

func recommendedStrategy(ctx RecommendationContext, profile SectorProfile) (Strategy, string) {
	runway := nonNegative(ctx.RunwayMonths)
	if runway > 0 && runway < shortRunwayMonths && !ctx.BreakEvenReached {
		return StrategyCostPlus, "runway under 6 months before break-even: price to recover cost first"
	}

	switch ctx.Goal {
	case GoalQuickRevenue:
		if ctx.PriceSensitivity == LevelHigh {
			return StrategyPenetration, "quick revenue in a price-sensitive market: undercut to convert fast"
		}
		return StrategyCostPlus, "quick revenue: guaranteed margin on every sale"
	case GoalMarketEntry:
		if ctx.Differentiation == LevelHigh {
			return StrategyCompetitive, "market entry with strong differentiation: match the market, win on product"
		}
		return StrategyPenetration, "market entry: undercut incumbents to build share"
	case GoalPremiumPosition:
		return StrategyValueBased, "premium positioning: price on delivered value"
	case GoalSustainableGrowth:
		if ctx.Differentiation == LevelLow {
			return StrategyCompetitive, "sustainable growth without differentiation: track the market"
		}
		return StrategyValueBased, "sustainable growth: capture value while the product stands apart"
	case GoalTestMarket:
		return StrategyPenetration, "market test: lower the adoption barrier to maximize signal"
	}

	if ctx.Stage == StageIdea || ctx.Stage == StageEarly {
		return StrategyPenetration, "early stage without a stated goal: prioritize adoption over margin"
	}
	return profile.DefaultStrategy, "sector default for " + string(profile.Sector)
}

// recommendedMargin starts from the sector baseline, rewards a healthy
// LTV:CAC ratio, and pulls back when runway is short.
func recommendedMargin(ctx RecommendationContext, profile SectorProfile) float64 {
	margin := profile.BaselineMarginPct
	if ctx.LTVCACRatio >= healthyLTVCACRatio {
		margin += marginAdjustmentPct
	}
	if runway := nonNegative(ctx.RunwayMonths); runway > 0 && runway < shortRunwayMonths {
		margin -= marginAdjustmentPct
	}
	return Clamp(margin, minRecommendedMarginPct, maxRecommendedMarginPct)
}
