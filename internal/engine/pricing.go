package engine

import "math"

// maxCostPlusMarginPct keeps the cost-plus divisor strictly positive.
const maxCostPlusMarginPct = 99.99

// priceEpsilon is the tolerance used when checking the cost-plus target floor.
const priceEpsilon = 1e-6

// PricingInput carries everything the price computation needs for one product.
type PricingInput struct {
	Strategy           Strategy
	UnitCost           float64
	AvgCompetitorPrice float64
	MarginPct          float64
	ManualPrice        float64
	Secondary          []SecondaryStrategy
}

// costPlusPrice expresses the margin as a percentage of the final price, not of
// cost: price = cost / (1 - margin/100). The margin is clamped to
// [0, maxCostPlusMarginPct] first; a zero or invalid margin yields the bare cost.
func costPlusPrice(unitCost, marginPct float64) float64 {
	unitCost = nonNegative(unitCost)
	marginPct = Clamp(marginPct, 0, maxCostPlusMarginPct)
	if marginPct <= 0 {
		return unitCost
	}
	return unitCost / (1 - marginPct/100)
}

// PriceByStrategy computes the base price for a primary strategy. Strategies
// that reference competitors fall back to cost-based multiples when no
// competitor average is available.
func PriceByStrategy(strategy Strategy, unitCost, avgCompetitor, marginPct, manualPrice float64) float64 {
	unitCost = nonNegative(unitCost)
	avgCompetitor = nonNegative(avgCompetitor)

	switch strategy {
	case StrategyCostPlus:
		return costPlusPrice(unitCost, marginPct)
	case StrategyCompetitive:
		if avgCompetitor > 0 {
			return avgCompetitor * 0.95
		}
		return unitCost * 1.25
	case StrategyPenetration:
		if avgCompetitor > 0 {
			return avgCompetitor * 0.80
		}
		return unitCost * 1.15
	case StrategyValueBased:
		baseline := avgCompetitor
		if baseline <= 0 {
			baseline = unitCost * 1.4
		}
		return baseline * 1.2
	default:
		if manual := nonNegative(manualPrice); manual > 0 {
			return manual
		}
		return unitCost * 1.3
	}
}

// ApplySecondaryStrategies transforms the running price through each modifier in
// the order supplied. Unknown tags are ignored.
func ApplySecondaryStrategies(price float64, strategies []SecondaryStrategy) float64 {
	price = nonNegative(price)
	for _, s := range strategies {
		switch s {
		case SecondaryPsychological:
			// Anchor to the .99 ending in the hundred-band below: 100 -> 99,
			// 250 -> 199. Prices already under 100 floor at 0 and rely on the
			// cost guarantee applied after the chain.
			price = math.Floor(price/100)*100 - 1
			if price < 0 {
				price = 0
			}
		case SecondaryBundle:
			price *= 0.95
		case SecondaryDynamic:
			price *= 1.10
		case SecondarySkimming:
			price *= 1.20
		}
	}
	return price
}

// ComputePrice runs the primary strategy, the secondary chain, and the final
// price guarantees: cost-plus never lands below its target price, and every
// other strategy never lands below the full unit cost.
func ComputePrice(in PricingInput) PricingResult {
	base := PriceByStrategy(in.Strategy, in.UnitCost, in.AvgCompetitorPrice, in.MarginPct, in.ManualPrice)
	price := ApplySecondaryStrategies(base, in.Secondary)

	if in.Strategy == StrategyCostPlus {
		target := costPlusPrice(in.UnitCost, in.MarginPct)
		if price < target-priceEpsilon {
			price = Ceil2(target)
		} else {
			price = Round2(price)
		}
	} else {
		if cost := nonNegative(in.UnitCost); price < cost {
			price = cost
		}
		price = Round2(price)
	}

	strategy := in.Strategy
	if !strategy.IsValid() || strategy == "" {
		strategy = StrategyManual
	}
	return PricingResult{Strategy: strategy, BasePrice: Round2(base), FinalPrice: price}
}

// AverageCompetitorPrice averages the competitor prices recorded for a product.
// Only positive prices count; no competitors is valid and yields 0, which the
// competitor-relative strategies treat as "fall back to cost-based pricing".
func AverageCompetitorPrice(productID string, competitors []Competitor) float64 {
	sum, count := 0.0, 0
	for _, c := range competitors {
		if c.ProductID != productID {
			continue
		}
		if price := SafeNumber(c.Price, 0); price > 0 {
			sum += price
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
