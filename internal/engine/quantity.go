package engine

// historicalMonths is the number of monthly samples the historical method averages.
const historicalMonths = 3

// ResolveMonthlyQuantity converts a product's quantity specification into a single
// expected monthly unit count. All inputs are floored at zero before arithmetic;
// no method can produce a negative result.
//
// The uncertain method resolves to 0: downstream allocation and break-even math
// then zero out for that product, and Evaluate surfaces a qualitative warning
// instead of a number.
func ResolveMonthlyQuantity(p Product) float64 {
	return resolveQuantity(p.Quantity)
}

func resolveQuantity(spec QuantitySpec) float64 {
	switch spec.Method {
	case QuantityFixed:
		return nonNegative(spec.Value)
	case QuantityRange:
		min := nonNegative(spec.Min)
		max := nonNegative(spec.Max)
		if min == 0 || max == 0 {
			return 0
		}
		return (min + max) / 2
	case QuantityCapacity:
		return nonNegative(spec.MaxUnits) * nonNegative(spec.UtilizationPct) / 100
	case QuantityMarket:
		return nonNegative(spec.MarketSize) * nonNegative(spec.SharePct) / 100
	case QuantityHistorical:
		sum := 0.0
		for i := 0; i < historicalMonths && i < len(spec.History); i++ {
			sum += nonNegative(spec.History[i])
		}
		return sum / historicalMonths
	case QuantityUncertain:
		return 0
	default:
		return 0
	}
}

// QuantityForPeriod scales the monthly quantity to a reporting period of the
// given length in days. Non-positive day counts fall back to a 30-day month.
func QuantityForPeriod(spec QuantitySpec, days int) float64 {
	if days <= 0 {
		days = 30
	}
	return resolveQuantity(spec) * float64(days) / 30
}
