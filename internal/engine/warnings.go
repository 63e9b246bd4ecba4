package engine

import "fmt"

// Warning codes. These are advisory signals computed from the engine's outputs;
// the numeric results stand regardless, and nothing here is an error.
const (
	WarnPriceFloorApplied    = "price_floor_applied"
	WarnNotViable            = "not_viable"
	WarnLowLTVCAC            = "low_ltv_cac"
	WarnMixedStrategies      = "mixed_strategies"
	WarnAllocationIncomplete = "allocation_incomplete"
	WarnUncertainQuantity    = "uncertain_quantity"
)

// CollectWarnings derives the advisory warnings for one evaluation pass.
func CollectWarnings(s Snapshot, eval Evaluation) []Warning {
	var warnings []Warning

	strategies := map[Strategy]bool{}
	for i, econ := range eval.Products {
		strategies[econ.Pricing.Strategy] = true

		if econ.Pricing.BasePrice < econ.UnitCost.Total && econ.Pricing.Strategy != StrategyCostPlus {
			warnings = append(warnings, Warning{
				Code:      WarnPriceFloorApplied,
				ProductID: econ.ProductID,
				Message:   fmt.Sprintf("%s: strategy price %.2f was below unit cost %.2f; floored at cost", econ.Name, econ.Pricing.BasePrice, econ.UnitCost.Total),
			})
		}
		if !econ.BreakEven.Viable {
			warnings = append(warnings, Warning{
				Code:      WarnNotViable,
				ProductID: econ.ProductID,
				Message:   fmt.Sprintf("%s: price does not cover variable cost; break-even is unreachable", econ.Name),
			})
		}
		if econ.LTV != nil && econ.LTV.CAC > 0 && econ.LTV.Ratio < healthyLTVCACRatio {
			warnings = append(warnings, Warning{
				Code:      WarnLowLTVCAC,
				ProductID: econ.ProductID,
				Message:   fmt.Sprintf("%s: LTV:CAC ratio %.2f is below the healthy threshold of %d", econ.Name, econ.LTV.Ratio, healthyLTVCACRatio),
			})
		}
		if i < len(s.Products) && s.Products[i].Quantity.Method == QuantityUncertain {
			warnings = append(warnings, Warning{
				Code:      WarnUncertainQuantity,
				ProductID: econ.ProductID,
				Message:   fmt.Sprintf("%s: quantity is marked uncertain and resolves to 0; pick a concrete estimation method to see projections", econ.Name),
			})
		}
	}

	if len(strategies) > 1 {
		warnings = append(warnings, Warning{
			Code:    WarnMixedStrategies,
			Message: fmt.Sprintf("%d different pricing strategies are in use across products", len(strategies)),
		})
	}

	if s.AllocationMethod == AllocateCustom {
		totalPct := 0.0
		for _, p := range s.Products {
			totalPct += nonNegative(s.CustomAllocationPct[p.ID])
		}
		if totalPct < 100 {
			warnings = append(warnings, Warning{
				Code:    WarnAllocationIncomplete,
				Message: fmt.Sprintf("custom allocation covers %.1f%% of the pool; %.1f%% remains to distribute", totalPct, 100-totalPct),
			})
		}
	}

	if eval.Portfolio != nil && eval.Portfolio.CAC > 0 && eval.Portfolio.Ratio < healthyLTVCACRatio {
		warnings = append(warnings, Warning{
			Code:    WarnLowLTVCAC,
			Message: fmt.Sprintf("portfolio LTV:CAC ratio %.2f is below the healthy threshold of %d", eval.Portfolio.Ratio, healthyLTVCACRatio),
		})
	}

	return warnings
}
