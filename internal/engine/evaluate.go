package engine

import "time"

// Evaluate runs one full dependency-ordered pass over a snapshot:
// quantity -> unit variable cost -> allocation -> full unit cost -> pricing ->
// break-even and LTV/CAC, plus the independent strategy recommendation.
//
// The snapshot is treated as a value: Evaluate never mutates it and keeps no
// references to it after returning. It is cheap enough to re-run on every edit.
func Evaluate(s Snapshot) Evaluation {
	pool := FixedCostPool(s.FixedCosts)

	inputs := make([]AllocationInput, 0, len(s.Products))
	for _, p := range s.Products {
		inputs = append(inputs, AllocationInput{
			ProductID:        p.ID,
			MonthlyQuantity:  ResolveMonthlyQuantity(p),
			UnitVariableCost: UnitVariableCost(p),
		})
	}

	method := s.AllocationMethod
	if !method.IsValid() || method == "" {
		method = AllocateEqual
	}
	allocations := AllocateFixedCosts(pool, inputs, method, s.CustomAllocationPct)
	allocByID := make(map[string]AllocationResult, len(allocations))
	for _, a := range allocations {
		allocByID[a.ProductID] = a
	}

	eval := Evaluation{
		FixedCostPool: Round2(pool),
		Products:      make([]ProductEconomics, 0, len(s.Products)),
		GeneratedAt:   time.Now(),
	}

	allReached := len(s.Products) > 0
	for i, p := range s.Products {
		qty := inputs[i].MonthlyQuantity
		alloc := allocByID[p.ID]
		unitCost := ComputeProductUnitCost(p, alloc, qty)
		avgCompetitor := AverageCompetitorPrice(p.ID, s.Competitors)

		pricing := ComputePrice(PricingInput{
			Strategy:           p.Strategy,
			UnitCost:           unitCost.Total,
			AvgCompetitorPrice: avgCompetitor,
			MarginPct:          p.MarginPct,
			ManualPrice:        p.ManualPrice,
			Secondary:          p.Secondary,
		})

		monthlyFixed := alloc.Amount + DirectFixedMonthly(p)
		breakEven := BreakEven(monthlyFixed, unitCost.UnitVariable, pricing.FinalPrice, qty)
		if !breakEven.Reached {
			allReached = false
		}

		econ := ProductEconomics{
			ProductID:       p.ID,
			Name:            p.Name,
			MonthlyQuantity: Round2(qty),
			UnitCost: UnitCost{
				UnitVariable:          Round2(unitCost.UnitVariable),
				AllocatedFixedPerUnit: Round2(unitCost.AllocatedFixedPerUnit),
				DirectFixedPerUnit:    Round2(unitCost.DirectFixedPerUnit),
				Total:                 Round2(unitCost.Total),
			},
			Allocation:    alloc,
			AvgCompetitor: Round2(avgCompetitor),
			Pricing:       pricing,
			BreakEven:     breakEven,
		}
		if in, ok := s.LTV[p.ID]; ok {
			res := LTVCAC(in)
			econ.LTV = &res
		}
		eval.Products = append(eval.Products, econ)
	}

	if s.Portfolio != nil {
		res := PortfolioLTVCAC(*s.Portfolio)
		eval.Portfolio = &res
	}

	ctx := s.Context
	ctx.BreakEvenReached = allReached
	if ctx.LTVCACRatio == 0 && eval.Portfolio != nil {
		ctx.LTVCACRatio = eval.Portfolio.Ratio
	}
	eval.Recommendation = RecommendStrategy(ctx)

	eval.Warnings = CollectWarnings(s, eval)
	return eval
}
