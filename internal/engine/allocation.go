package engine

// AllocationInput is the per-product data the allocator needs; callers resolve
// quantity and variable cost before allocating.
type AllocationInput struct {
	ProductID        string
	MonthlyQuantity  float64
	UnitVariableCost float64
}

// AllocateFixedCosts distributes the pooled monthly fixed costs across products.
//
// For equal/units/cost the allocated amounts are corrected on the last product
// so they sum exactly to the pool, and ratios sum to 100. The units and cost
// methods fall back to equal when their denominator is zero.
//
// The custom method applies the supplied percentages as given: percentages that
// do not total 100 leave part of the pool unallocated. That is intentional:
// the caller surfaces the shortfall as "remaining to distribute" and blocks
// until the user reaches 100%.
func AllocateFixedCosts(pool float64, products []AllocationInput, method AllocationMethod, customPct map[string]float64) []AllocationResult {
	pool = nonNegative(pool)
	n := len(products)
	if n == 0 {
		return nil
	}

	if method == AllocateCustom {
		results := make([]AllocationResult, 0, n)
		for _, p := range products {
			pct := nonNegative(customPct[p.ProductID])
			results = append(results, AllocationResult{
				ProductID: p.ProductID,
				Amount:    Round2(pool * pct / 100),
				RatioPct:  Round2(pct),
			})
		}
		return results
	}

	weights := allocationWeights(products, method)

	results := make([]AllocationResult, 0, n)
	allocated, ratioUsed := 0.0, 0.0
	for i, p := range products {
		amount := Round2(pool * weights[i])
		ratio := Round2(weights[i] * 100)
		if i == n-1 {
			// The last product absorbs the rounding remainder so amounts sum
			// exactly to the pool and ratios sum exactly to 100.
			amount = Round2(pool - allocated)
			ratio = Round2(100 - ratioUsed)
		}
		allocated += amount
		ratioUsed += ratio
		results = append(results, AllocationResult{
			ProductID: p.ProductID,
			Amount:    amount,
			RatioPct:  ratio,
		})
	}
	return results
}

func allocationWeights(products []AllocationInput, method AllocationMethod) []float64 {
	n := len(products)
	weights := make([]float64, n)

	switch method {
	case AllocateUnits:
		total := 0.0
		for _, p := range products {
			total += nonNegative(p.MonthlyQuantity)
		}
		if total > 0 {
			for i, p := range products {
				weights[i] = nonNegative(p.MonthlyQuantity) / total
			}
			return weights
		}
	case AllocateCost:
		total := 0.0
		for _, p := range products {
			total += nonNegative(p.MonthlyQuantity) * nonNegative(p.UnitVariableCost)
		}
		if total > 0 {
			for i, p := range products {
				weights[i] = nonNegative(p.MonthlyQuantity) * nonNegative(p.UnitVariableCost) / total
			}
			return weights
		}
	}

	// equal split, and the zero-denominator fallback for units/cost
	for i := range weights {
		weights[i] = 1 / float64(n)
	}
	return weights
}

// FixedCostPool sums the shared monthly fixed-cost items, each floored at zero.
func FixedCostPool(items []FixedCost) float64 {
	sum := 0.0
	for _, fc := range items {
		sum += nonNegative(fc.MonthlyAmount)
	}
	return sum
}
