package engine

// BreakEven computes contribution margin and the break-even point for one
// product. monthlyFixedCost is the product's full monthly fixed burden (its
// allocated pool share plus direct fixed costs). A non-positive contribution
// margin means the product can never recover fixed costs at this price: it is
// reported as not viable, with units and revenue left at zero.
func BreakEven(monthlyFixedCost, unitVariableCost, price, monthlyQuantity float64) BreakEvenResult {
	margin := SafeNumber(price, 0) - nonNegative(unitVariableCost)
	result := BreakEvenResult{ContributionMargin: Round2(margin)}
	if margin <= 0 {
		return result
	}

	units := nonNegative(monthlyFixedCost) / margin
	result.Viable = true
	result.Reached = nonNegative(monthlyQuantity) >= units
	result.Units = Round2(units)
	result.Revenue = Round2(units * SafeNumber(price, 0))
	return result
}
