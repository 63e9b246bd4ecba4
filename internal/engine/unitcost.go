package engine

// UnitVariableCost sums a product's variable cost items into a per-unit cost,
// each item floored at zero. An empty item list falls back to the override
// value (also floored at zero).
func UnitVariableCost(p Product) float64 {
	if len(p.CostItems) == 0 {
		return nonNegative(p.UnitCostOverride)
	}
	sum := 0.0
	for _, item := range p.CostItems {
		sum += nonNegative(item.Amount)
	}
	return sum
}

// DirectFixedMonthly sums a product's directly attributable monthly fixed costs.
// These are never pooled; they sit outside the allocator.
func DirectFixedMonthly(p Product) float64 {
	sum := 0.0
	for _, fc := range p.DirectFixedCosts {
		sum += nonNegative(fc.MonthlyAmount)
	}
	return sum
}

// ComputeProductUnitCost combines variable cost with the per-unit share of the
// product's allocated pool amount and its direct fixed costs. A zero quantity
// leaves the fixed shares at 0 rather than dividing by zero; the fixed burden
// is still visible through the allocation result itself.
func ComputeProductUnitCost(p Product, alloc AllocationResult, monthlyQuantity float64) UnitCost {
	uc := UnitCost{UnitVariable: UnitVariableCost(p)}
	qty := nonNegative(monthlyQuantity)
	if qty > 0 {
		uc.AllocatedFixedPerUnit = nonNegative(alloc.Amount) / qty
		uc.DirectFixedPerUnit = DirectFixedMonthly(p) / qty
	}
	uc.Total = uc.UnitVariable + uc.AllocatedFixedPerUnit + uc.DirectFixedPerUnit
	return uc
}
