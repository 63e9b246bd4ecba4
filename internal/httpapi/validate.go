package httpapi

import (
	"fmt"

	"github.com/MaherElabd2/price23-sub001/internal/engine"
	"github.com/MaherElabd2/price23-sub001/internal/session"
)

// ValidateSnapshot checks the structural validity of a snapshot at the API
// boundary: identifiers and enum tags. Numeric values are never rejected here;
// the engine degrades bad numbers to zero on its own.
func ValidateSnapshot(s engine.Snapshot) error {
	seen := map[string]bool{}
	for i, p := range s.Products {
		if p.ID == "" {
			return session.NewValidationError(fmt.Sprintf("products[%d]: id is required", i))
		}
		if seen[p.ID] {
			return session.NewValidationError("duplicate product id " + p.ID)
		}
		seen[p.ID] = true

		if p.Quantity.Method != "" && !p.Quantity.Method.IsValid() {
			return session.NewValidationError(fmt.Sprintf("products[%d]: unknown quantity method %q", i, p.Quantity.Method))
		}
		if !p.Strategy.IsValid() {
			return session.NewValidationError(fmt.Sprintf("products[%d]: unknown strategy %q", i, p.Strategy))
		}
		for _, sec := range p.Secondary {
			if !sec.IsValid() {
				return session.NewValidationError(fmt.Sprintf("products[%d]: unknown secondary strategy %q", i, sec))
			}
		}
	}

	if s.AllocationMethod != "" && !s.AllocationMethod.IsValid() {
		return session.NewValidationError(fmt.Sprintf("unknown allocation method %q", s.AllocationMethod))
	}
	for id := range s.CustomAllocationPct {
		if !seen[id] {
			return session.NewValidationError("custom allocation references unknown product id " + id)
		}
	}
	for id := range s.LTV {
		if !seen[id] {
			return session.NewValidationError("ltv inputs reference unknown product id " + id)
		}
	}
	for i, c := range s.Competitors {
		if c.ProductID != "" && !seen[c.ProductID] {
			return session.NewValidationError(fmt.Sprintf("competitors[%d]: unknown product id %q", i, c.ProductID))
		}
	}

	ctx := s.Context
	if !ctx.Sector.IsValid() {
		return session.NewValidationError(fmt.Sprintf("unknown sector %q", ctx.Sector))
	}
	if !ctx.Stage.IsValid() {
		return session.NewValidationError(fmt.Sprintf("unknown company stage %q", ctx.Stage))
	}
	if !ctx.Goal.IsValid() {
		return session.NewValidationError(fmt.Sprintf("unknown strategic goal %q", ctx.Goal))
	}
	if !ctx.PriceSensitivity.IsValid() {
		return session.NewValidationError(fmt.Sprintf("unknown price sensitivity %q", ctx.PriceSensitivity))
	}
	if !ctx.Differentiation.IsValid() {
		return session.NewValidationError(fmt.Sprintf("unknown differentiation %q", ctx.Differentiation))
	}
	return nil
}
