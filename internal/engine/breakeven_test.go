package engine

import "testing"

func TestBreakEvenBasic(t *testing.T) {
	// fixed 2000, variable 50, price 100 -> margin 50, 40 units, 4000 revenue
	result := BreakEven(2000, 50, 100, 100)
	if !result.Viable {
		t.Fatal("positive margin should be viable")
	}
	if result.ContributionMargin != 50 {
		t.Fatalf("contribution margin: got %v want 50", result.ContributionMargin)
	}
	if result.Units != 40 {
		t.Fatalf("break-even units: got %v want 40", result.Units)
	}
	if result.Revenue != 4000 {
		t.Fatalf("break-even revenue: got %v want 4000", result.Revenue)
	}
	if !result.Reached {
		t.Fatal("quantity 100 exceeds 40 units; break-even should be reached")
	}
}

func TestBreakEvenNotReached(t *testing.T) {
	result := BreakEven(2000, 50, 100, 30)
	if !result.Viable || result.Reached {
		t.Fatalf("expected viable but not reached, got %+v", result)
	}
}

func TestBreakEvenZeroMarginNotViable(t *testing.T) {
	for _, price := range []float64{50, 40, 0} {
		result := BreakEven(2000, 50, price, 100)
		if result.Viable || result.Reached {
			t.Fatalf("price %v at variable cost 50: expected not viable, got %+v", price, result)
		}
		if result.Units != 0 || result.Revenue != 0 {
			t.Fatalf("non-viable product should report zero units and revenue, got %+v", result)
		}
	}
}

func TestBreakEvenZeroFixedCost(t *testing.T) {
	result := BreakEven(0, 50, 100, 10)
	if !result.Viable || !result.Reached {
		t.Fatalf("zero fixed cost with positive margin breaks even immediately, got %+v", result)
	}
	if result.Units != 0 {
		t.Fatalf("zero fixed cost needs zero units, got %v", result.Units)
	}
}
