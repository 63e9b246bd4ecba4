package report

import (
	"strings"
	"testing"

	"github.com/MaherElabd2/price23-sub001/internal/engine"
)

func sampleEvaluation() (engine.Snapshot, engine.Evaluation) {
	s := engine.Snapshot{
		Products: []engine.Product{{
			ID:        "p1",
			Name:      "Widget",
			CostItems: []engine.CostItem{{Name: "materials", Amount: 50}},
			Quantity:  engine.QuantitySpec{Method: engine.QuantityFixed, Value: 100},
			Strategy:  engine.StrategyCostPlus,
			MarginPct: 40,
		}},
		FixedCosts:       []engine.FixedCost{{Name: "rent", MonthlyAmount: 2000}},
		AllocationMethod: engine.AllocateEqual,
	}
	return s, engine.Evaluate(s)
}

func TestBuildMarkdownEnglish(t *testing.T) {
	s, eval := sampleEvaluation()
	md := BuildMarkdown(s, eval, LangEnglish)

	for _, want := range []string{
		"# Pricing Report",
		"## Unit Economics",
		"## Fixed Cost Allocation",
		"## Break-Even",
		"## Glossary",
		"Widget",
		"116.67",
		"2,000.00",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q\n%s", want, md)
		}
	}
}

func TestBuildMarkdownArabic(t *testing.T) {
	s, eval := sampleEvaluation()
	md := BuildMarkdown(s, eval, LangArabic)

	for _, want := range []string{
		"# تقرير التسعير",
		"## اقتصاديات الوحدة",
		"## نقطة التعادل",
		"Widget",
		"116.67",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("arabic markdown missing %q", want)
		}
	}
	if strings.Contains(md, "Pricing Report") {
		t.Fatal("arabic report must not fall back to english headings")
	}
}

func TestBuildMarkdownEscapesProductNames(t *testing.T) {
	s, eval := sampleEvaluation()
	s.Products[0].Name = "Widget | Deluxe"
	eval = engine.Evaluate(s)
	md := BuildMarkdown(s, eval, LangEnglish)
	if !strings.Contains(md, `Widget \| Deluxe`) {
		t.Fatal("pipe in a product name must be escaped inside table cells")
	}
}

func TestBuildMarkdownIncludesWarnings(t *testing.T) {
	s, eval := sampleEvaluation()
	s.Products[0].Quantity = engine.QuantitySpec{Method: engine.QuantityUncertain}
	eval = engine.Evaluate(s)
	md := BuildMarkdown(s, eval, LangEnglish)
	if !strings.Contains(md, "## Warnings") {
		t.Fatal("expected a warnings section for an uncertain quantity")
	}
}

func TestBuildMarkdownCustomerEconomics(t *testing.T) {
	s, eval := sampleEvaluation()
	if strings.Contains(BuildMarkdown(s, eval, LangEnglish), "## Customer Economics") {
		t.Fatal("no LTV inputs should mean no customer economics section")
	}

	s.LTV = map[string]engine.LTVInput{
		"p1": {MonthlyNewCustomers: 10, ChurnRatePct: 5, AvgOrderValue: 100, PurchaseFrequency: 1, GrossMarginPct: 60, MonthlyMarketingSpend: 1000},
	}
	eval = engine.Evaluate(s)
	md := BuildMarkdown(s, eval, LangEnglish)
	if !strings.Contains(md, "## Customer Economics") {
		t.Fatal("expected a customer economics section")
	}
}

func TestFmtMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{999.5, "999.50"},
		{2000, "2,000.00"},
		{1234567.89, "1,234,567.89"},
		{-2500, "-2,500.00"},
	}
	for _, c := range cases {
		if got := fmtMoney(c.in); got != c.want {
			t.Fatalf("fmtMoney(%v): got %q want %q", c.in, got, c.want)
		}
	}
}

func TestFmtQty(t *testing.T) {
	if got := fmtQty(100); got != "100" {
		t.Fatalf("whole quantities read as integers, got %q", got)
	}
	if got := fmtQty(33.5); got != "33.5" {
		t.Fatalf("got %q want 33.5", got)
	}
	if got := fmtQty(0); got != "0" {
		t.Fatalf("got %q want 0", got)
	}
}
