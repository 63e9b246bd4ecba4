package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/MaherElabd2/price23-sub001/internal/engine"
)

// Lang selects the report language. Arabic output is rendered right-to-left by
// the HTML layer; the markdown itself is direction-agnostic.
type Lang string

const (
	LangEnglish Lang = "en"
	LangArabic  Lang = "ar"
)

func (l Lang) IsValid() bool {
	return l == LangEnglish || l == LangArabic
}

// BuildMarkdown renders one evaluation into a standalone markdown report.
// The snapshot supplies the inputs the evaluation was computed from, so the
// report can show both sides of each number.
func BuildMarkdown(s engine.Snapshot, eval engine.Evaluation, lang Lang) string {
	t := labelsFor(lang)
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t.title)
	fmt.Fprintf(&b, "- %s: %s\n", t.generatedAt, eval.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "- %s: %d\n", t.productCount, len(eval.Products))
	fmt.Fprintf(&b, "- %s: %s\n\n", t.fixedCostPool, fmtMoney(eval.FixedCostPool))

	// --- Recommendation ---
	fmt.Fprintf(&b, "## %s\n\n", t.recommendation)
	fmt.Fprintf(&b, "- %s: `%s`\n", t.strategy, strategyLabel(eval.Recommendation.Strategy, t))
	fmt.Fprintf(&b, "- %s: %.0f%%\n", t.recommendedMargin, eval.Recommendation.MarginPct)
	fmt.Fprintf(&b, "- %s: %s\n\n", t.rationale, sanitize(eval.Recommendation.Rationale))

	// --- Unit Economics ---
	fmt.Fprintf(&b, "## %s\n\n", t.unitEconomics)
	fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n", t.product, t.monthlyQuantity, t.variableCost, t.fixedShare, t.totalUnitCost, t.finalPrice)
	fmt.Fprintf(&b, "|---|---|---|---|---|---|\n")
	for _, p := range eval.Products {
		fixedShare := p.UnitCost.AllocatedFixedPerUnit + p.UnitCost.DirectFixedPerUnit
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			sanitizeCell(p.Name),
			fmtQty(p.MonthlyQuantity),
			fmtMoney(p.UnitCost.UnitVariable),
			fmtMoney(fixedShare),
			fmtMoney(p.UnitCost.Total),
			fmtMoney(p.Pricing.FinalPrice))
	}
	fmt.Fprintf(&b, "\n")

	// --- Fixed Cost Allocation ---
	fmt.Fprintf(&b, "## %s\n\n", t.allocation)
	fmt.Fprintf(&b, "%s\n\n", t.allocationIntro)
	fmt.Fprintf(&b, "| %s | %s | %s |\n", t.product, t.allocatedAmount, t.allocatedRatio)
	fmt.Fprintf(&b, "|---|---|---|\n")
	for _, p := range eval.Products {
		fmt.Fprintf(&b, "| %s | %s | %.2f%% |\n", sanitizeCell(p.Name), fmtMoney(p.Allocation.Amount), p.Allocation.RatioPct)
	}
	fmt.Fprintf(&b, "\n")

	// --- Pricing Detail ---
	fmt.Fprintf(&b, "## %s\n\n", t.pricingDetail)
	fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", t.product, t.strategy, t.avgCompetitor, t.basePrice, t.finalPrice)
	fmt.Fprintf(&b, "|---|---|---|---|---|\n")
	for _, p := range eval.Products {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			sanitizeCell(p.Name),
			strategyLabel(p.Pricing.Strategy, t),
			fmtMoneyOrDash(p.AvgCompetitor),
			fmtMoney(p.Pricing.BasePrice),
			fmtMoney(p.Pricing.FinalPrice))
	}
	fmt.Fprintf(&b, "\n")

	// --- Break-Even ---
	fmt.Fprintf(&b, "## %s\n\n", t.breakEven)
	fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", t.product, t.contributionMargin, t.breakEvenUnits, t.breakEvenRevenue, t.breakEvenStatus)
	fmt.Fprintf(&b, "|---|---|---|---|---|\n")
	for _, p := range eval.Products {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			sanitizeCell(p.Name),
			fmtMoney(p.BreakEven.ContributionMargin),
			fmtQty(p.BreakEven.Units),
			fmtMoney(p.BreakEven.Revenue),
			breakEvenStatus(p.BreakEven, t))
	}
	fmt.Fprintf(&b, "\n")

	// --- Customer Economics ---
	if hasLTV(eval) || eval.Portfolio != nil {
		fmt.Fprintf(&b, "## %s\n\n", t.customerEconomics)
		if hasLTV(eval) {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", t.product, "LTV", "CAC", t.ratio, t.lifetimeMonths)
			fmt.Fprintf(&b, "|---|---|---|---|---|\n")
			for _, p := range eval.Products {
				if p.LTV == nil {
					continue
				}
				fmt.Fprintf(&b, "| %s | %s | %s | %.2f | %s |\n",
					sanitizeCell(p.Name), fmtMoney(p.LTV.LTV), fmtMoney(p.LTV.CAC), p.LTV.Ratio, fmtQty(p.LTV.LifetimeMonths))
			}
			fmt.Fprintf(&b, "\n")
		}
		if eval.Portfolio != nil {
			fmt.Fprintf(&b, "**%s**\n\n", t.portfolio)
			fmt.Fprintf(&b, "- LTV: %s\n", fmtMoney(eval.Portfolio.LTV))
			fmt.Fprintf(&b, "- CAC: %s\n", fmtMoney(eval.Portfolio.CAC))
			fmt.Fprintf(&b, "- %s: %.2f\n\n", t.ratio, eval.Portfolio.Ratio)
		}
	}

	// --- Warnings ---
	if len(eval.Warnings) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", t.warnings)
		for _, w := range eval.Warnings {
			fmt.Fprintf(&b, "- [!] %s\n", sanitize(w.Message))
		}
		fmt.Fprintf(&b, "\n")
	}

	// --- Glossary ---
	fmt.Fprintf(&b, "---\n\n## %s\n\n", t.glossary)
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t.term, t.definition)
	for _, g := range t.glossaryRows {
		fmt.Fprintf(&b, "| %s | %s |\n", g[0], g[1])
	}
	fmt.Fprintf(&b, "\n%s\n", t.disclaimer)

	return b.String()
}

func hasLTV(eval engine.Evaluation) bool {
	for _, p := range eval.Products {
		if p.LTV != nil {
			return true
		}
	}
	return false
}

func breakEvenStatus(be engine.BreakEvenResult, t labels) string {
	switch {
	case !be.Viable:
		return t.notViable
	case be.Reached:
		return t.reached
	default:
		return t.notReached
	}
}

func sanitize(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}

// sanitizeCell prepares text for a markdown table cell: newlines stripped and
// pipes escaped so user-entered product names cannot break the table.
func sanitizeCell(s string) string {
	return strings.ReplaceAll(sanitize(s), "|", "\\|")
}

// fmtMoney formats an amount with comma thousands separators and two decimals.
func fmtMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	rem := len(intPart) % 3
	if rem > 0 {
		b.WriteString(intPart[:rem])
	}
	for i := rem; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	out := b.String() + frac
	if neg {
		return "-" + out
	}
	return out
}

func fmtMoneyOrDash(v float64) string {
	if v <= 0 {
		return "—"
	}
	return fmtMoney(v)
}

// fmtQty drops trailing zeros so whole quantities read as integers.
func fmtQty(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
