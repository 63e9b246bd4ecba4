package engine

// LTVCAC computes per-product customer economics at monthly granularity.
//
// No new customers means CAC 0 rather than infinity, and zero churn means
// lifetime, LTV and ratio all report 0 rather than an unbounded lifetime.
func LTVCAC(in LTVInput) LTVResult {
	newCustomers := nonNegative(in.MonthlyNewCustomers)
	spend := nonNegative(in.MonthlyMarketingSpend)

	cac := 0.0
	if newCustomers > 0 {
		cac = spend / newCustomers
	}

	churn := nonNegative(in.ChurnRatePct)
	lifetimeMonths := 0.0
	if churn > 0 {
		lifetimeMonths = 100 / churn
	}

	monthlyRevenue := nonNegative(in.AvgOrderValue) * nonNegative(in.PurchaseFrequency)
	monthlyGrossProfit := monthlyRevenue * Clamp(in.GrossMarginPct, 0, 100) / 100
	ltv := monthlyGrossProfit * lifetimeMonths

	ratio := 0.0
	if cac > 0 {
		ratio = ltv / cac
	}

	return LTVResult{
		LTV:            Round2(ltv),
		CAC:            Round2(cac),
		Ratio:          Round2(ratio),
		LifetimeMonths: Round2(lifetimeMonths),
	}
}

// PortfolioLTVCAC computes the portfolio-level variant from annual-granularity
// inputs: LTV = avg purchase value x purchases per year x lifespan in years.
// This path stays separate from LTVCAC: the two feed from different wizard
// steps with different time units and must not be unified.
func PortfolioLTVCAC(in PortfolioInput) PortfolioResult {
	ltv := nonNegative(in.AvgPurchaseValue) * nonNegative(in.PurchaseFrequencyPerYear) * nonNegative(in.CustomerLifespanYears)

	newCustomers := nonNegative(in.NewCustomersPerMonth)
	cac := 0.0
	if newCustomers > 0 {
		cac = nonNegative(in.MonthlyMarketingSpend) / newCustomers
	}

	ratio := 0.0
	if cac > 0 {
		ratio = ltv / cac
	}

	return PortfolioResult{LTV: Round2(ltv), CAC: Round2(cac), Ratio: Round2(ratio)}
}
