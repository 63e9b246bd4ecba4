package engine

import "time"

// QuantityMethod selects how a product's expected monthly quantity is estimated.
type QuantityMethod string

const (
	QuantityFixed      QuantityMethod = "fixed"
	QuantityRange      QuantityMethod = "range"
	QuantityCapacity   QuantityMethod = "capacity"
	QuantityMarket     QuantityMethod = "market"
	QuantityHistorical QuantityMethod = "historical"
	QuantityUncertain  QuantityMethod = "uncertain"
)

func (m QuantityMethod) IsValid() bool {
	switch m {
	case QuantityFixed, QuantityRange, QuantityCapacity, QuantityMarket, QuantityHistorical, QuantityUncertain:
		return true
	}
	return false
}

// AllocationMethod selects how the shared fixed-cost pool is split across products.
type AllocationMethod string

const (
	AllocateEqual  AllocationMethod = "equal"
	AllocateUnits  AllocationMethod = "units"
	AllocateCost   AllocationMethod = "cost"
	AllocateCustom AllocationMethod = "custom"
)

func (m AllocationMethod) IsValid() bool {
	switch m {
	case AllocateEqual, AllocateUnits, AllocateCost, AllocateCustom:
		return true
	}
	return false
}

// Strategy is a primary pricing strategy tag.
type Strategy string

const (
	StrategyCostPlus    Strategy = "cost_plus"
	StrategyCompetitive Strategy = "competitive"
	StrategyPenetration Strategy = "penetration"
	StrategyValueBased  Strategy = "value_based"
	// StrategyManual means the user entered a price directly; the engine only
	// enforces the cost floor.
	StrategyManual Strategy = "manual"
)

func (s Strategy) IsValid() bool {
	switch s {
	case StrategyCostPlus, StrategyCompetitive, StrategyPenetration, StrategyValueBased, StrategyManual, "":
		return true
	}
	return false
}

// SecondaryStrategy is an ordered price modifier applied after the primary strategy.
type SecondaryStrategy string

const (
	SecondaryPsychological SecondaryStrategy = "psychological"
	SecondaryBundle        SecondaryStrategy = "bundle"
	SecondaryDynamic       SecondaryStrategy = "dynamic"
	SecondarySkimming      SecondaryStrategy = "skimming"
)

func (s SecondaryStrategy) IsValid() bool {
	switch s {
	case SecondaryPsychological, SecondaryBundle, SecondaryDynamic, SecondarySkimming:
		return true
	}
	return false
}

type Sector string

const (
	SectorSaaS          Sector = "saas"
	SectorEcommerce     Sector = "ecommerce"
	SectorServices      Sector = "services"
	SectorManufacturing Sector = "manufacturing"
	SectorFintech       Sector = "fintech"
	SectorFoodBeverage  Sector = "food_beverage"
	SectorDefault       Sector = "default"
)

func (s Sector) IsValid() bool {
	switch s {
	case SectorSaaS, SectorEcommerce, SectorServices, SectorManufacturing, SectorFintech, SectorFoodBeverage, SectorDefault, "":
		return true
	}
	return false
}

type CompanyStage string

const (
	StageIdea   CompanyStage = "idea"
	StageEarly  CompanyStage = "early"
	StageGrowth CompanyStage = "growth"
	StageMature CompanyStage = "mature"
)

func (s CompanyStage) IsValid() bool {
	switch s {
	case StageIdea, StageEarly, StageGrowth, StageMature, "":
		return true
	}
	return false
}

type StrategicGoal string

const (
	GoalQuickRevenue      StrategicGoal = "quick_revenue"
	GoalMarketEntry       StrategicGoal = "market_entry"
	GoalPremiumPosition   StrategicGoal = "premium_position"
	GoalSustainableGrowth StrategicGoal = "sustainable_growth"
	GoalTestMarket        StrategicGoal = "test_market"
)

func (g StrategicGoal) IsValid() bool {
	switch g {
	case GoalQuickRevenue, GoalMarketEntry, GoalPremiumPosition, GoalSustainableGrowth, GoalTestMarket, "":
		return true
	}
	return false
}

// Level grades qualitative inputs such as price sensitivity and differentiation.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

func (l Level) IsValid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelHigh, "":
		return true
	}
	return false
}

// CostItem is one variable cost component of a product, per unit.
type CostItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// FixedCost is a monthly expense item. Pooled fixed costs live on the snapshot;
// product-specific ones live on the product and are never pooled.
type FixedCost struct {
	Name          string  `json:"name"`
	MonthlyAmount float64 `json:"monthly_amount"`
	Category      string  `json:"category,omitempty"`
}

// QuantitySpec carries the inputs for exactly one quantity-estimation method.
// Fields for the other methods are ignored.
type QuantitySpec struct {
	Method         QuantityMethod `json:"method"`
	Value          float64        `json:"value,omitempty"`
	Min            float64        `json:"min,omitempty"`
	Max            float64        `json:"max,omitempty"`
	MaxUnits       float64        `json:"max_units,omitempty"`
	UtilizationPct float64        `json:"utilization_pct,omitempty"`
	MarketSize     float64        `json:"market_size,omitempty"`
	SharePct       float64        `json:"share_pct,omitempty"`
	History        []float64      `json:"history,omitempty"`
}

type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	CostItems        []CostItem  `json:"cost_items,omitempty"`
	UnitCostOverride float64     `json:"unit_cost_override,omitempty"`
	DirectFixedCosts []FixedCost `json:"direct_fixed_costs,omitempty"`

	Quantity QuantitySpec `json:"quantity"`

	// Pricing inputs. Strategy/MarginPct may come from the recommendation engine
	// or from a user override; either way they arrive here already resolved.
	Strategy    Strategy            `json:"strategy,omitempty"`
	MarginPct   float64             `json:"margin_pct,omitempty"`
	ManualPrice float64             `json:"manual_price,omitempty"`
	Secondary   []SecondaryStrategy `json:"secondary,omitempty"`
}

type Competitor struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// LTVInput is the per-product, monthly-granularity bundle.
type LTVInput struct {
	MonthlyNewCustomers   float64 `json:"monthly_new_customers"`
	ChurnRatePct          float64 `json:"churn_rate_pct"`
	AvgOrderValue         float64 `json:"avg_order_value"`
	PurchaseFrequency     float64 `json:"purchase_frequency"`
	GrossMarginPct        float64 `json:"gross_margin_pct"`
	MonthlyMarketingSpend float64 `json:"monthly_marketing_spend"`
}

// PortfolioInput is the annual-granularity bundle used at portfolio level.
// It is deliberately a distinct shape from LTVInput: different wizard steps feed
// different units and the two paths must not be silently unified.
type PortfolioInput struct {
	AvgPurchaseValue         float64 `json:"avg_purchase_value"`
	PurchaseFrequencyPerYear float64 `json:"purchase_frequency_per_year"`
	CustomerLifespanYears    float64 `json:"customer_lifespan_years"`
	MonthlyMarketingSpend    float64 `json:"monthly_marketing_spend"`
	NewCustomersPerMonth     float64 `json:"new_customers_per_month"`
}

// RecommendationContext feeds the advisory strategy/margin rules. BreakEvenReached
// and LTVCACRatio are derived signals; Evaluate fills them from the current pass.
type RecommendationContext struct {
	Sector           Sector        `json:"sector,omitempty"`
	Stage            CompanyStage  `json:"stage,omitempty"`
	Goal             StrategicGoal `json:"goal,omitempty"`
	PriceSensitivity Level         `json:"price_sensitivity,omitempty"`
	Differentiation  Level         `json:"differentiation,omitempty"`
	RunwayMonths     float64       `json:"runway_months,omitempty"`
	BreakEvenReached bool          `json:"break_even_reached,omitempty"`
	LTVCACRatio      float64       `json:"ltv_cac_ratio,omitempty"`
}

// Snapshot is the full business-data value handed in by the caller. The engine
// never mutates it and never retains references across calls.
type Snapshot struct {
	Products            []Product             `json:"products"`
	FixedCosts          []FixedCost           `json:"fixed_costs,omitempty"`
	Competitors         []Competitor          `json:"competitors,omitempty"`
	AllocationMethod    AllocationMethod      `json:"allocation_method,omitempty"`
	CustomAllocationPct map[string]float64    `json:"custom_allocation_pct,omitempty"`
	LTV                 map[string]LTVInput   `json:"ltv,omitempty"`
	Portfolio           *PortfolioInput       `json:"portfolio,omitempty"`
	Context             RecommendationContext `json:"context"`
}

// --- derived values ---

type AllocationResult struct {
	ProductID string  `json:"product_id"`
	Amount    float64 `json:"amount"`
	RatioPct  float64 `json:"ratio_pct"`
}

type UnitCost struct {
	UnitVariable          float64 `json:"unit_variable"`
	AllocatedFixedPerUnit float64 `json:"allocated_fixed_per_unit"`
	DirectFixedPerUnit    float64 `json:"direct_fixed_per_unit"`
	Total                 float64 `json:"total"`
}

type PricingResult struct {
	Strategy   Strategy `json:"strategy"`
	BasePrice  float64  `json:"base_price"`
	FinalPrice float64  `json:"final_price"`
}

type BreakEvenResult struct {
	ContributionMargin float64 `json:"contribution_margin"`
	Units              float64 `json:"units"`
	Revenue            float64 `json:"revenue"`
	Viable             bool    `json:"viable"`
	Reached            bool    `json:"reached"`
}

type LTVResult struct {
	LTV            float64 `json:"ltv"`
	CAC            float64 `json:"cac"`
	Ratio          float64 `json:"ratio"`
	LifetimeMonths float64 `json:"lifetime_months"`
}

type PortfolioResult struct {
	LTV   float64 `json:"ltv"`
	CAC   float64 `json:"cac"`
	Ratio float64 `json:"ratio"`
}

type Recommendation struct {
	Strategy  Strategy `json:"strategy"`
	MarginPct float64  `json:"margin_pct"`
	Rationale string   `json:"rationale"`
}

type Warning struct {
	Code      string `json:"code"`
	ProductID string `json:"product_id,omitempty"`
	Message   string `json:"message"`
}

// ProductEconomics is everything the engine derives for one product in one pass.
type ProductEconomics struct {
	ProductID       string           `json:"product_id"`
	Name            string           `json:"name"`
	MonthlyQuantity float64          `json:"monthly_quantity"`
	UnitCost        UnitCost         `json:"unit_cost"`
	Allocation      AllocationResult `json:"allocation"`
	AvgCompetitor   float64          `json:"avg_competitor_price"`
	Pricing         PricingResult    `json:"pricing"`
	BreakEven       BreakEvenResult  `json:"break_even"`
	LTV             *LTVResult       `json:"ltv,omitempty"`
}

// Evaluation is the output of one full dependency-ordered pass over a snapshot.
type Evaluation struct {
	FixedCostPool  float64            `json:"fixed_cost_pool"`
	Products       []ProductEconomics `json:"products"`
	Portfolio      *PortfolioResult   `json:"portfolio,omitempty"`
	Recommendation Recommendation     `json:"recommendation"`
	Warnings       []Warning          `json:"warnings,omitempty"`
	GeneratedAt    time.Time          `json:"generated_at"`
}
