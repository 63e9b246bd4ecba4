package engine

// SectorProfile carries the sector-level defaults the recommendation rules
// start from. Baseline margins reflect typical gross-margin structures per
// sector; they are starting points, not targets.
type SectorProfile struct {
	Sector            Sector
	BaselineMarginPct float64
	DefaultStrategy   Strategy
}

var defaultProfiles = map[Sector]SectorProfile{
	SectorSaaS: {
		Sector:            SectorSaaS,
		BaselineMarginPct: 70,
		DefaultStrategy:   StrategyValueBased,
	},
	SectorFintech: {
		Sector:            SectorFintech,
		BaselineMarginPct: 60,
		DefaultStrategy:   StrategyValueBased,
	},
	SectorServices: {
		Sector:            SectorServices,
		BaselineMarginPct: 45,
		DefaultStrategy:   StrategyCostPlus,
	},
	SectorFoodBeverage: {
		Sector:            SectorFoodBeverage,
		BaselineMarginPct: 55,
		DefaultStrategy:   StrategyCostPlus,
	},
	SectorManufacturing: {
		Sector:            SectorManufacturing,
		BaselineMarginPct: 30,
		DefaultStrategy:   StrategyCostPlus,
	},
	SectorEcommerce: {
		Sector:            SectorEcommerce,
		BaselineMarginPct: 25,
		DefaultStrategy:   StrategyCompetitive,
	},
	SectorDefault: {
		Sector:            SectorDefault,
		BaselineMarginPct: 40,
		DefaultStrategy:   StrategyCompetitive,
	},
}

// ProfileForSector returns the profile for a sector, falling back to the
// default profile for unknown or empty sectors.
func ProfileForSector(sector Sector) SectorProfile {
	if p, ok := defaultProfiles[sector]; ok {
		return p
	}
	return defaultProfiles[SectorDefault]
}
