package model

import "time"

// ScenarioParams are the two interactive inputs of the dashboard.
// The percentage is the slider value (0-50), not a fraction.
type ScenarioParams struct {
	RecyclingIncreasePct float64 `json:"recycling_increase_pct"`
	FuelCostMultiplier   float64 `json:"fuel_cost_multiplier"`
}

// ScenarioResult is the what-if projection for one route.
type ScenarioResult struct {
	CollectionRoute       string  `json:"collection_route"`
	NewRecyclingRate      float64 `json:"new_recycling_rate"`
	AdjustedWasteKgPerDay float64 `json:"adjusted_waste_kg_per_day"`
	TotalFuelCost         float64 `json:"total_fuel_cost"`
	TotalOperationalCost  float64 `json:"total_operational_cost"`
	CostPerKgWaste        Float   `json:"cost_per_kg_waste"`
}

// ROIResult is the smart-bin payback estimate for one route.
type ROIResult struct {
	CollectionRoute       string  `json:"collection_route"`
	TotalOperationalCost  float64 `json:"total_operational_cost"`
	ExpectedAnnualSavings float64 `json:"expected_annual_savings"`
	PaybackYears          Float   `json:"payback_years"`
}

// EmissionsResult is the per-route carbon estimate.
type EmissionsResult struct {
	CollectionRoute string  `json:"collection_route"`
	TotalDistanceKm float64 `json:"total_distance_km"`
	CarbonKg        float64 `json:"carbon_emission_kg"`
}

// OperationalReport bundles every computed table for the export generators.
type OperationalReport struct {
	GeneratedAt time.Time
	DatasetName string
	Params      ScenarioParams
	Summaries   []RouteSummary
	Scenario    []ScenarioResult
	ROI         []ROIResult
	Emissions   []EmissionsResult
}
