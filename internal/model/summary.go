package model

// CostRates are the per-unit operating costs attached to every route summary.
type CostRates struct {
	FuelPerKm        float64 `json:"fuel_cost_per_km"`
	LaborPerHour     float64 `json:"labor_cost_per_hour"`
	MaintenancePerKm float64 `json:"maintenance_cost_per_km"`
}

// RouteSummary is the per-route aggregate, one row per distinct
// collection_route value in the input.
type RouteSummary struct {
	CollectionRoute  string  `json:"collection_route"`
	TotalHouseholds  int64   `json:"total_households"`
	TotalPopulation  int64   `json:"total_population"`
	AvgWasteKgPerDay float64 `json:"avg_waste_kg_per_day"`
	AvgRecyclingRate float64 `json:"avg_recycling_rate"`
	AvgRouteLengthKm float64 `json:"avg_route_length_km"`
	AvgRouteTimeHr   float64 `json:"avg_route_time_hr"`
	TotalDistanceKm  float64 `json:"total_distance_km"`
	TotalTimeHr      float64 `json:"total_time_hr"`

	Rates CostRates `json:"rates"`

	TotalFuelCost        float64 `json:"total_fuel_cost"`
	TotalLaborCost       float64 `json:"total_labor_cost"`
	TotalMaintenanceCost float64 `json:"total_maintenance_cost"`
	TotalOperationalCost float64 `json:"total_operational_cost"`

	// Total waste is household count times the per-household mean, an
	// approximation inherited from the upstream data generation.
	TotalWasteKgPerDay float64 `json:"total_waste_kg_per_day"`
	CostPerKgWaste     Float   `json:"cost_per_kg_waste"`
}
