package model

// HouseholdRecord is one row of the input dataset. Records are read-only:
// the loader builds the slice once and nothing downstream mutates it.
type HouseholdRecord struct {
	HouseholdID     string  `json:"household_id"`
	CollectionRoute string  `json:"collection_route"`
	Population      int64   `json:"population"`
	WasteKgPerDay   float64 `json:"waste_gen_kg_per_day"`
	RecyclingRate   float64 `json:"recycling_rate"`
	RouteLengthKm   float64 `json:"route_length_km"`
	RouteTimeHr     float64 `json:"route_time_hr"`
}
