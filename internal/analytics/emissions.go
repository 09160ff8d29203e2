package analytics

import "github.com/nurpe/wasteops-analytics/internal/model"

// EstimateEmissions computes per-route carbon output as total driven
// distance times emissionPerKm (kg CO2 per km; the default rate models a
// diesel collection truck).
func EstimateEmissions(summaries []model.RouteSummary, emissionPerKm float64) []model.EmissionsResult {
	results := make([]model.EmissionsResult, 0, len(summaries))
	for _, s := range summaries {
		results = append(results, model.EmissionsResult{
			CollectionRoute: s.CollectionRoute,
			TotalDistanceKm: s.TotalDistanceKm,
			CarbonKg:        s.TotalDistanceKm * emissionPerKm,
		})
	}
	return results
}
