package analytics

import (
	"math"

	"github.com/nurpe/wasteops-analytics/internal/model"
)

// SimulateScenario projects each route summary under an increased recycling
// rate and a rescaled fuel price. recyclingIncrease is a fraction (0.2 means
// +20 percentage points), fuelMultiplier scales the per-km fuel rate. The
// function accepts any real inputs; range clamping is the HTTP layer's job.
//
// The new recycling rate is capped at 1.0. Labor and maintenance costs carry
// over unchanged. Cost per kg is computed against the adjusted waste volume
// and goes non-finite when that volume is zero.
func SimulateScenario(summaries []model.RouteSummary, recyclingIncrease, fuelMultiplier float64) []model.ScenarioResult {
	results := make([]model.ScenarioResult, 0, len(summaries))
	for _, s := range summaries {
		newRate := math.Min(s.AvgRecyclingRate+recyclingIncrease, 1.0)
		adjustedWaste := float64(s.TotalHouseholds) * s.AvgWasteKgPerDay * (1 - newRate)
		fuelCost := s.TotalDistanceKm * s.Rates.FuelPerKm * fuelMultiplier
		totalCost := fuelCost + s.TotalLaborCost + s.TotalMaintenanceCost

		results = append(results, model.ScenarioResult{
			CollectionRoute:       s.CollectionRoute,
			NewRecyclingRate:      newRate,
			AdjustedWasteKgPerDay: adjustedWaste,
			TotalFuelCost:         fuelCost,
			TotalOperationalCost:  totalCost,
			CostPerKgWaste:        model.Float(totalCost / adjustedWaste),
		})
	}
	return results
}
