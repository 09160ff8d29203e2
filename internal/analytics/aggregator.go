// Package analytics holds the pure computational pipeline: per-route
// aggregation of the household dataset and the derived scenario, ROI and
// emissions tables. Nothing in here touches I/O or mutates its inputs;
// every function returns a fresh slice.
package analytics

import (
	"sort"

	"github.com/nurpe/wasteops-analytics/internal/model"
)

// SummarizeRoutes groups household records by collection route and derives
// the baseline cost and waste-density metrics. Output is sorted by route
// identifier so repeated runs over the same dataset are byte-identical.
// An empty input yields an empty (non-nil) output.
func SummarizeRoutes(records []model.HouseholdRecord, rates model.CostRates) []model.RouteSummary {
	type accumulator struct {
		households    int64
		population    int64
		wasteKg       float64
		recyclingRate float64
		lengthKm      float64
		timeHr        float64
	}

	groups := make(map[string]*accumulator)
	order := make([]string, 0)
	for _, rec := range records {
		acc, ok := groups[rec.CollectionRoute]
		if !ok {
			acc = &accumulator{}
			groups[rec.CollectionRoute] = acc
			order = append(order, rec.CollectionRoute)
		}
		acc.households++
		acc.population += rec.Population
		acc.wasteKg += rec.WasteKgPerDay
		acc.recyclingRate += rec.RecyclingRate
		acc.lengthKm += rec.RouteLengthKm
		acc.timeHr += rec.RouteTimeHr
	}
	sort.Strings(order)

	summaries := make([]model.RouteSummary, 0, len(order))
	for _, route := range order {
		acc := groups[route]
		n := float64(acc.households)

		s := model.RouteSummary{
			CollectionRoute:  route,
			TotalHouseholds:  acc.households,
			TotalPopulation:  acc.population,
			AvgWasteKgPerDay: acc.wasteKg / n,
			AvgRecyclingRate: acc.recyclingRate / n,
			AvgRouteLengthKm: acc.lengthKm / n,
			AvgRouteTimeHr:   acc.timeHr / n,
			TotalDistanceKm:  acc.lengthKm,
			TotalTimeHr:      acc.timeHr,
			Rates:            rates,
		}

		s.TotalFuelCost = s.TotalDistanceKm * rates.FuelPerKm
		s.TotalLaborCost = s.TotalTimeHr * rates.LaborPerHour
		s.TotalMaintenanceCost = s.TotalDistanceKm * rates.MaintenancePerKm
		s.TotalOperationalCost = s.TotalFuelCost + s.TotalLaborCost + s.TotalMaintenanceCost

		// Household count times the per-household mean, not a true sum.
		// Carried from the upstream data generation.
		s.TotalWasteKgPerDay = n * s.AvgWasteKgPerDay
		s.CostPerKgWaste = model.Float(s.TotalOperationalCost / s.TotalWasteKgPerDay)

		summaries = append(summaries, s)
	}
	return summaries
}
