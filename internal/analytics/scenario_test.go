package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/wasteops-analytics/internal/model"
)

func baseSummaries(t *testing.T) []model.RouteSummary {
	t.Helper()
	records := []model.HouseholdRecord{
		{HouseholdID: "H-1", CollectionRoute: "Route_1", WasteKgPerDay: 4, RecyclingRate: 0.2, RouteLengthKm: 5, RouteTimeHr: 1},
		{HouseholdID: "H-2", CollectionRoute: "Route_1", WasteKgPerDay: 6, RecyclingRate: 0.4, RouteLengthKm: 5, RouteTimeHr: 1},
		{HouseholdID: "H-3", CollectionRoute: "Route_2", WasteKgPerDay: 3, RecyclingRate: 0.5, RouteLengthKm: 8, RouteTimeHr: 1.5},
	}
	return SummarizeRoutes(records, testRates)
}

func TestSimulateScenario_DefaultsReproduceBaseCost(t *testing.T) {
	summaries := baseSummaries(t)

	results := SimulateScenario(summaries, 0, 1.0)
	require.Len(t, results, len(summaries))
	for i, r := range results {
		assert.Equal(t, summaries[i].TotalOperationalCost, r.TotalOperationalCost, "route %s", r.CollectionRoute)
		assert.Equal(t, summaries[i].TotalFuelCost, r.TotalFuelCost, "route %s", r.CollectionRoute)
	}
}

func TestSimulateScenario_RecyclingRateCap(t *testing.T) {
	summaries := baseSummaries(t)

	tests := []struct {
		name     string
		increase float64
		wantRate float64
	}{
		{"partial increase", 0.2, 0.5},
		{"exact cap", 0.7, 1.0},
		{"full increase capped", 1.0, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Route_1 mean rate is 0.3.
			results := SimulateScenario(summaries[:1], tt.increase, 1.0)
			require.Len(t, results, 1)
			if tt.wantRate == 1.0 {
				// The cap must bind exactly, not approximately.
				assert.Equal(t, 1.0, results[0].NewRecyclingRate)
			} else {
				assert.InDelta(t, tt.wantRate, results[0].NewRecyclingRate, 1e-9)
			}
		})
	}
}

func TestSimulateScenario_AdjustedWasteUsesNewRate(t *testing.T) {
	summaries := baseSummaries(t)

	// Route_1: 2 households, mean 5 kg/day, new rate 0.3 + 0.2 = 0.5.
	results := SimulateScenario(summaries[:1], 0.2, 1.0)
	require.Len(t, results, 1)
	assert.InDelta(t, 2*5*(1-0.5), results[0].AdjustedWasteKgPerDay, 1e-9)
}

func TestSimulateScenario_FuelMultiplierScalesOnlyFuel(t *testing.T) {
	summaries := baseSummaries(t)

	results := SimulateScenario(summaries, 0, 2.0)
	for i, r := range results {
		base := summaries[i]
		assert.InDelta(t, 2*base.TotalFuelCost, r.TotalFuelCost, 1e-9)
		assert.InDelta(t, 2*base.TotalFuelCost+base.TotalLaborCost+base.TotalMaintenanceCost, r.TotalOperationalCost, 1e-9)
	}
}

func TestSimulateScenario_FullRecyclingYieldsNonFiniteCostPerKg(t *testing.T) {
	summaries := baseSummaries(t)

	results := SimulateScenario(summaries, 1.0, 1.0)
	for _, r := range results {
		assert.Zero(t, r.AdjustedWasteKgPerDay)
		assert.True(t, math.IsInf(float64(r.CostPerKgWaste), 1), "route %s", r.CollectionRoute)
	}
}

func TestSimulateScenario_AcceptsOutOfUIRangeInputs(t *testing.T) {
	summaries := baseSummaries(t)

	// No clamping at this layer: a negative increase lowers the rate.
	results := SimulateScenario(summaries[:1], -0.1, 3.0)
	require.Len(t, results, 1)
	assert.InDelta(t, 0.2, results[0].NewRecyclingRate, 1e-9)
	assert.InDelta(t, 3*summaries[0].TotalFuelCost, results[0].TotalFuelCost, 1e-9)
}
