package pdf

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/wasteops-analytics/internal/model"
)

func TestGenerate_PDFDocument(t *testing.T) {
	report := model.OperationalReport{
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		DatasetName: "synthetic_waste_management_data",
		Params:      model.ScenarioParams{RecyclingIncreasePct: 20, FuelCostMultiplier: 1.0},
		Summaries: []model.RouteSummary{
			{CollectionRoute: "Route_1", TotalHouseholds: 2, TotalWasteKgPerDay: 10, TotalFuelCost: 8, TotalLaborCost: 30, TotalMaintenanceCost: 1, TotalOperationalCost: 39, CostPerKgWaste: 3.9},
		},
		Scenario: []model.ScenarioResult{
			{CollectionRoute: "Route_1", NewRecyclingRate: 0.5, TotalOperationalCost: 39},
		},
		ROI: []model.ROIResult{
			{CollectionRoute: "Route_1", ExpectedAnnualSavings: 5.85, PaybackYears: model.Float(math.Inf(1))},
		},
		Emissions: []model.EmissionsResult{
			{CollectionRoute: "Route_1", CarbonKg: 26.8},
		},
	}

	content, err := NewGenerator().Generate(report)
	require.NoError(t, err)
	require.True(t, len(content) > 4)
	assert.Equal(t, "%PDF", string(content[:4]))
}
