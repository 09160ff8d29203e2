package excel

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/wasteops-analytics/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds a workbook with one sheet per computed table: the base
// route summary, the scenario projection, the smart-bin ROI estimate and
// the carbon emissions.
func (g *Generator) Generate(report model.OperationalReport) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}

	sheets := []struct {
		name  string
		write func(*excelize.File, string, model.OperationalReport) error
	}{
		{"Scenario", g.writeScenario},
		{"ROI", g.writeROI},
		{"Emissions", g.writeEmissions},
	}
	for _, sheet := range sheets {
		if _, err := file.NewSheet(sheet.name); err != nil {
			return nil, err
		}
		if err := sheet.write(file, sheet.name, report); err != nil {
			return nil, err
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report model.OperationalReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Dataset")
	set("B1", report.DatasetName)
	set("A2", "Generated at")
	set("B2", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	set("A3", "Routes")
	set("B3", len(report.Summaries))

	headers := []string{
		"Route",
		"Households",
		"Population",
		"Avg waste, kg/day",
		"Avg recycling rate",
		"Total distance, km",
		"Total time, hr",
		"Fuel cost",
		"Labor cost",
		"Maintenance cost",
		"Operational cost",
		"Total waste, kg/day",
		"Cost per kg",
	}
	tableRow := 5
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, s := range report.Summaries {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), s.CollectionRoute)
		set(fmt.Sprintf("B%d", row), s.TotalHouseholds)
		set(fmt.Sprintf("C%d", row), s.TotalPopulation)
		set(fmt.Sprintf("D%d", row), formatFloat(s.AvgWasteKgPerDay, 2))
		set(fmt.Sprintf("E%d", row), formatPercent(s.AvgRecyclingRate))
		set(fmt.Sprintf("F%d", row), formatFloat(s.TotalDistanceKm, 1))
		set(fmt.Sprintf("G%d", row), formatFloat(s.TotalTimeHr, 1))
		set(fmt.Sprintf("H%d", row), formatCurrency(s.TotalFuelCost))
		set(fmt.Sprintf("I%d", row), formatCurrency(s.TotalLaborCost))
		set(fmt.Sprintf("J%d", row), formatCurrency(s.TotalMaintenanceCost))
		set(fmt.Sprintf("K%d", row), formatCurrency(s.TotalOperationalCost))
		set(fmt.Sprintf("L%d", row), formatFloat(s.TotalWasteKgPerDay, 1))
		set(fmt.Sprintf("M%d", row), formatCurrency(float64(s.CostPerKgWaste)))
	}

	_ = file.SetColWidth(sheet, "A", "A", 18)
	_ = file.SetColWidth(sheet, "B", "M", 16)
	return nil
}

func (g *Generator) writeScenario(file *excelize.File, sheet string, report model.OperationalReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Recycling increase, %")
	set("B1", formatFloat(report.Params.RecyclingIncreasePct, 0))
	set("A2", "Fuel cost multiplier")
	set("B2", formatFloat(report.Params.FuelCostMultiplier, 2))

	headers := []string{
		"Route",
		"New recycling rate",
		"Adjusted waste, kg/day",
		"Fuel cost",
		"Operational cost",
		"Cost per kg",
	}
	tableRow := 4
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, r := range report.Scenario {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), r.CollectionRoute)
		set(fmt.Sprintf("B%d", row), formatPercent(r.NewRecyclingRate))
		set(fmt.Sprintf("C%d", row), formatFloat(r.AdjustedWasteKgPerDay, 1))
		set(fmt.Sprintf("D%d", row), formatCurrency(r.TotalFuelCost))
		set(fmt.Sprintf("E%d", row), formatCurrency(r.TotalOperationalCost))
		set(fmt.Sprintf("F%d", row), formatCurrency(float64(r.CostPerKgWaste)))
	}

	_ = file.SetColWidth(sheet, "A", "A", 18)
	_ = file.SetColWidth(sheet, "B", "F", 20)
	return nil
}

func (g *Generator) writeROI(file *excelize.File, sheet string, report model.OperationalReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Route",
		"Operational cost",
		"Expected annual savings",
		"Payback, years",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, r := range report.ROI {
		row := 2 + i
		set(fmt.Sprintf("A%d", row), r.CollectionRoute)
		set(fmt.Sprintf("B%d", row), formatCurrency(r.TotalOperationalCost))
		set(fmt.Sprintf("C%d", row), formatCurrency(r.ExpectedAnnualSavings))
		set(fmt.Sprintf("D%d", row), formatFloat(float64(r.PaybackYears), 2))
	}

	_ = file.SetColWidth(sheet, "A", "A", 18)
	_ = file.SetColWidth(sheet, "B", "D", 24)
	return nil
}

func (g *Generator) writeEmissions(file *excelize.File, sheet string, report model.OperationalReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Route",
		"Total distance, km",
		"Carbon emission, kg CO2",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, r := range report.Emissions {
		row := 2 + i
		set(fmt.Sprintf("A%d", row), r.CollectionRoute)
		set(fmt.Sprintf("B%d", row), formatFloat(r.TotalDistanceKm, 1))
		set(fmt.Sprintf("C%d", row), formatFloat(r.CarbonKg, 2))
	}

	_ = file.SetColWidth(sheet, "A", "A", 18)
	_ = file.SetColWidth(sheet, "B", "C", 24)
	return nil
}

// Non-finite values print as Go renders them ("+Inf", "NaN"), unflagged.
func formatCurrency(value float64) string {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return fmt.Sprint(value)
	}
	return fmt.Sprintf("$%.2f", value)
}

func formatFloat(value float64, precision int) string {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return fmt.Sprint(value)
	}
	return fmt.Sprintf("%.*f", precision, value)
}

func formatPercent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}
