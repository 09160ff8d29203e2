package pdf

import (
	"bytes"
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/wasteops-analytics/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// Generate renders the operational report as a landscape A4 document: the
// scenario parameters, the per-route cost table and the ROI/emissions table.
func (g *Generator) Generate(report model.OperationalReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Waste Collection Operations Report", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Dataset: %s", report.DatasetName), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Scenario parameters", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Recycling rate increase: +%.0f%%   Fuel cost multiplier: x%.2f",
		report.Params.RecyclingIncreasePct, report.Params.FuelCostMultiplier), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Per-route operational costs", "", 1, "L", false, 0, "")

	costHeaders := []string{"Route", "Households", "Waste, kg/day", "Fuel", "Labor", "Maintenance", "Total", "Cost per kg"}
	costWidths := []float64{40, 26, 32, 30, 30, 32, 32, 30}
	drawTableRow(pdf, g.fontName, costHeaders, costWidths, true)
	for _, s := range report.Summaries {
		drawTableRow(pdf, g.fontName, []string{
			s.CollectionRoute,
			fmt.Sprintf("%d", s.TotalHouseholds),
			formatAmount(s.TotalWasteKgPerDay, 1),
			formatAmount(s.TotalFuelCost, 2),
			formatAmount(s.TotalLaborCost, 2),
			formatAmount(s.TotalMaintenanceCost, 2),
			formatAmount(s.TotalOperationalCost, 2),
			formatAmount(float64(s.CostPerKgWaste), 2),
		}, costWidths, false)
	}
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Scenario, ROI and emissions", "", 1, "L", false, 0, "")

	projHeaders := []string{"Route", "New recycling", "Adjusted cost", "Annual savings", "Payback, years", "Carbon, kg CO2"}
	projWidths := []float64{40, 36, 40, 40, 40, 40}
	drawTableRow(pdf, g.fontName, projHeaders, projWidths, true)
	for i, sc := range report.Scenario {
		row := []string{
			sc.CollectionRoute,
			fmt.Sprintf("%.1f%%", sc.NewRecyclingRate*100),
			formatAmount(sc.TotalOperationalCost, 2),
			"", "", "",
		}
		if i < len(report.ROI) {
			row[3] = formatAmount(report.ROI[i].ExpectedAnnualSavings, 2)
			row[4] = formatAmount(float64(report.ROI[i].PaybackYears), 2)
		}
		if i < len(report.Emissions) {
			row[5] = formatAmount(report.Emissions[i].CarbonKg, 2)
		}
		drawTableRow(pdf, g.fontName, row, projWidths, false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func formatAmount(value float64, precision int) string {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return fmt.Sprint(value)
	}
	return fmt.Sprintf("%.*f", precision, value)
}
