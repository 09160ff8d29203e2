package service

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/nurpe/wasteops-analytics/internal/analytics"
	"github.com/nurpe/wasteops-analytics/internal/config"
	"github.com/nurpe/wasteops-analytics/internal/dataset"
	"github.com/nurpe/wasteops-analytics/internal/model"
)

// Dashboard slider ranges. The analytics functions accept any real inputs;
// values arriving over HTTP are clamped here.
const (
	MinRecyclingIncreasePct = 0.0
	MaxRecyclingIncreasePct = 50.0
	MinFuelCostMultiplier   = 0.5
	MaxFuelCostMultiplier   = 2.0

	DefaultRecyclingIncreasePct = 20.0
	DefaultFuelCostMultiplier   = 1.0
)

type ExcelGenerator interface {
	Generate(report model.OperationalReport) ([]byte, error)
}

type PDFGenerator interface {
	Generate(report model.OperationalReport) ([]byte, error)
}

// AnalyticsService wires the dataset cache to the pure analytics pipeline.
// The per-route aggregation is memoized by dataset hash, so every
// interaction after the first reuses the same summary table.
type AnalyticsService struct {
	data  *dataset.Cache
	path  string
	rates model.CostRates
	roi   config.ROIConfig
	co2   float64
	excel ExcelGenerator
	pdf   PDFGenerator

	mu        sync.Mutex
	hash      string
	summaries []model.RouteSummary
}

func NewAnalyticsService(data *dataset.Cache, cfg *config.Config, excel ExcelGenerator, pdf PDFGenerator) *AnalyticsService {
	return &AnalyticsService{
		data: data,
		path: cfg.Dataset.Path,
		rates: model.CostRates{
			FuelPerKm:        cfg.Costs.FuelPerKm,
			LaborPerHour:     cfg.Costs.LaborPerHour,
			MaintenancePerKm: cfg.Costs.MaintenancePerKm,
		},
		roi:   cfg.ROI,
		co2:   cfg.Emissions.KgCO2PerKm,
		excel: excel,
		pdf:   pdf,
	}
}

// Summaries returns the per-route aggregate table for the configured
// dataset. Callers must treat the returned slice as read-only.
func (s *AnalyticsService) Summaries() ([]model.RouteSummary, error) {
	records, hash, err := s.data.Load(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hash != hash {
		s.summaries = analytics.SummarizeRoutes(records, s.rates)
		s.hash = hash
	}
	return s.summaries, nil
}

// Scenario runs the what-if simulation with the given slider values,
// clamped to the dashboard ranges. NaN inputs are rejected.
func (s *AnalyticsService) Scenario(params model.ScenarioParams) ([]model.ScenarioResult, model.ScenarioParams, error) {
	if math.IsNaN(params.RecyclingIncreasePct) || math.IsNaN(params.FuelCostMultiplier) {
		return nil, params, fmt.Errorf("%w: scenario parameters must be numbers", ErrInvalidInput)
	}
	params.RecyclingIncreasePct = clamp(params.RecyclingIncreasePct, MinRecyclingIncreasePct, MaxRecyclingIncreasePct)
	params.FuelCostMultiplier = clamp(params.FuelCostMultiplier, MinFuelCostMultiplier, MaxFuelCostMultiplier)

	summaries, err := s.Summaries()
	if err != nil {
		return nil, params, err
	}
	results := analytics.SimulateScenario(summaries, params.RecyclingIncreasePct/100, params.FuelCostMultiplier)
	return results, params, nil
}

func (s *AnalyticsService) ROI() ([]model.ROIResult, error) {
	summaries, err := s.Summaries()
	if err != nil {
		return nil, err
	}
	return analytics.EstimateROI(summaries, s.roi.BinCostPerRoute, s.roi.AnnualSavingsFactor), nil
}

func (s *AnalyticsService) Emissions() ([]model.EmissionsResult, error) {
	summaries, err := s.Summaries()
	if err != nil {
		return nil, err
	}
	return analytics.EstimateEmissions(summaries, s.co2), nil
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// ExportWorkbook renders the full report as an xlsx workbook.
func (s *AnalyticsService) ExportWorkbook(params model.ScenarioParams) (*ExportResult, error) {
	report, err := s.buildReport(params)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(*report)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: s.buildFileName(*report, "xlsx"),
		Content:  content,
	}, nil
}

// ExportPDF renders the full report as a one-page PDF.
func (s *AnalyticsService) ExportPDF(params model.ScenarioParams) (*ExportResult, error) {
	report, err := s.buildReport(params)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(*report)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: s.buildFileName(*report, "pdf"),
		Content:  content,
	}, nil
}

func (s *AnalyticsService) buildReport(params model.ScenarioParams) (*model.OperationalReport, error) {
	scenario, params, err := s.Scenario(params)
	if err != nil {
		return nil, err
	}
	summaries, err := s.Summaries()
	if err != nil {
		return nil, err
	}
	roi, err := s.ROI()
	if err != nil {
		return nil, err
	}
	emissions, err := s.Emissions()
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(s.path), filepath.Ext(s.path))
	return &model.OperationalReport{
		GeneratedAt: time.Now().UTC(),
		DatasetName: name,
		Params:      params,
		Summaries:   summaries,
		Scenario:    scenario,
		ROI:         roi,
		Emissions:   emissions,
	}, nil
}

func (s *AnalyticsService) buildFileName(report model.OperationalReport, ext string) string {
	stem := sanitizeFileName(report.DatasetName)
	if stem == "" {
		stem = "dataset"
	}
	return fmt.Sprintf("waste-ops-%s-r%d-f%d.%s",
		stem,
		int(report.Params.RecyclingIncreasePct),
		int(report.Params.FuelCostMultiplier*100),
		ext,
	)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
