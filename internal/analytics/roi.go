package analytics

import "github.com/nurpe/wasteops-analytics/internal/model"

// EstimateROI computes the smart-bin payback period per route: a fixed
// investment of binCostPerRoute recovered from annual savings equal to
// savingsFactor of the route's operational cost. Zero savings yields a
// non-finite payback, passed through to the display.
func EstimateROI(summaries []model.RouteSummary, binCostPerRoute, savingsFactor float64) []model.ROIResult {
	results := make([]model.ROIResult, 0, len(summaries))
	for _, s := range summaries {
		savings := s.TotalOperationalCost * savingsFactor
		results = append(results, model.ROIResult{
			CollectionRoute:       s.CollectionRoute,
			TotalOperationalCost:  s.TotalOperationalCost,
			ExpectedAnnualSavings: savings,
			PaybackYears:          model.Float(binCostPerRoute / savings),
		})
	}
	return results
}
