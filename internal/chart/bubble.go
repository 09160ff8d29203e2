// Package chart renders the dashboard's bubble plot server-side.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/nurpe/wasteops-analytics/internal/model"
)

const (
	minRadius = vg.Length(5)
	maxRadius = vg.Length(20)
)

// RenderBubble draws operational cost against daily waste volume, one
// bubble per route. Bubble area tracks household count and color shades
// from red (low recycling rate) to green (high).
func RenderBubble(summaries []model.RouteSummary) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Operational Cost vs Waste Generated"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Total Waste Generated per Day (kg)"
	p.Y.Label.Text = "Total Operational Cost ($)"
	p.Add(plotter.NewGrid())

	maxHouseholds := int64(1)
	for _, s := range summaries {
		if s.TotalHouseholds > maxHouseholds {
			maxHouseholds = s.TotalHouseholds
		}
	}

	points := make(plotter.XYs, len(summaries))
	labels := make([]string, len(summaries))
	for i, s := range summaries {
		points[i].X = s.TotalWasteKgPerDay
		points[i].Y = s.TotalOperationalCost
		labels[i] = s.CollectionRoute

		bubble, err := plotter.NewScatter(plotter.XYs{points[i]})
		if err != nil {
			return nil, fmt.Errorf("bubble for %s: %w", s.CollectionRoute, err)
		}
		bubble.GlyphStyle.Shape = draw.CircleGlyph{}
		bubble.GlyphStyle.Radius = bubbleRadius(s.TotalHouseholds, maxHouseholds)
		bubble.GlyphStyle.Color = recyclingColor(s.AvgRecyclingRate)
		p.Add(bubble)
	}

	if len(points) > 0 {
		routeLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: labels})
		if err != nil {
			return nil, fmt.Errorf("route labels: %w", err)
		}
		p.Add(routeLabels)
	}

	writer, err := p.WriterTo(9*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// bubbleRadius scales by the square root of the household count so bubble
// area, not diameter, tracks the value.
func bubbleRadius(households, maxHouseholds int64) vg.Length {
	if households <= 0 {
		return minRadius
	}
	scale := math.Sqrt(float64(households) / float64(maxHouseholds))
	return minRadius + vg.Length(scale)*(maxRadius-minRadius)
}

// recyclingColor interpolates red (rate 0) through yellow to green (rate 1).
func recyclingColor(rate float64) color.Color {
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	if rate < 0.5 {
		t := rate / 0.5
		return color.RGBA{R: 214, G: uint8(40 + t*150), B: 40, A: 220}
	}
	t := (rate - 0.5) / 0.5
	return color.RGBA{R: uint8(214 - t*180), G: 190, B: 40, A: 220}
}
