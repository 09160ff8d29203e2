package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/wasteops-analytics/internal/model"
)

func TestRenderBubble(t *testing.T) {
	summaries := []model.RouteSummary{
		{CollectionRoute: "Route_1", TotalHouseholds: 6, AvgRecyclingRate: 0.25, TotalWasteKgPerDay: 22.5, TotalOperationalCost: 120},
		{CollectionRoute: "Route_2", TotalHouseholds: 3, AvgRecyclingRate: 0.60, TotalWasteKgPerDay: 9.8, TotalOperationalCost: 85},
	}

	png, err := RenderBubble(summaries)
	require.NoError(t, err)
	require.True(t, len(png) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestRenderBubble_EmptyInput(t *testing.T) {
	png, err := RenderBubble(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestBubbleRadius_Bounds(t *testing.T) {
	assert.Equal(t, maxRadius, bubbleRadius(10, 10))
	assert.Equal(t, minRadius, bubbleRadius(0, 10))
	between := bubbleRadius(5, 10)
	assert.Greater(t, float64(between), float64(minRadius))
	assert.Less(t, float64(between), float64(maxRadius))
}
