package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/wasteops-analytics/internal/chart"
	"github.com/nurpe/wasteops-analytics/internal/http/middleware"
	"github.com/nurpe/wasteops-analytics/internal/model"
	"github.com/nurpe/wasteops-analytics/internal/service"
)

type Handler struct {
	analytics *service.AnalyticsService
	log       zerolog.Logger
}

func NewHandler(analytics *service.AnalyticsService, log zerolog.Logger) *Handler {
	return &Handler{analytics: analytics, log: log}
}

// Register wires the dashboard and API routes. authMiddleware may be nil,
// in which case report exports are open.
func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	router.GET("/", h.dashboard)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.GET("/routes/summary", h.routeSummaries)
	api.GET("/scenario", h.scenario)
	api.GET("/roi", h.roi)
	api.GET("/emissions", h.emissions)
	api.GET("/chart/bubble.png", h.bubbleChart)

	reports := api.Group("/reports")
	if authMiddleware != nil {
		reports.Use(authMiddleware)
	}
	reports.POST("/export", h.exportWorkbook)
	reports.POST("/export/pdf", h.exportPDF)
}

func (h *Handler) dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"DefaultRecyclingIncreasePct": service.DefaultRecyclingIncreasePct,
		"DefaultFuelCostMultiplier":   service.DefaultFuelCostMultiplier,
	})
}

func (h *Handler) routeSummaries(c *gin.Context) {
	summaries, err := h.analytics.Summaries()
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": summaries})
}

func (h *Handler) scenario(c *gin.Context) {
	params, err := scenarioParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, applied, err := h.analytics.Scenario(params)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"params": applied, "routes": results})
}

func (h *Handler) roi(c *gin.Context) {
	results, err := h.analytics.ROI()
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": results})
}

func (h *Handler) emissions(c *gin.Context) {
	results, err := h.analytics.Emissions()
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": results})
}

func (h *Handler) bubbleChart(c *gin.Context) {
	summaries, err := h.analytics.Summaries()
	if err != nil {
		h.handleError(c, err)
		return
	}
	png, err := chart.RenderBubble(summaries)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

type exportRequest struct {
	RecyclingIncreasePct *float64 `json:"recycling_increase_pct"`
	FuelCostMultiplier   *float64 `json:"fuel_cost_multiplier"`
}

func (h *Handler) exportWorkbook(c *gin.Context) {
	params, ok := h.exportParams(c)
	if !ok {
		return
	}
	result, err := h.analytics.ExportWorkbook(params)
	if err != nil {
		h.handleError(c, err)
		return
	}

	const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentType, result.Content)
}

func (h *Handler) exportPDF(c *gin.Context) {
	params, ok := h.exportParams(c)
	if !ok {
		return
	}
	result, err := h.analytics.ExportPDF(params)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

// exportParams reads optional scenario parameters from the request body,
// falling back to the dashboard defaults. A second return of false means a
// response has already been written.
func (h *Handler) exportParams(c *gin.Context) (model.ScenarioParams, bool) {
	params := model.ScenarioParams{
		RecyclingIncreasePct: service.DefaultRecyclingIncreasePct,
		FuelCostMultiplier:   service.DefaultFuelCostMultiplier,
	}

	if c.Request.ContentLength > 0 {
		var req exportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return params, false
		}
		if req.RecyclingIncreasePct != nil {
			params.RecyclingIncreasePct = *req.RecyclingIncreasePct
		}
		if req.FuelCostMultiplier != nil {
			params.FuelCostMultiplier = *req.FuelCostMultiplier
		}
	}

	if principal, ok := middleware.PrincipalFrom(c); ok {
		h.log.Info().Str("subject", principal.Subject).Msg("report export requested")
	}
	return params, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDatasetUnavailable):
		h.log.Error().Err(err).Msg("dataset unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "dataset unavailable"})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func scenarioParams(c *gin.Context) (model.ScenarioParams, error) {
	params := model.ScenarioParams{
		RecyclingIncreasePct: service.DefaultRecyclingIncreasePct,
		FuelCostMultiplier:   service.DefaultFuelCostMultiplier,
	}

	if raw := strings.TrimSpace(c.Query("recycling_increase_pct")); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return params, errors.New("invalid recycling_increase_pct")
		}
		params.RecyclingIncreasePct = value
	}
	if raw := strings.TrimSpace(c.Query("fuel_cost_multiplier")); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return params, errors.New("invalid fuel_cost_multiplier")
		}
		params.FuelCostMultiplier = value
	}
	return params, nil
}
