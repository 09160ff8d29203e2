package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/wasteops-analytics/internal/auth"
	"github.com/nurpe/wasteops-analytics/internal/config"
	"github.com/nurpe/wasteops-analytics/internal/dataset"
	"github.com/nurpe/wasteops-analytics/internal/excel"
	httphandler "github.com/nurpe/wasteops-analytics/internal/http"
	"github.com/nurpe/wasteops-analytics/internal/http/middleware"
	"github.com/nurpe/wasteops-analytics/internal/logger"
	"github.com/nurpe/wasteops-analytics/internal/pdf"
	"github.com/nurpe/wasteops-analytics/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	cache := dataset.NewCache()
	records, hash, err := cache.Load(cfg.Dataset.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dataset")
	}
	log.Info().
		Str("path", cfg.Dataset.Path).
		Str("hash", hash[:12]).
		Int("households", len(records)).
		Msg("dataset loaded")

	analyticsService := service.NewAnalyticsService(cache, cfg, excel.NewGenerator(), pdf.NewGenerator())

	var authMiddleware gin.HandlerFunc
	if cfg.Auth.AccessSecret != "" {
		authMiddleware = middleware.Auth(auth.NewParser(cfg.Auth.AccessSecret))
	}

	handler := httphandler.NewHandler(analyticsService, log)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting waste analytics service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
