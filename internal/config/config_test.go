package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 7090, cfg.HTTP.Port)
	assert.Equal(t, "data/synthetic_waste_management_data.csv", cfg.Dataset.Path)
	assert.Equal(t, 0.8, cfg.Costs.FuelPerKm)
	assert.Equal(t, 15.0, cfg.Costs.LaborPerHour)
	assert.Equal(t, 0.1, cfg.Costs.MaintenancePerKm)
	assert.Equal(t, 2000.0, cfg.ROI.BinCostPerRoute)
	assert.Equal(t, 0.15, cfg.ROI.AnnualSavingsFactor)
	assert.Equal(t, 2.68, cfg.Emissions.KgCO2PerKm)
	assert.Empty(t, cfg.Auth.AccessSecret)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DATASET_PATH", "/srv/data/waste.csv")
	t.Setenv("COST_FUEL_PER_KM", "1.6")
	t.Setenv("EMISSION_KG_CO2_PER_KM", "1.2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "/srv/data/waste.csv", cfg.Dataset.Path)
	assert.Equal(t, 1.6, cfg.Costs.FuelPerKm)
	assert.Equal(t, 1.2, cfg.Emissions.KgCO2PerKm)
}

func TestLoad_RejectsNegativeRates(t *testing.T) {
	t.Setenv("COST_FUEL_PER_KM", "-1")

	_, err := Load()
	require.Error(t, err)
}
