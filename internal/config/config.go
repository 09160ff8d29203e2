package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DatasetConfig struct {
	Path string
}

// CostConfig holds the fixed per-unit operating costs attached to every
// route summary.
type CostConfig struct {
	FuelPerKm        float64
	LaborPerHour     float64
	MaintenancePerKm float64
}

// ROIConfig holds the smart-bin investment constants. These are not
// exposed on the dashboard.
type ROIConfig struct {
	BinCostPerRoute     float64
	AnnualSavingsFactor float64
}

type EmissionsConfig struct {
	// kg CO2 per driven km; the default models a diesel collection truck.
	KgCO2PerKm float64
}

type AuthConfig struct {
	// Optional. When set, report export routes require a bearer token.
	AccessSecret string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	Dataset     DatasetConfig
	Costs       CostConfig
	ROI         ROIConfig
	Emissions   EmissionsConfig
	Auth        AuthConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		Dataset: DatasetConfig{
			Path: v.GetString("DATASET_PATH"),
		},
		Costs: CostConfig{
			FuelPerKm:        v.GetFloat64("COST_FUEL_PER_KM"),
			LaborPerHour:     v.GetFloat64("COST_LABOR_PER_HOUR"),
			MaintenancePerKm: v.GetFloat64("COST_MAINTENANCE_PER_KM"),
		},
		ROI: ROIConfig{
			BinCostPerRoute:     v.GetFloat64("ROI_BIN_COST_PER_ROUTE"),
			AnnualSavingsFactor: v.GetFloat64("ROI_ANNUAL_SAVINGS_FACTOR"),
		},
		Emissions: EmissionsConfig{
			KgCO2PerKm: v.GetFloat64("EMISSION_KG_CO2_PER_KM"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if cfg.Dataset.Path == "" {
		cfg.Dataset.Path = "data/synthetic_waste_management_data.csv"
	}
	if cfg.Costs.FuelPerKm == 0 {
		cfg.Costs.FuelPerKm = 0.8
	}
	if cfg.Costs.LaborPerHour == 0 {
		cfg.Costs.LaborPerHour = 15
	}
	if cfg.Costs.MaintenancePerKm == 0 {
		cfg.Costs.MaintenancePerKm = 0.1
	}
	if cfg.ROI.BinCostPerRoute == 0 {
		cfg.ROI.BinCostPerRoute = 2000
	}
	if cfg.ROI.AnnualSavingsFactor == 0 {
		cfg.ROI.AnnualSavingsFactor = 0.15
	}
	if cfg.Emissions.KgCO2PerKm == 0 {
		cfg.Emissions.KgCO2PerKm = 2.68
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Costs.FuelPerKm < 0 || cfg.Costs.LaborPerHour < 0 || cfg.Costs.MaintenancePerKm < 0 {
		return fmt.Errorf("unit costs must not be negative")
	}
	if cfg.ROI.AnnualSavingsFactor < 0 {
		return fmt.Errorf("ROI_ANNUAL_SAVINGS_FACTOR must not be negative")
	}
	if cfg.Emissions.KgCO2PerKm < 0 {
		return fmt.Errorf("EMISSION_KG_CO2_PER_KM must not be negative")
	}
	return nil
}
