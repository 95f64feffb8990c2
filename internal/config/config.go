package config

import (
	"math"
	"os"
	"strconv"
	"strings"

	"groupstat/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server     ServerConfig
	Calculator CalculatorConfig
	Import     ImportConfig
	Profiling  ProfilingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// CalculatorConfig bounds a single calculation request
type CalculatorConfig struct {
	DefaultMode       string
	MaxRows           int
	MaxTotalFrequency float64
}

// ImportConfig holds spreadsheet import settings
type ImportConfig struct {
	Sheet string
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    "8080",
			GinMode: "release",
		},
		Calculator: CalculatorConfig{
			DefaultMode:       "mean",
			MaxRows:           10000,
			MaxTotalFrequency: 1e9,
		},
		Import: ImportConfig{
			Sheet: "Sheet1",
		},
		Profiling: ProfilingConfig{
			Port:    "6060",
			Enabled: false,
		},
	}
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	def := Default()
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", def.Server.Port),
			GinMode: getEnvOrDefault("GIN_MODE", def.Server.GinMode),
		},
		Calculator: CalculatorConfig{
			DefaultMode:       strings.ToLower(getEnvOrDefault("CALC_DEFAULT_MODE", def.Calculator.DefaultMode)),
			MaxRows:           getEnvIntOrDefault("CALC_MAX_ROWS", def.Calculator.MaxRows),
			MaxTotalFrequency: getEnvFloatOrDefault("CALC_MAX_TOTAL_FREQUENCY", def.Calculator.MaxTotalFrequency),
		},
		Import: ImportConfig{
			Sheet: getEnvOrDefault("EXCEL_SHEET", def.Import.Sheet),
		},
		Profiling: ProfilingConfig{
			Port:    getEnvOrDefault("PPROF_PORT", def.Profiling.Port),
			Enabled: getEnvBoolOrDefault("PPROF_ENABLED", def.Profiling.Enabled),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT is required")
	}
	switch config.Calculator.DefaultMode {
	case "mean", "median", "mode":
	default:
		return errors.ConfigInvalid("CALC_DEFAULT_MODE must be one of mean, median, mode")
	}
	if config.Calculator.MaxRows <= 0 {
		return errors.ConfigInvalid("CALC_MAX_ROWS must be positive")
	}
	if limit := config.Calculator.MaxTotalFrequency; math.IsInf(limit, 0) || math.IsNaN(limit) || limit < 1 {
		return errors.ConfigInvalid("CALC_MAX_TOTAL_FREQUENCY must be a finite number of at least 1")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
