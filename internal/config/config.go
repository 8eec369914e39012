package config

import (
	"os"
	"strconv"

	"calfit/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Output OutputConfig
	Chart  ChartConfig
	Report ReportConfig
}

// OutputConfig holds output path settings
type OutputConfig struct {
	Dir string
}

// ChartConfig holds chart rendering settings. These are presentation
// concerns and never reach the fitting core.
type ChartConfig struct {
	Width  int
	Height int
}

// ReportConfig holds console report formatting settings
type ReportConfig struct {
	// ValuePrecision is the number of decimals for slope, intercept and
	// sensitivity; ErrorPrecision for the nonlinearity-error percentage.
	ValuePrecision int
	ErrorPrecision int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Output: OutputConfig{Dir: getEnv("CALFIT_OUTPUT_DIR", "output")},
		Chart: ChartConfig{
			Width:  1000,
			Height: 600,
		},
		Report: ReportConfig{
			ValuePrecision: 6,
			ErrorPrecision: 2,
		},
	}

	var err error
	if config.Chart.Width, err = getEnvInt("CALFIT_CHART_WIDTH", config.Chart.Width); err != nil {
		return nil, err
	}
	if config.Chart.Height, err = getEnvInt("CALFIT_CHART_HEIGHT", config.Chart.Height); err != nil {
		return nil, err
	}
	if config.Report.ValuePrecision, err = getEnvInt("CALFIT_VALUE_PRECISION", config.Report.ValuePrecision); err != nil {
		return nil, err
	}
	if config.Report.ErrorPrecision, err = getEnvInt("CALFIT_ERROR_PRECISION", config.Report.ErrorPrecision); err != nil {
		return nil, err
	}

	if config.Chart.Width <= 0 || config.Chart.Height <= 0 {
		return nil, errors.ConfigInvalid("chart dimensions must be positive")
	}
	if config.Report.ValuePrecision < 0 || config.Report.ErrorPrecision < 0 {
		return nil, errors.ConfigInvalid("report precision cannot be negative")
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be an integer")
	}
	return parsed, nil
}
