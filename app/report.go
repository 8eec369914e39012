package app

import (
	"fmt"
	"strings"

	"calfit/internal/config"
)

// Format renders the report for the console at the configured precision
func (r *Report) Format(cfg config.ReportConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Least-squares fit results for %s:\n", r.Source)
	fmt.Fprintf(&b, "  Samples:            %d\n", r.SampleCount)
	fmt.Fprintf(&b, "  Slope (k):          %.*f\n", cfg.ValuePrecision, r.Fit.Slope)
	fmt.Fprintf(&b, "  Intercept (b):      %.*f\n", cfg.ValuePrecision, r.Fit.Intercept)
	fmt.Fprintf(&b, "  Sensitivity:        %.*f\n", cfg.ValuePrecision, r.Sensitivity)
	fmt.Fprintf(&b, "  Nonlinearity error: %.*f%%\n", cfg.ErrorPrecision, r.NonlinearityError)
	fmt.Fprintf(&b, "  Pearson r:          %.4f\n", r.Quality.PearsonR)
	fmt.Fprintf(&b, "  R-squared:          %.4f\n", r.Quality.RSquared)

	if r.ChartPath != "" {
		fmt.Fprintf(&b, "  Chart:              %s\n", r.ChartPath)
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "  Warning:            %s\n", w)
	}

	return b.String()
}
