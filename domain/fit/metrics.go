package fit

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// WarningCode represents structured warning types
type WarningCode string

const (
	// WarningDegenerateRange signals that all y-values are identical, so the
	// nonlinearity error denominator is zero and the metric is reported as 0.
	WarningDegenerateRange WarningCode = "DEGENERATE_RANGE"
)

// Warning is a non-fatal condition observed while deriving metrics
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

// Sensitivity is the magnitude of the fitted slope: output change per unit
// input change. Total function, no failure modes.
func Sensitivity(slope float64) float64 {
	return math.Abs(slope)
}

// NonlinearityError computes the maximum absolute residual of the fit,
// normalized by the observed y-range and expressed as a percentage.
//
// When the y-range is zero the metric is undefined; the residuals are then
// structurally constrained as well, so the function degrades to 0 with a
// degenerate-range warning instead of dividing by zero.
func NonlinearityError(x, y []float64, res Result) (float64, []Warning) {
	maxDeviation := 0.0
	for i := range x {
		if dev := math.Abs(y[i] - res.Predict(x[i])); dev > maxDeviation {
			maxDeviation = dev
		}
	}

	yMin, _ := stats.Min(y)
	yMax, _ := stats.Max(y)
	yRange := yMax - yMin

	if yRange == 0 {
		return 0, []Warning{{
			Code:    WarningDegenerateRange,
			Message: "y-values have zero range, nonlinearity error reported as 0",
		}}
	}

	return maxDeviation / yRange * 100, nil
}

// Quality carries secondary goodness-of-fit statistics for the report
type Quality struct {
	PearsonR float64 `json:"pearson_r"`
	RSquared float64 `json:"r_squared"`
}

// AssessQuality computes the Pearson correlation of the samples and the
// coefficient of determination of the fitted line
func AssessQuality(x, y []float64, res Result) Quality {
	return Quality{
		PearsonR: stat.Correlation(x, y, nil),
		RSquared: stat.RSquared(x, y, nil, res.Intercept, res.Slope),
	}
}
