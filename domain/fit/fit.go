package fit

import (
	"calfit/domain/core"
)

// Result holds the parameters of the least-squares line y = Slope*x + Intercept.
// Immutable once computed; derived deterministically from the input samples.
type Result struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// Predict evaluates the fitted line at x
func (r Result) Predict(x float64) float64 {
	return r.Slope*x + r.Intercept
}

// Residuals returns y[i] - Predict(x[i]) for every pair
func (r Result) Residuals(x, y []float64) []float64 {
	residuals := make([]float64, len(x))
	for i := range x {
		residuals[i] = y[i] - r.Predict(x[i])
	}
	return residuals
}

// Fit computes an ordinary least-squares line through the samples using the
// mean-centered closed form:
//
//	slope = sum((x_i - xMean) * (y_i - yMean)) / sum((x_i - xMean)^2)
//	intercept = yMean - slope*xMean
//
// Pure function: no side effects, repeated calls on the same input yield
// bit-identical results. Fails with core.ErrDegenerateInput when all
// x-values are identical, since the vertical-line case has no solution in
// this model.
func Fit(x, y []float64) (Result, error) {
	if len(x) != len(y) {
		return Result{}, core.NewLengthMismatchError(len(x), len(y))
	}
	if len(x) < 2 {
		return Result{}, core.NewInsufficientDataError(len(x))
	}

	n := float64(len(x))
	xMean, yMean := 0.0, 0.0
	for i := range x {
		xMean += x[i]
		yMean += y[i]
	}
	xMean /= n
	yMean /= n

	numerator, denominator := 0.0, 0.0
	for i := range x {
		dx := x[i] - xMean
		numerator += dx * (y[i] - yMean)
		denominator += dx * dx
	}

	if denominator == 0 {
		return Result{}, core.NewDegenerateInputError(len(x))
	}

	slope := numerator / denominator
	return Result{
		Slope:     slope,
		Intercept: yMean - slope*xMean,
	}, nil
}
