package sample

import (
	"calfit/domain/core"

	"github.com/montanaflynn/stats"
)

// Set holds paired measurements: X[i] is the input applied when Y[i] was
// observed. The two slices grow together through Append and must stay the
// same length.
type Set struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// NewSet creates an empty sample set with room for n pairs
func NewSet(n int) *Set {
	return &Set{
		X: make([]float64, 0, n),
		Y: make([]float64, 0, n),
	}
}

// Append adds one (x, y) pair
func (s *Set) Append(x, y float64) {
	s.X = append(s.X, x)
	s.Y = append(s.Y, y)
}

// Len returns the number of pairs
func (s *Set) Len() int {
	return len(s.X)
}

// Validate checks the pairing invariant and the minimum size for a fit
func (s *Set) Validate() error {
	if len(s.X) != len(s.Y) {
		return core.NewLengthMismatchError(len(s.X), len(s.Y))
	}
	if len(s.X) < 2 {
		return core.NewInsufficientDataError(len(s.X))
	}
	return nil
}

// AxisSummary contains summary statistics for one axis
type AxisSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Range returns Max - Min
func (a AxisSummary) Range() float64 {
	return a.Max - a.Min
}

// Summary contains per-axis statistics for a sample set
type Summary struct {
	Count int         `json:"count"`
	X     AxisSummary `json:"x"`
	Y     AxisSummary `json:"y"`
}

// Summarize computes per-axis summary statistics
func (s *Set) Summarize() (Summary, error) {
	if err := s.Validate(); err != nil {
		return Summary{}, err
	}

	xAxis, err := summarizeAxis(s.X)
	if err != nil {
		return Summary{}, err
	}
	yAxis, err := summarizeAxis(s.Y)
	if err != nil {
		return Summary{}, err
	}

	return Summary{Count: s.Len(), X: xAxis, Y: yAxis}, nil
}

func summarizeAxis(data []float64) (AxisSummary, error) {
	mean, err := stats.Mean(data)
	if err != nil {
		return AxisSummary{}, err
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return AxisSummary{}, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return AxisSummary{}, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return AxisSummary{}, err
	}

	return AxisSummary{Mean: mean, StdDev: stdDev, Min: min, Max: max}, nil
}
