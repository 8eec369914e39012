package fit

import (
	"math"
	"testing"
)

func TestSensitivity(t *testing.T) {
	tests := []struct {
		slope float64
		want  float64
	}{
		{slope: -3.5, want: 3.5},
		{slope: 2.0, want: 2.0},
		{slope: 0, want: 0},
	}

	for _, tt := range tests {
		if got := Sensitivity(tt.slope); got != tt.want {
			t.Errorf("Sensitivity(%f) = %f, want %f", tt.slope, got, tt.want)
		}
	}
}

func TestNonlinearityError_ExactFit(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{2, 4, 6}
	res, err := Fit(x, y)
	if err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}

	nle, warnings := NonlinearityError(x, y, res)
	if nle != 0 {
		t.Errorf("Expected 0 nonlinearity error for exact fit, got %f", nle)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
}

func TestNonlinearityError_Positive(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 0, 10}
	res, err := Fit(x, y)
	if err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}

	nle, warnings := NonlinearityError(x, y, res)
	if nle <= 0 {
		t.Errorf("Expected positive nonlinearity error, got %f", nle)
	}
	if nle > 100 {
		t.Errorf("Nonlinearity error exceeds 100%%: %f", nle)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
}

func TestNonlinearityError_XScaleInvariant(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 0, 10}

	scaled := make([]float64, len(x))
	for i, v := range x {
		scaled[i] = v * 1000
	}

	resA, err := Fit(x, y)
	if err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}
	resB, err := Fit(scaled, y)
	if err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}

	// The metric is normalized by the y-range, so the unit scale of x must
	// not affect it
	nleA, _ := NonlinearityError(x, y, resA)
	nleB, _ := NonlinearityError(scaled, y, resB)
	if math.Abs(nleA-nleB) > 1e-9 {
		t.Errorf("Nonlinearity error changed under x scaling: %f vs %f", nleA, nleB)
	}
}

func TestNonlinearityError_DegenerateRange(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{5, 5, 5}
	res, err := Fit(x, y)
	if err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}

	nle, warnings := NonlinearityError(x, y, res)
	if nle != 0 {
		t.Errorf("Expected 0 for degenerate y-range, got %f", nle)
	}
	if len(warnings) != 1 || warnings[0].Code != WarningDegenerateRange {
		t.Fatalf("Expected a DEGENERATE_RANGE warning, got %v", warnings)
	}
}

func TestAssessQuality_PerfectLine(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{3, 5, 7, 9}
	res, err := Fit(x, y)
	if err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}

	q := AssessQuality(x, y, res)
	if math.Abs(q.PearsonR-1) > 1e-9 {
		t.Errorf("Expected Pearson r ~1, got %f", q.PearsonR)
	}
	if math.Abs(q.RSquared-1) > 1e-9 {
		t.Errorf("Expected R-squared ~1, got %f", q.RSquared)
	}
}
