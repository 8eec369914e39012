package sample

import (
	"errors"
	"math"
	"testing"

	"calfit/domain/core"
)

func TestSet_Validate(t *testing.T) {
	tests := []struct {
		name    string
		set     Set
		wantErr error
	}{
		{
			name: "valid pair count",
			set:  Set{X: []float64{1, 2}, Y: []float64{3, 4}},
		},
		{
			name:    "length mismatch",
			set:     Set{X: []float64{1, 2}, Y: []float64{3}},
			wantErr: core.ErrLengthMismatch,
		},
		{
			name:    "single point",
			set:     Set{X: []float64{1}, Y: []float64{1}},
			wantErr: core.ErrInsufficientData,
		},
		{
			name:    "empty",
			set:     Set{},
			wantErr: core.ErrInsufficientData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSet_Append(t *testing.T) {
	set := NewSet(2)
	set.Append(1, 10)
	set.Append(2, 20)

	if set.Len() != 2 {
		t.Fatalf("Expected 2 pairs, got %d", set.Len())
	}
	if set.X[1] != 2 || set.Y[1] != 20 {
		t.Errorf("Pairing broken: X=%v Y=%v", set.X, set.Y)
	}
}

func TestSet_Summarize(t *testing.T) {
	set := &Set{
		X: []float64{1, 2, 3, 4},
		Y: []float64{10, 20, 30, 40},
	}

	summary, err := set.Summarize()
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}

	if summary.Count != 4 {
		t.Errorf("Expected count 4, got %d", summary.Count)
	}
	if math.Abs(summary.X.Mean-2.5) > 1e-12 {
		t.Errorf("Expected x mean 2.5, got %f", summary.X.Mean)
	}
	if summary.Y.Min != 10 || summary.Y.Max != 40 {
		t.Errorf("Unexpected y min/max: %f/%f", summary.Y.Min, summary.Y.Max)
	}
	if summary.Y.Range() != 30 {
		t.Errorf("Expected y range 30, got %f", summary.Y.Range())
	}
}

func TestSet_SummarizeInvalid(t *testing.T) {
	set := &Set{X: []float64{1}, Y: []float64{1}}
	if _, err := set.Summarize(); err == nil {
		t.Error("Expected error for undersized set")
	}
}
