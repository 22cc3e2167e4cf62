package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-chemsp/internal/testutil"
)

func TestCalculateEmpty(t *testing.T) {
	if s := Calculate(nil); s != (Stats{}) {
		t.Fatalf("Calculate(nil) = %+v, want zero", s)
	}
}

func TestCalculateBasic(t *testing.T) {
	s := Calculate([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{name: "mean", got: s.Mean, want: 5},
		{name: "variance", got: s.Variance, want: 4},
		{name: "stddev", got: s.StdDev, want: 2},
		{name: "range", got: s.Range, want: 7},
		{name: "sumsquare", got: s.SumSquare, want: 232},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-12 {
				t.Fatalf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}

	if s.MinIndex != 0 || s.MaxIndex != 7 {
		t.Fatalf("min/max index = %d/%d, want 0/7", s.MinIndex, s.MaxIndex)
	}
}

func TestSymmetricSignalHasZeroSkew(t *testing.T) {
	s := Calculate([]float64{-2, -1, 0, 1, 2})
	if math.Abs(s.Skewness) > 1e-12 {
		t.Fatalf("skewness = %v, want 0", s.Skewness)
	}
	// Discrete uniform on 5 points: excess kurtosis = -1.3.
	if math.Abs(s.Kurtosis+1.3) > 1e-12 {
		t.Fatalf("kurtosis = %v, want -1.3", s.Kurtosis)
	}
}

func TestStandardize(t *testing.T) {
	z := Standardize([]float64{1, 2, 3})
	s := Calculate(z)
	if math.Abs(s.Mean) > 1e-12 || math.Abs(s.StdDev-1) > 1e-12 {
		t.Fatalf("standardized mean/std = %v/%v", s.Mean, s.StdDev)
	}

	testutil.RequireSliceNearlyEqual(t, Standardize(testutil.Constant(4, 3)), []float64{0, 0, 0}, 0)
}
