package gft

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-chemsp/internal/testutil"
)

func TestFilterIdentity(t *testing.T) {
	b := moleculeBasis(t, 8)
	signal := testutil.DeterministicNoise(1, 1, 8)

	out, err := Filter(b, signal, Identity())
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, signal, 1e-10)
}

func TestFilterSmooths(t *testing.T) {
	l := ringLaplacian(t, 8)
	b, err := FourierBasis(l)
	if err != nil {
		t.Fatal(err)
	}
	signal := testutil.Impulse(8, 0)

	heat, _ := Heat(0.5)
	tik, _ := Tikhonov(2)
	responses := map[string]Response{
		"heat":     heat,
		"tikhonov": tik,
		"lowpass":  IdealLowPass(1),
	}

	before, _ := Smoothness(l, signal)
	for name, h := range responses {
		t.Run(name, func(t *testing.T) {
			out, err := Filter(b, signal, h)
			if err != nil {
				t.Fatalf("Filter: %v", err)
			}
			after, _ := Smoothness(l, out)
			if after >= before {
				t.Fatalf("smoothness %v did not drop below %v", after, before)
			}

			// Every response passes the constant mode, so the mean is preserved.
			var sum float64
			for _, v := range out {
				sum += v
			}
			if math.Abs(sum-1) > 1e-10 {
				t.Fatalf("sum = %v, want 1", sum)
			}
		})
	}
}

func TestResponseValidation(t *testing.T) {
	if _, err := Heat(-1); err == nil {
		t.Fatal("expected heat error")
	}
	if _, err := Tikhonov(math.NaN()); err == nil {
		t.Fatal("expected tikhonov error")
	}
}

func TestFrequencyResponse(t *testing.T) {
	b := Basis{Values: []float64{0, 1, 2}}
	got := FrequencyResponse(b, IdealLowPass(1))
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 1, 0}, 0)
}

func TestSmoothness(t *testing.T) {
	l := ringLaplacian(t, 4)

	got, err := Smoothness(l, []float64{1, 0, 1, 0})
	if err != nil {
		t.Fatal(err)
	}
	// Four edges, each with a unit jump.
	if math.Abs(got-4) > 1e-12 {
		t.Fatalf("Smoothness = %v, want 4", got)
	}

	constant, _ := Smoothness(l, testutil.Constant(3, 4))
	if math.Abs(constant) > 1e-12 {
		t.Fatalf("constant signal smoothness = %v, want 0", constant)
	}

	if _, err := Smoothness(l, []float64{1}); err == nil {
		t.Fatal("expected dimension error")
	}
}
