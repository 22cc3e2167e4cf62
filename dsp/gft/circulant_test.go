package gft

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-chemsp/internal/testutil"
)

func TestCirculantEigenvaluesMatchEigendecomposition(t *testing.T) {
	const n = 8
	l := ringLaplacian(t, n)

	row := make([]float64, n)
	for j := range n {
		row[j] = l.At(0, j)
	}

	fast, err := CirculantEigenvalues(row)
	if err != nil {
		t.Fatalf("CirculantEigenvalues: %v", err)
	}

	b, err := FourierBasis(l)
	if err != nil {
		t.Fatalf("FourierBasis: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, fast, b.Values, 1e-10)
}

func TestCirculantEigenvaluesValidation(t *testing.T) {
	if _, err := CirculantEigenvalues(nil); !errors.Is(err, ErrEmptyBasis) {
		t.Fatalf("err = %v, want ErrEmptyBasis", err)
	}
	if _, err := CirculantEigenvalues([]float64{0, 1, 0, 2}); !errors.Is(err, ErrNotSymmetric) {
		t.Fatalf("err = %v, want ErrNotSymmetric", err)
	}
}
