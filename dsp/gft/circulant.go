package gft

import (
	"fmt"
	"math"
	"sort"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// CirculantEigenvalues returns the eigenvalues, ascending, of the symmetric
// circulant shift operator whose first row is row.
//
// Ring-like graphs (cyclic scaffolds, periodic lattices) have circulant
// operators whose eigenbasis is the classical DFT basis, so their graph
// spectrum follows from one FFT of the first row instead of an O(n^3)
// eigendecomposition. The row must satisfy row[j] == row[n-j].
func CirculantEigenvalues(row []float64) ([]float64, error) {
	n := len(row)
	if n == 0 {
		return nil, ErrEmptyBasis
	}
	for j := 1; j < n; j++ {
		if math.Abs(row[j]-row[n-j]) > 1e-12 {
			return nil, fmt.Errorf("%w: row[%d]=%v vs row[%d]=%v", ErrNotSymmetric, j, row[j], n-j, row[n-j])
		}
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("circulant fft plan for size %d: %w", n, err)
	}

	in := make([]complex128, n)
	for i, v := range row {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("circulant fft: %w", err)
	}

	values := make([]float64, n)
	for i, c := range out {
		values[i] = real(c)
	}
	sort.Float64s(values)
	return values, nil
}
