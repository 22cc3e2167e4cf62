package gft

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-chemsp/dsp/core"
)

// Basis is the graph Fourier basis of a symmetric shift operator.
//
// Column i of Vectors is the unit eigenvector for Values[i]. Values are in
// ascending order, so for Laplacians low indices are the smooth modes.
type Basis struct {
	Vectors *mat.Dense
	Values  []float64
}

// Dim returns the number of vertices the basis spans.
func (b Basis) Dim() int {
	if b.Vectors == nil {
		return 0
	}
	r, _ := b.Vectors.Dims()
	return r
}

// Vector returns a copy of the i-th eigenvector.
func (b Basis) Vector(i int) []float64 {
	return mat.Col(nil, i, b.Vectors)
}

// FourierBasis computes the eigenbasis of a symmetric shift operator.
//
// gso must be square, finite, and symmetric within the tolerance from opts
// (default 1e-8). Eigenvalues within that tolerance of zero, relative to the
// largest magnitude, are returned as exact zeros.
func FourierBasis(gso mat.Matrix, opts ...core.ComputeOption) (Basis, error) {
	cfg := core.ApplyComputeOptions(opts...)

	r, c := gso.Dims()
	if r != c {
		return Basis{}, fmt.Errorf("%w: %dx%d", ErrNotSquare, r, c)
	}
	if r == 0 {
		return Basis{}, ErrEmptyBasis
	}

	sym, err := asSymmetric(gso, cfg.Tolerance)
	if err != nil {
		return Basis{}, err
	}

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return Basis{}, ErrNoConvergence
	}

	values := es.Values(nil)
	scale := 1.0
	for _, v := range values {
		scale = max(scale, math.Abs(v))
	}
	for i, v := range values {
		values[i] = core.FlushTiny(v, cfg.Tolerance*scale)
	}

	var vectors mat.Dense
	es.VectorsTo(&vectors)

	return Basis{Vectors: &vectors, Values: values}, nil
}

func asSymmetric(m mat.Matrix, tol float64) (mat.Symmetric, error) {
	if s, ok := m.(mat.Symmetric); ok {
		n := s.SymmetricDim()
		for i := range n {
			for j := i; j < n; j++ {
				if v := s.At(i, j); !core.IsFinite(v) {
					return nil, fmt.Errorf("%w: (%d,%d) = %v", ErrNonFinite, i, j, v)
				}
			}
		}
		return s, nil
	}

	n, _ := m.Dims()
	out := mat.NewSymDense(n, nil)
	for i := range n {
		for j := i; j < n; j++ {
			a, b := m.At(i, j), m.At(j, i)
			if !core.IsFinite(a) || !core.IsFinite(b) {
				return nil, fmt.Errorf("%w: (%d,%d)=%v, (%d,%d)=%v", ErrNonFinite, i, j, a, j, i, b)
			}
			if math.Abs(a-b) > tol {
				return nil, fmt.Errorf("%w: (%d,%d)=%v vs (%d,%d)=%v", ErrNotSymmetric, i, j, a, j, i, b)
			}
			out.SetSym(i, j, a)
		}
	}
	return out, nil
}

// Transform performs the graph Fourier transform, returning the unsorted
// coefficient spectrum U^T s.
func Transform(b Basis, signal []float64) ([]float64, error) {
	n := b.Dim()
	if n == 0 {
		return nil, ErrEmptyBasis
	}
	if len(signal) != n {
		return nil, dimensionError(len(signal), n)
	}

	coeffs := make([]float64, n)
	col := make([]float64, n)
	for k := range n {
		mat.Col(col, k, b.Vectors)
		coeffs[k] = core.Dot(col, signal)
	}
	return coeffs, nil
}

// Inverse reconstructs a vertex signal from its coefficients: U c.
func Inverse(b Basis, coeffs []float64) ([]float64, error) {
	n := b.Dim()
	if n == 0 {
		return nil, ErrEmptyBasis
	}
	if len(coeffs) != n {
		return nil, dimensionError(len(coeffs), n)
	}

	out := make([]float64, n)
	col := make([]float64, n)
	scratch := make([]float64, n)
	for k, c := range coeffs {
		if c == 0 {
			continue
		}
		mat.Col(col, k, b.Vectors)
		core.AddScaled(out, col, scratch, c)
	}
	return out, nil
}
