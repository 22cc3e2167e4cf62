package graph

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-chemsp/dsp/core"
	"github.com/cwbudde/algo-chemsp/dsp/kernel"
)

// Adjacency computes A[i][j] = k(X[i], X[j]) for every pair of molecules.
//
// The kernel is assumed symmetric; only the upper triangle is evaluated.
// Rows are evaluated concurrently and the context aborts pending rows.
// The diagonal keeps the kernel's self-similarity unless [WithoutSelfLoops]
// is given.
func Adjacency(ctx context.Context, x [][]float64, k kernel.Kernel, opts ...Option) (*mat.SymDense, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if k == nil {
		return nil, fmt.Errorf("graph: nil kernel")
	}
	dim := len(x[0])
	for i, row := range x {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: row %d has %d features, want %d", ErrRaggedInput, i, len(row), dim)
		}
	}

	cfg := applyOptions(opts)
	if err := validateThreshold(cfg.threshold); err != nil {
		return nil, err
	}
	if err := validateKNN(cfg.knn, n); err != nil {
		return nil, err
	}

	data := make([]float64, n*n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.compute.Workers, 1))
	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for j := i; j < n; j++ {
				w := k(x[i], x[j])
				if !core.IsFinite(w) {
					return fmt.Errorf("%w: (%d,%d) = %v", ErrNonFinite, i, j, w)
				}
				data[i*n+j] = w
				data[j*n+i] = w
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !cfg.selfLoops {
		for i := range n {
			data[i*n+i] = 0
		}
	}
	if cfg.threshold > 0 {
		for i := range n {
			for j := range n {
				if i != j && data[i*n+j] < cfg.threshold {
					data[i*n+j] = 0
				}
			}
		}
	}
	if cfg.knn > 0 {
		sparsifyKNN(data, n, cfg.knn)
	}

	return mat.NewSymDense(n, data), nil
}

// sparsifyKNN keeps the union of every vertex's k strongest off-diagonal edges.
func sparsifyKNN(data []float64, n, k int) {
	keep := make([]bool, n*n)
	idx := make([]int, 0, n-1)
	for i := range n {
		idx = idx[:0]
		for j := range n {
			if j != i {
				idx = append(idx, j)
			}
		}
		row := data[i*n : (i+1)*n]
		sort.SliceStable(idx, func(a, b int) bool { return row[idx[a]] > row[idx[b]] })
		for _, j := range idx[:k] {
			keep[i*n+j] = true
			keep[j*n+i] = true
		}
	}
	for i := range n {
		for j := range n {
			if i != j && !keep[i*n+j] {
				data[i*n+j] = 0
			}
		}
	}
}

// FromDense validates that m is square and symmetric within tol and returns
// it as a symmetric matrix. A non-positive tol selects the default tolerance.
func FromDense(m mat.Matrix, tol float64) (*mat.SymDense, error) {
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, r, c)
	}
	if tol <= 0 {
		tol = core.DefaultComputeConfig().Tolerance
	}
	if err := checkSymmetric(m, tol); err != nil {
		return nil, err
	}

	out := mat.NewSymDense(r, nil)
	for i := range r {
		for j := i; j < r; j++ {
			out.SetSym(i, j, m.At(i, j))
		}
	}
	return out, nil
}

// FromRows is [FromDense] for a row-major slice matrix.
func FromRows(rows [][]float64, tol float64) (*mat.SymDense, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	data := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNotSquare, i, len(row), n)
		}
		data = append(data, row...)
	}
	return FromDense(mat.NewDense(n, n, data), tol)
}

func checkSymmetric(m mat.Matrix, tol float64) error {
	r, _ := m.Dims()
	for i := range r {
		if d := m.At(i, i); !core.IsFinite(d) {
			return fmt.Errorf("%w: (%d,%d) = %v", ErrNonFinite, i, i, d)
		}
		for j := i + 1; j < r; j++ {
			a, b := m.At(i, j), m.At(j, i)
			if !core.IsFinite(a) || !core.IsFinite(b) {
				return fmt.Errorf("%w: (%d,%d)=%v, (%d,%d)=%v", ErrNonFinite, i, j, a, j, i, b)
			}
			if d := a - b; d > tol || d < -tol {
				return fmt.Errorf("%w: (%d,%d)=%v vs (%d,%d)=%v", ErrNotSymmetric, i, j, a, j, i, b)
			}
		}
	}
	return nil
}
