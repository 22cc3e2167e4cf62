package graph

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Operator selects which graph shift operator is derived from an adjacency matrix.
type Operator int

const (
	OperatorAdjacency Operator = iota
	OperatorLaplacian
	OperatorNormalizedLaplacian
)

var operatorNames = map[Operator]string{
	OperatorAdjacency:           "adjacency",
	OperatorLaplacian:           "laplacian",
	OperatorNormalizedLaplacian: "normalized-laplacian",
}

// String returns the operator's canonical name.
func (o Operator) String() string {
	if s, ok := operatorNames[o]; ok {
		return s
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// ParseOperator resolves a canonical operator name (case-insensitive).
func ParseOperator(name string) (Operator, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for op, s := range operatorNames {
		if s == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, name)
}

// Shift derives the chosen operator from adj.
func Shift(op Operator, adj mat.Symmetric) (*mat.SymDense, error) {
	switch op {
	case OperatorAdjacency:
		n := adj.SymmetricDim()
		out := mat.NewSymDense(n, nil)
		out.CopySym(adj)
		return out, nil
	case OperatorLaplacian:
		return Laplacian(adj), nil
	case OperatorNormalizedLaplacian:
		return NormalizedLaplacian(adj)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownOperator, op)
	}
}

// Degree returns the column sums of adj, self-loops included.
func Degree(adj mat.Symmetric) []float64 {
	n := adj.SymmetricDim()
	deg := make([]float64, n)
	for j := range n {
		var s float64
		for i := range n {
			s += adj.At(i, j)
		}
		deg[j] = s
	}
	return deg
}

// DegreeMatrix returns the diagonal matrix of [Degree].
func DegreeMatrix(adj mat.Symmetric) *mat.DiagDense {
	return mat.NewDiagDense(adj.SymmetricDim(), Degree(adj))
}

// Laplacian returns the combinatorial Laplacian L = D - A.
//
// Self-loops do not contribute: L[i][i] is the sum of the off-diagonal
// weights of row i and L[i][j] = -A[i][j].
func Laplacian(adj mat.Symmetric) *mat.SymDense {
	n := adj.SymmetricDim()
	out := mat.NewSymDense(n, nil)
	for i := range n {
		var deg float64
		for j := range n {
			if j == i {
				continue
			}
			w := adj.At(i, j)
			deg += w
			if j > i {
				out.SetSym(i, j, -w)
			}
		}
		out.SetSym(i, i, deg)
	}
	return out
}

// NormalizedLaplacian returns I - D^-1/2 A D^-1/2 over off-diagonal weights.
//
// Isolated vertices (zero degree) get an all-zero row and column, so the
// operator stays symmetric positive semi-definite. Negative degrees, which
// signed kernels such as linear or polynomial can produce, have no real
// square root and yield [ErrNegativeDegree].
func NormalizedLaplacian(adj mat.Symmetric) (*mat.SymDense, error) {
	n := adj.SymmetricDim()
	invSqrt := make([]float64, n)
	for i := range n {
		var deg float64
		for j := range n {
			if j != i {
				deg += adj.At(i, j)
			}
		}
		switch {
		case deg > 0:
			invSqrt[i] = 1 / math.Sqrt(deg)
		case deg < 0:
			return nil, fmt.Errorf("%w: vertex %d has degree %v", ErrNegativeDegree, i, deg)
		}
	}

	out := mat.NewSymDense(n, nil)
	for i := range n {
		if invSqrt[i] > 0 {
			out.SetSym(i, i, 1)
		}
		for j := i + 1; j < n; j++ {
			out.SetSym(i, j, -adj.At(i, j)*invSqrt[i]*invSqrt[j])
		}
	}
	return out, nil
}

// Edge is a weighted undirected edge with I < J.
type Edge struct {
	I, J   int
	Weight float64
}

// Edges lists the upper-triangle edges of adj whose |weight| exceeds tol.
func Edges(adj mat.Symmetric, tol float64) []Edge {
	n := adj.SymmetricDim()
	var out []Edge
	for i := range n {
		for j := i + 1; j < n; j++ {
			if w := adj.At(i, j); math.Abs(w) > tol {
				out = append(out, Edge{I: i, J: j, Weight: w})
			}
		}
	}
	return out
}

// Rows copies a matrix into row-major slices.
func Rows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := range r {
		row := make([]float64, c)
		for j := range c {
			row[j] = m.At(i, j)
		}
		out[i] = row
	}
	return out
}
