package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when no representations are supplied.
	ErrEmptyInput = errors.New("graph requires at least one vertex")
	// ErrRaggedInput is returned when representation vectors differ in length.
	ErrRaggedInput = errors.New("representations must have equal length")
	// ErrNonFinite is returned when a kernel or input matrix holds NaN or Inf.
	ErrNonFinite = errors.New("non-finite edge weight")
	// ErrNegativeDegree is returned by [NormalizedLaplacian] when a vertex's
	// off-diagonal weights sum to a negative value.
	ErrNegativeDegree = errors.New("vertex has negative degree")
	// ErrNotSquare is returned for non-square operator matrices.
	ErrNotSquare = errors.New("operator matrix is not square")
	// ErrNotSymmetric is returned for asymmetric operator matrices.
	ErrNotSymmetric = errors.New("operator matrix is not symmetric")
	// ErrUnknownOperator is returned by [ParseOperator] for unknown names.
	ErrUnknownOperator = errors.New("unknown graph shift operator")
)

func validateKNN(k, n int) error {
	if k < 0 {
		return fmt.Errorf("knn must be >= 0: %d", k)
	}
	if k > 0 && k >= n {
		return fmt.Errorf("knn must be < vertex count %d: %d", n, k)
	}
	return nil
}

func validateThreshold(t float64) error {
	if !(t >= 0) {
		return fmt.Errorf("threshold must be >= 0: %f", t)
	}
	return nil
}
