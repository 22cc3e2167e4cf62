package gft

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSquare is returned when the shift operator is not square.
	ErrNotSquare = errors.New("shift operator is not square")
	// ErrNotSymmetric is returned when the shift operator is not symmetric.
	ErrNotSymmetric = errors.New("shift operator is not symmetric")
	// ErrNonFinite is returned when the shift operator holds NaN or Inf.
	ErrNonFinite = errors.New("shift operator has non-finite entries")
	// ErrNoConvergence is returned when the eigendecomposition fails.
	ErrNoConvergence = errors.New("eigendecomposition did not converge")
	// ErrDimensionMismatch is returned when a signal does not match the basis size.
	ErrDimensionMismatch = errors.New("signal length does not match basis dimension")
	// ErrEmptyBasis is returned for operations on a zero-sized basis.
	ErrEmptyBasis = errors.New("basis is empty")
)

func dimensionError(got, want int) error {
	return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, got, want)
}

func validateNonNegative(name string, v float64) error {
	if !(v >= 0) {
		return fmt.Errorf("%s must be >= 0: %f", name, v)
	}
	return nil
}
