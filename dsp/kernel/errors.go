package kernel

import (
	"errors"
	"fmt"
)

// ErrUnknownKernel is returned by [Lookup] for unregistered names.
var ErrUnknownKernel = errors.New("unknown kernel")

func validatePositive(name string, v float64) error {
	if !(v > 0) {
		return fmt.Errorf("%s must be > 0: %f", name, v)
	}
	return nil
}

func validateDegree(d int) error {
	if d < 1 {
		return fmt.Errorf("polynomial degree must be >= 1: %d", d)
	}
	return nil
}
