package viz

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySpectrum is returned when there are no coefficients to draw.
	ErrEmptySpectrum = errors.New("no coefficients to plot")
	// ErrSignalLength is returned when a node signal does not match the graph size.
	ErrSignalLength = errors.New("signal length does not match vertex count")
	// ErrBadFileName is returned by [Save] for names with more than one period.
	ErrBadFileName = errors.New("file names with multiple periods are not supported")
)

func validateYLim(lo, hi float64) error {
	if !(lo < hi) {
		return fmt.Errorf("ylim must satisfy min < max: (%v, %v)", lo, hi)
	}
	return nil
}
