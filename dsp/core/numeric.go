package core

import "math"

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// FlushTiny converts values with magnitude below eps to exact zero.
// Eigen solvers leave round-off residue in entries that are analytically zero.
func FlushTiny(x, eps float64) float64 {
	if x > -eps && x < eps {
		return 0
	}
	return x
}
