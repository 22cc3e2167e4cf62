package gft

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// Response is a spectral filter response evaluated at a graph frequency (eigenvalue).
type Response func(lambda float64) float64

// Identity passes every graph frequency unchanged.
func Identity() Response {
	return func(float64) float64 { return 1 }
}

// Heat returns the heat-diffusion response exp(-tau * lambda).
func Heat(tau float64) (Response, error) {
	if err := validateNonNegative("heat tau", tau); err != nil {
		return nil, err
	}
	return func(lambda float64) float64 { return math.Exp(-tau * lambda) }, nil
}

// IdealLowPass keeps graph frequencies <= cutoff and removes the rest.
func IdealLowPass(cutoff float64) Response {
	return func(lambda float64) float64 {
		if lambda <= cutoff {
			return 1
		}
		return 0
	}
}

// Tikhonov returns 1 / (1 + alpha * lambda), the minimiser of
// |y - s|^2 + alpha * y^T L y when the basis comes from a Laplacian L.
func Tikhonov(alpha float64) (Response, error) {
	if err := validateNonNegative("tikhonov alpha", alpha); err != nil {
		return nil, err
	}
	return func(lambda float64) float64 { return 1 / (1 + alpha*lambda) }, nil
}

// FrequencyResponse evaluates h at every eigenvalue of b.
func FrequencyResponse(b Basis, h Response) []float64 {
	out := make([]float64, len(b.Values))
	for i, lambda := range b.Values {
		out[i] = h(lambda)
	}
	return out
}

// Filter applies the spectral filter h to signal: U h(Lambda) U^T s.
func Filter(b Basis, signal []float64, h Response) ([]float64, error) {
	coeffs, err := Transform(b, signal)
	if err != nil {
		return nil, err
	}

	vecmath.MulBlockInPlace(coeffs, FrequencyResponse(b, h))
	return Inverse(b, coeffs)
}

// Smoothness returns the Dirichlet energy s^T L s of signal on the operator l.
// For a Laplacian this is the sum over edges of w_ij (s_i - s_j)^2.
func Smoothness(l mat.Matrix, signal []float64) (float64, error) {
	r, c := l.Dims()
	if r != c {
		return 0, ErrNotSquare
	}
	if len(signal) != r {
		return 0, dimensionError(len(signal), r)
	}

	s := mat.NewVecDense(len(signal), signal)
	return mat.Inner(s, l, s), nil
}
