package kernel

import (
	"math"

	"github.com/cwbudde/algo-chemsp/dsp/core"
)

// Kernel computes a similarity (or distance) between two representations.
// Implementations panic if the vectors differ in length.
type Kernel func(a, b []float64) float64

// RBF returns the squared-exponential kernel exp(-|a-b|^2 / (2 l^2)),
// matching scikit-learn's RBF(length_scale=l).
func RBF(lengthScale float64) (Kernel, error) {
	if err := validatePositive("rbf length scale", lengthScale); err != nil {
		return nil, err
	}
	denom := 2 * lengthScale * lengthScale
	return func(a, b []float64) float64 {
		return math.Exp(-core.SquaredDistance(a, b) / denom)
	}, nil
}

// Laplacian returns exp(-gamma * |a-b|_1).
func Laplacian(gamma float64) (Kernel, error) {
	if err := validatePositive("laplacian gamma", gamma); err != nil {
		return nil, err
	}
	return func(a, b []float64) float64 {
		return math.Exp(-gamma * core.ManhattanDistance(a, b))
	}, nil
}

// Linear returns the plain inner product a.b.
func Linear() Kernel {
	return core.Dot
}

// Polynomial returns (gamma * a.b + coef0)^degree.
func Polynomial(gamma, coef0 float64, degree int) (Kernel, error) {
	if err := validatePositive("polynomial gamma", gamma); err != nil {
		return nil, err
	}
	if err := validateDegree(degree); err != nil {
		return nil, err
	}
	d := float64(degree)
	return func(a, b []float64) float64 {
		return math.Pow(gamma*core.Dot(a, b)+coef0, d)
	}, nil
}

// Cosine returns a.b / (|a| |b|). It is 0 when either vector has zero norm.
func Cosine() Kernel {
	return func(a, b []float64) float64 {
		na := core.Norm(a)
		nb := core.Norm(b)
		if na == 0 || nb == 0 {
			if len(a) != len(b) {
				panic("kernel: Cosine length mismatch")
			}
			return 0
		}
		return core.Dot(a, b) / (na * nb)
	}
}

// Tanimoto returns the continuous Tanimoto (Jaccard) similarity
// a.b / (|a|^2 + |b|^2 - a.b). On binary fingerprints this is the usual
// bit-count Tanimoto coefficient. Two zero vectors are identical (1).
func Tanimoto() Kernel {
	return func(a, b []float64) float64 {
		ab := core.Dot(a, b)
		denom := core.Dot(a, a) + core.Dot(b, b) - ab
		if denom == 0 {
			return 1
		}
		return ab / denom
	}
}

// Euclidean returns the Euclidean distance |a-b|. It is a metric rather than
// a similarity: larger values mean less similar molecules.
func Euclidean() Kernel {
	return func(a, b []float64) float64 {
		return math.Sqrt(core.SquaredDistance(a, b))
	}
}
