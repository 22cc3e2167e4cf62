package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates uniform noise in [-amplitude, amplitude) with a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Representations returns n deterministic feature vectors of dimension m in [0, 1).
func Representations(seed int64, n, m int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, n)
	for i := range out {
		row := make([]float64, m)
		for j := range row {
			row[j] = rng.Float64()
		}
		out[i] = row
	}
	return out
}

// SmallMolecules is the three-molecule, three-feature fixture used across package tests.
func SmallMolecules() [][]float64 {
	return [][]float64{
		{0.1, 0.1, 0.1},
		{0.1, 0.2, 0.3},
		{0.2, 0.4, 0.3},
	}
}

// Ring returns the dense adjacency of an unweighted n-cycle.
func Ring(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	if n < 2 {
		return out
	}
	for i := range n {
		j := (i + 1) % n
		out[i][j] = 1
		out[j][i] = 1
	}
	return out
}

// Impulse generates a unit impulse at vertex pos.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Constant generates a signal with the same value on every vertex.
func Constant(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Norm returns the Euclidean norm of x.
func Norm(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v * v
	}
	return math.Sqrt(s)
}
