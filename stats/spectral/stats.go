// Package spectral summarizes graph Fourier coefficient spectra.
//
// The central measure is the Gini coefficient of the coefficient magnitudes:
// a representation/kernel pair under which a molecular property is
// well-described concentrates the property's energy in few eigenvectors,
// giving a Gini close to 1.
package spectral

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-chemsp/dsp/core"
)

// CompactionFraction is the energy fraction used by [Stats.Compaction].
const CompactionFraction = 0.9

// Stats holds coefficient-spectrum statistics.
type Stats struct {
	Length   int
	Energy   float64 // sum of squared coefficients
	L1       float64 // sum of magnitudes
	MaxAbs   float64
	MaxIndex int
	Gini     float64
	// Entropy is the Shannon entropy (nats) of the normalized energy distribution.
	Entropy float64
	// Centroid is the energy-weighted mean graph frequency. Without
	// eigenvalues it is the energy-weighted mean coefficient index.
	Centroid float64
	// Compaction is the fewest coefficients holding CompactionFraction of the energy.
	Compaction int
}

// Gini returns the Gini coefficient of |coeffs|: 0 when energy is spread
// evenly, approaching 1 when a single coefficient carries it all.
// Empty and all-zero spectra yield 0.
func Gini(coeffs []float64) float64 {
	n := len(coeffs)
	if n == 0 {
		return 0
	}

	sorted := SortedMagnitudes(coeffs)
	total := core.Sum(sorted)
	if total == 0 {
		return 0
	}

	var weighted float64
	for i, x := range sorted {
		weighted += float64(2*(i+1)-n-1) * x
	}
	return weighted / (float64(n) * total)
}

// SortedMagnitudes returns |coeffs| in ascending order.
func SortedMagnitudes(coeffs []float64) []float64 {
	out := make([]float64, len(coeffs))
	for i, c := range coeffs {
		out[i] = math.Abs(c)
	}
	sort.Float64s(out)
	return out
}

// Calculate computes all spectrum statistics. eigenvalues may be nil; when
// present it must match coeffs in length or the centroid falls back to indices.
func Calculate(coeffs, eigenvalues []float64) Stats {
	n := len(coeffs)
	if n == 0 {
		return Stats{}
	}

	energies := make([]float64, n)
	var l1, maxAbs float64
	var maxIdx int
	for i, c := range coeffs {
		a := math.Abs(c)
		energies[i] = c * c
		l1 += a
		if a > maxAbs {
			maxAbs, maxIdx = a, i
		}
	}
	energy := core.Sum(energies)

	s := Stats{
		Length:   n,
		Energy:   energy,
		L1:       l1,
		MaxAbs:   maxAbs,
		MaxIndex: maxIdx,
		Gini:     Gini(coeffs),
	}
	if energy == 0 {
		return s
	}

	useValues := len(eigenvalues) == n
	for i, e := range energies {
		p := e / energy
		if p > 0 {
			s.Entropy -= p * math.Log(p)
		}
		freq := float64(i)
		if useValues {
			freq = eigenvalues[i]
		}
		s.Centroid += p * freq
	}

	s.Compaction = compaction(energies, energy)
	return s
}

func compaction(energies []float64, total float64) int {
	sorted := append([]float64(nil), energies...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	target := CompactionFraction * total
	var acc float64
	for i, e := range sorted {
		acc += e
		if acc >= target {
			return i + 1
		}
	}
	return len(sorted)
}
