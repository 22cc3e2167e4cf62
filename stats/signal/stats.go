// Package signal computes descriptive statistics of a property signal
// defined on the vertices of a molecular graph.
package signal

import (
	"math"

	"github.com/cwbudde/algo-chemsp/dsp/core"
)

// Stats holds vertex-signal statistics.
type Stats struct {
	Length    int
	Mean      float64
	Variance  float64 // population variance
	StdDev    float64
	Min       float64
	MinIndex  int
	Max       float64
	MaxIndex  int
	Range     float64 // max - min
	Skewness  float64
	Kurtosis  float64 // excess kurtosis
	SumSquare float64
}

// Calculate computes all statistics in a single pass using Welford's online
// algorithm for the higher-order moments.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var mean, m2, m3, m4, sumSq float64
	maxVal, minVal := signal[0], signal[0]
	var maxIdx, minIdx int

	for i, x := range signal {
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// M4 before M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		sumSq += x * x

		if x > maxVal {
			maxVal, maxIdx = x, i
		}
		if x < minVal {
			minVal, minIdx = x, i
		}
	}

	nf := float64(n)
	variance := m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return Stats{
		Length:    n,
		Mean:      Mean(signal),
		Variance:  variance,
		StdDev:    math.Sqrt(variance),
		Min:       minVal,
		MinIndex:  minIdx,
		Max:       maxVal,
		MaxIndex:  maxIdx,
		Range:     maxVal - minVal,
		Skewness:  skewness,
		Kurtosis:  kurtosis,
		SumSquare: sumSq,
	}
}

// Mean returns the compensated mean of signal, or 0 when empty.
func Mean(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return core.Sum(signal) / float64(len(signal))
}

// Center returns signal minus its mean. Graph spectra of centered signals
// carry no energy in the constant mode of a connected Laplacian.
func Center(signal []float64) []float64 {
	m := Mean(signal)
	out := make([]float64, len(signal))
	for i, v := range signal {
		out[i] = v - m
	}
	return out
}

// Standardize returns the z-scores of signal. A constant signal maps to zeros.
func Standardize(signal []float64) []float64 {
	s := Calculate(signal)
	out := Center(signal)
	if s.StdDev == 0 {
		core.Zero(out)
		return out
	}
	for i := range out {
		out[i] /= s.StdDev
	}
	return out
}
