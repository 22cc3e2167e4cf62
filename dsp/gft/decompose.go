package gft

import (
	"context"

	"github.com/cwbudde/algo-chemsp/dsp/graph"
	"github.com/cwbudde/algo-chemsp/dsp/kernel"
)

// Decompose runs the full pipeline from molecular representations to
// coefficients: adjacency under k, Fourier basis of the adjacency, and the
// transform of signal. Graph options are forwarded to [graph.Adjacency].
func Decompose(ctx context.Context, x [][]float64, k kernel.Kernel, signal []float64, opts ...graph.Option) ([]float64, error) {
	if len(signal) != len(x) {
		return nil, dimensionError(len(signal), len(x))
	}

	adj, err := graph.Adjacency(ctx, x, k, opts...)
	if err != nil {
		return nil, err
	}

	basis, err := FourierBasis(adj)
	if err != nil {
		return nil, err
	}

	return Transform(basis, signal)
}
