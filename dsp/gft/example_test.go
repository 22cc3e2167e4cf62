package gft_test

import (
	"fmt"

	"github.com/cwbudde/algo-chemsp/dsp/gft"
	"github.com/cwbudde/algo-chemsp/dsp/graph"
)

func ExampleFourierBasis() {
	// A path of three molecules: 0 - 1 - 2.
	adj, err := graph.FromRows([][]float64{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	}, 0)
	if err != nil {
		panic(err)
	}

	b, err := gft.FourierBasis(graph.Laplacian(adj))
	if err != nil {
		panic(err)
	}

	for _, v := range b.Values {
		fmt.Printf("%.3f ", v)
	}
	fmt.Println()

	// Output:
	// 0.000 1.000 3.000
}
