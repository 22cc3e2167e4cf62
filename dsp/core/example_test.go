package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-chemsp/dsp/core"
)

func ExampleApplyComputeOptions() {
	cfg := core.ApplyComputeOptions(
		core.WithWorkers(4),
		core.WithTolerance(1e-10),
	)

	fmt.Printf("workers=%d tol=%g\n", cfg.Workers, cfg.Tolerance)

	// Output:
	// workers=4 tol=1e-10
}

func ExampleDot() {
	fmt.Println(core.Dot([]float64{1, 2, 3}, []float64{1, 0, -1}))

	// Output:
	// -2
}
