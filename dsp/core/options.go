package core

import "runtime"

// ComputeConfig defines common settings for matrix-producing operations.
type ComputeConfig struct {
	// Workers bounds the number of goroutines used for pairwise evaluation.
	Workers int
	// Tolerance is the absolute tolerance for symmetry and zero checks.
	Tolerance float64
}

// ComputeOption mutates a ComputeConfig.
type ComputeOption func(*ComputeConfig)

// DefaultComputeConfig returns defaults suitable for graphs of a few thousand vertices.
func DefaultComputeConfig() ComputeConfig {
	return ComputeConfig{
		Workers:   runtime.GOMAXPROCS(0),
		Tolerance: 1e-8,
	}
}

// WithWorkers sets the goroutine bound. Values <= 0 are ignored.
func WithWorkers(workers int) ComputeOption {
	return func(cfg *ComputeConfig) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// WithTolerance sets the absolute comparison tolerance. Values <= 0 are ignored.
func WithTolerance(tol float64) ComputeOption {
	return func(cfg *ComputeConfig) {
		if tol > 0 {
			cfg.Tolerance = tol
		}
	}
}

// ApplyComputeOptions applies zero or more options to the default config.
func ApplyComputeOptions(opts ...ComputeOption) ComputeConfig {
	cfg := DefaultComputeConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
