package graph

import "github.com/cwbudde/algo-chemsp/dsp/core"

// Option configures adjacency construction.
type Option func(*config)

type config struct {
	compute   core.ComputeConfig
	selfLoops bool
	threshold float64
	knn       int
}

func defaultConfig() config {
	return config{
		compute:   core.DefaultComputeConfig(),
		selfLoops: true,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithCompute applies shared compute options (worker count, tolerance).
func WithCompute(opts ...core.ComputeOption) Option {
	return func(cfg *config) {
		for _, opt := range opts {
			if opt != nil {
				opt(&cfg.compute)
			}
		}
	}
}

// WithWorkers bounds the number of rows evaluated concurrently.
func WithWorkers(n int) Option {
	return WithCompute(core.WithWorkers(n))
}

// WithoutSelfLoops zeroes the diagonal of the adjacency matrix.
func WithoutSelfLoops() Option {
	return func(cfg *config) { cfg.selfLoops = false }
}

// WithThreshold zeroes off-diagonal weights below t.
func WithThreshold(t float64) Option {
	return func(cfg *config) { cfg.threshold = t }
}

// WithKNN keeps an edge only if one endpoint is among the k strongest
// neighbours of the other. Zero disables sparsification.
func WithKNN(k int) Option {
	return func(cfg *config) { cfg.knn = k }
}
