package main

import (
	"context"
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-chemsp/dsp/core"
	"github.com/cwbudde/algo-chemsp/dsp/gft"
	"github.com/cwbudde/algo-chemsp/dsp/graph"
	"github.com/cwbudde/algo-chemsp/dsp/kernel"
	"github.com/cwbudde/algo-chemsp/internal/basiscache"
	"github.com/cwbudde/algo-chemsp/internal/dataset"
)

// analysis is the dataset together with its graph and Fourier basis.
type analysis struct {
	data       dataset.Dataset
	kernelName string
	operator   graph.Operator
	adj        *mat.SymDense
	gso        *mat.SymDense
	basis      gft.Basis
}

func (a *app) loadDataset(path string) (dataset.Dataset, error) {
	ds, err := dataset.Load(path,
		dataset.WithSignalColumn(a.cfg.Dataset.SignalColumn),
		dataset.WithIDColumn(a.cfg.Dataset.IDColumn),
	)
	if err != nil {
		return dataset.Dataset{}, err
	}
	a.logger.Debug("loaded dataset", "path", path, "molecules", ds.Len(), "features", len(ds.Features))
	return ds, nil
}

func (a *app) openCache() (*basiscache.Cache, error) {
	if !a.cfg.Cache.Enabled {
		return nil, nil
	}
	c, err := basiscache.Open(a.cfg.Cache.Dir)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("basis cache enabled", "dir", a.cfg.Cache.Dir)
	return c, nil
}

// analyze builds the graph under kernelName and computes its Fourier basis.
func (a *app) analyze(ctx context.Context, ds dataset.Dataset, kernelName string, cache *basiscache.Cache) (*analysis, error) {
	k, err := kernel.Lookup(kernelName, a.cfg.Kernel.Params())
	if err != nil {
		return nil, err
	}
	op, err := graph.ParseOperator(a.cfg.Graph.Operator)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	adj, err := graph.Adjacency(ctx, ds.X, k, a.cfg.Graph.Options()...)
	if err != nil {
		return nil, fmt.Errorf("adjacency: %w", err)
	}
	gso, err := graph.Shift(op, adj)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("built graph", "kernel", kernelName, "operator", op, "vertices", ds.Len(), "elapsed", time.Since(start))

	start = time.Now()
	basis, hit, err := basiscache.FourierBasis(ctx, cache, kernelName+"/"+op.String(), gso,
		core.WithWorkers(a.cfg.Graph.Workers))
	if err != nil {
		return nil, fmt.Errorf("fourier basis: %w", err)
	}
	a.logger.Debug("fourier basis", "cached", hit, "elapsed", time.Since(start))

	return &analysis{
		data:       ds,
		kernelName: kernelName,
		operator:   op,
		adj:        adj,
		gso:        gso,
		basis:      basis,
	}, nil
}

// run loads path and analyses it with the configured kernel.
func (a *app) run(ctx context.Context, path string) (*analysis, error) {
	ds, err := a.loadDataset(path)
	if err != nil {
		return nil, err
	}
	cache, err := a.openCache()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cache.Close(); err != nil {
			a.logger.Warn("closing basis cache", "err", err)
		}
	}()
	return a.analyze(ctx, ds, a.cfg.Kernel.Name, cache)
}
