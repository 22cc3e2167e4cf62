package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-chemsp/dsp/gft"
	"github.com/cwbudde/algo-chemsp/viz"
)

type plotFlags struct {
	name   string
	title  string
	subDir string
	sorted bool
	yMin   float64
	yMax   float64
}

func (f *plotFlags) register(cmd *cobra.Command, defaultName string) {
	cmd.Flags().StringVar(&f.name, "name", defaultName, "output file name; extension selects the format (png if none)")
	cmd.Flags().StringVar(&f.title, "title", "", "plot title")
	cmd.Flags().StringVar(&f.subDir, "subdir", "", "subdirectory of the plot directory")
}

func newPlotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render spectra and graphs",
	}
	cmd.AddCommand(newPlotSignalCmd(a), newPlotSpectrumCmd(a), newPlotGraphCmd(a))
	return cmd
}

func (a *app) saveOptions(f *plotFlags) []viz.SaveOption {
	return []viz.SaveOption{
		viz.WithDir(a.cfg.Plot.Dir),
		viz.WithSubDir(f.subDir),
		viz.WithSize(a.cfg.Plot.Width, a.cfg.Plot.Height),
	}
}

func newPlotSignalCmd(a *app) *cobra.Command {
	var f plotFlags

	cmd := &cobra.Command{
		Use:   "signal <dataset>",
		Short: "Stem plot of the graph Fourier coefficients",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			an, err := a.run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			coeffs, err := gft.Transform(an.basis, an.data.Signal)
			if err != nil {
				return err
			}

			opts := []viz.SignalOption{viz.WithTitle(f.title), viz.WithYLim(f.yMin, f.yMax)}
			if f.sorted {
				opts = append(opts, viz.WithSorted())
			}
			p, err := viz.SignalPlot(coeffs, opts...)
			if err != nil {
				return err
			}

			path, err := viz.Save(p, f.name, a.saveOptions(&f)...)
			if err != nil {
				return err
			}
			a.logger.Info("saved plot", "path", path)
			return nil
		},
	}

	f.register(cmd, "signal")
	cmd.Flags().BoolVar(&f.sorted, "sorted", false, "plot |c| in ascending order")
	cmd.Flags().Float64Var(&f.yMin, "ymin", -5, "lower y limit")
	cmd.Flags().Float64Var(&f.yMax, "ymax", 5, "upper y limit")
	return cmd
}

func newPlotSpectrumCmd(a *app) *cobra.Command {
	var (
		f       plotFlags
		kernels string
	)

	cmd := &cobra.Command{
		Use:   "spectrum <dataset>",
		Short: "Compare sorted coefficient spectra across kernels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.loadDataset(args[0])
			if err != nil {
				return err
			}
			cache, err := a.openCache()
			if err != nil {
				return err
			}
			defer func() {
				if err := cache.Close(); err != nil {
					a.logger.Warn("closing basis cache", "err", err)
				}
			}()

			names := []string{a.cfg.Kernel.Name}
			if kernels != "" {
				names = strings.Split(kernels, ",")
			}

			series := make([]viz.Series, 0, len(names))
			for _, name := range names {
				name = strings.TrimSpace(name)
				an, err := a.analyze(cmd.Context(), ds, name, cache)
				if err != nil {
					return fmt.Errorf("kernel %s: %w", name, err)
				}
				coeffs, err := gft.Transform(an.basis, ds.Signal)
				if err != nil {
					return err
				}
				series = append(series, viz.Series{Name: name, Coeffs: coeffs})
			}

			p, err := viz.SpectrumPlot(series, viz.WithTitle(f.title))
			if err != nil {
				return err
			}
			path, err := viz.Save(p, f.name, a.saveOptions(&f)...)
			if err != nil {
				return err
			}
			a.logger.Info("saved plot", "path", path, "series", len(series))
			return nil
		},
	}

	f.register(cmd, "spectrum")
	cmd.Flags().StringVar(&kernels, "kernels", "", "comma-separated kernels to compare (default: configured kernel)")
	return cmd
}

func newPlotGraphCmd(a *app) *cobra.Command {
	var (
		f        plotFlags
		noSignal bool
		circular bool
	)

	cmd := &cobra.Command{
		Use:   "graph <dataset>",
		Short: "Draw the similarity graph with vertices coloured by the signal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			an, err := a.run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			opts := []viz.GraphOption{
				viz.WithGraphTitle(f.title),
				viz.WithLayoutSeed(a.cfg.Plot.Seed, 0),
			}
			if !noSignal {
				opts = append(opts, viz.WithSignal(an.data.Signal))
			}
			if circular {
				opts = append(opts, viz.WithPositions(viz.CircularLayout(an.data.Len())))
			}

			p, _, err := viz.GraphPlot(an.adj, opts...)
			if err != nil {
				return err
			}
			path, err := viz.Save(p, f.name, a.saveOptions(&f)...)
			if err != nil {
				return err
			}
			a.logger.Info("saved plot", "path", path)
			return nil
		},
	}

	f.register(cmd, "graph")
	cmd.Flags().BoolVar(&noSignal, "no-signal", false, "colour vertices by index instead of signal")
	cmd.Flags().BoolVar(&circular, "circular", false, "use a circular layout instead of a spring layout")
	return cmd
}
