package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-chemsp/internal/config"
)

// app carries state shared by all subcommands for one invocation.
type app struct {
	out    io.Writer
	logger *log.Logger
	cfg    *config.Config

	cfgFile  string
	verbose  bool
	kernel   string
	operator string
	signal   string
	format   string
	outPath  string
	useCache bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "chemsp",
		Short: "Graph signal processing over chemical space",
		Long: `chemsp builds a similarity graph over a set of molecules from their
representation vectors, computes the graph Fourier basis of a shift operator,
and analyses a molecular property as a signal on that graph.

Datasets are CSV files with a header (an optional "id" column, a signal
column, and feature columns) or JSON arrays of {"id", "features", "signal"}.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ./chemsp.yaml or $XDG_CONFIG_HOME/chemsp/chemsp.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVarP(&a.kernel, "kernel", "k", "", "similarity kernel (see 'chemsp kernels')")
	pf.StringVar(&a.operator, "operator", "", "graph shift operator: adjacency, laplacian, normalized-laplacian")
	pf.StringVar(&a.signal, "signal-column", "", "CSV column holding the property signal")
	pf.StringVarP(&a.format, "format", "f", "", "output format: json, yaml, csv")
	pf.StringVarP(&a.outPath, "out", "o", "", "write results to a file instead of stdout")
	pf.BoolVar(&a.useCache, "cache", false, "cache Fourier bases on disk")

	root.AddCommand(
		newDecomposeCmd(a),
		newFilterCmd(a),
		newBasisCmd(a),
		newPlotCmd(a),
		newKernelsCmd(a),
		newConfigCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	level := log.InfoLevel
	if a.verbose {
		level = log.DebugLevel
	}
	a.logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "chemsp",
		Level:  level,
	})

	cfg, path, err := config.Load(config.LoadOptions{
		ConfigFilePath: a.cfgFile,
		SearchDirs:     config.DefaultSearchDirs(),
	})
	if err != nil {
		return err
	}
	if path != "" {
		a.logger.Debug("loaded config", "path", path)
	}

	flags := cmd.Flags()
	if flags.Changed("kernel") {
		cfg.Kernel.Name = a.kernel
	}
	if flags.Changed("operator") {
		cfg.Graph.Operator = a.operator
	}
	if flags.Changed("signal-column") {
		cfg.Dataset.SignalColumn = a.signal
	}
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("cache") {
		cfg.Cache.Enabled = a.useCache
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	a.cfg = cfg
	return nil
}
