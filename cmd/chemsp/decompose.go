package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-chemsp/dsp/gft"
	sigstats "github.com/cwbudde/algo-chemsp/stats/signal"
	"github.com/cwbudde/algo-chemsp/stats/spectral"
)

type decomposeResult struct {
	Kernel       string         `json:"kernel" yaml:"kernel"`
	Operator     string         `json:"operator" yaml:"operator"`
	Molecules    int            `json:"molecules" yaml:"molecules"`
	Signal       sigstats.Stats `json:"signal_stats" yaml:"signal_stats"`
	Spectrum     spectral.Stats `json:"spectrum_stats" yaml:"spectrum_stats"`
	Smoothness   float64        `json:"smoothness" yaml:"smoothness"`
	Coefficients []coefficient  `json:"coefficients" yaml:"coefficients"`
}

type coefficient struct {
	Index       int     `json:"index" yaml:"index"`
	Eigenvalue  float64 `json:"eigenvalue" yaml:"eigenvalue"`
	Coefficient float64 `json:"coefficient" yaml:"coefficient"`
}

func (r decomposeResult) csvHeader() []string {
	return []string{"index", "eigenvalue", "coefficient"}
}

func (r decomposeResult) csvRows() [][]string {
	rows := make([][]string, len(r.Coefficients))
	for i, c := range r.Coefficients {
		rows[i] = []string{strconv.Itoa(c.Index), formatFloat(c.Eigenvalue), formatFloat(c.Coefficient)}
	}
	return rows
}

func newDecomposeCmd(a *app) *cobra.Command {
	var center bool

	cmd := &cobra.Command{
		Use:   "decompose <dataset>",
		Short: "Project the property signal onto the graph Fourier basis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			an, err := a.run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			signal := an.data.Signal
			if center {
				signal = sigstats.Center(signal)
			}

			coeffs, err := gft.Transform(an.basis, signal)
			if err != nil {
				return err
			}
			smooth, err := gft.Smoothness(laplacianOf(an), signal)
			if err != nil {
				return err
			}

			res := decomposeResult{
				Kernel:     an.kernelName,
				Operator:   an.operator.String(),
				Molecules:  an.data.Len(),
				Signal:     sigstats.Calculate(signal),
				Spectrum:   spectral.Calculate(coeffs, an.basis.Values),
				Smoothness: smooth,
			}
			for i, c := range coeffs {
				res.Coefficients = append(res.Coefficients, coefficient{
					Index:       i,
					Eigenvalue:  an.basis.Values[i],
					Coefficient: c,
				})
			}

			a.logger.Info("decomposed signal", "molecules", res.Molecules, "gini", res.Spectrum.Gini)
			return a.emit(res)
		},
	}

	cmd.Flags().BoolVar(&center, "center", false, "subtract the signal mean before transforming")
	return cmd
}
