package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-chemsp/dsp/gft"
	"github.com/cwbudde/algo-chemsp/stats/spectral"
)

func newBasisCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "basis <dataset>",
		Short: "Print the graph spectrum and per-mode signal energy",
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
			return printBasis(a, an, coeffs, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "print only the first n modes (0 = all)")
	return cmd
}

func printBasis(a *app, an *analysis, coeffs []float64, limit int) error {
	st := spectral.Calculate(coeffs, an.basis.Values)

	fmt.Fprintf(a.out, "Kernel: %s   Operator: %s   Molecules: %d\n", an.kernelName, an.operator, an.data.Len())
	fmt.Fprintf(a.out, "Gini: %.4f   Entropy: %.4f   Centroid: %.4f   Compaction(90%%): %d\n\n",
		st.Gini, st.Entropy, st.Centroid, st.Compaction)

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Mode\tEigenvalue\tCoefficient\tEnergy %\t")
	fmt.Fprintln(w, "----\t----------\t-----------\t--------\t")

	n := len(coeffs)
	if limit > 0 && limit < n {
		n = limit
	}
	for i := range n {
		share := 0.0
		if st.Energy > 0 {
			share = 100 * coeffs[i] * coeffs[i] / st.Energy
		}
		fmt.Fprintf(w, "%d\t%.6f\t%.6f\t%.2f\t\n", i, an.basis.Values[i], coeffs[i], share)
	}
	return w.Flush()
}
