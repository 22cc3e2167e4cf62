package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-chemsp/dsp/graph"
	"github.com/cwbudde/algo-chemsp/dsp/kernel"
)

func newKernelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kernels",
		Short: "List available similarity kernels and shift operators",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KERNEL\tFORMULA")
			for _, name := range kernel.Names() {
				fmt.Fprintf(w, "%s\t%s\n", name, kernel.Summary(name))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(a.out)
			fmt.Fprintln(a.out, "OPERATORS")
			for _, op := range []graph.Operator{
				graph.OperatorAdjacency,
				graph.OperatorLaplacian,
				graph.OperatorNormalizedLaplacian,
			} {
				fmt.Fprintln(a.out, op)
			}
			return nil
		},
	}
}
