// Command chemsp analyses molecular property signals on similarity graphs of
// chemical space.
//
// Usage:
//
//	chemsp [flags] <command> [args]
//
// Examples:
//
//	chemsp decompose molecules.csv
//	chemsp decompose -k tanimoto --operator laplacian -f yaml fingerprints.json
//	chemsp filter --response heat --parameter 0.5 molecules.csv
//	chemsp basis molecules.csv
//	chemsp plot spectrum --kernels rbf,tanimoto,cosine molecules.csv
//	chemsp kernels
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

var version = "dev"

func main() {
	root := newRootCmd(os.Stdout)
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
