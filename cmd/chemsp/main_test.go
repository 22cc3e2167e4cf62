package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleCSV = `id,signal,f0,f1
m0,0.5,0.0,0.0
m1,0.7,0.1,0.0
m2,1.9,1.0,1.0
m3,2.1,1.1,0.9
m4,1.0,0.5,0.5
`

// fixture writes a dataset and a config file that keeps plots and the
// basis cache inside the test directory.
func fixture(t *testing.T) (data, cfgPath, dir string) {
	t.Helper()
	dir = t.TempDir()

	data = filepath.Join(dir, "molecules.csv")
	require.NoError(t, os.WriteFile(data, []byte(sampleCSV), 0o644))

	cfg := "plot:\n  dir: " + filepath.Join(dir, "plots") + "\n" +
		"cache:\n  dir: " + filepath.Join(dir, "cache") + "\n"
	cfgPath = filepath.Join(dir, "chemsp.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))
	return data, cfgPath, dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(&out)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDecomposeJSON(t *testing.T) {
	data, cfg, _ := fixture(t)

	out, err := execute(t, "decompose", "--config", cfg, "--operator", "laplacian", data)
	require.NoError(t, err)

	var res decomposeResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, "rbf", res.Kernel)
	require.Equal(t, "laplacian", res.Operator)
	require.Equal(t, 5, res.Molecules)
	require.Len(t, res.Coefficients, 5)
	require.InDelta(t, 0, res.Coefficients[0].Eigenvalue, 1e-9)
	for i := 1; i < len(res.Coefficients); i++ {
		require.GreaterOrEqual(t, res.Coefficients[i].Eigenvalue, res.Coefficients[i-1].Eigenvalue)
	}

	var energy float64
	for _, c := range res.Coefficients {
		energy += c.Coefficient * c.Coefficient
	}
	require.InDelta(t, 0.25+0.49+3.61+4.41+1.0, energy, 1e-9)
	require.Greater(t, res.Smoothness, 0.0)
}

func TestDecomposeCSVToFile(t *testing.T) {
	data, cfg, dir := fixture(t)
	outPath := filepath.Join(dir, "coeffs.csv")

	out, err := execute(t, "decompose", "--config", cfg, "-k", "cosine", "-f", "csv", "-o", outPath, data)
	require.NoError(t, err)
	require.Empty(t, out)

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"index", "eigenvalue", "coefficient"}, rows[0])
	require.Len(t, rows, 6)
}

func TestFilterSmooths(t *testing.T) {
	data, cfg, _ := fixture(t)

	out, err := execute(t, "filter", "--config", cfg, "--operator", "laplacian",
		"--response", "tikhonov", "--parameter", "2", "-f", "yaml", data)
	require.NoError(t, err)
	require.Contains(t, out, "response: tikhonov")
	require.Contains(t, out, "id: m3")

	out, err = execute(t, "filter", "--config", cfg, "--operator", "laplacian", "--response", "heat", data)
	require.NoError(t, err)
	var res filterResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Less(t, res.After, res.Before)
	require.Len(t, res.Molecules, 5)
}

func TestFilterUnknownResponse(t *testing.T) {
	data, cfg, _ := fixture(t)
	_, err := execute(t, "filter", "--config", cfg, "--response", "bandstop", data)
	require.ErrorContains(t, err, "unknown filter response")
}

func TestBasisTable(t *testing.T) {
	data, cfg, _ := fixture(t)

	out, err := execute(t, "basis", "--config", cfg, "-n", "2", data)
	require.NoError(t, err)
	require.Contains(t, out, "Kernel: rbf")
	require.Contains(t, out, "Gini:")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// two summary lines, blank, header, rule, two modes
	require.Len(t, lines, 7)
}

func TestBasisCached(t *testing.T) {
	data, cfg, dir := fixture(t)

	first, err := execute(t, "basis", "--config", cfg, "--cache", data)
	require.NoError(t, err)
	second, err := execute(t, "basis", "--config", cfg, "--cache", data)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.DirExists(t, filepath.Join(dir, "cache"))
}

func TestKernels(t *testing.T) {
	_, cfg, _ := fixture(t)

	out, err := execute(t, "kernels", "--config", cfg)
	require.NoError(t, err)
	for _, want := range []string{"rbf", "tanimoto", "normalized-laplacian"} {
		require.Contains(t, out, want)
	}
}

func TestConfigShow(t *testing.T) {
	_, cfg, _ := fixture(t)

	out, err := execute(t, "config", "show", "--config", cfg, "-k", "laplacian")
	require.NoError(t, err)
	require.Contains(t, out, "name: laplacian")
	require.Contains(t, out, "format: json")
}

func TestInvalidFlags(t *testing.T) {
	data, cfg, _ := fixture(t)

	_, err := execute(t, "decompose", "--config", cfg, "-k", "nope", data)
	require.Error(t, err)

	_, err = execute(t, "decompose", "--config", cfg, "--operator", "random-walk", data)
	require.Error(t, err)
}

func TestPlotCommands(t *testing.T) {
	data, cfg, dir := fixture(t)
	plots := filepath.Join(dir, "plots")

	_, err := execute(t, "plot", "signal", "--config", cfg, "--sorted", "--name", "coeffs", data)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(plots, "coeffs.png"))

	_, err = execute(t, "plot", "spectrum", "--config", cfg, "--kernels", "rbf, cosine", "--name", "cmp.svg", data)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(plots, "cmp.svg"))

	_, err = execute(t, "plot", "graph", "--config", cfg, "--subdir", "graphs", "--circular", data)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(plots, "graphs", "graph.png"))

	_, err = execute(t, "plot", "signal", "--config", cfg, "--name", "a.b.png", data)
	require.Error(t, err)
}
