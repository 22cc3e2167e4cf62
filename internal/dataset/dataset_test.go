package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `# three small molecules
id,logp,mw,signal,tpsa
aspirin,1.2,180.2,0.5,63.6
caffeine,-0.1,194.2,1.5,58.4
ethanol,-0.3,46.1,-2,20.2
`

func TestReadCSV(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	want := Dataset{
		IDs:      []string{"aspirin", "caffeine", "ethanol"},
		Features: []string{"logp", "mw", "tpsa"},
		X: [][]float64{
			{1.2, 180.2, 63.6},
			{-0.1, 194.2, 58.4},
			{-0.3, 46.1, 20.2},
		},
		Signal: []float64{0.5, 1.5, -2},
	}
	if diff := cmp.Diff(want, ds); diff != "" {
		t.Fatalf("dataset mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 3, ds.Len())
}

func TestReadCSVCustomColumns(t *testing.T) {
	in := "name,f1,y\na,1,10\nb,2,20\n"
	ds, err := ReadCSV(strings.NewReader(in), WithSignalColumn("y"), WithIDColumn("name"))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, ds.IDs)
	require.Equal(t, []float64{10, 20}, ds.Signal)
	require.Equal(t, [][]float64{{1}, {2}}, ds.X)
}

func TestReadCSVWithoutIDs(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader("f,signal\n1,2\n3,4\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1"}, ds.IDs)
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{name: "empty", in: "", want: ErrEmpty},
		{name: "header only", in: "f,signal\n", want: ErrEmpty},
		{name: "missing signal", in: "f,g\n1,2\n", want: ErrMissingSignal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.in))
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err := ReadCSV(strings.NewReader("f,signal\nx,1\n"))
	require.ErrorContains(t, err, `column "f"`)

	_, err = ReadCSV(strings.NewReader("f,signal\n1,2,3\n"))
	require.Error(t, err)
}

func TestReadJSON(t *testing.T) {
	in := `[
		{"id": "benzene", "features": [1, 0, 1], "signal": 2.1},
		{"features": [0, 1, 1], "signal": -0.4}
	]`
	ds, err := ReadJSON(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []string{"benzene", "1"}, ds.IDs)
	require.Equal(t, []float64{2.1, -0.4}, ds.Signal)

	_, err = ReadJSON(strings.NewReader(`[{"features": [1], "signal": 1}, {"features": [1, 2], "signal": 1}]`))
	require.ErrorIs(t, err, ErrRagged)

	_, err = ReadJSON(strings.NewReader(`[{"features": [1]}]`))
	require.ErrorIs(t, err, ErrMissingSignal)

	_, err = ReadJSON(strings.NewReader(`[]`))
	require.ErrorIs(t, err, ErrEmpty)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "mols.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(sampleCSV), 0o600))
	ds, err := Load(csvPath)
	require.NoError(t, err)
	require.Equal(t, 3, ds.Len())

	txtPath := filepath.Join(dir, "mols.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte(sampleCSV), 0o600))
	_, err = Load(txtPath)
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
}
