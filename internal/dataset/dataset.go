// Package dataset loads molecular representations and their property signal
// from CSV or JSON files.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	// ErrEmpty is returned when a file holds no molecules.
	ErrEmpty = errors.New("dataset has no molecules")
	// ErrMissingSignal is returned when the signal column is absent.
	ErrMissingSignal = errors.New("dataset has no signal column")
	// ErrRagged is returned when feature vectors differ in length.
	ErrRagged = errors.New("feature vectors differ in length")
	// ErrUnsupportedFormat is returned for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// Dataset is a set of molecules with representation vectors and one
// scalar property (the graph signal) per molecule.
type Dataset struct {
	IDs      []string
	Features []string
	X        [][]float64
	Signal   []float64
}

// Len returns the number of molecules.
func (d Dataset) Len() int { return len(d.X) }

// Option configures loading.
type Option func(*config)

type config struct {
	signalColumn string
	idColumn     string
}

// WithSignalColumn names the CSV column holding the signal. Default "signal".
func WithSignalColumn(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.signalColumn = name
		}
	}
}

// WithIDColumn names the optional CSV identifier column. Default "id".
func WithIDColumn(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.idColumn = name
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{signalColumn: "signal", idColumn: "id"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Load reads a dataset, choosing the decoder by file extension.
func Load(path string, opts ...Option) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f, opts...)
	case ".json":
		return ReadJSON(f)
	default:
		return Dataset{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ReadCSV decodes a headed CSV. The signal column and optional id column
// are located by name; every other column is a representation feature.
func ReadCSV(r io.Reader, opts ...Option) (Dataset, error) {
	cfg := applyOptions(opts)

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Dataset{}, ErrEmpty
	}
	if err != nil {
		return Dataset{}, fmt.Errorf("read header: %w", err)
	}

	signalCol, idCol := -1, -1
	var featureCols []int
	var ds Dataset
	for i, name := range header {
		name = strings.TrimSpace(name)
		switch name {
		case cfg.signalColumn:
			signalCol = i
		case cfg.idColumn:
			idCol = i
		default:
			featureCols = append(featureCols, i)
			ds.Features = append(ds.Features, name)
		}
	}
	if signalCol < 0 {
		return Dataset{}, fmt.Errorf("%w: %q", ErrMissingSignal, cfg.signalColumn)
	}

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Dataset{}, fmt.Errorf("line %d: %w", line, err)
		}

		s, err := parseFloat(rec[signalCol])
		if err != nil {
			return Dataset{}, fmt.Errorf("line %d signal: %w", line, err)
		}
		row := make([]float64, len(featureCols))
		for j, c := range featureCols {
			if row[j], err = parseFloat(rec[c]); err != nil {
				return Dataset{}, fmt.Errorf("line %d column %q: %w", line, header[c], err)
			}
		}

		id := strconv.Itoa(len(ds.X))
		if idCol >= 0 {
			id = rec[idCol]
		}
		ds.IDs = append(ds.IDs, id)
		ds.X = append(ds.X, row)
		ds.Signal = append(ds.Signal, s)
	}

	if ds.Len() == 0 {
		return Dataset{}, ErrEmpty
	}
	return ds, nil
}

type jsonMolecule struct {
	ID       string    `json:"id"`
	Features []float64 `json:"features"`
	Signal   *float64  `json:"signal"`
}

// ReadJSON decodes an array of {"id", "features", "signal"} objects.
func ReadJSON(r io.Reader) (Dataset, error) {
	var mols []jsonMolecule
	if err := json.NewDecoder(r).Decode(&mols); err != nil {
		return Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}
	if len(mols) == 0 {
		return Dataset{}, ErrEmpty
	}

	var ds Dataset
	dim := len(mols[0].Features)
	for i, m := range mols {
		if len(m.Features) != dim {
			return Dataset{}, fmt.Errorf("%w: molecule %d has %d, want %d", ErrRagged, i, len(m.Features), dim)
		}
		if m.Signal == nil {
			return Dataset{}, fmt.Errorf("%w: molecule %d", ErrMissingSignal, i)
		}
		id := m.ID
		if id == "" {
			id = strconv.Itoa(i)
		}
		ds.IDs = append(ds.IDs, id)
		ds.X = append(ds.X, m.Features)
		ds.Signal = append(ds.Signal, *m.Signal)
	}
	return ds, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
