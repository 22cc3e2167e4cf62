package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// table is a result that can also be rendered as CSV.
type table interface {
	csvHeader() []string
	csvRows() [][]string
}

// emit encodes v in the configured format to the output file or stdout.
func (a *app) emit(v table) error {
	var buf bytes.Buffer

	switch a.cfg.Output.Format {
	case "json":
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return err
		}
	case "yaml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	case "csv":
		w := csv.NewWriter(&buf)
		if err := w.Write(v.csvHeader()); err != nil {
			return err
		}
		if err := w.WriteAll(v.csvRows()); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown output format %q", a.cfg.Output.Format)
	}

	if a.outPath != "" {
		if err := renameio.WriteFile(a.outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
		a.logger.Info("wrote results", "path", a.outPath)
		return nil
	}
	_, err := a.out.Write(buf.Bytes())
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
