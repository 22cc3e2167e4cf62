package viz

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// DefaultDir is the directory [Save] writes into when none is given.
const DefaultDir = "Images"

// SaveOption configures [Save].
type SaveOption func(*saveConfig)

type saveConfig struct {
	dir           string
	subDir        string
	width, height vg.Length
}

// WithDir sets the output directory.
func WithDir(dir string) SaveOption {
	return func(cfg *saveConfig) { cfg.dir = dir }
}

// WithSubDir places the file in a subdirectory of the output directory,
// creating it when missing.
func WithSubDir(sub string) SaveOption {
	return func(cfg *saveConfig) { cfg.subDir = sub }
}

// WithSize sets the canvas size in inches.
func WithSize(width, height float64) SaveOption {
	return func(cfg *saveConfig) {
		if width > 0 && height > 0 {
			cfg.width, cfg.height = vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch
		}
	}
}

// Save renders p to name and returns the written path.
//
// The format follows the extension (png, svg, pdf, eps, jpg, tif); a name
// without extension is written as png. Names with more than one period or
// ending in a period are rejected. The file is replaced atomically.
func Save(p *plot.Plot, name string, opts ...SaveOption) (string, error) {
	cfg := saveConfig{dir: DefaultDir, width: 8 * vg.Inch, height: 6 * vg.Inch}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if strings.Count(name, ".") > 1 {
		return "", fmt.Errorf("%w: %q", ErrBadFileName, name)
	}
	if name == "" || strings.HasSuffix(name, ".") || strings.ContainsRune(name, filepath.Separator) {
		return "", fmt.Errorf("%w: %q", ErrBadFileName, name)
	}

	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		ext = "png"
		name += ".png"
	}

	dir := cfg.dir
	if cfg.subDir != "" {
		dir = filepath.Join(dir, cfg.subDir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create plot directory: %w", err)
	}

	wt, err := p.WriterTo(cfg.width, cfg.height, strings.ToLower(ext))
	if err != nil {
		return "", fmt.Errorf("plot format %q: %w", ext, err)
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("render plot: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := renameio.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write plot: %w", err)
	}
	return path, nil
}
