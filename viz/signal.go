package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-chemsp/stats/spectral"
)

// SignalOption configures [SignalPlot] and [SpectrumPlot].
type SignalOption func(*signalConfig)

type signalConfig struct {
	yMin, yMax float64
	yLimSet    bool
	sorted     bool
	gini       bool
	lineWidth  vg.Length
	title      string
}

func defaultSignalConfig() signalConfig {
	return signalConfig{
		yMin:      -5,
		yMax:      5,
		gini:      true,
		lineWidth: vg.Points(1),
	}
}

func applySignalOptions(opts []SignalOption) signalConfig {
	cfg := defaultSignalConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithYLim sets the y-axis range. The default is (-5, 5).
func WithYLim(lo, hi float64) SignalOption {
	return func(cfg *signalConfig) {
		cfg.yMin, cfg.yMax, cfg.yLimSet = lo, hi, true
	}
}

// WithSorted draws |c| in ascending order instead of the signed coefficients.
func WithSorted() SignalOption {
	return func(cfg *signalConfig) { cfg.sorted = true }
}

// WithoutGini suppresses the Gini coefficient annotation and legend values.
func WithoutGini() SignalOption {
	return func(cfg *signalConfig) { cfg.gini = false }
}

// WithLineWidth sets the stem or curve width in points.
func WithLineWidth(points float64) SignalOption {
	return func(cfg *signalConfig) {
		if points > 0 {
			cfg.lineWidth = vg.Points(points)
		}
	}
}

// WithTitle sets the plot title.
func WithTitle(title string) SignalOption {
	return func(cfg *signalConfig) { cfg.title = title }
}

// SignalPlot draws the coefficient spectrum as a stem plot: one vertical
// segment from 0 to c[k] per coefficient, annotated with its Gini coefficient.
func SignalPlot(coeffs []float64, opts ...SignalOption) (*plot.Plot, error) {
	if len(coeffs) == 0 {
		return nil, ErrEmptySpectrum
	}
	cfg := applySignalOptions(opts)
	if err := validateYLim(cfg.yMin, cfg.yMax); err != nil {
		return nil, err
	}

	values := coeffs
	if cfg.sorted {
		values = spectral.SortedMagnitudes(coeffs)
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "Eigenvector index"
	p.Y.Label.Text = "Coefficient"
	p.Y.Min, p.Y.Max = cfg.yMin, cfg.yMax
	p.X.Min, p.X.Max = -1, float64(len(values))

	for k, c := range values {
		stem, err := plotter.NewLine(plotter.XYs{{X: float64(k), Y: 0}, {X: float64(k), Y: c}})
		if err != nil {
			return nil, fmt.Errorf("stem %d: %w", k, err)
		}
		stem.LineStyle.Width = cfg.lineWidth
		stem.LineStyle.Color = color.Black
		p.Add(stem)
	}

	if cfg.gini {
		label, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: 0.1, Y: cfg.yMax - cfg.yMax/10}},
			Labels: []string{fmt.Sprintf("Gini Coefficient: %.4f", spectral.Gini(values))},
		})
		if err != nil {
			return nil, err
		}
		p.Add(label)
	}

	return p, nil
}

// Series is a named coefficient spectrum, e.g. one per representation.
type Series struct {
	Name   string
	Coeffs []float64
}

// SpectrumPlot overlays the sorted magnitude spectra of several series.
// Legend entries read "name (gini)". The y range defaults to the data
// unless [WithYLim] is given.
func SpectrumPlot(series []Series, opts ...SignalOption) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, ErrEmptySpectrum
	}
	cfg := applySignalOptions(opts)
	if cfg.yLimSet {
		if err := validateYLim(cfg.yMin, cfg.yMax); err != nil {
			return nil, err
		}
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "Rank"
	p.Y.Label.Text = "|Coefficient|"
	p.Legend.Top = true
	p.Legend.Left = true

	maxLen := 0
	for i, s := range series {
		if len(s.Coeffs) == 0 {
			return nil, fmt.Errorf("%w: series %q", ErrEmptySpectrum, s.Name)
		}
		sorted := spectral.SortedMagnitudes(s.Coeffs)
		pts := make(plotter.XYs, len(sorted))
		for k, v := range sorted {
			pts[k] = plotter.XY{X: float64(k), Y: v}
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Name, err)
		}
		line.LineStyle.Width = cfg.lineWidth
		line.LineStyle.Color = plotutil.Color(i)
		p.Add(line)

		name := s.Name
		if cfg.gini {
			name = fmt.Sprintf("%s (%.4f)", s.Name, spectral.Gini(sorted))
		}
		p.Legend.Add(name, line)

		maxLen = max(maxLen, len(sorted))
	}

	p.X.Min, p.X.Max = 0, float64(maxLen)
	if cfg.yLimSet {
		p.Y.Min, p.Y.Max = cfg.yMin, cfg.yMax
	}
	return p, nil
}
