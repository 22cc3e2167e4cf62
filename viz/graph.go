package viz

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/cwbudde/algo-chemsp/dsp/graph"
)

// GraphOption configures [GraphPlot].
type GraphOption func(*graphConfig)

type graphConfig struct {
	signal     []float64
	positions  Positions
	title      string
	nodeMap    palette.ColorMap
	greyNodes  bool
	seed       uint64
	iterations int
	radius     vg.Length
	edgeTol    float64
}

// WithSignal colours vertices by a signal value instead of by index.
func WithSignal(signal []float64) GraphOption {
	return func(cfg *graphConfig) { cfg.signal = signal }
}

// WithPositions uses fixed vertex positions instead of a spring layout.
func WithPositions(pos Positions) GraphOption {
	return func(cfg *graphConfig) { cfg.positions = pos }
}

// WithGraphTitle sets the plot title.
func WithGraphTitle(title string) GraphOption {
	return func(cfg *graphConfig) { cfg.title = title }
}

// WithNodeColorMap overrides the vertex colour map. A nil map draws grey vertices.
func WithNodeColorMap(cm palette.ColorMap) GraphOption {
	return func(cfg *graphConfig) {
		cfg.nodeMap = cm
		cfg.greyNodes = cm == nil
	}
}

// WithLayoutSeed sets the spring layout seed and iteration count.
func WithLayoutSeed(seed uint64, iterations int) GraphOption {
	return func(cfg *graphConfig) {
		cfg.seed = seed
		cfg.iterations = iterations
	}
}

// WithNodeRadius sets the vertex glyph radius in points.
func WithNodeRadius(points float64) GraphOption {
	return func(cfg *graphConfig) {
		if points > 0 {
			cfg.radius = vg.Points(points)
		}
	}
}

// GraphPlot draws the weighted graph described by adj.
//
// Edges are shaded from light to dark grey by weight and become more opaque
// as they strengthen. Vertices are coloured with a diverging map, by signal
// value when [WithSignal] is given and by index otherwise. The positions
// used are returned so several signals can be drawn on one embedding.
func GraphPlot(adj mat.Symmetric, opts ...GraphOption) (*plot.Plot, Positions, error) {
	cfg := graphConfig{
		seed:    1,
		radius:  vg.Points(5),
		edgeTol: 1e-12,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := adj.SymmetricDim()
	if n == 0 {
		return nil, nil, graph.ErrEmptyInput
	}
	if cfg.signal != nil && len(cfg.signal) != n {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrSignalLength, len(cfg.signal), n)
	}

	pos := cfg.positions
	switch {
	case pos == nil:
		pos = SpringLayout(adj, cfg.seed, cfg.iterations)
	case len(pos) != n:
		return nil, nil, fmt.Errorf("positions: got %d, want %d", len(pos), n)
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.HideAxes()

	if err := addEdges(p, graph.Edges(adj, cfg.edgeTol), pos); err != nil {
		return nil, nil, err
	}

	colors, err := nodeColors(cfg, n)
	if err != nil {
		return nil, nil, err
	}

	pts := make(plotter.XYs, n)
	for i, q := range pos {
		pts[i] = plotter.XY{X: q.X, Y: q.Y}
	}
	nodes, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, nil, err
	}
	nodes.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{Color: colors[i], Radius: cfg.radius, Shape: draw.CircleGlyph{}}
	}
	outline, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, nil, err
	}
	outline.GlyphStyle = draw.GlyphStyle{Color: color.Black, Radius: cfg.radius, Shape: draw.RingGlyph{}}
	p.Add(nodes, outline)

	return p, pos, nil
}

func addEdges(p *plot.Plot, edges []graph.Edge, pos Positions) error {
	if len(edges) == 0 {
		return nil
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, e := range edges {
		lo = math.Min(lo, e.Weight)
		hi = math.Max(hi, e.Weight)
	}

	for _, e := range edges {
		line, err := plotter.NewLine(plotter.XYs{
			{X: pos[e.I].X, Y: pos[e.I].Y},
			{X: pos[e.J].X, Y: pos[e.J].Y},
		})
		if err != nil {
			return err
		}
		line.LineStyle.Color = edgeColor(normalize(e.Weight, lo, hi))
		line.LineStyle.Width = vg.Points(1)
		p.Add(line)
	}
	return nil
}

// edgeColor maps a normalized weight to grey: weak edges light and faint,
// strong edges dark and opaque.
func edgeColor(w float64) color.Color {
	level := uint8(math.Round(255 * (1 - 0.8*w)))
	alpha := uint8(math.Round(255 * (0.2 + 0.8*w)))
	return color.NRGBA{R: level, G: level, B: level, A: alpha}
}

func nodeColors(cfg graphConfig, n int) ([]color.Color, error) {
	out := make([]color.Color, n)
	if cfg.greyNodes {
		for i := range out {
			out[i] = color.Gray{Y: 128}
		}
		return out, nil
	}

	cm := cfg.nodeMap
	if cm == nil {
		cm = moreland.SmoothBlueRed()
	}
	cm.SetMin(0)
	cm.SetMax(1)

	lo, hi := 0.0, float64(max(n-1, 1))
	if cfg.signal != nil {
		lo, hi = math.Inf(1), math.Inf(-1)
		for _, v := range cfg.signal {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}

	for i := range out {
		v := float64(i)
		if cfg.signal != nil {
			v = cfg.signal[i]
		}
		c, err := cm.At(normalize(v, lo, hi))
		if err != nil {
			return nil, fmt.Errorf("node %d colour: %w", i, err)
		}
		out[i] = c
	}
	return out, nil
}

// normalize maps v from [lo, hi] onto [0, 1]; a degenerate range maps to 0.5.
func normalize(v, lo, hi float64) float64 {
	if !(hi > lo) {
		return 0.5
	}
	return math.Min(1, math.Max(0, (v-lo)/(hi-lo)))
}
