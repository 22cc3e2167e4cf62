package viz

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Point is a vertex position in layout space.
type Point struct {
	X, Y float64
}

// Positions holds one point per vertex.
type Positions []Point

// CircularLayout places n vertices evenly on the unit circle.
func CircularLayout(n int) Positions {
	pos := make(Positions, n)
	if n == 1 {
		return pos
	}
	for i := range pos {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pos[i] = Point{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return pos
}

// SpringLayout computes a force-directed (Fruchterman-Reingold) layout.
//
// Attraction along an edge scales with |weight|; every pair repels. The
// result is deterministic for a given seed and rescaled to [-1, 1].
// Self-loops are ignored. iterations <= 0 selects 50.
func SpringLayout(adj mat.Symmetric, seed uint64, iterations int) Positions {
	n := adj.SymmetricDim()
	if n == 0 {
		return nil
	}
	if n == 1 {
		return Positions{{}}
	}
	if iterations <= 0 {
		iterations = 50
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	pos := make(Positions, n)
	for i := range pos {
		pos[i] = Point{X: rng.Float64(), Y: rng.Float64()}
	}

	k := math.Sqrt(1 / float64(n))
	temp := 0.1
	cooling := temp / float64(iterations+1)
	disp := make([]Point, n)

	for range iterations {
		clear(disp)

		for i := range n {
			for j := i + 1; j < n; j++ {
				dx := pos[i].X - pos[j].X
				dy := pos[i].Y - pos[j].Y
				d := math.Max(math.Hypot(dx, dy), 0.01)

				f := k * k / d
				w := math.Abs(adj.At(i, j))
				f -= w * d * d / k

				ux, uy := dx/d, dy/d
				disp[i].X += ux * f
				disp[i].Y += uy * f
				disp[j].X -= ux * f
				disp[j].Y -= uy * f
			}
		}

		for i := range pos {
			l := math.Hypot(disp[i].X, disp[i].Y)
			if l == 0 {
				continue
			}
			step := math.Min(l, temp)
			pos[i].X += disp[i].X / l * step
			pos[i].Y += disp[i].Y / l * step
		}
		temp -= cooling
	}

	return rescale(pos)
}

// rescale centres pos and scales it so the largest coordinate magnitude is 1.
func rescale(pos Positions) Positions {
	var cx, cy float64
	for _, p := range pos {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pos))
	cy /= float64(len(pos))

	var lim float64
	for i := range pos {
		pos[i].X -= cx
		pos[i].Y -= cy
		lim = math.Max(lim, math.Max(math.Abs(pos[i].X), math.Abs(pos[i].Y)))
	}
	if lim > 0 {
		for i := range pos {
			pos[i].X /= lim
			pos[i].Y /= lim
		}
	}
	return pos
}
