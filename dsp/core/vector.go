package core

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for element-wise products.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) *scratchBuf {
	buf := scratchPool.Get().(*scratchBuf)
	buf.data = EnsureLen(buf.data, n)
	return buf
}

// Sum returns the Kahan-compensated sum of x.
func Sum(x []float64) float64 {
	var sum, c float64
	for _, v := range x {
		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum
}

// Dot returns the inner product of a and b.
//
// The element-wise product is formed with SIMD block kernels into pooled
// scratch memory and then summed, so steady-state calls do not allocate.
// Panics if the slices differ in length.
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("core: Dot length mismatch")
	}
	if len(a) == 0 {
		return 0
	}

	buf := getScratch(len(a))
	vecmath.MulBlock(buf.data, a, b)
	s := Sum(buf.data)
	scratchPool.Put(buf)

	return s
}

// Norm returns the Euclidean norm of x.
func Norm(x []float64) float64 {
	return math.Sqrt(Dot(x, x))
}

// SquaredDistance returns the squared Euclidean distance between a and b.
// Panics if the slices differ in length.
func SquaredDistance(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("core: SquaredDistance length mismatch")
	}

	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return s
}

// ManhattanDistance returns the L1 distance between a and b.
// Panics if the slices differ in length.
func ManhattanDistance(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("core: ManhattanDistance length mismatch")
	}

	var s float64
	for i := range a {
		s += math.Abs(a[i] - b[i])
	}

	return s
}

// AddScaled accumulates dst += scale * src using block kernels.
// scratch must have len(dst) capacity; it is overwritten.
func AddScaled(dst, src, scratch []float64, scale float64) {
	scratch = scratch[:len(dst)]
	vecmath.ScaleBlock(scratch, src, scale)
	vecmath.AddBlockInPlace(dst, scratch)
}
