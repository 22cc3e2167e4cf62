// Package core holds small numeric helpers shared by the graph, transform,
// and statistics packages: buffer reuse, finiteness checks, compensated
// sums, and vector products backed by SIMD block kernels.
package core
