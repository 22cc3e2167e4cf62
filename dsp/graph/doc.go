// Package graph builds graph shift operators over chemical space.
//
// Molecules are vertices; edge weights are pairwise kernel similarities of
// their representation vectors. The package produces the dense adjacency
// matrix and the operators derived from it (degree, combinatorial and
// normalized Laplacian). All operators are symmetric, so they are returned
// as gonum [mat.SymDense] values and never modified after construction.
package graph
