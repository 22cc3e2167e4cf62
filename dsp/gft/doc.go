// Package gft implements the graph Fourier transform.
//
// The Fourier basis of a graph is the orthonormal eigenbasis of a symmetric
// graph shift operator (adjacency or Laplacian). Projecting a vertex signal
// onto it yields the coefficient spectrum; eigenvalues play the role of
// frequencies. Spectral filters scale each coefficient by a response
// evaluated at its eigenvalue before transforming back.
package gft
