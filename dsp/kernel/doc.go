// Package kernel provides pairwise similarity and distance functions over
// molecular representation vectors.
//
// A [Kernel] is a plain function of two equal-length vectors. Constructors
// validate their hyperparameters once and return closures, so kernels can be
// shared freely between goroutines.
package kernel
