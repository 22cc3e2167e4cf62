// Package viz renders coefficient spectra and molecular graphs with gonum/plot.
//
// Every function builds and returns a new *plot.Plot; nothing is drawn to a
// shared canvas. Use [Save] to write a plot to disk.
package viz
