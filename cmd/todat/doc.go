// Command todat generates the synthetic sine/cosine data used by the plotting examples.
//
// For 100 phase offsets evenly spaced over [0, 2π] it writes data.00.dat through
// data.99.dat, each holding 1024 rows of "t sin(4πt+phase) cos(4πt+phase)" with
// ten decimal places.
//
// Usage:
//
//	todat [output_dir]
package main
