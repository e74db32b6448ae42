// Package sine generates synthetic sine/cosine sample data for plotting examples.
//
// For each of a fixed number of phase offsets spread over [0, 2π] it samples a
// sine and a cosine of the same frequency over t in [0, 1] and writes them as
// data.NN.dat text tables. It supports:
//   - Text tables of (t, sin, cos) rows with configurable precision
//   - Stereo WAV rendering of the same pair (left sine, right cosine)
//   - Dominant frequency bin estimation of a sampled waveform
package sine
