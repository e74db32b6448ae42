// Package cmap exports color gradient tables to flat text files.
//
// Each gradient of a catalog is written to <name>.cmap, one color entry per line,
// with the red, green and blue channels separated by spaces. It supports:
//   - Float tables with channels as normalized fractions ("%f")
//   - Integer tables with channels scaled by 256 and truncated ("%d")
//   - A built-in catalog sampled from the colorgrad presets
//   - Skipping reversed "_r" twins of gradients already exported
package cmap
