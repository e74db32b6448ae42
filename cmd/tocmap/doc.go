// Command tocmap exports the built-in color gradients to flat .cmap tables.
//
// One file named <gradient>.cmap is written per gradient, one color entry per row,
// with the red, green and blue channels separated by spaces. Reversed "_r" gradients
// are skipped.
//
// Usage:
//
//	tocmap [-float] [-entries 256] [output_dir]
//
// By default channels are written as integers in [0, 256]; -float writes
// normalized fractions instead.
package main
