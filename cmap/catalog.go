package cmap

import "strings"

import "github.com/lucasb-eyer/go-colorful"
import "github.com/mazznoer/colorgrad"

// ReversedSuffix marks a gradient that mirrors another gradient of the catalog.
const ReversedSuffix = "_r"

// Catalog maps gradient names to their ordered color entries.
type Catalog map[string][]colorful.Color

var presets = map[string]func() colorgrad.Gradient{
	"viridis": colorgrad.Viridis,
	"plasma":  colorgrad.Plasma,
	"inferno": colorgrad.Inferno,
	"magma":   colorgrad.Magma,
	"cividis": colorgrad.Cividis,
	"turbo":   colorgrad.Turbo,
}

// Builtin samples every preset gradient at entries evenly spaced positions
// and adds the reversed twin of each one under <name>_r.
// A non-positive entries yields empty gradients.
func Builtin(entries int) Catalog {
	var catalog = make(Catalog, 2*len(presets))
	for name, preset := range presets {
		colors := sample(preset(), entries)
		catalog[name] = colors
		catalog[name+ReversedSuffix] = Reverse(colors)
	}
	return catalog
}

func sample(grad colorgrad.Gradient, entries int) []colorful.Color {
	if entries <= 0 {
		return nil
	}
	var colors = make([]colorful.Color, entries)
	for i := range colors {
		var t float64
		if entries > 1 {
			t = float64(i) / float64(entries-1)
		}
		colors[i] = grad.At(t).Clamped()
	}
	return colors
}

// Reverse returns a reversed copy of colors.
func Reverse(colors []colorful.Color) []colorful.Color {
	var out = make([]colorful.Color, len(colors))
	for i, c := range colors {
		out[len(colors)-1-i] = c
	}
	return out
}

// IsReversed reports whether name denotes a mirrored duplicate.
func IsReversed(name string) bool {
	return strings.HasSuffix(name, ReversedSuffix)
}
