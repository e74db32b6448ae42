package main

import (
	"flag"
	"fmt"
	"github.com/neurlang/plotdata/cmap"
	"os"
)

func main() {
	var asFloat = flag.Bool("float", false, "write normalized fractions instead of integers")
	var entries = flag.Int("entries", cmap.Entries, "color entries per gradient")
	flag.Parse()

	if *entries <= 0 {
		fmt.Printf("Error exporting colormaps: -entries must be positive, got %d\n", *entries)
		os.Exit(1)
	}

	// Output to the current directory unless one is provided
	var dir = "."
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	var mode = cmap.Integer
	if *asFloat {
		mode = cmap.Float
	}

	written, err := cmap.Export(dir, cmap.Builtin(*entries), mode)
	for _, path := range written {
		fmt.Printf("%s: %d rows (%v)\n", path, *entries, mode)
	}
	if err != nil {
		fmt.Printf("Error exporting colormaps: %v\n", err)
		os.Exit(1)
	}
}
