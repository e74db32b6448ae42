package main

import (
	"fmt"
	"github.com/neurlang/plotdata/sine"
	"os"
)

func main() {
	// Output to the current directory unless one is provided
	var dir = "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	// Create a new instance of Sine
	var s = sine.NewSine()

	written, err := s.ToDats(dir)
	if err != nil {
		fmt.Printf("Error generating sample data: %v\n", err)
		os.Exit(1)
	}

	_, y1, _ := s.Sample(0)
	fmt.Printf("%d files of %d rows, peak bin %d\n", len(written), s.NumSamples, sine.Peak(y1))
}
