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

	var s = sine.NewSine()

	written, err := s.ToWavs(dir)
	if err != nil {
		fmt.Printf("Error generating wave files: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%d wave files at %d Hz\n", len(written), s.NumSamples)
}
