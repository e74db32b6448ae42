// Command towav renders the synthetic sine/cosine data as stereo WAV files.
//
// This tool writes data.00.wav through data.99.wav next to the .dat tables produced
// by todat. The left channel carries the sine, the right channel the cosine, and the
// sample rate equals the sample count so each file plays for one second.
//
// Usage:
//
//	towav [output_dir]
package main
