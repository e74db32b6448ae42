package sine

import "errors"
import "fmt"
import "io"
import "math"
import "path/filepath"

import "github.com/aclements/go-moremath/vec"

// Sine represents the configuration for generating phase-shifted sample data.
type Sine struct {
	NumPhases  int
	NumSamples int
	// full periods over t in [0, 1]
	Cycles float64
	// digits after the decimal point in .dat files
	Precision int
}

// NewSine creates a new Sine instance with default values.
func NewSine() *Sine {
	return &Sine{
		NumPhases:  100,
		NumSamples: 1024,
		Cycles:     2,
		Precision:  10,
	}
}

var ErrNoSamples = errors.New("noSamples")

// Phases returns NumPhases evenly spaced offsets over [0, 2π], both ends included.
func (s *Sine) Phases() []float64 {
	return linspace(0, 2*math.Pi, s.NumPhases)
}

// Times returns NumSamples evenly spaced time points over [0, 1], both ends included.
func (s *Sine) Times() []float64 {
	return linspace(0, 1, s.NumSamples)
}

// Sample computes the time points and both waveforms for a phase offset.
func (s *Sine) Sample(phase float64) (t, y1, y2 []float64) {
	t = s.Times()
	var omega = 2 * math.Pi * s.Cycles
	y1 = vec.Map(func(x float64) float64 { return math.Sin(x*omega + phase) }, t)
	y2 = vec.Map(func(x float64) float64 { return math.Cos(x*omega + phase) }, t)
	return
}

// Write writes one "t y1 y2" line per sample to w.
func (s *Sine) Write(w io.Writer, phase float64) error {
	if s.NumSamples <= 0 {
		return ErrNoSamples
	}
	t, y1, y2 := s.Sample(phase)
	return dumprows(w, s.Precision, t, y1, y2)
}

// DatName returns the file name of the n-th phase table.
func DatName(n int) string {
	return fmt.Sprintf("data.%02d.dat", n)
}

// WavName returns the file name of the n-th phase recording.
func WavName(n int) string {
	return fmt.Sprintf("data.%02d.wav", n)
}

// ToDat writes the table for a single phase offset to path.
func (s *Sine) ToDat(path string, phase float64) error {
	return dumpdat(path, s, phase)
}

// ToDats writes data.NN.dat for every phase offset into dir.
// The first failure stops the remaining work.
func (s *Sine) ToDats(dir string) ([]string, error) {
	return s.each(dir, DatName, s.ToDat)
}

// ToWav renders a single phase offset as a stereo WAV file at path.
// The sample rate equals NumSamples so the file lasts one second.
func (s *Sine) ToWav(path string, phase float64) error {
	if s.NumSamples <= 0 {
		return ErrNoSamples
	}
	_, y1, y2 := s.Sample(phase)
	return dumpwav(path, y1, y2, s.NumSamples)
}

// ToWavs writes data.NN.wav for every phase offset into dir.
func (s *Sine) ToWavs(dir string) ([]string, error) {
	return s.each(dir, WavName, s.ToWav)
}

func (s *Sine) each(dir string, name func(int) string, save func(string, float64) error) (written []string, err error) {
	for n, phase := range s.Phases() {
		path := filepath.Join(dir, name(n))
		if err = save(path, phase); err != nil {
			return
		}
		written = append(written, path)
	}
	return
}

// Peak returns the dominant non-DC frequency bin of buf.
func Peak(buf []float64) int {
	return peak(buf)
}

func linspace(lo, hi float64, num int) []float64 {
	if num <= 0 {
		return nil
	}
	if num == 1 {
		return []float64{lo}
	}
	return vec.Linspace(lo, hi, num)
}
