package sine

import "bufio"
import "io"
import "math/cmplx"
import "os"
import "strconv"

import "github.com/faiface/beep"
import "github.com/faiface/beep/wav"
import "github.com/mjibson/go-dsp/fft"
import "github.com/mjibson/go-dsp/window"

func dumprows(w io.Writer, precision int, cols ...[]float64) error {
	bw := bufio.NewWriter(w)
	var line []byte
	for i := range cols[0] {
		line = line[:0]
		for l := range cols {
			if l > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendFloat(line, cols[l][i], 'f', precision, 64)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func dumpdat(name string, s *Sine, phase float64) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	if err := s.Write(f, phase); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	return nil
}

func dumpwav(name string, left, right []float64, sr int) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	var pos = 0
	var stream = beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for n < len(samples) && pos < len(left) {
			samples[n][0] = left[pos]
			samples[n][1] = right[pos]
			n++
			pos++
		}
		return n, n > 0
	})

	var format = beep.Format{
		SampleRate:  beep.SampleRate(sr),
		NumChannels: 2,
		Precision:   2,
	}

	if err := wav.Encode(f, stream, format); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	return nil
}

func peak(buf []float64) int {
	if len(buf) < 4 {
		return 0
	}
	var windowed = make([]float64, len(buf))
	copy(windowed, buf)
	window.Apply(windowed, window.Hann)

	spectrum := fft.FFTReal(windowed)

	var best, bestMag = 0, -1.0
	for j := 1; j <= len(spectrum)/2; j++ {
		if mag := cmplx.Abs(spectrum[j]); mag > bestMag {
			best, bestMag = j, mag
		}
	}
	return best
}
