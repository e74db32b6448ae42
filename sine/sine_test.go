package sine

import "bufio"
import "bytes"
import "encoding/binary"
import "math"
import "os"
import "path/filepath"
import "strconv"
import "strings"
import "testing"

import "github.com/faiface/beep/wav"

func TestPhases(t *testing.T) {
	var phases = NewSine().Phases()
	if len(phases) != 100 {
		t.Fatalf("got %d phases", len(phases))
	}
	if phases[0] != 0 || math.Abs(phases[99]-2*math.Pi) > 1e-12 {
		t.Errorf("phase range %v..%v", phases[0], phases[99])
	}
	if math.Abs(phases[1]-2*math.Pi/99) > 1e-12 {
		t.Errorf("phase step %v", phases[1])
	}
}

func TestWriteFirstRow(t *testing.T) {
	var buf bytes.Buffer
	if err := NewSine().Write(&buf, 0); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 1024 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0] != "0.0000000000 0.0000000000 1.0000000000" {
		t.Errorf("first row %q", lines[0])
	}
	if !strings.HasPrefix(lines[1023], "1.0000000000 ") {
		t.Errorf("last row %q", lines[1023])
	}
}

func TestWriteNoSamples(t *testing.T) {
	var s = NewSine()
	s.NumSamples = 0
	if err := s.Write(&bytes.Buffer{}, 0); err != ErrNoSamples {
		t.Errorf("got %v", err)
	}
}

func TestToDats(t *testing.T) {
	var dir = t.TempDir()
	written, err := NewSine().ToDats(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(written) != 100 {
		t.Fatalf("wrote %d files", len(written))
	}
	if filepath.Base(written[0]) != "data.00.dat" || filepath.Base(written[99]) != "data.99.dat" {
		t.Errorf("names %s..%s", written[0], written[99])
	}

	for _, path := range []string{written[0], written[42], written[99]} {
		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		var rows int
		var last = -1.0
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			cols := strings.Fields(scanner.Text())
			if len(cols) != 3 {
				t.Fatalf("%s: row %q", path, scanner.Text())
			}
			tv, err := strconv.ParseFloat(cols[0], 64)
			if err != nil {
				t.Fatal(err)
			}
			if tv <= last {
				t.Fatalf("%s: t not increasing at row %d", path, rows)
			}
			last = tv
			rows++
		}
		f.Close()
		if rows != 1024 {
			t.Errorf("%s: %d rows", path, rows)
		}
		if last != 1 {
			t.Errorf("%s: last t %v", path, last)
		}
	}
}

func TestToDatsMissingDir(t *testing.T) {
	written, err := NewSine().ToDats(filepath.Join(t.TempDir(), "missing"))
	if err == nil || len(written) != 0 {
		t.Errorf("got %d files, err %v", len(written), err)
	}
}

func TestSampleIdentity(t *testing.T) {
	var s = NewSine()
	tv, y1, y2 := s.Sample(1.3)
	for i := range tv {
		if d := y1[i]*y1[i] + y2[i]*y2[i]; math.Abs(d-1) > 1e-12 {
			t.Fatalf("row %d: sin²+cos² = %v", i, d)
		}
	}
}

func TestPeak(t *testing.T) {
	var s = NewSine()
	for _, phase := range []float64{0, 1, math.Pi} {
		_, y1, y2 := s.Sample(phase)
		if p := Peak(y1); p != 2 {
			t.Errorf("phase %v: sine peak bin %d", phase, p)
		}
		if p := Peak(y2); p != 2 {
			t.Errorf("phase %v: cosine peak bin %d", phase, p)
		}
	}
}

func TestToWav(t *testing.T) {
	var path = filepath.Join(t.TempDir(), WavName(0))
	if err := NewSine().ToWav(path, 0); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	defer stream.Close()

	if format.NumChannels != 2 || int(format.SampleRate) != 1024 {
		t.Errorf("format %+v", format)
	}
	if stream.Len() != 1024 {
		t.Errorf("got %d samples", stream.Len())
	}

	// first frame follows the 44 byte header: left sin(0), right cos(0) at full scale
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != 44+1024*4 {
		t.Fatalf("file size %d", len(raw))
	}
	left := int16(binary.LittleEndian.Uint16(raw[44:]))
	right := int16(binary.LittleEndian.Uint16(raw[46:]))
	if left != 0 || right != 32767 {
		t.Errorf("first frame L=%d R=%d", left, right)
	}
}

func TestToWavs(t *testing.T) {
	var s = NewSine()
	s.NumPhases = 3
	written, err := s.ToWavs(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(written) != 3 || filepath.Base(written[2]) != "data.02.wav" {
		t.Errorf("wrote %v", written)
	}
}
