package cmap

import "bufio"
import "fmt"
import "io"
import "os"
import "path/filepath"
import "sort"
import "strings"

import "github.com/lucasb-eyer/go-colorful"

// Mode selects how channel intensities are written.
type Mode int

const (
	// Float writes normalized fractions in [0,1].
	Float Mode = iota
	// Integer writes channels multiplied by 256 and truncated.
	Integer
)

// Extension is appended to the gradient name to form the output file name.
const Extension = ".cmap"

// Entries is the number of samples per gradient when nothing else is requested.
const Entries = 256

func (m Mode) String() string {
	if m == Integer {
		return "int"
	}
	return "float"
}

// Table converts colors to one row of channel values per entry.
func Table(colors []colorful.Color, mode Mode) [][3]float64 {
	var table = make([][3]float64, len(colors))
	for i, c := range colors {
		table[i] = [3]float64{c.R, c.G, c.B}
		if mode == Integer {
			for l := 0; l < 3; l++ {
				// truncates like numpy astype(int), so 1.0 becomes 256
				table[i][l] = float64(int(table[i][l] * 256))
			}
		}
	}
	return table
}

// Format renders a single row.
func Format(row [3]float64, mode Mode) string {
	var cols [3]string
	for l, v := range row {
		if mode == Integer {
			cols[l] = fmt.Sprintf("%d", int(v))
		} else {
			cols[l] = fmt.Sprintf("%f", v)
		}
	}
	return strings.Join(cols[:], " ")
}

// Write writes the table of colors to w, one newline terminated row per entry.
func Write(w io.Writer, colors []colorful.Color, mode Mode) error {
	bw := bufio.NewWriter(w)
	for _, row := range Table(colors, mode) {
		if _, err := bw.WriteString(Format(row, mode) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveCmap writes colors to the file at path.
func SaveCmap(path string, colors []colorful.Color, mode Mode) error {
	return dumpcmap(path, colors, mode)
}

// Name returns the file name of the gradient called name.
func Name(name string) string {
	return name + Extension
}

// Export writes every non-reversed gradient of catalog into dir and returns
// the written paths in name order. A catalog with nothing to export writes
// no files and returns no error. The first failure stops the export.
func Export(dir string, catalog Catalog, mode Mode) ([]string, error) {
	var names = make([]string, 0, len(catalog))
	for name := range catalog {
		if IsReversed(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var written []string
	for _, name := range names {
		path := filepath.Join(dir, Name(name))
		if err := dumpcmap(path, catalog[name], mode); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func dumpcmap(name string, colors []colorful.Color, mode Mode) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	if err := Write(f, colors, mode); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	return nil
}
