// Package matio reads and writes the textual matrix file format used by
// the problem directories: an optional Method= selector followed by one
// bracketed matrix, or a pair of bracketed matrices holding the real and
// imaginary parts of a complex one.
package matio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/exactmat/exactmat/factor"
	"github.com/exactmat/exactmat/mat"
	"github.com/exactmat/exactmat/num"
	"github.com/exactmat/exactmat/utils"
)

// ErrInvalidFormat reports input that does not follow the matrix file
// format.
var ErrInvalidFormat = errors.New("invalid matrix file format")

// File is the decoded content of a matrix file: exactly one of Real and
// Complex is set. Method is zero when the file carries no selector.
type File struct {
	Real    *mat.Matrix[num.Real]
	Complex *mat.Matrix[num.Complex]
	Method  factor.QRMethod
}

// IsComplex reports whether the file held a (real, imaginary) pair.
func (f *File) IsComplex() bool {
	return f.Complex != nil
}

// Read decodes a matrix file from r.
func Read(r io.Reader) (*File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("matio: %w", err)
	}

	s := string(raw)
	method, s := readMethod(s)

	// Everything up to the first bracket is decoration ("A = ...").
	if i := strings.IndexByte(s, '['); i >= 0 {
		s = s[i:]
	}

	m1, s, err := readSimple(s)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(s, ",") {
		m2, _, err := readSimple(s[1:])
		if err != nil {
			return nil, err
		}
		if m1.Height() != m2.Height() || m1.Width() != m2.Width() {
			return nil, fmt.Errorf("matio: real and imaginary parts: %w", mat.ErrSizeMismatch)
		}

		c := mat.New[num.Complex](m1.Width(), m1.Height())
		for i := 0; i < m1.Height(); i++ {
			for j := 0; j < m1.Width(); j++ {
				c.Set(i, j, num.NewComplex(m1.Get(i, j).Float64(), m2.Get(i, j).Float64()))
			}
		}
		return &File{Complex: c, Method: method}, nil
	}

	return &File{Real: m1, Method: method}, nil
}

// ReadFile decodes the matrix file at path.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// readMethod consumes a leading "Method=1|2|3" selector when present.
func readMethod(s string) (factor.QRMethod, string) {
	next := strings.TrimLeft(s, " \t\r\n")
	rest, ok := strings.CutPrefix(next, "Method=")
	if !ok || rest == "" {
		return 0, s
	}
	switch rest[0] {
	case '1':
		return factor.Householder, rest[1:]
	case '2':
		return factor.Givens, rest[1:]
	case '3':
		return factor.GramSchmidt, rest[1:]
	}
	return 0, s
}

// readSimple decodes one bracketed real matrix. Rows are separated by
// ';', entries by whitespace; short rows are zero-padded to the widest.
func readSimple(s string) (*mat.Matrix[num.Real], string, error) {
	if !strings.HasPrefix(s, "[") {
		return nil, s, ErrInvalidFormat
	}
	s = s[1:]

	var rows [][]float64
	var widths []int

	for done := false; !done; {
		var row []float64
		for {
			// Dots cover the MATLAB "..." line continuation.
			s = strings.TrimLeft(s, ". \t\r\n")

			x, rest, err := readFloat(s)
			if err != nil {
				return nil, s, err
			}
			s = rest
			row = append(row, x)

			if strings.HasPrefix(s, ";") {
				s = s[1:]
				break
			}
			if strings.HasPrefix(s, "]") {
				s = s[1:]
				done = true
				break
			}
		}
		rows = append(rows, row)
		widths = append(widths, len(row))
	}

	maxWidth := utils.MaxSlice(widths)
	elems := make([]num.Real, 0, len(rows)*maxWidth)
	for _, row := range rows {
		for _, x := range row {
			elems = append(elems, num.NewReal(x))
		}
		for i := len(row); i < maxWidth; i++ {
			elems = append(elems, 0)
		}
	}

	m, err := mat.FromSlice(elems, maxWidth)
	return m, s, err
}

func readFloat(s string) (float64, string, error) {
	if len(s) == 0 || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return 0, s, ErrInvalidFormat
	}

	end := len(s)
	for i, c := range s {
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == ';' || c == ']' {
			end = i
			break
		}
	}

	x, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, s, fmt.Errorf("matio: %q: %w", s[:end], ErrInvalidFormat)
	}
	return x, s[end:], nil
}
