package matio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/exactmat/exactmat/mat"
	"github.com/exactmat/exactmat/num"
	"github.com/exactmat/exactmat/poly"
)

func formatSimple(m *mat.Matrix[num.Real]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < m.Height(); i++ {
		if i > 0 {
			sb.WriteString(";\n")
		}
		for j := 0; j < m.Width(); j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.Get(i, j).String())
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// WriteReal encodes a real matrix as "A = ...\n[...];".
func WriteReal(w io.Writer, m *mat.Matrix[num.Real]) error {
	_, err := fmt.Fprintf(w, "A = ...\n%s;", formatSimple(m))
	return err
}

// WriteComplex encodes a complex matrix as a (real, imaginary) pair:
// "A = complex([...],[...]);".
func WriteComplex(w io.Writer, m *mat.Matrix[num.Complex]) error {
	re := mat.New[num.Real](m.Width(), m.Height())
	im := mat.New[num.Real](m.Width(), m.Height())
	for i := 0; i < m.Height(); i++ {
		for j := 0; j < m.Width(); j++ {
			z := m.Get(i, j)
			re.Set(i, j, num.NewReal(z.Re))
			im.Set(i, j, num.NewReal(z.Im))
		}
	}
	_, err := fmt.Fprintf(w, "A = complex(%s,%s);", formatSimple(re), formatSimple(im))
	return err
}

// WritePoly encodes a polynomial as a column of coefficients from the
// highest degree down: "cvec = ...\n[cN; ...; c0];".
func WritePoly[T num.Value[T]](w io.Writer, p poly.Polynomial[T]) error {
	var sb strings.Builder
	sb.WriteString("cvec = ...\n[")
	for i := p.Degree(); i >= 0; i-- {
		sb.WriteString(p.Get(i).String())
		if i > 0 {
			sb.WriteString("; ")
		}
	}
	sb.WriteString("];")
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteFile encodes the matrix held by f at path, choosing the real or
// complex form.
func WriteFile(path string, f *File) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	if f.IsComplex() {
		return WriteComplex(out, f.Complex)
	}
	return WriteReal(out, f.Real)
}
