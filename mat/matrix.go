// Package mat implements a dense row-major matrix generic over any
// scalar satisfying the num.Value contract, together with the typed
// failure kinds shared by the factorization engines.
package mat

import (
	"math"
	"strings"

	"github.com/exactmat/exactmat/num"
)

// Matrix is a dense 2-D container stored row-major as a flat sequence.
// len(elems) == width*height always holds.
//
// Matrices behave as values: every algebraic operation returns a freshly
// constructed matrix and never aliases its inputs.
type Matrix[T num.Value[T]] struct {
	elems  []T
	width  int
	height int
}

// New returns a zero matrix of the given dimensions.
func New[T num.Value[T]](width, height int) *Matrix[T] {
	elems := make([]T, width*height)
	zero := num.Zero[T]()
	for i := range elems {
		elems[i] = zero
	}
	return &Matrix[T]{elems: elems, width: width, height: height}
}

// FromSlice wraps a row-major flat sequence as a matrix of the given
// width. The element count must be a multiple of the width.
func FromSlice[T num.Value[T]](elems []T, width int) (*Matrix[T], error) {
	if len(elems)%width != 0 {
		return nil, ErrSizeMismatch
	}
	return &Matrix[T]{elems: elems, width: width, height: len(elems) / width}, nil
}

// Identity returns the n-by-n identity matrix.
func Identity[T num.Value[T]](n int) *Matrix[T] {
	m := New[T](n, n)
	one := num.One[T]()
	for i := 0; i < n; i++ {
		m.elems[i*n+i] = one
	}
	return m
}

// Scalar returns an n-by-n matrix with every cell set to x, not just the
// diagonal. Callers wanting x·I must scale Identity instead.
func Scalar[T num.Value[T]](x T, n int) *Matrix[T] {
	elems := make([]T, n*n)
	for i := range elems {
		elems[i] = x
	}
	return &Matrix[T]{elems: elems, width: n, height: n}
}

// FromReal lifts a matrix of real scalars into any scalar type.
func FromReal[T num.Value[T]](a *Matrix[num.Real]) *Matrix[T] {
	m := New[T](a.width, a.height)
	for i, v := range a.elems {
		m.elems[i] = num.FromFloat64[T](v.Float64())
	}
	return m
}

// Get returns the element at (row, column).
func (m *Matrix[T]) Get(row, column int) T {
	return m.elems[row*m.width+column]
}

// Set assigns the element at (row, column).
func (m *Matrix[T]) Set(row, column int, val T) {
	m.elems[row*m.width+column] = val
}

// Width returns the number of columns.
func (m *Matrix[T]) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Matrix[T]) Height() int {
	return m.height
}

// Elems returns the backing row-major sequence. Mutating it mutates the
// matrix.
func (m *Matrix[T]) Elems() []T {
	return m.elems
}

// CopyNew returns a deep copy of the matrix.
func (m *Matrix[T]) CopyNew() *Matrix[T] {
	return &Matrix[T]{
		elems:  append([]T(nil), m.elems...),
		width:  m.width,
		height: m.height,
	}
}

// Transpose returns the transposed matrix.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	t := &Matrix[T]{elems: make([]T, len(m.elems)), width: m.height, height: m.width}
	for i := 0; i < m.height; i++ {
		for j := 0; j < m.width; j++ {
			t.elems[j*m.height+i] = m.Get(i, j)
		}
	}
	return t
}

// ConjugateTranspose returns the Hermitian transpose: transposed with
// every entry conjugated.
func (m *Matrix[T]) ConjugateTranspose() *Matrix[T] {
	t := &Matrix[T]{elems: make([]T, len(m.elems)), width: m.height, height: m.width}
	for i := 0; i < m.height; i++ {
		for j := 0; j < m.width; j++ {
			t.elems[j*m.height+i] = m.Get(i, j).Conjugate()
		}
	}
	return t
}

// Row returns row i as a 1-by-width matrix.
func (m *Matrix[T]) Row(i int) *Matrix[T] {
	elems := make([]T, m.width)
	for j := 0; j < m.width; j++ {
		elems[j] = m.Get(i, j)
	}
	return &Matrix[T]{elems: elems, width: m.width, height: 1}
}

// Column returns column j as a height-by-1 matrix.
func (m *Matrix[T]) Column(j int) *Matrix[T] {
	elems := make([]T, m.height)
	for i := 0; i < m.height; i++ {
		elems[i] = m.Get(i, j)
	}
	return &Matrix[T]{elems: elems, width: 1, height: m.height}
}

// Add returns m + b elementwise. The dimensions must match.
func (m *Matrix[T]) Add(b *Matrix[T]) (*Matrix[T], error) {
	if m.width != b.width || m.height != b.height {
		return nil, ErrSizeMismatch
	}
	c := make([]T, len(m.elems))
	for i := range m.elems {
		c[i] = m.elems[i].Add(b.elems[i])
	}
	return &Matrix[T]{elems: c, width: m.width, height: m.height}, nil
}

// Sub returns m - b elementwise. The dimensions must match.
func (m *Matrix[T]) Sub(b *Matrix[T]) (*Matrix[T], error) {
	if m.width != b.width || m.height != b.height {
		return nil, ErrSizeMismatch
	}
	c := make([]T, len(m.elems))
	for i := range m.elems {
		c[i] = m.elems[i].Sub(b.elems[i])
	}
	return &Matrix[T]{elems: c, width: m.width, height: m.height}, nil
}

// Mul returns the matrix product m * b. The inner dimensions must match.
func (m *Matrix[T]) Mul(b *Matrix[T]) (*Matrix[T], error) {
	if m.width != b.height {
		return nil, ErrSizeMismatch
	}
	c := New[T](b.width, m.height)
	for i := 0; i < m.height; i++ {
		for j := 0; j < b.width; j++ {
			acc := c.elems[i*b.width+j]
			for k := 0; k < m.width; k++ {
				acc = acc.Add(m.elems[i*m.width+k].Mul(b.elems[k*b.width+j]))
			}
			c.elems[i*b.width+j] = acc
		}
	}
	return c, nil
}

// MulScalar returns m with every element multiplied by x.
func (m *Matrix[T]) MulScalar(x T) *Matrix[T] {
	c := make([]T, len(m.elems))
	for i := range m.elems {
		c[i] = x.Mul(m.elems[i])
	}
	return &Matrix[T]{elems: c, width: m.width, height: m.height}
}

// DivScalar returns m with every element divided by x.
func (m *Matrix[T]) DivScalar(x T) *Matrix[T] {
	c := make([]T, len(m.elems))
	for i := range m.elems {
		c[i] = m.elems[i].Div(x)
	}
	return &Matrix[T]{elems: c, width: m.width, height: m.height}
}

// NormSquared returns the squared Frobenius norm: the sum of the squared
// norms of all entries, as a float64 approximation.
func (m *Matrix[T]) NormSquared() float64 {
	var sum float64
	for _, v := range m.elems {
		sum += v.NormSquared()
	}
	return sum
}

// Norm returns the Frobenius norm.
func (m *Matrix[T]) Norm() float64 {
	return math.Sqrt(m.NormSquared())
}

// String formats the matrix one row per line between pipes, or "[ ]" for
// a degenerate matrix.
func (m *Matrix[T]) String() string {
	if m.width == 0 || m.height == 0 {
		return "[ ]"
	}
	var sb strings.Builder
	for i := 0; i < m.height; i++ {
		sb.WriteString("| ")
		for j := 0; j < m.width; j++ {
			sb.WriteString(m.Get(i, j).String())
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}
