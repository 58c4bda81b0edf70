// Package factor implements the dense factorization engines: unpivoted
// LU and three QR algorithms, with the triangular solves built on them.
package factor

import (
	"github.com/exactmat/exactmat/mat"
	"github.com/exactmat/exactmat/num"
)

// LU computes the unpivoted Doolittle factorization A = L·U with L
// unit-lower-triangular and U upper-triangular.
//
// A zero pivot fails with mat.ErrNotRegular; no row exchange is ever
// attempted. A non-square input fails with mat.ErrNotSquare.
func LU[T num.Value[T]](m *mat.Matrix[T]) (l, u *mat.Matrix[T], err error) {
	if m.Width() != m.Height() {
		return nil, nil, mat.ErrNotSquare
	}
	width := m.Width()

	l = mat.New[T](width, width)
	u = mat.New[T](width, width)
	d := m.CopyNew()

	one := num.One[T]()

	for layer := 0; layer < width; layer++ {
		a := d.Get(layer, layer)
		if num.IsZero(a) {
			return nil, nil, mat.ErrNotRegular
		}

		l.Set(layer, layer, one)
		u.Set(layer, layer, a)

		// Rows below the pivot are independent of each other.
		for i := layer + 1; i < width; i++ {
			l.Set(i, layer, d.Get(i, layer).Div(a))
			u.Set(layer, i, d.Get(layer, i))

			for j := layer + 1; j < width; j++ {
				d.Set(i, j, d.Get(i, j).Sub(d.Get(layer, j).Mul(d.Get(i, layer)).Div(a)))
			}
		}
	}

	return l, u, nil
}

// SolveLU solves L·U·x = b by forward substitution against L followed by
// back substitution against U. L and U must be square of equal size and
// b a column vector of matching height, else mat.ErrSizeMismatch.
func SolveLU[T num.Value[T]](l, u, b *mat.Matrix[T]) (*mat.Matrix[T], error) {
	if l.Width() != l.Height() ||
		u.Width() != u.Height() ||
		b.Width() != 1 ||
		b.Height() != l.Height() ||
		l.Width() != u.Width() {
		return nil, mat.ErrSizeMismatch
	}

	v := forwardSubstitute(l, b)
	return backSubstitute(u, v), nil
}

// forwardSubstitute solves L·x = b for unit-lower-triangular L.
func forwardSubstitute[T num.Value[T]](l, b *mat.Matrix[T]) *mat.Matrix[T] {
	n := l.Width()
	x := mat.New[T](1, n)
	for i := 0; i < n; i++ {
		xi := b.Get(i, 0)
		for j := 0; j < i; j++ {
			xi = xi.Sub(l.Get(i, j).Mul(x.Get(j, 0)))
		}
		x.Set(i, 0, xi)
	}
	return x
}

// backSubstitute solves U·x = b for upper-triangular U.
func backSubstitute[T num.Value[T]](u, b *mat.Matrix[T]) *mat.Matrix[T] {
	n := u.Width()
	x := mat.New[T](1, n)
	for i := 0; i < n; i++ {
		row := n - i - 1
		xi := b.Get(row, 0)
		for j := 0; j < i; j++ {
			col := n - j - 1
			xi = xi.Sub(u.Get(row, col).Mul(x.Get(col, 0)))
		}
		x.Set(row, 0, xi.Div(u.Get(row, row)))
	}
	return x
}
