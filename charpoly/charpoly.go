// Package charpoly computes characteristic polynomials of tridiagonal
// matrices by an exact three-term recurrence, together with helpers for
// evaluating the result at arbitrary precision.
//
// Evaluated over floating scalars the recurrence accumulates rounding
// error across steps; over exact integers or rationals it is exact,
// which is why the engines are usually run over num.LongInt.
package charpoly

import (
	"github.com/exactmat/exactmat/mat"
	"github.com/exactmat/exactmat/num"
	"github.com/exactmat/exactmat/poly"
)

// tridiagonalTolerance bounds the squared norm of every entry outside
// the main, sub and super diagonals.
const tridiagonalTolerance = 1e-4

// Characteristic returns det(A - λI) for a square tridiagonal matrix as
// a polynomial in ascending powers of λ.
//
// A non-square input fails with mat.ErrNotSquare; an off-band entry with
// squared norm above the tolerance fails with mat.ErrNotTridiagonal.
func Characteristic[T num.Value[T]](m *mat.Matrix[T]) (poly.Polynomial[T], error) {
	if m.Width() != m.Height() {
		return poly.Polynomial[T]{}, mat.ErrNotSquare
	}
	if !isTridiagonal(m, tridiagonalTolerance) {
		return poly.Polynomial[T]{}, mat.ErrNotTridiagonal
	}

	zero := num.Zero[T]()
	one := num.One[T]()
	minusOne := num.FromFloat64[T](-1)

	width := m.Width()
	switch width {
	case 0:
		return poly.FromCoeffs([]T{zero}), nil
	case 1:
		return poly.FromCoeffs([]T{m.Get(0, 0).Neg(), one}), nil
	case 2:
		return leading2x2(m), nil
	}

	// D_i(λ) = (a_ii - λ)·D_{i-1}(λ) - sub_i·super_i·D_{i-2}(λ)
	p := make([]poly.Polynomial[T], 2, width)
	p[0] = poly.FromCoeffs([]T{m.Get(0, 0), minusOne})
	p[1] = leading2x2(m)

	for i := 2; i < width; i++ {
		p1 := poly.FromCoeffs([]T{m.Get(i, i), minusOne})
		p2 := m.Get(i, i-1).Mul(m.Get(i-1, i))

		p = append(p, p[i-1].Mul(p1).Sub(p[i-2].MulScalar(p2)))
	}

	return p[width-1], nil
}

// leading2x2 expands the determinant of the leading 2x2 block directly:
// ad - cb - (a+d)λ + λ².
func leading2x2[T num.Value[T]](m *mat.Matrix[T]) poly.Polynomial[T] {
	a := m.Get(0, 0)
	b := m.Get(0, 1)
	c := m.Get(1, 0)
	d := m.Get(1, 1)
	return poly.FromCoeffs([]T{
		a.Mul(d).Sub(c.Mul(b)),
		d.Add(a).Mul(num.FromFloat64[T](-1)),
		num.One[T](),
	})
}

func isTridiagonal[T num.Value[T]](m *mat.Matrix[T], closeEnoughToZero float64) bool {
	for i := 0; i < m.Height(); i++ {
		for j := 0; j < m.Width(); j++ {
			if i == j || j == i+1 || i == j+1 {
				continue
			}
			if m.Get(i, j).NormSquared() > closeEnoughToZero {
				return false
			}
		}
	}
	return true
}
