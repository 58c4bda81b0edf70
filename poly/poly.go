// Package poly implements dense polynomials over any scalar satisfying
// the num.Value contract, stored as coefficients in ascending degree.
package poly

import (
	"strings"

	"github.com/exactmat/exactmat/num"
	"github.com/exactmat/exactmat/utils"
)

// Polynomial is a dense polynomial with coefficients in ascending degree
// order; the degree is one less than the coefficient count.
//
// The backing sequence only grows when a non-zero coefficient is assigned
// past the current length; it never shrinks when a leading coefficient
// cancels to zero, so Degree reports the storage length, not the
// mathematical degree.
type Polynomial[T num.Value[T]] struct {
	coeffs []T
}

// New returns the empty polynomial.
func New[T num.Value[T]]() Polynomial[T] {
	return Polynomial[T]{}
}

// FromCoeffs returns a polynomial with the given ascending coefficients.
// The slice is copied, including any explicit zero entries.
func FromCoeffs[T num.Value[T]](coeffs []T) Polynomial[T] {
	return Polynomial[T]{coeffs: append([]T(nil), coeffs...)}
}

// Degree returns the stored degree: the coefficient count minus one.
// The empty polynomial has degree -1.
func (p Polynomial[T]) Degree() int {
	return len(p.coeffs) - 1
}

// Coeffs returns the ascending coefficient sequence.
func (p Polynomial[T]) Coeffs() []T {
	return append([]T(nil), p.coeffs...)
}

// Get returns the coefficient of the given power, or the additive
// identity for any power outside the stored range.
func (p Polynomial[T]) Get(power int) T {
	if power < 0 || power >= len(p.coeffs) {
		return num.Zero[T]()
	}
	return p.coeffs[power]
}

// Set assigns the coefficient of the given power. The backing sequence
// grows only when a non-zero value is assigned past the current length;
// assigning zero past the end is a no-op.
func (p *Polynomial[T]) Set(power int, val T) {
	if power < len(p.coeffs) {
		p.coeffs[power] = val
		return
	}
	if num.IsZero(val) {
		return
	}
	zero := num.Zero[T]()
	for len(p.coeffs) <= power {
		p.coeffs = append(p.coeffs, zero)
	}
	p.coeffs[power] = val
}

// Add returns p + b, coefficientwise up to the longer operand.
func (p Polynomial[T]) Add(b Polynomial[T]) Polynomial[T] {
	n := utils.Max(len(p.coeffs), len(b.coeffs))
	var res Polynomial[T]
	for i := 0; i < n; i++ {
		res.Set(i, p.Get(i).Add(b.Get(i)))
	}
	return res
}

// Sub returns p - b.
func (p Polynomial[T]) Sub(b Polynomial[T]) Polynomial[T] {
	n := utils.Max(len(p.coeffs), len(b.coeffs))
	var res Polynomial[T]
	for i := 0; i < n; i++ {
		res.Set(i, p.Get(i).Sub(b.Get(i)))
	}
	return res
}

// Mul returns the full convolution p * b, accumulating from the highest
// coefficient indices down so the result grows once up front.
func (p Polynomial[T]) Mul(b Polynomial[T]) Polynomial[T] {
	var res Polynomial[T]
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		for j := len(b.coeffs) - 1; j >= 0; j-- {
			res.Set(i+j, res.Get(i+j).Add(p.Get(i).Mul(b.Get(j))))
		}
	}
	return res
}

// MulScalar returns p with every coefficient multiplied by x.
func (p Polynomial[T]) MulScalar(x T) Polynomial[T] {
	res := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		res[i] = c.Mul(x)
	}
	return Polynomial[T]{coeffs: res}
}

// DivScalar returns p with every coefficient divided by x.
func (p Polynomial[T]) DivScalar(x T) Polynomial[T] {
	res := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		res[i] = c.Div(x)
	}
	return Polynomial[T]{coeffs: res}
}

// Normalize returns the monic polynomial obtained by dividing every
// coefficient by the leading one. Normalizing the empty polynomial is a
// fatal condition and panics.
func (p Polynomial[T]) Normalize() Polynomial[T] {
	if len(p.coeffs) == 0 {
		panic("poly: cannot normalize the empty polynomial")
	}
	return p.DivScalar(p.Get(p.Degree()))
}

// String formats the coefficients from highest degree to lowest.
func (p Polynomial[T]) String() string {
	if len(p.coeffs) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		sb.WriteString(p.coeffs[i].String())
		if i > 0 {
			sb.WriteString("; ")
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
