package num

import "math"

// Fraction is a rational number over an integer-like component type.
//
// Invariants after every construction: the denominator is the absolute
// value of the original denominator, the sign lives entirely in the
// numerator, and gcd(numerator, denominator) = 1.
type Fraction[T Integer[T]] struct {
	num, den T
}

// NewFraction builds the fully reduced fraction num/den. The denominator
// comes first, matching the order used throughout the engines.
func NewFraction[T Integer[T]](den, num T) Fraction[T] {
	zero := Zero[T]()
	sign := (den.Cmp(zero) >= 0) == (num.Cmp(zero) >= 0)
	den = den.Absolute()
	num = num.Absolute()
	if !sign {
		num = num.Neg()
	}

	f := Fraction[T]{num: num, den: den}
	f.reduce()
	return f
}

// Num returns the numerator.
func (f Fraction[T]) Num() T {
	return f.num
}

// Den returns the denominator.
func (f Fraction[T]) Den() T {
	return f.den
}

// gcd computes the Euclidean greatest common divisor via repeated
// a, b = b, a mod b.
func gcd[T Integer[T]](a, b T) T {
	zero := Zero[T]()
	for !b.Equal(zero) {
		a, b = b, a.Rem(b)
	}
	return a
}

func (f *Fraction[T]) reduce() {
	g := gcd(f.num, f.den)
	f.num = f.num.Div(g)
	f.den = f.den.Div(g)
}

// Add returns f + b by cross-multiplication followed by reduction.
func (f Fraction[T]) Add(b Fraction[T]) Fraction[T] {
	den := f.den.Mul(b.den)
	num := f.num.Mul(b.den).Add(b.num.Mul(f.den))
	return NewFraction(den, num)
}

// Sub returns f - b.
func (f Fraction[T]) Sub(b Fraction[T]) Fraction[T] {
	den := f.den.Mul(b.den)
	num := f.num.Mul(b.den).Sub(b.num.Mul(f.den))
	return NewFraction(den, num)
}

// Mul returns f * b.
func (f Fraction[T]) Mul(b Fraction[T]) Fraction[T] {
	return NewFraction(f.den.Mul(b.den), f.num.Mul(b.num))
}

// Div returns f / b.
func (f Fraction[T]) Div(b Fraction[T]) Fraction[T] {
	return NewFraction(f.den.Mul(b.num), f.num.Mul(b.den))
}

// Neg returns -f.
func (f Fraction[T]) Neg() Fraction[T] {
	return Fraction[T]{num: f.num.Neg(), den: f.den}
}

// Equal reports whether both reduced representations match.
func (f Fraction[T]) Equal(b Fraction[T]) bool {
	return f.num.Equal(b.num) && f.den.Equal(b.den)
}

// FromFloat64 constructs a fraction from a real scalar literal. Integer
// literals convert exactly; other values are rounded to a denominator of
// one hundred and reduced.
func (Fraction[T]) FromFloat64(x float64) Fraction[T] {
	if x == math.Trunc(x) {
		return Fraction[T]{num: FromFloat64[T](x), den: One[T]()}
	}
	return NewFraction(FromFloat64[T](100), FromFloat64[T](math.Round(x*100)))
}

// NormSquared is not implemented for fractions: the engines never take
// the norm of a rational scalar. Calling it panics.
func (f Fraction[T]) NormSquared() float64 {
	panic("num: Fraction.NormSquared is not implemented")
}

// Conjugate is not implemented for fractions. Calling it panics.
func (f Fraction[T]) Conjugate() Fraction[T] {
	panic("num: Fraction.Conjugate is not implemented")
}

// Absolute is not implemented for fractions. Calling it panics.
func (f Fraction[T]) Absolute() Fraction[T] {
	panic("num: Fraction.Absolute is not implemented")
}

func (f Fraction[T]) String() string {
	return f.num.String() + "/" + f.den.String()
}
