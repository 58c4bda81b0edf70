package num

import (
	"math"
	"strconv"
)

// Complex is a complex scalar a+bi over float64 parts.
type Complex struct {
	Re, Im float64
}

// NewComplex returns the complex number re + im*i.
func NewComplex(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Add returns c + b.
func (c Complex) Add(b Complex) Complex {
	return Complex{Re: c.Re + b.Re, Im: c.Im + b.Im}
}

// Sub returns c - b.
func (c Complex) Sub(b Complex) Complex {
	return Complex{Re: c.Re - b.Re, Im: c.Im - b.Im}
}

// Mul returns c * b: (a+ib)(x+iy) = ax-by + i(ay+bx).
func (c Complex) Mul(b Complex) Complex {
	return Complex{
		Re: c.Re*b.Re - c.Im*b.Im,
		Im: c.Re*b.Im + c.Im*b.Re,
	}
}

// Div returns c / b, computed as c * conj(b) / |b|^2.
func (c Complex) Div(b Complex) Complex {
	mul := c.Mul(b.Conjugate())
	abs := b.NormSquared()
	return Complex{Re: mul.Re / abs, Im: mul.Im / abs}
}

// Neg returns -c.
func (c Complex) Neg() Complex {
	return Complex{Re: -c.Re, Im: -c.Im}
}

// Equal reports whether both parts are equal.
func (c Complex) Equal(b Complex) bool {
	return c.Re == b.Re && c.Im == b.Im
}

// FromFloat64 constructs the complex number x + 0i.
func (Complex) FromFloat64(x float64) Complex {
	return Complex{Re: x}
}

// NormSquared returns re^2 + im^2.
func (c Complex) NormSquared() float64 {
	return c.Re*c.Re + c.Im*c.Im
}

// Conjugate returns the complex conjugate of c.
func (c Complex) Conjugate() Complex {
	return Complex{Re: c.Re, Im: -c.Im}
}

// Absolute returns |c| + 0i.
func (c Complex) Absolute() Complex {
	return Complex{Re: math.Sqrt(c.NormSquared())}
}

func (c Complex) String() string {
	ff := func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	switch {
	case c.Re == 0 && c.Im == 0:
		return "0"
	case c.Re == 0:
		return ff(c.Im) + "i"
	case c.Im == 0:
		return ff(c.Re)
	case c.Im > 0:
		return ff(c.Re) + "+" + ff(c.Im) + "i"
	default:
		return ff(c.Re) + ff(c.Im) + "i"
	}
}
