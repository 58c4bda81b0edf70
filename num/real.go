package num

import (
	"math"
	"strconv"
)

// Real is a real scalar. Conjugation is the identity and the absolute
// value is the magnitude.
type Real float64

// NewReal returns x as a Real.
func NewReal(x float64) Real {
	return Real(x)
}

// Float64 returns r as a float64.
func (r Real) Float64() float64 {
	return float64(r)
}

// Add returns r + b.
func (r Real) Add(b Real) Real {
	return r + b
}

// Sub returns r - b.
func (r Real) Sub(b Real) Real {
	return r - b
}

// Mul returns r * b.
func (r Real) Mul(b Real) Real {
	return r * b
}

// Div returns r / b.
func (r Real) Div(b Real) Real {
	return r / b
}

// Neg returns -r.
func (r Real) Neg() Real {
	return -r
}

// Equal reports whether r == b.
func (r Real) Equal(b Real) bool {
	return r == b
}

// FromFloat64 constructs a Real from a real scalar literal.
func (Real) FromFloat64(x float64) Real {
	return Real(x)
}

// NormSquared returns r*r.
func (r Real) NormSquared() float64 {
	return float64(r * r)
}

// Conjugate returns r unchanged.
func (r Real) Conjugate() Real {
	return r
}

// Absolute returns |r|.
func (r Real) Absolute() Real {
	return Real(math.Abs(float64(r)))
}

func (r Real) String() string {
	return strconv.FormatFloat(float64(r), 'g', -1, 64)
}
