// Package num defines the scalar contract the matrix engines are written
// against, together with its concrete implementations: Real, Complex,
// LongInt and Fraction.
package num

import (
	"fmt"
	"math"
)

// Value is the contract satisfied by every scalar the engines operate on.
//
// Arithmetic methods never mutate their receiver or argument; each call
// returns a freshly constructed value. NormSquared returns a float64
// approximation of the squared magnitude, used only for convergence
// heuristics and residual reporting, never for algebraic decisions.
type Value[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Equal(T) bool

	// FromFloat64 constructs a value of the concrete type from a real
	// scalar literal. The receiver is only used for dispatch; calling it
	// on the zero value is valid.
	FromFloat64(float64) T

	NormSquared() float64
	Conjugate() T
	Absolute() T

	fmt.Stringer
}

// Integer is the contract required of Fraction components: a Value with a
// magnitude-based remainder and a total order.
type Integer[T any] interface {
	Value[T]
	Rem(T) T
	Cmp(T) int
}

// FromFloat64 constructs a T from a real scalar literal.
func FromFloat64[T Value[T]](x float64) T {
	var z T
	return z.FromFloat64(x)
}

// Zero returns the additive identity of T.
func Zero[T Value[T]]() T {
	return FromFloat64[T](0)
}

// One returns the multiplicative identity of T.
func One[T Value[T]]() T {
	return FromFloat64[T](1)
}

// Norm returns the magnitude of x as a float64 approximation.
func Norm[T Value[T]](x T) float64 {
	return math.Sqrt(x.NormSquared())
}

// IsZero reports whether x equals the additive identity of T.
func IsZero[T Value[T]](x T) bool {
	return x.Equal(Zero[T]())
}
