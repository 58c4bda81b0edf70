package num

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComplex(t *testing.T) {

	t.Run("Arithmetic", func(t *testing.T) {
		a := NewComplex(1, 2)
		b := NewComplex(3, -1)

		require.Equal(t, NewComplex(4, 1), a.Add(b))
		require.Equal(t, NewComplex(-2, 3), a.Sub(b))
		require.Equal(t, NewComplex(5, 5), a.Mul(b))
		require.True(t, a.Div(b).Mul(b).Sub(a).NormSquared() < 1e-28)
		require.Equal(t, NewComplex(-1, -2), a.Neg())
	})

	t.Run("Conjugate", func(t *testing.T) {
		a := NewComplex(1, 2)
		require.Equal(t, NewComplex(1, -2), a.Conjugate())
		require.Equal(t, 5.0, a.NormSquared())
		require.Equal(t, NewComplex(5, 0), NewComplex(3, 4).Absolute())
	})

	t.Run("String", func(t *testing.T) {
		require.Equal(t, "0", NewComplex(0, 0).String())
		require.Equal(t, "2i", NewComplex(0, 2).String())
		require.Equal(t, "3", NewComplex(3, 0).String())
		require.Equal(t, "3+2i", NewComplex(3, 2).String())
		require.Equal(t, "3-2i", NewComplex(3, -2).String())
	})
}

func TestReal(t *testing.T) {

	t.Run("Arithmetic", func(t *testing.T) {
		a, b := NewReal(6), NewReal(4)
		require.Equal(t, NewReal(10), a.Add(b))
		require.Equal(t, NewReal(2), a.Sub(b))
		require.Equal(t, NewReal(24), a.Mul(b))
		require.Equal(t, NewReal(1.5), a.Div(b))
		require.Equal(t, NewReal(-6), a.Neg())
		require.Equal(t, NewReal(6), a.Conjugate())
		require.Equal(t, NewReal(6), NewReal(-6).Absolute())
		require.Equal(t, 36.0, a.NormSquared())
	})

	t.Run("Identities", func(t *testing.T) {
		require.True(t, IsZero(Zero[Real]()))
		require.True(t, One[Real]().Equal(NewReal(1)))
		require.Equal(t, 3.0, Norm(NewReal(-3)))
	})

	t.Run("String", func(t *testing.T) {
		require.Equal(t, "1.5", NewReal(1.5).String())
		require.Equal(t, "-0.25", NewReal(-0.25).String())
	})
}
