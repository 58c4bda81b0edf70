package poly

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exactmat/exactmat/num"
)

func coeffs(xs ...float64) []num.Real {
	cs := make([]num.Real, len(xs))
	for i, x := range xs {
		cs[i] = num.NewReal(x)
	}
	return cs
}

func TestPolynomial(t *testing.T) {

	t.Run("GetOutOfRange", func(t *testing.T) {
		p := FromCoeffs(coeffs(1, 2))
		require.Equal(t, num.NewReal(0), p.Get(-1))
		require.Equal(t, num.NewReal(0), p.Get(5))
		require.Equal(t, num.NewReal(2), p.Get(1))
	})

	t.Run("SetGrowsOnlyForNonZero", func(t *testing.T) {
		p := New[num.Real]()
		require.Equal(t, -1, p.Degree())

		p.Set(3, num.NewReal(0))
		require.Equal(t, -1, p.Degree())

		p.Set(3, num.NewReal(5))
		require.Equal(t, 3, p.Degree())
		require.Equal(t, num.NewReal(0), p.Get(2))

		// The storage never shrinks once grown, even when the leading
		// coefficient is zeroed.
		p.Set(3, num.NewReal(0))
		require.Equal(t, 3, p.Degree())
	})

	t.Run("AddSub", func(t *testing.T) {
		a := FromCoeffs(coeffs(1, 2, 3))
		b := FromCoeffs(coeffs(4, 5))

		sum := a.Add(b)
		require.Equal(t, coeffs(5, 7, 3), sum.Coeffs())

		diff := a.Sub(b)
		require.Equal(t, coeffs(-3, -3, 3), diff.Coeffs())
	})

	t.Run("Mul", func(t *testing.T) {
		// (1 + x)(1 - x) = 1 - x^2
		a := FromCoeffs(coeffs(1, 1))
		b := FromCoeffs(coeffs(1, -1))
		require.Equal(t, coeffs(1, 0, -1), a.Mul(b).Coeffs())
	})

	t.Run("Scalar", func(t *testing.T) {
		p := FromCoeffs(coeffs(2, 4))
		require.Equal(t, coeffs(4, 8), p.MulScalar(num.NewReal(2)).Coeffs())
		require.Equal(t, coeffs(1, 2), p.DivScalar(num.NewReal(2)).Coeffs())
	})

	t.Run("Normalize", func(t *testing.T) {
		p := FromCoeffs(coeffs(4, 2, 2))
		require.Equal(t, coeffs(2, 1, 1), p.Normalize().Coeffs())
		require.Panics(t, func() { New[num.Real]().Normalize() })
	})

	t.Run("String", func(t *testing.T) {
		require.Equal(t, "[]", New[num.Real]().String())
		require.Equal(t, "[3; 2; 1]", FromCoeffs(coeffs(1, 2, 3)).String())
	})
}
