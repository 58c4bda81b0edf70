package num

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func frac(den, num int64) Fraction[LongInt] {
	return NewFraction(NewLongInt(den), NewLongInt(num))
}

func TestFraction(t *testing.T) {

	t.Run("Reduce", func(t *testing.T) {
		f := frac(4, 6)
		require.Equal(t, "3/2", f.String())

		// The sign lives in the numerator regardless of where it came in.
		require.Equal(t, "-3/2", frac(-4, 6).String())
		require.Equal(t, "-3/2", frac(4, -6).String())
		require.Equal(t, "3/2", frac(-4, -6).String())
	})

	t.Run("Arithmetic", func(t *testing.T) {
		half := frac(2, 1)
		third := frac(3, 1)

		require.True(t, half.Add(third).Equal(frac(6, 5)))
		require.True(t, half.Sub(third).Equal(frac(6, 1)))
		require.True(t, half.Mul(third).Equal(frac(6, 1)))
		require.True(t, half.Div(third).Equal(frac(2, 3)))
		require.True(t, half.Neg().Equal(frac(2, -1)))
	})

	t.Run("AddCancels", func(t *testing.T) {
		f := frac(6, 5)
		require.Equal(t, "0/1", f.Add(f.Neg()).String())
	})

	t.Run("FromFloat64", func(t *testing.T) {
		require.Equal(t, "3/1", FromFloat64[Fraction[LongInt]](3).String())
		require.Equal(t, "1/4", FromFloat64[Fraction[LongInt]](0.25).String())
		require.Equal(t, "-1/2", FromFloat64[Fraction[LongInt]](-0.5).String())
	})

	t.Run("UnsupportedPanics", func(t *testing.T) {
		f := frac(2, 1)
		require.Panics(t, func() { f.NormSquared() })
		require.Panics(t, func() { f.Conjugate() })
		require.Panics(t, func() { f.Absolute() })
	})
}
