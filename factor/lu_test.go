package factor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exactmat/exactmat/mat"
	"github.com/exactmat/exactmat/num"
	"github.com/exactmat/exactmat/sampling"
)

func realMatrix(t *testing.T, width int, xs ...float64) *mat.Matrix[num.Real] {
	t.Helper()
	elems := make([]num.Real, len(xs))
	for i, x := range xs {
		elems[i] = num.NewReal(x)
	}
	m, err := mat.FromSlice(elems, width)
	require.NoError(t, err)
	return m
}

func TestLU(t *testing.T) {

	t.Run("TwoByTwo", func(t *testing.T) {
		a := realMatrix(t, 2,
			4, 3,
			6, 3)

		l, u, err := LU(a)
		require.NoError(t, err)

		require.Equal(t, realMatrix(t, 2, 1, 0, 1.5, 1).Elems(), l.Elems())
		require.Equal(t, realMatrix(t, 2, 4, 3, 0, -1.5).Elems(), u.Elems())
	})

	t.Run("Reconstructs", func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG([]byte("lu-test"))
		require.NoError(t, err)
		a := sampling.DiagonallyDominant(prng, 8, -9, 9)

		l, u, err := LU(a)
		require.NoError(t, err)

		prod, err := l.Mul(u)
		require.NoError(t, err)
		diff, err := prod.Sub(a)
		require.NoError(t, err)
		require.Less(t, diff.Norm(), 1e-9)
	})

	t.Run("Fraction", func(t *testing.T) {
		// Exact arithmetic factors without any rounding residue.
		type F = num.Fraction[num.LongInt]
		a := mat.FromReal[F](realMatrix(t, 2,
			4, 3,
			6, 3))

		l, u, err := LU(a)
		require.NoError(t, err)

		prod, err := l.Mul(u)
		require.NoError(t, err)
		for i, v := range prod.Elems() {
			require.True(t, v.Equal(a.Elems()[i]))
		}
		require.True(t, l.Get(1, 0).Equal(num.NewFraction(num.NewLongInt(2), num.NewLongInt(3))))
	})

	t.Run("NotSquare", func(t *testing.T) {
		_, _, err := LU(mat.New[num.Real](2, 3))
		require.ErrorIs(t, err, mat.ErrNotSquare)
	})

	t.Run("ZeroPivot", func(t *testing.T) {
		a := realMatrix(t, 2,
			0, 1,
			1, 0)
		_, _, err := LU(a)
		require.ErrorIs(t, err, mat.ErrNotRegular)
	})

	t.Run("Solve", func(t *testing.T) {
		a := realMatrix(t, 2,
			4, 3,
			6, 3)
		b := realMatrix(t, 1, 10, 12)

		l, u, err := LU(a)
		require.NoError(t, err)

		x, err := SolveLU(l, u, b)
		require.NoError(t, err)

		ax, err := a.Mul(x)
		require.NoError(t, err)
		diff, err := ax.Sub(b)
		require.NoError(t, err)
		require.Less(t, diff.Norm(), 1e-12)
	})

	t.Run("SolveShapeChecks", func(t *testing.T) {
		l := mat.Identity[num.Real](2)
		u := mat.Identity[num.Real](2)

		_, err := SolveLU(l, u, mat.New[num.Real](2, 2))
		require.ErrorIs(t, err, mat.ErrSizeMismatch)

		_, err = SolveLU(l, u, mat.New[num.Real](1, 3))
		require.ErrorIs(t, err, mat.ErrSizeMismatch)

		_, err = SolveLU(l, mat.Identity[num.Real](3), mat.New[num.Real](1, 2))
		require.ErrorIs(t, err, mat.ErrSizeMismatch)
	})
}
