package num

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {

	t.Run("NewFloat", func(t *testing.T) {
		x := NewFloat(1.5, 128)
		require.Equal(t, uint(128), x.Prec())
		f, _ := x.Float64()
		require.Equal(t, 1.5, f)
	})

	t.Run("Pow", func(t *testing.T) {
		x := Pow(NewFloat(2, 64), NewFloat(10, 64))
		f, _ := x.Float64()
		require.InDelta(t, 1024, f, 1e-9)
	})

	t.Run("PowFractionalExponent", func(t *testing.T) {
		x := Pow(NewFloat(8, 64), NewFloat(1.0/3.0, 64))
		f, _ := x.Float64()
		require.InDelta(t, 2, f, 1e-12)
	})
}
