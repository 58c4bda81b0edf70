package num

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLongInt(t *testing.T) {

	t.Run("Decimal", func(t *testing.T) {
		for _, x := range []int64{0, 1, -1, 255, 256, -256, 90000, 1<<53 + 7, -(1<<62 + 12345)} {
			require.Equal(t, big.NewInt(x).String(), NewLongInt(x).String())
		}
	})

	t.Run("AddSub", func(t *testing.T) {
		values := []int64{0, 1, -1, 127, -128, 255, 256, 70000, -70000, 1 << 40}
		for _, x := range values {
			for _, y := range values {
				a, b := NewLongInt(x), NewLongInt(y)
				require.True(t, a.Add(b).Sub(b).Equal(a), "(%d + %d) - %d", x, y, y)
				require.Equal(t, big.NewInt(x+y).String(), a.Add(b).String())
				require.Equal(t, big.NewInt(x-y).String(), a.Sub(b).String())
			}
		}
	})

	t.Run("Mul", func(t *testing.T) {
		require.Equal(t, "90000", NewLongInt(300).Mul(NewLongInt(300)).String())
		require.Equal(t, "-90000", NewLongInt(-300).Mul(NewLongInt(300)).String())
		require.Equal(t, "0", NewLongInt(0).Mul(NewLongInt(123456)).String())

		// Product large enough to exercise the multi-digit carry chain.
		x := new(big.Int).SetUint64(1<<63 + 12345)
		y := new(big.Int).SetInt64(987654321)
		got := LongIntFromBigInt(x).Mul(LongIntFromBigInt(y))
		require.Equal(t, new(big.Int).Mul(x, y).String(), got.String())
	})

	t.Run("DivRem", func(t *testing.T) {
		for _, tc := range [][2]int64{{90000, 300}, {7, 3}, {-7, 3}, {7, -3}, {-7, -3}, {255, 256}, {1 << 50, 1007}} {
			n, d := NewLongInt(tc[0]), NewLongInt(tc[1])
			q, r := n.Div(d), n.Rem(d)

			sign := int64(1)
			if (tc[0] < 0) != (tc[1] < 0) {
				sign = -1
			}
			abs := func(x int64) int64 {
				if x < 0 {
					return -x
				}
				return x
			}
			require.Equal(t, NewLongInt(sign*(abs(tc[0])/abs(tc[1]))).String(), q.String(), "%d / %d", tc[0], tc[1])

			// Remainders are magnitudes and never negative.
			require.Equal(t, NewLongInt(abs(tc[0])%abs(tc[1])).String(), r.String(), "%d %% %d", tc[0], tc[1])
			require.True(t, r.Cmp(LongInt{}) >= 0)
		}
	})

	t.Run("DivByZeroPanics", func(t *testing.T) {
		require.Panics(t, func() { NewLongInt(1).Div(LongInt{}) })
		require.Panics(t, func() { NewLongInt(1).Rem(LongInt{}) })
	})

	t.Run("BigIntRoundTrip", func(t *testing.T) {
		x, ok := new(big.Int).SetString("-123456789012345678901234567890", 10)
		require.True(t, ok)
		require.Equal(t, x.String(), LongIntFromBigInt(x).String())
		require.Equal(t, 0, LongIntFromBigInt(x).BigInt().Cmp(x))
	})

	t.Run("NegOfZero", func(t *testing.T) {
		zero := NewLongInt(0)
		require.True(t, zero.Neg().Equal(zero))
		require.Equal(t, "0", zero.Neg().String())
	})

	t.Run("Cmp", func(t *testing.T) {
		require.Equal(t, 1, NewLongInt(1).Cmp(NewLongInt(-1)))
		require.Equal(t, -1, NewLongInt(-1).Cmp(NewLongInt(1)))
		require.Equal(t, 0, NewLongInt(42).Cmp(NewLongInt(42)))
		require.Equal(t, -1, NewLongInt(41).Cmp(NewLongInt(42)))

		// Same-sign comparison is by magnitude, so -3 compares above -5.
		require.Equal(t, -1, NewLongInt(-3).Cmp(NewLongInt(-5)))
	})

	t.Run("Hex", func(t *testing.T) {
		require.Equal(t, "|00|", LongInt{}.Hex())
		require.Equal(t, "|FF|", NewLongInt(255).Hex())
		require.Equal(t, "|00|01|", NewLongInt(256).Hex())
		require.Equal(t, "-|2A|", NewLongInt(-42).Hex())
	})

	t.Run("FromFloat64Truncates", func(t *testing.T) {
		require.Equal(t, "3", FromFloat64[LongInt](3.9).String())
		require.Equal(t, "-3", FromFloat64[LongInt](-3.9).String())
	})
}
