package sampling

import (
	"encoding/binary"

	"github.com/exactmat/exactmat/mat"
	"github.com/exactmat/exactmat/num"
)

// Float64 returns a random float in [min, max) drawn from prng.
func Float64(prng PRNG, min, max float64) float64 {
	var b [8]byte
	if _, err := prng.Read(b[:]); err != nil {
		panic(err)
	}
	f := float64(binary.BigEndian.Uint64(b[:])) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// Matrix returns a width-by-height real matrix with entries drawn
// uniformly from [min, max).
func Matrix(prng PRNG, width, height int, min, max float64) *mat.Matrix[num.Real] {
	m := mat.New[num.Real](width, height)
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			m.Set(i, j, num.NewReal(Float64(prng, min, max)))
		}
	}
	return m
}

// Tridiagonal returns an n-by-n real matrix with random entries on the
// main, sub and super diagonals and zeros elsewhere.
func Tridiagonal(prng PRNG, n int, min, max float64) *mat.Matrix[num.Real] {
	m := mat.New[num.Real](n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, num.NewReal(Float64(prng, min, max)))
		if i > 0 {
			m.Set(i, i-1, num.NewReal(Float64(prng, min, max)))
			m.Set(i-1, i, num.NewReal(Float64(prng, min, max)))
		}
	}
	return m
}

// DiagonallyDominant returns an n-by-n real matrix whose diagonal
// entries exceed the sum of the magnitudes on their row, so that every
// leading principal minor is non-zero and unpivoted LU succeeds.
func DiagonallyDominant(prng PRNG, n int, min, max float64) *mat.Matrix[num.Real] {
	m := Matrix(prng, n, n, min, max)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			if j != i {
				sum += float64(m.Get(i, j).Absolute())
			}
		}
		m.Set(i, i, num.NewReal(sum+1+Float64(prng, 0, max-min)))
	}
	return m
}
