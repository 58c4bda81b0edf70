package charpoly

import (
	"math/big"

	"github.com/exactmat/exactmat/num"
	"github.com/exactmat/exactmat/poly"
)

// Evaluate computes p(x) by Horner's rule over exact integer
// coefficients. The precision of x is the working precision; exact
// coefficients of a characteristic polynomial routinely overflow
// float64, so the accumulation stays in big.Float throughout.
func Evaluate(p poly.Polynomial[num.LongInt], x *big.Float) *big.Float {
	prec := x.Prec()
	y := num.NewFloat(0, prec)
	if p.Degree() < 0 {
		return y
	}

	y.SetInt(p.Get(p.Degree()).BigInt())
	for i := p.Degree() - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, new(big.Float).SetPrec(prec).SetInt(p.Get(i).BigInt()))
	}
	return y
}

// Interval is a closed real interval [A, B].
type Interval struct {
	A, B *big.Float
}

// RootBound returns an interval containing every real root of p, and so
// every real eigenvalue of the matrix p came from, using the Fujiwara
// bound 2·max_k (|c_{n-k}|/|c_n|)^(1/k). The coefficient ratios are
// formed exactly before the k-th roots are taken at prec bits.
func RootBound(p poly.Polynomial[num.LongInt], prec uint) Interval {
	zero := func() *big.Float { return num.NewFloat(0, prec) }

	// Highest stored coefficient may have cancelled to zero; the bound
	// needs the actual leading one.
	n := p.Degree()
	for n >= 0 && num.IsZero(p.Get(n)) {
		n--
	}
	if n <= 0 {
		return Interval{A: zero(), B: zero()}
	}

	lead := new(big.Float).SetPrec(prec).SetInt(p.Get(n).BigInt())
	lead.Abs(lead)

	max := zero()
	for k := 1; k <= n; k++ {
		c := p.Get(n - k)
		if num.IsZero(c) {
			continue
		}
		ratio := new(big.Float).SetPrec(prec).SetInt(c.BigInt())
		ratio.Abs(ratio)
		ratio.Quo(ratio, lead)

		root := num.Pow(ratio, new(big.Float).SetPrec(prec).Quo(
			num.NewFloat(1, prec),
			num.NewFloat(float64(k), prec),
		))
		if root.Cmp(max) > 0 {
			max = root
		}
	}

	bound := new(big.Float).SetPrec(prec).Mul(max, num.NewFloat(2, prec))
	return Interval{A: new(big.Float).SetPrec(prec).Neg(bound), B: bound}
}
