package num

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a big.Float with prec bits of precision set to x.
func NewFloat(x float64, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(x)
}

// Pow returns x^y at the precision of x.
func Pow(x, y *big.Float) *big.Float {
	return bigfloat.Pow(x, y)
}
