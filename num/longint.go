package num

import (
	"encoding/binary"
	"math/big"
	"strings"

	"github.com/exactmat/exactmat/utils"
)

// LongInt is an arbitrary-precision signed integer stored as a sign flag
// and a little-endian sequence of base-256 digits.
//
// Canonical form carries no trailing zero digit; the zero value has an
// empty digit sequence and a positive sign, and -0 is not representable.
type LongInt struct {
	digits []byte
	neg    bool
}

// NewLongInt returns a LongInt set to x.
func NewLongInt(x int64) LongInt {
	mag := uint64(x)
	if x < 0 {
		mag = uint64(-x)
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], mag)
	return LongInt{digits: trim(b[:]), neg: x < 0}
}

// LongIntFromBigInt returns a LongInt with the value of x.
func LongIntFromBigInt(x *big.Int) LongInt {
	be := x.Bytes()
	digits := make([]byte, len(be))
	for i, d := range be {
		digits[len(be)-i-1] = d
	}
	return LongInt{digits: trim(digits), neg: x.Sign() < 0}
}

// BigInt returns the value of a as a *big.Int.
func (a LongInt) BigInt() *big.Int {
	be := make([]byte, len(a.digits))
	for i, d := range a.digits {
		be[len(a.digits)-i-1] = d
	}
	x := new(big.Int).SetBytes(be)
	if a.neg {
		x.Neg(x)
	}
	return x
}

// trim drops trailing zero digits so that the canonical-form invariant
// holds. The all-zero sequence trims to an empty one.
func trim(digits []byte) []byte {
	n := len(digits)
	for n > 0 && digits[n-1] == 0 {
		n--
	}
	return digits[:n]
}

// digit returns the i-th base-256 digit, or 0 past the end.
func (a LongInt) digit(i int) byte {
	if i >= len(a.digits) {
		return 0
	}
	return a.digits[i]
}

// bit returns the i-th bit of the magnitude.
func (a LongInt) bit(i int) bool {
	return (a.digit(i>>3)>>(i&7))&1 == 1
}

// make signed magnitudes out of raw digit slices

func fromMagnitude(digits []byte, neg bool) LongInt {
	digits = trim(digits)
	if len(digits) == 0 {
		neg = false
	}
	return LongInt{digits: digits, neg: neg}
}

// cmpMagnitude compares |a| and |b| digit by digit from the most
// significant end.
func cmpMagnitude(a, b LongInt) int {
	n := utils.Max(len(a.digits), len(b.digits))
	for i := n - 1; i >= 0; i-- {
		da, db := a.digit(i), b.digit(i)
		if da != db {
			if da < db {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addMagnitude returns |a| + |b| with positive sign.
func addMagnitude(a, b LongInt) LongInt {
	n := utils.Max(len(a.digits), len(b.digits))
	v := make([]byte, 0, n+1)
	var carry uint16
	for i := 0; i < n; i++ {
		sum := uint16(a.digit(i)) + uint16(b.digit(i)) + carry
		v = append(v, byte(sum))
		carry = sum >> 8
	}
	if carry != 0 {
		v = append(v, byte(carry))
	}
	return fromMagnitude(v, false)
}

// subMagnitude returns |a| - |b| as a signed value: negative when
// |a| < |b|.
func subMagnitude(a, b LongInt) LongInt {
	switch cmpMagnitude(a, b) {
	case -1:
		return subMagnitude(b, a).Neg()
	case 0:
		return LongInt{}
	}

	v := make([]byte, 0, len(a.digits))
	var borrow uint16
	for i := 0; i < len(a.digits); i++ {
		d := uint16(a.digit(i)) - uint16(b.digit(i)) - borrow
		v = append(v, byte(d))
		borrow = (d >> 8) & 1
	}
	return fromMagnitude(v, false)
}

// mulMagnitude returns |a| * |b| by schoolbook digit-by-digit
// multiplication with 16-bit accumulation per digit pair.
func mulMagnitude(a, b LongInt) LongInt {
	res := LongInt{}
	for i := 0; i < len(b.digits); i++ {
		d := uint16(b.digit(i))
		c := make([]byte, i+len(a.digits)+1)
		var carry uint16
		for j := 0; j < len(a.digits); j++ {
			mul := uint16(a.digit(j))*d + carry
			c[i+j] = byte(mul)
			carry = mul >> 8
		}
		c[i+len(a.digits)] = byte(carry)
		res = addMagnitude(res, fromMagnitude(c, false))
	}
	return res
}

// shiftLeft1 returns the magnitude shifted left by one bit.
func shiftLeft1(a LongInt) LongInt {
	v := make([]byte, 0, len(a.digits)+1)
	var carry byte
	for _, d := range a.digits {
		v = append(v, d<<1|carry)
		carry = d >> 7
	}
	if carry != 0 {
		v = append(v, carry)
	}
	return fromMagnitude(v, false)
}

// setBit returns a copy of the magnitude with bit i set.
func setBit(a LongInt, i int) LongInt {
	v := make([]byte, utils.Max(len(a.digits), i>>3+1))
	copy(v, a.digits)
	v[i>>3] |= 1 << (i & 7)
	return fromMagnitude(v, false)
}

// divMagnitude returns the quotient and remainder of |n| / |d| by binary
// long division: the dividend's bits are scanned from most to least
// significant, the running remainder is shifted left by one bit with the
// next dividend bit injected, and whenever the remainder reaches the
// divisor it is reduced and the matching quotient bit is set.
//
// Division by zero is a fatal condition and panics.
func divMagnitude(n, d LongInt) (q, r LongInt) {
	if len(d.digits) == 0 {
		panic("num: LongInt division by zero")
	}
	if cmpMagnitude(n, d) < 0 {
		return LongInt{}, fromMagnitude(append([]byte(nil), n.digits...), false)
	}

	for i := len(n.digits)*8 - 1; i >= 0; i-- {
		r = shiftLeft1(r)
		if n.bit(i) {
			r = setBit(r, 0)
		}
		if cmpMagnitude(r, d) >= 0 {
			r = subMagnitude(r, d)
			q = setBit(q, i)
		}
	}
	return q, r
}

// Add returns a + b, dispatching on the two operands' signs.
func (a LongInt) Add(b LongInt) LongInt {
	switch {
	case !a.neg && !b.neg:
		return addMagnitude(a, b)
	case !a.neg && b.neg:
		return subMagnitude(a, b)
	case a.neg && !b.neg:
		return subMagnitude(a, b).Neg()
	default:
		return addMagnitude(a, b).Neg()
	}
}

// Sub returns a - b.
func (a LongInt) Sub(b LongInt) LongInt {
	switch {
	case !a.neg && !b.neg:
		return subMagnitude(a, b)
	case !a.neg && b.neg:
		return addMagnitude(a, b)
	case a.neg && !b.neg:
		return addMagnitude(a, b).Neg()
	default:
		return subMagnitude(a, b).Neg()
	}
}

// Mul returns a * b. The result sign is the XOR of the operand signs.
func (a LongInt) Mul(b LongInt) LongInt {
	res := mulMagnitude(a, b)
	if a.neg != b.neg {
		return res.Neg()
	}
	return res
}

// Div returns the quotient of a / b. The result sign is the XOR of the
// operand signs. Division by zero panics.
func (a LongInt) Div(b LongInt) LongInt {
	q, _ := divMagnitude(a, b)
	if a.neg != b.neg {
		return q.Neg()
	}
	return q
}

// Rem returns the remainder of |a| / |b|; the result is never negative.
// Division by zero panics.
func (a LongInt) Rem(b LongInt) LongInt {
	_, r := divMagnitude(a, b)
	return r
}

// Neg returns -a. Negating zero returns zero.
func (a LongInt) Neg() LongInt {
	if len(a.digits) == 0 {
		return LongInt{}
	}
	return LongInt{digits: a.digits, neg: !a.neg}
}

// Equal reports whether a and b hold the same value.
func (a LongInt) Equal(b LongInt) bool {
	return a.neg == b.neg && utils.EqualSlice(a.digits, b.digits)
}

// Cmp compares a and b: a negative operand is smaller than a positive
// one, and same-sign operands compare by magnitude.
func (a LongInt) Cmp(b LongInt) int {
	if !a.neg && b.neg {
		return 1
	}
	if a.neg && !b.neg {
		return -1
	}
	return cmpMagnitude(a, b)
}

// FromFloat64 constructs a LongInt from the integer part of x.
func (LongInt) FromFloat64(x float64) LongInt {
	return NewLongInt(int64(x))
}

// NormSquared approximates the squared magnitude using the low 32 bits
// only; the result is a heuristic, not an exact magnitude.
func (a LongInt) NormSquared() float64 {
	c := uint32(a.digit(0)) | uint32(a.digit(1))<<8 | uint32(a.digit(2))<<16 | uint32(a.digit(3))<<24
	return float64(c)
}

// Conjugate returns a unchanged.
func (a LongInt) Conjugate() LongInt {
	return a
}

// Absolute returns |a|.
func (a LongInt) Absolute() LongInt {
	return LongInt{digits: a.digits}
}

// String formats a in decimal, computed by repeated division by ten.
func (a LongInt) String() string {
	if len(a.digits) == 0 {
		return "0"
	}

	ten := NewLongInt(10)
	div := a.Absolute()
	buf := make([]byte, 0, 3*len(a.digits))
	for len(div.digits) > 0 {
		var digit LongInt
		div, digit = divMagnitude(div, ten)
		buf = append(buf, '0'+digit.digit(0))
	}

	var sb strings.Builder
	if a.neg {
		sb.WriteByte('-')
	}
	for i := len(buf) - 1; i >= 0; i-- {
		sb.WriteByte(buf[i])
	}
	return sb.String()
}

const hexDigits = "0123456789ABCDEF"

// Hex formats a as pipe-delimited pairs of hexadecimal nibbles, one pair
// per base-256 digit in storage order. Not used by the default display.
func (a LongInt) Hex() string {
	if len(a.digits) == 0 {
		return "|00|"
	}

	var sb strings.Builder
	if a.neg {
		sb.WriteByte('-')
	}
	sb.WriteByte('|')
	for _, d := range a.digits {
		sb.WriteByte(hexDigits[d>>4])
		sb.WriteByte(hexDigits[d&0xF])
		sb.WriteByte('|')
	}
	return sb.String()
}
