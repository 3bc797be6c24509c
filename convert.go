package bignum

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/big"
)

// ErrInvalidFormat is wrapped by Parse and the unmarshalling methods
// when the input contains no digits or a non-digit character.
var ErrInvalidFormat = errors.New("bignum: invalid number format")

// Parse creates an Int from a decimal string: optional surrounding
// ASCII whitespace, an optional leading '-', then one or more decimal
// digits. Anything else fails with a wrapped ErrInvalidFormat.
func Parse(s string) (out Int, err error) {
	i, n := 0, len(s)
	for i < n && isSpace(s[i]) {
		i++
	}
	for n > i && isSpace(s[n-1]) {
		n--
	}

	neg := false
	if i < n && s[i] == '-' {
		neg = true
		i++
	}
	if i >= n {
		return Int{}, fmt.Errorf("bignum: string %q: %w", s, ErrInvalidFormat)
	}

	var v Int
	for ; i < n; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Int{}, fmt.Errorf("bignum: string %q: %w", s, ErrInvalidFormat)
		}
		v.mulDigit(10)
		v.addDigit(uint32(c - '0'))
	}
	if neg {
		v.negate()
	}
	return v, nil
}

// MustParse is like Parse but panics on invalid input. Intended for
// constants and tests.
func MustParse(s string) Int {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// FromHexDigits creates an Int from raw hexadecimal digit values
// (0-15 per byte, not ASCII), most significant first, as extracted by a
// document parser. The sign is supplied separately: the value is
// negative only when signum is -1; 0 is treated as positive.
func FromHexDigits(signum int, digits []byte) Int {
	var v Int
	for _, d := range digits {
		v.mulDigit(16)
		v.addDigit(uint32(d))
	}
	if signum == -1 {
		v.negate()
	}
	return v
}

// FromFloat64 creates an Int from a float64 by repeatedly extracting
// the low digit-sized chunk. Any fractional portion is truncated
// towards zero. NaN and infinities are discarded: the result is zero
// and ok is false.
func FromFloat64(f float64) (out Int, ok bool) {
	if f != f { // (f != f) == NaN
		return Int{}, false
	}
	if math.IsInf(f, 0) {
		return Int{}, false
	}

	neg := false
	if f < 0 {
		neg = true
		f = -f
	}

	factor := FromUint32(1)
	for f >= 1 {
		u := uint32(modpos(f, digitWrapFloat))
		out = out.Add(factor.Mul(FromUint32(u)))
		f /= digitWrapFloat
		factor = factor.Mul(digitWrapInt)
	}
	if neg {
		out.negate()
	}
	return out, true
}

// FromBigInt creates an Int from a big.Int. The conversion is always
// exact.
func FromBigInt(v *big.Int) Int {
	bts := v.Bytes()
	nd := (len(bts) + 3) / 4
	if nd == 0 {
		return Int{}
	}

	d := make([]uint32, nd, roundUp(nd))
	for i := 0; i < nd; i++ {
		end := len(bts) - i*4
		start := end - 4
		if start < 0 {
			start = 0
		}
		var w uint32
		for _, b := range bts[start:end] {
			w = w<<8 | uint32(b)
		}
		d[i] = w
	}

	out := Int{neg: v.Sign() < 0, digits: d}
	out.reduce()
	return out
}

// String renders the canonical decimal form: '-' for negative values,
// "0" for zero, no leading zeros otherwise. Decimal characters are
// peeled from the remainder of repeated division by the largest power
// of 10 that fits in one digit, into a preallocated buffer from the end
// backward.
func (z Int) String() string {
	if len(z.digits) == 0 {
		return "0"
	}

	v := z
	v.neg = false

	// 1/3 > ln(2)/ln(10), so this over-allocates slightly.
	buf := make([]byte, len(z.digits)*digitBits/3+2)
	n := len(buf)

	for {
		var r Int
		v, r = v.divide(pow10Int, true)
		var rd uint32
		if len(r.digits) > 0 {
			rd = r.digits[0]
		}
		for j := 0; j < pow10Exp; j++ {
			n--
			buf[n] = byte(rd%10) + '0'
			rd /= 10
			if rd == 0 && len(v.digits) == 0 {
				break
			}
		}
		if len(v.digits) == 0 {
			break
		}
	}
	if z.neg {
		n--
		buf[n] = '-'
	}
	return string(buf[n:])
}

func (z Int) Format(s fmt.State, c rune) {
	// Good enough for now: big.Int already speaks every verb.
	z.AsBigInt().Format(s, c)
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (z Int) IntoBigInt(b *big.Int) {
	buf := make([]byte, len(z.digits)*4)
	for i, d := range z.digits {
		binary.BigEndian.PutUint32(buf[(len(z.digits)-1-i)*4:], d)
	}
	b.SetBytes(buf)
	if z.neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (z Int) AsBigInt() *big.Int {
	b := new(big.Int)
	z.IntoBigInt(b)
	return b
}

func (z Int) AsBigFloat() *big.Float {
	return new(big.Float).SetInt(z.AsBigInt())
}

// AsFloat64 converts to the nearest float64 by summing each digit at
// its positional weight, applying the sign at the end. Magnitudes
// beyond float64's range overflow to infinity.
func (z Int) AsFloat64() float64 {
	x := 0.0
	factor := 1.0
	for _, d := range z.digits {
		x += float64(d) * factor
		factor *= digitWrapFloat
	}
	if z.neg {
		return -x
	}
	return x
}

// AsUint64 truncates the Int to fit in a uint64: the low two digits,
// ignoring the sign. See IsUint64() if you want to check before you
// convert.
func (z Int) AsUint64() uint64 {
	var u uint64
	if len(z.digits) >= 1 {
		u = uint64(z.digits[0])
	}
	if len(z.digits) >= 2 {
		u |= uint64(z.digits[1]) << digitBits
	}
	return u
}

// AsInt64 truncates the Int to fit in an int64: the low two digits,
// negated for negative values with two's-complement wrapping. Values
// outside the range will over/underflow. See IsInt64() if you want to
// check before you convert.
func (z Int) AsInt64() int64 {
	i := int64(z.AsUint64())
	if z.neg {
		i = -i
	}
	return i
}

// AsUint32 truncates the Int to its low digit, ignoring the sign.
func (z Int) AsUint32() uint32 {
	if len(z.digits) >= 1 {
		return z.digits[0]
	}
	return 0
}

// AsInt32 truncates the Int to its low digit, negated for negative
// values with two's-complement wrapping.
func (z Int) AsInt32() int32 {
	i := int32(z.AsUint32())
	if z.neg {
		i = -i
	}
	return i
}

// IsUint64 reports whether z can be represented as a uint64.
func (z Int) IsUint64() bool {
	return !z.neg && len(z.digits) <= 2
}

// IsInt64 reports whether z can be represented as an int64.
func (z Int) IsInt64() bool {
	if len(z.digits) > 2 {
		return false
	}
	u := z.AsUint64()
	if z.neg {
		return u <= 1<<63
	}
	return u <= maxInt64
}

func (z Int) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

func (z *Int) UnmarshalText(bts []byte) (err error) {
	v, err := Parse(string(bts))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

func (z Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + z.String() + `"`), nil
}

func (z *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("bignum: invalid JSON %q: %w", string(bts), ErrInvalidFormat)
		}
		bts = bts[1 : ln-1]
	}

	v, err := Parse(string(bts))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
