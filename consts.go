package bignum

import (
	"math/big"
)

const (
	digitBits = 32
	halfBits  = digitBits / 2

	// wordLength is the growth unit: backing buffers are allocated in
	// multiples of wordLength digits.
	wordLength = 2

	maxDigit uint32 = 1<<digitBits - 1
	rMask    uint32 = 1<<halfBits - 1
	lMask    uint32 = maxDigit - rMask
	lBit     uint32 = 1 << (digitBits - 1)

	// pow10Digit is the largest power of 10 that fits in a digit;
	// pow10Exp is its exponent. String peels decimal chunks of this size.
	pow10Digit uint32 = 1000000000
	pow10Exp          = 9

	// digitWrapFloat is 1 << digitBits, the per-digit weight in float
	// conversions.
	digitWrapFloat = float64(1 << digitBits)

	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63
)

// Shared operands. These are read-only: every operation clones before it
// mutates, so handing their storage around is safe.
var (
	one          = Int{digits: []uint32{1}}
	pow10Int     = Int{digits: []uint32{pow10Digit}}
	maxDigitInt  = Int{digits: []uint32{maxDigit}}
	digitWrapInt = Int{digits: []uint32{0, 1}} // 1 << digitBits
)

var (
	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	// This specifies the maximum error allowed between the float64 version
	// of an Int and the result of the same operation performed by
	// big.Float.
	//
	// Calculate like so:
	//	return math.Nextafter(1.0, 2.0) - 1.0
	//
	floatDiffLimit, _ = new(big.Float).SetString("2.220446049250313080847263336181640625e-16")
)
