package bignum

// Int is an arbitrary-precision signed integer in sign-magnitude form.
//
// The magnitude is a little-endian sequence of 32-bit digits with no
// most-significant zero digit; zero is the empty sequence with neg
// unset, so the zero value of Int is a usable canonical zero.
type Int struct {
	neg    bool
	digits []uint32
}

func FromInt(v int) Int { return FromInt64(int64(v)) }

func FromInt32(v int32) Int {
	u := uint32(v)
	if v < 0 {
		u = -u
	}
	out := FromUint32(u)
	out.neg = v < 0
	return out
}

func FromUint32(v uint32) Int {
	if v == 0 {
		return Int{}
	}
	d := make([]uint32, 1, wordLength)
	d[0] = v
	return Int{digits: d}
}

func FromInt64(v int64) Int {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	out := FromUint64(u)
	out.neg = v < 0
	return out
}

func FromUint64(v uint64) Int {
	if v == 0 {
		return Int{}
	}
	d := make([]uint32, 2)
	d[0] = uint32(v)
	d[1] = uint32(v >> 32)
	out := Int{digits: d}
	out.reduce()
	return out
}

func (z Int) IsZero() bool { return len(z.digits) == 0 }

// Sign returns -1 for negative values, 0 for zero and 1 for positive
// values.
func (z Int) Sign() int {
	if len(z.digits) == 0 {
		return 0
	} else if z.neg {
		return -1
	}
	return 1
}

func (z Int) Neg() Int {
	out := z.clone()
	out.negate()
	return out
}

func (z Int) Abs() Int {
	out := z.clone()
	out.neg = false
	return out
}

// Cmp compares z to n and returns:
//
//	< 0 if z <  n
//	  0 if z == n
//	> 0 if z >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed
// to satisfy the above constraints.
//
// Signs decide first; equal signs compare digit counts, then digits
// from the most significant down, with the result negated when both
// operands are negative.
func (z Int) Cmp(n Int) int {
	if z.neg != n.neg {
		if z.neg {
			return -1
		}
		return 1
	}

	code := 0
	zl, nl := len(z.digits), len(n.digits)
	if zl < nl {
		code = -1
	} else if zl > nl {
		code = 1
	} else {
		for i := zl - 1; i >= 0; i-- {
			if z.digits[i] > n.digits[i] {
				code = 1
				break
			} else if z.digits[i] < n.digits[i] {
				code = -1
				break
			}
		}
	}
	if z.neg {
		code = -code
	}
	return code
}

func (z Int) Equal(n Int) bool {
	if z.neg != n.neg || len(z.digits) != len(n.digits) {
		return false
	}
	for i, d := range z.digits {
		if n.digits[i] != d {
			return false
		}
	}
	return true
}

func (z Int) GreaterThan(n Int) bool      { return z.Cmp(n) > 0 }
func (z Int) GreaterOrEqualTo(n Int) bool { return z.Cmp(n) >= 0 }
func (z Int) LessThan(n Int) bool         { return z.Cmp(n) < 0 }
func (z Int) LessOrEqualTo(n Int) bool    { return z.Cmp(n) <= 0 }

// clone deep-copies z so the result owns its storage exclusively.
func (z Int) clone() Int {
	if len(z.digits) == 0 {
		return Int{}
	}
	d := make([]uint32, len(z.digits), roundUp(len(z.digits)))
	copy(d, z.digits)
	return Int{neg: z.neg, digits: d}
}

// negated returns a sign-flipped view sharing z's storage. Read-only
// use: the in-place operations never write through an operand.
func (z Int) negated() Int {
	if len(z.digits) == 0 {
		return Int{}
	}
	return Int{neg: !z.neg, digits: z.digits}
}

func (z *Int) negate() {
	if len(z.digits) != 0 {
		z.neg = !z.neg
	}
}

// roundUp finds a suitable block size: the smallest multiple of the
// growth unit that holds n digits.
func roundUp(n int) int {
	return (n + wordLength - 1) / wordLength * wordLength
}

// setLength grows or shrinks the logical length to n. Growing zero-fills
// the new tail; growing beyond the current capacity reallocates, copying
// only the previously significant digits. Shrinking never reallocates.
func (z *Int) setLength(n int) {
	old := len(z.digits)
	if n <= old {
		z.digits = z.digits[:n]
		return
	}
	if n <= cap(z.digits) {
		z.digits = z.digits[:n]
		for i := old; i < n; i++ {
			z.digits[i] = 0
		}
		return
	}
	d := make([]uint32, n, roundUp(n))
	copy(d, z.digits)
	z.digits = d
}

// reduce trims most-significant zero digits and restores canonical zero.
// Every operation that can leave a zero high digit must end with it.
func (z *Int) reduce() {
	ln := len(z.digits)
	for ln > 0 && z.digits[ln-1] == 0 {
		ln--
	}
	z.digits = z.digits[:ln]
	if ln == 0 {
		z.neg = false
	}
}
