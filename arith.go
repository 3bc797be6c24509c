package bignum

// ddProduct multiplies two digits into a double-digit (hi, lo) result.
// Each digit is split into 16-bit halves so every partial product stays
// within 32 bits; carries out of the low digit are detected by
// comparing after the add, the same way the 64-bit word multiplies in
// fixed-width int libraries do it.
func ddProduct(a, b uint32) (hi, lo uint32) {
	hiA, loA := a>>halfBits, a&rMask
	hiB, loB := b>>halfBits, b&rMask

	lo = loA * loB
	hi = hiA * hiB
	mid1 := loA * hiB
	mid2 := hiA * loB

	old := lo
	lo += mid1 << halfBits
	hi += mid1 >> halfBits
	if lo < old {
		hi++
	}
	old = lo
	lo += mid2 << halfBits
	hi += mid2 >> halfBits
	if lo < old {
		hi++
	}
	return hi, lo
}

func (z Int) Add(n Int) Int {
	out := z.clone()
	out.add(n)
	return out
}

func (z Int) Sub(n Int) Int {
	out := z.clone()
	out.sub(n)
	return out
}

func (z Int) Mul(n Int) Int {
	out := z.clone()
	out.mul(n)
	return out
}

func (z Int) Inc() Int { return z.Add(one) }
func (z Int) Dec() Int { return z.Sub(one) }

// add merges the magnitude of y into z with a ripple carry. Operands of
// opposite sign redirect to subtraction of the negation; addition and
// subtraction are mutually defined via sign flips.
func (z *Int) add(y Int) {
	if z.neg != y.neg {
		z.sub(y.negated())
		return
	}

	var carry uint32
	z.setLength(max(len(z.digits), len(y.digits)) + 1)

	for i := 0; i < len(z.digits); i++ {
		if i >= len(y.digits) && carry == 0 {
			break
		}
		d := z.digits[i] + carry
		if d < carry {
			carry = 1
		} else {
			carry = 0
		}
		if i < len(y.digits) {
			z.digits[i] = d + y.digits[i]
			if z.digits[i] < d {
				carry = 1
			}
		} else {
			z.digits[i] = d
		}
	}
	z.reduce()
}

// sub subtracts y from z in place. If the result would flip sign, the
// operation redirects to the negation of the reverse subtraction so the
// ripple pass below never ends on an outstanding borrow.
func (z *Int) sub(y Int) {
	if z.neg != y.neg {
		z.add(y.negated())
		return
	}
	if (!z.neg && y.GreaterThan(*z)) || (z.neg && y.LessThan(*z)) {
		t := y.clone()
		t.sub(*z)
		t.negate()
		*z = t
		return
	}

	var borrow uint32
	for i := 0; i < len(z.digits); i++ {
		if i >= len(y.digits) && borrow == 0 {
			break
		}
		d := z.digits[i] - borrow
		if d > z.digits[i] {
			borrow = 1
		} else {
			borrow = 0
		}
		if i < len(y.digits) {
			nd := d - y.digits[i]
			if nd > d {
				borrow = 1
			}
			z.digits[i] = nd
		} else {
			z.digits[i] = d
		}
	}
	z.reduce()
}

// mulDigit multiplies the magnitude by a single digit in one pass,
// propagating each double-digit partial product's high half as the
// carry into the next position. The sign is left alone.
func (z *Int) mulDigit(y uint32) {
	if len(z.digits) == 0 {
		return
	}

	len0 := len(z.digits)
	dig := z.digits[0]
	var carry uint32

	z.setLength(len0 + 1)

	var i int
	for i = 0; i < len0; i++ {
		hi, lo := ddProduct(dig, y)
		z.digits[i] = lo + carry
		dig = z.digits[i+1]
		carry = hi
		if z.digits[i] < lo {
			carry++
		}
	}
	z.digits[i] = carry
	z.reduce()
}

// addDigit adds a single digit to the magnitude. Used by the text and
// hex-digit accumulators, which build magnitudes digit by digit.
func (z *Int) addDigit(d uint32) {
	carry := d
	for i := 0; i < len(z.digits); i++ {
		if carry == 0 {
			return
		}
		nd := z.digits[i] + carry
		if nd < carry {
			carry = 1
		} else {
			carry = 0
		}
		z.digits[i] = nd
	}
	if carry != 0 {
		z.setLength(len(z.digits) + 1)
		z.digits[len(z.digits)-1] = carry
	}
}

// mul multiplies z by y in place. Single-digit operands take the scalar
// path; the general case is a schoolbook convolution, with each digit
// pair's partial product computed by ddProduct and carries accumulated
// across both the inner sum and the outer digit position. The product's
// sign is the XOR of the operand signs.
func (z *Int) mul(y Int) {
	if len(z.digits) == 0 || len(y.digits) == 0 {
		*z = Int{}
		return
	}
	difSigns := z.neg != y.neg

	if len(z.digits) == 1 && len(y.digits) == 1 {
		hi, lo := ddProduct(z.digits[0], y.digits[0])
		z.digits[0] = lo
		if hi != 0 {
			z.setLength(2)
			z.digits[1] = hi
		}
		z.reduce()
		z.neg = difSigns
		return
	}

	if len(z.digits) == 1 {
		d := z.digits[0]
		*z = y.clone()
		z.mulDigit(d)
	} else if len(y.digits) == 1 {
		z.mulDigit(y.digits[0])
	} else {
		lenProd := len(z.digits) + len(y.digits)
		x := z.clone()
		z.setLength(lenProd)

		var sumHi, sumLo, carry uint32
		for i := 0; i < lenProd; i++ {
			sumLo = sumHi
			sumHi = carry
			carry = 0
			for jA := 0; jA < len(x.digits); jA++ {
				jB := i - jA
				if jB >= 0 && jB < len(y.digits) {
					hi, lo := ddProduct(x.digits[jA], y.digits[jB])
					sumLoOld, sumHiOld := sumLo, sumHi
					sumLo += lo
					if sumLo < sumLoOld {
						sumHi++
					}
					sumHi += hi
					if sumHi < sumHiOld {
						carry++
					}
				}
			}
			z.digits[i] = sumLo
		}
	}
	z.reduce()
	z.neg = difSigns
}

// Pow returns z**n, computed by binary exponentiation.
func (z Int) Pow(n uint) Int {
	y := FromUint32(1)
	x := z
	for n != 0 {
		if n&1 != 0 {
			y = y.Mul(x)
		}
		x = x.Mul(x)
		n >>= 1
	}
	return y
}

// Sqrt returns the integer square root of z: the largest value whose
// square does not exceed z. It panics if z is negative.
//
// The initial guess halves z's bit length by shifting, then x and z/x
// are averaged until they converge within 1.
func (z Int) Sqrt() Int {
	if z.neg {
		panic("bignum: square root of negative number")
	}
	if len(z.digits) == 0 {
		return Int{}
	}

	x := z
	b := z.Lsh(1)
	for {
		b = b.Rsh(2)
		if b.IsZero() {
			break
		}
		x = x.Rsh(1)
	}

	var q Int
	for {
		q = z.Quo(x)
		if !x.GreaterThan(q.Inc()) && !x.LessThan(q.Dec()) {
			break
		}
		x = x.Add(q).Rsh(1)
	}
	return SmallerInt(x, q)
}
