package bignum

// Quo returns the quotient z/by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. Quo implements truncated
// division (like Go); see QuoRem for more details.
func (z Int) Quo(by Int) (q Int) {
	q, _ = z.divide(by, false)
	return q
}

// Rem returns the remainder of z%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. Rem implements truncated
// modulus (like Go); see QuoRem for more details.
func (z Int) Rem(by Int) (r Int) {
	_, r = z.divide(by, true)
	return r
}

// QuoRem returns the quotient q and remainder r for by != 0. If
// by == 0, a division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = z/by     with the result truncated to zero
//	r = z - by*q
//
// so the remainder is zero or carries the sign of the dividend. Int
// does not support big.Int.DivMod()-style Euclidean division.
func (z Int) QuoRem(by Int) (q, r Int) {
	return z.divide(by, true)
}

// divide produces quotient and remainder in one pass. The quotient is
// always computed; the remainder is only unnormalized back to its true
// value when remDesired is set.
func (z Int) divide(denom Int, remDesired bool) (quot, rem Int) {
	if len(denom.digits) == 0 {
		panic("bignum: division by zero")
	}

	quotNeg := z.neg != denom.neg
	remNeg := z.neg

	num := z.clone()
	num.neg = false
	den := denom.clone()
	den.neg = false

	if num.LessThan(den) {
		rem = num
		if len(rem.digits) != 0 {
			rem.neg = remNeg
		}
		return Int{}, rem
	}

	if len(den.digits) == 1 && len(num.digits) == 1 {
		quot = FromUint32(num.digits[0] / den.digits[0])
		rem = FromUint32(num.digits[0] % den.digits[0])
		if len(quot.digits) != 0 {
			quot.neg = quotNeg
		}
		if len(rem.digits) != 0 {
			rem.neg = remNeg
		}
		return quot, rem
	}

	if len(den.digits) == 1 && den.digits[0]&lMask == 0 {
		// The divisor fits in a half digit: divide half-digit-wise,
		// skipping the general algorithm.
		divisor := den.digits[0]
		var dHi uint32

		quot.setLength(len(num.digits))
		for i := len(num.digits) - 1; i >= 0; i-- {
			dividend := dHi<<halfBits | num.digits[i]>>halfBits
			q1 := dividend / divisor
			r := dividend % divisor
			dividend = r<<halfBits | num.digits[i]&rMask
			q2 := dividend / divisor
			dHi = dividend % divisor
			quot.digits[i] = q1<<halfBits | q2
		}
		quot.reduce()
		rem = FromUint32(dHi)
		if len(quot.digits) != 0 {
			quot.neg = quotNeg
		}
		if len(rem.digits) != 0 {
			rem.neg = remNeg
		}
		return quot, rem
	}

	secondDone, shift := normalize(&den, &num)

	r := len(den.digits) - 1
	n := len(num.digits) - 1

	quot.setLength(n - r)
	rem = num
	if rem.digits[n] >= den.digits[r] {
		rem.setLength(len(rem.digits) + 1)
		n++
		quot.setLength(len(quot.digits) + 1)
	}

	d := den.digits[r]
	for k := n; k > r; k-- {
		q := ddQuotient(rem.digits[k], rem.digits[k-1], d)
		q = subtractMul(rem.digits[k-r-1:], den.digits, r+1, q)
		quot.digits[k-r-1] = q
	}

	quot.reduce()
	if len(quot.digits) != 0 {
		quot.neg = quotNeg
	}
	if remDesired {
		unnormalize(&rem, shift, secondDone)
		if len(rem.digits) != 0 {
			rem.neg = remNeg
		}
	}
	return quot, rem
}

// normalize shifts den and num left until den's most-significant digit
// has its top bit set, returning the shift. If den's top two digits are
// still non-decreasing it additionally scales both by the maximum digit
// value, reported via secondDone; together these guarantee ddQuotient's
// trial digit never overestimates by more than subtractMul can correct.
func normalize(den, num *Int) (secondDone bool, shift int) {
	r := len(den.digits) - 1
	y := den.digits[r]
	for y&lBit == 0 {
		y <<= 1
		shift++
	}
	den.lsh(uint(shift))
	num.lsh(uint(shift))

	if r > 0 && den.digits[r] < den.digits[r-1] {
		den.mulDigit(maxDigit)
		num.mulDigit(maxDigit)
		return true, shift
	}
	return false, shift
}

// unnormalize reverses normalize on the remainder: the scale-up first,
// then the shift.
func unnormalize(rem *Int, shift int, secondDone bool) {
	if secondDone {
		q, _ := rem.divide(maxDigitInt, false)
		*rem = q
	}
	if shift > 0 {
		rem.rsh(uint(shift))
	} else {
		rem.reduce()
	}
}

// ddQuotient divides the double digit (a, b) by d, estimating each half
// of the quotient digit from the divisor's top half and correcting the
// estimate upward until the remainder fits.
func ddQuotient(a, b, d uint32) uint32 {
	dHi := d >> halfBits
	dLo := d & rMask

	qHi := a / (dHi + 1)
	// This initial guess of qHi may be too small.
	middle := qHi * dLo
	left := qHi * dHi
	x := b - middle<<halfBits
	t := middle>>halfBits + left
	if x > b {
		t++
	}
	a -= t
	b = x

	dLo1 := dLo << halfBits
	for a > dHi || (a == dHi && b >= dLo1) {
		x = b - dLo1
		a -= dHi
		if x > b {
			a--
		}
		b = x
		qHi++
	}

	qLo := (a<<halfBits | b>>halfBits) / (dHi + 1)
	// This initial guess of qLo may be too small.
	right := qLo * dLo
	middle = qLo * dHi
	x = b - right
	if x > b {
		a--
	}
	b = x
	x = b - middle<<halfBits
	t = middle >> halfBits
	if x > b {
		t++
	}
	a -= t
	b = x

	for a != 0 || b >= d {
		x = b - d
		if x > b {
			a--
		}
		b = x
		qLo++
	}
	return qHi<<halfBits + qLo
}

// subtractMul computes a -= q*b over b's n digits, a being the aligned
// remainder window (n+1 digits). If the trial digit q proves one too
// large the subtraction ends on a borrow; q is decremented and one
// corrective re-addition pass restores the window.
func subtractMul(a, b []uint32, n int, q uint32) uint32 {
	var carry uint32
	for i := 0; i < n; i++ {
		hi, lo := ddProduct(b[i], q)
		d := a[i]
		a[i] -= lo
		if a[i] > d {
			carry++
		}
		d = a[i+1]
		a[i+1] -= hi + carry
		if a[i+1] > d {
			carry = 1
		} else {
			carry = 0
		}
	}

	if carry != 0 { // q was too large
		q--
		carry = 0
		for i := 0; i < n; i++ {
			d := a[i] + carry
			if d < carry {
				carry = 1
			} else {
				carry = 0
			}
			a[i] = d + b[i]
			if a[i] < d {
				carry = 1
			}
		}
		a[n] = 0
	}
	return q
}
