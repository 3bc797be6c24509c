package bignum

// The bitwise operations work on the sign-magnitude bit patterns of the
// magnitudes only: And, Or and Xor leave the sign unmodified, and no
// two's-complement interpretation of negative values is defined.

func (z Int) Lsh(n uint) Int {
	out := z.clone()
	out.lsh(n)
	return out
}

func (z Int) Rsh(n uint) Int {
	out := z.clone()
	out.rsh(n)
	return out
}

func (z Int) And(n Int) Int {
	out := z.clone()
	out.and(n)
	return out
}

func (z Int) Or(n Int) Int {
	out := z.clone()
	out.or(n)
	return out
}

func (z Int) Xor(n Int) Int {
	out := z.clone()
	out.xor(n)
	return out
}

// lsh shifts the magnitude left by k bits: whole digits are prepended
// first, then the remaining sub-digit shift carries bits in from the
// next-lower digit.
func (z *Int) lsh(k uint) {
	q := int(k / digitBits)
	if q > 0 {
		z.setLength(len(z.digits) + q)
		for i := len(z.digits) - 1; i >= 0; i-- {
			if i < q {
				z.digits[i] = 0
			} else {
				z.digits[i] = z.digits[i-q]
			}
		}
		k %= digitBits
	}
	if k != 0 { // 0 < k < digitBits
		k1 := digitBits - k
		mask := uint32(1)<<k - 1
		z.setLength(len(z.digits) + 1)
		for i := len(z.digits) - 1; i >= 0; i-- {
			z.digits[i] <<= k
			if i > 0 {
				z.digits[i] |= (z.digits[i-1] >> k1) & mask
			}
		}
	}
	z.reduce()
}

// rsh shifts the magnitude right by k bits. A whole-digit component
// meeting or exceeding the length yields canonical zero; otherwise low
// digits are dropped and the sub-digit shift carries bits in from the
// next-higher digit.
func (z *Int) rsh(k uint) {
	q := int(k / digitBits)
	if q >= len(z.digits) {
		*z = Int{}
		return
	}
	if q > 0 {
		copy(z.digits, z.digits[q:])
		z.setLength(len(z.digits) - q)
		k %= digitBits
		if k == 0 {
			z.reduce()
			return
		}
	}

	n := len(z.digits) - 1
	k1 := digitBits - k
	mask := uint32(1)<<k - 1
	for i := 0; i <= n; i++ {
		z.digits[i] >>= k
		if i < n {
			z.digits[i] |= (z.digits[i+1] & mask) << k1
		}
	}
	z.reduce()
}

// or merges y's digits in, zero-extending z to y's length first.
func (z *Int) or(y Int) {
	if len(z.digits) < len(y.digits) {
		z.setLength(len(y.digits))
	}
	for i := 0; i < len(y.digits); i++ {
		z.digits[i] |= y.digits[i]
	}
	z.reduce()
}

func (z *Int) xor(y Int) {
	if len(z.digits) < len(y.digits) {
		z.setLength(len(y.digits))
	}
	for i := 0; i < len(y.digits); i++ {
		z.digits[i] ^= y.digits[i]
	}
	z.reduce()
}

// and truncates z to the shorter operand's length, then combines
// digit-wise over what remains.
func (z *Int) and(y Int) {
	if len(y.digits) < len(z.digits) {
		z.setLength(len(y.digits))
	}
	for i := 0; i < len(z.digits); i++ {
		z.digits[i] &= y.digits[i]
	}
	z.reduce()
}
