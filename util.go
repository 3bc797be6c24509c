package bignum

type RandSource interface {
	Uint64() uint64
}

// RandInt generates a non-negative random integer of up to n digits
// from an external source.
func RandInt(source RandSource, n int) Int {
	if n <= 0 {
		return Int{}
	}
	d := make([]uint32, n, roundUp(n))
	for i := range d {
		d[i] = uint32(source.Uint64())
	}
	out := Int{digits: d}
	out.reduce()
	return out
}

// DifferenceInt subtracts the smaller of a and b from the larger.
func DifferenceInt(a, b Int) Int {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerInt(a, b Int) Int {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func SmallerInt(a, b Int) Int {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
