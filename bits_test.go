package bignum

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestLsh(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		n   uint
		out string
	}{
		{"0", 0, "0"},
		{"0", 100, "0"},
		{"1", 0, "1"},
		{"1", 1, "2"},
		{"1", 31, "2147483648"},
		{"1", 32, "4294967296"},
		{"1", 33, "8589934592"},
		{"1", 64, "18446744073709551616"},
		{"1", 70, "1180591620717411303424"},
		{"1", 128, "340282366920938463463374607431768211456"},
		{"3", 33, "25769803776"},
		{"-1", 70, "-1180591620717411303424"},
		{"4294967295", 32, "18446744069414584320"},
	} {
		t.Run(fmt.Sprintf("%d/%s<<%d=%s", idx, tc.in, tc.n, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, num(tc.in).Lsh(tc.n).String())
		})
	}
}

func TestRsh(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		n   uint
		out string
	}{
		{"0", 0, "0"},
		{"0", 100, "0"},
		{"1", 0, "1"},
		{"1", 1, "0"},
		{"2", 1, "1"},
		{"7", 1, "3"},
		{"4294967296", 32, "1"},
		{"4294967296", 33, "0"},
		{"1180591620717411303424", 70, "1"},
		{"1180591620717411303424", 40, "1073741824"},
		{"340282366920938463463374607431768211455", 96, "4294967295"},
		{"340282366920938463463374607431768211455", 95, "8589934591"},

		// Shifting the magnitude, not a two's-complement value:
		// negative inputs keep their sign until the result is zero.
		{"-1180591620717411303424", 70, "-1"},
		{"-1180591620717411303424", 71, "0"},
		{"-1", 1, "0"},
	} {
		t.Run(fmt.Sprintf("%d/%s>>%d=%s", idx, tc.in, tc.n, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := num(tc.in).Rsh(tc.n)
			tt.MustEqual(tc.out, v.String())
			if tc.out == "0" {
				tt.MustEqual(false, v.neg)
				tt.MustEqual(0, len(v.digits))
			}
		})
	}
}

func TestAndOrXor(t *testing.T) {
	for idx, tc := range []struct {
		a, b         string
		and, or, xor string
	}{
		{"0", "0", "0", "0", "0"},
		{"0x0F", "0xF0", "0", "0xFF", "0xFF"},
		{"0xFF", "0xF0", "0xF0", "0xFF", "0x0F"},
		{"0xFFFFFFFFFFFFFFFF", "0xFFFFFFFF", "0xFFFFFFFF", "0xFFFFFFFFFFFFFFFF", "0xFFFFFFFF00000000"},
		{"0xFFFFFFFF00000000FFFFFFFF", "0xFFFFFFFF", "0xFFFFFFFF", "0xFFFFFFFF00000000FFFFFFFF", "0xFFFFFFFF0000000000000000"},
		{"0xAAAAAAAAAAAAAAAAAAAAAAAA", "0x555555555555555555555555", "0", "0xFFFFFFFFFFFFFFFFFFFFFFFF", "0xFFFFFFFFFFFFFFFFFFFFFFFF"},
		{"0x123456789ABCDEF0", "0x123456789ABCDEF0", "0x123456789ABCDEF0", "0x123456789ABCDEF0", "0"},
	} {
		t.Run(fmt.Sprintf("%d/%s,%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			a, b := num(tc.a), num(tc.b)

			tt.MustEqual(num(tc.and).String(), a.And(b).String())
			tt.MustEqual(num(tc.and).String(), b.And(a).String())
			tt.MustEqual(num(tc.or).String(), a.Or(b).String())
			tt.MustEqual(num(tc.or).String(), b.Or(a).String())
			tt.MustEqual(num(tc.xor).String(), a.Xor(b).String())
			tt.MustEqual(num(tc.xor).String(), b.Xor(a).String())
		})
	}
}

// The bitwise ops combine magnitudes and pass the receiver's sign
// through unchanged, with the usual proviso that a zero result drops
// it.
func TestBitwiseSign(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual("-4", num("-6").And(num("12")).String())
	tt.MustEqual("4", num("6").And(num("-12")).String())
	tt.MustEqual("-14", num("-6").Or(num("12")).String())
	tt.MustEqual("-10", num("-6").Xor(num("12")).String())
	tt.MustEqual("0", num("-6").Xor(num("-6")).String())
	tt.MustEqual("0", num("-8").And(num("7")).String())
}
