/*
Package bignum provides an arbitrary-precision signed integer type (Int)
for representing numeric literals whose magnitude exceeds the range of
int64/uint64, such as oversized integers found while parsing structured
text or binary data formats.

Int is a sign-magnitude value type over a little-endian sequence of
32-bit digits; all exported operations return new values and never alias
the storage of their operands. The zero value of Int is a ready-to-use
canonical zero.

Simple example:

	a, _ := bignum.Parse("99999999999999999999")
	fmt.Println(a.Mul(a))
	// Output: 9999999999999999999800000000000000000001

Int can be created from a variety of sources:

	Parse(s string) (Int, error)
	FromHexDigits(signum int, digits []byte) Int
	FromInt(v int) Int
	FromInt32(v int32) Int
	FromInt64(v int64) Int
	FromUint32(v uint32) Int
	FromUint64(v uint64) Int
	FromFloat64(f float64) (Int, bool)
	FromBigInt(v *big.Int) Int

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Division and modulus are truncating (like Go's native integers): the
quotient is rounded toward zero and the remainder takes the sign of the
dividend. Dividing by zero panics, as it does for Go's native integers.

Conversions to native types (AsInt32, AsUint32, AsInt64, AsUint64)
truncate to the low digits of the target width rather than failing; see
each method for the exact rule, and IsInt64/IsUint64 to check first.

Int is not safe for concurrent mutation of a single value; distinct
values may be used from multiple goroutines without coordination.
*/
package bignum
