/*
Package num provides an arbitrary-precision signed integer (BigInt) with
value semantics. It covers addition, subtraction, multiplication, truncated
division and remainder, two's-complement bitwise operations, shifts,
comparison and decimal string conversion. Anything else (exponentiation,
GCD, square roots, other radixes) is left to math/big via AsBigInt.

A BigInt stores a sign and a magnitude of 32-bit limbs. BigInt is a value
type; all operations return new values, and the limbs behind a value are
never modified once it has been returned, so plain assignment is enough to
copy one.

Simple example:

	b1 := MustBigIntFromString("18446744073709551616")
	b2 := BigIntFrom64(-3)
	fmt.Println(b1.Mul(b2))
	// Output: -55340232221128654848

BigInt can be created from a variety of sources:

	BigIntFromString(s string) (out BigInt, err error)
	BigIntFromRaw(limbs []uint32, neg bool) BigInt
	BigIntFrom64(v int64) BigInt
	BigIntFrom32(v int32) BigInt
	BigIntFromU64(v uint64) BigInt
	BigIntFromBigInt(v *big.Int) BigInt

Division truncates towards zero like Go's integer division, and the
remainder takes the sign of the dividend. Dividing by zero panics with
ErrDivisionByZero.

And, Or, Xor, AndNot and Not behave as if both operands were stored in
infinite-width two's complement. Rsh is an arithmetic shift and rounds
towards negative infinity.

BigInt supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- io.WriterTo
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package num
