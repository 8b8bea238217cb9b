package num

import (
	"math/big"
	"math/bits"
)

// BigInt is an arbitrary-precision signed integer stored as a sign and a
// magnitude. The zero value is 0.
//
// BigInt is a value type. The limbs backing a BigInt are never written once
// the value has been returned, so copying a BigInt with '=' yields a value
// that is independent of the original for every purpose. The *Assign methods
// replace the receiver rather than writing through it.
type BigInt struct {
	limbs limbs
	neg   bool
}

// mkBigInt wraps z, normalizing it and clearing the sign if the result is
// zero. z must not be referenced by anything else.
func mkBigInt(z limbs, neg bool) BigInt {
	z = z.norm()
	return BigInt{limbs: z, neg: neg && len(z) > 0}
}

func BigIntFrom64(v int64) BigInt {
	if v < 0 {
		// uint64(-v) is also correct for minInt64, where -v wraps back to
		// minInt64 and the conversion yields 1<<63.
		return BigInt{limbs: limbsFromU64(uint64(-v)), neg: true}
	}
	return BigInt{limbs: limbsFromU64(uint64(v))}
}

func BigIntFrom32(v int32) BigInt { return BigIntFrom64(int64(v)) }
func BigIntFrom16(v int16) BigInt { return BigIntFrom64(int64(v)) }
func BigIntFrom8(v int8) BigInt   { return BigIntFrom64(int64(v)) }
func BigIntFromInt(v int) BigInt  { return BigIntFrom64(int64(v)) }

func BigIntFromU64(v uint64) BigInt { return BigInt{limbs: limbsFromU64(v)} }
func BigIntFromU32(v uint32) BigInt { return BigIntFromU64(uint64(v)) }
func BigIntFromU16(v uint16) BigInt { return BigIntFromU64(uint64(v)) }
func BigIntFromU8(v uint8) BigInt   { return BigIntFromU64(uint64(v)) }
func BigIntFromUint(v uint) BigInt  { return BigIntFromU64(uint64(v)) }

// BigIntFromRaw is the complement to BigInt.Raw(); it creates a BigInt from
// a magnitude given as 32-bit limbs, least significant first, and a sign.
// The limbs are copied. Most significant zero limbs are permitted, and a zero
// magnitude is never negative.
func BigIntFromRaw(l []uint32, neg bool) BigInt {
	return mkBigInt(limbs(l).clone(), neg)
}

// BigIntFromBigInt creates a BigInt from a big.Int. The conversion is always
// exact.
func BigIntFromBigInt(v *big.Int) BigInt {
	words := v.Bits()

	var z limbs
	switch intSize {
	case 64:
		z = make(limbs, 0, len(words)*2)
		for _, w := range words {
			z = append(z, uint32(w), uint32(uint64(w)>>limbBits))
		}
	case 32:
		z = make(limbs, 0, len(words))
		for _, w := range words {
			z = append(z, uint32(w))
		}
	default:
		panic("num: unsupported bit size")
	}

	return mkBigInt(z, v.Sign() < 0)
}

// RandBigInt generates a random BigInt of up to maxLimbs limbs with a random
// sign from an external source.
func RandBigInt(source RandSource, maxLimbs int) (out BigInt) {
	if maxLimbs <= 0 {
		return out
	}
	n := int(source.Uint64() % uint64(maxLimbs+1))
	z := make(limbs, n)
	for i := 0; i < n; i += 2 {
		v := source.Uint64()
		z[i] = uint32(v)
		if i+1 < n {
			z[i+1] = uint32(v >> limbBits)
		}
	}
	return mkBigInt(z, source.Uint64()&1 == 1)
}

// Raw returns a copy of the magnitude as 32-bit limbs, least significant
// first, and the sign. See BigIntFromRaw() for the counterpart.
func (x BigInt) Raw() (l []uint32, neg bool) { return x.limbs.clone(), x.neg }

// Copy returns a BigInt with the same value and its own limb storage.
func (x BigInt) Copy() BigInt { return BigInt{limbs: x.limbs.clone(), neg: x.neg} }

func (x BigInt) IsZero() bool { return len(x.limbs) == 0 }

func (x BigInt) Sign() int {
	if len(x.limbs) == 0 {
		return 0
	} else if x.neg {
		return -1
	}
	return 1
}

// BitLen returns the length of the absolute value of x in bits. The bit
// length of 0 is 0.
func (x BigInt) BitLen() int {
	n := len(x.limbs)
	if n == 0 {
		return 0
	}
	return (n-1)*limbBits + bits.Len32(x.limbs[n-1])
}

// Neg returns -x. The negation of 0 is 0.
func (x BigInt) Neg() BigInt {
	if len(x.limbs) == 0 {
		return x
	}
	x.neg = !x.neg
	return x
}

func (x BigInt) Abs() BigInt {
	x.neg = false
	return x
}

// IntoBigInt copies this BigInt into a big.Int, allowing you to retain and
// recycle memory.
func (x BigInt) IntoBigInt(b *big.Int) {
	words := b.Bits()[:0]

	switch intSize {
	case 64:
		for i := 0; i < len(x.limbs); i += 2 {
			w := uint64(x.limbs[i])
			if i+1 < len(x.limbs) {
				w |= uint64(x.limbs[i+1]) << limbBits
			}
			words = append(words, big.Word(w))
		}
	case 32:
		for _, l := range x.limbs {
			words = append(words, big.Word(l))
		}
	default:
		panic("num: unsupported bit size")
	}

	b.SetBits(words)
	if x.neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this BigInt into it.
func (x BigInt) AsBigInt() *big.Int {
	b := new(big.Int)
	x.IntoBigInt(b)
	return b
}

// IsInt64 reports whether x can be represented as an int64.
func (x BigInt) IsInt64() bool {
	if x.limbs.cmpW(1<<63) > 0 {
		return false
	}
	return x.neg || x.limbs.cmpW(maxInt64) <= 0
}

// AsInt64 truncates the BigInt to fit in an int64 using two's complement.
// Values outside the range will over/underflow. See IsInt64() if you want to
// check before you convert.
func (x BigInt) AsInt64() int64 {
	return int64(x.AsUint64())
}

// IsUint64 reports whether x can be represented as a uint64.
func (x BigInt) IsUint64() bool {
	return !x.neg && len(x.limbs) <= 2
}

// AsUint64 returns the least significant 64 bits of x in two's complement.
// See IsUint64() if you want to check before you convert.
func (x BigInt) AsUint64() uint64 {
	v := x.limbs.low64()
	if x.neg {
		v = ^v + 1
	}
	return v
}

// Cmp compares x to y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// Negative values order before non-negative ones; among values of the same
// sign the magnitudes decide, with the direction inverted for negatives.
func (x BigInt) Cmp(y BigInt) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := x.limbs.cmp(y.limbs)
	if x.neg {
		return -c
	}
	return c
}

func (x BigInt) Equal(y BigInt) bool {
	return x.neg == y.neg && x.limbs.equal(y.limbs)
}

func (x BigInt) GreaterThan(y BigInt) bool      { return x.Cmp(y) > 0 }
func (x BigInt) GreaterOrEqualTo(y BigInt) bool { return x.Cmp(y) >= 0 }
func (x BigInt) LessThan(y BigInt) bool         { return x.Cmp(y) < 0 }
func (x BigInt) LessOrEqualTo(y BigInt) bool    { return x.Cmp(y) <= 0 }
