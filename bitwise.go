package num

// twosReader yields the two's-complement limbs of a sign-magnitude value, one
// position at a time and starting from the least significant. Positions past
// the end of the magnitude yield the sign extension.
type twosReader struct {
	mag   limbs
	neg   bool
	carry uint32
}

func newTwosReader(x BigInt) twosReader {
	r := twosReader{mag: x.limbs, neg: x.neg}
	if x.neg {
		r.carry = 1
	}
	return r
}

// next must be called with i = 0, 1, 2, ... in order; the "+1" of the
// negation is carried between calls.
func (r *twosReader) next(i int) uint32 {
	var m uint32
	if i < len(r.mag) {
		m = r.mag[i]
	}
	if !r.neg {
		return m
	}
	var v uint32
	v, r.carry = addWW(^m, 0, r.carry)
	return v
}

// bitwise applies op to the infinite two's-complement forms of x and y and
// returns the result in sign-magnitude form. neg is the sign of the result,
// which is fully determined by the operand signs and the operation.
func bitwise(x, y BigInt, op func(a, b uint32) uint32, neg bool) BigInt {
	// One limb past the longer operand holds nothing but sign extension, so
	// it is enough to convert a negative pattern back without losing the
	// carry of the "+1".
	n := max(len(x.limbs), len(y.limbs)) + 1

	xr, yr := newTwosReader(x), newTwosReader(y)
	z := make(limbs, n)
	for i := 0; i < n; i++ {
		z[i] = op(xr.next(i), yr.next(i))
	}

	if neg {
		// Negate over the full width before trimming; trimming first would
		// drop the extension limb the carry may land in.
		c := uint32(1)
		for i := range z {
			z[i], c = addWW(^z[i], 0, c)
		}
	}
	return mkBigInt(z, neg)
}

func andW(a, b uint32) uint32    { return a & b }
func orW(a, b uint32) uint32     { return a | b }
func xorW(a, b uint32) uint32    { return a ^ b }
func andNotW(a, b uint32) uint32 { return a &^ b }

// And returns x & y as if both were stored in infinite-width two's
// complement.
func (x BigInt) And(y BigInt) BigInt {
	return bitwise(x, y, andW, x.neg && y.neg)
}

// Or returns x | y as if both were stored in infinite-width two's complement.
func (x BigInt) Or(y BigInt) BigInt {
	return bitwise(x, y, orW, x.neg || y.neg)
}

// Xor returns x ^ y as if both were stored in infinite-width two's
// complement.
func (x BigInt) Xor(y BigInt) BigInt {
	return bitwise(x, y, xorW, x.neg != y.neg)
}

// AndNot returns x &^ y as if both were stored in infinite-width two's
// complement.
func (x BigInt) AndNot(y BigInt) BigInt {
	return bitwise(x, y, andNotW, x.neg && !y.neg)
}

// Not returns ^x, which for an infinite-width two's-complement value is
// -x - 1.
func (x BigInt) Not() BigInt {
	return x.Neg().Dec()
}

// Lsh returns x << n, which is x * 2^n for either sign.
func (x BigInt) Lsh(n uint) BigInt {
	if len(x.limbs) == 0 {
		return x
	}
	whole, s := int(n/limbBits), n%limbBits

	z := make(limbs, whole+len(x.limbs)+1)
	z[whole+len(x.limbs)] = shlVU(z[whole:], x.limbs, s)
	return mkBigInt(z, x.neg)
}

// Rsh returns x >> n using arithmetic shift semantics: the result is
// floor(x / 2^n), so negative values round towards negative infinity and
// never reach 0. Rsh(n) of any negative x with n >= x.BitLen() is -1.
func (x BigInt) Rsh(n uint) BigInt {
	if n/limbBits >= uint(len(x.limbs)) {
		if x.neg {
			return BigIntFrom64(-1)
		}
		return zeroBigInt
	}
	whole, s := int(n/limbBits), n%limbBits

	q, _ := divVW(x.limbs[whole:], 1<<s)
	if !x.neg {
		return mkBigInt(q, false)
	}
	if x.limbs.lowBitsSet(n) {
		q = addVW(q, 1)
	}
	return mkBigInt(q, true)
}

func (z *BigInt) AndAssign(y BigInt) *BigInt {
	*z = z.And(y)
	return z
}

func (z *BigInt) OrAssign(y BigInt) *BigInt {
	*z = z.Or(y)
	return z
}

func (z *BigInt) XorAssign(y BigInt) *BigInt {
	*z = z.Xor(y)
	return z
}

func (z *BigInt) AndNotAssign(y BigInt) *BigInt {
	*z = z.AndNot(y)
	return z
}

func (z *BigInt) LshAssign(n uint) *BigInt {
	*z = z.Lsh(n)
	return z
}

func (z *BigInt) RshAssign(n uint) *BigInt {
	*z = z.Rsh(n)
	return z
}
