package num

import "math/bits"

// divVW returns the quotient and remainder of the magnitude x divided by the
// single limb d. d must not be 0.
func divVW(x limbs, d uint32) (q limbs, r uint32) {
	if d == 0 {
		panic(ErrDivisionByZero)
	}
	if x.cmpW(uint64(d)) < 0 {
		return nil, uint32(x.low64())
	}

	// Walk from the most significant limb down, carrying the remainder into
	// the next step; r < d keeps every partial quotient inside one limb.
	q = make(limbs, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		q[i], r = divWW(r, x[i], d)
	}
	return q.norm(), r
}

// divVV returns the quotient and remainder of the magnitudes u / v using
// normalized long division (Knuth, TAOCP vol. 2, 4.3.1, Algorithm D). v must
// not be 0.
func divVV(u, v limbs) (q, r limbs) {
	if len(v) == 0 {
		panic(ErrDivisionByZero)
	}
	if u.cmp(v) < 0 {
		return nil, u
	}
	if len(v) == 1 {
		q, r1 := divVW(u, v[0])
		return q, limbsFromU64(uint64(r1))
	}

	// Normalize: shift both operands left until the top bit of v's most
	// significant limb is set. This keeps each trial quotient digit within 2
	// of the true digit.
	k := uint(bits.LeadingZeros32(v[len(v)-1]))

	vn := make(limbs, len(v))
	shlVU(vn, v, k)

	un := make(limbs, len(u)+1)
	un[len(u)] = shlVU(un, u, k)
	un = un.norm()

	n := len(vn)
	m := len(un) - n
	q = make(limbs, m+1)

	// un < B^(m+n) <= 2 * vn * B^m, so the top quotient digit is 0 or 1.
	if un[m:].cmp(vn) >= 0 {
		q[m] = 1
		if subVVAt(un[m:], vn) != 0 && debugBigInt {
			panic("num: BUG: borrow escaped while seeding the quotient")
		}
	}

	vtop := uint64(vn[n-1])
	for j := m - 1; j >= 0; j-- {
		// Estimate the digit from the top two limbs of the window against the
		// top limb of the divisor.
		qhat := (uint64(un[n+j])<<limbBits | uint64(un[n+j-1])) / vtop
		if qhat > limbMask {
			qhat = limbMask
		}

		// Subtract qhat*vn from the window un[j:j+n+1]. A borrow out of the
		// top means the estimate was too large and the window is negative;
		// add vn back until it is not.
		window := un[j : j+n+1]
		borrow := subMulVW(window, vn, uint32(qhat))
		for corrections := 0; borrow != 0; corrections++ {
			if debugBigInt && corrections == 2 {
				panic("num: BUG: quotient digit needed more than 2 corrections")
			}
			qhat--
			borrow -= addVVAt(window, vn)
		}
		q[j] = uint32(qhat)
	}

	// The remainder is left in the low n limbs of un, scaled by 2^k.
	if debugBigInt && len(un[n:].norm()) != 0 {
		panic("num: BUG: remainder wider than the divisor")
	}
	r = make(limbs, n)
	shrVU(r, un[:n], k)

	return q.norm(), r.norm()
}

// subMulVW sets z = z - v*y, where len(z) == len(v)+1, and returns 1 if the
// result went negative. On a negative result z holds the value plus
// 2^(32*len(z)).
func subMulVW(z, v limbs, y uint32) (borrow uint32) {
	var c uint32
	for i, vi := range v {
		var lo uint32
		c, lo = mulAddWWW(vi, y, c)
		z[i], borrow = subWW(z[i], lo, borrow)
	}
	z[len(v)], borrow = subWW(z[len(v)], c, borrow)
	return borrow
}

// addVVAt sets z = z + v, where len(z) >= len(v), and returns the carry out
// of the top of z.
func addVVAt(z, v limbs) (c uint32) {
	for i, vi := range v {
		z[i], c = addWW(z[i], vi, c)
	}
	for i := len(v); i < len(z) && c != 0; i++ {
		z[i], c = addWW(z[i], 0, c)
	}
	return c
}

// subVVAt sets z = z - v, where len(z) >= len(v), and returns the borrow out
// of the top of z.
func subVVAt(z, v limbs) (b uint32) {
	for i, vi := range v {
		z[i], b = subWW(z[i], vi, b)
	}
	for i := len(v); i < len(z) && b != 0; i++ {
		z[i], b = subWW(z[i], 0, b)
	}
	return b
}

// QuoRem returns the quotient q and remainder r for y != 0. If y == 0, a
// division-by-zero run-time panic occurs with ErrDivisionByZero.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// The remainder takes the sign of x. BigInt does not support
// big.Int.DivMod()-style Euclidean division.
func (x BigInt) QuoRem(y BigInt) (q, r BigInt) {
	if len(y.limbs) == 0 {
		panic(ErrDivisionByZero)
	}
	ql, rl := divVV(x.limbs, y.limbs)
	return mkBigInt(ql, x.neg != y.neg), mkBigInt(rl, x.neg)
}

// Quo returns the quotient x/y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (x BigInt) Quo(y BigInt) BigInt {
	q, _ := x.QuoRem(y)
	return q
}

// Rem returns the remainder of x%y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Rem implements truncated modulus (like Go); see
// QuoRem for more details.
func (x BigInt) Rem(y BigInt) BigInt {
	_, r := x.QuoRem(y)
	return r
}

// QuoRem64 is QuoRem for a machine word divisor. Because |r| < |w|, the
// remainder always fits in an int64.
func (x BigInt) QuoRem64(w int64) (q BigInt, r int64) {
	if w == 0 {
		panic(ErrDivisionByZero)
	}

	var ql limbs
	var rmag uint64
	if wmag := absInt64(w); wmag <= limbMask {
		var r1 uint32
		ql, r1 = divVW(x.limbs, uint32(wmag))
		rmag = uint64(r1)
	} else {
		var rl limbs
		ql, rl = divVV(x.limbs, limbsFromU64(wmag))
		rmag = rl.low64()
	}

	r = int64(rmag)
	if x.neg {
		r = -r
	}
	return mkBigInt(ql, x.neg != (w < 0)), r
}

func (x BigInt) Quo64(w int64) BigInt {
	q, _ := x.QuoRem64(w)
	return q
}

func (x BigInt) Rem64(w int64) int64 {
	_, r := x.QuoRem64(w)
	return r
}

func (z *BigInt) QuoAssign(y BigInt) *BigInt {
	*z = z.Quo(y)
	return z
}

func (z *BigInt) RemAssign(y BigInt) *BigInt {
	*z = z.Rem(y)
	return z
}

func (z *BigInt) Quo64Assign(w int64) *BigInt {
	*z = z.Quo64(w)
	return z
}

func (z *BigInt) Rem64Assign(w int64) *BigInt {
	*z = BigIntFrom64(z.Rem64(w))
	return z
}
