package num

import "math/bits"

// addAt adds w into z at limb i, propagating the carry into successive limbs.
// z must be large enough to absorb the carry.
func (z limbs) addAt(i int, w uint32) {
	for ; w != 0; i++ {
		if debugBigInt && i >= len(z) {
			panic("num: BUG: carry escaped the product buffer")
		}
		z[i], w = addWW(z[i], w, 0)
	}
}

// mulVV returns the magnitude x*y using schoolbook multiplication.
func mulVV(x, y limbs) limbs {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}

	// The product of an n-limb and an m-limb number has at most n+m limbs.
	z := make(limbs, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		for j, yj := range y {
			hi, lo := mulWW(xi, yj)
			z.addAt(i+j, lo)
			z.addAt(i+j+1, hi)
		}
	}
	return z.norm()
}

// mulVW returns the magnitude x*w.
func mulVW(x limbs, w uint64) limbs {
	if len(x) == 0 || w == 0 {
		return nil
	}

	z := make(limbs, len(x)+2)

	// xi*w + c < 2^96, so after the low limb is taken off the running carry
	// always fits in 64 bits.
	var c uint64
	for i, xi := range x {
		hi, lo := bits.Mul64(uint64(xi), w)
		var cc uint64
		lo, cc = bits.Add64(lo, c, 0)
		hi += cc
		z[i] = uint32(lo)
		c = hi<<limbBits | lo>>limbBits
	}
	z[len(x)] = uint32(c)
	z[len(x)+1] = uint32(c >> limbBits)
	return z.norm()
}

// Mul returns the product x*y.
func (x BigInt) Mul(y BigInt) BigInt {
	return mkBigInt(mulVV(x.limbs, y.limbs), x.neg != y.neg)
}

// Mul64 returns the product x*w without building a BigInt for w.
func (x BigInt) Mul64(w int64) BigInt {
	return mkBigInt(mulVW(x.limbs, absInt64(w)), x.neg != (w < 0))
}

func (z *BigInt) MulAssign(y BigInt) *BigInt {
	*z = z.Mul(y)
	return z
}

func (z *BigInt) Mul64Assign(w int64) *BigInt {
	*z = z.Mul64(w)
	return z
}
