package num

// addVV returns the magnitude x+y.
func addVV(x, y limbs) limbs {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(limbs, len(x)+1)
	var c uint32
	for i := range y {
		z[i], c = addWW(x[i], y[i], c)
	}
	for i := len(y); i < len(x); i++ {
		z[i], c = addWW(x[i], 0, c)
	}
	z[len(x)] = c
	return z.norm()
}

// subVV returns the magnitude x-y. x must not be smaller than y.
func subVV(x, y limbs) limbs {
	z := make(limbs, len(x))
	var b uint32
	for i := range y {
		z[i], b = subWW(x[i], y[i], b)
	}
	for i := len(y); i < len(x); i++ {
		z[i], b = subWW(x[i], 0, b)
	}
	if debugBigInt && b != 0 {
		panic("num: BUG: borrow escaped the top limb in subVV")
	}
	return z.norm()
}

// addVW returns the magnitude x+w.
func addVW(x limbs, w uint64) limbs {
	n := len(x)
	if n < 2 {
		n = 2
	}
	z := make(limbs, n+1)

	// c holds the part of w not yet consumed plus the running carry; it never
	// exceeds 2^32 after the first limb.
	c := w
	for i := 0; i < n; i++ {
		var xi uint64
		if i < len(x) {
			xi = uint64(x[i])
		}
		s := xi + c&limbMask
		z[i] = uint32(s)
		c = c>>limbBits + s>>limbBits
	}
	z[n] = uint32(c)
	return z.norm()
}

// subVW returns the magnitude x-w. x must not be smaller than w.
func subVW(x limbs, w uint64) limbs {
	z := make(limbs, len(x))
	b := w
	for i, xi := range x {
		lo := uint32(b)
		z[i] = xi - lo
		b >>= limbBits
		if xi < lo {
			b++
		}
	}
	if debugBigInt && b != 0 {
		panic("num: BUG: borrow escaped the top limb in subVW")
	}
	return z.norm()
}

// addSigned returns the sum of the signed magnitudes x and y.
func addSigned(x limbs, xneg bool, y limbs, yneg bool) BigInt {
	if xneg == yneg {
		return mkBigInt(addVV(x, y), xneg)
	}
	if x.cmp(y) >= 0 {
		return mkBigInt(subVV(x, y), xneg)
	}
	return mkBigInt(subVV(y, x), yneg)
}

// Add returns x+y.
func (x BigInt) Add(y BigInt) BigInt {
	return addSigned(x.limbs, x.neg, y.limbs, y.neg)
}

// Sub returns x-y.
func (x BigInt) Sub(y BigInt) BigInt {
	return addSigned(x.limbs, x.neg, y.limbs, !y.neg)
}

// addWord returns x + w where w is the signed value with magnitude wmag.
func (x BigInt) addWord(wneg bool, wmag uint64) BigInt {
	if wmag == 0 {
		return x
	}
	if x.neg == wneg || len(x.limbs) == 0 {
		return mkBigInt(addVW(x.limbs, wmag), wneg)
	}
	if x.limbs.cmpW(wmag) >= 0 {
		return mkBigInt(subVW(x.limbs, wmag), x.neg)
	}

	// |x| < |w|, so x fits in 64 bits and the result takes the sign of w.
	return mkBigInt(limbsFromU64(wmag-x.limbs.low64()), wneg)
}

// Add64 returns x+w without building a BigInt for w.
func (x BigInt) Add64(w int64) BigInt {
	return x.addWord(w < 0, absInt64(w))
}

// Sub64 returns x-w without building a BigInt for w.
func (x BigInt) Sub64(w int64) BigInt {
	return x.addWord(w > 0, absInt64(w))
}

// Inc returns x+1.
func (x BigInt) Inc() BigInt { return x.addWord(false, 1) }

// Dec returns x-1.
func (x BigInt) Dec() BigInt { return x.addWord(true, 1) }

func (z *BigInt) AddAssign(y BigInt) *BigInt {
	*z = z.Add(y)
	return z
}

func (z *BigInt) SubAssign(y BigInt) *BigInt {
	*z = z.Sub(y)
	return z
}

func (z *BigInt) Add64Assign(w int64) *BigInt {
	*z = z.Add64(w)
	return z
}

func (z *BigInt) Sub64Assign(w int64) *BigInt {
	*z = z.Sub64(w)
	return z
}

// Increment sets z to z+1 and returns z.
func (z *BigInt) Increment() *BigInt {
	*z = z.Inc()
	return z
}

// Decrement sets z to z-1 and returns z.
func (z *BigInt) Decrement() *BigInt {
	*z = z.Dec()
	return z
}

// absInt64 returns |v| as a uint64. uint64(-v) is exact for every negative
// int64, including minInt64.
func absInt64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
