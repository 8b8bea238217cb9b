package num

// Single-limb primitives. Every limb operation is carried out in a uint64 so
// the carry, borrow or high half falls out of the top 32 bits.

// addWW returns x+y+c and the carry out. c must be 0 or 1.
func addWW(x, y, c uint32) (z, cout uint32) {
	s := uint64(x) + uint64(y) + uint64(c)
	return uint32(s), uint32(s >> limbBits)
}

// subWW returns x-y-b and the borrow out. b must be 0 or 1.
func subWW(x, y, b uint32) (z, bout uint32) {
	d := uint64(x) - uint64(y) - uint64(b)
	return uint32(d), uint32(d>>limbBits) & 1
}

// mulWW returns the 64-bit product of x and y as two limbs.
func mulWW(x, y uint32) (hi, lo uint32) {
	p := uint64(x) * uint64(y)
	return uint32(p >> limbBits), uint32(p)
}

// mulAddWWW returns x*y+c as two limbs. The sum cannot overflow 64 bits:
// (2^32-1)^2 + (2^32-1) < 2^64.
func mulAddWWW(x, y, c uint32) (hi, lo uint32) {
	p := uint64(x)*uint64(y) + uint64(c)
	return uint32(p >> limbBits), uint32(p)
}

// divWW returns the quotient and remainder of (hi<<32 | lo) / d. hi must be
// less than d so the quotient fits in a limb.
func divWW(hi, lo, d uint32) (q, r uint32) {
	n := uint64(hi)<<limbBits | uint64(lo)
	return uint32(n / uint64(d)), uint32(n % uint64(d))
}

// shlVU sets z = x << s for s < 32 and returns the bits shifted out of the
// top limb. len(z) must be >= len(x).
func shlVU(z, x limbs, s uint) (c uint32) {
	for i, xi := range x {
		// xi >> 32 is 0 in Go, so s == 0 needs no special case.
		z[i] = xi<<s | c
		c = xi >> (limbBits - s)
	}
	return c
}

// shrVU sets z = x >> s for s < 32 and returns the bits shifted out of the
// bottom limb, left-aligned. len(z) must be >= len(x).
func shrVU(z, x limbs, s uint) (c uint32) {
	if len(x) == 0 {
		return 0
	}
	c = x[0] << (limbBits - s)
	for i := 0; i < len(x)-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<(limbBits-s)
	}
	z[len(x)-1] = x[len(x)-1] >> s
	return c
}
