package num

// limbs is an unsigned integer x of the form
//
//	x = x[n-1]*2^(32*(n-1)) + x[n-2]*2^(32*(n-2)) + ... + x[1]*2^32 + x[0]
//
// stored least significant limb first.
//
// A limbs value is normalized if the slice contains no most significant zero
// limbs. Kernels may produce denormalized intermediates but always normalize
// before returning. The normalized representation of 0 is the nil slice.
type limbs []uint32

func limbsFromU64(v uint64) limbs {
	switch {
	case v == 0:
		return nil
	case v <= limbMask:
		return limbs{uint32(v)}
	default:
		return limbs{uint32(v), uint32(v >> limbBits)}
	}
}

// norm trims the most significant zero limbs.
func (z limbs) norm() limbs {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return nil
	}
	return z[:i]
}

func (x limbs) clone() limbs {
	if len(x) == 0 {
		return nil
	}
	z := make(limbs, len(x))
	copy(z, x)
	return z
}

// cmp compares the magnitudes x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x limbs) cmp(y limbs) int {
	if len(x) != len(y) {
		if len(x) > len(y) {
			return 1
		}
		return -1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] > y[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// cmpW compares the magnitude x with w.
func (x limbs) cmpW(w uint64) int {
	if len(x) > 2 {
		return 1
	}
	v := x.low64()
	if v > w {
		return 1
	} else if v < w {
		return -1
	}
	return 0
}

// low64 returns the least significant 64 bits of x.
func (x limbs) low64() uint64 {
	switch len(x) {
	case 0:
		return 0
	case 1:
		return uint64(x[0])
	default:
		return uint64(x[1])<<limbBits | uint64(x[0])
	}
}

func (x limbs) equal(y limbs) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// lowBitsSet reports whether any of the n least significant bits of x are 1.
func (x limbs) lowBitsSet(n uint) bool {
	whole, s := n/limbBits, n%limbBits
	if whole >= uint(len(x)) {
		return len(x.norm()) > 0
	}
	for _, l := range x[:whole] {
		if l != 0 {
			return true
		}
	}
	return x[whole]&(1<<s-1) != 0
}
