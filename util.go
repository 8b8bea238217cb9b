package num

type RandSource interface {
	Uint64() uint64
}

// DifferenceBigInt subtracts the smaller of a and b from the larger. The
// result is never negative.
func DifferenceBigInt(a, b BigInt) BigInt {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerBigInt(a, b BigInt) BigInt {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

func SmallerBigInt(a, b BigInt) BigInt {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}
