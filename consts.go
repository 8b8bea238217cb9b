package num

const (
	limbBits = 32
	limbMask = 1<<limbBits - 1

	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	// decimalChunk is the number of decimal digits that fit in a single limb
	// operation during parsing and formatting: 10^9 < 2^32 < 10^10.
	decimalChunk = 9

	// debugBigInt enables the internal consistency checks in the kernels. A
	// failed check panics with a "num: BUG" message; it never indicates bad
	// input.
	debugBigInt = true

	intSize = 32 << (^uint(0) >> 63)
)

var (
	// zeroBigInt is the canonical zero: no limbs, not negative.
	zeroBigInt BigInt

	// tenPowers[i] == 10^(i+1).
	tenPowers = [decimalChunk]uint32{
		10,
		100,
		1000,
		10000,
		100000,
		1000000,
		10000000,
		100000000,
		1000000000,
	}
)
