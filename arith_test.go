package num

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestWordPrimitives(t *testing.T) {
	tt := assert.WrapTB(t)

	z, c := addWW(limbMask, 1, 0)
	tt.MustEqual(uint32(0), z)
	tt.MustEqual(uint32(1), c)

	z, c = addWW(limbMask, limbMask, 1)
	tt.MustEqual(uint32(limbMask), z)
	tt.MustEqual(uint32(1), c)

	z, b := subWW(0, 1, 0)
	tt.MustEqual(uint32(limbMask), z)
	tt.MustEqual(uint32(1), b)

	z, b = subWW(0, limbMask, 1)
	tt.MustEqual(uint32(0), z)
	tt.MustEqual(uint32(1), b)

	hi, lo := mulWW(limbMask, limbMask)
	tt.MustEqual(uint32(0xFFFFFFFE), hi)
	tt.MustEqual(uint32(1), lo)

	hi, lo = mulAddWWW(limbMask, limbMask, limbMask)
	tt.MustEqual(uint32(limbMask), hi)
	tt.MustEqual(uint32(0), lo)

	q, r := divWW(0xFFFFFFFE, limbMask, limbMask)
	tt.MustEqual(uint32(limbMask), q)
	tt.MustEqual(uint32(0xFFFFFFFE), r)
}

func TestShiftVU(t *testing.T) {
	for idx, tc := range []struct {
		x limbs
		s uint
	}{
		{limbs{1}, 0},
		{limbs{1}, 31},
		{limbs{0x80000000, 0x80000000}, 1},
		{limbs{limbMask, limbMask, limbMask}, 17},
		{limbs{0x12345678, 0x9abcdef0}, 4},
	} {
		t.Run(fmt.Sprintf("%d/%v,%d", idx, tc.x, tc.s), func(t *testing.T) {
			tt := assert.WrapTB(t)
			xb := limbsToBig(tc.x)

			z := make(limbs, len(tc.x)+1)
			z[len(tc.x)] = shlVU(z, tc.x, tc.s)
			tt.MustEqual(new(big.Int).Lsh(xb, tc.s).String(), limbsToBig(z).String())

			z = make(limbs, len(tc.x))
			out := shrVU(z, tc.x, tc.s)
			tt.MustEqual(new(big.Int).Rsh(xb, tc.s).String(), limbsToBig(z).String())

			lost := new(big.Int).Sub(xb, new(big.Int).Lsh(limbsToBig(z), tc.s))
			tt.MustEqual(lost.String(), fmt.Sprint(uint64(out)>>(limbBits-tc.s)))

			// shrVU must work in place.
			in := tc.x.clone()
			shrVU(in, in, tc.s)
			tt.MustEqual(z, in)
		})
	}
}

func TestLimbsNorm(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(limbs(nil), limbs{0, 0, 0}.norm())
	tt.MustEqual(limbs(nil), limbs(nil).norm())
	tt.MustEqual(limbs{1, 0, 2}, limbs{1, 0, 2, 0}.norm())
	tt.MustEqual(limbs{1, 2}, limbsFromU64(1|2<<32))
	tt.MustEqual(limbs(nil), limbsFromU64(0))
}

func TestLimbsCmp(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(0, limbs(nil).cmp(nil))
	tt.MustEqual(-1, limbs(nil).cmp(limbs{1}))
	tt.MustEqual(1, limbs{0, 1}.cmp(limbs{limbMask}))
	tt.MustEqual(-1, limbs{limbMask, 1}.cmp(limbs{0, 2}))
	tt.MustEqual(1, limbs{1, 2, 3}.cmpW(maxUint64))
	tt.MustEqual(0, limbs{limbMask, limbMask}.cmpW(maxUint64))
	tt.MustEqual(-1, limbs{5}.cmpW(6))
}

func TestLimbsLowBitsSet(t *testing.T) {
	tt := assert.WrapTB(t)

	x := limbs{0, 0x10, 1}
	tt.MustAssert(!x.lowBitsSet(0))
	tt.MustAssert(!x.lowBitsSet(36))
	tt.MustAssert(x.lowBitsSet(37))
	tt.MustAssert(x.lowBitsSet(64))
	tt.MustAssert(x.lowBitsSet(200))
	tt.MustAssert(!limbs(nil).lowBitsSet(200))
}

func TestAddVW(t *testing.T) {
	for idx, tc := range []struct {
		x limbs
		w uint64
	}{
		{nil, 0},
		{nil, maxUint64},
		{limbs{limbMask}, 1},
		{limbs{limbMask, limbMask}, maxUint64},
		{limbs{limbMask, limbMask, limbMask}, 1},
		{limbs{1, 2, 3}, maxUint64},
	} {
		t.Run(fmt.Sprintf("%d/%v+%d", idx, tc.x, tc.w), func(t *testing.T) {
			tt := assert.WrapTB(t)
			xb := limbsToBig(tc.x)
			wb := new(big.Int).SetUint64(tc.w)
			tt.MustEqual(new(big.Int).Add(xb, wb).String(), limbsToBig(addVW(tc.x, tc.w)).String())

			if xb.Cmp(wb) >= 0 {
				tt.MustEqual(new(big.Int).Sub(xb, wb).String(), limbsToBig(subVW(tc.x, tc.w)).String())
			}
		})
	}
}

func TestMulVW(t *testing.T) {
	for idx, tc := range []struct {
		x limbs
		w uint64
	}{
		{nil, 5},
		{limbs{5}, 0},
		{limbs{limbMask}, maxUint64},
		{limbs{limbMask, limbMask, limbMask}, maxUint64},
		{limbs{1, 2, 3}, 1000000000},
	} {
		t.Run(fmt.Sprintf("%d/%v*%d", idx, tc.x, tc.w), func(t *testing.T) {
			tt := assert.WrapTB(t)
			xb := limbsToBig(tc.x)
			wb := new(big.Int).SetUint64(tc.w)
			z := mulVW(tc.x, tc.w)
			tt.MustEqual(new(big.Int).Mul(xb, wb).String(), limbsToBig(z).String())
			tt.MustEqual(z, z.norm())
		})
	}
}

func limbsToBig(x limbs) *big.Int {
	return BigInt{limbs: x.norm()}.AsBigInt()
}
