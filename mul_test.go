package num

import (
	"fmt"
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestBigIntMul(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c BigInt
	}{
		{i64(5), i64(20), i64(100)},
		{i64(-5), i64(20), i64(-100)},
		{i64(-5), i64(-20), i64(100)},
		{i64(0), i64(-20), i64(0)},
		{i64(8), i64(3), i64(24)},
		{bi("18446744069414584322"), bi("17179869182"), bi("316912649946376885974868164604")},
		{i64(21474836484), i64(2), i64(42949672968)},
		{bi("18446744073709551616"), bi("18446744073709551616"), bi("340282366920938463463374607431768211456")},
		{
			bi("340282366920938463463374607431768211456"),
			bi("340282366920938463463374607431768211456"),
			bi("115792089237316195423570985008687907853269984665640564039457584007913129639936"),
		},
		{
			bi("-100000000000000000000000000"),
			bi("-100000000000000000000000000"),
			bi("10000000000000000000000000000000000000000000000000000"),
		},
		{
			bi("-1000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000"),
			bi("100000000000000000000000000000000000000"),
			bi("-100000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000"),
		},
		{bi("18446744073709551615"), bi("18446744073709551615"), bi("340282366920938463426481119284349108225")},
	} {
		t.Run(fmt.Sprintf("%d/%s*%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Mul(tc.b))
			tt.MustEqual(tc.c, tc.b.Mul(tc.a))
		})
	}
}

func TestBigIntMul64(t *testing.T) {
	for idx, tc := range []struct {
		a BigInt
		b int64
		c BigInt
	}{
		{i64(2), 2, i64(4)},
		{i64(-3), 0, i64(0)},
		{i64(3), -1, i64(-3)},
		{bi("18446744073709551615"), math.MinInt64, bi("-170141183460469231722463931679029329920")},
		{bi("-18446744073709551615"), math.MaxInt64, bi("-170141183460469231704017187605319778305")},
	} {
		t.Run(fmt.Sprintf("%d/%s*%d", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Mul64(tc.b))
			tt.MustEqual(tc.c, tc.a.Mul(i64(tc.b)))
		})
	}
}

func TestBigIntMulAssign(t *testing.T) {
	tt := assert.WrapTB(t)

	a := i64(5)
	a.MulAssign(i64(2)).MulAssign(i64(2))
	tt.MustEqual(i64(20), a)

	b := i64(-5)
	b.Mul64Assign(20)
	tt.MustEqual(i64(-100), b)

	c := bi("4294967296")
	c.MulAssign(c)
	tt.MustEqual(bi("18446744073709551616"), c)
}
