package monty

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func toBig(v U128) *big.Int {
	x := new(big.Int).Lsh(new(big.Int).SetUint64(v.Hi), 64)
	return x.Or(x, new(big.Int).SetUint64(v.Lo))
}

func fromBig(x *big.Int) U128 {
	mask := new(big.Int).Lsh(big.NewInt(1), 64)
	mask.Sub(mask, big.NewInt(1))
	lo := new(big.Int).And(x, mask)
	hi := new(big.Int).Rsh(x, 64)
	hi.And(hi, mask)
	return U128{Hi: hi.Uint64(), Lo: lo.Uint64()}
}

func randU128(r *rand.Rand) U128 {
	return U128{Hi: r.Uint64(), Lo: r.Uint64()}
}

func TestAdd128MatchesBigInt(t *testing.T) {
	r := rand.New(rand.NewSource(30))
	mod := new(big.Int).Lsh(big.NewInt(1), 128)
	for i := 0; i < 200; i++ {
		a, b := randU128(r), randU128(r)
		got := add128(a, b)
		want := new(big.Int).Add(toBig(a), toBig(b))
		want.Mod(want, mod)
		assert.Equal(t, fromBig(want), got)
	}
}

func TestSub128MatchesBigInt(t *testing.T) {
	r := rand.New(rand.NewSource(31))
	mod := new(big.Int).Lsh(big.NewInt(1), 128)
	for i := 0; i < 200; i++ {
		a, b := randU128(r), randU128(r)
		got := sub128(a, b)
		want := new(big.Int).Sub(toBig(a), toBig(b))
		want.Mod(want, mod)
		assert.Equal(t, fromBig(want), got)
	}
}

func TestCmp128MatchesBigInt(t *testing.T) {
	r := rand.New(rand.NewSource(32))
	for i := 0; i < 200; i++ {
		a, b := randU128(r), randU128(r)
		got := cmp128(a, b)
		want := toBig(a).Cmp(toBig(b))
		assert.Equal(t, want, got)
	}
}

func TestMul128MatchesBigIntLow128Bits(t *testing.T) {
	r := rand.New(rand.NewSource(33))
	mod := new(big.Int).Lsh(big.NewInt(1), 128)
	for i := 0; i < 200; i++ {
		a, b := randU128(r), randU128(r)
		got := mul128(a, b)
		want := new(big.Int).Mul(toBig(a), toBig(b))
		want.Mod(want, mod)
		assert.Equal(t, fromBig(want), got)
	}
}

func TestMulWide128MatchesBigIntFull256Bits(t *testing.T) {
	r := rand.New(rand.NewSource(34))
	shift256 := new(big.Int).Lsh(big.NewInt(1), 128)
	for i := 0; i < 200; i++ {
		a, b := randU128(r), randU128(r)
		hi, lo := mulWide128(a, b)

		full := new(big.Int).Mul(toBig(a), toBig(b))
		wantLo := new(big.Int).Mod(full, shift256)
		wantHi := new(big.Int).Rsh(full, 128)

		assert.Equal(t, fromBig(wantLo), lo, "lo mismatch a=%+v b=%+v", a, b)
		assert.Equal(t, fromBig(wantHi), hi, "hi mismatch a=%+v b=%+v", a, b)
	}
}
