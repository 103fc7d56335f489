package monty

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Covers the quantified invariants from spec.md §8 not already exercised
// incidentally by the other _test.go files: convert_in(0)/convert_in(1)
// identities, square==multiply(v,v), two_times==add(v,v), and
// GetCanonicalValue's idempotence.

func TestConvertInZeroAndOneMatchZeroAndUnityValues(t *testing.T) {
	moduli := []uint32{3, 101, 65537, 1000003, MaxValue[uint32]() - 58}
	for _, n := range moduli {
		fr, err := NewFullrange[uint32](n)
		require.NoError(t, err)
		assert.Equal(t, fr.ZeroValue(), fr.ConvertIn(0), "n=%d", n)
		assert.Equal(t, fr.UnityValue(), fr.ConvertIn(1), "n=%d", n)
	}
}

func TestSquareMatchesMultiplySelf(t *testing.T) {
	r := rand.New(rand.NewSource(40))
	for _, n := range oddModuli(0, 30, 40) {
		fr, err := NewFullrange[uint32](n)
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			a := r.Uint32() % n
			v := fr.ConvertIn(a)
			assert.Equal(t, fr.Multiply(v, v), fr.Square(v), "n=%d a=%d", n, a)
		}
	}
}

func TestTwoTimesMatchesAddSelf(t *testing.T) {
	r := rand.New(rand.NewSource(41))
	for _, n := range oddModuli(0, 30, 41) {
		fr, err := NewFullrange[uint32](n)
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			a := r.Uint32() % n
			v := fr.ConvertIn(a)
			assert.Equal(t, fr.Add(v, v), fr.TwoTimes(v), "n=%d a=%d", n, a)
		}
	}
}

func TestGetCanonicalValueIsIdempotentAndMergesCongruentRepresentatives(t *testing.T) {
	bound := MaxValue[uint32]() / 4
	r := rand.New(rand.NewSource(42))
	for _, n := range oddModuli(bound, 20, 42) {
		qr, err := NewQuarterrange[uint32](n)
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			a := r.Uint32() % n
			wide := a + n // a second representative of the same residue, in [n, 2n)

			c1 := qr.GetCanonicalValue(a)
			c2 := qr.GetCanonicalValue(wide)
			assert.Equal(t, c1, c2, "n=%d a=%d", n, a)

			twice := qr.GetCanonicalValue(c1)
			assert.Equal(t, c1, twice, "idempotence n=%d a=%d", n, a)
		}
	}
}

func TestRedcResultAlwaysInRange(t *testing.T) {
	r := rand.New(rand.NewSource(43))
	for _, n := range oddModuli(0, 30, 43) {
		invN := InverseModR(n)
		for i := 0; i < 10; i++ {
			a := r.Uint32() % n
			hi, lo := MulWide(a, n) // hi < n is guaranteed whenever a < n
			got := redc(hi, lo, n, invN)
			assert.Less(t, got, n, "n=%d a=%d", n, a)
		}
	}
}
