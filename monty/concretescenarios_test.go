package monty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed-value end-to-end scenarios, each hand-checkable against plain
// integer arithmetic, complementing the randomized property tests
// elsewhere in this package.

func TestConcreteFullrangeSmallMultiply(t *testing.T) {
	fr, err := NewFullrange[uint32](0xFFFFFFFB)
	require.NoError(t, err)
	got := fr.ConvertOut(fr.Multiply(fr.ConvertIn(3), fr.ConvertIn(5)))
	assert.Equal(t, uint32(15), got)
}

func TestConcreteFullrangeNegativeOneSquaresToOne(t *testing.T) {
	const n = uint64(1<<63 - 25)
	fr, err := NewFullrange[uint64](n)
	require.NoError(t, err)

	negOne := fr.ConvertIn(n - 1)
	assert.Equal(t, fr.NegativeOneValue(), negOne)

	squared := fr.ConvertOut(fr.Multiply(negOne, negOne))
	assert.Equal(t, uint64(1), squared)
}

func TestConcreteTwoPowLargeExponent(t *testing.T) {
	const n = uint64(1000000007)
	fr, err := NewFullrange[uint64](n)
	require.NoError(t, err)

	table := NewTwoPowTable[uint64](fr, DefaultTableBits)
	got := fr.ConvertOut(table.Pow(1000000000))
	assert.Equal(t, uint64(140625001), got)
}

func TestConcreteQuarterrangeRepeatedSquareAndMultiply(t *testing.T) {
	const n = uint32(1<<30 - 35)
	qr, err := NewQuarterrange[uint32](n)
	require.NoError(t, err)

	base := qr.ConvertIn(7)
	result := qr.ConvertIn(1)
	exp := uint32(13)
	b := base
	for exp > 0 {
		if exp&1 == 1 {
			result = qr.GetCanonicalValue(qr.Multiply(result, b))
		}
		b = qr.GetCanonicalValue(qr.Multiply(b, b))
		exp >>= 1
	}
	got := qr.ConvertOut(result)

	want := uint32(1)
	for i := 0; i < 13; i++ {
		want = uint32((uint64(want) * 7) % uint64(n))
	}
	assert.Equal(t, want, got)
}

func TestConcreteSqrtRangeZeroRepresentationAndMultiply(t *testing.T) {
	const n = uint64(65537)
	sv, err := NewSqrtRange[uint64](n)
	require.NoError(t, err)

	assert.Equal(t, n, sv.ConvertIn(0))

	one := sv.ConvertIn(1)
	other := sv.ConvertIn(n - 1) // 65536
	got := sv.ConvertOut(sv.Multiply(one, other))
	assert.Equal(t, n-1, got)
}

func TestConcreteInverseModRKnownValue(t *testing.T) {
	inv := InverseModR[uint32](7)
	assert.Equal(t, uint32(0xB6DB6DB7), inv)
	assert.Equal(t, uint32(1), 7*inv)
}
