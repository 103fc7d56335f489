package monty

import "math/bits"

// DefaultTableBits is P, the default table size exponent for the
// 2^k-ary two-pow engine (spec.md §4.G).
const DefaultTableBits = 5

// TwoPowTable precomputes table[i] = Monty(2^i) for i in
// [0, 2^tableBits), then answers 2^k mod n queries by processing k's
// bits P at a time, left to right, with a sliding-window skip over
// interior zero bits (component G).
type TwoPowTable[T Word] struct {
	v         Variant[T]
	tableBits int
	table     []T
}

// NewTwoPowTable builds the power-of-two table for v. tableBits <= 0
// selects DefaultTableBits.
func NewTwoPowTable[T Word](v Variant[T], tableBits int) *TwoPowTable[T] {
	if tableBits <= 0 {
		tableBits = DefaultTableBits
	}
	size := 1 << uint(tableBits)
	table := make([]T, size)
	table[0] = v.UnityValue()
	if size > 1 {
		table[1] = v.TwoTimes(table[0])
	}
	for i := 2; i < size; i++ {
		if i%2 == 0 {
			// table[2j] = Monty(2^(2j)) = Monty(2^j)^2: a squaring
			// shortcut that shortens the dependency chain relative to
			// doubling table[i-1] sequentially every step, applied to
			// every even index at every table size.
			table[i] = v.Square(table[i/2])
		} else {
			table[i] = v.TwoTimes(table[i-1])
		}
	}
	return &TwoPowTable[T]{v: v, tableBits: tableBits, table: table}
}

// Pow returns the Montgomery form of 2^k mod n.
func (tp *TwoPowTable[T]) Pow(k uint64) T {
	if k == 0 {
		return tp.v.UnityValue()
	}
	P := tp.tableBits
	bitsK := bits.Len64(k)
	if bitsK <= P {
		return tp.table[k]
	}

	shift := bitsK - P
	result := tp.table[(k>>uint(shift))&tp.mask()]

	for shift >= P {
		// Sliding window: skip squarings for a leading zero bit inside
		// the next group, as long as doing so can't cross into the
		// final partial group (shift > P guards that).
		for shift > P && (k>>uint(shift-1))&1 == 0 {
			result = tp.v.Square(result)
			shift--
		}
		for i := 0; i < P; i++ {
			result = tp.v.Square(result)
		}
		shift -= P
		idx := (k >> uint(shift)) & tp.mask()
		result = tp.v.Multiply(result, tp.table[idx])
	}

	if shift > 0 {
		for i := 0; i < shift; i++ {
			result = tp.v.Square(result)
		}
		tailMask := (uint64(1) << uint(shift)) - 1
		result = tp.v.Multiply(result, tp.table[k&tailMask])
	}
	return result
}

func (tp *TwoPowTable[T]) mask() uint64 {
	return uint64(len(tp.table) - 1)
}

// twoPowP1 is the hand-written P=1 special case from spec.md §4.G: a
// branch-free square-then-conditionally-double loop using a cmov-style
// mask select between the squared result and its double, instead of
// the windowed-table machinery above (which degenerates to a 2-entry
// table at P=1 anyway, but without the sliding-window skip, since
// skipping is meaningless at window size 1).
func twoPowP1[T Word](v Variant[T], k uint64) T {
	unity := v.UnityValue()
	if k == 0 {
		return unity
	}
	two := v.TwoTimes(unity)
	n := bits.Len64(k)
	result := unity
	for i := n - 1; i >= 0; i-- {
		result = v.Square(result)
		doubled := v.Multiply(result, two)
		bit := (k >> uint(i)) & 1
		mask := -T(bit)
		result = (result & ^mask) | (doubled & mask)
	}
	return result
}

// TwoPowArray runs len(variants) independent 2^k mod n exponentiations
// in lock-step, bit by bit, exploiting that the lanes share no data
// dependencies and so can be interleaved freely by a superscalar
// executor (spec.md §4.G "Array variant", §5). The iteration count is
// governed by the widest exponent; lanes with a smaller exponent just
// accept extra redundant leading squarings of their own accumulator
// (squaring the multiplicative identity, or later their own partial
// result, is always safe — the corresponding bit of a shorter exponent
// reads as 0 past its own bit length).
func TwoPowArray[T Word](variants []Variant[T], ks []uint64) []T {
	n := len(variants)
	results := make([]T, n)
	twoVals := make([]T, n)
	maxBits := 0
	for i, v := range variants {
		results[i] = v.UnityValue()
		twoVals[i] = v.TwoTimes(results[i])
		if b := bits.Len64(ks[i]); b > maxBits {
			maxBits = b
		}
	}
	for pos := maxBits - 1; pos >= 0; pos-- {
		for i, v := range variants {
			results[i] = v.Square(results[i])
			if (ks[i]>>uint(pos))&1 == 1 {
				results[i] = v.Multiply(results[i], twoVals[i])
			}
		}
	}
	return results
}
