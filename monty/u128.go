package monty

import "math/bits"

// U128 is the speculative 128-bit word surface from spec.md §4.A /
// Open Questions: Go has no native 128-bit integer, so width w=128 is
// represented as an explicit (Hi, Lo uint64) pair rather than plugged
// into the generic Word constraint. U128 arithmetic is only meant to be
// used when config.HasUint128ALU reports the target can do it cheaply;
// callers that need w=128 unconditionally should guard on that flag and
// fall back to two independent 64-bit Monty variants otherwise.
type U128 struct {
	Hi, Lo uint64
}

// add128 returns a+b mod 2^128, wrapping on overflow like T's wraparound
// arithmetic does for the generic widths.
func add128(a, b U128) U128 {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi, _ := bits.Add64(a.Hi, b.Hi, carry)
	return U128{Hi: hi, Lo: lo}
}

// sub128 returns a-b mod 2^128.
func sub128(a, b U128) U128 {
	lo, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	hi, _ := bits.Sub64(a.Hi, b.Hi, borrow)
	return U128{Hi: hi, Lo: lo}
}

// cmp128 returns -1, 0, or 1 as a<b, a==b, a>b.
func cmp128(a, b U128) int {
	if a.Hi != b.Hi {
		if a.Hi < b.Hi {
			return -1
		}
		return 1
	}
	switch {
	case a.Lo < b.Lo:
		return -1
	case a.Lo > b.Lo:
		return 1
	default:
		return 0
	}
}

// mul128 returns a*b mod 2^128 (the low 128 bits of the full 256-bit
// product), which is all REDC over a 128-bit modulus ever needs since
// every operand already lives in [0, n) with n < 2^128.
func mul128(a, b U128) U128 {
	hiLo, loLo := bits.Mul64(a.Lo, b.Lo)
	cross1Hi, cross1Lo := bits.Mul64(a.Hi, b.Lo)
	cross2Hi, cross2Lo := bits.Mul64(a.Lo, b.Hi)
	_ = cross1Hi
	_ = cross2Hi

	lo := loLo
	// Carries out of the high word fall past bit 127 and are dropped.
	hi := hiLo + cross1Lo + cross2Lo
	return U128{Hi: hi, Lo: lo}
}

// mulWide128 computes the full 256-bit product of a and b, split into
// (hi2, hi1, hi0, lo) 64-bit limbs packed as two U128 halves: the high
// half (bits 128-255) and low half (bits 0-127), i.e. the u_hi*R + u_lo
// shape a 128-bit REDC input takes.
func mulWide128(a, b U128) (hi, lo U128) {
	// Schoolbook 2x2-limb multiply: a = a.Hi*2^64 + a.Lo, same for b.
	h0, l0 := bits.Mul64(a.Lo, b.Lo)     // a.Lo * b.Lo
	h1, l1 := bits.Mul64(a.Lo, b.Hi)     // a.Lo * b.Hi
	h2, l2 := bits.Mul64(a.Hi, b.Lo)     // a.Hi * b.Lo
	h3, l3 := bits.Mul64(a.Hi, b.Hi)     // a.Hi * b.Hi

	lo.Lo = l0

	mid, c1 := bits.Add64(h0, l1, 0)
	mid, c2 := bits.Add64(mid, l2, 0)
	lo.Hi = mid

	// c1 and c2 are each 0 or 1; bits.Add64 takes a carry of at most 1,
	// so they are added in separately.
	hiLo, c3 := bits.Add64(h1, h2, 0)
	hiLo, c4 := bits.Add64(hiLo, l3, c1)
	hiLo, c5 := bits.Add64(hiLo, 0, c2)
	hi.Lo = hiLo

	hi.Hi = h3 + c3 + c4 + c5
	return hi, lo
}
