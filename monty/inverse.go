package monty

import "github.com/blck-snwmn/monty/contract"

// InverseModR returns inv such that n*inv == 1 (computed mod R, i.e. in
// T's wraparound arithmetic), for odd n. It uses the seeded
// Newton/Dumas iteration from spec.md §4.D:
//
//	x0 = (3*n) XOR 2          // correct to 5 bits for any odd n
//	x  = x * (2 - n*x)        // each step doubles the correct bit count
//
// repeated until the correct-bit count covers the full width of T.
func InverseModR[T Word](n T) T {
	contract.Precondition(n&1 == 1, "InverseModR: n must be odd")
	x := (3 * n) ^ 2
	for correct := 5; correct < BitWidth[T](); correct *= 2 {
		x = x * (2 - n*x)
	}
	contract.Postcondition(n*x == 1, "InverseModR: n*inv must equal 1 mod R")
	return x
}

// NegativeInverseModR returns -inv mod R (i.e. R - inv), for the older
// REDC formulation that consumes the negated inverse (spec.md §4.D,
// §5 supplemented features). It is mathematically n's inverse negated,
// so it is derived from InverseModR rather than run as an independent
// recurrence — see DESIGN.md for why collapsing the two recurrences
// into one is safe here.
func NegativeInverseModR[T Word](n T) T {
	inv := InverseModR(n)
	neg := -inv
	contract.Postcondition(n*neg == MaxValue[T](), "NegativeInverseModR: n*(-inv) must equal -1 mod R")
	return neg
}

// inverseModR128 lifts a 64-bit inverse to 128 bits with one further
// Newton step, per spec.md §4.D's recursion rule for widths exceeding
// the native ALU width.
func inverseModR128(n U128) U128 {
	contract.Precondition(n.Lo&1 == 1, "inverseModR128: n must be odd")
	x64 := InverseModR(n.Lo)
	x := U128{Hi: 0, Lo: x64}
	// One Newton step at full 128-bit precision: x = x*(2 - n*x).
	nx := mul128(n, x)
	twoMinusNX := sub128(U128{Hi: 0, Lo: 2}, nx)
	x = mul128(x, twoMinusNX)
	contract.Postcondition(mul128(n, x) == (U128{Hi: 0, Lo: 1}), "inverseModR128: n*inv must equal 1 mod R")
	return x
}
