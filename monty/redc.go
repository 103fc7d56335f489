package monty

import "github.com/blck-snwmn/monty/contract"

// redc implements the positive-inverse REDC algorithm (spec.md §4.E):
// logically computes (uHi*R + uLo) * R^-1 mod n, finalized into [0,n).
//
// Preconditions: uHi < n (which implies u = uHi*R+uLo < n*R), n odd and
// > 1, n*invN == 1 mod R.
func redc[T Word](uHi, uLo, n, invN T) T {
	contract.Precondition(uHi < n, "redc: uHi must be < n")
	m := uLo * invN
	mnHi, mnLo := MulWide(m, n)
	contract.Invariant(mnLo == uLo, "redc: m*n low word must equal uLo")

	tHi := uHi - mnHi
	var result T
	if uHi < mnHi {
		result = tHi + n
	} else {
		result = tHi
	}
	contract.Postcondition(result < n, "redc: finalized result must be < n")
	return result
}

// redcNonFinalized returns the unfinalized (minuend, subtrahend) pair
// (uHi, mnHi) for callers that want to finalize with their own range
// discipline (e.g. Quarterrange's "no finalization branch needed" path,
// spec.md §4.E "Invariants used for tighter variants").
func redcNonFinalized[T Word](uHi, uLo, n, invN T) (minuend, subtrahend T) {
	contract.Precondition(uHi < n, "redcNonFinalized: uHi must be < n")
	m := uLo * invN
	mnHi, mnLo := MulWide(m, n)
	contract.Invariant(mnLo == uLo, "redcNonFinalized: m*n low word must equal uLo")
	return uHi, mnHi
}

// redcWideRange performs the §4.E "n < R/4" (and, a fortiori, n < R/6)
// tightened finalization: inputs may come from [0, 2n) and the result
// stays in [0, 2n) with no finalization branch at all — just the
// unconditional add. Shared by Quarterrange and Sixthrange, which only
// differ in their modulus bound.
func redcWideRange[T Word](uHi, uLo, n, invN T) T {
	contract.Precondition(n < MaxValue[T]()/4, "redcWideRange: n must be < R/4")
	minuend, subtrahend := redcNonFinalized(uHi, uLo, n, invN)
	result := minuend - subtrahend + n
	contract.Postcondition(result < 2*n, "redcWideRange: result must be < 2n")
	return result
}

// redcNegativeInverse is the sign-flipped twin REDC formulation that
// consumes -invN instead of invN (spec.md §4.D, §5): m is chosen so
// that uLo + m*n vanishes mod R rather than uLo - m*n, which turns the
// high-word combination into a sum instead of a subtraction. Unlike the
// positive-inverse redc, there is no underflow to detect — the result
// only ever needs a plain magnitude compare-and-subtract against n, not
// a borrow check — which is what spec.md §4.F means by Halfrange doing
// its finalization "unconditionally" relative to Fullrange's REDC.
// Halfrange uses this formulation (see redcHalfrange below); it is also
// called standalone by redc_test.go, which checks it against the
// positive-inverse redc.
func redcNegativeInverse[T Word](uHi, uLo, n, negInvN T) T {
	contract.Precondition(uHi < n, "redcNegativeInverse: uHi must be < n")
	m := uLo * negInvN
	mnHi, mnLo := MulWide(m, n)
	// Here m is chosen so that uLo + m*n == 0 mod R (rather than
	// uLo - m*n == 0 mod R), so the high-word combination is a sum,
	// not a subtraction.
	contract.Invariant(uLo+mnLo == 0, "redcNegativeInverse: uLo + m*n low word must vanish mod R")
	tHi := uHi + mnHi
	if uLo != 0 {
		// uLo + mnLo == R exactly, carrying one into the high word.
		tHi++
	}
	var result T
	if tHi >= n {
		result = tHi - n
	} else {
		result = tHi
	}
	contract.Postcondition(result < n, "redcNegativeInverse: finalized result must be < n")
	return result
}

// redcHalfrange is redcNegativeInverse specialized to Halfrange's n < R/2
// restriction, under which mnHi < n and uHi < n, so their sum (plus the
// carry) stays below 2n < R and never overflows T before the
// compare-and-subtract.
func redcHalfrange[T Word](uHi, uLo, n, negInvN T) T {
	contract.Precondition(n < MaxValue[T]()/2, "redcHalfrange: n must be < R/2")
	return redcNegativeInverse(uHi, uLo, n, negInvN)
}
