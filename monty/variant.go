package monty

import (
	"fmt"

	"github.com/blck-snwmn/monty/config"
)

// Variant is the shared contract every range-tagged Monty implementation
// satisfies, except FullRangeMasked, whose Montgomery value is a
// (lowbits, signmask) pair rather than a single T — see
// fullrangemasked.go. V is whatever representation the variant accepts
// for a Montgomery value (Fullrange/Halfrange/SqrtRange: exactly the
// canonical range; Quarterrange/Sixthrange: the wider [0,2n) range).
type Variant[T Word] interface {
	// Modulus returns n.
	Modulus() T
	// ConvertIn maps a, in the variant's accepted input range, to its
	// Montgomery form.
	ConvertIn(a T) T
	// ConvertOut maps a Montgomery value back to [0, n).
	ConvertOut(v T) T
	// GetCanonicalValue normalizes v into the variant's canonical
	// subrange; idempotent.
	GetCanonicalValue(v T) T
	// UnityValue, ZeroValue, NegativeOneValue are the Montgomery forms
	// of 1, 0, and n-1 respectively.
	UnityValue() T
	ZeroValue() T
	NegativeOneValue() T

	Add(x, y T) T
	Subtract(x, y T) T
	TwoTimes(x T) T
	Square(x T) T
	Multiply(x, y T) T
	Negate(x T) T
}

// Fused is implemented by variants that support the fused update
// operations from spec.md §4.F: fmadd, fmsub, famul. Fullrange and
// Halfrange, whose multiply already produces a canonical [0,n) result,
// support fusing a following add/sub without a second reduction step.
type Fused[T Word] interface {
	Variant[T]
	// Fmadd returns x*y + z.
	Fmadd(x, y, z T) T
	// Fmsub returns x*y - z.
	Fmsub(x, y, z T) T
	// Famul returns (x+y)*z.
	Famul(x, y, z T) T
}

// validateModulus checks the common precondition every variant shares
// (n odd, n > 1) plus the variant-specific upper bound, returning a
// descriptive error rather than panicking: unlike the hot arithmetic
// paths, modulus selection happens once at construction time and is
// typically driven by external input (e.g. key generation), so this is
// the one place the core validates instead of asserting (see
// SPEC_FULL.md §3.1).
func validateModulus[T Word](n T, bound T, boundName string) error {
	if n <= 1 {
		return fmt.Errorf("monty: modulus %d must be > 1", n)
	}
	if n&1 == 0 {
		return fmt.Errorf("monty: modulus %d must be odd", n)
	}
	if bound != 0 && n >= bound {
		return fmt.Errorf("monty: modulus %d must be < %s (got bound %d)", n, boundName, bound)
	}
	return nil
}

// rModN computes R mod n without division, exploiting wraparound
// subtraction: RmodN = (0 - n) mod n = (R - n) mod n (spec.md §9).
func rModN[T Word](n T) T {
	return (-n) % n
}

// r2ModN computes R^2 mod n as one standard modular multiply
// (rmodn*rmodn mod n). When config.TestingRSquaredModN is set, it
// instead takes the iterative doubling path (r2ModNSlow), so that both
// paths can be cross-checked against each other in tests.
func r2ModN[T Word](n, rmodn, invN T) T {
	if config.TestingRSquaredModN {
		return r2ModNSlow(n, rmodn, invN)
	}
	return StdMulMod(rmodn, rmodn, n).Value
}

// r2ModNSlow computes R^2 mod n by doubling RmodN bitWidth(T) times
// (mod n at each step) and is algorithmically equivalent to, but far
// slower than, the single modular multiply in r2ModN. It exists to
// give TESTING_RSQUARED_MOD_N something real to exercise.
func r2ModNSlow[T Word](n, rmodn, invN T) T {
	acc := rmodn
	for i := 0; i < BitWidth[T](); i++ {
		acc = ModAdd(acc, acc, n, LowUops)
	}
	return acc
}
