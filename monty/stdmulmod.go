package monty

import "github.com/blck-snwmn/monty/config"

// StdMulModResult carries the (a*b) mod n result from StdMulMod along
// with whether the slow fallback path computed it, matching spec.md
// §4.H's has_slow_perf() predicate.
type StdMulModResult[T Word] struct {
	Value        T
	UsedSlowPath bool
}

// StdMulMod computes (a*b) mod n for a, b < n, entirely outside
// Montgomery form (component H) — used by tests, variant construction,
// and anywhere a single modular multiply isn't worth converting into
// and back out of Montgomery form for.
func StdMulMod[T Word](a, b, n T) StdMulModResult[T] {
	if config.TargetISAHasNoDivide {
		if config.ErrorOnSlowMath {
			panic("monty: StdMulMod: ErrorOnSlowMath is set but the slow path was reached")
		}
		return StdMulModResult[T]{Value: stdMulModSlow(a, b, n), UsedSlowPath: true}
	}

	hi, lo := MulWide(a, b)
	if hi == 0 {
		// Product fits in one word: a native single-width division
		// settles it directly, the fastest available path.
		return StdMulModResult[T]{Value: lo % n, UsedSlowPath: false}
	}

	// Fast path using the wide-divide intrinsic, valid whenever n > hi
	// (spec.md §4.B divwide precondition) — guaranteed here because
	// a,b < n so hi = high word of a*b < n.
	if hi < n {
		_, r := DivWide(hi, lo, n)
		return StdMulModResult[T]{Value: r, UsedSlowPath: false}
	}

	if config.ErrorOnSlowMath {
		panic("monty: StdMulMod: ErrorOnSlowMath is set but the slow path was reached")
	}
	return StdMulModResult[T]{Value: stdMulModSlow(a, b, n), UsedSlowPath: true}
}

// stdMulModSlow computes (a*b) mod n via Russian-peasant multiplication
// using mod_add while shifting b, for targets with only single-width
// division (or none at all) — spec.md §4.H's slow fallback.
func stdMulModSlow[T Word](a, b, n T) T {
	var result T
	a %= n
	for b > 0 {
		if b&1 == 1 {
			result = ModAdd(result, a, n, LowUops)
		}
		a = ModAdd(a, a, n, LowUops)
		b >>= 1
	}
	return result
}
