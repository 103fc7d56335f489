package monty

import "github.com/blck-snwmn/monty/contract"

// Profile selects between the two equivalent implementations spec.md
// §4.C calls out for the prereduced add/sub/double primitives:
// LowLatency trades extra micro-ops for a shorter dependency chain,
// LowUops trades a longer chain for fewer total operations. Both must
// return bit-identical results for identical inputs; modarith_test.go
// checks this directly.
type Profile int

const (
	LowLatency Profile = iota
	LowUops
)

// ModAdd returns (a+b) mod n, requiring 0 <= a,b < n, without ever
// overflowing T.
func ModAdd[T Word](a, b, n T, p Profile) T {
	contract.Precondition(a < n && b < n, "mod_add: a,b must be < n")
	var result T
	switch p {
	case LowLatency:
		// cselect form: compute both candidate results, pick branchlessly.
		sum := a + b
		wrapped := sum - n
		mask := -T(boolToUint(sum >= n || sum < a))
		result = (sum & ^mask) | (wrapped & mask)
	default: // LowUops
		t := n - b
		if a < t {
			result = a + b
		} else {
			result = a - t
		}
	}
	contract.Postcondition(result < n, "mod_add: result must be < n")
	return result
}

// ModSub returns (a-b) mod n, requiring 0 <= a,b < n, treating a-b as
// if a,b were unbounded signed integers.
func ModSub[T Word](a, b, n T, p Profile) T {
	contract.Precondition(a < n && b < n, "mod_sub: a,b must be < n")
	var result T
	switch p {
	case LowLatency:
		// branchless mask form: diff + (mask & n), mask = -(a<b)
		diff := a - b
		mask := -T(boolToUint(a < b))
		result = diff + (mask & n)
	default: // LowUops
		if a >= b {
			result = a - b
		} else {
			result = n - (b - a)
		}
	}
	contract.Postcondition(result < n, "mod_sub: result must be < n")
	return result
}

// TwoTimesRestricted returns 2a mod n, requiring n < R/2 and a < n.
// The R/2 restriction guarantees 2a never wraps T, so the reduction is
// a single conditional subtract.
func TwoTimesRestricted[T Word](a, n T, p Profile) T {
	contract.Precondition(n < MaxValue[T]()/2, "two_times_restricted: n must be < R/2")
	contract.Precondition(a < n, "two_times_restricted: a must be < n")
	doubled := a + a
	switch p {
	case LowLatency:
		mask := -T(boolToUint(doubled >= n))
		result := doubled - (mask & n)
		contract.Postcondition(result < n, "two_times_restricted: result must be < n")
		return result
	default: // LowUops
		if doubled >= n {
			doubled -= n
		}
		contract.Postcondition(doubled < n, "two_times_restricted: result must be < n")
		return doubled
	}
}

func boolToUint(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
