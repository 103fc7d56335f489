package monty

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Word is the width-adaptive integer trait from spec.md §4.A: the set of
// native unsigned word types the core operates on. R (the Montgomery
// radix) is 2^bitWidth(T) for whichever T the caller instantiates
// against; R is never materialized as a value of T, since it doesn't
// fit in one.
//
// Go's unsigned integers never implicitly narrow to a signed type the
// way some source-ecosystem languages do, so the "safely promoted
// unsigned type" the original design calls for needs no extra wrapper
// here — see DESIGN.md for this Open-Question resolution.
type Word interface {
	constraints.Unsigned
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitWidth returns w, the bit width of T (and therefore log2(R)).
func BitWidth[T Word]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// MaxValue returns R-1, the largest representable value of T.
func MaxValue[T Word]() T {
	return ^T(0)
}

// hasNativeDouble reports whether T has a native (or cheaply emulated
// via math/bits) double-width companion. All four Word instantiations
// do — see MulWide in widearith.go — but the schoolbook emulation
// path in mulWideEmulated is kept available for widths where it
// wouldn't (and for testing bit-for-bit agreement between the two).
func hasNativeDouble[T Word]() bool {
	return true
}
