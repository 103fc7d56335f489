// Package monty implements Montgomery modular arithmetic over a single
// machine word: REDC reduction, the family of range-restricted Monty
// variants (Fullrange, Halfrange, Quarterrange, Sixthrange, SqrtRange,
// FullRangeMasked), and a fused 2^k mod n exponentiation engine built on
// top of them.
//
// All arithmetic is generic over the unsigned word width T (uint8,
// uint16, uint32, uint64; u128.go adds non-generic 128-bit word helpers
// and a 128-bit inverse mod R, but no 128-bit Monty variant). A modulus
// n must be odd and fit
// the active variant's range restriction; see each variant's
// constructor for its exact bound. Every exported operation here is a
// pure function of its arguments and every Monty value constructed by
// this package is a plain, copyable T (or, for FullRangeMasked, a pair
// of T) — there is no hidden allocation or shared mutable state, so
// Monty variant values are safe to share across goroutines once
// constructed.
package monty
