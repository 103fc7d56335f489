// Package config centralizes the build-time tunables described in
// spec.md §6. Go has no preprocessor, so switches that in the original
// design gate code generation become either a build-tag-selected file
// (see config_cselect.go / config_cselect_noasm.go) or a plain runtime
// flag when the choice doesn't need to be a compile-time constant.
package config

import "golang.org/x/sys/cpu"

// AvoidCselect mirrors AVOID_CSELECT: a hint to prefer a branching or
// mask form over a conditional-move idiom in mod_add/mod_sub/two_times.
// No code in package monty reads it: callers pick a form by passing a
// Profile to ModAdd/ModSub/TwoTimesRestricted, and modarith_test.go
// checks the two profiles against each other directly.
var AvoidCselect = !cpu.X86.HasAVX2 && !cpu.ARM64.HasASIMD

// TestingRSquaredModN mirrors TESTING_RSQUARED_MOD_N: force the
// iterative doubling computation of R² mod n (see monty.r2ModNSlow)
// instead of the single modular multiply. Tests flip this to exercise both code
// paths against each other.
var TestingRSquaredModN = false

// ErrorOnSlowMath mirrors COMPILE_ERROR_ON_SLOW_MATH. Go cannot turn an
// instantiation into a compile error at the generic-function level, so
// this is enforced as a panic the first time the slow modular-multiply
// fallback actually runs while the flag is set; it is meant to be
// flipped on in CI for targets that must never hit the slow path.
var ErrorOnSlowMath = false

// TargetISAHasNoDivide mirrors TARGET_ISA_HAS_NO_DIVIDE: skip the
// divide-based fast path in standard modular multiplication (component
// H) and always take the Russian-peasant slow loop. Useful for
// targets where integer division is emulated in software and is
// actually slower than repeated mod_add.
var TargetISAHasNoDivide = false

// HasUint128ALU reports whether the target realistically has fast
// 128-bit-wide arithmetic available (via compiler intrinsics on
// amd64/arm64). It gates the U128 "speculative" surface per spec.md's
// Open Questions ("128-bit integer types on platforms without native
// 128-bit arithmetic are marked speculative and should be guarded
// behind explicit capability checks").
var HasUint128ALU = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
