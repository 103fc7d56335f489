//go:build !noasm

package config

// AllowInlineAsmAll and the per-component flags below mirror spec.md
// §6's ALLOW_INLINE_ASM_ALL / ALLOW_INLINE_ASM_{REDC, MODADD, ...}
// build-time switches. This module has no hand-written assembly fast
// paths to gate (Go's compiler, not a hand-tuned .s file, generates the
// cmov/branch forms of each Profile) — these flags exist so a
// future assembly fast path can be dropped in behind a `//go:build
// noasm` pair without touching call sites, the same shape
// `luxfi-ringtail/gpu` uses to gate an entire backend behind
// `//go:build cgo`. Build with `-tags noasm` to force every flag off.
const (
	AllowInlineAsmAll                  = true
	AllowInlineAsmRedc                 = AllowInlineAsmAll
	AllowInlineAsmModAdd                = AllowInlineAsmAll
	AllowInlineAsmModSub                = AllowInlineAsmAll
	AllowInlineAsmModMul                = AllowInlineAsmAll
	AllowInlineAsmTwoTimes              = AllowInlineAsmAll
	AllowInlineAsmMontAddSqrtRange      = AllowInlineAsmAll
	AllowInlineAsmMontSubSqrtRange      = AllowInlineAsmAll
	AllowInlineAsmQuarterrangeCanonical = AllowInlineAsmAll
	AllowInlineAsmHalfrangeCanonical    = AllowInlineAsmAll
)
