//go:build noasm

package config

// Built with `-tags noasm`: every hand-tuned fast path is disabled,
// forcing the portable Go arithmetic in package monty unconditionally.
const (
	AllowInlineAsmAll                  = false
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
