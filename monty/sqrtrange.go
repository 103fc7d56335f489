package monty

import (
	"fmt"

	"github.com/blck-snwmn/monty/contract"
)

// SqrtRange restricts the modulus to n < sqrt(R). That bound guarantees
// any product of two in-range values fits in a single word without
// spilling into a high word (n*n < R), so REDC's u_hi is always 0 —
// the "preconditions stripped of the u_lo != 0 and u_hi == 0 edge
// cases" path spec.md §4.F describes for this variant.
//
// Values live in (0, n]: zero is represented as n instead of 0, since n
// ≡ 0 (mod n) and keeping every representative strictly positive lets
// callers skip a zero check that the other variants need.
type SqrtRange[T Word] struct {
	n, invN, rModN, r2ModN T
}

// NewSqrtRange constructs a SqrtRange variant for modulus n < sqrt(R).
func NewSqrtRange[T Word](n T) (*SqrtRange[T], error) {
	if n > 1 && n >= sqrtBound[T]() {
		return nil, fmt.Errorf("monty: modulus %d must be < sqrt(R) (got bound %d)", n, sqrtBound[T]())
	}
	if err := validateModulus[T](n, 0, "sqrt(R)"); err != nil {
		return nil, err
	}
	invN := InverseModR(n)
	rmn := rModN(n)
	return &SqrtRange[T]{n: n, invN: invN, rModN: rmn, r2ModN: r2ModN(n, rmn, invN)}, nil
}

// sqrtBound returns s = sqrt(R) = 2^(w/2) exactly, computed with a
// single shift since w is even for every Word width.
func sqrtBound[T Word]() T {
	w := BitWidth[T]()
	// R = 2^w, sqrt(R) = 2^(w/2). w is always even for our four widths.
	return T(1) << uint(w/2)
}

func (m *SqrtRange[T]) Modulus() T { return m.n }

// ConvertIn maps a in [0, n) to its Montgomery form, represented as n
// instead of 0 when a == 0.
func (m *SqrtRange[T]) ConvertIn(a T) T {
	contract.Precondition(a < m.n, "SqrtRange.ConvertIn: a must be < n")
	hi, lo := MulWide(a, m.r2ModN)
	v := m.redcSqrt(hi, lo)
	if v == 0 {
		return m.n
	}
	return v
}

// ConvertOut returns a in [0, n) with v ≡ a*R (mod n); v == n is
// treated as the zero representative.
func (m *SqrtRange[T]) ConvertOut(v T) T {
	if v == m.n {
		v = 0
	}
	return m.redcSqrt(0, v)
}

func (m *SqrtRange[T]) GetCanonicalValue(v T) T {
	if v == 0 {
		return m.n
	}
	return v
}

func (m *SqrtRange[T]) UnityValue() T { return m.GetCanonicalValue(m.rModN) }
func (m *SqrtRange[T]) ZeroValue() T  { return m.n }
func (m *SqrtRange[T]) NegativeOneValue() T {
	return m.GetCanonicalValue(m.n - m.rModN)
}

// toPlain maps the variant's (0,n] representation to a plain [0,n) word
// for feeding the shared mod_add/mod_sub primitives, which expect 0.
func (m *SqrtRange[T]) toPlain(v T) T {
	if v == m.n {
		return 0
	}
	return v
}

func (m *SqrtRange[T]) Add(x, y T) T {
	return m.GetCanonicalValue(ModAdd(m.toPlain(x), m.toPlain(y), m.n, LowUops))
}

func (m *SqrtRange[T]) Subtract(x, y T) T {
	return m.GetCanonicalValue(ModSub(m.toPlain(x), m.toPlain(y), m.n, LowUops))
}

func (m *SqrtRange[T]) TwoTimes(x T) T { return m.Add(x, x) }

// Multiply computes x*y via REDC with u_hi always 0: x,y <= n and
// n*n < R (n < sqrt(R)), so the raw product never spills into a high
// word.
func (m *SqrtRange[T]) Multiply(x, y T) T {
	hi, lo := MulWide(m.toPlain(x), m.toPlain(y))
	contract.Invariant(hi == 0, "SqrtRange.Multiply: product must fit in one word")
	return m.GetCanonicalValue(m.redcSqrt(hi, lo))
}

func (m *SqrtRange[T]) Square(x T) T { return m.Multiply(x, x) }

func (m *SqrtRange[T]) Negate(x T) T {
	p := m.toPlain(x)
	if p == 0 {
		return m.n
	}
	return m.n - p
}

// redcSqrt is the general finalized REDC, specialized only by the fact
// that callers here always pass u_hi == 0.
func (m *SqrtRange[T]) redcSqrt(uHi, uLo T) T {
	return redc(uHi, uLo, m.n, m.invN)
}

var _ Variant[uint64] = (*SqrtRange[uint64])(nil)
