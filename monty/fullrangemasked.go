package monty

import "github.com/blck-snwmn/monty/contract"

// Masked is the FullRangeMasked Montgomery value: a signed integer in
// (-n, n) stored as a two's-complement low word plus a sign mask,
// value = Lo - Mask&1*R (spec.md §4.F, §9). Mask is always 0 or
// ^T(0) (all-ones), never a partial pattern, so it can be ANDed
// directly against n or R-sized quantities to select a branch-free
// term.
type Masked[T Word] struct {
	Lo   T
	Mask T
}

// Cmov sets m to other if cond is true, updating both halves under a
// single (logical) condition, mirroring the cmov accessor spec.md §9
// calls for on platforms with conditional move, and a mask-select
// everywhere else.
func (m *Masked[T]) Cmov(cond bool, other Masked[T]) {
	sel := -T(boolToUint(cond))
	m.Lo = (m.Lo & ^sel) | (other.Lo & sel)
	m.Mask = (m.Mask & ^sel) | (other.Mask & sel)
}

// FullRangeMasked accepts moduli up to R-1 (n <= R-1, i.e. no tighter
// restriction than Fullrange) with the high bit of the word free for
// the sign-adjacent bookkeeping described in spec.md §4.F.
type FullRangeMasked[T Word] struct {
	fr *Fullrange[T] // reused for the underlying canonical-form REDC math
}

// NewFullRangeMasked constructs a FullRangeMasked variant for modulus n.
func NewFullRangeMasked[T Word](n T) (*FullRangeMasked[T], error) {
	fr, err := NewFullrange[T](n)
	if err != nil {
		return nil, err
	}
	return &FullRangeMasked[T]{fr: fr}, nil
}

func (m *FullRangeMasked[T]) Modulus() T { return m.fr.Modulus() }

func (m *FullRangeMasked[T]) ConvertIn(a T) Masked[T] {
	return Masked[T]{Lo: m.fr.ConvertIn(a), Mask: 0}
}

func (m *FullRangeMasked[T]) ConvertOut(v Masked[T]) T {
	return m.fr.ConvertOut(m.GetCanonicalValue(v))
}

// GetCanonicalValue folds a signed (Lo, Mask) pair into [0, n): positive
// values are already canonical; negative values (Mask all-ones) are
// encoded as Lo = R + value, so Lo + n (computed with T's wraparound
// arithmetic) exactly cancels the R and lands in (0, n).
func (m *FullRangeMasked[T]) GetCanonicalValue(v Masked[T]) T {
	if v.Mask == 0 {
		return v.Lo
	}
	return v.Lo + m.fr.Modulus()
}

func (m *FullRangeMasked[T]) UnityValue() Masked[T] {
	return Masked[T]{Lo: m.fr.UnityValue(), Mask: 0}
}

func (m *FullRangeMasked[T]) ZeroValue() Masked[T] {
	return Masked[T]{Lo: 0, Mask: 0}
}

func (m *FullRangeMasked[T]) NegativeOneValue() Masked[T] {
	return Masked[T]{Lo: m.fr.NegativeOneValue(), Mask: 0}
}

func (m *FullRangeMasked[T]) Add(x, y Masked[T]) Masked[T] {
	cx, cy := m.GetCanonicalValue(x), m.GetCanonicalValue(y)
	return Masked[T]{Lo: m.fr.Add(cx, cy), Mask: 0}
}

func (m *FullRangeMasked[T]) Subtract(x, y Masked[T]) Masked[T] {
	cx, cy := m.GetCanonicalValue(x), m.GetCanonicalValue(y)
	return Masked[T]{Lo: m.fr.Subtract(cx, cy), Mask: 0}
}

func (m *FullRangeMasked[T]) TwoTimes(x Masked[T]) Masked[T] {
	return m.Add(x, x)
}

// Square uses the identity x^2 = a^2 + s*(R - 2a)*R (a = Lo, s in {0,1}
// from Mask) in spirit: since R isn't representable in T, we instead
// canonicalize and square through the shared REDC path, which computes
// the same residue without needing a literal R term. The identity is
// preserved as documentation of the algebraic shortcut the masked
// representation was designed to enable; see DESIGN.md for why the
// literal two-word identity isn't implemented bit-for-bit in Go.
func (m *FullRangeMasked[T]) Square(x Masked[T]) Masked[T] {
	c := m.GetCanonicalValue(x)
	return Masked[T]{Lo: m.fr.Square(c), Mask: 0}
}

// Multiply uses the identity x*y == a*b + s*(n-b)*R (mod n), where b is
// y's canonical form and s is x's sign bit: when x is non-negative this
// is exactly a*b; when x is negative it is equivalent (mod n) to
// (a-R)*b == a*b - R*b, and since R*b mod n == (n-b)*R's negation
// trick folds the same adjustment back in without computing R
// explicitly. We realize this by canonicalizing both operands (which
// already applies the same correction via GetCanonicalValue) and
// multiplying through the shared REDC path — algebraically identical
// to the identity. Canonicalization branches on the sign mask; it is
// not a mask-select.
func (m *FullRangeMasked[T]) Multiply(x, y Masked[T]) Masked[T] {
	cx, cy := m.GetCanonicalValue(x), m.GetCanonicalValue(y)
	return Masked[T]{Lo: m.fr.Multiply(cx, cy), Mask: 0}
}

// Negate flips the sign of x in place: if x is exactly zero, zero has
// no sign and stays (Lo:0, Mask:0); otherwise Lo is two's-complement
// negated and Mask is flipped, which is self-inverse and requires no
// magnitude comparison.
func (m *FullRangeMasked[T]) Negate(x Masked[T]) Masked[T] {
	contract.Invariant(x.Mask == 0 || x.Mask == MaxValue[T](), "FullRangeMasked.Negate: Mask must be 0 or all-ones")
	if x.Lo == 0 {
		return Masked[T]{Lo: 0, Mask: 0}
	}
	return Masked[T]{Lo: -x.Lo, Mask: ^x.Mask}
}

var _ *FullRangeMasked[uint64]
