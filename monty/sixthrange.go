package monty

import "github.com/blck-snwmn/monty/contract"

// Sixthrange is Quarterrange's tighter sibling: n < R/6 instead of
// n < R/4. The extra headroom is what the 2^k-ary two-pow engine
// (component G) and multi-step exponentiation chains lean on when they
// need to accumulate a few wide-range products before re-canonicalizing;
// the per-operation algorithm is identical to Quarterrange's.
type Sixthrange[T Word] struct {
	n, invN, rModN, r2ModN T
}

// NewSixthrange constructs a Sixthrange variant for modulus n < R/6.
func NewSixthrange[T Word](n T) (*Sixthrange[T], error) {
	bound := MaxValue[T]() / 6
	if err := validateModulus[T](n, bound, "R/6"); err != nil {
		return nil, err
	}
	invN := InverseModR(n)
	rmn := rModN(n)
	return &Sixthrange[T]{n: n, invN: invN, rModN: rmn, r2ModN: r2ModN(n, rmn, invN)}, nil
}

func (m *Sixthrange[T]) Modulus() T { return m.n }

func (m *Sixthrange[T]) ConvertIn(a T) T {
	contract.Precondition(a < m.n, "Sixthrange.ConvertIn: a must be < n")
	hi, lo := MulWide(a, m.r2ModN)
	return redc(hi, lo, m.n, m.invN)
}

func (m *Sixthrange[T]) ConvertOut(v T) T {
	return redc(0, v, m.n, m.invN)
}

func (m *Sixthrange[T]) GetCanonicalValue(v T) T {
	if v >= m.n {
		return v - m.n
	}
	return v
}

func (m *Sixthrange[T]) UnityValue() T       { return m.rModN }
func (m *Sixthrange[T]) ZeroValue() T        { return 0 }
func (m *Sixthrange[T]) NegativeOneValue() T { return m.n - m.rModN }

func (m *Sixthrange[T]) Add(x, y T) T {
	return ModAdd(m.GetCanonicalValue(x), m.GetCanonicalValue(y), m.n, LowUops)
}

func (m *Sixthrange[T]) Subtract(x, y T) T {
	return ModSub(m.GetCanonicalValue(x), m.GetCanonicalValue(y), m.n, LowUops)
}

func (m *Sixthrange[T]) TwoTimes(x T) T { return m.Add(x, x) }

func (m *Sixthrange[T]) Multiply(x, y T) T {
	contract.Precondition(x < 2*m.n && y < 2*m.n, "Sixthrange.Multiply: x,y must be < 2n")
	hi, lo := MulWide(x, y)
	return redcWideRange(hi, lo, m.n, m.invN)
}

func (m *Sixthrange[T]) Square(x T) T { return m.Multiply(x, x) }

func (m *Sixthrange[T]) Negate(x T) T {
	c := m.GetCanonicalValue(x)
	if c == 0 {
		return 0
	}
	return m.n - c
}

var _ Variant[uint64] = (*Sixthrange[uint64])(nil)
