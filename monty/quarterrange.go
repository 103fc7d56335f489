package monty

import "github.com/blck-snwmn/monty/contract"

// Quarterrange restricts the modulus to n < R/4. In exchange, its
// operations accept and return Montgomery values from the wider range
// [0, 2n) instead of folding every intermediate back to [0, n): spec.md
// §4.E's "If n < R/4, the input may come from the wider set [0, 2n) and
// the final residue stays within [0, 2n); no finalization branch
// needed." GetCanonicalValue folds a wide representative back to [0,n)
// when callers actually need canonical equality.
type Quarterrange[T Word] struct {
	n, invN, rModN, r2ModN T
}

// NewQuarterrange constructs a Quarterrange variant for modulus n < R/4.
func NewQuarterrange[T Word](n T) (*Quarterrange[T], error) {
	if err := validateModulus[T](n, MaxValue[T]()/4, "R/4"); err != nil {
		return nil, err
	}
	invN := InverseModR(n)
	rmn := rModN(n)
	return &Quarterrange[T]{n: n, invN: invN, rModN: rmn, r2ModN: r2ModN(n, rmn, invN)}, nil
}

func (m *Quarterrange[T]) Modulus() T { return m.n }

func (m *Quarterrange[T]) ConvertIn(a T) T {
	contract.Precondition(a < m.n, "Quarterrange.ConvertIn: a must be < n")
	hi, lo := MulWide(a, m.r2ModN)
	return redc(hi, lo, m.n, m.invN)
}

func (m *Quarterrange[T]) ConvertOut(v T) T {
	return redc(0, v, m.n, m.invN)
}

func (m *Quarterrange[T]) GetCanonicalValue(v T) T {
	if v >= m.n {
		return v - m.n
	}
	return v
}

func (m *Quarterrange[T]) UnityValue() T       { return m.rModN }
func (m *Quarterrange[T]) ZeroValue() T        { return 0 }
func (m *Quarterrange[T]) NegativeOneValue() T { return m.n - m.rModN }

func (m *Quarterrange[T]) Add(x, y T) T {
	// x, y may be as large as 2n-1; fold through GetCanonicalValue so
	// the underlying ModAdd's 0<=a,b<n precondition still holds.
	return ModAdd(m.GetCanonicalValue(x), m.GetCanonicalValue(y), m.n, LowUops)
}

func (m *Quarterrange[T]) Subtract(x, y T) T {
	return ModSub(m.GetCanonicalValue(x), m.GetCanonicalValue(y), m.n, LowUops)
}

func (m *Quarterrange[T]) TwoTimes(x T) T { return m.Add(x, x) }

// Multiply accepts x, y from the wide [0, 2n) range and returns a
// result in [0, 2n) using the simpler REDC finalize-add path
// (redcWideRange), skipping the conditional-subtract branch
// Fullrange needs.
func (m *Quarterrange[T]) Multiply(x, y T) T {
	contract.Precondition(x < 2*m.n && y < 2*m.n, "Quarterrange.Multiply: x,y must be < 2n")
	hi, lo := MulWide(x, y)
	return redcWideRange(hi, lo, m.n, m.invN)
}

func (m *Quarterrange[T]) Square(x T) T { return m.Multiply(x, x) }

func (m *Quarterrange[T]) Negate(x T) T {
	c := m.GetCanonicalValue(x)
	if c == 0 {
		return 0
	}
	return m.n - c
}

var _ Variant[uint64] = (*Quarterrange[uint64])(nil)
