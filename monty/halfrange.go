package monty

import "github.com/blck-snwmn/monty/contract"

// Halfrange restricts the modulus to n < R/2. That restriction lets
// Montgomery multiply use the negative-inverse REDC formulation
// (redcHalfrange), whose finalization is a plain magnitude
// compare-and-subtract rather than Fullrange's underflow-detecting
// conditional subtract (spec.md §4.E, §4.F), and lets two_times use the
// restricted doubling primitive directly.
type Halfrange[T Word] struct {
	n, negInvN, rModN, r2ModN T
}

// NewHalfrange constructs a Halfrange variant for modulus n < R/2.
func NewHalfrange[T Word](n T) (*Halfrange[T], error) {
	if err := validateModulus[T](n, MaxValue[T]()/2, "R/2"); err != nil {
		return nil, err
	}
	invN := InverseModR(n)
	rmn := rModN(n)
	r2 := r2ModN(n, rmn, invN)
	return &Halfrange[T]{n: n, negInvN: NegativeInverseModR(n), rModN: rmn, r2ModN: r2}, nil
}

func (m *Halfrange[T]) Modulus() T { return m.n }

func (m *Halfrange[T]) ConvertIn(a T) T {
	contract.Precondition(a < m.n, "Halfrange.ConvertIn: a must be < n")
	hi, lo := MulWide(a, m.r2ModN)
	return redcHalfrange(hi, lo, m.n, m.negInvN)
}

func (m *Halfrange[T]) ConvertOut(v T) T {
	return redcHalfrange(0, v, m.n, m.negInvN)
}

func (m *Halfrange[T]) GetCanonicalValue(v T) T { return v }

func (m *Halfrange[T]) UnityValue() T       { return m.rModN }
func (m *Halfrange[T]) ZeroValue() T        { return 0 }
func (m *Halfrange[T]) NegativeOneValue() T { return m.n - m.rModN }

func (m *Halfrange[T]) Add(x, y T) T      { return ModAdd(x, y, m.n, LowLatency) }
func (m *Halfrange[T]) Subtract(x, y T) T { return ModSub(x, y, m.n, LowLatency) }
func (m *Halfrange[T]) TwoTimes(x T) T    { return TwoTimesRestricted(x, m.n, LowLatency) }

func (m *Halfrange[T]) Multiply(x, y T) T {
	hi, lo := MulWide(x, y)
	return redcHalfrange(hi, lo, m.n, m.negInvN)
}

func (m *Halfrange[T]) Square(x T) T { return m.Multiply(x, x) }

func (m *Halfrange[T]) Negate(x T) T {
	if x == 0 {
		return 0
	}
	return m.n - x
}

func (m *Halfrange[T]) Fmadd(x, y, z T) T { return m.Add(m.Multiply(x, y), z) }
func (m *Halfrange[T]) Fmsub(x, y, z T) T { return m.Subtract(m.Multiply(x, y), z) }
func (m *Halfrange[T]) Famul(x, y, z T) T { return m.Multiply(m.Add(x, y), z) }

var (
	_ Variant[uint64] = (*Halfrange[uint64])(nil)
	_ Fused[uint64]   = (*Halfrange[uint64])(nil)
)
