package monty

import "github.com/blck-snwmn/monty/contract"

// Fullrange is the least-restricted Monty variant: any odd n with
// 1 < n < R. Montgomery values live in [0, n) both as input and output.
// Because it makes no assumption past "n < R", its multiply needs a
// conditional subtract after REDC that the tighter variants can elide.
type Fullrange[T Word] struct {
	n, invN, rModN, r2ModN T
}

// NewFullrange constructs a Fullrange variant for modulus n.
func NewFullrange[T Word](n T) (*Fullrange[T], error) {
	if err := validateModulus[T](n, 0, "R"); err != nil {
		return nil, err
	}
	invN := InverseModR(n)
	rmn := rModN(n)
	return &Fullrange[T]{n: n, invN: invN, rModN: rmn, r2ModN: r2ModN(n, rmn, invN)}, nil
}

func (m *Fullrange[T]) Modulus() T { return m.n }

func (m *Fullrange[T]) ConvertIn(a T) T {
	contract.Precondition(a < m.n, "Fullrange.ConvertIn: a must be < n")
	hi, lo := MulWide(a, m.r2ModN)
	return redc(hi, lo, m.n, m.invN)
}

func (m *Fullrange[T]) ConvertOut(v T) T {
	return redc(0, v, m.n, m.invN)
}

func (m *Fullrange[T]) GetCanonicalValue(v T) T { return v }

func (m *Fullrange[T]) UnityValue() T       { return m.rModN }
func (m *Fullrange[T]) ZeroValue() T        { return 0 }
func (m *Fullrange[T]) NegativeOneValue() T { return m.n - m.rModN }

func (m *Fullrange[T]) Add(x, y T) T      { return ModAdd(x, y, m.n, LowUops) }
func (m *Fullrange[T]) Subtract(x, y T) T { return ModSub(x, y, m.n, LowUops) }

func (m *Fullrange[T]) TwoTimes(x T) T {
	// Fullrange permits n up to R-1, so the restricted doubling
	// primitive (which requires n < R/2) cannot be used directly;
	// two_times is realized as add(x, x) instead.
	return m.Add(x, x)
}

func (m *Fullrange[T]) Multiply(x, y T) T {
	hi, lo := MulWide(x, y)
	result := redc(hi, lo, m.n, m.invN)
	return result
}

func (m *Fullrange[T]) Square(x T) T { return m.Multiply(x, x) }

func (m *Fullrange[T]) Negate(x T) T {
	if x == 0 {
		return 0
	}
	return m.n - x
}

func (m *Fullrange[T]) Fmadd(x, y, z T) T { return m.Add(m.Multiply(x, y), z) }
func (m *Fullrange[T]) Fmsub(x, y, z T) T { return m.Subtract(m.Multiply(x, y), z) }
func (m *Fullrange[T]) Famul(x, y, z T) T { return m.Multiply(m.Add(x, y), z) }

var (
	_ Variant[uint64] = (*Fullrange[uint64])(nil)
	_ Fused[uint64]   = (*Fullrange[uint64])(nil)
)
