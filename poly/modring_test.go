package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const largePrime = 9191248642791733759

func TestNewMod(t *testing.T) {
	a := assert.New(t)

	t.Run("rejectsComposite", func(t *testing.T) {
		_, err := NewMod(156)
		a.Error(err)
	})

	t.Run("rejectsTooLarge", func(t *testing.T) {
		_, err := NewMod(1<<63 + 9)
		a.Error(err)
	})

	t.Run("generator", func(t *testing.T) {
		m, err := NewMod(157)
		a.NoError(err)

		g := m.Generator()
		a.NotZero(g)
		a.Equal(uint64(1), m.Pow(g, m.Modulus()-1))
		a.NotEmpty(m.Factors())
	})
}

func TestModArithmetic(t *testing.T) {
	a := assert.New(t)

	m, err := NewMod(157)
	a.NoError(err)

	a.Equal(uint64(0), m.Add(156, 1))
	a.Equal(uint64(155), m.Sub(3, 5))
	a.Equal(uint64(154), m.Neg(3))
	a.Equal(uint64(154), m.FromInt(-3))
	a.True(m.Equal(158, 1))

	t.Run("inverse", func(t *testing.T) {
		a.Equal(uint64(1), m.Mul(m.Inverse(5), 5))
		a.Panics(func() { m.Inverse(0) })
	})

	t.Run("wideMul", func(t *testing.T) {
		big, err := NewMod(largePrime)
		a.NoError(err)

		q := big.Modulus()
		// (q-1)^2 = 1 (mod q); the product needs 126 bits.
		a.Equal(uint64(1), big.Mul(q-1, q-1))
	})
}

func TestPolyOverMod(t *testing.T) {
	a := assert.New(t)

	m, err := NewMod(157)
	a.NoError(err)

	// p = x1*x2 + 3 over F_157
	p, err := New[uint64](m, [][]int{{1, 1}, {0, 0}}, []uint64{1, 3}, false)
	a.NoError(err)

	v, err := p.Evaluate([]uint64{5, 6})
	a.NoError(err)
	a.Equal(uint64(33), v)

	// derivative wraps through FromInt and Mul in the field.
	d := p.Differentiate(0)
	v, err = d.Evaluate([]uint64{5, 6})
	a.NoError(err)
	a.Equal(uint64(6), v)
}
