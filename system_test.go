package mpoly

import (
	"testing"

	"github.com/numgrid/go-mpoly/poly"
	"github.com/stretchr/testify/assert"
)

func mustPoly(t *testing.T, exps [][]int, coeffs []float64) *poly.Poly[float64] {
	t.Helper()

	p, err := poly.New(poly.Real[float64]{}, exps, coeffs, false)
	if err != nil {
		t.Fatal(err)
	}

	return p
}

func TestNewSystem(t *testing.T) {
	a := assert.New(t)

	t.Run("empty", func(t *testing.T) {
		_, err := NewSystem[float64]()
		a.ErrorIs(err, ErrEmptySystem)
	})

	t.Run("variableCountMismatch", func(t *testing.T) {
		p := mustPoly(t, [][]int{{1, 0}}, []float64{1})
		q := mustPoly(t, [][]int{{1}}, []float64{1})

		_, err := NewSystem(p, q)
		a.ErrorIs(err, ErrVariableCountMismatch)
	})

	t.Run("accessors", func(t *testing.T) {
		p := mustPoly(t, [][]int{{2, 0}, {0, 1}}, []float64{1, 1})
		q := mustPoly(t, [][]int{{1, 1}}, []float64{1})

		s, err := NewSystem(p, q)
		a.NoError(err)

		a.Equal(2, s.NPolynomials())
		a.Equal(2, s.NVariables())
		a.Equal([]int{2, 2}, s.Degrees())
		a.Len(s.Polynomials(), 2)
	})
}

func TestSystemEvaluate(t *testing.T) {
	a := assert.New(t)

	// F = (x^2 + y, x*y)
	s, err := NewSystem(
		mustPoly(t, [][]int{{2, 0}, {0, 1}}, []float64{1, 1}),
		mustPoly(t, [][]int{{1, 1}}, []float64{1}),
	)
	a.NoError(err)

	vals, err := s.Evaluate([]float64{2, 3})
	a.NoError(err)
	a.Equal([]float64{7, 6}, vals)

	t.Run("jacobian", func(t *testing.T) {
		jac, err := s.Jacobian([]float64{2, 3})
		a.NoError(err)

		// J = [[2x, 1], [y, x]]
		a.Equal([][]float64{{4, 1}, {3, 2}}, jac)
	})

	t.Run("wrongPointSize", func(t *testing.T) {
		_, err := s.Evaluate([]float64{1})
		a.ErrorIs(err, poly.ErrPointSize)

		_, err = s.Jacobian([]float64{1})
		a.ErrorIs(err, poly.ErrPointSize)
	})
}

func TestSystemHomogenize(t *testing.T) {
	a := assert.New(t)

	s, err := NewSystem(
		mustPoly(t, [][]int{{2, 0}, {0, 1}}, []float64{1, 1}),
		mustPoly(t, [][]int{{1, 0}, {0, 0}}, []float64{1, -3}),
	)
	a.NoError(err)
	a.False(s.IsHomogeneous())

	h := s.Homogenize()
	a.True(h.IsHomogeneous())
	a.Equal(3, h.NVariables())

	back := h.Dehomogenize()
	a.Equal(2, back.NVariables())
	for i, p := range back.Polynomials() {
		a.True(p.Equal(s.Polynomials()[i]))
	}
}

func TestSystemWeylNorm(t *testing.T) {
	a := assert.New(t)
	r := poly.Real[float64]{}

	// ||(3*x^2, 4*x^2)||^2 = 9 + 16.
	s, err := NewSystem(
		mustPoly(t, [][]int{{2}}, []float64{3}),
		mustPoly(t, [][]int{{2}}, []float64{4}),
	)
	a.NoError(err)

	a.Equal(25.0, WeylNormSquared[float64](r, s))
	a.Equal(5.0, WeylNorm[float64](r, s))
}

func TestSystemString(t *testing.T) {
	a := assert.New(t)

	s, err := NewSystem(
		mustPoly(t, [][]int{{2, 0}}, []float64{1}),
		mustPoly(t, [][]int{{0, 1}}, []float64{2}),
	)
	a.NoError(err)

	a.Equal("1*x1^2\n2*x2", s.String())
}
