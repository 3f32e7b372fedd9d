// Package mpoly provides the polynomial-system aggregate over the
// core in [github.com/numgrid/go-mpoly/poly]: an ordered collection
// of polynomials sharing a variable count, with system-level
// evaluation, Jacobians, homogenization and Bombieri-Weyl measures.
package mpoly

import (
	"errors"
	"strings"

	"github.com/numgrid/go-mpoly/poly"
)

// System is an ordered collection of polynomials over a shared
// variable set. All term-level algebra is delegated per polynomial to
// the poly package; a System itself is immutable.
type System[T any] struct {
	polys []*poly.Poly[T]
	nvars int
}

var ErrEmptySystem = errors.New("a system needs at least one polynomial")
var ErrVariableCountMismatch = errors.New("polynomials in a system must share a variable count")

func NewSystem[T any](polys ...*poly.Poly[T]) (*System[T], error) {
	if len(polys) == 0 {
		return nil, ErrEmptySystem
	}

	nvars := polys[0].NVariables()
	for _, p := range polys[1:] {
		if p.NVariables() != nvars {
			return nil, ErrVariableCountMismatch
		}
	}

	return &System[T]{
		polys: append([]*poly.Poly[T](nil), polys...),
		nvars: nvars,
	}, nil
}

func (s *System[T]) NPolynomials() int {
	return len(s.polys)
}

func (s *System[T]) NVariables() int {
	return s.nvars
}

// Polynomials returns the system's polynomials in order. The
// polynomials themselves are immutable, so sharing them is safe.
func (s *System[T]) Polynomials() []*poly.Poly[T] {
	return append([]*poly.Poly[T](nil), s.polys...)
}

// Degrees returns the total degree of each polynomial, in order.
func (s *System[T]) Degrees() []int {
	degs := make([]int, len(s.polys))
	for i, p := range s.polys {
		degs[i] = p.Degree()
	}

	return degs
}

// Evaluate computes every polynomial at the point, in order.
func (s *System[T]) Evaluate(point []T) ([]T, error) {
	out := make([]T, len(s.polys))
	for i, p := range s.polys {
		v, err := p.Evaluate(point)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

// Jacobian evaluates the matrix of partial derivatives at the point:
// row i holds the gradient of the i-th polynomial.
func (s *System[T]) Jacobian(point []T) ([][]T, error) {
	jac := make([][]T, len(s.polys))
	for i, p := range s.polys {
		row := make([]T, s.nvars)
		for j, d := range p.Gradient() {
			v, err := d.Evaluate(point)
			if err != nil {
				return nil, err
			}

			row[j] = v
		}

		jac[i] = row
	}

	return jac, nil
}

// IsHomogeneous reports whether every polynomial in the system is
// homogeneous.
func (s *System[T]) IsHomogeneous() bool {
	for _, p := range s.polys {
		if !p.IsHomogeneous() {
			return false
		}
	}

	return true
}

// Homogenize homogenizes every polynomial, adding one shared slack
// variable. Polynomials already carrying the homogenized flag are
// returned as-is by the core, so mixing flagged and unflagged
// polynomials is the caller's responsibility.
func (s *System[T]) Homogenize() *System[T] {
	polys := make([]*poly.Poly[T], len(s.polys))
	for i, p := range s.polys {
		polys[i] = p.Homogenize()
	}

	return &System[T]{polys: polys, nvars: polys[0].NVariables()}
}

// Dehomogenize drops the slack coordinate from every polynomial.
func (s *System[T]) Dehomogenize() *System[T] {
	polys := make([]*poly.Poly[T], len(s.polys))
	for i, p := range s.polys {
		polys[i] = p.Dehomogenize()
	}

	return &System[T]{polys: polys, nvars: polys[0].NVariables()}
}

// WeylNormSquared is the sum of the Bombieri-Weyl squared norms of
// the system's polynomials.
func WeylNormSquared[T any](r poly.StarRing[T], s *System[T]) T {
	acc := r.Zero()
	for _, p := range s.polys {
		acc = r.Add(acc, poly.WeylDot(r, p, p))
	}

	return acc
}

// WeylNorm is the Bombieri-Weyl norm of the whole system,
// sqrt(sum_i <f_i, f_i>).
func WeylNorm[T any](r poly.StarRing[T], s *System[T]) T {
	return r.Sqrt(WeylNormSquared(r, s))
}

func (s *System[T]) String() string {
	bldr := strings.Builder{}
	for i, p := range s.polys {
		if i > 0 {
			bldr.WriteString("\n")
		}

		bldr.WriteString(p.String())
	}

	return bldr.String()
}
