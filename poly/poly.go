// Package poly implements sparse multivariate polynomials as
// canonically ordered term lists, with evaluation, calculus,
// homogenization and the Bombieri-Weyl inner product used to measure
// polynomial systems in numerical algebraic geometry.
package poly

import (
	"errors"
	"fmt"
	"iter"
	"sort"
	"strconv"
	"strings"
)

// Poly is a sparse multivariate polynomial: parallel slices of
// exponent vectors and coefficients, one entry per term, kept sorted
// descending by total degree with lexicographic tie-breaking. A Poly
// is immutable after construction; every operation returns a fresh
// value, so a Poly is safe to share across goroutines.
type Poly[T any] struct {
	r           Ring[T]
	exps        [][]int
	coeffs      []T
	nvars       int
	homogenized bool
}

var (
	ErrTermMismatch      = errors.New("exponent and coefficient counts differ")
	ErrDimensionMismatch = errors.New("exponent vectors differ in length")
	ErrPointSize         = errors.New("evaluation point has wrong number of variables")
)

/*
New builds a polynomial over the given ring from parallel exponent and
coefficient slices. Terms are reordered into the canonical order
(descending total degree, ties broken by descending lexicographic
comparison of the exponent vector); the reorder is stable, so exact
duplicate exponent vectors keep their relative input order. Duplicates
are not merged here.

The input slices are copied, never aliased.
*/
func New[T any](r Ring[T], exponents [][]int, coefficients []T, homogenized bool) (*Poly[T], error) {
	if len(exponents) != len(coefficients) {
		return nil, ErrTermMismatch
	}

	nvars := 0
	if len(exponents) > 0 {
		nvars = len(exponents[0])
	}

	exps := make([][]int, len(exponents))
	for i, e := range exponents {
		if len(e) != nvars {
			return nil, ErrDimensionMismatch
		}

		exps[i] = append([]int(nil), e...)
	}

	coeffs := append([]T(nil), coefficients...)

	return canonicalize(r, exps, coeffs, nvars, homogenized), nil
}

// canonicalize sorts the terms into canonical order and wraps them.
// It takes ownership of exps and coeffs; both must already be
// structurally valid.
func canonicalize[T any](r Ring[T], exps [][]int, coeffs []T, nvars int, homogenized bool) *Poly[T] {
	perm := make([]int, len(exps))
	for i := range perm {
		perm[i] = i
	}

	sort.SliceStable(perm, func(i, j int) bool {
		return compareDegLex(exps[perm[i]], exps[perm[j]]) > 0
	})

	sortedExps := make([][]int, len(exps))
	sortedCoeffs := make([]T, len(coeffs))
	for i, pi := range perm {
		sortedExps[i] = exps[pi]
		sortedCoeffs[i] = coeffs[pi]
	}

	return &Poly[T]{
		r:           r,
		exps:        sortedExps,
		coeffs:      sortedCoeffs,
		nvars:       nvars,
		homogenized: homogenized,
	}
}

// compareDegLex compares exponent vectors by total degree, ties broken
// entrywise left to right. A positive result means a sorts before b
// under the descending canonical order.
func compareDegLex(a, b []int) int {
	sa, sb := degree(a), degree(b)
	if sa != sb {
		return sa - sb
	}

	for i := range a {
		if a[i] != b[i] {
			return a[i] - b[i]
		}
	}

	return 0
}

func degree(exps []int) int {
	s := 0
	for _, k := range exps {
		s += k
	}

	return s
}

func equalExps(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Ring returns the coefficient ring the polynomial was built over.
func (p *Poly[T]) Ring() Ring[T] {
	return p.r
}

// Exponents returns a copy of the canonical exponent matrix.
func (p *Poly[T]) Exponents() [][]int {
	out := make([][]int, len(p.exps))
	for i, e := range p.exps {
		out[i] = append([]int(nil), e...)
	}

	return out
}

// Coefficients returns a copy of the coefficients in canonical order.
func (p *Poly[T]) Coefficients() []T {
	return append([]T(nil), p.coeffs...)
}

// Homogenized reports whether Homogenize injected a slack variable.
// The flag is metadata carried through differentiation and
// substitution as-is; it is never re-derived from the exponents.
func (p *Poly[T]) Homogenized() bool {
	return p.homogenized
}

func (p *Poly[T]) NTerms() int {
	return len(p.coeffs)
}

// NVariables is the dimension of every exponent vector. It is zero
// for a polynomial with no terms.
func (p *Poly[T]) NVariables() int {
	return p.nvars
}

// Degree is the total degree of the canonically first (hence highest
// degree) term, or zero for a polynomial with no terms.
func (p *Poly[T]) Degree() int {
	if len(p.exps) == 0 {
		return 0
	}

	return degree(p.exps[0])
}

/*
Equal reports structural equality: same canonical exponent matrix and
coefficient sequence, elementwise, using the ring's Equal. Two
representations of the same polynomial with different internal term
splits are not equal unless both are already merged.
*/
func (p *Poly[T]) Equal(q *Poly[T]) bool {
	if p.nvars != q.nvars || len(p.coeffs) != len(q.coeffs) {
		return false
	}

	for i := range p.coeffs {
		if !equalExps(p.exps[i], q.exps[i]) {
			return false
		}

		if !p.r.Equal(p.coeffs[i], q.coeffs[i]) {
			return false
		}
	}

	return true
}

// Terms iterates (coefficient, exponent vector) pairs in canonical
// order. The yielded exponent slice is a view into the polynomial and
// must not be mutated. Re-iterating yields the same sequence.
func (p *Poly[T]) Terms() iter.Seq2[T, []int] {
	return func(yield func(T, []int) bool) {
		for i, c := range p.coeffs {
			if !yield(c, p.exps[i]) {
				return
			}
		}
	}
}

// Convert maps a polynomial into another coefficient ring through the
// given conversion function, preserving term order and the
// homogenized flag.
func Convert[T, U any](p *Poly[T], r Ring[U], conv func(T) U) *Poly[U] {
	exps := p.Exponents()
	coeffs := make([]U, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = conv(c)
	}

	return canonicalize(r, exps, coeffs, p.nvars, p.homogenized)
}

// Expr is an external polynomial representation: a bag of named terms
// exposing a coefficient and a per-variable degree. FromExpr extracts
// a Poly from it; parsing or printing such representations is the
// caller's concern.
type Expr[T any] interface {
	Terms() []ExprTerm[T]
}

type ExprTerm[T any] interface {
	Coefficient() T
	Degree(variable string) int
}

// FromExpr builds a polynomial from an external representation for a
// caller-supplied variable ordering. Terms landing on the same
// exponent vector are merged by coefficient summation.
func FromExpr[T any](r Ring[T], e Expr[T], variables []string) *Poly[T] {
	terms := e.Terms()

	exps := make([][]int, 0, len(terms))
	coeffs := make([]T, 0, len(terms))
	seen := make(map[string]int, len(terms))

	for _, t := range terms {
		vec := make([]int, len(variables))
		for i, v := range variables {
			vec[i] = t.Degree(v)
		}

		key := expKey(vec)
		if i, ok := seen[key]; ok {
			coeffs[i] = r.Add(coeffs[i], t.Coefficient())
			continue
		}

		seen[key] = len(exps)
		exps = append(exps, vec)
		coeffs = append(coeffs, t.Coefficient())
	}

	return canonicalize(r, exps, coeffs, len(variables), false)
}

// expKey encodes an exponent vector as a map key.
func expKey(e []int) string {
	bldr := strings.Builder{}
	for _, k := range e {
		bldr.WriteString(strconv.Itoa(k))
		bldr.WriteByte(',')
	}

	return bldr.String()
}

func (p *Poly[T]) String() string {
	names := make([]string, p.nvars)
	for i := range names {
		names[i] = "x" + strconv.Itoa(i+1)
	}

	return p.Format(names)
}

// Format renders the polynomial in canonical term order with the
// given variable names, one name per variable.
func (p *Poly[T]) Format(names []string) string {
	if len(p.coeffs) == 0 {
		return "0"
	}

	bldr := strings.Builder{}

	for i, c := range p.coeffs {
		if i > 0 {
			bldr.WriteString(" + ")
		}

		fmt.Fprintf(&bldr, "%v", c)

		for v, k := range p.exps[i] {
			if k == 0 {
				continue
			}

			bldr.WriteString("*")
			bldr.WriteString(names[v])

			if k > 1 {
				bldr.WriteString("^")
				bldr.WriteString(strconv.Itoa(k))
			}
		}
	}

	return bldr.String()
}
