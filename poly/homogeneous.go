package poly

// IsHomogeneous reports whether every term has the same total degree.
// A polynomial with no terms is vacuously homogeneous.
func (p *Poly[T]) IsHomogeneous() bool {
	if len(p.exps) == 0 {
		return true
	}

	d := degree(p.exps[0])
	for _, e := range p.exps[1:] {
		if degree(e) != d {
			return false
		}
	}

	return true
}

/*
Homogenize injects a slack variable as a new leading coordinate so
that every term reaches the maximum total degree D: term t gets
exponent D - deg(t) on the slack variable. Returns p unchanged when
the homogenized flag is already set.
*/
func (p *Poly[T]) Homogenize() *Poly[T] {
	if p.homogenized {
		return p
	}

	maxDeg := p.Degree()

	exps := make([][]int, len(p.exps))
	for i, e := range p.exps {
		v := make([]int, 0, len(e)+1)
		v = append(v, maxDeg-degree(e))
		v = append(v, e...)
		exps[i] = v
	}

	return canonicalize(p.r, exps, append([]T(nil), p.coeffs...), p.nvars+1, true)
}

/*
Dehomogenize drops the leading exponent coordinate from every term and
clears the homogenized flag. This is pure structural truncation: it
does not check that the input was homogenized or that the dropped
coordinate was consistent, and it does not merge terms that collide
after truncation. Callers are responsible for feeding it a polynomial
that Homogenize produced.
*/
func (p *Poly[T]) Dehomogenize() *Poly[T] {
	exps := make([][]int, len(p.exps))
	for i, e := range p.exps {
		exps[i] = append([]int(nil), e[1:]...)
	}

	nvars := p.nvars - 1
	if nvars < 0 {
		nvars = 0
	}

	return canonicalize(p.r, exps, append([]T(nil), p.coeffs...), nvars, false)
}
