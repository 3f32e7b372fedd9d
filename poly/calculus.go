package poly

/*
Differentiate returns the partial derivative of p with respect to the
variable at the given zero-based index. Per term: a positive exponent
k becomes k-1 and the coefficient is multiplied by k; a zero exponent
drops the term entirely. The result is freshly canonicalized.

The homogenized flag is carried over unchanged even though the
derivative of a homogeneous polynomial is generally not homogeneous of
the same degree; keeping the flag consistent is the caller's contract.
*/
func (p *Poly[T]) Differentiate(variable int) *Poly[T] {
	exps := make([][]int, 0, len(p.exps))
	coeffs := make([]T, 0, len(p.coeffs))

	for t, e := range p.exps {
		k := e[variable]
		if k == 0 {
			continue
		}

		d := append([]int(nil), e...)
		d[variable] = k - 1

		exps = append(exps, d)
		coeffs = append(coeffs, p.r.Mul(p.coeffs[t], p.r.FromInt(int64(k))))
	}

	return canonicalize(p.r, exps, coeffs, p.nvars, p.homogenized)
}

// Gradient returns the partial derivatives of p with respect to every
// variable, in variable order.
func (p *Poly[T]) Gradient() []*Poly[T] {
	grad := make([]*Poly[T], p.nvars)
	for i := range grad {
		grad[i] = p.Differentiate(i)
	}

	return grad
}

/*
Substitute fixes the variable at the given zero-based index to a ring
value. Per term the coefficient is multiplied by value^exponent and
the exponent entry is dropped, so the result has one fewer variable.
Terms whose reduced exponent vectors coincide are merged by summing
coefficients, keyed by a hash of the reduced vector.

The homogenized flag is carried over as-is, with the same caller
contract as Differentiate.
*/
func (p *Poly[T]) Substitute(variable int, value T) *Poly[T] {
	exps := make([][]int, 0, len(p.exps))
	coeffs := make([]T, 0, len(p.coeffs))
	seen := make(map[string]int, len(p.exps))

	for t, e := range p.exps {
		reduced := make([]int, 0, len(e)-1)
		reduced = append(reduced, e[:variable]...)
		reduced = append(reduced, e[variable+1:]...)

		c := p.r.Mul(p.coeffs[t], pow(p.r, value, uint64(e[variable])))

		key := expKey(reduced)
		if i, ok := seen[key]; ok {
			coeffs[i] = p.r.Add(coeffs[i], c)
			continue
		}

		seen[key] = len(exps)
		exps = append(exps, reduced)
		coeffs = append(coeffs, c)
	}

	nvars := p.nvars - 1
	if nvars < 0 {
		nvars = 0
	}

	return canonicalize(p.r, exps, coeffs, nvars, p.homogenized)
}
