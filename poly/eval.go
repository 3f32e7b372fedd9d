package poly

/*
Evaluate computes p at the given point by direct term summation:
the sum over terms of coefficient * prod point[v]^exponent[v].

The point must supply one value per variable; a wrong length is
reported as ErrPointSize. A polynomial with no terms evaluates to the
ring's additive identity for any point.
*/
func (p *Poly[T]) Evaluate(point []T) (T, error) {
	if len(p.coeffs) == 0 {
		return p.r.Zero(), nil
	}

	if len(point) != p.nvars {
		return p.r.Zero(), ErrPointSize
	}

	acc := p.r.Zero()
	for i, c := range p.coeffs {
		term := c
		for v, k := range p.exps[i] {
			if k == 0 {
				continue
			}

			term = p.r.Mul(term, pow(p.r, point[v], uint64(k)))
		}

		acc = p.r.Add(acc, term)
	}

	return acc, nil
}

// Evaluate is the package-level alias for [Poly.Evaluate].
func Evaluate[T any](p *Poly[T], point []T) (T, error) {
	return p.Evaluate(point)
}

// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func pow[T any](r Ring[T], base T, exp uint64) T {
	x := r.One()
	for exp > 0 {
		if exp%2 == 1 {
			x = r.Mul(x, base)
		}

		base = r.Mul(base, base)
		exp /= 2
	}

	return x
}
