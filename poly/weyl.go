package poly

/*
Multinomial computes (sum k_i)! / prod(k_i!) for an exponent vector.
The product is built incrementally from binomial coefficients,
binom(k_1+...+k_i, k_i), so no intermediate factorial is ever formed.
*/
func Multinomial(exponents []int) uint64 {
	s := 0
	out := uint64(1)
	for _, k := range exponents {
		s += k
		out *= binomial(s, k)
	}

	return out
}

// binomial computes n choose k by the multiplicative formula. Every
// intermediate quotient is exact.
func binomial(n, k int) uint64 {
	if k > n-k {
		k = n - k
	}

	c := uint64(1)
	for i := 1; i <= k; i++ {
		c = c * uint64(n-k+i) / uint64(i)
	}

	return c
}

/*
WeylDot computes the Bombieri-Weyl inner product of f and g: the sum
over matching exponent vectors of c_f * conj(c_g) / Multinomial(e).
Both inputs must be homogeneous with the same variable count; this is
a caller contract and is not validated.

When f and g are the same instance the cross-term scan is skipped and
each term contributes |c|^2 / Multinomial(e) directly. Otherwise every
term of f is matched against the first structurally equal exponent
vector in g; unmatched terms contribute nothing.
*/
func WeylDot[T any](r StarRing[T], f, g *Poly[T]) T {
	acc := r.Zero()

	if f == g {
		for i, c := range f.coeffs {
			w := r.FromInt(int64(Multinomial(f.exps[i])))
			acc = r.Add(acc, r.Div(r.Mul(c, r.Conj(c)), w))
		}

		return acc
	}

	for i, c := range f.coeffs {
		w := r.FromInt(int64(Multinomial(f.exps[i])))

		for j, d := range g.coeffs {
			if !equalExps(f.exps[i], g.exps[j]) {
				continue
			}

			acc = r.Add(acc, r.Div(r.Mul(c, r.Conj(d)), w))

			break
		}
	}

	return acc
}

// WeylNorm is sqrt(WeylDot(f, f)), taken through the same-instance
// shortcut.
func WeylNorm[T any](r StarRing[T], f *Poly[T]) T {
	return r.Sqrt(WeylDot(r, f, f))
}
