package poly

import (
	"errors"
	"math/big"

	"github.com/tuneinsight/lattigo/v6/ring"
	"lukechampine.com/uint128"
)

// Mod is the ring of integers modulo a prime, for polynomials over a
// finite field. There is no square root, so Mod satisfies Ring but
// not StarRing; Weyl operations are not available over it.
type Mod struct {
	prime     uint64
	generator uint64
	factors   []uint64
}

var (
	errPrimeTooLarge = errors.New("supporting up to 63-bit prime")
	errNotPrime      = errors.New("modulus must be prime")
)

const maxBitUsage = 63

/*
Assumes the modulus fits in 63 bits so that addition cannot overflow.
Primality is checked; a generator of the multiplicative group is found
during construction for callers that need evaluation points spanning
the full group.
*/
func NewMod(prime uint64) (*Mod, error) {
	if prime > (1 << maxBitUsage) {
		return nil, errPrimeTooLarge
	}

	b := (&big.Int{}).SetUint64(prime)
	// Probably prime is 100% accurate for 64-bit numbers. Thus, we can use one base check.
	if !b.ProbablyPrime(1) {
		return nil, errNotPrime
	}

	g, factors, err := ring.PrimitiveRoot(prime, nil)
	if err != nil {
		return nil, err
	}

	return &Mod{
		prime:     prime,
		generator: g,
		factors:   factors,
	}, nil
}

func (m *Mod) Modulus() uint64 {
	return m.prime
}

func (m *Mod) Generator() uint64 {
	return m.generator
}

// Factors returns the prime factors of p-1 found during generator
// discovery.
func (m *Mod) Factors() []uint64 {
	return m.factors
}

func (m *Mod) Zero() uint64 { return 0 }
func (m *Mod) One() uint64  { return 1 }

func (m *Mod) FromInt(n int64) uint64 {
	v := n % int64(m.prime)
	if v < 0 {
		v += int64(m.prime)
	}

	return uint64(v)
}

func (m *Mod) Reduce(a uint64) uint64 {
	return a % m.prime
}

func (m *Mod) Add(a, b uint64) uint64 {
	tmp := a + b // can't overflow since adding two integers smaller than 2^63.
	if tmp >= m.prime {
		tmp -= m.prime
	}

	return tmp
}

func (m *Mod) Mul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}

	return uint128.From64(a).Mul64(b).Mod64(m.prime)
}

func (m *Mod) Equal(a, b uint64) bool {
	return a%m.prime == b%m.prime
}

func (m *Mod) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}

	return m.prime - m.Reduce(a)
}

func (m *Mod) Sub(a, b uint64) uint64 {
	if a < b {
		return m.prime - (b - a)
	}

	return a - b
}

// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func (m *Mod) Pow(base, exp uint64) uint64 {
	x := uint64(1)
	for exp > 0 {
		if exp%2 == 1 {
			x = m.Mul(x, base)
		}

		base = m.Mul(base, base)
		exp /= 2
	}

	return x % m.prime
}

func (m *Mod) Inverse(a uint64) uint64 {
	// Fermat's little theorem: a^(p-2) is the inverse of a (mod p).
	if m.Reduce(a) == 0 {
		panic("zero has no inverse")
	}

	return m.Pow(a, m.prime-2)
}
