package poly

import (
	"math"
	"math/cmplx"

	"golang.org/x/exp/constraints"
)

// Ring is the capability bound a coefficient type must satisfy for
// construction, evaluation, differentiation, substitution and the
// homogeneity operations. A Poly carries its Ring the same way a
// dense polynomial carries its coefficient field.
type Ring[T any] interface {
	Zero() T
	One() T
	// FromInt embeds a small integer into the ring. Used for the
	// k-factor in differentiation and for multinomial normalizers.
	FromInt(n int64) T

	Add(a, b T) T
	Mul(a, b T) T
	Equal(a, b T) bool
}

// StarRing extends Ring with the operations the Bombieri-Weyl form
// needs: conjugation, exact division by a normalizer, and a square
// root for the norm.
type StarRing[T any] interface {
	Ring[T]

	Conj(a T) T
	Div(a, b T) T
	Sqrt(a T) T
}

// Real is the star ring of floating-point reals. Conjugation is the
// identity.
type Real[T constraints.Float] struct{}

func (Real[T]) Zero() T           { return 0 }
func (Real[T]) One() T            { return 1 }
func (Real[T]) FromInt(n int64) T { return T(n) }
func (Real[T]) Add(a, b T) T      { return a + b }
func (Real[T]) Mul(a, b T) T      { return a * b }
func (Real[T]) Equal(a, b T) bool { return a == b }
func (Real[T]) Conj(a T) T        { return a }
func (Real[T]) Div(a, b T) T      { return a / b }
func (Real[T]) Sqrt(a T) T        { return T(math.Sqrt(float64(a))) }

// Complex is the star ring of complex128 values.
type Complex struct{}

func (Complex) Zero() complex128 { return 0 }
func (Complex) One() complex128  { return 1 }

func (Complex) FromInt(n int64) complex128     { return complex(float64(n), 0) }
func (Complex) Add(a, b complex128) complex128 { return a + b }
func (Complex) Mul(a, b complex128) complex128 { return a * b }
func (Complex) Equal(a, b complex128) bool     { return a == b }
func (Complex) Conj(a complex128) complex128   { return cmplx.Conj(a) }
func (Complex) Div(a, b complex128) complex128 { return a / b }
func (Complex) Sqrt(a complex128) complex128   { return cmplx.Sqrt(a) }

// Int is the exact ring of signed machine integers. It has no square
// root, so it satisfies Ring but not StarRing.
type Int[T constraints.Signed] struct{}

func (Int[T]) Zero() T           { return 0 }
func (Int[T]) One() T            { return 1 }
func (Int[T]) FromInt(n int64) T { return T(n) }
func (Int[T]) Add(a, b T) T      { return a + b }
func (Int[T]) Mul(a, b T) T      { return a * b }
func (Int[T]) Equal(a, b T) bool { return a == b }
