// Copyright 2026 The Bigmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeric holds the small capability interfaces (abs, sign,
// is_zero, degree/coefficient access, multiplicative identity) the generic
// algorithms in this package are expressed over, plus the generic
// gcd/lcm/pow built on top of them. Writing gcd and pow once against these
// interfaces, instead of once per concrete type, is the point: Natural,
// Integer, and Polynomial each satisfy them with very different storage
// underneath.
package numeric

import (
	"github.com/jqnfxa/bigmath/bigerr"
	"github.com/jqnfxa/bigmath/integer"
)

// EuclideanLike is a type whose values can be compared, tested for zero,
// and reduced with a Euclidean-style remainder. Natural and Integer both
// satisfy it.
type EuclideanLike[T any] interface {
	Cmp(T) int
	IsZero() bool
	Mod(T) (T, error)
	Mul(T) T
	DivMod(T) (T, T, error)
}

// Gcd computes the greatest common divisor of a and b for any
// EuclideanLike type, by the Euclidean algorithm: if a < b recurse
// swapped, then loop (a, b) <- (b, a mod b) until b is zero.
func Gcd[T EuclideanLike[T]](a, b T) (T, error) {
	if a.Cmp(b) < 0 {
		return Gcd(b, a)
	}
	first, second := a, b
	for !second.IsZero() {
		r, err := first.Mod(second)
		if err != nil {
			var zero T
			return zero, err
		}
		first, second = second, r
	}
	return first, nil
}

// Lcm computes a * b / gcd(a, b) for any EuclideanLike type.
func Lcm[T EuclideanLike[T]](a, b T) (T, error) {
	g, err := Gcd(a, b)
	if err != nil {
		var zero T
		return zero, err
	}
	product := a.Mul(b)
	q, _, err := product.DivMod(g)
	if err != nil {
		var zero T
		return zero, err
	}
	return q, nil
}

// PolynomialLike is a type with a degree, a Euclidean-style remainder, and
// a zero test, which is all GcdPolynomial needs.
type PolynomialLike[T any] interface {
	Degree() int
	IsZero() bool
	Mod(T) (T, error)
}

// GcdPolynomial computes the gcd of two PolynomialLike values. It differs
// from Gcd in its loop condition (the loop stops once second has degree
// zero, not once it is the zero value) and in a final check: first, the
// remainder before that degree-zero one, is accepted as the answer only
// when both a mod first and b mod first vanish; otherwise the final
// degree-zero remainder, second, is returned instead.
func GcdPolynomial[T PolynomialLike[T]](a, b T) (T, error) {
	if a.Degree() < b.Degree() {
		return GcdPolynomial(b, a)
	}
	first, second := a, b
	for second.Degree() != 0 {
		r, err := first.Mod(second)
		if err != nil {
			var zero T
			return zero, err
		}
		first, second = second, r
	}

	aModFirst, err := a.Mod(first)
	if err != nil {
		var zero T
		return zero, err
	}
	bModFirst, err := b.Mod(first)
	if err != nil {
		var zero T
		return zero, err
	}
	if aModFirst.IsZero() && bModFirst.IsZero() {
		return first, nil
	}
	return second, nil
}

// Multiplicative is the minimal capability Pow needs: a ring multiplication
// and its identity element ("1" for numeric types, the degree-zero "[1]"
// polynomial for polynomials). One is called on a zero T; implementations
// must not read receiver state.
type Multiplicative[T any] interface {
	Mul(T) T
	One() T
}

// Invertible additionally supplies a multiplicative inverse, needed only
// for negative exponents. Types with no general multiplicative inverse
// (Natural, Integer, Polynomial) still implement Inverse so a single Pow
// works uniformly across every domain; they simply fail for any base that
// is not its own inverse.
type Invertible[T any] interface {
	Multiplicative[T]
	Inverse() (T, error)
}

// Pow computes base^exponent by binary exponentiation: repeatedly
// square-and-halve on even exponents and multiply-and-decrement on odd
// ones. A negative exponent inverts base up front and recurses on the
// negated (now non-negative) exponent, rather than computing
// pow(base, -exponent) and inverting the result afterward. For Rational
// the two orders agree, but for Natural and Integer — which have no
// general multiplicative inverse — inverting first means any base other
// than 1 (or -1, for Integer) fails immediately instead of only failing
// once the final division is attempted. That is the intended behavior:
// a negative exponent in those domains is only ever meaningful for a
// base that is its own inverse.
func Pow[T Invertible[T]](base T, exponent integer.Integer) (T, error) {
	if exponent.IsNegative() {
		inv, err := base.Inverse()
		if err != nil {
			var zero T
			return zero, err
		}
		return Pow(inv, exponent.Neg())
	}

	var zero T
	acc := zero.One()
	b := base
	e := exponent
	two := integer.FromInt64(2)
	for !e.IsZero() {
		if isEven(e) {
			b = b.Mul(b)
			half, err := e.Div(two)
			if err != nil {
				return zero, err
			}
			e = half
		} else {
			acc = acc.Mul(b)
			e = e.Sub(integer.One())
		}
	}
	return acc, nil
}

func isEven(n integer.Integer) bool {
	digits := n.Abs().Digits()
	return digits[0]%2 == 0
}

// NotInvertibleError reports that a Multiplicative-only type was asked for
// an inverse it structurally cannot provide.
func NotInvertibleError(what string) error {
	return bigerr.New(bigerr.DivisionByZero, "%s has no general multiplicative inverse", what)
}
