// Copyright 2026 The Bigmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rational implements Rational, an exact fraction kept always in
// lowest terms with a positive denominator, built from an Integer
// numerator and a Natural denominator in the same "wrap a lower rung of
// the tower" shape natural and integer already show.
package rational

import (
	"github.com/jqnfxa/bigmath/bigerr"
	"github.com/jqnfxa/bigmath/integer"
	"github.com/jqnfxa/bigmath/natural"
)

// Rational is an exact fraction, always stored in lowest terms with
// denominator > 0. The zero value is not valid; use Zero() or New.
type Rational struct {
	num integer.Integer
	den natural.Natural
}

// Zero returns the canonical Rational 0 (= 0/1).
func Zero() Rational {
	return Rational{num: integer.Zero(), den: natural.One()}
}

// One returns the canonical Rational 1 (= 1/1).
func One() Rational {
	return Rational{num: integer.One(), den: natural.One()}
}

// New builds a Rational from an Integer numerator and a Natural
// denominator, reducing to lowest terms. It fails with DenominatorIsZero
// if den is zero.
func New(num integer.Integer, den natural.Natural) (Rational, error) {
	if den.IsZero() {
		return Rational{}, bigerr.New(bigerr.DenominatorIsZero, "rational denominator is zero")
	}
	return reduce(num, den), nil
}

// FromInteger builds the Rational num/1, explicitly promoting an Integer
// into the rational tower.
func FromInteger(num integer.Integer) Rational {
	return Rational{num: num, den: natural.One()}
}

// FromNatural builds the Rational n/1, promoting through Integer
// (Natural -> Integer -> Rational) rather than constructing a Rational
// from a Natural directly.
func FromNatural(n natural.Natural) Rational {
	return FromInteger(integer.FromNatural(n, false))
}

func reduce(num integer.Integer, den natural.Natural) Rational {
	g := gcdNatural(num.Abs(), den)
	if !g.IsZero() && !isOneNatural(g) {
		q, _, err := num.Abs().DivMod(g)
		if err != nil {
			panic("rational: unreachable: " + err.Error())
		}
		num = integer.FromNatural(q, num.IsNegative())
		den, _, err = den.DivMod(g)
		if err != nil {
			panic("rational: unreachable: " + err.Error())
		}
	}
	if num.IsZero() {
		den = natural.One()
	}
	return Rational{num: num, den: den}
}

func isOneNatural(n natural.Natural) bool {
	return n.Cmp(natural.One()) == 0
}

// gcdNatural is the Euclidean algorithm on Natural, used internally to
// reduce fractions; the generic numeric.Gcd wraps the same recurrence for
// external callers.
func gcdNatural(a, b natural.Natural) natural.Natural {
	if a.Cmp(b) < 0 {
		return gcdNatural(b, a)
	}
	for !b.IsZero() {
		_, r, err := a.DivMod(b)
		if err != nil {
			panic("rational: unreachable: " + err.Error())
		}
		a, b = b, r
	}
	return a
}

// Numerator returns the signed numerator.
func (r Rational) Numerator() integer.Integer {
	return r.num
}

// Denominator returns the positive denominator.
func (r Rational) Denominator() natural.Natural {
	return r.den
}

// IsZero reports whether r is zero.
func (r Rational) IsZero() bool {
	return r.num.IsZero()
}

// IsNegative reports whether r is strictly negative.
func (r Rational) IsNegative() bool {
	return r.num.IsNegative()
}

// Sign returns -1, 0, or 1.
func (r Rational) Sign() int {
	return r.num.Sign()
}

// IsInteger reports whether r's denominator is 1.
func (r Rational) IsInteger() bool {
	return isOneNatural(r.den)
}

// One returns the multiplicative identity, for use by numeric.Pow. It does
// not read receiver state.
func (Rational) One() Rational {
	return One()
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{num: r.num.Neg(), den: r.den}
}

// Inverse returns 1/r, preserving sign. It fails with DenominatorIsZero if
// r is zero (its numerator becomes the new, zero, denominator).
func (r Rational) Inverse() (Rational, error) {
	if r.num.IsZero() {
		return Rational{}, bigerr.New(bigerr.DenominatorIsZero, "cannot invert zero rational")
	}
	newNum := integer.FromNatural(r.den, r.num.IsNegative())
	newDen := r.num.Abs()
	return Rational{num: newNum, den: newDen}, nil
}

// Cmp returns -1, 0, or 1 as r is less than, equal to, or greater than other.
func (r Rational) Cmp(other Rational) int {
	return r.Sub(other).num.Sign()
}

// Add returns r + other, as a/b + c/d = (a*d + c*b) / (b*d), reduced.
func (r Rational) Add(other Rational) Rational {
	lhsNum := r.num.Mul(integer.FromNatural(other.den, false))
	rhsNum := other.num.Mul(integer.FromNatural(r.den, false))
	num := lhsNum.Add(rhsNum)
	den := r.den.Mul(other.den)
	return reduce(num, den)
}

// Sub returns r - other, implemented as sign-flip-then-add for symmetry
// with Add.
func (r Rational) Sub(other Rational) Rational {
	return r.Add(other.Neg())
}

// Mul returns r * other.
func (r Rational) Mul(other Rational) Rational {
	num := r.num.Mul(other.num)
	den := r.den.Mul(other.den)
	return reduce(num, den)
}

// Div returns r / other. It fails with DenominatorIsZero if other is zero.
func (r Rational) Div(other Rational) (Rational, error) {
	inv, err := other.Inverse()
	if err != nil {
		return Rational{}, err
	}
	return r.Mul(inv), nil
}

// Shl returns r << k: the numerator is multiplied by Base^k via the
// underlying Integer's shift, since a Rational has no digit storage of
// its own to shift. Left-then-right does not always round-trip on odd
// numerators; that's expected, not a bug.
func (r Rational) Shl(k int) (Rational, error) {
	num, err := r.num.Shl(k)
	if err != nil {
		return Rational{}, err
	}
	return reduce(num, r.den), nil
}

// Shr returns r >> k: the numerator is divided by Base^k and the result
// re-reduced.
func (r Rational) Shr(k int) Rational {
	return reduce(r.num.Shr(k), r.den)
}

// Mod always returns zero: a ≡ 0 (mod anything) in a field, since every
// nonzero element divides evenly. Defensible but surprising, so it's
// documented explicitly here.
func (r Rational) Mod(Rational) Rational {
	return Zero()
}

// String prints num if r is an integer (denominator 1), else num/den, with
// the sign carried by num.
func (r Rational) String() string {
	if r.IsInteger() {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}
