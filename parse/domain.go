// Copyright 2026 The Bigmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"github.com/jqnfxa/bigmath/integer"
	"github.com/jqnfxa/bigmath/natural"
	"github.com/jqnfxa/bigmath/numeric"
	"github.com/jqnfxa/bigmath/rational"
)

// NaturalDomain backs Evaluate for the Natural numeric domain (CLI
// selector "N"). Unary minus has no representable result in the
// naturals, so Neg always fails.
type NaturalDomain struct{}

func (NaturalDomain) FromNatural(n natural.Natural) natural.Natural { return n }

func (NaturalDomain) Neg(natural.Natural) (natural.Natural, error) {
	return natural.Natural{}, numeric.NotInvertibleError("unary minus on a natural number")
}

func (NaturalDomain) Add(a, b natural.Natural) (natural.Natural, error) { return a.Add(b), nil }
func (NaturalDomain) Sub(a, b natural.Natural) (natural.Natural, error) { return a.Sub(b) }
func (NaturalDomain) Mul(a, b natural.Natural) (natural.Natural, error) { return a.Mul(b), nil }

func (NaturalDomain) Div(a, b natural.Natural) (natural.Natural, error) {
	q, _, err := a.DivMod(b)
	return q, err
}

func (NaturalDomain) Mod(a, b natural.Natural) (natural.Natural, error) {
	return a.Mod(b)
}

func (NaturalDomain) Pow(base natural.Natural, exponent integer.Integer) (natural.Natural, error) {
	return numeric.Pow(base, exponent)
}

func (NaturalDomain) Shl(a natural.Natural, k int) (natural.Natural, error) { return a.Shl(k) }
func (NaturalDomain) Shr(a natural.Natural, k int) (natural.Natural, error) { return a.Shr(k), nil }

func (NaturalDomain) Gcd(a, b natural.Natural) (natural.Natural, error) { return numeric.Gcd(a, b) }
func (NaturalDomain) Lcm(a, b natural.Natural) (natural.Natural, error) { return numeric.Lcm(a, b) }

func (NaturalDomain) Numerator(n natural.Natural) integer.Integer {
	return integer.FromNatural(n, false)
}

// IntegerDomain backs Evaluate for the Integer numeric domain (CLI
// selector "Z").
type IntegerDomain struct{}

func (IntegerDomain) FromNatural(n natural.Natural) integer.Integer {
	return integer.FromNatural(n, false)
}

func (IntegerDomain) Neg(a integer.Integer) (integer.Integer, error) { return a.Neg(), nil }
func (IntegerDomain) Add(a, b integer.Integer) (integer.Integer, error) { return a.Add(b), nil }
func (IntegerDomain) Sub(a, b integer.Integer) (integer.Integer, error) { return a.Sub(b), nil }
func (IntegerDomain) Mul(a, b integer.Integer) (integer.Integer, error) { return a.Mul(b), nil }
func (IntegerDomain) Div(a, b integer.Integer) (integer.Integer, error) { return a.Div(b) }
func (IntegerDomain) Mod(a, b integer.Integer) (integer.Integer, error) { return a.Mod(b) }

func (IntegerDomain) Pow(base integer.Integer, exponent integer.Integer) (integer.Integer, error) {
	return numeric.Pow(base, exponent)
}

func (IntegerDomain) Shl(a integer.Integer, k int) (integer.Integer, error) { return a.Shl(k) }
func (IntegerDomain) Shr(a integer.Integer, k int) (integer.Integer, error) { return a.Shr(k), nil }

func (IntegerDomain) Gcd(a, b integer.Integer) (integer.Integer, error) {
	g, err := numeric.Gcd(a.Abs(), b.Abs())
	if err != nil {
		return integer.Integer{}, err
	}
	return integer.FromNatural(g, false), nil
}

func (IntegerDomain) Lcm(a, b integer.Integer) (integer.Integer, error) {
	l, err := numeric.Lcm(a.Abs(), b.Abs())
	if err != nil {
		return integer.Integer{}, err
	}
	return integer.FromNatural(l, false), nil
}

func (IntegerDomain) Numerator(n integer.Integer) integer.Integer { return n }

// RationalDomain backs Evaluate for the Rational numeric domain (CLI
// selector "Q"). A field has no independent notion of gcd or lcm (every
// nonzero element divides every other), so Gcd and Lcm instead reach
// down to the numerators' Natural magnitudes: gcd(12, 18) in the
// rational domain yields the integer 6, not a trivial field gcd.
type RationalDomain struct{}

func (RationalDomain) FromNatural(n natural.Natural) rational.Rational {
	return rational.FromNatural(n)
}

func (RationalDomain) Neg(a rational.Rational) (rational.Rational, error) { return a.Neg(), nil }
func (RationalDomain) Add(a, b rational.Rational) (rational.Rational, error) { return a.Add(b), nil }
func (RationalDomain) Sub(a, b rational.Rational) (rational.Rational, error) { return a.Sub(b), nil }
func (RationalDomain) Mul(a, b rational.Rational) (rational.Rational, error) { return a.Mul(b), nil }
func (RationalDomain) Div(a, b rational.Rational) (rational.Rational, error) { return a.Div(b) }
func (RationalDomain) Mod(a, b rational.Rational) (rational.Rational, error) { return a.Mod(b), nil }

func (RationalDomain) Pow(base rational.Rational, exponent integer.Integer) (rational.Rational, error) {
	return numeric.Pow(base, exponent)
}

func (RationalDomain) Shl(a rational.Rational, k int) (rational.Rational, error) { return a.Shl(k) }
func (RationalDomain) Shr(a rational.Rational, k int) (rational.Rational, error) {
	return a.Shr(k), nil
}

func (RationalDomain) Gcd(a, b rational.Rational) (rational.Rational, error) {
	g, err := numeric.Gcd(a.Numerator().Abs(), b.Numerator().Abs())
	if err != nil {
		return rational.Rational{}, err
	}
	return rational.FromNatural(g), nil
}

func (RationalDomain) Lcm(a, b rational.Rational) (rational.Rational, error) {
	l, err := numeric.Lcm(a.Numerator().Abs(), b.Numerator().Abs())
	if err != nil {
		return rational.Rational{}, err
	}
	return rational.FromNatural(l), nil
}

func (RationalDomain) Numerator(r rational.Rational) integer.Integer { return r.Numerator() }
