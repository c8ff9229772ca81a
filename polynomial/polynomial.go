// Copyright 2026 The Bigmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package polynomial implements Polynomial, a dense vector of Rational
// coefficients indexed by degree, with the ring operations, long division,
// derivative, content normalization, and squarefree reduction a computer
// algebra kernel needs, in the same "dense vector, trim after every
// mutation" idiom natural already establishes.
package polynomial

import (
	"strings"

	"github.com/jqnfxa/bigmath/bigerr"
	"github.com/jqnfxa/bigmath/container"
	"github.com/jqnfxa/bigmath/integer"
	"github.com/jqnfxa/bigmath/natural"
	"github.com/jqnfxa/bigmath/numeric"
	"github.com/jqnfxa/bigmath/rational"
)

// Polynomial is a dense rational-coefficient polynomial; coefficients[i]
// is the coefficient of x^i. The zero value is not valid; use Zero() or a
// From* constructor.
type Polynomial struct {
	coefficients []rational.Rational
}

// Zero returns the canonical zero polynomial, the single coefficient [0].
func Zero() Polynomial {
	return Polynomial{coefficients: []rational.Rational{rational.Zero()}}
}

// One returns the canonical degree-zero polynomial [1], the multiplicative identity.
func One() Polynomial {
	return Polynomial{coefficients: []rational.Rational{rational.One()}}
}

// FromHighToLow builds a polynomial from coefficients listed highest
// degree first, reversing them to the internal low-to-high order and
// trimming leading (mathematically: highest-degree) zeros.
func FromHighToLow(coeffs []rational.Rational) Polynomial {
	reversed := make([]rational.Rational, len(coeffs))
	for i, c := range coeffs {
		reversed[len(coeffs)-1-i] = c
	}
	return Polynomial{coefficients: trim(reversed)}
}

// FromDegreeMap builds a polynomial from a {degree: coefficient} mapping,
// allocating max_degree+1 slots and writing each entry, then trimming.
func FromDegreeMap(m map[int]rational.Rational) Polynomial {
	maxDegree := 0
	for d := range m {
		if d > maxDegree {
			maxDegree = d
		}
	}
	coeffs := make([]rational.Rational, maxDegree+1)
	for i := range coeffs {
		coeffs[i] = rational.Zero()
	}
	for d, c := range m {
		coeffs[d] = c
	}
	return Polynomial{coefficients: trim(coeffs)}
}

func trim(coeffs []rational.Rational) []rational.Rational {
	return container.TrimTrailing(coeffs, rational.Zero(), func(c rational.Rational) bool { return c.IsZero() })
}

// Degree returns len(coefficients) - 1.
func (p Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// MajorCoefficient returns the leading (highest-degree) coefficient.
func (p Polynomial) MajorCoefficient() rational.Rational {
	return p.coefficients[len(p.coefficients)-1]
}

// IsZero reports whether p is the canonical zero polynomial.
func (p Polynomial) IsZero() bool {
	return p.Degree() == 0 && p.coefficients[0].IsZero()
}

// At returns the coefficient of x^k. It fails with DegreeOutOfRange if k > Degree().
func (p Polynomial) At(k int) (rational.Rational, error) {
	if k < 0 || k >= len(p.coefficients) {
		return rational.Rational{}, bigerr.New(bigerr.DegreeOutOfRange, "degree %d out of range for polynomial of degree %d", k, p.Degree())
	}
	return p.coefficients[k], nil
}

// Coefficients returns a defensive copy of the dense low-to-high coefficient vector.
func (p Polynomial) Coefficients() []rational.Rational {
	out := make([]rational.Rational, len(p.coefficients))
	copy(out, p.coefficients)
	return out
}

func (p Polynomial) at(k int) rational.Rational {
	if k < len(p.coefficients) {
		return p.coefficients[k]
	}
	return rational.Zero()
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	out := make([]rational.Rational, len(p.coefficients))
	for i, c := range p.coefficients {
		out[i] = c.Neg()
	}
	return Polynomial{coefficients: trim(out)}
}

// Add returns p + other.
func (p Polynomial) Add(other Polynomial) Polynomial {
	maxLen := len(p.coefficients)
	if len(other.coefficients) > maxLen {
		maxLen = len(other.coefficients)
	}
	out := make([]rational.Rational, maxLen)
	for i := 0; i < maxLen; i++ {
		out[i] = p.at(i).Add(other.at(i))
	}
	return Polynomial{coefficients: trim(out)}
}

// Sub returns p - other, implemented as Add against the negated other to
// share code with Add.
func (p Polynomial) Sub(other Polynomial) Polynomial {
	return p.Add(other.Neg())
}

// MulScalar returns p with every coefficient multiplied by c, then trimmed.
func (p Polynomial) MulScalar(c rational.Rational) Polynomial {
	out := make([]rational.Rational, len(p.coefficients))
	for i, coeff := range p.coefficients {
		out[i] = coeff.Mul(c)
	}
	return Polynomial{coefficients: trim(out)}
}

// DivScalar returns p with every coefficient divided by c, then trimmed.
// It fails with DenominatorIsZero if c is zero.
func (p Polynomial) DivScalar(c rational.Rational) (Polynomial, error) {
	out := make([]rational.Rational, len(p.coefficients))
	for i, coeff := range p.coefficients {
		v, err := coeff.Div(c)
		if err != nil {
			return Polynomial{}, err
		}
		out[i] = v
	}
	return Polynomial{coefficients: trim(out)}, nil
}

// Mul returns p * other by schoolbook convolution into a result of length
// deg(p)+deg(other)+1, trimmed. No Karatsuba at this layer: coefficients
// are Rationals, not machine words, so the crossover point is different
// and not worth chasing here.
func (p Polynomial) Mul(other Polynomial) Polynomial {
	if p.IsZero() || other.IsZero() {
		return Zero()
	}
	out := make([]rational.Rational, len(p.coefficients)+len(other.coefficients)-1)
	for i := range out {
		out[i] = rational.Zero()
	}
	for i, a := range p.coefficients {
		if a.IsZero() {
			continue
		}
		for j, b := range other.coefficients {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return Polynomial{coefficients: trim(out)}
}

// Shl returns p << k, i.e. p * x^k: grow by k, copy existing coefficients
// k positions upward, zero the low k slots. It fails with LengthError if
// the new length would overflow.
func (p Polynomial) Shl(k int) (Polynomial, error) {
	if k == 0 || p.IsZero() {
		return p, nil
	}
	if k < 0 {
		return Polynomial{}, bigerr.New(bigerr.LengthError, "negative shift count %d", k)
	}
	if len(p.coefficients) > maxInt-k {
		return Polynomial{}, bigerr.New(bigerr.LengthError, "shift by %d overflows length", k)
	}
	return Polynomial{coefficients: container.ShiftInsertZeros(p.coefficients, k, rational.Zero())}, nil
}

const maxInt = int(^uint(0) >> 1)

// DivMod performs polynomial long division, returning (quotient,
// remainder) such that p = quotient*divisor + remainder and either
// remainder is zero or deg(remainder) < deg(divisor). It fails with
// DivisionByZeroPolynomial if divisor is the zero polynomial.
func (p Polynomial) DivMod(divisor Polynomial) (Polynomial, Polynomial, error) {
	if divisor.IsZero() {
		return Polynomial{}, Polynomial{}, bigerr.New(bigerr.DivisionByZeroPolynomial, "division by zero polynomial")
	}
	if divisor.Degree() > p.Degree() {
		return Zero(), p, nil
	}

	remainder := p
	quotient := Zero()

	for !remainder.IsZero() && remainder.Degree() >= divisor.Degree() {
		c, err := remainder.MajorCoefficient().Div(divisor.MajorCoefficient())
		if err != nil {
			return Polynomial{}, Polynomial{}, err
		}
		d := remainder.Degree() - divisor.Degree()

		qCoeffs := quotient.Coefficients()
		for len(qCoeffs) <= d {
			qCoeffs = append(qCoeffs, rational.Zero())
		}
		qCoeffs[d] = c
		quotient = Polynomial{coefficients: trim(qCoeffs)}

		termPoly, err := FromHighToLow([]rational.Rational{c}).Shl(d)
		if err != nil {
			return Polynomial{}, Polynomial{}, err
		}
		subtrahend := termPoly.Mul(divisor)
		remainder = remainder.Sub(subtrahend)
	}

	return quotient, remainder, nil
}

// Mod returns the remainder of p / divisor, for use by the generic
// polynomial gcd in package numeric.
func (p Polynomial) Mod(divisor Polynomial) (Polynomial, error) {
	_, r, err := p.DivMod(divisor)
	return r, err
}

// Div returns the quotient of p / divisor.
func (p Polynomial) Div(divisor Polynomial) (Polynomial, error) {
	q, _, err := p.DivMod(divisor)
	return q, err
}

// Derivative returns p': coefficient i-1 becomes coefficient[i]*i for
// i >= 1, and the result drops its top coefficient (the one place where
// the derivative's degree is one less than p's, unless p was already
// constant) relative to p's length.
func (p Polynomial) Derivative() Polynomial {
	if p.Degree() == 0 {
		return Zero()
	}
	out := make([]rational.Rational, len(p.coefficients)-1)
	for i := 1; i < len(p.coefficients); i++ {
		out[i-1] = p.coefficients[i].Mul(rational.FromInteger(integer.FromInt64(int64(i))))
	}
	return Polynomial{coefficients: trim(out)}
}

// One returns the multiplicative identity, for use by numeric.Pow. It does
// not read receiver state.
func (Polynomial) One() Polynomial {
	return One()
}

// Inverse reports whether p is its own multiplicative inverse (only the
// constant polynomial [1] is); any other value fails, since Polynomial
// has no general multiplicative inverse. Present so numeric.Pow can treat
// every domain uniformly.
func (p Polynomial) Inverse() (Polynomial, error) {
	if p.Degree() == 0 && p.coefficients[0].Cmp(rational.One()) == 0 {
		return p, nil
	}
	return Polynomial{}, bigerr.New(bigerr.DivisionByZero, "polynomial %s has no multiplicative inverse", p.String())
}

// Content computes the rational gcd of p's coefficients: starting at
// coefficient 0, repeatedly refine s.num <- gcd(s.num, coeff_i.num) and
// s.den <- lcm(s.den, coeff_i.den), multiplying s by sign(coeff_i) at each
// step, walking every coefficient.
func (p Polynomial) Content() (rational.Rational, error) {
	numAcc := p.coefficients[0].Numerator().Abs()
	denAcc := p.coefficients[0].Denominator()
	sign := 1
	if !p.coefficients[0].IsZero() {
		sign = p.coefficients[0].Sign()
	}

	for _, c := range p.coefficients[1:] {
		if c.IsZero() {
			continue
		}
		var err error
		numAcc, err = numeric.Gcd(numAcc, c.Numerator().Abs())
		if err != nil {
			return rational.Rational{}, err
		}
		denAcc, err = numeric.Lcm(denAcc, c.Denominator())
		if err != nil {
			return rational.Rational{}, err
		}
		sign *= c.Sign()
	}

	s, err := rational.New(integer.FromNatural(numAcc, sign < 0), denAcc)
	if err != nil {
		return rational.Rational{}, err
	}
	return s, nil
}

// Normalize divides p by its Content, producing a primitive polynomial
// with an aligned leading sign.
func (p Polynomial) Normalize() (Polynomial, error) {
	if p.IsZero() {
		return p, nil
	}
	s, err := p.Content()
	if err != nil {
		return Polynomial{}, err
	}
	if s.IsZero() {
		return p, nil
	}
	return p.DivScalar(s)
}

// MultipleRootsToSimple divides p by gcd(p, p'), then normalizes, reducing
// a polynomial with repeated roots to a squarefree one with the same roots.
func (p Polynomial) MultipleRootsToSimple() (Polynomial, error) {
	g, err := numeric.GcdPolynomial[Polynomial](p, p.Derivative())
	if err != nil {
		return Polynomial{}, err
	}
	reduced, err := p.Div(g)
	if err != nil {
		return Polynomial{}, err
	}
	return reduced.Normalize()
}

// String prints terms from highest to lowest degree, skipping zero
// coefficients (except that the zero polynomial always prints its single
// coefficient), eliding a coefficient magnitude of 1 on a non-constant
// term, eliding x^1 to x, and eliding x entirely on the constant term.
func (p Polynomial) String() string {
	if p.IsZero() {
		return p.MajorCoefficient().String()
	}

	var b strings.Builder
	first := true
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		c := p.coefficients[i]
		if c.IsZero() {
			continue
		}

		isUnitMagnitude := c.Numerator().Abs().Cmp(natural.One()) == 0 && c.Denominator().Cmp(natural.One()) == 0

		if i > 0 && isUnitMagnitude {
			if c.Sign() < 0 {
				b.WriteByte('-')
			} else if !first {
				b.WriteByte('+')
			}
		} else {
			if c.Sign() > 0 && !first {
				b.WriteByte('+')
			}
			b.WriteString(c.String())
		}

		if i > 0 {
			if !isUnitMagnitude {
				b.WriteByte('*')
			}
			b.WriteByte('x')
			if i > 1 {
				b.WriteByte('^')
				b.WriteString(itoa(i))
			}
		}
		first = false
	}
	return b.String()
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
