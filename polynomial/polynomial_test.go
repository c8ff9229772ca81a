// Copyright 2026 The Bigmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polynomial

import (
	"testing"

	"github.com/jqnfxa/bigmath/integer"
	"github.com/jqnfxa/bigmath/natural"
	"github.com/jqnfxa/bigmath/numeric"
	"github.com/jqnfxa/bigmath/rational"
)

func r(num int64, den uint64) rational.Rational {
	v, err := rational.New(integer.FromInt64(num), natural.FromUint64(den))
	if err != nil {
		panic(err)
	}
	return v
}

func TestDegreeAndMajorCoefficient(t *testing.T) {
	p := FromHighToLow([]rational.Rational{r(1, 1), r(0, 1), r(-3, 1)})
	if p.Degree() != 2 {
		t.Fatalf("degree = %d, want 2", p.Degree())
	}
	if p.MajorCoefficient().Cmp(r(1, 1)) != 0 {
		t.Fatalf("major coefficient = %s, want 1", p.MajorCoefficient().String())
	}
}

func TestFromHighToLowTrimsLeadingZeros(t *testing.T) {
	p := FromHighToLow([]rational.Rational{r(0, 1), r(0, 1), r(5, 1), r(2, 1)})
	if p.Degree() != 1 {
		t.Fatalf("degree = %d, want 1", p.Degree())
	}
}

func TestFromDegreeMap(t *testing.T) {
	p := FromDegreeMap(map[int]rational.Rational{0: r(1, 1), 3: r(2, 1)})
	if p.Degree() != 3 {
		t.Fatalf("degree = %d, want 3", p.Degree())
	}
	at1, err := p.At(1)
	if err != nil {
		t.Fatal(err)
	}
	if !at1.IsZero() {
		t.Fatalf("coefficient 1 = %s, want 0", at1.String())
	}
}

func TestAtOutOfRange(t *testing.T) {
	p := One()
	if _, err := p.At(5); err == nil {
		t.Fatal("expected DegreeOutOfRange error")
	}
}

func TestAddSub(t *testing.T) {
	p := FromHighToLow([]rational.Rational{r(1, 1), r(2, 1)})
	q := FromHighToLow([]rational.Rational{r(3, 1), r(-2, 1)})
	sum := p.Add(q)
	if sum.Degree() != 1 {
		t.Fatalf("degree = %d, want 1", sum.Degree())
	}
	if sum.MajorCoefficient().Cmp(r(4, 1)) != 0 {
		t.Fatalf("major coeff = %s, want 4", sum.MajorCoefficient().String())
	}
	back := sum.Sub(q)
	if back.Cmp(p) != 0 {
		t.Fatalf("(p+q)-q = %s, want %s", back.String(), p.String())
	}
}

// Cmp is a test helper comparing coefficient vectors directly, since
// Polynomial has no total order, only structural equality.
func (p Polynomial) Cmp(other Polynomial) int {
	if p.Degree() != other.Degree() {
		return p.Degree() - other.Degree()
	}
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		if c := p.coefficients[i].Cmp(other.coefficients[i]); c != 0 {
			return c
		}
	}
	return 0
}

func TestMulDegreeAdds(t *testing.T) {
	p := FromHighToLow([]rational.Rational{r(1, 1), r(1, 1)})
	q := FromHighToLow([]rational.Rational{r(1, 1), r(-1, 1)})
	product := p.Mul(q)
	if product.Degree() != 2 {
		t.Fatalf("degree = %d, want 2", product.Degree())
	}
	at1, _ := product.At(1)
	if !at1.IsZero() {
		t.Fatalf("(x+1)(x-1) coefficient 1 = %s, want 0", at1.String())
	}
}

func TestMulByZero(t *testing.T) {
	p := FromHighToLow([]rational.Rational{r(1, 1), r(1, 1)})
	if !p.Mul(Zero()).IsZero() {
		t.Fatal("p * 0 should be zero")
	}
}

func TestShl(t *testing.T) {
	p := One()
	shifted, err := p.Shl(3)
	if err != nil {
		t.Fatal(err)
	}
	if shifted.Degree() != 3 {
		t.Fatalf("degree = %d, want 3", shifted.Degree())
	}
	at3, _ := shifted.At(3)
	if at3.Cmp(rational.One()) != 0 {
		t.Fatalf("coefficient 3 = %s, want 1", at3.String())
	}
}

func TestDerivative(t *testing.T) {
	// d/dx(x^3 + 2x) = 3x^2 + 2
	p := FromHighToLow([]rational.Rational{r(1, 1), r(0, 1), r(2, 1), r(0, 1)})
	d := p.Derivative()
	if d.Degree() != 2 {
		t.Fatalf("degree = %d, want 2", d.Degree())
	}
	at2, _ := d.At(2)
	if at2.Cmp(r(3, 1)) != 0 {
		t.Fatalf("leading coefficient = %s, want 3", at2.String())
	}
	at0, _ := d.At(0)
	if at0.Cmp(r(2, 1)) != 0 {
		t.Fatalf("constant term = %s, want 2", at0.String())
	}
}

func TestDerivativeDistributesOverAdd(t *testing.T) {
	p := FromHighToLow([]rational.Rational{r(2, 1), r(1, 1), r(0, 1)})
	q := FromHighToLow([]rational.Rational{r(1, 1), r(-1, 1)})
	lhs := p.Add(q).Derivative()
	rhs := p.Derivative().Add(q.Derivative())
	if lhs.Cmp(rhs) != 0 {
		t.Fatalf("(p+q)' = %s, p'+q' = %s", lhs.String(), rhs.String())
	}
}

func TestDivModDivisionByZero(t *testing.T) {
	p := One()
	if _, _, err := p.DivMod(Zero()); err == nil {
		t.Fatal("expected DivisionByZeroPolynomial error")
	}
}

func TestDivModScenario(t *testing.T) {
	dividend := FromDegreeMap(map[int]rational.Rational{
		7: r(138, 16),
		6: r(34, 1),
		2: r(19, 1),
		1: r(14, 1),
	})
	divisor := FromDegreeMap(map[int]rational.Rational{
		3: r(16, 1),
		0: r(1, 1),
	})
	wantQuotient := FromDegreeMap(map[int]rational.Rational{
		4: r(69, 128),
		3: r(17, 8),
		1: r(-69, 2048),
		0: r(-17, 128),
	})
	wantRemainder := FromDegreeMap(map[int]rational.Rational{
		2: r(19, 1),
		1: r(28741, 2048),
		0: r(17, 128),
	})

	q, rem, err := dividend.DivMod(divisor)
	if err != nil {
		t.Fatal(err)
	}
	if q.Cmp(wantQuotient) != 0 {
		t.Fatalf("quotient = %s, want %s", q.String(), wantQuotient.String())
	}
	if rem.Cmp(wantRemainder) != 0 {
		t.Fatalf("remainder = %s, want %s", rem.String(), wantRemainder.String())
	}

	reconstructed := q.Mul(divisor).Add(rem)
	if reconstructed.Cmp(dividend) != 0 {
		t.Fatalf("q*divisor+r = %s, want %s", reconstructed.String(), dividend.String())
	}
}

// Polynomial gcd over rationals reducing to a degree-zero polynomial;
// only the leading-coefficient value is asserted.
func TestGcdPolynomialScenario(t *testing.T) {
	a := FromDegreeMap(map[int]rational.Rational{
		8: r(1, 1),
		6: r(1, 1),
		4: r(-3, 1),
		3: r(-3, 1),
		2: r(8, 1),
		1: r(2, 1),
		0: r(-5, 1),
	})
	b := FromDegreeMap(map[int]rational.Rational{
		6: r(3, 1),
		4: r(5, 1),
		2: r(-4, 1),
		1: r(-9, 1),
		0: r(21, 1),
	})

	g, err := numeric.GcdPolynomial[Polynomial](a, b)
	if err != nil {
		t.Fatal(err)
	}
	if g.Degree() != 0 {
		t.Fatalf("gcd degree = %d, want 0", g.Degree())
	}
	want := r(-1288744821, 543589225)
	if g.MajorCoefficient().Cmp(want) != 0 {
		t.Fatalf("gcd = %s, want %s", g.MajorCoefficient().String(), want.String())
	}
}

func TestMultipleRootsToSimpleIsIdempotent(t *testing.T) {
	// (x-1)^2 * (x+2) = x^3 - 3x + 2 has a repeated root at 1.
	xMinus1 := FromHighToLow([]rational.Rational{r(1, 1), r(-1, 1)})
	xPlus2 := FromHighToLow([]rational.Rational{r(1, 1), r(2, 1)})
	p := xMinus1.Mul(xMinus1).Mul(xPlus2)

	once, err := p.MultipleRootsToSimple()
	if err != nil {
		t.Fatal(err)
	}
	twice, err := once.MultipleRootsToSimple()
	if err != nil {
		t.Fatal(err)
	}
	if once.Cmp(twice) != 0 {
		t.Fatalf("not idempotent: once = %s, twice = %s", once.String(), twice.String())
	}
	if once.Degree() != 2 {
		t.Fatalf("squarefree reduction degree = %d, want 2", once.Degree())
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		coeffs []rational.Rational
		want   string
	}{
		{[]rational.Rational{r(0, 1)}, "0"},
		{[]rational.Rational{r(5, 1)}, "5"},
		{[]rational.Rational{r(0, 1), r(1, 1)}, "x"},
		{[]rational.Rational{r(0, 1), r(-1, 1)}, "-x"},
		{[]rational.Rational{r(2, 1), r(3, 1)}, "3*x+2"},
		{[]rational.Rational{r(-5, 1), r(0, 1), r(1, 1)}, "x^2-5"},
	}
	for _, c := range cases {
		got := FromHighToLow(reverse(c.coeffs)).String()
		if got != c.want {
			t.Errorf("%v -> %q, want %q", c.coeffs, got, c.want)
		}
	}
}

func reverse(xs []rational.Rational) []rational.Rational {
	out := make([]rational.Rational, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}
