// Copyright 2026 The Bigmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polyparse

import (
	"testing"

	"github.com/jqnfxa/bigmath/integer"
	"github.com/jqnfxa/bigmath/natural"
	"github.com/jqnfxa/bigmath/polynomial"
	"github.com/jqnfxa/bigmath/rational"
)

func r(num int64, den uint64) rational.Rational {
	v, err := rational.New(integer.FromInt64(num), natural.FromUint64(den))
	if err != nil {
		panic(err)
	}
	return v
}

func requireCoeff(t *testing.T, p polynomial.Polynomial, degree int, want rational.Rational) {
	t.Helper()
	got, err := p.At(degree)
	if err != nil {
		t.Fatalf("At(%d): %v", degree, err)
	}
	if got.Cmp(want) != 0 {
		t.Fatalf("coefficient at degree %d = %s, want %s", degree, got.String(), want.String())
	}
}

func TestParseLenientWorkedExample(t *testing.T) {
	p := ParseLenient("3*x^2 - x + 4")
	if p.Degree() != 2 {
		t.Fatalf("degree = %d, want 2", p.Degree())
	}
	requireCoeff(t, p, 2, r(3, 1))
	requireCoeff(t, p, 1, r(-1, 1))
	requireCoeff(t, p, 0, r(4, 1))
}

func TestParseLenientBareX(t *testing.T) {
	p := ParseLenient("x")
	requireCoeff(t, p, 1, r(1, 1))
	if p.Degree() != 1 {
		t.Fatalf("degree = %d, want 1", p.Degree())
	}
}

func TestParseLenientLeadingMinusX(t *testing.T) {
	p := ParseLenient("-x")
	requireCoeff(t, p, 1, r(-1, 1))
}

func TestParseLenientPowerOfX(t *testing.T) {
	p := ParseLenient("x^5")
	requireCoeff(t, p, 5, r(1, 1))
}

func TestParseLenientImplicitMul(t *testing.T) {
	p := ParseLenient("2x^3")
	requireCoeff(t, p, 3, r(2, 1))
}

func TestParseLenientConstant(t *testing.T) {
	p := ParseLenient("4")
	requireCoeff(t, p, 0, r(4, 1))
	if p.Degree() != 0 {
		t.Fatalf("degree = %d, want 0", p.Degree())
	}
}

func TestParseLenientSwallowsBadTerm(t *testing.T) {
	// "x*2" has '*' after 'x', which parseTerm rejects; ParseLenient must
	// silently drop it and keep the remaining valid terms.
	p := ParseLenient("3 + x*2")
	requireCoeff(t, p, 0, r(3, 1))
	if p.Degree() != 0 {
		t.Fatalf("degree = %d, want 0 (bad term dropped)", p.Degree())
	}
}

func TestParseStrictSurfacesBadTerm(t *testing.T) {
	_, err := ParseStrict("3 + x*2")
	if err == nil {
		t.Fatal("expected an error from the malformed term \"x*2\"")
	}
}

func TestParseStrictAcceptsWorkedExample(t *testing.T) {
	p, err := ParseStrict("3*x^2 - x + 4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	requireCoeff(t, p, 2, r(3, 1))
	requireCoeff(t, p, 1, r(-1, 1))
	requireCoeff(t, p, 0, r(4, 1))
}

func TestParseTermRejectsMulWithoutX(t *testing.T) {
	if _, err := ParseStrict("2*^3"); err == nil {
		t.Fatal("expected an error: '*' with no 'x'")
	}
}

func TestParseTermRejectsMulAfterX(t *testing.T) {
	if _, err := ParseStrict("x*2"); err == nil {
		t.Fatal("expected an error: '*' after 'x'")
	}
}

func TestParseTermRejectsCaretWithNoDegree(t *testing.T) {
	if _, err := ParseStrict("x^"); err == nil {
		t.Fatal("expected an error: '^' with no following degree")
	}
}

func TestParseLenientAccumulatesRepeatedDegrees(t *testing.T) {
	// Two terms landing on the same degree must add, not overwrite.
	p := ParseLenient("x + x")
	requireCoeff(t, p, 1, r(2, 1))
}

func TestParseLenientEmptyInput(t *testing.T) {
	p := ParseLenient("")
	if !p.IsZero() {
		t.Fatalf("expected the zero polynomial, got %s", p.String())
	}
}
