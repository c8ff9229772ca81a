// Copyright 2026 The Bigmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package natural

import (
	"testing"

	"github.com/jqnfxa/bigmath/bigerr"
)

func mustNatural(t *testing.T, s string) Natural {
	t.Helper()
	n, err := FromString(s)
	if err != nil {
		t.Fatalf("FromString(%q): %v", s, err)
	}
	return n
}

func TestFromStringConstruction(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"0", "0"},
		{"1", "1"},
		{"57", "57"},
		{"999911205", "999911205"},
		{"57558858585858", "57558858585858"},
		{"5464841321654684321354687465132146874651354984651354687465432135468798465132165487654321654798462168465468324792",
			"5464841321654684321354687465132146874651354984651354687465432135468798465132165487654321654798462168465468324792"},
	}
	for _, c := range cases {
		got := mustNatural(t, c.in)
		if got.String() != c.want {
			t.Errorf("FromString(%q).String() = %q, want %q", c.in, got.String(), c.want)
		}
	}
}

func TestFromStringErrors(t *testing.T) {
	for _, in := range []string{"", "55 6", "-556", "54738461283746127364686712348723f56"} {
		if _, err := FromString(in); err == nil || !bigerr.HasKind(err, bigerr.InvalidInput) {
			t.Errorf("FromString(%q) = %v, want InvalidInput", in, err)
		}
	}
}

func TestFromDigitsRejectsOutOfRangeDigit(t *testing.T) {
	if _, err := FromDigits([]uint32{0, Base}); !bigerr.HasKind(err, bigerr.InvalidInput) {
		t.Fatalf("FromDigits with digit == Base: got %v, want InvalidInput", err)
	}
}

func TestCmp(t *testing.T) {
	less := func(a, b string) {
		t.Helper()
		if mustNatural(t, a).Cmp(mustNatural(t, b)) >= 0 {
			t.Errorf("%s should be < %s", a, b)
		}
	}
	less("555", "556")
	less("555", "1555")
	less("555857857867", "1000000000000")
	if mustNatural(t, "555").Cmp(mustNatural(t, "555")) != 0 {
		t.Error("555 should equal 555")
	}
	if mustNatural(t, "1000000000000").Cmp(mustNatural(t, "555857857867")) <= 0 {
		t.Error("1000000000000 should be > 555857857867")
	}
}

func TestAdd(t *testing.T) {
	a := FromUint64(8589934586)
	doubled := a.Add(a)
	if doubled.String() != "17179869172" {
		t.Errorf("doubling 8589934586 = %s, want 17179869172", doubled.String())
	}

	big1 := mustNatural(t, "999999999999999999999999999")
	sum := big1.Add(mustNatural(t, "999999999999999999999999999"))
	if sum.String() != "1999999999999999999999999998" {
		t.Errorf("sum = %s", sum.String())
	}

	zero := Zero()
	if zero.Add(zero).String() != "0" {
		t.Error("0 + 0 should be 0")
	}
}

func TestSubUnderflow(t *testing.T) {
	_, err := mustNatural(t, "5").Sub(mustNatural(t, "6"))
	if !bigerr.HasKind(err, bigerr.Underflow) {
		t.Fatalf("5 - 6 = %v, want Underflow", err)
	}
	diff, err := mustNatural(t, "1000000000000").Sub(mustNatural(t, "1"))
	if err != nil {
		t.Fatal(err)
	}
	if diff.String() != "999999999999" {
		t.Errorf("1000000000000 - 1 = %s", diff.String())
	}
}

func TestMulAgreesAcrossSchoolbookAndKaratsuba(t *testing.T) {
	// KaratsubaThreshold is 32 base-B digits; force each operand well past it.
	a := mustNatural(t, bigDigitString(40, '7'))
	b := mustNatural(t, bigDigitString(45, '3'))

	viaDispatch := a.Mul(b)
	viaSchoolbook := Natural{digits: trim(schoolbookMul(a.digits, b.digits))}

	if viaDispatch.Cmp(viaSchoolbook) != 0 {
		t.Fatalf("karatsuba and schoolbook disagree:\n%s\n%s", viaDispatch.String(), viaSchoolbook.String())
	}
}

func bigDigitString(n int, c byte) string {
	b := make([]byte, n*DigitsPerCell)
	for i := range b {
		b[i] = c
	}
	return string(b)
}

func TestMulIdentities(t *testing.T) {
	a := mustNatural(t, "123456789123456789")
	if got := a.Mul(Zero()); !got.IsZero() {
		t.Errorf("a*0 = %s, want 0", got.String())
	}
	if got := a.Mul(One()); got.Cmp(a) != 0 {
		t.Errorf("a*1 = %s, want %s", got.String(), a.String())
	}
}

func TestDivModIdentity(t *testing.T) {
	a := mustNatural(t, "48123749817263487162398476123987461293846391")
	b := mustNatural(t, "714263874612")
	q, r, err := a.DivMod(b)
	if err != nil {
		t.Fatal(err)
	}
	reconstructed := q.Mul(b).Add(r)
	if reconstructed.Cmp(a) != 0 {
		t.Fatalf("q*b+r = %s, want %s", reconstructed.String(), a.String())
	}
	if r.Cmp(b) >= 0 {
		t.Fatalf("remainder %s not < divisor %s", r.String(), b.String())
	}
}

func TestDivModByZero(t *testing.T) {
	_, _, err := mustNatural(t, "5").DivMod(Zero())
	if !bigerr.HasKind(err, bigerr.DivisionByZero) {
		t.Fatalf("div by zero = %v, want DivisionByZero", err)
	}
}

func TestDivModSmallerThanDivisor(t *testing.T) {
	q, r, err := mustNatural(t, "3").DivMod(mustNatural(t, "10"))
	if err != nil {
		t.Fatal(err)
	}
	if !q.IsZero() || r.Cmp(mustNatural(t, "3")) != 0 {
		t.Fatalf("3 / 10 = (%s, %s), want (0, 3)", q.String(), r.String())
	}
}

func TestShlShr(t *testing.T) {
	a := mustNatural(t, "12345")
	shifted, err := a.Shl(2)
	if err != nil {
		t.Fatal(err)
	}
	want := a.Mul(mustNatural(t, "1000000000000000000")) // Base^2
	if shifted.Cmp(want) != 0 {
		t.Fatalf("a<<2 = %s, want %s", shifted.String(), want.String())
	}
	back := shifted.Shr(2)
	if back.Cmp(a) != 0 {
		t.Fatalf("(a<<2)>>2 = %s, want %s", back.String(), a.String())
	}
}

func TestShrPastLengthNullifies(t *testing.T) {
	a := mustNatural(t, "12345")
	if got := a.Shr(5); !got.IsZero() {
		t.Fatalf("a >> (len+) = %s, want 0", got.String())
	}
}

func TestIsEven(t *testing.T) {
	if !mustNatural(t, "4").IsEven() {
		t.Error("4 should be even")
	}
	if mustNatural(t, "5").IsEven() {
		t.Error("5 should be odd")
	}
}

func TestUint64RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 999999999, 1000000000, 18446744073709551615} {
		if got := FromUint64(v).Uint64(); got != v {
			t.Errorf("FromUint64(%d).Uint64() = %d", v, got)
		}
	}
}
