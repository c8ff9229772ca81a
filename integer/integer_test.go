// Copyright 2026 The Bigmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integer

import (
	"testing"

	"github.com/jqnfxa/bigmath/bigerr"
)

func mustInteger(t *testing.T, s string) Integer {
	t.Helper()
	n, err := FromString(s)
	if err != nil {
		t.Fatalf("FromString(%q): %v", s, err)
	}
	return n
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "56885154", "-56885154"} {
		if got := mustInteger(t, s).String(); got != s {
			t.Errorf("FromString(%q).String() = %q", s, got)
		}
	}
}

func TestNegativeZeroNormalizes(t *testing.T) {
	n := mustInteger(t, "0").Neg()
	if n.String() != "0" {
		t.Errorf("-0 should print as 0, got %q", n.String())
	}
	if n.IsNegative() {
		t.Error("-0 should not be negative")
	}
}

func TestAddSub(t *testing.T) {
	a := mustInteger(t, "5")
	negB := mustInteger(t, "-3")
	if got := a.Add(negB).String(); got != "2" {
		t.Errorf("5 + -3 = %s, want 2", got)
	}
	if got := a.Sub(negB).String(); got != "8" {
		t.Errorf("5 - -3 = %s, want 8", got)
	}
	if got := negB.Add(negB).String(); got != "-6" {
		t.Errorf("-3 + -3 = %s, want -6", got)
	}
}

func TestAddIsInverseOfNeg(t *testing.T) {
	a := mustInteger(t, "123456789")
	if sum := a.Add(a.Neg()); !sum.IsZero() {
		t.Errorf("a + (-a) = %s, want 0", sum.String())
	}
}

func TestMulSign(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"3", "4", "12"},
		{"-3", "4", "-12"},
		{"3", "-4", "-12"},
		{"-3", "-4", "12"},
	}
	for _, c := range cases {
		got := mustInteger(t, c.a).Mul(mustInteger(t, c.b)).String()
		if got != c.want {
			t.Errorf("%s * %s = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}

func TestTruncatedDivision(t *testing.T) {
	q, err := mustInteger(t, "-56885154").Div(mustInteger(t, "7"))
	if err != nil {
		t.Fatal(err)
	}
	if q.String() != "-8126450" {
		t.Errorf("-56885154 / 7 = %s, want -8126450", q.String())
	}
}

// TestModSignMatchesDividend pins down the remainder sign convention: it
// always carries the dividend's sign (truncated-division style), never
// forced non-negative.
func TestModSignMatchesDividend(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"15", "7", "1"},
		{"18", "7", "4"},
		{"-16", "-7", "-2"},
		{"16", "-7", "2"},
		{"-16", "7", "-2"},
		{"-12", "7", "-5"},
		{"13", "-7", "6"},
		{"-21", "-7", "0"},
		{"21", "-7", "0"},
		{"-21", "7", "0"},
		{"-2222", "3", "-2"},
	}
	for _, c := range cases {
		r, err := mustInteger(t, c.a).Mod(mustInteger(t, c.b))
		if err != nil {
			t.Fatal(err)
		}
		if r.String() != c.want {
			t.Errorf("%s %% %s = %s, want %s", c.a, c.b, r.String(), c.want)
		}
	}
}

func TestDivModByZero(t *testing.T) {
	_, _, err := mustInteger(t, "5").DivMod(Zero())
	if !bigerr.HasKind(err, bigerr.DivisionByZero) {
		t.Fatalf("div by zero = %v, want DivisionByZero", err)
	}
}

func TestCmp(t *testing.T) {
	if mustInteger(t, "-5").Cmp(mustInteger(t, "3")) >= 0 {
		t.Error("-5 should be < 3")
	}
	if mustInteger(t, "-5").Cmp(mustInteger(t, "-3")) >= 0 {
		t.Error("-5 should be < -3")
	}
	if mustInteger(t, "3").Cmp(mustInteger(t, "3")) != 0 {
		t.Error("3 should equal 3")
	}
}
