// Copyright 2026 The Bigmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package polyparse parses the polynomial text form: terms like
// "3*x^2 - x + 4", with no outer parentheses. Coefficient and degree
// substrings are evaluated with the same expression evaluator package
// parse already provides, relying on its unary-minus convenience so a
// signed coefficient substring like "-3" is evaluated directly; only the
// bare sign of a term like "-x" is mapped to "-1" by hand first.
package polyparse

import (
	"strings"

	"github.com/jqnfxa/bigmath/bigerr"
	"github.com/jqnfxa/bigmath/natural"
	"github.com/jqnfxa/bigmath/parse"
	"github.com/jqnfxa/bigmath/polynomial"
	"github.com/jqnfxa/bigmath/rational"
	"github.com/jqnfxa/bigmath/scan"
)

// ParseLenient parses s into a Polynomial, silently dropping any term
// that fails to parse. Use ParseStrict to instead surface the first
// per-term failure.
func ParseLenient(s string) polynomial.Polynomial {
	coefficients := map[int]rational.Rational{}
	for _, term := range splitTerms(s) {
		degree, coefficient, err := parseTerm(term)
		if err != nil {
			continue
		}
		accumulate(coefficients, degree, coefficient)
	}
	return polynomial.FromDegreeMap(coefficients)
}

// ParseStrict parses s into a Polynomial, failing on the first term that
// cannot be parsed instead of silently dropping it.
func ParseStrict(s string) (polynomial.Polynomial, error) {
	coefficients := map[int]rational.Rational{}
	for _, term := range splitTerms(s) {
		if term == "" {
			// The empty chunk splitTerms leaves before a leading '-'.
			continue
		}
		degree, coefficient, err := parseTerm(term)
		if err != nil {
			return polynomial.Polynomial{}, err
		}
		accumulate(coefficients, degree, coefficient)
	}
	return polynomial.FromDegreeMap(coefficients), nil
}

// accumulate adds coefficient into coefficients[degree], treating a
// missing entry as rational.Zero() rather than Go's struct zero value
// (which is not a valid Rational).
func accumulate(coefficients map[int]rational.Rational, degree int, coefficient rational.Rational) {
	cur, ok := coefficients[degree]
	if !ok {
		cur = rational.Zero()
	}
	coefficients[degree] = cur.Add(coefficient)
}

// splitTerms inserts a '+' before every '-' so a later split on '+'
// separates terms cleanly, strips blanks, then splits.
func splitTerms(s string) []string {
	var b strings.Builder
	for _, r := range s {
		if r == '-' {
			b.WriteByte('+')
		}
		if !isBlank(r) {
			b.WriteRune(r)
		}
	}
	return strings.Split(b.String(), "+")
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

// parseTerm parses one term against the grammar `[coefficient [*]]
// [x [^ degree]]`. An absent coefficient defaults to 1 (-1 if the term
// begins with '-'); an absent x means degree 0; x alone means degree 1.
func parseTerm(term string) (int, rational.Rational, error) {
	if term == "" {
		return 0, rational.Rational{}, bigerr.New(bigerr.InvalidInput, "empty polynomial term")
	}

	xIdx := strings.IndexByte(term, 'x')
	mulIdx := strings.IndexByte(term, '*')
	var powIdx, degreeStart int
	havePow := false
	if xIdx >= 0 {
		if i := strings.IndexByte(term[xIdx+1:], '^'); i >= 0 {
			powIdx = xIdx + 1 + i
			degreeStart = powIdx + 1
			havePow = true
		}
	}

	if mulIdx >= 0 && xIdx >= 0 && xIdx < mulIdx {
		return 0, rational.Rational{}, bigerr.New(bigerr.InvalidInput, "unexpected '*' after 'x' in term %q", term)
	}
	if xIdx < 0 && !hasDigit(term) {
		return 0, rational.Rational{}, bigerr.New(bigerr.InvalidInput, "invalid polynomial term %q", term)
	}
	if mulIdx == 0 {
		return 0, rational.Rational{}, bigerr.New(bigerr.InvalidInput, "term %q starts with '*'", term)
	}
	if mulIdx > 0 && xIdx < 0 {
		return 0, rational.Rational{}, bigerr.New(bigerr.InvalidInput, "term %q has '*' with no 'x'", term)
	}
	if havePow && degreeStart == len(term) {
		return 0, rational.Rational{}, bigerr.New(bigerr.InvalidInput, "term %q has '^' with no following degree", term)
	}

	coeffEnd := len(term)
	switch {
	case mulIdx >= 0:
		coeffEnd = mulIdx
	case xIdx >= 0:
		coeffEnd = xIdx
	}
	coefficientText := term[:coeffEnd]
	switch coefficientText {
	case "":
		coefficientText = "1"
	case "-":
		// A bare sign with x immediately following ("-x", "-x^2"): the
		// coefficient is -1, not the unparseable expression "-".
		coefficientText = "-1"
	}
	coefficient, err := evalRational(coefficientText)
	if err != nil {
		return 0, rational.Rational{}, err
	}

	degree := 0
	switch {
	case xIdx < 0:
		degree = 0
	case havePow:
		n, err := evalNatural(term[degreeStart:])
		if err != nil {
			return 0, rational.Rational{}, err
		}
		digits := n.Digits()
		if len(digits) > 1 {
			return 0, rational.Rational{}, bigerr.New(bigerr.DegreeOutOfRange, "degree %s too large", n.String())
		}
		degree = int(digits[0])
	default:
		degree = 1
	}

	return degree, coefficient, nil
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func evalRational(s string) (rational.Rational, error) {
	postfix := parse.ToPostfix(scan.New(s))
	return parse.Evaluate[rational.Rational](parse.RationalDomain{}, postfix)
}

func evalNatural(s string) (natural.Natural, error) {
	postfix := parse.ToPostfix(scan.New(s))
	return parse.Evaluate[natural.Natural](parse.NaturalDomain{}, postfix)
}
