// Copyright 2026 The Bigmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bigmath is a line-oriented front end: a domain selector
// followed by one input line, repeated until EOF. Each line is
// evaluated independently, stateless, against the domain named by the
// selector that preceded it; there is no variable storage or persisted
// state carried between lines.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jqnfxa/bigmath/integer"
	"github.com/jqnfxa/bigmath/natural"
	"github.com/jqnfxa/bigmath/numeric"
	"github.com/jqnfxa/bigmath/parse"
	"github.com/jqnfxa/bigmath/polynomial"
	"github.com/jqnfxa/bigmath/polyparse"
	"github.com/jqnfxa/bigmath/rational"
	"github.com/jqnfxa/bigmath/scan"
)

func main() {
	run(os.Stdin, os.Stdout)
}

// run reads domain-selector/expression line pairs from r until EOF,
// writing results (or "error: <message>" diagnostics) to w. The process
// always exits 0; a malformed line is a recoverable diagnostic, not a
// fatal condition.
func run(r io.Reader, w io.Writer) {
	in := bufio.NewScanner(r)
	in.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for {
		fmt.Fprint(w, "domain (N/Z/Q/P)> ")
		selector, ok := readLine(in)
		if !ok {
			return
		}
		selector = strings.TrimSpace(selector)
		if selector == "" {
			continue
		}

		fmt.Fprint(w, "> ")
		line, ok := readLine(in)
		if !ok {
			return
		}

		result, err := evalLine(selector, line)
		if err != nil {
			fmt.Fprintf(w, "error: %s\n", err)
			continue
		}
		fmt.Fprintln(w, result)
	}
}

func readLine(s *bufio.Scanner) (string, bool) {
	if !s.Scan() {
		return "", false
	}
	return s.Text(), true
}

// evalLine dispatches a single input line to the domain named by
// selector. N, Z, and Q run the shared expression evaluator over the
// corresponding Domain adapter; P runs the polynomial operation named by
// the line's first word against the polynomial(s) that follow it,
// separated by ';'.
func evalLine(selector, line string) (string, error) {
	switch strings.ToUpper(selector) {
	case "N":
		return evalExpression[natural.Natural](parse.NaturalDomain{}, line)
	case "Z":
		return evalExpression[integer.Integer](parse.IntegerDomain{}, line)
	case "Q":
		return evalExpression[rational.Rational](parse.RationalDomain{}, line)
	case "P":
		return evalPolynomial(line)
	default:
		return "", fmt.Errorf("unknown domain selector %q (want N, Z, Q, or P)", selector)
	}
}

type stringer interface {
	String() string
}

func evalExpression[T stringer](dom parse.Domain[T], line string) (string, error) {
	postfix := parse.ToPostfix(scan.New(line))
	v, err := parse.Evaluate[T](dom, postfix)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// evalPolynomial implements the P domain's line grammar:
// "<op> <poly> [; <poly>]". der is unary; gcd, lcm, +/add, -/sub, */mul,
// //div, %/mod are binary.
func evalPolynomial(line string) (string, error) {
	op, rest, ok := cutWord(line)
	if !ok {
		return "", fmt.Errorf("missing polynomial operation")
	}

	operands := strings.SplitN(rest, ";", 2)
	lhs, err := polyparse.ParseStrict(strings.TrimSpace(operands[0]))
	if err != nil {
		return "", err
	}

	if op == "der" {
		return lhs.Derivative().String(), nil
	}

	if len(operands) != 2 {
		return "", fmt.Errorf("operation %q needs two polynomials separated by ';'", op)
	}
	rhs, err := polyparse.ParseStrict(strings.TrimSpace(operands[1]))
	if err != nil {
		return "", err
	}

	result, err := applyPolynomialOp(op, lhs, rhs)
	if err != nil {
		return "", err
	}
	return result.String(), nil
}

func applyPolynomialOp(op string, lhs, rhs polynomial.Polynomial) (polynomial.Polynomial, error) {
	switch op {
	case "gcd":
		return gcdPolynomial(lhs, rhs)
	case "lcm":
		return lcmPolynomial(lhs, rhs)
	case "+", "add":
		return lhs.Add(rhs), nil
	case "-", "sub":
		return lhs.Sub(rhs), nil
	case "*", "mul":
		return lhs.Mul(rhs), nil
	case "/", "div":
		return lhs.Div(rhs)
	case "%", "mod":
		return lhs.Mod(rhs)
	default:
		return polynomial.Polynomial{}, fmt.Errorf("unknown polynomial operation %q", op)
	}
}

func gcdPolynomial(a, b polynomial.Polynomial) (polynomial.Polynomial, error) {
	return numeric.GcdPolynomial[polynomial.Polynomial](a, b)
}

// lcmPolynomial follows the same a*b/gcd(a,b) identity numeric.Lcm uses
// for the Euclidean domains; polynomials have no EuclideanLike Mod
// operation whose zero-detection matches numeric.Lcm's generic
// implementation, so this re-derives it directly against GcdPolynomial.
func lcmPolynomial(a, b polynomial.Polynomial) (polynomial.Polynomial, error) {
	g, err := numeric.GcdPolynomial[polynomial.Polynomial](a, b)
	if err != nil {
		return polynomial.Polynomial{}, err
	}
	return a.Mul(b).Div(g)
}

func cutWord(s string) (word, rest string, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", false
	}
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, "", true
	}
	return s[:i], s[i+1:], true
}
