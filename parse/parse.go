// Copyright 2026 The Bigmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse turns a token stream into postfix order (shunting-yard)
// and folds postfix into a value of a chosen numeric domain. There is no
// variable assignment, no user-defined operators, and no execution
// context carrying state across statements: every call evaluates one
// self-contained expression and returns a value, nothing more.
package parse

import (
	"github.com/jqnfxa/bigmath/bigerr"
	"github.com/jqnfxa/bigmath/integer"
	"github.com/jqnfxa/bigmath/natural"
	"github.com/jqnfxa/bigmath/scan"
	"github.com/jqnfxa/bigmath/token"
)

// ToPostfix drains a Scanner into postfix (reverse Polish) order via
// shunting-yard: integer literals and left parens push directly; right
// parens and binary operators pop from an operator stack
// first (right paren discards the matching left paren; an incoming
// binary operator pops stack operators whose precedence is at least its
// own), then the incoming binary operator itself is pushed. At
// end-of-input the remaining operator stack drains to the output.
// Unmatched parentheses are tolerated here; arity mismatches they cause
// surface as evaluation errors instead.
func ToPostfix(s *scan.Scanner) []token.Token {
	var output []token.Token
	var operators []token.Token

	for {
		tok := s.Next()
		if tok.Type == token.None && tok.Text == "" {
			break
		}

		switch {
		case tok.Type == token.IntegerLiteral:
			output = append(output, tok)

		case tok.Type == token.LParen:
			operators = append(operators, tok)

		case tok.Type == token.RParen || token.IsBinaryOperator(tok.Type):
			isRParen := tok.Type == token.RParen
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				topIsLParen := top.Type == token.LParen
				if isRParen && !topIsLParen || (!topIsLParen && token.IsBinaryOperator(top.Type) && token.Precedence(top.Type) >= token.Precedence(tok.Type)) {
					operators = operators[:len(operators)-1]
					output = append(output, top)
					continue
				}
				if isRParen && topIsLParen {
					operators = operators[:len(operators)-1]
				}
				break
			}
			if token.IsBinaryOperator(tok.Type) {
				operators = append(operators, tok)
			}

		default:
			// tok.Type == token.None with non-empty Text: an unmatched
			// prefix. Surface it in the output stream so Evaluate can
			// report BadToken at the point it was encountered.
			output = append(output, tok)
		}
	}

	for i := len(operators) - 1; i >= 0; i-- {
		output = append(output, operators[i])
	}
	return output
}

// Domain is the capability set a numeric type needs to back the
// expression evaluator: construction from a parsed Natural literal, the
// arithmetic and shift operators, and the pieces Pow/Shl/Shr/Gcd/Lcm need
// to reach down to an integral magnitude. Implemented by the
// NaturalDomain, IntegerDomain, and RationalDomain adapters below rather
// than as methods on Natural/Integer/Rational themselves, since their
// native method sets differ (Natural has no Neg, Rational's division
// differs from Integer's, etc.); the adapter is the uniform seam.
type Domain[T any] interface {
	FromNatural(natural.Natural) T
	Neg(T) (T, error)
	Add(a, b T) (T, error)
	Sub(a, b T) (T, error)
	Mul(a, b T) (T, error)
	Div(a, b T) (T, error)
	Mod(a, b T) (T, error)
	Pow(base T, exponent integer.Integer) (T, error)
	Shl(a T, k int) (T, error)
	Shr(a T, k int) (T, error)
	Gcd(a, b T) (T, error)
	Lcm(a, b T) (T, error)
	// Numerator extracts the Integer used as the exponent of Pow and,
	// narrowed, the shift count of Shl/Shr.
	Numerator(T) integer.Integer
}

// Evaluate folds a postfix token stream into a single value of domain D:
// each IntegerLiteral parses to a Natural and promotes into D; each
// binary operator pops its operands (with the single-value
// unary-minus convenience for Sub) and applies the domain's operation.
// It fails with BadToken if the stream carries an unmatched scan prefix,
// with EmptyExpression if the final value stack is empty, and with
// whatever error the domain operation itself reports (DivisionByZero,
// BadShiftCount, ...).
func Evaluate[T any](dom Domain[T], postfix []token.Token) (T, error) {
	var stack []T
	var zero T

	pop := func() T {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top
	}

	for _, tok := range postfix {
		switch {
		case tok.Type == token.IntegerLiteral:
			n, err := natural.FromString(tok.Text)
			if err != nil {
				return zero, err
			}
			stack = append(stack, dom.FromNatural(n))

		case tok.Type == token.None:
			return zero, bigerr.New(bigerr.BadToken, "could not tokenize %q", tok.Text)

		case token.IsBinaryOperator(tok.Type):
			if len(stack) == 0 {
				return zero, bigerr.New(bigerr.InvalidInput, "operator %s has no operands", tok.Type)
			}
			rhs := pop()

			if len(stack) == 0 {
				if tok.Type != token.Sub {
					return zero, bigerr.New(bigerr.InvalidInput, "operator %s needs two operands", tok.Type)
				}
				v, err := dom.Neg(rhs)
				if err != nil {
					return zero, err
				}
				stack = append(stack, v)
				continue
			}

			lhs := pop()
			v, err := apply(dom, tok.Type, lhs, rhs)
			if err != nil {
				return zero, err
			}
			stack = append(stack, v)

		default:
			return zero, bigerr.New(bigerr.InvalidInput, "unexpected token %s", tok.Type)
		}
	}

	if len(stack) == 0 {
		return zero, bigerr.New(bigerr.EmptyExpression, "expression evaluated to no value")
	}
	return stack[len(stack)-1], nil
}

func apply[T any](dom Domain[T], op token.Type, lhs, rhs T) (T, error) {
	switch op {
	case token.Add:
		return dom.Add(lhs, rhs)
	case token.Sub:
		return dom.Sub(lhs, rhs)
	case token.Mul:
		return dom.Mul(lhs, rhs)
	case token.Div:
		return dom.Div(lhs, rhs)
	case token.Mod:
		return dom.Mod(lhs, rhs)
	case token.Gcd:
		return dom.Gcd(lhs, rhs)
	case token.Lcm:
		return dom.Lcm(lhs, rhs)
	case token.Pow:
		return dom.Pow(lhs, dom.Numerator(rhs))
	case token.Shl:
		k, err := shiftCount(dom, rhs)
		if err != nil {
			return lhs, err
		}
		return dom.Shl(lhs, k)
	case token.Shr:
		k, err := shiftCount(dom, rhs)
		if err != nil {
			return lhs, err
		}
		return dom.Shr(lhs, k)
	default:
		var zero T
		return zero, bigerr.New(bigerr.InvalidInput, "unknown operator %s", op)
	}
}

// shiftCount narrows an operand's numerator to a non-negative int shift
// count. It fails with BadShiftCount if the value is negative or does
// not fit in an int.
func shiftCount[T any](dom Domain[T], v T) (int, error) {
	n := dom.Numerator(v)
	if n.IsNegative() {
		return 0, bigerr.New(bigerr.BadShiftCount, "shift count %s is negative", n.String())
	}
	digits := n.Abs().Digits()
	if len(digits) > 1 {
		return 0, bigerr.New(bigerr.BadShiftCount, "shift count %s does not fit in an int", n.String())
	}
	return int(digits[0]), nil
}
