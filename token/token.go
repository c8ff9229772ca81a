// Copyright 2026 The Bigmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines the fixed token table for the expression
// language: the operator and parenthesis symbols the scanner recognizes,
// plus the IntegerLiteral and sentinel kinds the parser folds into
// postfix. A small integer Type plus a Token{Type, Text} pair, trimmed to
// a fixed, closed symbol set rather than an open operator vocabulary.
package token

// Type identifies the kind of a Token.
type Type int

const (
	// None is the sentinel type returned once the input is exhausted, or
	// when no token table entry matches the remaining input (in which
	// case the Token's Text carries the unmatched prefix).
	None Type = iota
	IntegerLiteral
	Add
	Sub
	Mul
	Div
	Pow
	Mod
	Gcd
	Lcm
	Shl
	Shr
	LParen
	RParen
)

var names = map[Type]string{
	None:           "none",
	IntegerLiteral: "integer literal",
	Add:            "+",
	Sub:            "-",
	Mul:            "*",
	Div:            "/",
	Pow:            "^",
	Mod:            "mod",
	Gcd:            "gcd",
	Lcm:            "lcm",
	Shl:            "<<",
	Shr:            ">>",
	LParen:         "(",
	RParen:         ")",
}

// String returns the canonical spelling of t.
func (t Type) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return "unknown"
}

// Token is a single lexical unit: its Type and the exact source text it
// was scanned from (the literal digits, for an IntegerLiteral; the
// unmatched prefix, for a None produced by a scan failure).
type Token struct {
	Type Type
	Text string
}

// Entry pairs a fixed token's literal spelling with its Type.
type Entry struct {
	Text string
	Type Type
}

// table lists every fixed symbol. The scanner checks every entry and
// keeps the longest one prefixing the input (a greedy longest-match), so
// this slice's order does not matter.
var table = []Entry{
	{"<<", Shl},
	{">>", Shr},
	{"gcd", Gcd},
	{"lcm", Lcm},
	{"mod", Mod},
	{"+", Add},
	{"-", Sub},
	{"*", Mul},
	{"/", Div},
	{"^", Pow},
	{"(", LParen},
	{")", RParen},
}

// Precedence returns the binding strength of a binary operator type,
// higher binds tighter. Non-operator types return 0.
func Precedence(t Type) int {
	switch t {
	case Add, Sub:
		return 1
	case Mul, Div, Mod:
		return 2
	case Shl, Shr, Pow:
		return 3
	case Gcd, Lcm:
		return 4
	default:
		return 0
	}
}

// IsBinaryOperator reports whether t is one of the binary operator types
// the shunting-yard algorithm and evaluator dispatch on.
func IsBinaryOperator(t Type) bool {
	switch t {
	case Add, Sub, Mul, Div, Mod, Gcd, Lcm, Shl, Shr, Pow:
		return true
	default:
		return false
	}
}

// Table returns a defensive copy of the fixed symbol table.
func Table() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}
