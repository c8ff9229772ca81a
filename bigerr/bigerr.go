// Copyright 2026 The Bigmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigerr defines the error kinds surfaced by the natural, integer,
// rational, polynomial, and parser packages: a single lightweight error
// type with a formatting constructor, carrying a Kind so callers can
// distinguish error classes with errors.Is instead of string matching.
package bigerr

import "fmt"

// Kind classifies an Error. The zero Kind is never produced by this package.
type Kind int

const (
	_ Kind = iota

	// InvalidInput: empty or non-digit string passed as a Natural literal,
	// or a digit >= B in a raw digit sequence.
	InvalidInput
	// Underflow: Natural subtraction where the minuend is less than the subtrahend.
	Underflow
	// DivisionByZero: Natural or Integer divide or modulo by zero.
	DivisionByZero
	// DivisionByZeroPolynomial: polynomial division where the divisor is the zero polynomial.
	DivisionByZeroPolynomial
	// DenominatorIsZero: Rational constructed with a zero denominator, or divided by zero.
	DenominatorIsZero
	// DegreeOutOfRange: polynomial coefficient access beyond the polynomial's degree.
	DegreeOutOfRange
	// LengthError: a left shift that would overflow the size type.
	LengthError
	// BadToken: the tokenizer could not match the remaining expression prefix.
	BadToken
	// EmptyExpression: the evaluator finished with an empty value stack.
	EmptyExpression
	// BadShiftCount: a shift exponent did not reduce to a non-negative in-range integer.
	BadShiftCount
	// OverflowInConversion: a signed-scalar-to-Natural conversion could not
	// represent the value's absolute value. natural.FromInt64 widens the
	// minimum int64 through uint64 instead, so no package here returns it.
	OverflowInConversion
)

var kindNames = map[Kind]string{
	InvalidInput:             "invalid input",
	Underflow:                "underflow",
	DivisionByZero:           "division by zero",
	DivisionByZeroPolynomial: "division by zero polynomial",
	DenominatorIsZero:        "denominator is zero",
	DegreeOutOfRange:         "degree out of range",
	LengthError:              "length error",
	BadToken:                 "bad token",
	EmptyExpression:          "empty expression",
	BadShiftCount:            "bad shift count",
	OverflowInConversion:     "overflow in conversion",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown error kind"
}

// Error is the concrete error type returned by this module's packages.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Is reports whether target is a *Error with the same Kind, so callers can
// write errors.Is(err, bigerr.New(bigerr.DivisionByZero, "")) — more
// conventionally, they compare with the Kind directly via HasKind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New builds an *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf("%s: %s", kind, fmt.Sprintf(format, args...))}
}

// HasKind reports whether err is (or wraps) a *Error of the given kind.
func HasKind(err error, kind Kind) bool {
	var e *Error
	if !asError(err, &e) {
		return false
	}
	return e.Kind == kind
}

func asError(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = unwrapper.Unwrap()
	}
	return false
}
