// Copyright 2026 The Bigmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan tokenizes bigmath expressions.
//
// Scanner.Next is a synchronous pull method rather than a background
// goroutine streaming tokens over a channel: the input is one
// already-read expression line, not an interactive multi-line stream, so
// there is no reason to pay for concurrency the caller never needs. The
// whole input is scanned in place by index.
package scan

import (
	"strings"
	"unicode"

	"github.com/jqnfxa/bigmath/token"
)

// Scanner tokenizes a fixed input string, one call to Next per token.
type Scanner struct {
	input string
	pos   int
}

// New returns a Scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{input: input}
}

// Next skips leading blanks and returns the next token: an
// IntegerLiteral for a run of decimal digits, the longest token-table
// entry prefixing what remains, token.None at end-of-input, or a
// token.None carrying the unmatched remainder as Text when nothing in
// the table matches (surfaced by the caller as BadToken).
func (s *Scanner) Next() token.Token {
	for s.pos < len(s.input) && unicode.IsSpace(rune(s.input[s.pos])) {
		s.pos++
	}
	if s.pos >= len(s.input) {
		return token.Token{Type: token.None}
	}

	remaining := s.input[s.pos:]

	if isDigit(remaining[0]) {
		end := 0
		for end < len(remaining) && isDigit(remaining[end]) {
			end++
		}
		text := remaining[:end]
		s.pos += end
		return token.Token{Type: token.IntegerLiteral, Text: text}
	}

	if entry, ok := longestMatch(remaining); ok {
		s.pos += len(entry.Text)
		return token.Token{Type: entry.Type, Text: entry.Text}
	}

	unmatched := s.input[s.pos:]
	s.pos = len(s.input)
	return token.Token{Type: token.None, Text: unmatched}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// longestMatch tries every fixed table entry and keeps the longest one
// prefixing remaining.
func longestMatch(remaining string) (token.Entry, bool) {
	best := token.Entry{}
	found := false
	for _, e := range token.Table() {
		if len(e.Text) <= len(best.Text) {
			continue
		}
		if strings.HasPrefix(remaining, e.Text) {
			best = e
			found = true
		}
	}
	return best, found
}
