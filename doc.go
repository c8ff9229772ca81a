// Copyright 2026 The Bigmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*

Bigmath is an arbitrary-precision computer-algebra kernel: exact
arithmetic over four nested numeric domains — natural numbers, signed
integers, rationals, and univariate polynomials with rational
coefficients — plus an infix expression parser/evaluator and a
polynomial text parser that both drive them.

The command reads one domain selector (N, Z, Q, or P) and then one
input line, repeated until EOF:

	domain (N/Z/Q/P)> Q
	> (2 + 3) * (12 gcd 18) ^ 2
	180

For N, Z, and Q the line is an infix expression evaluated in that
domain, using the shared operator set `+ - * / ^ mod gcd lcm << >> ( )`.
For P the line names a polynomial operation (der, gcd, lcm, + or add,
- or sub, * or mul, / or div, % or mod) followed by one or two polynomials in the
`3*x^2 - x + 4` textual form, separated by ';' for binary operations:

	domain (N/Z/Q/P)> P
	> gcd x^8 + x^6 - 3*x^4 - 3*x^3 + 8*x^2 + 2*x - 5 ; 3*x^6 + 5*x^4 - 4*x^2 - 9*x + 21
	-1288744821/543589225

Errors are printed as "error: <message>"; the process exits 0
regardless, treating malformed input as a recoverable diagnostic rather
than a fatal condition.

*/
package main
