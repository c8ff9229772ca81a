// Copyright 2026 The Bigmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integer implements Integer, a signed arbitrary-precision integer
// built from a sign bit and a natural.Natural magnitude. FromNatural makes
// the promotion from an unsigned magnitude to a signed value explicit
// rather than implicit.
package integer

import (
	"github.com/jqnfxa/bigmath/bigerr"
	"github.com/jqnfxa/bigmath/natural"
)

// Integer is a signed arbitrary-precision integer. The zero value is not
// valid; use Zero() or one of the From* constructors.
type Integer struct {
	negative bool
	abs      natural.Natural
}

// Zero returns the canonical Integer 0.
func Zero() Integer {
	return Integer{abs: natural.Zero()}
}

// One returns the canonical Integer 1.
func One() Integer {
	return Integer{abs: natural.One()}
}

// FromNatural builds an Integer from a magnitude and an explicit sign. Zero
// magnitude always normalizes to a false sign bit.
func FromNatural(abs natural.Natural, negative bool) Integer {
	return normalize(negative, abs)
}

// FromInt64 builds an Integer from a signed scalar.
func FromInt64(n int64) Integer {
	return normalize(n < 0, natural.FromInt64(n))
}

// FromString parses an optional leading '-' followed by a natural.Natural
// decimal literal. "-0" is accepted and normalizes to the canonical zero.
func FromString(s string) (Integer, error) {
	negative := false
	if len(s) > 0 && s[0] == '-' {
		negative = true
		s = s[1:]
	}
	abs, err := natural.FromString(s)
	if err != nil {
		return Integer{}, err
	}
	return normalize(negative, abs), nil
}

func normalize(negative bool, abs natural.Natural) Integer {
	if abs.IsZero() {
		negative = false
	}
	return Integer{negative: negative, abs: abs}
}

// IsZero reports whether n is zero.
func (n Integer) IsZero() bool {
	return n.abs.IsZero()
}

// IsNegative reports whether n is strictly negative.
func (n Integer) IsNegative() bool {
	return n.negative
}

// Sign returns -1, 0, or 1.
func (n Integer) Sign() int {
	if n.abs.IsZero() {
		return 0
	}
	if n.negative {
		return -1
	}
	return 1
}

// Abs returns the magnitude of n as a Natural.
func (n Integer) Abs() natural.Natural {
	return n.abs
}

// Neg returns -n. Zero is unaffected.
func (n Integer) Neg() Integer {
	return normalize(!n.negative, n.abs)
}

// Cmp returns -1, 0, or 1 as n is less than, equal to, or greater than other.
func (n Integer) Cmp(other Integer) int {
	if n.negative != other.negative {
		if n.negative {
			return -1
		}
		return 1
	}
	cmp := n.abs.Cmp(other.abs)
	if n.negative {
		return -cmp
	}
	return cmp
}

// combine is the additive combinator shared by Add and Sub: sameSignAdds
// selects whether operands of equal sign should have their magnitudes
// added (true, as for Add) or subtracted (false, as for Sub, which treats
// Sub as Add against a sign-flipped rhs).
func combine(a, b Integer, sameSignAdds bool) Integer {
	same := a.negative == b.negative
	if same == sameSignAdds {
		return normalize(a.negative, a.abs.Add(b.abs))
	}
	cmp := a.abs.Cmp(b.abs)
	sign := a.negative
	if cmp < 0 {
		sign = !sign
	}
	var abs natural.Natural
	var err error
	if cmp >= 0 {
		abs, err = a.abs.Sub(b.abs)
	} else {
		abs, err = b.abs.Sub(a.abs)
	}
	if err != nil {
		// a.abs and b.abs were just compared, so the larger minus the
		// smaller can never underflow.
		panic("integer: unreachable underflow in combine: " + err.Error())
	}
	return normalize(sign, abs)
}

// Add returns n + other.
func (n Integer) Add(other Integer) Integer {
	return combine(n, other, true)
}

// Sub returns n - other.
func (n Integer) Sub(other Integer) Integer {
	return combine(n, other, false)
}

// Mul returns n * other.
func (n Integer) Mul(other Integer) Integer {
	return normalize(n.negative != other.negative, n.abs.Mul(other.abs))
}

// DivMod performs truncated division: the quotient rounds toward zero and
// the remainder carries the dividend's sign (Go/C semantics), so
// (-2222) % 3 = -2. Floored division, where the remainder instead carries
// the divisor's sign, is an equally defensible convention; this package
// picks truncated and holds to it everywhere a remainder is produced. It
// fails with DivisionByZero if other is zero.
func (n Integer) DivMod(other Integer) (Integer, Integer, error) {
	if other.IsZero() {
		return Integer{}, Integer{}, bigerr.New(bigerr.DivisionByZero, "division by zero")
	}
	q, r, err := n.abs.DivMod(other.abs)
	if err != nil {
		return Integer{}, Integer{}, err
	}
	quotient := normalize(n.negative != other.negative, q)
	remainder := normalize(n.negative, r)
	return quotient, remainder, nil
}

// Div returns the truncated quotient of n / other.
func (n Integer) Div(other Integer) (Integer, error) {
	q, _, err := n.DivMod(other)
	return q, err
}

// Mod returns the remainder of n / other, carrying the dividend's sign; see DivMod.
func (n Integer) Mod(other Integer) (Integer, error) {
	_, r, err := n.DivMod(other)
	return r, err
}

// Shl returns n << k, delegating the magnitude shift to Natural.
func (n Integer) Shl(k int) (Integer, error) {
	abs, err := n.abs.Shl(k)
	if err != nil {
		return Integer{}, err
	}
	return normalize(n.negative, abs), nil
}

// Shr returns n >> k, delegating the magnitude shift to Natural and
// re-normalizing the sign (a zero magnitude forces a positive sign).
func (n Integer) Shr(k int) Integer {
	return normalize(n.negative, n.abs.Shr(k))
}

// One returns the multiplicative identity, for use by numeric.Pow. It does
// not read receiver state.
func (Integer) One() Integer {
	return One()
}

// Inverse reports whether n is its own multiplicative inverse (1 and -1
// are, in the integers); any other value fails, since Integer has no
// general multiplicative inverse. Present so numeric.Pow can treat every
// domain uniformly.
func (n Integer) Inverse() (Integer, error) {
	if n.abs.Cmp(natural.One()) == 0 {
		return n, nil
	}
	return Integer{}, bigerr.New(bigerr.DivisionByZero, "integer %s has no multiplicative inverse", n.String())
}

// String prints an optional leading '-' followed by the magnitude. "-0" is
// never produced since zero always normalizes to a positive sign.
func (n Integer) String() string {
	if n.negative {
		return "-" + n.abs.String()
	}
	return n.abs.String()
}
