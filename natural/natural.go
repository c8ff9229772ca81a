// Copyright 2026 The Bigmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package natural implements Natural, an arbitrary-precision non-negative
// integer stored as little-endian digits in base B = 1e9, with schoolbook
// and Karatsuba multiplication and binary-search long division.
package natural

import (
	"strings"

	"github.com/jqnfxa/bigmath/bigerr"
	"github.com/jqnfxa/bigmath/container"
)

const (
	// Base is the radix of a digit: B = 10^9.
	Base = 1_000_000_000
	// DigitsPerCell is the number of decimal characters a single base-B digit prints as.
	DigitsPerCell = 9
	// KaratsubaThreshold is the per-operand digit count below which
	// multiplication uses the schoolbook algorithm instead of Karatsuba.
	KaratsubaThreshold = 32
)

// Natural is a non-negative arbitrary-precision integer. The zero value is
// not valid; use Zero() or one of the From* constructors.
type Natural struct {
	digits []uint32 // little-endian, canonical: no trailing zero digit unless the single digit 0.
}

// Zero returns the canonical zero Natural.
func Zero() Natural {
	return Natural{digits: []uint32{0}}
}

// One returns the canonical Natural 1.
func One() Natural {
	return Natural{digits: []uint32{1}}
}

// FromUint64 builds a Natural from an unsigned scalar by repeated base-B decomposition.
func FromUint64(n uint64) Natural {
	if n == 0 {
		return Zero()
	}
	var digits []uint32
	for n > 0 {
		digits = append(digits, uint32(n%Base))
		n /= Base
	}
	return Natural{digits: digits}
}

// FromInt64 builds a Natural from the absolute value of a signed scalar.
// The minimum int64 is widened through uint64 rather than raising
// OverflowInConversion.
func FromInt64(n int64) Natural {
	if n >= 0 {
		return FromUint64(uint64(n))
	}
	// Avoid overflow on math.MinInt64: negate in uint64 space.
	return FromUint64(uint64(-(n + 1)) + 1)
}

// FromString parses a decimal string; leading zeros are accepted and
// dropped. It fails with InvalidInput if the string is empty or contains
// a non-digit character.
func FromString(s string) (Natural, error) {
	if len(s) == 0 {
		return Natural{}, bigerr.New(bigerr.InvalidInput, "empty natural literal")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return Natural{}, bigerr.New(bigerr.InvalidInput, "non-digit character %q in natural literal %q", r, s)
		}
	}
	digitCount := (len(s) + DigitsPerCell - 1) / DigitsPerCell
	digits := make([]uint32, digitCount)
	end := len(s)
	for i := 0; i < digitCount; i++ {
		start := end - DigitsPerCell
		if start < 0 {
			start = 0
		}
		chunk := s[start:end]
		var v uint32
		for _, r := range chunk {
			v = v*10 + uint32(r-'0')
		}
		digits[i] = v
		end = start
	}
	return Natural{digits: trim(digits)}, nil
}

// FromDigits builds a Natural from a raw little-endian base-B digit
// sequence. It fails with InvalidInput if any digit is >= Base.
func FromDigits(raw []uint32) (Natural, error) {
	digits := make([]uint32, len(raw))
	for i, d := range raw {
		if d >= Base {
			return Natural{}, bigerr.New(bigerr.InvalidInput, "digit %d at index %d is >= base %d", d, i, Base)
		}
		digits[i] = d
	}
	return Natural{digits: trim(digits)}, nil
}

func trim(digits []uint32) []uint32 {
	return container.TrimTrailing(digits, 0, func(d uint32) bool { return d == 0 })
}

// IsZero reports whether n is the canonical zero.
func (n Natural) IsZero() bool {
	return len(n.digits) == 1 && n.digits[0] == 0
}

// IsEven reports whether n is even, by inspecting its least significant digit.
func (n Natural) IsEven() bool {
	return n.digits[0]%2 == 0
}

// Cmp returns -1, 0, or 1 as n is less than, equal to, or greater than other.
func (n Natural) Cmp(other Natural) int {
	if len(n.digits) != len(other.digits) {
		if len(n.digits) < len(other.digits) {
			return -1
		}
		return 1
	}
	for i := len(n.digits) - 1; i >= 0; i-- {
		if n.digits[i] != other.digits[i] {
			if n.digits[i] < other.digits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add returns n + other.
func (n Natural) Add(other Natural) Natural {
	maxLen := len(n.digits)
	if len(other.digits) > maxLen {
		maxLen = len(other.digits)
	}
	result := make([]uint32, maxLen+1)
	copy(result, n.digits)
	var carry uint64
	for i := 0; i < maxLen || carry != 0; i++ {
		var rhs uint64
		if i < len(other.digits) {
			rhs = uint64(other.digits[i])
		}
		sum := uint64(result[i]) + rhs + carry
		result[i] = uint32(sum % Base)
		carry = sum / Base
	}
	return Natural{digits: trim(result)}
}

// Sub returns n - other, failing with Underflow if other > n.
func (n Natural) Sub(other Natural) (Natural, error) {
	if other.Cmp(n) > 0 {
		return Natural{}, bigerr.New(bigerr.Underflow, "%s - %s underflows", n.String(), other.String())
	}
	result := make([]uint32, len(n.digits))
	copy(result, n.digits)
	var borrow int64
	for i := 0; i < len(other.digits); i++ {
		diff := int64(result[i]) - int64(other.digits[i]) - borrow
		if diff < 0 {
			diff += Base
			borrow = 1
		} else {
			borrow = 0
		}
		result[i] = uint32(diff)
	}
	for i := len(other.digits); borrow != 0 && i < len(result); i++ {
		diff := int64(result[i]) - borrow
		if diff < 0 {
			diff += Base
			borrow = 1
		} else {
			borrow = 0
		}
		result[i] = uint32(diff)
	}
	return Natural{digits: trim(result)}, nil
}

// Mul returns n * other, dispatching to schoolbook or Karatsuba multiplication.
func (n Natural) Mul(other Natural) Natural {
	if n.IsZero() || other.IsZero() {
		return Zero()
	}
	if isOne(n.digits) {
		return other
	}
	if isOne(other.digits) {
		return n
	}
	if len(n.digits) == 1 {
		return mulDigit(other.digits, n.digits[0])
	}
	if len(other.digits) == 1 {
		return mulDigit(n.digits, other.digits[0])
	}
	if len(n.digits) < KaratsubaThreshold || len(other.digits) < KaratsubaThreshold {
		return Natural{digits: trim(schoolbookMul(n.digits, other.digits))}
	}
	return Natural{digits: trim(karatsubaMul(n.digits, other.digits))}
}

func isOne(digits []uint32) bool {
	return len(digits) == 1 && digits[0] == 1
}

// mulDigit multiplies a digit vector by a single base-B digit via a carry chain.
func mulDigit(digits []uint32, d uint32) Natural {
	result := make([]uint32, len(digits)+1)
	var carry uint64
	for i, x := range digits {
		v := uint64(x)*uint64(d) + carry
		result[i] = uint32(v % Base)
		carry = v / Base
	}
	result[len(digits)] = uint32(carry)
	return Natural{digits: trim(result)}
}

func schoolbookMul(a, b []uint32) []uint32 {
	result := make([]uint64, len(a)+len(b))
	for i, ai := range a {
		var carry uint64
		for j, bj := range b {
			v := result[i+j] + uint64(ai)*uint64(bj) + carry
			result[i+j] = v % Base
			carry = v / Base
		}
		k := i + len(b)
		for carry != 0 {
			v := result[k] + carry
			result[k] = v % Base
			carry = v / Base
			k++
		}
	}
	out := make([]uint32, len(result))
	for i, v := range result {
		out[i] = uint32(v)
	}
	return out
}

// karatsubaMul implements the recursive Karatsuba split, falling back to
// schoolbook multiplication below KaratsubaThreshold.
func karatsubaMul(a, b []uint32) []uint32 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if len(a) < KaratsubaThreshold || len(b) < KaratsubaThreshold {
		return schoolbookMul(a, b)
	}
	half := n / 2

	aLo, aHi := splitAt(a, half)
	bLo, bHi := splitAt(b, half)

	z0 := trim(karatsubaMul(aLo, bLo))
	z2 := trim(karatsubaMul(aHi, bHi))

	aSum := addDigits(aLo, aHi)
	bSum := addDigits(bLo, bHi)
	z1 := karatsubaMul(aSum, bSum)
	z1 = subDigits(z1, z0)
	z1 = subDigits(z1, z2)

	result := make([]uint64, len(a)+len(b))
	addInto(result, z0, 0)
	addInto(result, z1, half)
	addInto(result, z2, 2*half)

	carry := uint64(0)
	out := make([]uint32, len(result))
	for i, v := range result {
		v += carry
		out[i] = uint32(v % Base)
		carry = v / Base
	}
	for carry != 0 {
		out = append(out, uint32(carry%Base))
		carry /= Base
	}
	return out
}

func splitAt(digits []uint32, k int) (lo, hi []uint32) {
	if k > len(digits) {
		k = len(digits)
	}
	lo = append([]uint32(nil), digits[:k]...)
	hi = append([]uint32(nil), digits[k:]...)
	if len(lo) == 0 {
		lo = []uint32{0}
	}
	if len(hi) == 0 {
		hi = []uint32{0}
	}
	return lo, hi
}

func addDigits(a, b []uint32) []uint32 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	result := make([]uint32, maxLen+1)
	var carry uint64
	for i := 0; i < maxLen || carry != 0; i++ {
		var av, bv uint64
		if i < len(a) {
			av = uint64(a[i])
		}
		if i < len(b) {
			bv = uint64(b[i])
		}
		sum := av + bv + carry
		result[i] = uint32(sum % Base)
		carry = sum / Base
	}
	return trim(result)
}

// subDigits computes a - b for digit vectors known to satisfy a >= b,
// used only inside karatsubaMul on its internal cross terms.
func subDigits(a, b []uint32) []uint32 {
	result := make([]uint32, len(a))
	copy(result, a)
	var borrow int64
	for i := 0; i < len(b); i++ {
		diff := int64(result[i]) - int64(b[i]) - borrow
		if diff < 0 {
			diff += Base
			borrow = 1
		} else {
			borrow = 0
		}
		result[i] = uint32(diff)
	}
	for i := len(b); borrow != 0 && i < len(result); i++ {
		diff := int64(result[i]) - borrow
		if diff < 0 {
			diff += Base
			borrow = 1
		} else {
			borrow = 0
		}
		result[i] = uint32(diff)
	}
	return trim(result)
}

func addInto(acc []uint64, digits []uint32, offset int) {
	for i, d := range digits {
		acc[offset+i] += uint64(d)
	}
}

// DivMod performs long division, returning (quotient, remainder). It fails
// with DivisionByZero if other is zero.
func (n Natural) DivMod(other Natural) (Natural, Natural, error) {
	if other.IsZero() {
		return Natural{}, Natural{}, bigerr.New(bigerr.DivisionByZero, "division by zero")
	}
	if n.Cmp(other) < 0 {
		return Zero(), n, nil
	}
	if len(other.digits) == 1 {
		return divModSingleDigit(n.digits, other.digits[0])
	}

	quotientDigits := make([]uint32, len(n.digits))
	remainder := Zero()
	for i := len(n.digits) - 1; i >= 0; i-- {
		remainder, _ = remainder.Shl(1)
		remainder = remainder.Add(FromUint64(uint64(n.digits[i])))
		if remainder.Cmp(other) >= 0 {
			x := searchQuotientDigit(remainder, other)
			quotientDigits[i] = x
			product := other.Mul(FromUint64(uint64(x)))
			remainder, _ = remainder.Sub(product)
		}
	}
	return Natural{digits: trim(quotientDigits)}, remainder, nil
}

// searchQuotientDigit finds the largest x in [1, Base) with x*divisor <= remainder,
// by binary search.
func searchQuotientDigit(remainder, divisor Natural) uint32 {
	lo, hi := uint32(1), uint32(Base-1)
	best := uint32(0)
	for lo <= hi {
		mid := lo + (hi-lo)/2
		product := divisor.Mul(FromUint64(uint64(mid)))
		if product.Cmp(remainder) <= 0 {
			best = mid
			lo = mid + 1
		} else {
			if mid == 0 {
				break
			}
			hi = mid - 1
		}
	}
	return best
}

func divModSingleDigit(digits []uint32, d uint32) (Natural, Natural, error) {
	quotient := make([]uint32, len(digits))
	var rem uint64
	for i := len(digits) - 1; i >= 0; i-- {
		cur := rem*Base + uint64(digits[i])
		quotient[i] = uint32(cur / uint64(d))
		rem = cur % uint64(d)
	}
	return Natural{digits: trim(quotient)}, FromUint64(rem), nil
}

// Shl returns n << k, i.e. n * Base^k, by prepending k zero digits. It fails
// with LengthError if the resulting length would overflow int.
func (n Natural) Shl(k int) (Natural, error) {
	if k == 0 || n.IsZero() {
		return n, nil
	}
	if k < 0 {
		return Natural{}, bigerr.New(bigerr.LengthError, "negative shift count %d", k)
	}
	if len(n.digits) > maxInt-k {
		return Natural{}, bigerr.New(bigerr.LengthError, "shift by %d overflows length", k)
	}
	return Natural{digits: container.ShiftInsertZeros(n.digits, k, 0)}, nil
}

const maxInt = int(^uint(0) >> 1)

// Shr returns n >> k, i.e. n / Base^k, by dropping k least-significant digits.
func (n Natural) Shr(k int) Natural {
	if k <= 0 || n.IsZero() {
		return n
	}
	if k >= len(n.digits) {
		return Zero()
	}
	digits := make([]uint32, len(n.digits)-k)
	copy(digits, n.digits[k:])
	return Natural{digits: trim(digits)}
}

// String prints the most significant digit without padding, then each
// remaining digit zero-padded to DigitsPerCell decimal characters.
func (n Natural) String() string {
	var b strings.Builder
	for i := len(n.digits) - 1; i >= 0; i-- {
		if i == len(n.digits)-1 {
			b.WriteString(itoa(n.digits[i]))
		} else {
			s := itoa(n.digits[i])
			for j := len(s); j < DigitsPerCell; j++ {
				b.WriteByte('0')
			}
			b.WriteString(s)
		}
	}
	return b.String()
}

func itoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// Uint64 converts n to a uint64 by Horner's method, folding digits from
// most to least significant. Overflow wraps.
func (n Natural) Uint64() uint64 {
	var acc uint64
	for i := len(n.digits) - 1; i >= 0; i-- {
		acc = acc*Base + uint64(n.digits[i])
	}
	return acc
}

// Mod returns n % other, the remainder of DivMod, for use by the generic
// Euclidean algorithms in package numeric.
func (n Natural) Mod(other Natural) (Natural, error) {
	_, r, err := n.DivMod(other)
	return r, err
}

// One returns the multiplicative identity, for use by numeric.Pow. It does
// not read receiver state.
func (Natural) One() Natural {
	return One()
}

// Inverse reports whether n is its own multiplicative inverse (only 1 is,
// in the naturals); any other value fails, since Natural has no general
// multiplicative inverse. Present so numeric.Pow can treat every domain
// uniformly.
func (n Natural) Inverse() (Natural, error) {
	if isOne(n.digits) {
		return n, nil
	}
	return Natural{}, bigerr.New(bigerr.DivisionByZero, "natural %s has no multiplicative inverse", n.String())
}

// Digits returns a defensive copy of n's little-endian base-B digits, for
// callers (integer, rational, polynomial) that need to inspect magnitude
// without re-deriving it through arithmetic.
func (n Natural) Digits() []uint32 {
	out := make([]uint32, len(n.digits))
	copy(out, n.digits)
	return out
}
