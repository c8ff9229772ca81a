// Copyright 2026 The Bigmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package container holds the small slice utilities shared by natural and
// polynomial: trimming trailing elements while a predicate holds, and
// shifting zero elements into the front of a vector.
package container

// TrimTrailing removes trailing elements of xs while pred holds, but always
// keeps at least one element, the slot that carries the canonical zero
// value when every element satisfies pred. An empty xs is first grown to a
// single zero element. zero is the caller's canonical zero value for T;
// Go's T{} is not always it (a Rational's zero value has no reduced
// denominator, for instance).
func TrimTrailing[T any](xs []T, zero T, pred func(T) bool) []T {
	if len(xs) == 0 {
		return []T{zero}
	}
	if len(xs) == 1 && pred(xs[0]) {
		return xs
	}
	last := len(xs)
	for last > 1 && pred(xs[last-1]) {
		last--
	}
	return xs[:last]
}

// ShiftInsertZeros prepends k copies of zero to xs, equivalent to
// multiplying a little-endian digit or coefficient vector by B^k.
func ShiftInsertZeros[T any](xs []T, k int, zero T) []T {
	if k <= 0 {
		return xs
	}
	out := make([]T, len(xs)+k)
	for i := 0; i < k; i++ {
		out[i] = zero
	}
	copy(out[k:], xs)
	return out
}
