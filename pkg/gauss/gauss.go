// Package gauss computes triangular numbers: the sum 1 + 2 + ... + n,
// equal to n*(n+1)/2.
//
// The package ports a small C reference pair (a recursive routine and a
// closed-form routine) and preserves its observable behavior, including one
// long-standing quirk: the recursive routine adds the constant 1 per step
// rather than the loop counter, so Recursive(n) returns n itself, not the
// triangular number. See Recursive for details and SumTo for the corrected
// accumulation.
//
// All functions are pure and deterministic and may be called concurrently
// without synchronization.
package gauss

import (
	"errors"
	"fmt"
	"math"
)

// MaxRecursiveN is the largest n accepted by Recursive. The original routine
// recursed once per unit of n with no ceiling; stack depth proportional to n
// is an observable resource cost, so inputs beyond this bound are rejected
// rather than allowed to exhaust the stack.
const MaxRecursiveN = 1 << 20

// Errors returned by the domain-checked functions.
var (
	// ErrNonPositive is returned for n < 1 where the original routine would
	// recurse without bound (its only base case is n == 1).
	ErrNonPositive = errors.New("n must be >= 1")

	// ErrRecursionLimit is returned when n exceeds MaxRecursiveN.
	ErrRecursionLimit = errors.New("n exceeds recursion limit")

	// ErrOverflow is returned by ClosedFormChecked when the exact triangular
	// number does not fit in an int32.
	ErrOverflow = errors.New("triangular number overflows int32")
)

// Recursive is the faithful port of the original recursive reference routine.
//
// Base case: Recursive(1) == 1. For n > 1 each step adds 1 to the recursive
// call, so the function returns n itself for every accepted input rather than
// the triangular number n*(n+1)/2. Whether the original's "+ 1" was a
// deliberate test-fixture simplification or a defect is unknown; the behavior
// is kept bug-for-bug and pinned by regression tests. Callers wanting the
// actual sum should use SumTo or ClosedForm.
//
// Unlike the original, n < 1 fails fast with ErrNonPositive instead of
// recursing until stack exhaustion, and n > MaxRecursiveN fails with
// ErrRecursionLimit.
func Recursive(n int32) (int32, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrNonPositive, n)
	}
	if n > MaxRecursiveN {
		return 0, fmt.Errorf("%w: %d > %d", ErrRecursionLimit, n, MaxRecursiveN)
	}
	return recurse(n), nil
}

// recurse mirrors the original routine exactly, quirk included.
func recurse(n int32) int32 {
	if n == 1 {
		return 1
	}
	return recurse(n-1) + 1
}

// ClosedForm computes n*(n+1)/2 in native 32-bit signed arithmetic with
// truncating division. It is defined for every int32 input, including 0
// (returns 0) and negative n (the formula extends consistently).
//
// The intermediate product n*(n+1) wraps for n above 46340 (and symmetrically
// below -46341), exactly as two's-complement arithmetic dictates; this matches
// the behavior the original exhibited on every platform it ran on. Use
// ClosedForm64 or ClosedFormChecked when wraparound is unacceptable.
func ClosedForm(n int32) int32 {
	return n * (n + 1) / 2
}

// ClosedForm64 is the widened-arithmetic variant of ClosedForm. The 64-bit
// intermediate cannot wrap for any int32-range input, so the result is exact
// wherever the caller's input originated as an int32; for example
// ClosedForm64(65536) == 2147516416, one past where ClosedForm wraps.
func ClosedForm64(n int64) int64 {
	return n * (n + 1) / 2
}

// ClosedFormChecked computes the triangular number with a widened
// intermediate and signals ErrOverflow when the exact result does not fit in
// an int32. The accepted domain is -65536 <= n <= 65535.
func ClosedFormChecked(n int32) (int32, error) {
	wide := ClosedForm64(int64(n))
	if wide > math.MaxInt32 || wide < math.MinInt32 {
		return 0, fmt.Errorf("%w: n=%d", ErrOverflow, n)
	}
	return int32(wide), nil
}

// SumTo computes the triangular number by accumulating the loop counter, the
// computation the recursive routine was presumably meant to perform. It is
// iterative, so it costs no stack growth, and shares Recursive's domain
// guard: n < 1 returns ErrNonPositive. The sum wraps like ClosedForm for n
// beyond the int32 triangular range.
func SumTo(n int32) (int32, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrNonPositive, n)
	}
	var sum int32
	for i := int32(1); i <= n; i++ {
		sum += i
	}
	return sum, nil
}
