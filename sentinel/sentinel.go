// This module classifies scalar results of foreign APIs that signal failure
// through a reserved sentinel value (a negative count, a zero handle, an
// INVALID_HANDLE_VALUE bit pattern) instead of a structured error.
//
// A Convention captures one API family's signalling rule — the sentinel
// constant and the predicate that interprets it — once, at the boundary.
// Call sites then wrap raw return values and branch on data:
//
//	posix := sentinel.NewConvention(-1, sentinel.NotEqualTo[int])
//	if r := posix.Wrap(rc); r.HasError() {
//		// consult errno, log, bail out
//	}
//
// Nothing here carries error codes or messages beyond the raw value; the
// wrappers turn ambiguous foreign signals into inert, inspectable data.
package sentinel

import "cmp"

// Predicate reports whether a raw value counts as success under a given
// sentinel. Fixed at Convention construction and never mutated.
type Predicate[T any] func(value, sentinel T) bool

// EqualTo is success when the value equals the sentinel.
func EqualTo[T comparable](value, sentinel T) bool {
	return value == sentinel
}

// NotEqualTo is success when the value differs from the sentinel.
func NotEqualTo[T comparable](value, sentinel T) bool {
	return value != sentinel
}

// LessThan is success when the value is below the sentinel.
func LessThan[T cmp.Ordered](value, sentinel T) bool {
	return value < sentinel
}

// LessOrEqual is success when the value is at most the sentinel.
func LessOrEqual[T cmp.Ordered](value, sentinel T) bool {
	return value <= sentinel
}

// GreaterThan is success when the value is above the sentinel.
func GreaterThan[T cmp.Ordered](value, sentinel T) bool {
	return value > sentinel
}

// GreaterOrEqual is success when the value is at least the sentinel.
func GreaterOrEqual[T cmp.Ordered](value, sentinel T) bool {
	return value >= sentinel
}

// Convention is one foreign API family's success rule: a sentinel constant
// and the predicate that interprets a raw value against it. Build it once
// next to the foreign declarations and reuse it at every call site.
type Convention[T any] struct {
	sentinel T
	isOK     Predicate[T]
}

// NewConvention builds a Convention from a sentinel and a success predicate.
func NewConvention[T any](sentinel T, isOK Predicate[T]) Convention[T] {
	return Convention[T]{sentinel: sentinel, isOK: isOK}
}

// ZeroMeansOK is the default convention: the zero value of T compared for
// equality, for APIs where returning 0 signals success.
func ZeroMeansOK[T comparable]() Convention[T] {
	var zero T
	return NewConvention(zero, EqualTo[T])
}

// NotSentinel is the convention for APIs with one reserved failure value:
// anything other than the sentinel is success.
func NotSentinel[T comparable](sentinel T) Convention[T] {
	return NewConvention(sentinel, NotEqualTo[T])
}

// Wrap classifies a raw foreign return value under the convention.
func (cv Convention[T]) Wrap(value T) Result[T] {
	return Result[T]{value: value, ok: cv.isOK(value, cv.sentinel)}
}

// Of wraps a raw value under the default zero-means-success convention.
func Of[T comparable](value T) Result[T] {
	return ZeroMeansOK[T]().Wrap(value)
}

// Result is an immutable pair of a raw foreign return value and its
// classification. It carries no resources and copies freely.
type Result[T any] struct {
	value T
	ok    bool
}

// Value returns the wrapped scalar unchanged, for pass-through to code that
// expects the raw foreign value.
func (r Result[T]) Value() T {
	return r.value
}

// IsOK reports whether the value satisfied the convention's success rule.
func (r Result[T]) IsOK() bool {
	return r.ok
}

// HasError is the negation of IsOK.
func (r Result[T]) HasError() bool {
	return !r.ok
}
