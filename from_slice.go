package smalliter

import (
	"unsafe"
)

// FromSlice creates an Iter that takes ownership of s and yields its
// elements in order. The caller must not use s (or any alias of it)
// afterwards.
//
// If s carries excess capacity, the elements are first relocated into an
// exact-capacity block, so that the iterator never owns slack memory. This
// is the one construction path with an observable cost: a copy of len(s)
// elements and a new base address. A slice with cap(s) == len(s) is adopted
// as-is, with no allocation and no copy.
func FromSlice[T any](s []T) Iter[T] {
	if cap(s) > len(s) {
		if zeroSized[T]() {
			// Nothing backs zero-sized elements, so the exact-capacity
			// header is a re-slice: no copy, no allocation ever.
			s = s[:len(s):len(s)]
		} else {
			exact := make([]T, len(s))
			copy(exact, s)
			s = exact
		}
	}
	return Iter[T]{rest: s}
}

// Of creates an Iter over the given values. The slice a variadic call
// builds has no excess capacity, so construction is free; spreading an
// existing slice with Of(s...) hands ownership of s to the iterator, same
// as FromSlice(s).
func Of[T any](values ...T) Iter[T] {
	return FromSlice(values)
}

// Empty returns an already-exhausted Iter. It owns nothing, and closing it
// is a no-op. The zero value of Iter behaves the same way.
func Empty[T any]() Iter[T] {
	return Iter[T]{}
}

func zeroSized[T any]() bool {
	var v T
	return unsafe.Sizeof(v) == 0
}
