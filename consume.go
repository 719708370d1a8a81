package smalliter

import (
	"iter"
)

// Collect consumes the iterator, returning all remaining elements in yield
// order. Ownership of the backing storage moves to the returned slice, so
// no copy is made; the iterator is left exhausted and released.
func (it *Iter[T]) Collect() []T {
	out := it.rest
	it.rest = nil
	return out
}

// Count consumes the iterator and reports how many elements it still held.
// It always equals the Remaining value at the time of the call.
func (it *Iter[T]) Count() int {
	n := len(it.rest)
	it.Close()
	return n
}

// ForEach consumes the iterator, applying f to each remaining element in
// yield order, and releases it when done.
func (it *Iter[T]) ForEach(f func(T)) {
	for {
		v, ok := it.Next()
		if !ok {
			it.Close()
			return
		}
		f(v)
	}
}

// All returns a range-over-func view of the iterator. Ranging consumes:
// each loop iteration is a Next call. Breaking out of the range leaves the
// iterator owning whatever was not reached, so Close is still due; ranging
// to completion leaves it exhausted.
func (it *Iter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// FromSeq materializes seq and returns an Iter owning its elements.
func FromSeq[T any](seq iter.Seq[T]) Iter[T] {
	var values []T
	for v := range seq {
		values = append(values, v)
	}
	return FromSlice(values)
}
