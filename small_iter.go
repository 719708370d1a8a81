package smalliter

import (
	"fmt"
)

// Iter is an owning, forward-only iterator over a contiguous run of T.
//
// Unlike the usual owning iterator shape (slice header plus a cursor index,
// four machine words), Iter is a single slice header: three machine words.
// This matters when many iterators are alive at once, e.g. one per row of a
// batch: the smaller descriptor packs denser and steps faster.
// In exchange, Iter cannot step backwards and offers no random access.
//
// An Iter owns its elements. The constructors take full ownership of the
// source buffer, Next transfers ownership of each yielded value to the
// caller, and Close (or Drain) releases whatever was never consumed.
// Call Close exactly once on every exit path, typically via defer; it is
// idempotent, so an early explicit call composes with a deferred one.
//
// There must be exactly one owner of an Iter at a time. Handing it to
// another goroutine is a plain move of the descriptor and needs no
// synchronization, provided T itself may cross goroutines.
type Iter[T any] struct {
	// rest is the unconsumed tail of the original allocation, in yield
	// order. Invariant: cap(rest) == len(rest). With no slack, the end of
	// the live data is also the end of the owned memory, which is what
	// lets one slice header do the work of header-plus-cursor.
	//
	// Slots already yielded by Next are cleared and never touched again;
	// the interior pointer keeps the original allocation reachable until
	// the last reference is dropped by Close.
	rest []T
}

// Next yields the next element, transferring its ownership to the caller.
// Once the iterator is exhausted it returns the zero value and false, and
// keeps doing so on every subsequent call.
func (it *Iter[T]) Next() (T, bool) {
	if len(it.rest) == 0 {
		var zero T
		return zero, false
	}
	v := it.rest[0]
	// The slot is now logically moved out: clear it so cleanup never sees
	// it and the backing array does not retain the value's referents.
	var zero T
	it.rest[0] = zero
	it.rest = it.rest[1:]
	return v, true
}

// Remaining reports how many more elements Next will yield. The count is
// exact, not an estimate: the representation carries no slack.
func (it *Iter[T]) Remaining() int {
	return len(it.rest)
}

// Rest returns the unconsumed elements as a slice, in yield order.
// The returned slice aliases the iterator's storage and is only valid until
// the next call to Next, Close or Drain. The elements stay owned by the
// iterator.
func (it *Iter[T]) Rest() []T {
	return it.rest
}

func (it *Iter[T]) String() string {
	return fmt.Sprintf("smalliter.Iter%v", it.rest)
}
