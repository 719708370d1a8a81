package smalliter

// Close releases the iterator: every unconsumed element is cleared and the
// backing allocation is let go, original footprint included (slots already
// moved out by Next occupy the same allocation and are released with it).
//
// Close is idempotent and safe in every state: on the zero value, on an
// iterator that was never stepped (releases everything) and on an exhausted
// one (releases just the empty allocation). After Close the iterator is
// exhausted.
func (it *Iter[T]) Close() {
	clear(it.rest)
	it.rest = nil
}

// Drain invokes release on each unconsumed element exactly once, in the
// same forward order Next would have yielded them, and then closes the
// iterator. It is the cleanup path for element types that own resources of
// their own. A nil release is equivalent to Close.
//
// Elements already yielded by Next are the caller's to release; Drain never
// sees them.
func (it *Iter[T]) Drain(release func(T)) {
	if release != nil {
		for _, v := range it.rest {
			release(v)
		}
	}
	it.Close()
}
