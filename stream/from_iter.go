package stream

import (
	"context"
	"github.com/shpandrak/smalliter"
	"github.com/shpandrak/smalliter/internal/util"
	"io"
	"slices"
)

// FromIter transfers ownership of it into a single-use stream. Consuming
// the stream steps the iterator; when the pipeline finishes, stops early or
// fails, the stream's close releases whatever the iterator still holds. The
// caller must not touch it afterwards.
func FromIter[T any](it *smalliter.Iter[T]) Stream[T] {
	return NewSimpleStream(func(ctx context.Context) (T, error) {
		if ctx.Err() != nil {
			return util.DefaultValue[T](), ctx.Err()
		}
		v, ok := it.Next()
		if !ok {
			return util.DefaultValue[T](), io.EOF
		}
		return v, nil
	}, WithCloseFuncOption(it.Close))
}

// Just returns a reusable stream over the given values. Each Open packs a
// fresh owned iterator over a copy of the values, so the stream can be
// consumed any number of times.
func Just[T any](values ...T) Stream[T] {
	return NewStream[T](&justProvider[T]{src: values})
}

type justProvider[T any] struct {
	src []T
	it  smalliter.Iter[T]
}

func (j *justProvider[T]) Open(_ context.Context) error {
	j.it = smalliter.FromSlice(slices.Clone(j.src))
	return nil
}

func (j *justProvider[T]) Close() {
	j.it.Close()
}

func (j *justProvider[T]) Emit(ctx context.Context) (T, error) {
	if ctx.Err() != nil {
		return util.DefaultValue[T](), ctx.Err()
	}
	v, ok := j.it.Next()
	if !ok {
		return util.DefaultValue[T](), io.EOF
	}
	return v, nil
}
