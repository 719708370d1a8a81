package stream

import (
	"context"
	"fmt"
	"github.com/shpandrak/smalliter"
	"github.com/shpandrak/smalliter/internal/util"
	"io"
)

// Stream is a pull-based pipeline over a Provider. Consuming operations
// open all attached lifecycles up front and close them on every exit path,
// so a source that owns resources (e.g. an iterator holding unconsumed
// elements) is always released, whether the pipeline runs to completion,
// stops early or fails.
type Stream[T any] struct {
	provider   ProviderFunc[T]
	lifecycles []Lifecycle
}

// ProviderFunc is the generator function of a stream, see Provider.Emit.
type ProviderFunc[T any] func(ctx context.Context) (T, error)

func NewStream[T any](provider Provider[T]) Stream[T] {
	return newStream(provider.Emit, []Lifecycle{provider})
}

func newStream[T any](provider ProviderFunc[T], lifecycles []Lifecycle) Stream[T] {
	return Stream[T]{provider: provider, lifecycles: lifecycles}
}

type CreateStreamOption struct {
	openFunc  func(ctx context.Context) error
	closeFunc func()
}

func WithOpenFuncOption(openFunc func(ctx context.Context) error) CreateStreamOption {
	return CreateStreamOption{openFunc: openFunc}
}

func WithCloseFuncOption(closeFunc func()) CreateStreamOption {
	return CreateStreamOption{closeFunc: closeFunc}
}

func NewSimpleStream[T any](provider ProviderFunc[T], options ...CreateStreamOption) Stream[T] {
	var openFunc func(ctx context.Context) error
	var closeFunc func()
	for _, option := range options {
		if option.openFunc != nil {
			openFunc = option.openFunc
		}
		if option.closeFunc != nil {
			closeFunc = option.closeFunc
		}
	}

	var lifecycles []Lifecycle
	if openFunc != nil || closeFunc != nil {
		lifecycles = []Lifecycle{NewLifecycle(openFunc, closeFunc)}
	}
	return Stream[T]{provider: provider, lifecycles: lifecycles}
}

// Empty returns a stream that is exhausted from the start.
func Empty[T any]() Stream[T] {
	return newStream(func(ctx context.Context) (T, error) {
		return util.DefaultValue[T](), io.EOF
	}, nil)
}

// Error returns a stream that fails with err, both on open and on emit.
func Error[T any](err error) Stream[T] {
	return newStream(func(ctx context.Context) (T, error) {
		return util.DefaultValue[T](), err
	}, []Lifecycle{NewLifecycle(func(_ context.Context) error {
		return err
	}, func() {
		// NOP
	})})
}

// Consume materializes the stream and applies f to each element in order.
// It returns an error if any stage of the pipeline fails; for an empty
// stream it returns immediately with no error. All lifecycles are closed
// before it returns, on every path.
func (s Stream[T]) Consume(ctx context.Context, f func(T)) error {
	return s.ConsumeWithErr(ctx, func(v T) error {
		f(v)
		return nil
	})
}

// ConsumeWithErr is Consume with a consumer function that may fail;
// returning an error from f stops the pipeline.
func (s Stream[T]) ConsumeWithErr(ctx context.Context, f func(T) error) error {
	cancelFunc, err := s.open(ctx)
	if err != nil {
		return err
	}

	// All lifecycles opened successfully, closing them is now this
	// function's responsibility on every exit path
	defer func() {
		s.close()
		cancelFunc()
	}()

	for {
		// Check for cancellation before pulling the next item
		if ctx.Err() != nil {
			return ctx.Err()
		}
		v, err := s.provider(ctx)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if err := f(v); err != nil {
			return err
		}
	}
}

// Collect materializes the stream into a slice.
func (s Stream[T]) Collect(ctx context.Context) ([]T, error) {
	var result []T
	err := s.Consume(ctx, func(v T) {
		result = append(result, v)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MustCollect is a convenience method that panics if the stream errors.
// Should be used for testing purpose or when streams are static (e.g.
// iterator sourced streams).
func (s Stream[T]) MustCollect() []T {
	result, err := s.Collect(context.Background())
	if err != nil {
		panic(err)
	}
	return result
}

// Count counts the number of elements in the stream (materializes the
// stream).
func (s Stream[T]) Count(ctx context.Context) (int, error) {
	count := 0
	err := s.Consume(ctx, func(T) {
		count++
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MustCount is a convenience method that panics if the stream errors.
func (s Stream[T]) MustCount() int {
	count, err := s.Count(context.Background())
	if err != nil {
		panic(err)
	}
	return count
}

// Filter keeps only the elements for which predicate returns true.
func (s Stream[T]) Filter(predicate smalliter.Predicate[T]) Stream[T] {
	return newStream(func(ctx context.Context) (T, error) {
		for {
			v, err := s.provider(ctx)
			if err != nil {
				return v, err
			}
			if predicate(v) {
				return v, nil
			}
		}
	}, s.lifecycles)
}

func (s Stream[T]) open(ctx context.Context) (context.CancelFunc, error) {
	ctxWithCancel, cancelFunc := context.WithCancel(ctx)

	for lcIdx, l := range s.lifecycles {
		if err := l.Open(ctxWithCancel); err != nil {
			// Close only the lifecycles that opened successfully, then
			// cancel to stop any ongoing operations
			for i := 0; i < lcIdx; i++ {
				s.lifecycles[i].Close()
			}
			cancelFunc()
			return nil, fmt.Errorf("failed to open stream lifecycle element %d: %w", lcIdx, err)
		}
	}
	return cancelFunc, nil
}

func (s Stream[T]) close() {
	for _, l := range s.lifecycles {
		l.Close()
	}
}
