package stream

import "context"

// Provider is what a source implements to expose a stream.
// It combines the Lifecycle methods with a "generator method" Emit that
// returns the next item.
type Provider[T any] interface {
	Lifecycle

	// Emit returns the next item in the stream, or an error.
	// When the stream is done, it should return io.EOF; the stream package
	// handles io.EOF and does not propagate it to the consumer.
	// Emit is never called concurrently from multiple goroutines, and is
	// only called between a successful Open and the matching Close.
	// It is the provider's responsibility to respect context cancellation
	// if supported; the stream package checks for cancellation between
	// calls to Emit.
	Emit(ctx context.Context) (T, error)
}

// Lifecycle is an interface that is used to attach open/close behavior to a
// stream. Close runs on every exit path of a consuming operation, exactly
// once per successful Open.
type Lifecycle interface {
	Open(ctx context.Context) error
	Close()
}

type lifecycleFuncs struct {
	openFunc  func(ctx context.Context) error
	closeFunc func()
}

func NewLifecycle(openFunc func(ctx context.Context) error, closeFunc func()) Lifecycle {
	return &lifecycleFuncs{openFunc: openFunc, closeFunc: closeFunc}
}

func (l *lifecycleFuncs) Open(ctx context.Context) error {
	if l.openFunc != nil {
		return l.openFunc(ctx)
	}
	return nil
}

func (l *lifecycleFuncs) Close() {
	if l.closeFunc != nil {
		l.closeFunc()
	}
}
