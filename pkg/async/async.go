package async

import (
	"context"
)

// Future represents the eventual result of a computation started with Go.
type Future[T any] struct {
	result T
	err    error
	done   chan struct{}
}

// Go starts fn in its own goroutine and returns a Future for its result.
// If ctx is already cancelled, the goroutine exits immediately and the
// Future completes with the context error.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx)
	}()

	return f
}

// Await blocks until the computation completes or ctx is cancelled.
// On cancellation the computation keeps running; only the wait is abandoned.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel that is closed when the computation completes.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// TryResult returns the result without blocking. The boolean reports
// whether the computation has completed.
func (f *Future[T]) TryResult() (T, error, bool) {
	select {
	case <-f.done:
		return f.result, f.err, true
	default:
		var zero T
		return zero, nil, false
	}
}

// Detach runs fn in a background goroutine that nobody waits on.
// Panics are swallowed so a detached cleanup task cannot take the
// process down.
func Detach(fn func()) {
	go func() {
		defer func() {
			_ = recover()
		}()
		fn()
	}()
}
