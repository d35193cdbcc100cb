package async_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mongokit/pkg/async"
)

func TestGoReturnsResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := async.Go(ctx, func(ctx context.Context) (string, error) {
		time.Sleep(10 * time.Millisecond)
		return "done", nil
	})

	res, err := f.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "done", res)
}

func TestGoPropagatesError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	wantErr := errors.New("boom")

	f := async.Go(ctx, func(ctx context.Context) (int, error) {
		return 0, wantErr
	})

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, wantErr)
}

func TestGoPreCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := async.Go(ctx, func(ctx context.Context) (int, error) {
		t.Error("function should not run with a pre-cancelled context")
		return 42, nil
	})

	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAwaitCancellation(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	f := async.Go(context.Background(), func(ctx context.Context) (int, error) {
		<-release
		return 1, nil
	})

	waitCtx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := f.Await(waitCtx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// The computation itself is unaffected by the abandoned wait.
	close(release)
	res, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res)
}

func TestMultipleAwaitersShareResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var calls int
	f := async.Go(ctx, func(ctx context.Context) (int, error) {
		calls++
		time.Sleep(10 * time.Millisecond)
		return 7, nil
	})

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := f.Await(ctx)
			assert.NoError(t, err)
			assert.Equal(t, 7, res)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
}

func TestTryResult(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	f := async.Go(context.Background(), func(ctx context.Context) (int, error) {
		<-release
		return 9, nil
	})

	_, _, ok := f.TryResult()
	assert.False(t, ok)

	close(release)
	<-f.Done()

	res, err, ok := f.TryResult()
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, 9, res)
}

func TestDetachRecoversPanic(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	async.Detach(func() {
		defer close(done)
		panic("cleanup went sideways")
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("detached task did not finish")
	}
}
