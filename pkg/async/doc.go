// Package async provides small helpers for running computations in the
// background and waiting for their completion.
//
// The generic Future type represents the eventual result of an operation
// started with Go. Callers wait with the context-aware Await, watch the
// Done channel in a select, or poll with TryResult. Detach runs
// fire-and-forget work that nobody waits on, with panic recovery, which is
// the right shape for best-effort cleanup such as closing a superseded
// connection handle.
//
// # Usage
//
//	f := async.Go(ctx, func(ctx context.Context) (int, error) {
//	    return expensiveComputation(ctx)
//	})
//
//	// do other work …
//	n, err := f.Await(ctx)
//
// A single Future may be awaited by any number of goroutines; all of them
// observe the same result. This makes a Future a natural deduplication
// handle: store the in-flight Future, and late arrivals join it instead of
// starting their own computation.
package async
