// Package dispatch provides the concurrency substrate for
// fire-and-forget sends. Natively threaded hosts detach each send onto
// its own goroutine; single-threaded cooperative hosts (js/wasm) queue
// sends onto a serial run loop instead. Default picks the right
// strategy for the build target.
package dispatch

import "context"

// Dispatcher detaches a unit of work from the caller. The work may
// outlive the function that dispatched it; if the process exits first,
// the work is lost. There is no handle to observe or cancel it.
type Dispatcher interface {
	Dispatch(fn func(ctx context.Context))
}

// Goroutine dispatches each task onto its own goroutine.
type Goroutine struct{}

// Dispatch runs fn on a new goroutine and returns immediately.
func (Goroutine) Dispatch(fn func(ctx context.Context)) {
	go fn(context.Background())
}
