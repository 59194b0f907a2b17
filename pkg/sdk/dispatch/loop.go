package dispatch

import "context"

// Default queue depth for a Loop dispatcher.
const defaultLoopBuffer = 64

// Loop runs dispatched tasks one at a time on a single background
// goroutine, in dispatch order. It mirrors cooperative micro-task
// scheduling: no parallelism, each task runs to completion on a future
// turn of the loop without blocking the caller.
type Loop struct {
	tasks chan func(ctx context.Context)
}

// NewLoop creates a loop dispatcher with the given queue depth
// (<= 0 uses a default). Run must be started for tasks to execute.
func NewLoop(buffer int) *Loop {
	if buffer <= 0 {
		buffer = defaultLoopBuffer
	}
	return &Loop{
		tasks: make(chan func(ctx context.Context), buffer),
	}
}

// Run executes queued tasks serially until ctx is cancelled. Tasks
// receive ctx so in-flight work stops with the loop.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case fn := <-l.tasks:
			fn(ctx)
		}
	}
}

// Dispatch queues fn for a future turn of the loop and returns
// immediately. When the queue is full the task is dropped; detached
// sends are lossy by contract and must never block the caller.
func (l *Loop) Dispatch(fn func(ctx context.Context)) {
	select {
	case l.tasks <- fn:
	default:
	}
}
