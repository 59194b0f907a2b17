//go:build js && wasm

package dispatch

import (
	"context"
	"sync"
)

var (
	sharedLoop *Loop
	startLoop  sync.Once
)

// Default returns the dispatcher for single-threaded cooperative hosts:
// one shared serial run loop for the whole process, started on first
// use and kept running for the page lifetime.
func Default() Dispatcher {
	startLoop.Do(func() {
		sharedLoop = NewLoop(0)
		go sharedLoop.Run(context.Background())
	})
	return sharedLoop
}
