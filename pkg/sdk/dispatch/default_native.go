//go:build !js

package dispatch

// Default returns the dispatcher for natively threaded hosts: every
// detached send gets its own goroutine.
func Default() Dispatcher {
	return Goroutine{}
}
