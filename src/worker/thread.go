package worker

import (
	"errors"
	"fmt"
	"log"
	"runtime"
)

// ErrPanicked wraps a panic recovered on the worker thread.
var ErrPanicked = errors.New("worker thread panicked")

// Setup prepares the locked thread before the job runs (for example, entering
// a COM apartment). The returned teardown, if any, runs after the job on the
// same thread.
type Setup func() (teardown func(), err error)

type result[T any] struct {
	val T
	err error
}

// Run executes fn on a dedicated goroutine locked to its own OS thread and
// blocks until it completes. The goroutine never unlocks, so the runtime
// discards the thread afterwards and no thread state leaks into other
// goroutines. Only the returned value crosses back to the caller.
func Run[T any](setup Setup, fn func() (T, error)) (T, error) {
	done := make(chan result[T], 1)

	go func() {
		runtime.LockOSThread()

		var r result[T]
		defer func() {
			if p := recover(); p != nil {
				log.Printf("Worker: recovered panic on locked thread: %v", p)
				r = result[T]{err: fmt.Errorf("%w: %v", ErrPanicked, p)}
			}
			done <- r
		}()

		if setup != nil {
			teardown, err := setup()
			if err != nil {
				r.err = err
				return
			}
			if teardown != nil {
				defer teardown()
			}
		}

		r.val, r.err = fn()
	}()

	r := <-done
	return r.val, r.err
}
