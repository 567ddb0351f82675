// Package exithook keeps the process-wide list of actions to run when the
// program exits.
//
// Go has no atexit. Programs that rely on delete-on-exit behaviour call Run
// from main (usually deferred) and may call Install to also run the hooks on
// SIGINT or SIGTERM. Hooks cannot be deregistered; each runs at most once.
package exithook

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	mu    sync.Mutex
	hooks []func()
)

// Register adds fn to the hooks run at exit.
func Register(fn func()) {
	mu.Lock()
	defer mu.Unlock()
	hooks = append(hooks, fn)
}

// Pending returns the number of registered hooks that have not run yet.
func Pending() int {
	mu.Lock()
	defer mu.Unlock()
	return len(hooks)
}

// Run executes and clears the registered hooks, most recent first. A panicking
// hook does not prevent the remaining hooks from running.
func Run() {
	mu.Lock()
	pending := hooks
	hooks = nil
	mu.Unlock()

	for i := len(pending) - 1; i >= 0; i-- {
		runOne(pending[i])
	}
}

func runOne(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

// Install runs the hooks and exits with status 1 when the process receives
// SIGINT or SIGTERM. The returned function stops listening.
func Install() (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		select {
		case <-ch:
			Run()
			os.Exit(1)
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(ch)
			close(done)
		})
	}
}
