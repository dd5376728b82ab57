// Package core holds process-wide crash handling: any panic restores the
// terminal before the stack trace is printed
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
)

// Finalizer restores the terminal; tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

var (
	mu        sync.Mutex
	crashTerm Finalizer
	finiOnce  sync.Once
)

var (
	crashLog = zap.NewNop()
	crashOut = io.Writer(os.Stderr)
	exit     = os.Exit
)

// SetTerminal registers the screen to finalize on crash
func SetTerminal(t Finalizer) {
	mu.Lock()
	crashTerm = t
	finiOnce = sync.Once{}
	mu.Unlock()
}

// SetLogger records crashes in the log file as well
func SetLogger(l *zap.Logger) {
	if l == nil {
		return
	}
	mu.Lock()
	crashLog = l
	mu.Unlock()
}

// RestoreTerminal finalizes the registered screen at most once
func RestoreTerminal() {
	mu.Lock()
	t := crashTerm
	mu.Unlock()
	if t == nil {
		return
	}
	finiOnce.Do(t.Fini)
}

// HandleCrash is the unified panic handler: restore the terminal, print the
// stack trace and exit
func HandleCrash(r any) {
	if r == nil {
		return
	}
	stack := debug.Stack()
	RestoreTerminal()

	mu.Lock()
	log, out, quit := crashLog, crashOut, exit
	mu.Unlock()

	log.Error("crash", zap.Any("panic", r), zap.ByteString("stack", stack))
	_ = log.Sync()

	fmt.Fprintf(out, "\n\x1b[31mAI-ENTITY CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(out, "Stack Trace:\n%s\n", stack)
	quit(1)
}

// Go runs fn in a new goroutine with panic recovery
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

// Guard wraps an errgroup task with panic recovery
func Guard(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		return fn()
	}
}
