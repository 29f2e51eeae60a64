package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu    sync.Mutex
	resetHook  func()
	crashOut   io.Writer = os.Stderr
	crashExit            = os.Exit
	crashTrace           = debug.Stack
)

// SetResetHook registers the terminal restore run before a crash report
// Passing nil clears it
func SetResetHook(fn func()) {
	crashMu.Lock()
	resetHook = fn
	crashMu.Unlock()
}

// HandleCrash restores the terminal, prints the panic and stack trace, then exits
// No-op for a nil recover value
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	hook := resetHook
	crashMu.Unlock()
	if hook != nil {
		hook()
	}

	// \r\n keeps the trace readable if the terminal is still in raw mode
	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", crashTrace())

	crashExit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use instead of the go keyword so a crash still restores the terminal
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
