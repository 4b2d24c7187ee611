package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

var emergencySequences = [][]byte{
	[]byte("\x1b[?1003l"), // Mouse motion tracking off
	[]byte("\x1b[?1002l"), // Mouse drag tracking off
	[]byte("\x1b[?1000l"), // Mouse click tracking off
	[]byte("\x1b[?1006l"), // SGR mouse mode off
	[]byte("\x1b[?25h"),   // Cursor show
	[]byte("\x1b[?1049l"), // Alt screen exit
	[]byte("\x1b[0m"),     // SGR reset
}

// HandleCrash is the unified panic handler that resets the terminal and
// prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state immediately
	EmergencyReset(os.Stdout)
	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()
	os.Exit(1)
}

// EmergencyReset writes the raw escape sequences that undo mouse tracking,
// the alternate screen and hidden cursor. Best-effort, for crash paths where
// the screen object may be unusable.
func EmergencyReset(w io.Writer) {
	for _, seq := range emergencySequences {
		w.Write(seq)
	}
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
