// Package logger provides leveled logging for sheetkit. Debug messages are
// only emitted when verbose mode is enabled via the --verbose flag; warnings
// and errors are always written. All output goes to stderr so that command
// output on stdout stays machine-readable.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	guard   sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables debug logging.
func SetVerbose(v bool) {
	guard.Lock()
	defer guard.Unlock()
	verbose = v
}

// SetOutput redirects log output. Defaults to os.Stderr. Useful for tests.
func SetOutput(w io.Writer) {
	guard.Lock()
	defer guard.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	guard.RLock()
	defer guard.RUnlock()

	if verbose {
		fmt.Fprintf(output, "%-5s %s\n", "DEBUG", fmt.Sprintf(format, args...))
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	guard.RLock()
	defer guard.RUnlock()

	if verbose {
		fmt.Fprintf(output, "%-5s %s\n", "INFO", fmt.Sprintf(format, args...))
	}
}

// Warn prints a warning message.
func Warn(format string, args ...any) {
	guard.RLock()
	defer guard.RUnlock()

	fmt.Fprintf(output, "%-5s %s\n", "WARN", fmt.Sprintf(format, args...))
}

// Error prints an error message.
func Error(format string, args ...any) {
	guard.RLock()
	defer guard.RUnlock()

	fmt.Fprintf(output, "%-5s %s\n", "ERROR", fmt.Sprintf(format, args...))
}
