// Package cliutil provides shared input and output helpers for the
// naming CLI: line-oriented identifier reading with stdin and EOF-marker
// support, and checked formatted writes.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to w. A failed write is reported to
// stderr instead of being silently dropped; usage text and diagnostics
// never abort the command.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
