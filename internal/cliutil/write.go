// Package cliutil provides output helpers shared by the oasdocs commands.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Status markers. Colour is dropped automatically when the output is not a
// terminal or NO_COLOR is set.
var (
	failMarker = color.New(color.FgRed, color.Bold).Sprint("✗")
	okMarker   = color.New(color.FgGreen, color.Bold).Sprint("✓")
	warnMarker = color.New(color.FgYellow).Sprint("!")
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Failf writes a line prefixed with the red failure marker.
func Failf(w io.Writer, format string, args ...any) {
	Writef(w, failMarker+" "+format+"\n", args...)
}

// Successf writes a line prefixed with the green success marker.
func Successf(w io.Writer, format string, args ...any) {
	Writef(w, okMarker+" "+format+"\n", args...)
}

// Warnf writes a line prefixed with the yellow warning marker.
func Warnf(w io.Writer, format string, args ...any) {
	Writef(w, warnMarker+" "+format+"\n", args...)
}
