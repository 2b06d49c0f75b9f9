// Package shlog is pebsh's diagnostic output, generalizing the teacher's
// log.Err into the vocabulary spec.md §7 uses: warnings never stop the
// REPL, only a handful of startup failures in main are fatal.
package shlog

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var prefix = color.New(color.FgRed).SprintFunc()

// Warn prints a diagnostic to the shell's own stderr as "pebsh: <message>\n"
// and returns control to the caller. Every error surfaced by spec.md §7
// that isn't attached to a particular stage's own streams goes through
// Warn rather than being printed ad hoc.
func Warn(format string, args ...any) {
	Fprint(os.Stderr, format, args...)
}

// Fprint writes a diagnostic to w as "pebsh: <message>\n". It is Warn's
// underlying primitive, exposed so callers that already hold a specific
// stream (a pipeline stage's stderr, which may be redirected or, in tests,
// stand in for the real terminal) still tag every propagated error with
// spec.md §7's "pebsh: " prefix instead of printing it bare.
func Fprint(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, prefix("pebsh: ")+format+"\n", args...)
}

// Fatal prints like Warn and then exits the process. It is used only by
// cmd/pebsh's startup path, for failures (like the line editor refusing to
// initialize) that leave no REPL to return control to.
func Fatal(format string, args ...any) {
	Warn(format, args...)
	os.Exit(1)
}
