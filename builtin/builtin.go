// Package builtin implements the seven commands spec.md §4.5 dispatches
// in-process rather than through exec: cd, echo, env, exit, export, pwd,
// unset. Each is a Func closing over a Context instead of the teacher's
// func(cmd *exec.Cmd) uint8, since the single-builtin fast path spec.md
// §4.5 requires never constructs a real exec.Cmd.
package builtin

import (
	"io"

	"github.com/brg/pebsh/env"
	"github.com/brg/pebsh/shlog"
)

// Context bundles what a builtin needs: its own argv (argv[0] is the
// builtin's name), the streams it should read/write (already positioned
// per that stage's redirections), and the shared Env.
type Context struct {
	Argv   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Env    *env.Env

	// Exit, when non-nil, is called by the exit builtin to request that the
	// whole shell process terminate with the given status. The executor
	// only sets this for spec.md §4.5's single-builtin-in-parent fast path;
	// exit run as one stage of a multi-stage pipeline just returns its
	// code, ending that stage the way a subshell's exit would.
	Exit func(status int)
}

// Func is one builtin's implementation. It returns the exit status
// spec.md §4.5 assigns that builtin.
type Func func(*Context) int

// Commands is the dispatch table by name, checked case-sensitively.
var Commands = map[string]Func{
	"cd":     cd,
	"echo":   echo,
	"env":    envCmd,
	"exit":   exit,
	"export": export,
	"pwd":    pwd,
	"unset":  unset,
}

// Is reports whether name names a builtin.
func Is(name string) bool {
	_, ok := Commands[name]
	return ok
}

func errorf(c *Context, format string, args ...any) {
	shlog.Fprint(c.Stderr, "%s: "+format, append([]any{c.Argv[0]}, args...)...)
}
