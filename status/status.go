// Package status gives every error kind spec.md §7 names (Syntax,
// Redirection, Resolution, Exec, Builtin, System) a common shape: an error
// that also carries the process exit code it should produce. It
// generalizes the teacher's commandResult (an error that is also
// ExitCode() uint8) to the vocabulary spec.md's error-handling design
// already uses.
package status

import "fmt"

// Kind names which of spec.md §7's error categories produced an Error.
type Kind int

const (
	KindSyntax Kind = iota
	KindRedirection
	KindResolution
	KindExec
	KindBuiltin
	KindSystem
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindRedirection:
		return "redirection"
	case KindResolution:
		return "resolution"
	case KindExec:
		return "exec"
	case KindBuiltin:
		return "builtin"
	case KindSystem:
		return "system"
	}
	return "unknown"
}

// Error is a diagnostic paired with the exit code it implies.
type Error struct {
	Kind Kind
	Msg  string
	Code int
}

func (e *Error) Error() string { return e.Msg }

// ExitCode reports the process/pipeline exit status this error implies.
func (e *Error) ExitCode() int { return e.Code }

// ExitError is anything that is both an error and carries an exit code, the
// contract the executor and REPL loop use to translate a failure into
// spec.md §8's last_status.
type ExitError interface {
	error
	ExitCode() int
}

func New(kind Kind, code int, format string, a ...any) *Error {
	return &Error{Kind: kind, Code: code, Msg: fmt.Sprintf(format, a...)}
}

// Syntax reports a lexer/parser error; spec.md §6 fixes its exit code at 2.
func Syntax(format string, a ...any) *Error {
	return New(KindSyntax, 2, format, a...)
}

// Redirection reports an open/create/truncate failure while wiring up a
// Command's redirections.
func Redirection(format string, a ...any) *Error {
	return New(KindRedirection, 1, format, a...)
}

// NotFound reports that no executable named cmd exists on $PATH.
func NotFound(cmd string) *Error {
	return New(KindResolution, 127, "%s: command not found", cmd)
}

// NotExecutable reports that cmd resolved to a file lacking the execute
// bit, or that isn't a regular file.
func NotExecutable(cmd string) *Error {
	return New(KindResolution, 126, "%s: permission denied", cmd)
}

// Exec reports that execve itself failed after the command was resolved.
func Exec(format string, a ...any) *Error {
	return New(KindExec, 1, format, a...)
}

// Builtin reports a builtin's own argument-validation failure. Most
// builtins use exit code 1; a few (see builtin.exit) need a different one.
func Builtin(code int, format string, a ...any) *Error {
	return New(KindBuiltin, code, format, a...)
}

// System reports a fork/pipe/dup2-class failure setting up a pipeline.
func System(format string, a ...any) *Error {
	return New(KindSystem, 1, format, a...)
}

// Signaled computes the wait-status exit code spec.md §4.5 specifies for a
// stage killed by signal s: 128+s.
func Signaled(sig int) int {
	return 128 + sig
}
