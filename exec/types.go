// Package exec builds and runs the pipelines spec.md §4.5 describes:
// dispatching a lone built-in in the shell's own process, or wiring pipes
// and running every stage of a longer pipeline concurrently, the same way
// the teacher's vm/exec.go pipes Simple commands together with os.Pipe and
// a sync.WaitGroup, adapted from os/exec.Cmd stages to a design that also
// has to run in-process builtins as pipeline stages.
package exec

import "github.com/brg/pebsh/ast"

// Redir is one already-expanded redirection: Target has gone through
// expand.Target (or, for RedirHeredoc, is the delimiter's verbatim text,
// with the collected body in Body), so the executor never expands anything
// itself.
type Redir struct {
	Op     ast.RedirOp
	Target string
	Body   string
}

// Command is one pipeline stage with its argv and redirections fully
// expanded and ready to run.
type Command struct {
	Argv   []string
	Redirs []Redir
}

// Pipeline is one or more Commands connected left to right.
type Pipeline []Command
