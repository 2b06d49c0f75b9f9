// Package ast defines the parsed representation of one input line: a
// pipeline of commands, each with its argument words and redirections.
package ast

import "github.com/brg/pebsh/lexer"

// RedirOp is the kind of redirection a Redir performs.
type RedirOp int

const (
	RedirIn RedirOp = iota
	RedirOut
	RedirAppend
	RedirHeredoc
)

func (op RedirOp) String() string {
	switch op {
	case RedirIn:
		return "<"
	case RedirOut:
		return ">"
	case RedirAppend:
		return ">>"
	case RedirHeredoc:
		return "<<"
	}
	return "?"
}

// Redir is one redirection attached to a Command. Target is the WORD token
// following the operator (the heredoc delimiter, for RedirHeredoc); it is
// expanded by the expander for every op except RedirHeredoc, whose
// delimiter is always used verbatim. Body is filled in by the heredoc
// collector after parsing and before execution.
type Redir struct {
	Op     RedirOp
	Target lexer.Token
	Body   string
}

// Command is a single stage of a pipeline: an argv (possibly empty, if the
// stage consists solely of redirections) plus its ordered redirections.
type Command struct {
	Argv   []lexer.Token
	Redirs []Redir
}

// Pipeline is one or more Commands connected by pipes, in left-to-right
// order.
type Pipeline []Command
