// Package heredoc implements spec.md §4.4's heredoc collector: reading the
// body of every HEREDOC redirection in a pipeline before any stage forks,
// so that a SIGINT during collection can abort cleanly in the parent.
package heredoc

import (
	"errors"
	"strings"

	"github.com/brg/pebsh/ast"
	"github.com/brg/pebsh/env"
	"github.com/brg/pebsh/expand"
	"github.com/brg/pebsh/lexer"
)

// Reader reads one line of heredoc body input, prompting with the given
// secondary prompt. It is satisfied by a thin wrapper around whatever line
// editor the REPL uses; kept as an interface here so Collect is testable
// without a real terminal.
type Reader interface {
	ReadLine(prompt string) (string, error)
}

// ErrInterrupted is the sentinel a Reader must return when the read was
// aborted by SIGINT (spec.md §4.4's "HEREDOC" disposition). Collect
// propagates it unchanged so the caller can set last_status to 130 and
// return to the prompt without executing the pipeline.
var ErrInterrupted = errors.New("heredoc: collection interrupted")

const secondaryPrompt = "> "

// Collect fills in Body for every HEREDOC redirection in pl, in pipeline
// order, mutating pl in place.
func Collect(pl ast.Pipeline, r Reader, e *env.Env) error {
	for i := range pl {
		cmd := &pl[i]
		for j := range cmd.Redirs {
			rd := &cmd.Redirs[j]
			if rd.Op != ast.RedirHeredoc {
				continue
			}
			body, err := collectOne(rd.Target, r, e)
			if err != nil {
				return err
			}
			rd.Body = body
		}
	}
	return nil
}

func collectOne(delim lexer.Token, r Reader, e *env.Env) (string, error) {
	delimStr := delim.Text()
	expandBody := delim.Unquoted()

	var lines []string
	for {
		line, err := r.ReadLine(secondaryPrompt)
		if err == ErrInterrupted {
			return "", err
		}
		if err != nil {
			// EOF before the delimiter: stop collecting with whatever we have,
			// same as most shells' non-fatal "unexpected EOF" handling.
			break
		}
		if line == delimStr {
			break
		}
		if expandBody {
			line = expand.Line(line, e)
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return "", nil
	}
	return strings.Join(lines, "\n") + "\n", nil
}
