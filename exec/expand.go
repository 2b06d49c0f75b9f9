package exec

import (
	"github.com/brg/pebsh/ast"
	"github.com/brg/pebsh/env"
	"github.com/brg/pebsh/expand"
)

// Expand builds the fully-expanded Pipeline exec.Run needs from a parsed
// ast.Pipeline, per spec.md §4.3. Heredoc redirections keep their
// delimiter text as Target (never expanded) and an empty Body: call
// FillHeredocBodies once the heredoc collector has run over the original
// ast.Pipeline to copy the collected bodies across.
func Expand(pl ast.Pipeline, e *env.Env) Pipeline {
	out := make(Pipeline, len(pl))
	for i, cmd := range pl {
		var argv []string
		for _, tok := range cmd.Argv {
			argv = append(argv, expand.Word(tok, e)...)
		}

		var redirs []Redir
		for _, r := range cmd.Redirs {
			if r.Op == ast.RedirHeredoc {
				redirs = append(redirs, Redir{Op: r.Op, Target: r.Target.Text()})
				continue
			}
			redirs = append(redirs, Redir{Op: r.Op, Target: expand.Target(r.Target, e)})
		}

		out[i] = Command{Argv: argv, Redirs: redirs}
	}
	return out
}

// FillHeredocBodies copies the bodies heredoc.Collect filled into src (the
// original ast.Pipeline) across to the matching RedirHeredoc entries of
// dst (the Expand output built from that same src before collection ran).
func FillHeredocBodies(dst Pipeline, src ast.Pipeline) {
	for i := range dst {
		for j := range dst[i].Redirs {
			if dst[i].Redirs[j].Op == ast.RedirHeredoc {
				dst[i].Redirs[j].Body = src[i].Redirs[j].Body
			}
		}
	}
}
