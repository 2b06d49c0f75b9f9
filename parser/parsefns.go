package parser

import (
	"github.com/brg/pebsh/ast"
	"github.com/brg/pebsh/lexer"
	"github.com/brg/pebsh/status"
)

// Parse consumes toks to EOF and builds the ast.Pipeline it describes. An
// empty line (just TokEOF) is not an error: Parse returns a nil Pipeline
// and a nil error, and the caller does nothing.
//
// Every syntax error spec.md §4.2 names — a leading, trailing, or doubled
// PIPE, and a redirection operator not followed by a WORD — falls out of
// two rules: a command must consume at least one element before it may
// stop, and a redirection operator must be followed by exactly one WORD.
func Parse(toks <-chan lexer.Token) (ast.Pipeline, error) {
	p := newParser(toks)

	if p.peek().Kind == lexer.TokEOF {
		p.next()
		return nil, nil
	}

	var pl ast.Pipeline
	for {
		cmd, err := p.parseCommand()
		if err != nil {
			return nil, err
		}
		pl = append(pl, cmd)

		switch t := p.next(); t.Kind {
		case lexer.TokEOF:
			return pl, nil
		case lexer.TokPipe:
			continue
		case lexer.TokError:
			return nil, syntaxFromError(t)
		default:
			return nil, status.Syntax("unexpected %s", t)
		}
	}
}

// parseCommand consumes a maximal run of WORD and redirection elements. It
// never consumes the token that ends the command (PIPE, EOF, or a lexical
// error) so the caller can inspect it.
func (p *Parser) parseCommand() (ast.Command, error) {
	var cmd ast.Command
	n := 0

	for {
		switch t := p.peek(); t.Kind {
		case lexer.TokWord:
			p.next()
			cmd.Argv = append(cmd.Argv, t)
			n++

		case lexer.TokLT, lexer.TokGT, lexer.TokDGT, lexer.TokDLT:
			p.next()
			redir, err := p.parseRedir(t)
			if err != nil {
				return ast.Command{}, err
			}
			cmd.Redirs = append(cmd.Redirs, redir)
			n++

		case lexer.TokError:
			return ast.Command{}, syntaxFromError(t)

		default:
			if n == 0 {
				return ast.Command{}, status.Syntax("expected a command but got %s", t)
			}
			return cmd, nil
		}
	}
}

// parseRedir consumes the WORD following a redirection operator already
// taken off the stream as op.
func (p *Parser) parseRedir(op lexer.Token) (ast.Redir, error) {
	target := p.next()
	if target.Kind == lexer.TokError {
		return ast.Redir{}, syntaxFromError(target)
	}
	if target.Kind != lexer.TokWord {
		return ast.Redir{}, status.Syntax("expected a file name after %s but got %s", op, target)
	}
	return ast.Redir{Op: redirOpFor(op.Kind), Target: target}, nil
}

func redirOpFor(k lexer.TokenType) ast.RedirOp {
	switch k {
	case lexer.TokLT:
		return ast.RedirIn
	case lexer.TokGT:
		return ast.RedirOut
	case lexer.TokDGT:
		return ast.RedirAppend
	case lexer.TokDLT:
		return ast.RedirHeredoc
	}
	panic("parser: redirOpFor called with a non-redirection token kind")
}

func syntaxFromError(t lexer.Token) error {
	if t.Err == "" {
		return status.Syntax("lexical error")
	}
	return status.Syntax("%s", t.Err)
}
