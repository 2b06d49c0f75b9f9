package lexer

import "fmt"

// Quoting records what kind of quote (if any) surrounded a fragment of text
// at lex time. It governs whether the expander may substitute variables in
// that fragment and whether whitespace inside it may split the argument.
type Quoting int

const (
	QNone Quoting = iota
	QSingle
	QDouble
)

func (q Quoting) String() string {
	switch q {
	case QSingle:
		return "single-quoted"
	case QDouble:
		return "double-quoted"
	default:
		return "unquoted"
	}
}

// TokenType enumerates the kinds of token the lexer produces.
type TokenType int

const (
	TokError TokenType = iota
	TokEOF

	TokWord // a WORD, quoted or not; see Token.Frags

	TokPipe  // |
	TokLT    // <
	TokGT    // >
	TokDGT   // >>
	TokDLT   // <<
)

// Fragment is a maximal run of a WORD with uniform quoting.
type Fragment struct {
	Text    string
	Quoting Quoting
}

// Token is one lexical unit of a command line.
type Token struct {
	Kind  TokenType
	Frags []Fragment // populated only for TokWord
	Err   string     // populated only for TokError
}

// Text concatenates a WORD token's fragments, ignoring quoting. It is used
// for token kinds (like heredoc delimiters) where the raw text is needed
// without quote-aware expansion.
func (t Token) Text() string {
	s := ""
	for _, f := range t.Frags {
		s += f.Text
	}
	return s
}

// Unquoted reports whether every fragment of a WORD token was written with
// no surrounding quotes at all. Heredoc delimiters use this to decide
// whether the body should be expanded.
func (t Token) Unquoted() bool {
	for _, f := range t.Frags {
		if f.Quoting != QNone {
			return false
		}
	}
	return true
}

func (t Token) String() string {
	switch t.Kind {
	case TokError:
		return "error: " + t.Err
	case TokEOF:
		return "end of input"
	case TokWord:
		return fmt.Sprintf("%q", t.Text())
	case TokPipe:
		return "|"
	case TokLT:
		return "<"
	case TokGT:
		return ">"
	case TokDGT:
		return ">>"
	case TokDLT:
		return "<<"
	}
	return "?"
}
