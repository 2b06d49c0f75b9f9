// Package expand implements spec.md §4.3's variable expansion:
// quote-sensitive $-substitution over lexer fragments, followed by word
// splitting of unquoted substitutions.
package expand

import (
	"strconv"
	"strings"

	"github.com/brg/pebsh/env"
	"github.com/brg/pebsh/lexer"
)

func isVarStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isVarCont(b byte) bool {
	return isVarStart(b) || (b >= '0' && b <= '9')
}

// substitute scans text for $-forms and replaces them, per spec.md §4.3:
// $?, $0, $NAME, and a bare $ followed by anything else is left as a
// literal $ with the following character rescanned normally.
func substitute(text string, e *env.Env) string {
	var b strings.Builder
	i := 0
	for i < len(text) {
		if text[i] != '$' {
			b.WriteByte(text[i])
			i++
			continue
		}
		if i+1 >= len(text) {
			b.WriteByte('$')
			i++
			continue
		}
		switch next := text[i+1]; {
		case next == '?':
			b.WriteString(strconv.Itoa(e.LastStatus()))
			i += 2
		case next == '0':
			b.WriteString(e.ShellName())
			i += 2
		case isVarStart(next):
			j := i + 2
			for j < len(text) && isVarCont(text[j]) {
				j++
			}
			val, _ := e.Get(text[i+1 : j])
			b.WriteString(val)
			i = j
		default:
			b.WriteByte('$')
			i++
		}
	}
	return b.String()
}

// expandFragment applies §4.3's per-fragment rule: SINGLE is untouched;
// NONE and DOUBLE are substituted.
func expandFragment(f lexer.Fragment, e *env.Env) string {
	if f.Quoting == lexer.QSingle {
		return f.Text
	}
	return substitute(f.Text, e)
}

func isWhitespace(b byte) bool { return b == ' ' || b == '\t' }

// Word expands tok (an argv entry) into zero or more final argv strings.
// A NONE fragment's expanded text is splittable at whitespace boundaries
// (spec.md §4.3); a SINGLE or DOUBLE fragment's text is glued onto
// whatever field is being built regardless of whitespace inside it. A
// resulting field is only ever dropped when the token was NONE throughout
// and every fragment vanished, matching the "$UNSET alone disappears, but
// even an empty quoted word survives" rule.
func Word(tok lexer.Token, e *env.Env) []string {
	var fields []string
	cur := strings.Builder{}
	touched := false

	flush := func() {
		if touched {
			fields = append(fields, cur.String())
			cur.Reset()
			touched = false
		}
	}

	for _, f := range tok.Frags {
		text := expandFragment(f, e)
		if f.Quoting != lexer.QNone {
			cur.WriteString(text)
			touched = true
			continue
		}
		i := 0
		for i < len(text) {
			if isWhitespace(text[i]) {
				flush()
				i++
				continue
			}
			j := i
			for j < len(text) && !isWhitespace(text[j]) {
				j++
			}
			cur.WriteString(text[i:j])
			touched = true
			i = j
		}
	}
	flush()
	return fields
}

// Target expands a redirection's target word with no word splitting:
// spec.md §4.5 always treats it as a single string, so DOUBLE's "insert verbatim" rule applies uniformly regardless
// of the token's actual quoting.
func Target(tok lexer.Token, e *env.Env) string {
	var b strings.Builder
	for _, f := range tok.Frags {
		b.WriteString(expandFragment(f, e))
	}
	return b.String()
}

// Line expands one heredoc body line under §4.4's DOUBLE-style rule: $
// substitution, no splitting.
func Line(s string, e *env.Env) string {
	return substitute(s, e)
}
