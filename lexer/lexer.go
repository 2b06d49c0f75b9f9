// Package lexer turns a raw shell input line into a flat stream of tokens,
// respecting single- and double-quoting. It follows the channel-driven
// state-function design common to line lexers: Run steps through a chain of
// lexFn values, each emitting zero or more tokens on Out before returning
// the next state, until the chain terminates.
package lexer

import (
	"fmt"
	"unicode/utf8"
)

const eof rune = -1

// Lexer scans a single input line into tokens delivered on Out.
type Lexer struct {
	input string
	start int // start of the fragment currently being scanned
	pos   int // scan cursor
	width int // width in bytes of the last rune returned by next

	frags []Fragment // fragments accumulated for the WORD in progress

	Out chan Token
}

// New prepares a Lexer over input. Call Run (typically in its own
// goroutine) to begin producing tokens on Out; Out is closed when lexing
// finishes, whether by reaching EOF or by a lexical error.
func New(input string) *Lexer {
	return &Lexer{
		input: input,
		Out:   make(chan Token),
	}
}

// Run drives the state machine to completion. It is meant to be started
// with `go l.Run()` so the parser can consume tokens as they're produced.
func (l *Lexer) Run() {
	for state := lexDefault; state != nil; {
		state = state(l)
	}
	close(l.Out)
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	return r
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) backup() {
	l.pos -= l.width
}

// pushFragment closes out the fragment [l.start, l.pos) under the given
// quoting and starts a new fragment right after it. An empty quoted run
// ('' or "") is kept as an empty fragment so the word it forms survives.
func (l *Lexer) pushFragment(q Quoting) {
	if l.pos > l.start || q != QNone {
		l.frags = append(l.frags, Fragment{Text: l.input[l.start:l.pos], Quoting: q})
	}
	l.start = l.pos
}

func (l *Lexer) emitWord() {
	l.Out <- Token{Kind: TokWord, Frags: l.frags}
	l.frags = nil
	l.start = l.pos
}

func (l *Lexer) emit(k TokenType) {
	l.Out <- Token{Kind: k}
	l.start = l.pos
}

func (l *Lexer) errorf(format string, args ...any) lexFn {
	l.Out <- Token{Kind: TokError, Err: fmt.Sprintf(format, args...)}
	return nil
}
