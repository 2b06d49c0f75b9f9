// Package parser turns a lexer token stream into an ast.Pipeline, following
// spec.md §4.2's grammar:
//
//	pipeline := command ( PIPE command )*
//	command  := element+
//	element  := WORD | redir
//	redir    := (LT | GT | DGT) WORD | DLT WORD
//
// It reads directly off a <-chan lexer.Token with a one-token lookahead
// cache, the same shape as the teacher's parser.
package parser

import "github.com/brg/pebsh/lexer"

// Parser wraps a token channel with the one-token lookahead recursive
// descent needs.
type Parser struct {
	toks  <-chan lexer.Token
	cache *lexer.Token
}

func newParser(toks <-chan lexer.Token) *Parser {
	return &Parser{toks: toks}
}

// next consumes and returns the next token.
func (p *Parser) next() lexer.Token {
	if p.cache != nil {
		t := *p.cache
		p.cache = nil
		return t
	}
	return <-p.toks
}

// peek returns the next token without consuming it.
func (p *Parser) peek() lexer.Token {
	if p.cache == nil {
		t := <-p.toks
		p.cache = &t
	}
	return *p.cache
}
