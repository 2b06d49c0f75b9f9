package heredoc

import (
	"testing"

	"github.com/brg/pebsh/ast"
	"github.com/brg/pebsh/env"
	"github.com/brg/pebsh/lexer"
)

type fakeReader struct {
	lines []string
	i     int
	err   error
}

func (f *fakeReader) ReadLine(prompt string) (string, error) {
	if f.i >= len(f.lines) {
		if f.err != nil {
			return "", f.err
		}
		return "", errEOF
	}
	l := f.lines[f.i]
	f.i++
	return l, nil
}

var errEOF = errEOFType{}

type errEOFType struct{}

func (errEOFType) Error() string { return "EOF" }

func wordToken(input string) lexer.Token {
	l := lexer.New(input)
	go l.Run()
	var last lexer.Token
	for t := range l.Out {
		if t.Kind == lexer.TokWord {
			last = t
		}
	}
	return last
}

func TestCollectUnquotedDelimiterExpands(t *testing.T) {
	e := env.New(nil, "pebsh")
	if err := e.Set("X", "world"); err != nil {
		t.Fatal(err)
	}
	pl := ast.Pipeline{{
		Redirs: []ast.Redir{{Op: ast.RedirHeredoc, Target: wordToken("EOF")}},
	}}
	r := &fakeReader{lines: []string{"hello $X", "EOF"}}
	if err := Collect(pl, r, e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := pl[0].Redirs[0].Body, "hello world\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCollectQuotedDelimiterPreservesLiteral(t *testing.T) {
	e := env.New(nil, "pebsh")
	if err := e.Set("X", "world"); err != nil {
		t.Fatal(err)
	}
	pl := ast.Pipeline{{
		Redirs: []ast.Redir{{Op: ast.RedirHeredoc, Target: wordToken(`'EOF'`)}},
	}}
	r := &fakeReader{lines: []string{"hello $X", "EOF"}}
	if err := Collect(pl, r, e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := pl[0].Redirs[0].Body, "hello $X\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCollectInterrupted(t *testing.T) {
	e := env.New(nil, "pebsh")
	pl := ast.Pipeline{{
		Redirs: []ast.Redir{{Op: ast.RedirHeredoc, Target: wordToken("EOF")}},
	}}
	r := &fakeReader{err: ErrInterrupted}
	if err := Collect(pl, r, e); err != ErrInterrupted {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}
}

func TestCollectMultipleHeredocsInPipelineOrder(t *testing.T) {
	e := env.New(nil, "pebsh")
	pl := ast.Pipeline{
		{Redirs: []ast.Redir{{Op: ast.RedirHeredoc, Target: wordToken("A")}}},
		{Redirs: []ast.Redir{{Op: ast.RedirHeredoc, Target: wordToken("B")}}},
	}
	r := &fakeReader{lines: []string{"first", "A", "second", "B"}}
	if err := Collect(pl, r, e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pl[0].Redirs[0].Body != "first\n" || pl[1].Redirs[0].Body != "second\n" {
		t.Fatalf("unexpected bodies: %q, %q", pl[0].Redirs[0].Body, pl[1].Redirs[0].Body)
	}
}
