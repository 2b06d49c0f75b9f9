// Command pebsh is an interactive POSIX-subset shell: it reads lines from
// a terminal, parses them into pipelines with redirections and variable
// expansions, and executes them using the host operating system's process
// and file-descriptor primitives.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"

	"github.com/brg/pebsh/ast"
	"github.com/brg/pebsh/env"
	"github.com/brg/pebsh/exec"
	"github.com/brg/pebsh/heredoc"
	"github.com/brg/pebsh/lexer"
	"github.com/brg/pebsh/parser"
	"github.com/brg/pebsh/shlog"
	"github.com/brg/pebsh/shsignal"
	"github.com/brg/pebsh/status"
)

var primaryPrompt = color.New(color.FgGreen, color.Bold).Sprint("pebsh$ ")

func main() {
	cfg := &readline.Config{Prompt: primaryPrompt}
	if err := cfg.Init(); err != nil {
		shlog.Fatal("failed to initialize line editor: %s", err)
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		shlog.Fatal("failed to initialize line editor: %s", err)
	}
	defer rl.Close()

	e := env.New(os.Environ(), "pebsh")
	dispatcher := shsignal.New()
	defer dispatcher.Stop()

	os.Exit(repl(rl, e, dispatcher))
}

// lineReader adapts *readline.Instance to heredoc.Reader. Whether the line
// editor's own SIGINT signaling means "abort this heredoc" or "abort this
// prompt" depends on which row of spec.md §4.6's table currently governs,
// so it consults the dispatcher's Mode rather than assuming one meaning.
type lineReader struct {
	rl         *readline.Instance
	dispatcher *shsignal.Dispatcher
}

func (r *lineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err == readline.ErrInterrupt && r.dispatcher.Mode() == shsignal.Heredoc {
		return "", heredoc.ErrInterrupted
	}
	return line, err
}

// repl runs until EOF or `exit`, returning the process exit code.
func repl(rl *readline.Instance, e *env.Env, dispatcher *shsignal.Dispatcher) int {
	reader := &lineReader{rl: rl, dispatcher: dispatcher}

	// requestExit is handed to exec.Run for spec.md §4.5's
	// single-builtin-in-parent fast path only; it's how the exit builtin
	// actually terminates the shell instead of merely ending a pipeline
	// stage.
	requestExit := func(code int) {
		rl.Close()
		os.Exit(code)
	}

	for {
		line, err := reader.ReadLine(primaryPrompt)

		switch {
		case err == io.EOF:
			return e.LastStatus()

		case err == readline.ErrInterrupt:
			fmt.Println()
			e.SetLastStatus(130)
			continue

		case err != nil:
			shlog.Warn("%s", err)
			continue

		case strings.TrimSpace(line) == "":
			continue
		}

		runLine(line, e, reader, dispatcher, requestExit)
	}
}

// runLine drives one input line through spec.md §4.1-§4.5's pipeline:
// lex+parse, expand, collect heredocs, execute.
func runLine(line string, e *env.Env, reader *lineReader, dispatcher *shsignal.Dispatcher, requestExit func(int)) {
	pl, perr := parseLine(line)
	if perr != nil {
		shlog.Warn("%s", perr)
		if ee, ok := perr.(status.ExitError); ok {
			e.SetLastStatus(ee.ExitCode())
		} else {
			e.SetLastStatus(1)
		}
		return
	}
	if pl == nil {
		return
	}

	epl := exec.Expand(pl, e)

	dispatcher.SetMode(shsignal.Heredoc)
	herr := heredoc.Collect(pl, reader, e)
	dispatcher.SetMode(shsignal.Interactive)

	if herr != nil {
		if herr == heredoc.ErrInterrupted {
			fmt.Println()
			e.SetLastStatus(130)
		} else {
			shlog.Warn("%s", herr)
			e.SetLastStatus(1)
		}
		return
	}
	exec.FillHeredocBodies(epl, pl)

	st := exec.Run(epl, e, os.Stdin, os.Stdout, os.Stderr, requestExit)
	e.SetLastStatus(st)
	dispatcher.DrainForeground()
}

// parseLine lexes and parses one input line. A nil, nil result means the
// line held no command at all (whitespace only).
func parseLine(line string) (ast.Pipeline, error) {
	l := lexer.New(line)
	go l.Run()
	return parser.Parse(l.Out)
}
