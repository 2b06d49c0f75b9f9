package exec

import (
	"io"
	"os"
	"strings"

	"github.com/brg/pebsh/ast"
	"github.com/brg/pebsh/status"
	"github.com/spf13/afero"
)

const (
	outFlags    = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	appendFlags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	filePerm    = 0644
)

// applyRedirsAfero opens spec.md §4.5's redirections against fs for the
// single-builtin-in-parent fast path: redirections are applied to
// duplicated fds that are restored after the builtin returns. In Go terms
// that means pointing the builtin's Context at a new stream temporarily,
// never touching the shell's own stdio — the shell's *os.File for stdout
// is never passed to fs, so it is never at risk. Redirections are applied
// left-to-right; later ones for the same direction supersede earlier ones,
// but every open (and OUT/APPEND's create/truncate) still happens as a
// side effect.
func applyRedirsAfero(fs afero.Fs, redirs []Redir, stdin *io.Reader, stdout *io.Writer) (func(), *status.Error) {
	var lastIn, lastOut afero.File

	closeAll := func() {
		if lastIn != nil {
			lastIn.Close()
		}
		if lastOut != nil {
			lastOut.Close()
		}
	}

	for _, r := range redirs {
		switch r.Op {
		case ast.RedirIn:
			f, err := fs.OpenFile(r.Target, os.O_RDONLY, 0)
			if err != nil {
				closeAll()
				return nil, status.Redirection("%s: %s", r.Target, err)
			}
			if lastIn != nil {
				lastIn.Close()
			}
			lastIn = f
			*stdin = f

		case ast.RedirOut:
			f, err := fs.OpenFile(r.Target, outFlags, filePerm)
			if err != nil {
				closeAll()
				return nil, status.Redirection("%s: %s", r.Target, err)
			}
			if lastOut != nil {
				lastOut.Close()
			}
			lastOut = f
			*stdout = f

		case ast.RedirAppend:
			f, err := fs.OpenFile(r.Target, appendFlags, filePerm)
			if err != nil {
				closeAll()
				return nil, status.Redirection("%s: %s", r.Target, err)
			}
			if lastOut != nil {
				lastOut.Close()
			}
			lastOut = f
			*stdout = f

		case ast.RedirHeredoc:
			*stdin = strings.NewReader(r.Body)
		}
	}

	return closeAll, nil
}

// applyRedirsOS is applyRedirsAfero's counterpart for pipeline stages that
// run as a real exec.Cmd or as an in-process builtin acting as one stage
// of a multi-stage pipeline: it needs a live OS file descriptor so it can
// be handed to exec.Cmd.Stdin/Stdout, which afero.File does not portably
// provide. A HEREDOC redirection is realized as spec.md §4.5 literally
// describes it: the body is written to a pipe and the read end is used as
// stdin.
func applyRedirsOS(redirs []Redir, stdin *os.File, stdout *os.File) (*os.File, *os.File, func(), *status.Error) {
	in, out := stdin, stdout
	var opened []*os.File

	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	replace := func(cur **os.File, f *os.File) {
		opened = append(opened, f)
		*cur = f
	}

	for _, r := range redirs {
		switch r.Op {
		case ast.RedirIn:
			f, err := os.OpenFile(r.Target, os.O_RDONLY, 0)
			if err != nil {
				closeAll()
				return nil, nil, nil, status.Redirection("%s: %s", r.Target, err)
			}
			replace(&in, f)

		case ast.RedirOut:
			f, err := os.OpenFile(r.Target, outFlags, filePerm)
			if err != nil {
				closeAll()
				return nil, nil, nil, status.Redirection("%s: %s", r.Target, err)
			}
			replace(&out, f)

		case ast.RedirAppend:
			f, err := os.OpenFile(r.Target, appendFlags, filePerm)
			if err != nil {
				closeAll()
				return nil, nil, nil, status.Redirection("%s: %s", r.Target, err)
			}
			replace(&out, f)

		case ast.RedirHeredoc:
			pr, pw, err := os.Pipe()
			if err != nil {
				closeAll()
				return nil, nil, nil, status.System("%s", err)
			}
			go func(body string) {
				io.Copy(pw, strings.NewReader(body))
				pw.Close()
			}(r.Body)
			replace(&in, pr)
		}
	}

	return in, out, closeAll, nil
}
