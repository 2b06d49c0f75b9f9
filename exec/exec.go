package exec

import (
	"fmt"
	"io"
	"os"
	osexec "os/exec"
	"sync"
	"syscall"

	"github.com/brg/pebsh/builtin"
	"github.com/brg/pebsh/env"
	"github.com/brg/pebsh/shlog"
	"github.com/brg/pebsh/status"
	"github.com/spf13/afero"
)

// Run executes an already-expanded Pipeline and returns the exit status to
// record as last_status, per spec.md §4.5. stdin/stdout/stderr are the
// shell's own streams; exitFn is called (only ever for the
// single-builtin-in-parent fast path's `exit`) to request the whole
// process terminate.
func Run(pl Pipeline, e *env.Env, stdin, stdout, stderr *os.File, exitFn func(int)) int {
	return RunWithFS(pl, e, stdin, stdout, stderr, exitFn, afero.NewOsFs())
}

// RunWithFS is Run with an injectable afero.Fs for the single-builtin
// redirection path, so tests can exercise it against
// afero.NewMemMapFs() instead of touching disk.
func RunWithFS(pl Pipeline, e *env.Env, stdin, stdout, stderr *os.File, exitFn func(int), fs afero.Fs) int {
	if len(pl) == 0 {
		return e.LastStatus()
	}

	if len(pl) == 1 && len(pl[0].Argv) > 0 && builtin.Is(pl[0].Argv[0]) {
		st := runSingleBuiltin(pl[0], e, stdin, stdout, stderr, exitFn, fs)
		e.SetLastStatus(st)
		return st
	}

	return runPipeline(pl, e, stdin, stdout, stderr)
}

func runSingleBuiltin(cmd Command, e *env.Env, stdin, stdout, stderr *os.File, exitFn func(int), fs afero.Fs) int {
	ctx := &builtin.Context{
		Argv:   cmd.Argv,
		Stdin:  io.Reader(stdin),
		Stdout: io.Writer(stdout),
		Stderr: stderr,
		Env:    e,
		Exit:   exitFn,
	}

	closeAll, serr := applyRedirsAfero(fs, cmd.Redirs, &ctx.Stdin, &ctx.Stdout)
	if serr != nil {
		shlog.Fprint(stderr, "%s", serr)
		return serr.ExitCode()
	}
	defer closeAll()

	return builtin.Commands[cmd.Argv[0]](ctx)
}

type stageResult struct {
	status int
	sigint bool
}

func runPipeline(pl Pipeline, e *env.Env, shellStdin, shellStdout, shellStderr *os.File) int {
	n := len(pl)

	type pipeEnd struct{ r, w *os.File }
	pipes := make([]pipeEnd, n-1)
	for i := range pipes {
		r, w, err := os.Pipe()
		if err != nil {
			shlog.Fprint(shellStderr, "%s", status.System("%s", err))
			return 1
		}
		pipes[i] = pipeEnd{r, w}
	}

	results := make([]stageResult, n)
	var wg sync.WaitGroup
	wg.Add(n)

	for i := 0; i < n; i++ {
		in, out := shellStdin, shellStdout
		if i > 0 {
			in = pipes[i-1].r
		}
		if i < n-1 {
			out = pipes[i].w
		}

		go func(i int, cmd Command, in, out *os.File) {
			defer wg.Done()
			results[i] = runStage(cmd, e, in, out, shellStderr)
			if i > 0 {
				pipes[i-1].r.Close()
			}
			if i < n-1 {
				pipes[i].w.Close()
			}
		}(i, pl[i], in, out)
	}

	wg.Wait()

	last := results[n-1]
	e.SetLastStatus(last.status)
	if last.sigint {
		fmt.Fprintln(shellStdout)
	}
	return last.status
}

func runStage(cmd Command, e *env.Env, stdin, stdout, stderr *os.File) stageResult {
	in, out, closeAll, serr := applyRedirsOS(cmd.Redirs, stdin, stdout)
	if serr != nil {
		shlog.Fprint(stderr, "%s", serr)
		return stageResult{status: serr.ExitCode()}
	}
	defer closeAll()

	if len(cmd.Argv) == 0 {
		return stageResult{status: 0}
	}

	name := cmd.Argv[0]
	if fn, ok := builtin.Commands[name]; ok {
		// A builtin running as one stage of a multi-stage pipeline gets an
		// isolated Env: it runs concurrently with the other stages (see
		// runPipeline's goroutine-per-stage loop) and, like any other stage,
		// must not let cd/export/unset mutate the parent shell's variables.
		ctx := &builtin.Context{Argv: cmd.Argv, Stdin: in, Stdout: out, Stderr: stderr, Env: e.Snapshot()}
		return stageResult{status: fn(ctx)}
	}

	path, rerr := resolve(name, e)
	if rerr != nil {
		shlog.Fprint(stderr, "%s", rerr)
		return stageResult{status: rerr.ExitCode()}
	}

	c := osexec.Command(path, cmd.Argv[1:]...)
	c.Stdin, c.Stdout, c.Stderr = in, out, stderr
	c.Env = e.Exported()

	switch runErr := c.Run(); exitErr := runErr.(type) {
	case nil:
		return stageResult{status: 0}
	case *osexec.ExitError:
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			sig := ws.Signal()
			return stageResult{status: status.Signaled(int(sig)), sigint: sig == syscall.SIGINT}
		}
		return stageResult{status: exitErr.ExitCode()}
	default:
		shlog.Fprint(stderr, "%s", status.Exec("%s", runErr))
		return stageResult{status: 1}
	}
}
