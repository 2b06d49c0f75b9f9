// Package shsignal implements spec.md §4.6's signal dispatcher: the
// INTERACTIVE/CHILD/HEREDOC disposition table, switched explicitly at the
// transitions the spec names.
//
// The CHILD row falls out of exec(2) semantics for free: POSIX resets a
// *caught* signal to its default disposition across exec, but leaves an
// *ignored* signal ignored. Dispatcher therefore always uses signal.Notify
// (catch), never signal.Ignore, for both SIGINT and SIGQUIT. That single
// choice gives every child spawned through os/exec the CHILD row's default
// SIGINT/SIGQUIT disposition automatically, with no per-child setup, while
// letting the shell's own process implement whatever it wants for
// INTERACTIVE and HEREDOC.
package shsignal

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// Mode names which row of spec.md §4.6's table currently governs SIGINT.
// SIGQUIT is ignored in both rows the shell itself ever occupies, so it
// needs no Mode of its own.
type Mode int32

const (
	Interactive Mode = iota
	Heredoc
)

// Dispatcher owns the shell process's SIGINT/SIGQUIT notification
// channels for its entire lifetime.
type Dispatcher struct {
	mode   atomic.Int32
	sigint chan os.Signal
	quit   chan os.Signal
	done   chan struct{}
}

// New installs the dispatcher's signal handlers and starts ignoring
// SIGQUIT immediately, matching spec.md §4.6's "once at startup
// (INTERACTIVE)" requirement.
func New() *Dispatcher {
	d := &Dispatcher{
		sigint: make(chan os.Signal, 1),
		quit:   make(chan os.Signal, 1),
		done:   make(chan struct{}),
	}
	signal.Notify(d.sigint, syscall.SIGINT)
	signal.Notify(d.quit, syscall.SIGQUIT)
	go d.ignoreQuit()
	return d
}

func (d *Dispatcher) ignoreQuit() {
	for {
		select {
		case <-d.quit:
			// INTERACTIVE and HEREDOC both ignore SIGQUIT (spec.md §4.6);
			// there is nothing to do but let the signal disappear here
			// instead of at Go's default SIGQUIT handler (which dumps every
			// goroutine's stack).
		case <-d.done:
			return
		}
	}
}

// SetMode switches which row of the table governs SIGINT. Callers invoke
// this immediately before heredoc collection and immediately after it
// returns; a Dispatcher fresh from New already starts in Interactive.
func (d *Dispatcher) SetMode(m Mode) {
	d.mode.Store(int32(m))
}

func (d *Dispatcher) Mode() Mode {
	return Mode(d.mode.Load())
}

// Interrupted delivers one value per SIGINT received by the shell's own
// process (never its children, whose disposition resets to default across
// exec).
func (d *Dispatcher) Interrupted() <-chan os.Signal {
	return d.sigint
}

// DrainForeground discards a pending SIGINT without blocking. A running
// foreground pipeline takes the terminal out of the line editor's own
// raw-mode key handling, so a Ctrl-C typed while an external command runs
// reaches pebsh as a real SIGINT (caught, per the package doc comment)
// rather than as the line editor's own ErrInterrupt. The REPL loop calls
// this once a pipeline finishes, so that signal doesn't linger in the
// channel and misfire against the next command.
func (d *Dispatcher) DrainForeground() {
	select {
	case <-d.sigint:
	default:
	}
}

// Stop tears down the dispatcher's signal handlers. Only meant to be
// called once, at shell exit.
func (d *Dispatcher) Stop() {
	signal.Stop(d.sigint)
	signal.Stop(d.quit)
	close(d.done)
}
