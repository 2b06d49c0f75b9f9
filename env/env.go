// Package env implements spec.md §3's Env: the shared store of shell
// variables, the last pipeline exit status, and the shell's own name. It is
// read by the expander and executor and mutated by cd/export/unset.
package env

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Variable is one entry of the store: a value plus whether it is exported
// into the environment of child processes.
type Variable struct {
	Value    string
	Exported bool
}

// Env is the process-wide variable store. It is safe for concurrent use:
// the stages of a multi-stage pipeline run as concurrent goroutines that
// all read it.
type Env struct {
	mu    sync.RWMutex
	vars  map[string]Variable
	last  int
	shell string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("shellvar", validateShellVar); err != nil {
		panic("env: failed to register shellvar validator: " + err.Error())
	}
	return v
}

// validateShellVar enforces spec.md §3's identifier rule: non-empty, first
// character alphabetic or underscore, remainder alphanumeric or
// underscore.
func validateShellVar(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

type nameHolder struct {
	Name string `validate:"required,shellvar"`
}

// ValidName reports whether name satisfies spec.md §3's variable-name
// rule.
func ValidName(name string) bool {
	return validate.Struct(nameHolder{Name: name}) == nil
}

// New builds an Env from a `NAME=VALUE` slice in the shape os.Environ()
// returns, marking every variable inherited this way as exported (it came
// from the process's real environment) and shell as the shell's argv[0].
func New(environ []string, shell string) *Env {
	e := &Env{vars: make(map[string]Variable, len(environ)), shell: shell}
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !ValidName(name) {
			continue
		}
		e.vars[name] = Variable{Value: value, Exported: true}
	}
	return e
}

// Get returns the value of name and whether it is set at all (exported or
// not).
func (e *Env) Get(name string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.vars[name]
	return v.Value, ok
}

// Set assigns value to name, creating it if absent, without changing its
// exported bit. It returns an error if name fails spec.md §3's identifier
// rule.
func (e *Env) Set(name, value string) error {
	if !ValidName(name) {
		return fmt.Errorf("%q: not a valid variable name", name)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	v := e.vars[name]
	v.Value = value
	e.vars[name] = v
	return nil
}

// Export marks name as exported, creating it as an empty exported variable
// if absent (spec.md §9's resolution of the "export without =" open
// question), or setting it to value if withValue is true.
func (e *Env) Export(name string, value string, withValue bool) error {
	if !ValidName(name) {
		return fmt.Errorf("%q: not a valid variable name", name)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	v := e.vars[name]
	if withValue {
		v.Value = value
	}
	v.Exported = true
	e.vars[name] = v
	return nil
}

// Unset removes name entirely.
func (e *Env) Unset(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.vars, name)
}

// Exported returns the exported variables as `NAME=VALUE` pairs sorted by
// name, the shape both `env` and a child process's environment need.
func (e *Env) Exported() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, 0, len(e.vars))
	for name, v := range e.vars {
		if v.Exported {
			out = append(out, name+"="+v.Value)
		}
	}
	sort.Strings(out)
	return out
}

// All returns every variable name in sorted order, exported or not, for
// `export`'s no-argument listing.
func (e *Env) All() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, 0, len(e.vars))
	for name := range e.vars {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Variable returns a copy of the named variable and whether it exists.
func (e *Env) Variable(name string) (Variable, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.vars[name]
	return v, ok
}

// Snapshot returns an independent copy of the store. A builtin run as one
// stage of a multi-stage pipeline gets a Snapshot instead of the shared
// Env, so its cd/export/unset mutations die with that stage instead of
// reaching the parent shell, matching the isolation a real fork()'d
// child's copied address space would give the same builtin.
func (e *Env) Snapshot() *Env {
	e.mu.RLock()
	defer e.mu.RUnlock()
	vars := make(map[string]Variable, len(e.vars))
	for name, v := range e.vars {
		vars[name] = v
	}
	return &Env{vars: vars, last: e.last, shell: e.shell}
}

// LastStatus returns the exit status of the most recently completed
// pipeline.
func (e *Env) LastStatus() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.last
}

// SetLastStatus records the exit status of the most recently completed
// pipeline, kept within spec.md §3's [0,255] range: a negative status
// becomes 0 and a status above 255 keeps only its low eight bits.
func (e *Env) SetLastStatus(status int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case status < 0:
		status = 0
	case status > 255:
		status = status & 0xff
	}
	e.last = status
}

// ShellName returns $0 for expansion purposes.
func (e *Env) ShellName() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.shell
}
