package builtin

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/brg/pebsh/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCtx(argv []string, e *env.Env) (*Context, *bytes.Buffer, *bytes.Buffer) {
	var out, errb bytes.Buffer
	return &Context{
		Argv:   argv,
		Stdin:  bytes.NewReader(nil),
		Stdout: &out,
		Stderr: &errb,
		Env:    e,
	}, &out, &errb
}

func TestEchoJoinsWithSpaceAndNewline(t *testing.T) {
	c, out, _ := newCtx([]string{"echo", "hello", "world"}, env.New(nil, "pebsh"))
	status := echo(c)
	require.Equal(t, 0, status)
	assert.Equal(t, "hello world\n", out.String())
}

func TestEchoSuppressesNewlineWithNFlag(t *testing.T) {
	c, out, _ := newCtx([]string{"echo", "-nn", "hi"}, env.New(nil, "pebsh"))
	status := echo(c)
	require.Equal(t, 0, status)
	assert.Equal(t, "hi", out.String())
}

func TestPwdPrintsWorkingDirectory(t *testing.T) {
	c, out, _ := newCtx([]string{"pwd"}, env.New(nil, "pebsh"))
	status := pwd(c)
	require.Equal(t, 0, status)
	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd+"\n", out.String())
}

func TestCdNoArgUsesHome(t *testing.T) {
	start, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(start)

	tmp := t.TempDir()
	e := env.New([]string{"HOME=" + tmp}, "pebsh")
	c, _, errb := newCtx([]string{"cd"}, e)
	status := cd(c)
	require.Equal(t, 0, status, errb.String())

	cwd, err := os.Getwd()
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(tmp)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(cwd)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCdMissingHomeIsError(t *testing.T) {
	e := env.New(nil, "pebsh")
	c, _, _ := newCtx([]string{"cd"}, e)
	status := cd(c)
	assert.Equal(t, 1, status)
}

func TestCdDashUsesOldpwdAndEchoes(t *testing.T) {
	start, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(start)

	a, b := t.TempDir(), t.TempDir()
	e := env.New(nil, "pebsh")

	require.NoError(t, os.Chdir(a))
	c, _, errb := newCtx([]string{"cd", b}, e)
	require.Equal(t, 0, cd(c), errb.String())

	c, out, errb := newCtx([]string{"cd", "-"}, e)
	require.Equal(t, 0, cd(c), errb.String())
	assert.NotEmpty(t, out.String())
}

func TestUnsetSkipsInvalidNamesButContinues(t *testing.T) {
	e := env.New([]string{"X=1", "Y=2"}, "pebsh")
	c, _, _ := newCtx([]string{"unset", "1bad", "X"}, e)
	status := unset(c)
	assert.Equal(t, 1, status)
	_, ok := e.Get("X")
	assert.False(t, ok)
}

func TestExitNoArgUsesLastStatus(t *testing.T) {
	e := env.New(nil, "pebsh")
	e.SetLastStatus(42)
	var requested = -1
	c, _, _ := newCtx([]string{"exit"}, e)
	c.Exit = func(status int) { requested = status }
	status := exit(c)
	assert.Equal(t, 42, status)
	assert.Equal(t, 42, requested)
}

func TestExitNumericArgWrapsModulo256(t *testing.T) {
	c, _, _ := newCtx([]string{"exit", "300"}, env.New(nil, "pebsh"))
	status := exit(c)
	assert.Equal(t, 300%256, status)
}

func TestExitNonNumericArgIs255(t *testing.T) {
	c, _, errb := newCtx([]string{"exit", "nope"}, env.New(nil, "pebsh"))
	status := exit(c)
	assert.Equal(t, 255, status)
	assert.Contains(t, errb.String(), "numeric argument required")
}

func TestExitTooManyArgsDoesNotRequestExit(t *testing.T) {
	requested := false
	c, _, errb := newCtx([]string{"exit", "1", "2"}, env.New(nil, "pebsh"))
	c.Exit = func(int) { requested = true }
	status := exit(c)
	assert.Equal(t, 1, status)
	assert.False(t, requested)
	assert.Contains(t, errb.String(), "too many arguments")
}
