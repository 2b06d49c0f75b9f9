package exec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brg/pebsh/env"
)

func TestResolveWithSlashVerbatim(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	e := env.New(nil, "pebsh")
	got, serr := resolve(path, e)
	if serr != nil {
		t.Fatalf("unexpected error: %v", serr)
	}
	if got != path {
		t.Fatalf("expected %q, got %q", path, got)
	}
}

func TestResolveWithSlashNotExecutableIs126(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(path, []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}
	e := env.New(nil, "pebsh")
	_, serr := resolve(path, e)
	if serr == nil || serr.ExitCode() != 126 {
		t.Fatalf("expected exit code 126, got %v", serr)
	}
}

func TestResolveWithSlashNotFoundIs127(t *testing.T) {
	e := env.New(nil, "pebsh")
	_, serr := resolve("/no/such/path", e)
	if serr == nil || serr.ExitCode() != 127 {
		t.Fatalf("expected exit code 127, got %v", serr)
	}
}

func TestResolveViaPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "myprog")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	e := env.New([]string{"PATH=/nonexistent:" + dir}, "pebsh")
	got, serr := resolve("myprog", e)
	if serr != nil {
		t.Fatalf("unexpected error: %v", serr)
	}
	if got != path {
		t.Fatalf("expected %q, got %q", path, got)
	}
}

func TestResolveViaPathNotFound(t *testing.T) {
	e := env.New([]string{"PATH=/nonexistent"}, "pebsh")
	_, serr := resolve("no-such-command", e)
	if serr == nil || serr.ExitCode() != 127 {
		t.Fatalf("expected exit code 127, got %v", serr)
	}
}
