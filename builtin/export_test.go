package builtin

import (
	"testing"

	"github.com/brg/pebsh/env"
	"github.com/sebdah/goldie/v2"
)

func TestExportNoArgsListing(t *testing.T) {
	e := env.New(nil, "pebsh")
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(e.Export("APPLE", "red", true))
	must(e.Export("BANANA", "yellow and long", true))
	must(e.Set("SECRET", "not exported"))

	c, out, _ := newCtx([]string{"export"}, e)
	if status := export(c); status != 0 {
		t.Fatalf("expected status 0, got %d", status)
	}

	g := goldie.New(t)
	g.Assert(t, "export_listing", out.Bytes())
}

func TestExportSetsAndMarksExported(t *testing.T) {
	e := env.New(nil, "pebsh")
	if err := e.Set("EXISTING", "kept"); err != nil {
		t.Fatal(err)
	}

	c, _, errb := newCtx([]string{"export", "EXISTING", "NEW=val", "1bad"}, e)
	status := export(c)
	if status != 1 {
		t.Fatalf("expected status 1 (one bad name), got %d, stderr=%q", status, errb.String())
	}

	v, ok := e.Variable("EXISTING")
	if !ok || !v.Exported || v.Value != "kept" {
		t.Fatalf("expected EXISTING exported with value preserved, got %+v", v)
	}
	v, ok = e.Variable("NEW")
	if !ok || !v.Exported || v.Value != "val" {
		t.Fatalf("expected NEW=val exported, got %+v", v)
	}
}
