package driver_test

import (
	"testing"

	"modlint/internal/diag"
	"modlint/internal/driver"
	"modlint/internal/source"
)

func makeCachedFile(t *testing.T, content string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("cached.py", []byte(content))
	return fs.Get(fileID)
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt failed: %v", err)
	}

	file := makeCachedFile(t, "x = \"%d\" % \"1\"\n")
	stored := []diag.Diagnostic{
		{
			Severity: diag.SevError,
			Code:     diag.LintBadFormatType,
			Message:  "format type does not match argument type",
			Primary:  source.Span{File: file.ID, Start: 4, End: 14},
			Notes: []diag.Note{
				{Span: source.Span{File: file.ID, Start: 4, End: 8}, Msg: "directive here"},
			},
		},
	}

	if _, ok := cache.Lookup(file, "cfg1"); ok {
		t.Fatal("lookup hit before store")
	}

	cache.Store(file, "cfg1", stored)

	got, ok := cache.Lookup(file, "cfg1")
	if !ok {
		t.Fatal("lookup missed after store")
	}
	if len(got) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(got))
	}
	d := got[0]
	if d.Code != diag.LintBadFormatType || d.Severity != diag.SevError {
		t.Fatalf("round-tripped diagnostic mangled: %+v", d)
	}
	if d.Primary != stored[0].Primary {
		t.Fatalf("primary span = %+v, want %+v", d.Primary, stored[0].Primary)
	}
	if len(d.Notes) != 1 || d.Notes[0].Msg != "directive here" {
		t.Fatalf("notes mangled: %+v", d.Notes)
	}
}

func TestDiskCacheKeyedByConfig(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt failed: %v", err)
	}

	file := makeCachedFile(t, "x = 1\n")
	cache.Store(file, "cfgA", nil)

	if _, ok := cache.Lookup(file, "cfgA"); !ok {
		t.Fatal("same config should hit")
	}
	if _, ok := cache.Lookup(file, "cfgB"); ok {
		t.Fatal("different config fingerprint should miss")
	}
}

func TestDiskCacheKeyedByContent(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt failed: %v", err)
	}

	before := makeCachedFile(t, "x = 1\n")
	after := makeCachedFile(t, "x = 2\n")

	cache.Store(before, "cfg", nil)
	if _, ok := cache.Lookup(after, "cfg"); ok {
		t.Fatal("changed content should miss")
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt failed: %v", err)
	}

	file := makeCachedFile(t, "x = 1\n")
	cache.Store(file, "cfg", nil)

	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll failed: %v", err)
	}
	if _, ok := cache.Lookup(file, "cfg"); ok {
		t.Fatal("lookup hit after DropAll")
	}
}

func TestNilCacheIsNoOp(t *testing.T) {
	var cache *driver.DiskCache
	file := makeCachedFile(t, "x = 1\n")

	cache.Store(file, "cfg", nil)
	if _, ok := cache.Lookup(file, "cfg"); ok {
		t.Fatal("nil cache returned a hit")
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("nil DropAll failed: %v", err)
	}
}
