package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"modlint/internal/source"
)

func TestAddVirtualAndResolve(t *testing.T) {
	fs := source.NewFileSet()
	content := "line one\nline two\nline three\n"
	fileID := fs.AddVirtual("test.py", []byte(content))
	file := fs.Get(fileID)

	if file.Flags&source.FileVirtual == 0 {
		t.Fatal("virtual flag not set")
	}

	// Offset 9 is the 'l' of "line two".
	span := source.Span{File: fileID, Start: 9, End: 13}
	start, end := fs.Resolve(span)
	if start.Line != 2 || start.Col != 1 {
		t.Fatalf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 5 {
		t.Fatalf("end = %d:%d, want 2:5", end.Line, end.Col)
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.py", []byte("first\nsecond\nthird"))
	file := fs.Get(fileID)

	tests := []struct {
		line uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{0, ""},
		{4, ""},
	}
	for _, tt := range tests {
		if got := file.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.py")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a = 1\r\nb = 2\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	file := fs.Get(fileID)

	if file.Flags&source.FileHadBOM == 0 {
		t.Error("BOM flag not set")
	}
	if file.Flags&source.FileNormalizedCRLF == 0 {
		t.Error("CRLF flag not set")
	}
	if string(file.Content) != "a = 1\nb = 2\n" {
		t.Fatalf("content = %q", file.Content)
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{File: 1, Start: 4, End: 8}
	b := source.Span{File: 1, Start: 10, End: 16}
	got := a.Cover(b)
	if got.Start != 4 || got.End != 16 {
		t.Fatalf("Cover = %+v", got)
	}
	if got.Len() != 12 {
		t.Fatalf("Len = %d, want 12", got.Len())
	}
	if got.Empty() {
		t.Fatal("covered span reported empty")
	}
}

func TestGetByPath(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("pkg/mod.py", []byte("x = 1"))

	if _, ok := fs.GetByPath("pkg/mod.py"); !ok {
		t.Fatal("loaded file not found by path")
	}
	if _, ok := fs.GetByPath("pkg/other.py"); ok {
		t.Fatal("unknown path reported as loaded")
	}
}
