package fsutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestMemoryFileSystem(t *testing.T) {
	m := NewMemoryFileSystem()

	if _, err := m.Create("/rec/a.raw"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Create without parent: got %v, want ErrNotExist", err)
	}
	if err := m.MkdirAll("/rec/day1", 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	w, err := m.Create("/rec/day1/a.raw")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := w.Write([]byte("abc")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got, _ := m.ReadFile("/rec/day1/a.raw"); len(got) != 0 {
		t.Errorf("data visible before Close: %q", got)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); !errors.Is(err, fs.ErrClosed) {
		t.Errorf("second Close: got %v, want ErrClosed", err)
	}

	got, err := m.ReadFile(filepath.Join("/rec", "day1", "..", "day1", "a.raw"))
	if err != nil || string(got) != "abc" {
		t.Errorf("ReadFile = %q, %v; want abc", got, err)
	}

	if err := m.MkdirAll("/rec/day1/a.raw/x", 0o755); err == nil {
		t.Error("MkdirAll through a file should fail")
	}
	if _, err := m.ReadFile("/missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile missing: got %v", err)
	}
}

func TestOSFileSystem(t *testing.T) {
	var fsys FileSystem = OSFileSystem{}
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	w, err := fsys.Create(filepath.Join(dir, "f"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, _ = w.Write([]byte("xy"))
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got, err := fsys.ReadFile(filepath.Join(dir, "f")); err != nil || string(got) != "xy" {
		t.Errorf("ReadFile = %q, %v", got, err)
	}
}
