package mmap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOptionsHas(t *testing.T) {
	var o Options = SequentialAccess
	if !o.Has(SequentialAccess) || o.Has(RandomAccess) {
		t.Fatalf("Options.Has returned unexpected results for %v", o)
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.ifc")
	content := "ISO-10303-21;\nEND-ISO-10303-21;\n"
	must(0, os.WriteFile(path, []byte(content), 0o644))

	for _, opt := range []Options{0, SequentialAccess, RandomAccess} {
		m, err := Open(path, opt)
		if err != nil {
			t.Fatalf("Open(%v): %v", opt, err)
		}
		if got := string(m.Bytes()); got != content {
			t.Errorf("Bytes = %q, wanted %q", got, content)
		}
		if m.Len() != len(content) {
			t.Errorf("Len = %d, wanted %d", m.Len(), len(content))
		}
		if err := m.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
		if m.Bytes() != nil {
			t.Errorf("Bytes non-nil after Close")
		}
	}
}

func TestOpen_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.ifc")
	must(0, os.WriteFile(path, nil, 0o644))

	m, err := Open(path, SequentialAccess)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer m.Close()
	if m.Len() != 0 {
		t.Fatalf("Len = %d, wanted 0", m.Len())
	}
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.ifc"), 0)
	if !os.IsNotExist(err) {
		t.Fatalf("Open of a missing file: got %v", err)
	}
}

func TestFdatasync(t *testing.T) {
	f := must(os.CreateTemp(t.TempDir(), "sync_*"))
	defer f.Close()
	must(f.WriteString("data"))
	if err := Fdatasync(f); err != nil {
		t.Fatalf("Fdatasync: %v", err)
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
