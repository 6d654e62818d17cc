package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAndRead(t *testing.T) {
	s := NewOS()
	path := filepath.Join(t.TempDir(), "comps.xml")
	content := []byte("<comps/>\n")

	if err := s.Write(path, content); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("content mismatch: got %q", got)
	}
}

func TestWriteReplacesExisting(t *testing.T) {
	s := NewOS()
	path := filepath.Join(t.TempDir(), "comps.xml")

	_ = s.Write(path, []byte("old"))
	if err := s.Write(path, []byte("new")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, _ := s.Read(path)
	if string(got) != "new" {
		t.Errorf("content = %q", got)
	}
}

func TestWriteMissingDirectoryFails(t *testing.T) {
	s := NewOS()
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "comps.xml")

	if err := s.Write(path, []byte("x")); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}

func TestWriteLeavesNoTempOnFailure(t *testing.T) {
	s := NewOS()
	dir := t.TempDir()

	// Rename onto an existing directory fails after the temp file was created.
	target := filepath.Join(dir, "taken")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := s.Write(target, []byte("x")); err == nil {
		t.Fatal("expected rename failure")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "taken" {
			t.Errorf("leftover file %q", e.Name())
		}
	}
}

func TestReadMissingFile(t *testing.T) {
	s := NewOS()
	if _, err := s.Read(filepath.Join(t.TempDir(), "missing.xml")); err == nil {
		t.Error("expected error for missing file")
	}
}
