package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(name, []byte("# hi\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := readInput(name)
	if err != nil || got != "# hi\n" {
		t.Errorf("readInput(%q) = %q, %v", name, got, err)
	}

	missing := filepath.Join(dir, "missing.md")
	_, err = readInput(missing)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("readInput(%q) error %v, want not exist", missing, err)
	}
	if err != nil && !strings.HasPrefix(err.Error(), "reading "+missing) {
		t.Errorf("error %q does not name the file", err)
	}
}
