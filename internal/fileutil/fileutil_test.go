package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	if err := CheckDir(dir); err != nil {
		t.Fatalf("expected directory to pass: %v", err)
	}

	if err := CheckDir(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected error for missing directory")
	}

	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := CheckDir(file); err == nil {
		t.Fatalf("expected error for regular file passed as directory")
	}
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if err := CheckFile(file); err != nil {
		t.Fatalf("expected file to pass: %v", err)
	}
	if err := CheckFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if err := CheckFile(dir); err == nil {
		t.Fatalf("expected error for directory passed as file")
	}

	if FileExists(dir) {
		t.Fatalf("FileExists must be false for a directory")
	}
	if !FileExists(file) {
		t.Fatalf("FileExists must be true for a regular file")
	}
}
