package safeio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSafeFSChildJoinsUnderRoot(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewSafeFS(dir)
	if err != nil {
		t.Fatalf("NewSafeFS: %v", err)
	}
	got, err := fs.Child("project")
	if err != nil {
		t.Fatalf("Child: %v", err)
	}
	if want := filepath.Join(fs.Root(), "project"); got != want {
		t.Fatalf("got=%s want=%s", got, want)
	}
}

func TestSafeFSChildRejectsNonElements(t *testing.T) {
	fs, err := NewSafeFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewSafeFS: %v", err)
	}
	for _, name := range []string{"", ".", "..", "a/b", `a\b`, "../x", "/etc"} {
		if _, err := fs.Child(name); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("Child(%q) err=%v want ErrInvalidName", name, err)
		}
	}
}

func TestSafeFSReadFileRelative(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "css"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "css", "a.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	fs, err := NewSafeFS(dir)
	if err != nil {
		t.Fatalf("NewSafeFS: %v", err)
	}
	b, err := fs.SafeReadFile("/css/a.css")
	if err != nil {
		t.Fatalf("SafeReadFile: %v", err)
	}
	if string(b) != "body{}" {
		t.Fatalf("got=%q", b)
	}
}

func TestSafeFSResolveRejectsTraversal(t *testing.T) {
	fs, err := NewSafeFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewSafeFS: %v", err)
	}
	if _, err := fs.Resolve("../secret"); !errors.Is(err, ErrTraversal) {
		t.Fatalf("err=%v want ErrTraversal", err)
	}
}

func TestSafeFSResolveRejectsSymlinkEscape(t *testing.T) {
	outside := t.TempDir()
	if err := os.WriteFile(filepath.Join(outside, "x.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	dir := t.TempDir()
	if err := os.Symlink(filepath.Join(outside, "x.txt"), filepath.Join(dir, "link.txt")); err != nil {
		t.Skipf("symlink unsupported: %v", err)
	}
	fs, err := NewSafeFS(dir)
	if err != nil {
		t.Fatalf("NewSafeFS: %v", err)
	}
	if _, err := fs.SafeReadFile("link.txt"); !errors.Is(err, ErrTraversal) {
		t.Fatalf("err=%v want ErrTraversal", err)
	}
}

func TestSafeFSReadFileMissing(t *testing.T) {
	fs, err := NewSafeFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewSafeFS: %v", err)
	}
	if _, err := fs.SafeReadFile("nope.html"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err=%v want ErrNotExist", err)
	}
}
