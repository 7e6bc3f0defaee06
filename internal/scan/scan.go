package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when the directory to walk does not exist.
var ErrNotFound = fmt.Errorf("scan: directory not found: %w", fs.ErrNotExist)

// FileVisit carries per-entry metadata to user callbacks.
type FileVisit struct {
	// Root-relative path using forward slashes (e.g., "src/app.py").
	Path string
	// True when the entry is a directory.
	IsDir bool
	// Lowercased extension (e.g., ".py"); empty for dirs, no-ext files and
	// dot-files such as ".bashrc".
	Ext string
}

// VisitFunc is invoked for every visited entry below the root.
type VisitFunc func(f FileVisit)

// Walk visits every entry under root, recursively and without a depth limit.
// A symlinked root is followed; symlinked directories below it are reported
// but not descended into. Unreadable subtrees are skipped; only a missing or
// non-directory root is an error.
func Walk(root string, cb VisitFunc) error {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, root)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("scan: not a directory: %s", root)
	}
	// WalkDir does not descend into a root that is itself a symlink.
	root, err = filepath.EvalSymlinks(root)
	if err != nil {
		return err
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}
		rel, _ := filepath.Rel(root, path)
		rel = filepath.ToSlash(rel)
		ext := ""
		if !d.IsDir() {
			ext = extOf(d.Name())
		}
		if cb != nil {
			cb(FileVisit{Path: rel, IsDir: d.IsDir(), Ext: ext})
		}
		return nil
	})
}

// extOf returns the lowercased extension of a file name. A leading dot does
// not start an extension, so ".sh" has none while "run.sh" has ".sh".
func extOf(name string) string {
	trimmed := strings.TrimLeft(name, ".")
	ext := filepath.Ext(trimmed)
	return strings.ToLower(ext)
}
