package safeio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	// ErrInvalidName is returned for a child name that is not a single path element.
	ErrInvalidName = errors.New("safeio: invalid name")
	// ErrTraversal is returned when a path would leave the root.
	ErrTraversal = errors.New("safeio: path traversal not allowed")
)

// SafeFS resolves user-supplied paths relative to a fixed root.
type SafeFS struct {
	absRoot string // absolute root, cleaned
}

// NewSafeFS locks all future operations to the given root directory.
// The root does not have to exist yet; reads against a missing root fail
// with fs.ErrNotExist.
func NewSafeFS(root string) (*SafeFS, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("safeio: empty root")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	return &SafeFS{absRoot: filepath.Clean(abs)}, nil
}

// Root returns the absolute root directory bound to this SafeFS.
func (s *SafeFS) Root() string {
	if s == nil {
		return ""
	}
	return s.absRoot
}

// Child joins an immediate child name onto the root. The name must be a
// single path element: not empty, not "." or "..", not absolute and free of
// separators. Existence is not checked.
func (s *SafeFS) Child(name string) (string, error) {
	if s == nil {
		return "", errors.New("safeio: filesystem not configured")
	}
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if strings.ContainsAny(name, `/\`) || filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.absRoot, name), nil
}

// Resolve maps a slash-separated relative path (e.g. a URL path without its
// leading "/") onto the root. Symlinks are evaluated and the result must stay
// under the root.
func (s *SafeFS) Resolve(userPath string) (string, error) {
	if s == nil {
		return "", errors.New("safeio: filesystem not configured")
	}
	clean := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(userPath, "/")))
	if clean == "." || userPath == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, userPath)
	}
	if filepath.IsAbs(clean) || filepath.VolumeName(clean) != "" {
		return "", ErrTraversal
	}
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", ErrTraversal
	}

	joined := filepath.Join(s.absRoot, clean)
	resolved, err := filepath.EvalSymlinks(joined)
	if err != nil {
		return "", err
	}
	root := s.absRoot
	if r, err := filepath.EvalSymlinks(root); err == nil {
		root = r
	}
	if !hasPathPrefix(resolved, root) {
		return "", fmt.Errorf("%w (root=%s, path=%s)", ErrTraversal, root, resolved)
	}
	return resolved, nil
}

// SafeReadFile reads a regular file relative to the root.
func (s *SafeFS) SafeReadFile(userPath string) ([]byte, error) {
	p, err := s.Resolve(userPath)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, errors.New("safeio: path is a directory")
	}
	return os.ReadFile(p)
}

// SafeStat returns metadata for a file or directory under the root.
func (s *SafeFS) SafeStat(userPath string) (fs.FileInfo, error) {
	p, err := s.Resolve(userPath)
	if err != nil {
		return nil, err
	}
	return os.Stat(p)
}

func hasPathPrefix(path, root string) bool {
	path = filepath.Clean(path)
	root = filepath.Clean(root)
	if runtime.GOOS == "windows" {
		path = strings.ToLower(path)
		root = strings.ToLower(root)
	}
	if len(root) == 0 {
		return true
	}
	if path == root {
		return true
	}
	sep := string(os.PathSeparator)
	if !strings.HasSuffix(root, sep) {
		root += sep
	}
	if !strings.HasSuffix(path, sep) {
		path += sep
	}
	return strings.HasPrefix(path, root)
}
