package metastore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Kind names one of the singleton metadata documents.
type Kind string

const (
	KindTags    Kind = "tags"
	KindFolders Kind = "folders"
)

// DefaultDocument is returned by Load when no document has been saved yet.
const DefaultDocument = "{}"

var (
	ErrUnknownKind = errors.New("metastore: unknown document kind")
	ErrInvalidJSON = errors.New("metastore: payload is not valid JSON")
)

// ParseKind maps a URL segment such as "tags" to a Kind.
func ParseKind(raw string) (Kind, error) {
	switch k := Kind(strings.TrimSpace(raw)); k {
	case KindTags, KindFolders:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, raw)
	}
}

// Store persists the tags and folders documents as opaque JSON files in dir.
// Each save replaces the whole file; there is no merging.
type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the file backing a document kind.
func (s *Store) Path(kind Kind) string {
	return filepath.Join(s.dir, string(kind)+".json")
}

// Save validates payload as JSON and atomically replaces the document.
// On any error the previous file is left as it was.
func (s *Store) Save(kind Kind, payload []byte) error {
	if _, err := ParseKind(string(kind)); err != nil {
		return err
	}
	if !json.Valid(payload) {
		return ErrInvalidJSON
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path(kind)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", kind, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", kind, err)
	}
	return nil
}

// Load returns the stored document verbatim, or DefaultDocument when the
// file does not exist.
func (s *Store) Load(kind Kind) ([]byte, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.Path(kind))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []byte(DefaultDocument), nil
		}
		return nil, err
	}
	return b, nil
}
