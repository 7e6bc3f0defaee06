package assets

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"devdash/internal/safeio"
)

const (
	defaultCacheEntries = 128
	// Larger files are read from disk on every request.
	maxCachedBytes = 1 << 20
)

type cached struct {
	modTime time.Time
	size    int64
	body    []byte
}

// Reader serves files from the install directory. File contents are cached
// but every read re-stats the file, so edits on disk show up immediately.
type Reader struct {
	fs    *safeio.SafeFS
	cache *lru.Cache[string, cached]
}

func NewReader(root string, entries int) (*Reader, error) {
	fsys, err := safeio.NewSafeFS(root)
	if err != nil {
		return nil, err
	}
	if entries <= 0 {
		entries = defaultCacheEntries
	}
	cache, err := lru.New[string, cached](entries)
	if err != nil {
		return nil, err
	}
	return &Reader{fs: fsys, cache: cache}, nil
}

// ReadFile returns the contents of the file at a URL path such as
// "/css/site.css". Directories, missing files and paths that leave the root
// all fail; callers treat any error as not found.
func (r *Reader) ReadFile(urlPath string) ([]byte, error) {
	info, err := r.fs.SafeStat(urlPath)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, errors.New("assets: not a regular file")
	}
	key := filepath.ToSlash(filepath.Clean("/" + urlPath))
	if c, ok := r.cache.Get(key); ok && c.size == info.Size() && c.modTime.Equal(info.ModTime()) {
		return c.body, nil
	}
	body, err := r.fs.SafeReadFile(urlPath)
	if err != nil {
		return nil, err
	}
	if int64(len(body)) <= maxCachedBytes {
		r.cache.Add(key, cached{modTime: info.ModTime(), size: info.Size(), body: body})
	} else {
		r.cache.Remove(key)
	}
	return body, nil
}

// ContentType returns the Content-Type for a served file, or "" when none
// should be sent.
func ContentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html":
		return "text/html"
	case ".js":
		return "text/javascript"
	case ".css":
		return "text/css"
	default:
		return ""
	}
}
