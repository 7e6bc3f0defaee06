package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FolderEntry is one immediate child directory of the root.
type FolderEntry struct {
	Dirname string    `json:"dirname"`
	ModTime time.Time `json:"-"`
	// Seconds since the Unix epoch, fractional.
	Mtime float64 `json:"mtime"`
}

// Folders lists the immediate subdirectories of root, sorted by name.
// Symlinks pointing at directories count as directories; broken links and
// plain files are skipped.
func Folders(root string) ([]FolderEntry, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, root)
		}
		return nil, err
	}
	out := make([]FolderEntry, 0, len(entries))
	for _, e := range entries {
		p := filepath.Join(root, e.Name())
		var info fs.FileInfo
		switch {
		case e.IsDir():
			info, err = e.Info()
		case e.Type()&fs.ModeSymlink != 0:
			info, err = os.Stat(p)
		default:
			continue
		}
		if err != nil || !info.IsDir() {
			continue
		}
		mt := info.ModTime()
		out = append(out, FolderEntry{
			Dirname: e.Name(),
			ModTime: mt,
			Mtime:   float64(mt.UnixNano()) / float64(time.Second),
		})
	}
	return out, nil
}
