package scan

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func write(t *testing.T, root, rel, content string) string {
	t.Helper()
	p := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLanguages_SortedDistinctLabels(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a.py", "")
	write(t, root, "b.js", "")
	write(t, root, "c.css", "")
	write(t, root, "d.unknown", "")

	got, err := Languages(root)
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	want := []string{"CSS", "JS", "Python"}
	if !slices.Equal(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
}

func TestLanguages_NestedAndDuplicates(t *testing.T) {
	root := t.TempDir()
	write(t, root, "src/main.c", "")
	write(t, root, "src/include/util.h", "")
	write(t, root, "deep/a/b/c/tool.SH", "")
	write(t, root, "notebooks/x.ipynb", "")
	write(t, root, "scripts/run.py", "")

	got, err := Languages(root)
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	want := []string{"C", "Python", "Shell"}
	if !slices.Equal(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
}

func TestLanguages_EmptyDirectory(t *testing.T) {
	got, err := Languages(t.TempDir())
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("got=%#v want empty slice", got)
	}
}

func TestLanguages_DotFileHasNoExtension(t *testing.T) {
	root := t.TempDir()
	write(t, root, ".sh", "")
	write(t, root, ".css", "")

	got, err := Languages(root)
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got=%v want none", got)
	}
}

func TestLanguages_MissingDirectory(t *testing.T) {
	_, err := Languages(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err=%v should wrap fs.ErrNotExist", err)
	}
}

func TestLanguages_Idempotent(t *testing.T) {
	root := t.TempDir()
	write(t, root, "index.html", "")
	write(t, root, "app.au3", "")

	first, err := Languages(root)
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	second, err := Languages(root)
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	if !slices.Equal(first, second) || !slices.Equal(first, []string{"AutoIt", "HTML"}) {
		t.Fatalf("first=%v second=%v", first, second)
	}
}

func TestWalk_ReportsRelativeSlashPaths(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a.txt", "")
	write(t, root, "dir1/b.PY", "")

	var files []FileVisit
	if err := Walk(root, func(f FileVisit) {
		if !f.IsDir {
			files = append(files, f)
		}
	}); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	slices.SortFunc(files, func(a, b FileVisit) int {
		if a.Path < b.Path {
			return -1
		}
		return 1
	})
	if len(files) != 2 || files[0].Path != "a.txt" || files[1].Path != "dir1/b.PY" || files[1].Ext != ".py" {
		t.Fatalf("files=%+v", files)
	}
}

func TestLanguages_DoesNotFollowSymlinkLoops(t *testing.T) {
	root := t.TempDir()
	write(t, root, "pkg/a.js", "")
	if err := os.Symlink(root, filepath.Join(root, "pkg", "loop")); err != nil {
		t.Skipf("symlink unsupported: %v", err)
	}
	got, err := Languages(root)
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	if !slices.Equal(got, []string{"JS"}) {
		t.Fatalf("got=%v", got)
	}
}

func TestLanguages_SymlinkedRoot(t *testing.T) {
	root := t.TempDir()
	write(t, root, "target/main.py", "")
	write(t, root, "target/web/index.html", "")
	linked := filepath.Join(root, "linked")
	if err := os.Symlink(filepath.Join(root, "target"), linked); err != nil {
		t.Skipf("symlink unsupported: %v", err)
	}

	folders, err := Folders(root)
	if err != nil {
		t.Fatalf("Folders: %v", err)
	}
	if len(folders) != 2 || folders[0].Dirname != "linked" {
		t.Fatalf("folders=%+v", folders)
	}

	got, err := Languages(linked)
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	if want := []string{"HTML", "Python"}; !slices.Equal(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}

	var paths []string
	if err := Walk(linked, func(f FileVisit) { paths = append(paths, f.Path) }); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	slices.Sort(paths)
	if want := []string{"main.py", "web", "web/index.html"}; !slices.Equal(paths, want) {
		t.Fatalf("paths=%v want=%v", paths, want)
	}
}
