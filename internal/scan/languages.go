package scan

import "sort"

// languageByExt maps a lowercased file extension to a coarse language label.
var languageByExt = map[string]string{
	".py":    "Python",
	".ipynb": "Python",
	".c":     "C",
	".cpp":   "C",
	".h":     "C",
	".ps1":   "Shell",
	".sh":    "Shell",
	".bat":   "Shell",
	".js":    "JS",
	".html":  "HTML",
	".css":   "CSS",
	".au3":   "AutoIt",
}

// Languages walks dir and returns the distinct language labels of the files
// found beneath it, sorted ascending. Unknown extensions are ignored; a
// directory without any known file yields an empty, non-nil slice.
func Languages(dir string) ([]string, error) {
	seen := map[string]struct{}{}
	err := Walk(dir, func(f FileVisit) {
		if f.IsDir {
			return
		}
		if label, ok := languageByExt[f.Ext]; ok {
			seen[label] = struct{}{}
		}
	})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(seen))
	for label := range seen {
		out = append(out, label)
	}
	sort.Strings(out)
	return out, nil
}
