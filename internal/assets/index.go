package assets

import "strings"

// Placeholders in index.html replaced by the stored metadata documents.
const (
	TagsToken    = "JSON_STRING_TAGS"
	FoldersToken = "JSON_STRING_FOLDERS"
)

// RenderIndex substitutes the tags and folders documents into the index
// page. Replacement is a single pass, so document text is never scanned for
// the other token.
func RenderIndex(page, tags, folders []byte) []byte {
	r := strings.NewReplacer(TagsToken, string(tags), FoldersToken, string(folders))
	return []byte(r.Replace(string(page)))
}
