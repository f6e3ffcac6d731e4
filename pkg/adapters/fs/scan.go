package fs

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// ListDocuments returns the Markdown documents directly under dir, in
// lexical order.
func ListDocuments(dir string) ([]string, error) {
	return doublestar.FilepathGlob(filepath.Join(dir, "*.md"))
}
