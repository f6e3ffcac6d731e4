package core

import (
	"strings"
	"unicode/utf8"
)

// maxTitleLen bounds how long a content prefix may be to qualify as a title.
const maxTitleLen = 40

// titleToFilename rewrites characters that are illegal or awkward in a
// path component.
var titleToFilename = strings.NewReplacer(
	"/", "_",
	":", "-",
)

// ExtractTitle derives a filename-safe candidate key from note content.
//
// The content is split at the first sentence terminator (period or newline).
// If a terminator exists and the prefix before it is shorter than 40
// characters, the prefix becomes the candidate key and the remainder is
// returned as the stored content. Otherwise there is no usable title: the
// key is empty and the content is returned untouched, leaving the choice of
// a name entirely to collision resolution.
func ExtractTitle(content string) (key, rest string) {
	i := strings.IndexAny(content, ".\n")
	if i < 0 || utf8.RuneCountInString(content[:i]) >= maxTitleLen {
		return "", content
	}
	return titleToFilename.Replace(content[:i]), content[i+1:]
}
