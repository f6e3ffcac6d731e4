// Package fs writes notes to disk as Markdown documents with YAML
// frontmatter and reads them back for verification.
package fs

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/draftport/pkg/core"
)

// TimestampLayout is the text form of created/modified in frontmatter:
// ISO 8601 with a numeric offset, so UTC renders as +00:00.
const TimestampLayout = "2006-01-02T15:04:05-07:00"

// MarshalDocument renders a note as a frontmatter block followed by its
// body. The frontmatter carries the note's retained metadata plus its
// created and modified timestamps.
func MarshalDocument(n *core.Note) ([]byte, error) {
	meta := make(core.Metadata, len(n.Metadata)+2)
	for k, v := range n.Metadata {
		meta[k] = v
	}
	meta["created"] = n.Created.Format(TimestampLayout)
	meta["modified"] = n.Modified.Format(TimestampLayout)

	var buf bytes.Buffer
	buf.WriteString("---\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(meta); err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}
	encoder.Close()
	buf.WriteString("---\n")
	buf.WriteString(n.Content)
	return buf.Bytes(), nil
}

// WriteDocument serializes the note to path atomically and restores the
// file times to the note's creation instant. There is no portable way to
// set a file's birth time, so the creation instant is applied as both atime
// and mtime; the authoritative values live in the frontmatter either way.
// File times are truncated to whole seconds to match the frontmatter
// layout, so the two record the same instant.
func WriteDocument(path string, n *core.Note) error {
	data, err := MarshalDocument(n)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return err
	}
	created := n.Created.Truncate(time.Second)
	return os.Chtimes(path, created, created)
}
