package core

import "time"

// Metadata represents the frontmatter key-value pairs carried by a note.
type Metadata map[string]any

// metadataKeys are the export fields copied into the frontmatter of each
// note. There is no standard frontmatter vocabulary for capture location
// yet, so the raw field names from the export are preserved as-is.
var metadataKeys = map[string]struct{}{
	"created_latitude":   {},
	"created_longitude":  {},
	"modified_latitude":  {},
	"modified_longitude": {},
}

// Note is one parsed record of an export: its retained metadata, its
// creation and modification instants, and the body text left over after
// title extraction. A Note carries no identity of its own; identity is the
// key assigned to it during collision resolution.
type Note struct {
	Metadata Metadata
	Created  time.Time
	Modified time.Time
	Content  string
}

// FilterMetadata copies the allow-listed fields out of a raw record.
// Unrecognized fields are dropped.
func FilterMetadata(fields map[string]any) Metadata {
	meta := make(Metadata)
	for k, v := range fields {
		if _, ok := metadataKeys[k]; ok {
			meta[k] = v
		}
	}
	return meta
}
