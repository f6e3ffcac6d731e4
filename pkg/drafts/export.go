// Package drafts decodes the JSON export produced by the Drafts app into
// notes keyed by their candidate titles.
package drafts

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/aretw0/draftport/pkg/core"
)

// Keyed pairs a candidate key with its note. Keys may be empty (no usable
// title) and may collide across records; both are expected and left for
// collision resolution to sort out.
type Keyed struct {
	Key  string
	Note *core.Note
}

// timeLayouts are tried in order when parsing export timestamps. The export
// writes RFC 3339, with or without fractional seconds; a bare local form
// without offset shows up in some older exports.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// Load decodes an export stream and returns one keyed note per record, in
// input order. Each record's title is extracted and split off its content,
// its timestamps are parsed, and its metadata is reduced to the allow-listed
// fields. A malformed timestamp fails the whole load.
func Load(r io.Reader) ([]Keyed, error) {
	var records []map[string]any
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}

	keyed := make([]Keyed, 0, len(records))
	for i, rec := range records {
		content, _ := rec["content"].(string)

		created, err := parseTimestamp(i, rec, "created_at")
		if err != nil {
			return nil, err
		}
		modified, err := parseTimestamp(i, rec, "modified_at")
		if err != nil {
			return nil, err
		}

		key, rest := core.ExtractTitle(content)
		keyed = append(keyed, Keyed{
			Key: key,
			Note: &core.Note{
				Metadata: core.FilterMetadata(rec),
				Created:  created,
				Modified: modified,
				Content:  rest,
			},
		})
	}
	return keyed, nil
}

func parseTimestamp(i int, rec map[string]any, field string) (time.Time, error) {
	raw, _ := rec[field].(string)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("record %d: invalid %s timestamp %q", i, field, raw)
}
