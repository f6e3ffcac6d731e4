package fs

import (
	"fmt"
	"os"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/djherbis/times"
)

// DocumentInfo summarizes one written document for verification.
type DocumentInfo struct {
	Path    string
	Created time.Time // creation instant recorded in frontmatter
	MTime   time.Time // filesystem modification time
	Drift   time.Duration
}

// documentMeta is the typed subset of frontmatter the inspector cares about.
type documentMeta struct {
	Created  string `yaml:"created"`
	Modified string `yaml:"modified"`
}

// InspectDocument parses a written document's frontmatter and compares the
// recorded creation instant against the file's modification time. A
// conversion restores mtime from the creation timestamp, so any drift means
// the file was touched after it was written.
func InspectDocument(path string) (*DocumentInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var meta documentMeta
	if _, err := frontmatter.Parse(f, &meta); err != nil {
		return nil, fmt.Errorf("parse frontmatter of %s: %w", path, err)
	}
	created, err := time.Parse(TimestampLayout, meta.Created)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid created timestamp %q", path, meta.Created)
	}

	ts, err := times.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	info := &DocumentInfo{
		Path:    path,
		Created: created,
		MTime:   ts.ModTime(),
	}
	info.Drift = info.MTime.Sub(created)
	if info.Drift < 0 {
		info.Drift = -info.Drift
	}
	return info, nil
}
