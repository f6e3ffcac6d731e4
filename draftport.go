package draftport

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aretw0/draftport/pkg/adapters/fs"
	"github.com/aretw0/draftport/pkg/core"
	"github.com/aretw0/draftport/pkg/dedup"
	"github.com/aretw0/draftport/pkg/drafts"
)

// Extension is appended to every resolved key to form the document filename.
const Extension = ".md"

// Result reports what a conversion did.
type Result struct {
	NotesRead    int
	NotesWritten int
	Source       string
	OutDir       string
}

// target pairs a final output path with the note to be written there.
type target struct {
	path string
	note *core.Note
}

// Convert runs the whole pipeline: load the export, group notes by candidate
// key, resolve collisions, and write one document per note into the output
// directory.
//
// An empty export, an existing target path without the overwrite option, and
// an unresolvable collision set are each fatal; nothing written before a
// failure is rolled back. This is a one-shot batch tool, not a transaction.
func Convert(ctx context.Context, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return convert(ctx, o)
}

func convert(ctx context.Context, o *options) (*Result, error) {
	in, source, err := openInput(o)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	keyed, err := drafts.Load(in)
	if err != nil {
		return nil, err
	}
	o.logger.Info("notes read", "count", len(keyed), "source", source)
	if len(keyed) == 0 {
		return nil, fmt.Errorf("%w: %s", core.ErrNoNotes, source)
	}

	grouping := dedup.NewGrouping()
	for _, k := range keyed {
		grouping.Add(k.Key, k.Note)
	}

	entries, err := dedup.Resolve(grouping, o.scheme)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(o.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	targets := make([]target, len(entries))
	for i, e := range entries {
		targets[i] = target{
			path: filepath.Join(o.outDir, e.Key+Extension),
			note: e.Note,
		}
	}

	if !o.overwrite {
		for _, t := range targets {
			if _, err := os.Stat(t.path); err == nil {
				return nil, fmt.Errorf("%w: %s", core.ErrWouldOverwrite, t.path)
			}
		}
	}

	o.logger.Info("writing notes", "count", len(targets), "dir", o.outDir)
	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := fs.WriteDocument(t.path, t.note); err != nil {
			return nil, fmt.Errorf("write %s: %w", t.path, err)
		}
		o.logger.Debug("wrote note", "path", t.path)
	}

	return &Result{
		NotesRead:    len(keyed),
		NotesWritten: len(targets),
		Source:       source,
		OutDir:       o.outDir,
	}, nil
}

// openInput resolves the configured export source to a reader. The returned
// closer is a no-op for injected readers and stdin.
func openInput(o *options) (io.ReadCloser, string, error) {
	if o.reader != nil {
		return io.NopCloser(o.reader), "<reader>", nil
	}
	if o.input == "-" {
		return io.NopCloser(os.Stdin), "<stdin>", nil
	}
	f, err := os.Open(o.input)
	if err != nil {
		return nil, "", fmt.Errorf("open export: %w", err)
	}
	return f, o.input, nil
}
