package draftport

import (
	"io"
	"log/slog"

	"github.com/aretw0/draftport/pkg/dedup"
)

// DefaultInput is the filename Drafts uses for its JSON export.
const DefaultInput = "DraftsExport.json"

// options holds the internal configuration for a conversion.
type options struct {
	input     string
	reader    io.Reader
	outDir    string
	scheme    string
	overwrite bool
	logger    *slog.Logger
}

// Option defines a functional option for configuring a conversion.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		input:  DefaultInput,
		outDir: ".",
		scheme: dedup.SchemeDatetime,
		logger: slog.Default(),
	}
}

// WithInput sets the export file path. "-" reads from stdin.
func WithInput(path string) Option {
	return func(o *options) {
		o.input = path
	}
}

// WithReader injects the export stream directly, bypassing the filesystem.
// Useful for tests and embedding.
func WithReader(r io.Reader) Option {
	return func(o *options) {
		o.reader = r
	}
}

// WithOutputDir sets the directory documents are written to.
func WithOutputDir(dir string) Option {
	return func(o *options) {
		o.outDir = dir
	}
}

// WithScheme selects the collision-resolution scheme
// (dedup.SchemeDatetime or dedup.SchemeSeqno).
func WithScheme(scheme string) Option {
	return func(o *options) {
		o.scheme = scheme
	}
}

// WithOverwrite allows replacing documents that already exist on disk.
func WithOverwrite(overwrite bool) Option {
	return func(o *options) {
		o.overwrite = overwrite
	}
}

// WithLogger sets the logger for the conversion.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
