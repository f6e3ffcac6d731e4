// Package draftport converts a bulk Drafts export into a folder of
// individually named Markdown documents with YAML frontmatter.
//
// The interesting part is filename assignment: every note gets a
// human-readable name derived from its content, and name collisions are
// resolved deterministically by a scheme of disambiguation strategies
// (date prefix, timestamp prefix, sequence suffix) until every note owns a
// unique name or the run fails loudly.
//
// Names are assigned per batch; nothing is persisted between runs, so
// converting a superset of a previous export may assign different names to
// notes that were already exported once.
//
// Usage:
//
//	res, err := draftport.Convert(ctx,
//		draftport.WithInput("DraftsExport.json"),
//		draftport.WithOutputDir("./vault"),
//	)
package draftport
