package dedup

import "github.com/aretw0/draftport/pkg/core"

// Grouping is an insertion-ordered mapping from a candidate key to the notes
// sharing that key. Go maps have no stable iteration order, so the key order
// is tracked explicitly; every round of resolution, the sequence-number
// search, and error reporting all iterate in first-seen key order, which
// keeps the whole pipeline deterministic for a given input order.
type Grouping struct {
	keys   []string
	groups map[string][]*core.Note
}

// NewGrouping returns an empty grouping.
func NewGrouping() *Grouping {
	return &Grouping{groups: make(map[string][]*core.Note)}
}

// Add appends a note under key, registering the key on first use.
func (g *Grouping) Add(key string, n *core.Note) {
	if _, ok := g.groups[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.groups[key] = append(g.groups[key], n)
}

// Has reports whether key is present.
func (g *Grouping) Has(key string) bool {
	_, ok := g.groups[key]
	return ok
}

// Keys returns the keys in first-seen order. The returned slice is shared;
// callers must not modify it.
func (g *Grouping) Keys() []string {
	return g.keys
}

// Get returns the notes grouped under key, in insertion order.
func (g *Grouping) Get(key string) []*core.Note {
	return g.groups[key]
}

// Len returns the number of distinct keys.
func (g *Grouping) Len() int {
	return len(g.keys)
}

// collapse converts the grouping into a final key-to-note list. It succeeds
// only if every group holds exactly one note; otherwise it reports failure
// and the caller moves on to the next strategy.
func (g *Grouping) collapse() ([]Entry, bool) {
	entries := make([]Entry, 0, len(g.keys))
	for _, key := range g.keys {
		group := g.groups[key]
		if len(group) > 1 {
			return nil, false
		}
		entries = append(entries, Entry{Key: key, Note: group[0]})
	}
	return entries, true
}
