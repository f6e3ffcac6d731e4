// Package dedup assigns a globally unique, human-readable key to every note
// in a batch. Candidate keys derived from note titles routinely collide;
// collisions are resolved by applying a scheme, an ordered list of
// disambiguation strategies, until every note owns its key alone. Date-based
// strategies run before sequence numbering so that the resulting names stay
// chronologically meaningful; a bare numeric suffix is the last resort.
package dedup

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/aretw0/draftport/pkg/core"
)

// Recognized scheme names.
const (
	SchemeDatetime = "datetime"
	SchemeSeqno    = "seqno"
)

var (
	// ErrSeqnoExhausted means a single root key collected over 999
	// collisions, which signals pathological input rather than bad luck.
	ErrSeqnoExhausted = errors.New("sequence number space exhausted")

	// ErrUnresolvable means every strategy of the scheme ran and
	// collisions still remain.
	ErrUnresolvable = errors.New("could not resolve note name collisions")

	// ErrUnknownScheme means the caller named a scheme that does not exist.
	ErrUnknownScheme = errors.New("unknown dedup scheme")
)

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02 15-04-05"
)

// Strategy derives a new key for one note of a colliding group. taken is the
// working mapping under construction for the current round; strategies may
// consult it to avoid keys already claimed in this round.
type Strategy func(key string, n *core.Note, taken *Grouping) (string, error)

// Schemes maps each scheme name to its ordered strategy list.
var Schemes = map[string][]Strategy{
	SchemeDatetime: {prependDate, prependDatetime, appendSeqno},
	SchemeSeqno:    {prependDate, appendSeqno},
}

// Entry pairs a final unique key with its note.
type Entry struct {
	Key  string
	Note *core.Note
}

// Resolve applies the named scheme's strategies in order until the grouping
// becomes conflict-free, then returns the final key-to-note assignment in
// first-seen key order. The result is a bijection: every input note appears
// exactly once under a distinct key.
//
// Each round transforms only groups holding more than one note; singleton
// groups pass through unchanged. After a round the grouping is collapsed if
// possible; a failed collapse feeds the round's grouped state into the next
// strategy. Exhausting the scheme with collisions left is fatal.
func Resolve(notes *Grouping, scheme string) ([]Entry, error) {
	strategies, ok := Schemes[scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}

	working := notes
	for _, apply := range strategies {
		next := NewGrouping()
		for _, key := range working.Keys() {
			group := working.Get(key)
			if len(group) == 1 {
				next.Add(key, group[0])
				continue
			}
			for _, n := range group {
				newKey, err := apply(key, n, next)
				if err != nil {
					return nil, err
				}
				next.Add(strings.TrimRightFunc(newKey, unicode.IsSpace), n)
			}
		}

		if entries, ok := next.collapse(); ok {
			return entries, nil
		}
		working = next
	}

	return nil, ErrUnresolvable
}

// prependDate prefixes the key with the note's creation date.
func prependDate(key string, n *core.Note, _ *Grouping) (string, error) {
	return n.Created.Format(dateLayout) + " " + key, nil
}

// prependDatetime upgrades a date prefix to full timestamp granularity: a
// leading creation-date prefix left by prependDate is stripped before the
// full creation timestamp is prepended, so the two do not stack.
func prependDatetime(key string, n *core.Note, _ *Grouping) (string, error) {
	key = strings.TrimPrefix(key, n.Created.Format(dateLayout))
	return n.Created.Format(datetimeLayout) + " " + key, nil
}

// appendSeqno suffixes the smallest integer in [1,999] not yet claimed in
// the current round. The scan is a plain bounded loop; the bound is small
// and fixed, and iteration over groups is ordered, so the assignment is
// deterministic.
func appendSeqno(key string, _ *core.Note, taken *Grouping) (string, error) {
	for seqno := 1; seqno < 1000; seqno++ {
		newKey := fmt.Sprintf("%s %d", key, seqno)
		if !taken.Has(newKey) {
			return newKey, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSeqnoExhausted, key)
}
