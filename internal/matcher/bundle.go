// internal/matcher/bundle.go
package matcher

import (
	"regexp"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
	"github.com/solatis/wordgate/internal/types"
)

/*
 * Compiled matching bundles.
 *
 * A bundle is an immutable, fully-built matching structure plus its parallel
 * metadata, published to the engine as a unit. Pattern index i in the
 * automaton or pattern list always corresponds to position i in the metadata
 * slices of the same build. Bundles are never mutated after construction,
 * only replaced wholesale.
 */

const literalReasonPrefix = "literal match: "

// LiteralBundle holds an Aho-Corasick automaton over the normalized word set
// together with the word and action for each pattern index.
type LiteralBundle struct {
	ac      ahocorasick.AhoCorasick
	words   []string
	actions []types.Action
}

// Len reports the number of patterns in the bundle.
func (b *LiteralBundle) Len() int {
	return len(b.words)
}

// tryMatch reports the earliest-starting occurrence of any word in text.
// The automaton is built with leftmost-first semantics: ties at the same
// start position resolve to the first-inserted pattern.
// Text must already be lowercased by the caller.
func (b *LiteralBundle) tryMatch(text string) (types.Action, string, bool) {
	it := b.ac.Iter(text)
	m := it.Next()
	if m == nil {
		return "", "", false
	}
	i := m.Pattern()
	return b.actions[i], literalReasonPrefix + b.words[i], true
}

// RegexBundle holds compiled patterns in ascending rule-id order together
// with the description and action for each pattern index.
type RegexBundle struct {
	patterns     []*regexp.Regexp
	descriptions []string
	actions      []types.Action
}

// Len reports the number of patterns in the bundle.
func (b *RegexBundle) Len() int {
	return len(b.patterns)
}

// tryMatch scans patterns in order and reports the first (lowest-index) one
// matching anywhere in text. Build order is ascending rule id, so the
// lowest-id rule wins among simultaneous matches.
func (b *RegexBundle) tryMatch(text string) (types.Action, string, bool) {
	for i, re := range b.patterns {
		if re.MatchString(text) {
			return b.actions[i], b.descriptions[i], true
		}
	}
	return "", "", false
}
