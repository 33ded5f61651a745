// internal/matcher/build.go
package matcher

import (
	"fmt"
	"regexp"
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
	"github.com/solatis/wordgate/internal/types"
)

/*
 * Bundle construction.
 *
 * Builders are pure functions over the full current rule set of a kind.
 * Nothing is patched incrementally: every mutation rebuilds the whole
 * bundle from scratch, so a build either yields a complete consistent
 * bundle or (for regex rules) an error and no bundle at all.
 *
 * Input order is load-bearing. Literal rules arrive in store order and
 * their position becomes the automaton pattern index, which is the
 * leftmost-first tie-break. Regex rules arrive in ascending id order and
 * their position is the match priority.
 */

// BuildLiteralBundle compiles the full literal rule set into a bundle.
// Words are normalized to lowercase here, preserving order and duplicates.
// Returns nil for an empty rule set: absence, not an empty bundle.
func BuildLiteralBundle(rules []types.LiteralRule) *LiteralBundle {
	if len(rules) == 0 {
		return nil
	}

	words := make([]string, 0, len(rules))
	actions := make([]types.Action, 0, len(rules))
	for _, r := range rules {
		words = append(words, strings.ToLower(r.Word))
		actions = append(actions, r.Action)
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: false,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.LeftMostFirstMatch,
		DFA:                  true,
	})

	return &LiteralBundle{
		ac:      builder.Build(words),
		words:   words,
		actions: actions,
	}
}

// BuildRegexBundle compiles the full regex rule set into a bundle.
// Patterns are validated at write time before they reach the store, so a
// compile failure here is a data-integrity problem; it propagates to the
// caller and no bundle is produced.
// Returns nil for an empty rule set.
func BuildRegexBundle(rules []types.RegexRule) (*RegexBundle, error) {
	if len(rules) == 0 {
		return nil, nil
	}

	patterns := make([]*regexp.Regexp, 0, len(rules))
	descriptions := make([]string, 0, len(rules))
	actions := make([]types.Action, 0, len(rules))
	for _, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d %q: %v", types.ErrInvalidPattern, r.ID, r.Pattern, err)
		}
		desc := types.DefaultRegexDescription
		if r.Description.Valid && r.Description.String != "" {
			desc = r.Description.String
		}
		patterns = append(patterns, re)
		descriptions = append(descriptions, desc)
		actions = append(actions, r.Action)
	}

	return &RegexBundle{
		patterns:     patterns,
		descriptions: descriptions,
		actions:      actions,
	}, nil
}
