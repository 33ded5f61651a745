// Package cache holds the in-memory rule state: a bounded raw-rule cache for
// administrative listing and the reload coordinator that rebuilds and
// publishes matcher bundles.
package cache

import (
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/solatis/wordgate/internal/types"
)

// Capacity bounds are safety valves. Every reload repopulates a cache
// wholesale, so eviction never fires under normal operation; the bound
// prevents unbounded growth if reload semantics ever change.
const (
	literalCapacity = 50_000
	regexCapacity   = 10_000
	settingCapacity = 1_000
)

// WordAction is one literal listing entry: normalized word plus its action.
type WordAction struct {
	Word   string       `json:"word"`
	Action types.Action `json:"action"`
}

// RegexEntry is one regex listing entry, keyed by rule id.
type RegexEntry struct {
	ID          int64        `json:"id"`
	Pattern     string       `json:"pattern"`
	Description string       `json:"description"`
	Action      types.Action `json:"action"`
}

// RuleCache is the bounded raw-row cache. It backs the administrative
// listing endpoints only and is not on the matching hot path.
type RuleCache struct {
	words    *lru.Cache[string, types.Action]
	regexes  *lru.Cache[int64, RegexEntry]
	settings *lru.Cache[string, string]
}

// New creates an empty rule cache with fixed capacities.
func New() (*RuleCache, error) {
	words, err := lru.New[string, types.Action](literalCapacity)
	if err != nil {
		return nil, err
	}
	regexes, err := lru.New[int64, RegexEntry](regexCapacity)
	if err != nil {
		return nil, err
	}
	settings, err := lru.New[string, string](settingCapacity)
	if err != nil {
		return nil, err
	}
	return &RuleCache{words: words, regexes: regexes, settings: settings}, nil
}

// ReplaceLiterals swaps the literal cache contents wholesale.
// Words are keyed by their normalized form, so case-variant duplicates
// collapse to a single listing entry (the matcher keeps them all).
func (c *RuleCache) ReplaceLiterals(rules []types.LiteralRule) {
	c.words.Purge()
	for _, r := range rules {
		c.words.Add(strings.ToLower(r.Word), r.Action)
	}
}

// ReplaceRegexes swaps the regex cache contents wholesale.
func (c *RuleCache) ReplaceRegexes(rules []types.RegexRule) {
	c.regexes.Purge()
	for _, r := range rules {
		desc := types.DefaultRegexDescription
		if r.Description.Valid && r.Description.String != "" {
			desc = r.Description.String
		}
		c.regexes.Add(r.ID, RegexEntry{
			ID:          r.ID,
			Pattern:     r.Pattern,
			Description: desc,
			Action:      r.Action,
		})
	}
}

// ReplaceSettings swaps the settings cache contents wholesale.
func (c *RuleCache) ReplaceSettings(items []types.Setting) {
	c.settings.Purge()
	for _, s := range items {
		c.settings.Add(s.Key, s.Value)
	}
}

// ListLiterals returns the cached literal rules sorted by word.
func (c *RuleCache) ListLiterals() []WordAction {
	keys := c.words.Keys()
	sort.Strings(keys)
	out := make([]WordAction, 0, len(keys))
	for _, w := range keys {
		if action, ok := c.words.Get(w); ok {
			out = append(out, WordAction{Word: w, Action: action})
		}
	}
	return out
}

// ListRegexes returns the cached regex rules sorted by ascending id, the
// same order that determines match priority.
func (c *RuleCache) ListRegexes() []RegexEntry {
	ids := c.regexes.Keys()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]RegexEntry, 0, len(ids))
	for _, id := range ids {
		if entry, ok := c.regexes.Get(id); ok {
			out = append(out, entry)
		}
	}
	return out
}

// ListSettings returns the cached settings sorted by key.
func (c *RuleCache) ListSettings() []types.Setting {
	keys := c.settings.Keys()
	sort.Strings(keys)
	out := make([]types.Setting, 0, len(keys))
	for _, k := range keys {
		if v, ok := c.settings.Get(k); ok {
			out = append(out, types.Setting{Key: k, Value: v})
		}
	}
	return out
}
